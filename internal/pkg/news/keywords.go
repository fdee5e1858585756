package news

import "strings"

// 技术相关标题关键词，小写子串匹配
var techKeywords = []string{
	"ai", "artificial intelligence", "machine learning", "programming", "software",
	"development", "tech", "technology", "coding", "javascript", "python", "react",
	"node", "web", "app", "mobile", "cloud", "aws", "google", "microsoft", "apple",
	"cybersecurity", "blockchain", "crypto", "database", "api", "framework",
	"startup", "silicon valley", "github", "open source", "devops", "kubernetes",
}

// IsTechRelated 判断标题是否命中技术关键词
func IsTechRelated(title string) bool {
	lower := strings.ToLower(title)
	for _, kw := range techKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
