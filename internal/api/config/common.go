package config

// Config 配置主体
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Mongo    MongoConfig    `mapstructure:"mongo"`
	LLM      LLMConfig      `mapstructure:"llm"`
	News     NewsConfig     `mapstructure:"news"`
	Admin    AdminConfig    `mapstructure:"admin"`
	Logstash LogstashConfig `mapstructure:"logstash"`
}

// ServerConfig Server配置
type ServerConfig struct {
	Port int `mapstructure:"port"`
}

// MongoConfig 文档库配置
type MongoConfig struct {
	URL      string `mapstructure:"url"`
	Database string `mapstructure:"database"`
}

// LLMConfig 大模型配置
type LLMConfig struct {
	URL       string `mapstructure:"url"`
	TextModel string `mapstructure:"text_model"`
	ApiKey    string `mapstructure:"api_key"`
}

// NewsConfig 新闻源配置
type NewsConfig struct {
	NewsApiURL    string `mapstructure:"newsapi_url"`
	NewsApiKey    string `mapstructure:"newsapi_key"`
	HackerNewsURL string `mapstructure:"hackernews_url"`
	EnrichStories bool   `mapstructure:"enrich_stories"`
}

// AdminConfig 管理端 Basic 认证凭据
type AdminConfig struct {
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

// LogstashConfig 日志远程上报配置
type LogstashConfig struct {
	Address string `mapstructure:"address"`
	Index   string `mapstructure:"index"`
	Token   string `mapstructure:"token"`
}
