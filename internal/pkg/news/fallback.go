package news

// fallbackArticles 两个新闻源都失效时的手写兜底文章集，
// 保证下游合成始终有输入
func fallbackArticles() []Article {
	return []Article{
		{
			Title:       "Large language models keep getting cheaper to run",
			Description: "Inference costs for production LLM workloads continue to fall as providers compete on price and open-weight models close the quality gap.",
			URL:         "https://www.technologyreview.com/topic/artificial-intelligence/",
			Source:      "Editorial",
		},
		{
			Title:       "WebAssembly moves beyond the browser",
			Description: "Server-side WebAssembly runtimes are maturing into a practical target for plugins, edge functions and sandboxed extensions.",
			URL:         "https://webassembly.org/",
			Source:      "Editorial",
		},
		{
			Title:       "Supply chain attacks put open source maintainers under pressure",
			Description: "Package registries are rolling out provenance attestation and mandatory 2FA after another wave of compromised dependencies.",
			URL:         "https://openssf.org/",
			Source:      "Editorial",
		},
		{
			Title:       "Kubernetes cost optimization becomes a discipline of its own",
			Description: "Platform teams are adopting rightsizing, spot scheduling and usage showback as cluster bills keep growing.",
			URL:         "https://kubernetes.io/blog/",
			Source:      "Editorial",
		},
		{
			Title:       "Postgres keeps eating the database world",
			Description: "Extensions for vectors, time series and analytics are making PostgreSQL the default answer to ever more storage questions.",
			URL:         "https://www.postgresql.org/about/newsarchive/",
			Source:      "Editorial",
		},
	}
}
