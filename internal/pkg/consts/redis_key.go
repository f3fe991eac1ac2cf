package consts

const (
	PostQueryStatsKey   = "posts:query:stats"
	PostIndexMissingKey = "posts:index:missing"
	PostIndexProbeKey   = "posts:index:probed_at"
)

// posts:query:stats 中的计数字段
const (
	StatFallbackScan   = "fallback_scan"
	StatStoreError     = "store_error"
	StatRetry          = "retry"
	StatIndexMissingOn = "index_missing:"
)
