package util

const (
	RequestIDKey    = "request_id"
	RequestIDHeader = "X-Request-ID"
	ClaimsKey       = "claims"
)

const (
	// CacheKeyPrefix 渲染结果缓存键前缀
	CacheKeyPrefix = "clock:svg:"
	// ExportPrefix 导出对象的存储目录
	ExportPrefix = "clocks/"
)
