// Package service 实现业务服务层
package service

// ServiceConfig Service 层配置（从 AppConfig 提取）
type ServiceConfig struct {
	Preview PreviewServiceConfig
}

// PreviewServiceConfig 元数据抓取配置
type PreviewServiceConfig struct {
	// FetchTimeout 单次抓取超时（秒）
	FetchTimeout int
	// UserAgent 抓取请求使用的 User-Agent
	UserAgent string
	// MaxBodySize 响应体读取上限（字节）
	MaxBodySize int64
}
