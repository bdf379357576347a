package config

// MediaConfig 媒体文件访问配置
type MediaConfig struct {
	// BaseURL 用于把数据库中存储的相对图片路径拼接为绝对 URL。
	// 已经是绝对 URL（http/https 开头）的存量数据原样透传。
	BaseURL string `mapstructure:"base_url" json:"base_url" yaml:"base_url"`
}
