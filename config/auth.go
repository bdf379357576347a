package config

// AuthConfig 认证相关配置
type AuthConfig struct {
	// TokenTTLSeconds 令牌过期时间（秒）。0 表示不过期，
	// 与原有的持久令牌行为保持一致。
	TokenTTLSeconds int `mapstructure:"token_ttl_seconds" json:"token_ttl_seconds" yaml:"token_ttl_seconds"`
}
