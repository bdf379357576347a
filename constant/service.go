package constant

// 服务标识，用于链路追踪和日志归属
const (
	ServiceName    = "realestate_service"
	ServiceVersion = "1.0.0"
)
