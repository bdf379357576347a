package dto

// SendNotificationRequest 定义了管理员发送站内通知的请求数据结构
type SendNotificationRequest struct {
	UserID  uint64 `json:"user_id" binding:"required"` // 目标用户ID，必填
	Message string `json:"message" binding:"required"` // 通知内容，必填
}
