package events

import "time"

// PropertyData 房源审核事件携带的核心数据
type PropertyData struct {
	PropertyID uint64  `json:"property_id"`
	Name       string  `json:"name"`
	Location   string  `json:"location"`
	Price      float64 `json:"price"`
	AddedByID  *uint64 `json:"added_by_id"` // 提交人，可能为空
}

// PropertyPendingAuditEvent 房源提交待审核事件
// - 非管理员创建房源成功后异步发出，供审核后台/风控消费
type PropertyPendingAuditEvent struct {
	EventID   string       `json:"event_id"`
	Timestamp time.Time    `json:"timestamp"`
	Property  PropertyData `json:"property"`
}

// UserNotificationEvent 站内通知事件
// - 管理员触发，fire-and-forget；本服务内置一个消费者做占位投递（记日志）
type UserNotificationEvent struct {
	EventID   string    `json:"event_id"`
	Timestamp time.Time `json:"timestamp"`
	UserID    uint64    `json:"user_id"`
	Message   string    `json:"message"`
}
