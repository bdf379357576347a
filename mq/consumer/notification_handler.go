package consumer

import (
	"context"
	"encoding/json"

	"github.com/Xushengqwer/go-common/core"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/Xushengqwer/realestate_service/models/events"
)

// MessageHandler 定义了处理 Kafka 消息的接口
type MessageHandler interface {
	Handle(ctx context.Context, msg kafka.Message) error
}

// UserNotificationHandler 消费站内通知事件。
// 目前的投递方式是占位实现：结构化日志记录一条投递记录。
// TODO: 接入真正的推送通道（邮件/短信/站内信表）后替换这里的投递逻辑。
type UserNotificationHandler struct {
	logger *core.ZapLogger
}

func NewUserNotificationHandler(logger *core.ZapLogger) *UserNotificationHandler {
	return &UserNotificationHandler{logger: logger}
}

func (h *UserNotificationHandler) Handle(ctx context.Context, msg kafka.Message) error {
	var event events.UserNotificationEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		h.logger.Error("UserNotificationHandler: 反序列化 Kafka 消息失败", zap.Error(err), zap.ByteString("value", msg.Value))
		return nil // 不重试无法解析的消息
	}

	h.logger.Info("向用户投递通知",
		zap.String("event_id", event.EventID),
		zap.Uint64("user_id", event.UserID),
		zap.String("message", event.Message),
		zap.Time("timestamp", event.Timestamp))
	return nil
}
