package producer

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Xushengqwer/go-common/core"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/Xushengqwer/realestate_service/config"
	"github.com/Xushengqwer/realestate_service/models/events"
)

// KafkaProducer Kafka 消息生产者
type KafkaProducer struct {
	writer *kafka.Writer
	logger *core.ZapLogger
	topics config.Topics
}

// NewKafkaProducer 创建一个新的 Kafka 生产者实例
func NewKafkaProducer(config config.KafkaConfig, logger *core.ZapLogger) *KafkaProducer {
	writer := &kafka.Writer{
		Addr:     kafka.TCP(config.Brokers...),
		Balancer: &kafka.LeastBytes{},
	}
	return &KafkaProducer{
		writer: writer,
		logger: logger,
		topics: config.Topics,
	}
}

// SendEvent 发送事件到指定 Kafka 主题
func (p *KafkaProducer) SendEvent(ctx context.Context, topic string, event interface{}) error {
	eventBytes, err := json.Marshal(event)
	if err != nil {
		p.logger.Error("Failed to marshal event", zap.Error(err), zap.String("topic", topic))
		return err
	}

	p.logger.Debug("Sending Kafka message",
		zap.String("topic", topic),
		zap.ByteString("payload", eventBytes))

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Topic: topic,
		Value: eventBytes,
	})

	if err != nil {
		p.logger.Error("Failed to write Kafka message", zap.Error(err), zap.String("topic", topic))
	} else {
		p.logger.Info("Successfully sent Kafka message", zap.String("topic", topic))
	}
	return err
}

// SendPropertyPendingAuditEvent 发送房源待审核事件到 Kafka
// - 意图: 非管理员新提交的房源进入待审核状态时通知审核侧
// - 输入: ctx context.Context 上下文, propertyData events.PropertyData 房源核心数据
// - 输出: error 错误信息
func (p *KafkaProducer) SendPropertyPendingAuditEvent(ctx context.Context, propertyData events.PropertyData) error {
	event := events.PropertyPendingAuditEvent{
		EventID:   uuid.New().String(),
		Timestamp: time.Now(),
		Property:  propertyData,
	}
	return p.SendEvent(ctx, p.topics.PropertyPendingAudit, event)
}

// SendUserNotificationEvent 发送用户通知事件到 Kafka
// - 意图: 管理端触发的站内通知先落到消息队列，由消费侧异步投递
// - 输入: ctx context.Context 上下文, userID uint64 目标用户, message string 通知内容
// - 输出: error 错误信息
func (p *KafkaProducer) SendUserNotificationEvent(ctx context.Context, userID uint64, message string) error {
	event := events.UserNotificationEvent{
		EventID:   uuid.New().String(),
		Timestamp: time.Now(),
		UserID:    userID,
		Message:   message,
	}
	return p.SendEvent(ctx, p.topics.UserNotification, event)
}
