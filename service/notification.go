package service

import (
	"context"

	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"

	"github.com/Xushengqwer/realestate_service/models/auth"
	"github.com/Xushengqwer/realestate_service/models/dto"
	"github.com/Xushengqwer/realestate_service/mq/producer"
	mysqlRepo "github.com/Xushengqwer/realestate_service/repo/mysql"
)

// NotificationService 封装了管理端触发的站内通知。
// 通知走 Kafka 异步投递，本服务只负责投递到队列（fire-and-forget）。
type NotificationService struct {
	userRepo      mysqlRepo.UserRepository
	kafkaProducer *producer.KafkaProducer // 可为 nil（未配置 broker 时发送直接跳过）
	policy        *AuthorizationPolicy
	logger        *core.ZapLogger
}

// NewNotificationService 是 NotificationService 的构造函数。
func NewNotificationService(
	userRepo mysqlRepo.UserRepository,
	kafkaProducer *producer.KafkaProducer,
	policy *AuthorizationPolicy,
	logger *core.ZapLogger,
) *NotificationService {
	return &NotificationService{
		userRepo:      userRepo,
		kafkaProducer: kafkaProducer,
		policy:        policy,
		logger:        logger,
	}
}

// SendNotification 向指定用户发送站内通知（仅管理员）。
// 目标用户必须存在；事件成功写入 Kafka 即视为发送成功。
func (s *NotificationService) SendNotification(ctx context.Context, identity *auth.Identity, req *dto.SendNotificationRequest) error {
	if err := s.policy.RequireAdmin(identity); err != nil {
		return err
	}
	if _, err := s.userRepo.GetUserByID(ctx, req.UserID); err != nil {
		return err
	}

	if s.kafkaProducer == nil {
		s.logger.Warn("未配置 Kafka broker，通知事件被跳过",
			zap.Uint64("userID", req.UserID))
		return nil
	}
	if err := s.kafkaProducer.SendUserNotificationEvent(ctx, req.UserID, req.Message); err != nil {
		return err
	}
	s.logger.Info("通知事件已写入队列",
		zap.Uint64("operatorID", identity.UserID),
		zap.Uint64("userID", req.UserID))
	return nil
}
