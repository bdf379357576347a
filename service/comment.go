package service

import (
	"context"

	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"

	"github.com/Xushengqwer/realestate_service/models/auth"
	"github.com/Xushengqwer/realestate_service/models/dto"
	"github.com/Xushengqwer/realestate_service/models/entities"
	"github.com/Xushengqwer/realestate_service/models/vo"
	mysqlRepo "github.com/Xushengqwer/realestate_service/repo/mysql"
)

// CommentService 封装了房源评论的业务逻辑。
// 发表需要登录，浏览公开，删除与全站列表是管理端操作。
type CommentService struct {
	commentRepo  mysqlRepo.CommentRepository
	propertyRepo mysqlRepo.PropertyRepository
	userRepo     mysqlRepo.UserRepository
	policy       *AuthorizationPolicy
	logger       *core.ZapLogger
}

// NewCommentService 是 CommentService 的构造函数。
func NewCommentService(
	commentRepo mysqlRepo.CommentRepository,
	propertyRepo mysqlRepo.PropertyRepository,
	userRepo mysqlRepo.UserRepository,
	policy *AuthorizationPolicy,
	logger *core.ZapLogger,
) *CommentService {
	return &CommentService{
		commentRepo:  commentRepo,
		propertyRepo: propertyRepo,
		userRepo:     userRepo,
		policy:       policy,
		logger:       logger,
	}
}

// CreateComment 在指定房源下发表评论（需登录，房源必须存在）。
func (s *CommentService) CreateComment(ctx context.Context, identity *auth.Identity, propertyID uint64, req *dto.CreateCommentRequest) (*vo.CommentVO, error) {
	if err := s.policy.RequireUser(identity); err != nil {
		return nil, err
	}
	if _, err := s.propertyRepo.GetPropertyByID(ctx, propertyID); err != nil {
		return nil, err
	}

	// 先取评论人，响应里直接带上展示名，省得前端再拉一次列表
	user, err := s.userRepo.GetUserByID(ctx, identity.UserID)
	if err != nil {
		return nil, err
	}

	comment := &entities.Comment{
		UserID:     identity.UserID,
		PropertyID: propertyID,
		Content:    req.Content,
	}
	if err := s.commentRepo.CreateComment(ctx, comment); err != nil {
		return nil, err
	}
	s.logger.Info("发表评论成功",
		zap.Uint64("commentID", comment.ID),
		zap.Uint64("userID", identity.UserID),
		zap.Uint64("propertyID", propertyID))

	comment.User = user
	return vo.NewCommentVOFromEntity(comment), nil
}

// ListCommentsForProperty 返回指定房源的评论，最新的在前（公开接口）。
func (s *CommentService) ListCommentsForProperty(ctx context.Context, propertyID uint64) ([]*vo.CommentVO, error) {
	if _, err := s.propertyRepo.GetPropertyByID(ctx, propertyID); err != nil {
		return nil, err
	}
	comments, err := s.commentRepo.ListCommentsByProperty(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	return vo.MapCommentsToVOs(comments), nil
}

// ListAllComments 返回全站评论（仅管理员），最新的在前。
func (s *CommentService) ListAllComments(ctx context.Context, identity *auth.Identity) ([]*vo.CommentVO, error) {
	if err := s.policy.RequireAdmin(identity); err != nil {
		return nil, err
	}
	comments, err := s.commentRepo.ListAllComments(ctx)
	if err != nil {
		return nil, err
	}
	return vo.MapCommentsToVOs(comments), nil
}

// DeleteComment 删除指定评论（仅管理员）。
func (s *CommentService) DeleteComment(ctx context.Context, identity *auth.Identity, commentID uint64) error {
	if err := s.policy.RequireAdmin(identity); err != nil {
		return err
	}
	if err := s.commentRepo.DeleteComment(ctx, commentID); err != nil {
		return err
	}
	s.logger.Info("删除评论成功", zap.Uint64("commentID", commentID), zap.Uint64("operatorID", identity.UserID))
	return nil
}
