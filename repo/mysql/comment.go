package mysql

import (
	"context"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/realestate_service/models/entities"
)

// CommentRepository 定义了评论数据在 MySQL 中的持久化操作接口。
type CommentRepository interface {
	// CreateComment 持久化一条新评论。
	CreateComment(ctx context.Context, comment *entities.Comment) error

	// ListCommentsByProperty 查询指定房源的评论，最新的在前，预加载评论人。
	ListCommentsByProperty(ctx context.Context, propertyID uint64) ([]*entities.Comment, error)

	// ListAllComments 查询全站评论（管理后台），最新的在前，预加载评论人。
	ListAllComments(ctx context.Context) ([]*entities.Comment, error)

	// DeleteComment 软删除指定评论，未命中返回 commonerrors.ErrRepoNotFound。
	DeleteComment(ctx context.Context, id uint64) error
}

type commentRepository struct {
	db     *gorm.DB
	logger *core.ZapLogger
}

// NewCommentRepository 是 commentRepository 的构造函数。
func NewCommentRepository(db *gorm.DB, logger *core.ZapLogger) CommentRepository {
	return &commentRepository{db: db, logger: logger}
}

func (r *commentRepository) CreateComment(ctx context.Context, comment *entities.Comment) error {
	if err := r.db.WithContext(ctx).Create(comment).Error; err != nil {
		r.logger.Error("创建评论失败",
			zap.Error(err),
			zap.Uint64("userID", comment.UserID),
			zap.Uint64("propertyID", comment.PropertyID))
		return err
	}
	return nil
}

func (r *commentRepository) ListCommentsByProperty(ctx context.Context, propertyID uint64) ([]*entities.Comment, error) {
	var comments []*entities.Comment
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("property_id = ?", propertyID).
		Order("created_at DESC").
		Find(&comments).Error
	if err != nil {
		r.logger.Error("查询房源评论失败", zap.Error(err), zap.Uint64("propertyID", propertyID))
		return nil, err
	}
	return comments, nil
}

func (r *commentRepository) ListAllComments(ctx context.Context) ([]*entities.Comment, error) {
	var comments []*entities.Comment
	err := r.db.WithContext(ctx).
		Preload("User").
		Order("created_at DESC").
		Find(&comments).Error
	if err != nil {
		r.logger.Error("查询全站评论失败", zap.Error(err))
		return nil, err
	}
	return comments, nil
}

func (r *commentRepository) DeleteComment(ctx context.Context, id uint64) error {
	result := r.db.WithContext(ctx).Delete(&entities.Comment{}, id)
	if result.Error != nil {
		r.logger.Error("删除评论失败", zap.Error(result.Error), zap.Uint64("commentID", id))
		return result.Error
	}
	if result.RowsAffected == 0 {
		return commonerrors.ErrRepoNotFound
	}
	return nil
}
