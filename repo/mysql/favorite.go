package mysql

import (
	"context"

	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Xushengqwer/realestate_service/models/entities"
)

// FavoriteRepository 定义了用户收藏关系在 MySQL 中的持久化操作接口。
// Add/Remove 都是幂等的：重复收藏与重复取消均不报错、无额外效果。
type FavoriteRepository interface {
	// AddFavorite 建立收藏关系；已存在时静默忽略（ON CONFLICT DO NOTHING）。
	AddFavorite(ctx context.Context, userID, propertyID uint64) error

	// RemoveFavorite 解除收藏关系；关系不存在时视为成功。
	RemoveFavorite(ctx context.Context, userID, propertyID uint64) error

	// IsFavorited 判断单个房源是否被该用户收藏。
	IsFavorited(ctx context.Context, userID, propertyID uint64) (bool, error)

	// FilterFavorited 批量筛出 propertyIDs 中被该用户收藏的子集。
	// - 列表序列化时一次查询算出整页的 is_favorite，避免 N+1。
	FilterFavorited(ctx context.Context, userID uint64, propertyIDs []uint64) (map[uint64]struct{}, error)
}

type favoriteRepository struct {
	db     *gorm.DB
	logger *core.ZapLogger
}

// NewFavoriteRepository 是 favoriteRepository 的构造函数。
func NewFavoriteRepository(db *gorm.DB, logger *core.ZapLogger) FavoriteRepository {
	return &favoriteRepository{db: db, logger: logger}
}

func (r *favoriteRepository) AddFavorite(ctx context.Context, userID, propertyID uint64) error {
	favorite := &entities.PropertyFavorite{
		PropertyID: propertyID,
		UserID:     userID,
	}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(favorite).Error
	if err != nil {
		r.logger.Error("新增收藏关系失败",
			zap.Error(err),
			zap.Uint64("userID", userID),
			zap.Uint64("propertyID", propertyID))
		return err
	}
	return nil
}

func (r *favoriteRepository) RemoveFavorite(ctx context.Context, userID, propertyID uint64) error {
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND property_id = ?", userID, propertyID).
		Delete(&entities.PropertyFavorite{}).Error
	if err != nil {
		r.logger.Error("删除收藏关系失败",
			zap.Error(err),
			zap.Uint64("userID", userID),
			zap.Uint64("propertyID", propertyID))
		return err
	}
	return nil
}

func (r *favoriteRepository) IsFavorited(ctx context.Context, userID, propertyID uint64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entities.PropertyFavorite{}).
		Where("user_id = ? AND property_id = ?", userID, propertyID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *favoriteRepository) FilterFavorited(ctx context.Context, userID uint64, propertyIDs []uint64) (map[uint64]struct{}, error) {
	favoriteSet := make(map[uint64]struct{}, len(propertyIDs))
	if len(propertyIDs) == 0 {
		return favoriteSet, nil
	}

	var favoritedIDs []uint64
	err := r.db.WithContext(ctx).
		Model(&entities.PropertyFavorite{}).
		Where("user_id = ? AND property_id IN ?", userID, propertyIDs).
		Pluck("property_id", &favoritedIDs).Error
	if err != nil {
		r.logger.Error("批量查询收藏关系失败", zap.Error(err), zap.Uint64("userID", userID))
		return nil, err
	}
	for _, id := range favoritedIDs {
		favoriteSet[id] = struct{}{}
	}
	return favoriteSet, nil
}
