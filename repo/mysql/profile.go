package mysql

import (
	"context"
	"errors"
	"time"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/realestate_service/models/entities"
)

// ProfileRepository 定义了用户资料在 MySQL 中的持久化操作接口。
type ProfileRepository interface {
	// GetProfileByUserID 按用户ID检索资料，未找到返回 commonerrors.ErrRepoNotFound。
	GetProfileByUserID(ctx context.Context, userID uint64) (*entities.Profile, error)

	// UpdateProfile 按字段 map 部分更新资料；空 map 直接返回。
	UpdateProfile(ctx context.Context, userID uint64, updateMap map[string]interface{}) error
}

type profileRepository struct {
	db     *gorm.DB
	logger *core.ZapLogger
}

// NewProfileRepository 是 profileRepository 的构造函数。
func NewProfileRepository(db *gorm.DB, logger *core.ZapLogger) ProfileRepository {
	return &profileRepository{db: db, logger: logger}
}

func (r *profileRepository) GetProfileByUserID(ctx context.Context, userID uint64) (*entities.Profile, error) {
	var profile entities.Profile
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, commonerrors.ErrRepoNotFound
		}
		r.logger.Error("按用户ID查询资料失败", zap.Error(err), zap.Uint64("userID", userID))
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) UpdateProfile(ctx context.Context, userID uint64, updateMap map[string]interface{}) error {
	if len(updateMap) == 0 {
		return nil
	}
	updateMap["updated_at"] = time.Now()

	result := r.db.WithContext(ctx).
		Model(&entities.Profile{}).
		Where("user_id = ?", userID).
		Updates(updateMap)
	if result.Error != nil {
		r.logger.Error("更新用户资料失败", zap.Error(result.Error), zap.Uint64("userID", userID))
		return result.Error
	}
	if result.RowsAffected == 0 {
		return commonerrors.ErrRepoNotFound
	}
	return nil
}
