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

// UserRepository 定义了用户数据在 MySQL 中的持久化操作接口。
type UserRepository interface {
	// CreateUserWithProfile 在同一事务中创建用户及其一对一的资料记录。
	// - 用户名重复时返回 gorm.ErrDuplicatedKey（依赖 TranslateError），由服务层转译。
	CreateUserWithProfile(ctx context.Context, user *entities.User, profile *entities.Profile) error

	// GetUserByUsername 按用户名检索用户，未找到返回 commonerrors.ErrRepoNotFound。
	GetUserByUsername(ctx context.Context, username string) (*entities.User, error)

	// GetUserByID 按主键检索用户，未找到返回 commonerrors.ErrRepoNotFound。
	GetUserByID(ctx context.Context, id uint64) (*entities.User, error)

	// UpdatePassword 更新用户的密码哈希。
	UpdatePassword(ctx context.Context, userID uint64, passwordHash string) error
}

type userRepository struct {
	db     *gorm.DB
	logger *core.ZapLogger
}

// NewUserRepository 是 userRepository 的构造函数。
func NewUserRepository(db *gorm.DB, logger *core.ZapLogger) UserRepository {
	return &userRepository{db: db, logger: logger}
}

// CreateUserWithProfile 实现用户与资料的原子创建。
func (r *userRepository) CreateUserWithProfile(ctx context.Context, user *entities.User, profile *entities.Profile) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		profile.UserID = user.ID
		if err := tx.Create(profile).Error; err != nil {
			return err
		}
		return nil
	})
}

func (r *userRepository) GetUserByUsername(ctx context.Context, username string) (*entities.User, error) {
	var user entities.User
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, commonerrors.ErrRepoNotFound
		}
		r.logger.Error("按用户名查询用户失败", zap.Error(err), zap.String("username", username))
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetUserByID(ctx context.Context, id uint64) (*entities.User, error) {
	var user entities.User
	err := r.db.WithContext(ctx).First(&user, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, commonerrors.ErrRepoNotFound
		}
		r.logger.Error("按ID查询用户失败", zap.Error(err), zap.Uint64("userID", id))
		return nil, err
	}
	return &user, nil
}

// UpdatePassword 实现密码哈希的更新，总是同步刷新 updated_at。
func (r *userRepository) UpdatePassword(ctx context.Context, userID uint64, passwordHash string) error {
	result := r.db.WithContext(ctx).
		Model(&entities.User{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"password":   passwordHash,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		r.logger.Error("更新用户密码失败", zap.Error(result.Error), zap.Uint64("userID", userID))
		return result.Error
	}
	if result.RowsAffected == 0 {
		return commonerrors.ErrRepoNotFound
	}
	return nil
}
