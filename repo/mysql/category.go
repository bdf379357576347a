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

// CategoryRepository 定义了分类数据在 MySQL 中的持久化操作接口。
type CategoryRepository interface {
	CreateCategory(ctx context.Context, category *entities.Category) error

	// GetCategoryByID 未找到返回 commonerrors.ErrRepoNotFound。
	GetCategoryByID(ctx context.Context, id uint64) (*entities.Category, error)

	ListCategories(ctx context.Context) ([]*entities.Category, error)

	// UpdateCategory 按字段 map 部分更新，未命中记录返回 commonerrors.ErrRepoNotFound。
	UpdateCategory(ctx context.Context, id uint64, updateMap map[string]interface{}) error

	// DeleteCategoryWithProperties 在同一事务中删除分类及其下全部房源
	// （含这些房源的评论与收藏关系），实现删除分类的级联语义。
	DeleteCategoryWithProperties(ctx context.Context, id uint64) error
}

type categoryRepository struct {
	db     *gorm.DB
	logger *core.ZapLogger
}

// NewCategoryRepository 是 categoryRepository 的构造函数。
func NewCategoryRepository(db *gorm.DB, logger *core.ZapLogger) CategoryRepository {
	return &categoryRepository{db: db, logger: logger}
}

func (r *categoryRepository) CreateCategory(ctx context.Context, category *entities.Category) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *categoryRepository) GetCategoryByID(ctx context.Context, id uint64) (*entities.Category, error) {
	var category entities.Category
	err := r.db.WithContext(ctx).First(&category, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, commonerrors.ErrRepoNotFound
		}
		r.logger.Error("按ID查询分类失败", zap.Error(err), zap.Uint64("categoryID", id))
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) ListCategories(ctx context.Context) ([]*entities.Category, error) {
	var categories []*entities.Category
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&categories).Error; err != nil {
		r.logger.Error("查询分类列表失败", zap.Error(err))
		return nil, err
	}
	return categories, nil
}

func (r *categoryRepository) UpdateCategory(ctx context.Context, id uint64, updateMap map[string]interface{}) error {
	if len(updateMap) == 0 {
		return nil
	}
	updateMap["updated_at"] = time.Now()

	result := r.db.WithContext(ctx).
		Model(&entities.Category{}).
		Where("id = ?", id).
		Updates(updateMap)
	if result.Error != nil {
		r.logger.Error("更新分类失败", zap.Error(result.Error), zap.Uint64("categoryID", id))
		return result.Error
	}
	if result.RowsAffected == 0 {
		return commonerrors.ErrRepoNotFound
	}
	return nil
}

// DeleteCategoryWithProperties 实现分类删除的级联事务。
// 删除顺序：房源的评论 -> 房源的收藏关系 -> 房源 -> 分类，
// 保证子查询在房源被软删除前仍能命中它们的ID。
func (r *categoryRepository) DeleteCategoryWithProperties(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var propertyIDs []uint64
		if err := tx.Model(&entities.Property{}).
			Where("category_id = ?", id).
			Pluck("id", &propertyIDs).Error; err != nil {
			return err
		}

		if len(propertyIDs) > 0 {
			if err := tx.Where("property_id IN ?", propertyIDs).
				Delete(&entities.Comment{}).Error; err != nil {
				return err
			}
			if err := tx.Where("property_id IN ?", propertyIDs).
				Delete(&entities.PropertyFavorite{}).Error; err != nil {
				return err
			}
			if err := tx.Where("id IN ?", propertyIDs).
				Delete(&entities.Property{}).Error; err != nil {
				return err
			}
		}

		result := tx.Delete(&entities.Category{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return commonerrors.ErrRepoNotFound
		}
		r.logger.Info("分类及其房源已删除",
			zap.Uint64("categoryID", id),
			zap.Int("propertyCount", len(propertyIDs)))
		return nil
	})
}
