package mysql

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/Xushengqwer/go-common/core"
	"github.com/Xushengqwer/go-common/models/enums"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/realestate_service/models/entities"
)

// PropertyRepository 定义了房源数据在 MySQL 中的持久化操作接口。
// 接口的设计旨在将数据访问逻辑与业务逻辑（服务层）解耦。
type PropertyRepository interface {
	// CreateProperty 持久化一个新的房源记录。
	CreateProperty(ctx context.Context, property *entities.Property) error

	// GetPropertyByID 根据单个 ID 检索房源信息（预加载分类与提交人）。
	// - 如果未找到房源，返回 commonerrors.ErrRepoNotFound 错误。
	GetPropertyByID(ctx context.Context, id uint64) (*entities.Property, error)

	// UpdateProperty 按字段 map 部分更新房源。
	// - 总是会自动更新房源的修改时间 (updated_at)。
	// - 未命中记录返回 commonerrors.ErrRepoNotFound。
	UpdateProperty(ctx context.Context, id uint64, updateMap map[string]interface{}) error

	// DeleteProperty 对指定房源执行软删除，同一事务内清理其评论与收藏关系。
	// - 购买记录有意保留：序列化时房源载荷为 null。
	DeleteProperty(ctx context.Context, id uint64) error

	// ListByStatuses 按审核状态集合查询房源列表。
	// - statuses 为空表示不过滤（管理员全量可见）。
	ListByStatuses(ctx context.Context, statuses []enums.Status) ([]*entities.Property, error)

	// ListByCategory 查询指定分类下的全部房源（不做可见性过滤，沿用既有行为）。
	ListByCategory(ctx context.Context, categoryID uint64) ([]*entities.Property, error)

	// ListFeatured 查询全部精选房源（不做可见性过滤，沿用既有行为）。
	ListFeatured(ctx context.Context) ([]*entities.Property, error)

	// SearchByName 按名称做大小写不敏感的子串匹配。
	SearchByName(ctx context.Context, query string) ([]*entities.Property, error)
}

// propertyRepository 是 PropertyRepository 接口针对 MySQL 的具体实现。
type propertyRepository struct {
	db     *gorm.DB
	logger *core.ZapLogger
}

// NewPropertyRepository 是 propertyRepository 的构造函数。
func NewPropertyRepository(db *gorm.DB, logger *core.ZapLogger) PropertyRepository {
	return &propertyRepository{db: db, logger: logger}
}

// withAssociations 列表/详情的统一预加载：分类嵌套表示 + 提交人展示名都依赖它。
func (r *propertyRepository) withAssociations(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Category").
		Preload("AddedBy")
}

func (r *propertyRepository) CreateProperty(ctx context.Context, property *entities.Property) error {
	if err := r.db.WithContext(ctx).Create(property).Error; err != nil {
		return err
	}
	return nil
}

func (r *propertyRepository) GetPropertyByID(ctx context.Context, id uint64) (*entities.Property, error) {
	var property entities.Property
	err := r.withAssociations(ctx).First(&property, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, commonerrors.ErrRepoNotFound
		}
		r.logger.Error("按ID查询房源失败", zap.Error(err), zap.Uint64("propertyID", id))
		return nil, err
	}
	return &property, nil
}

func (r *propertyRepository) UpdateProperty(ctx context.Context, id uint64, updateMap map[string]interface{}) error {
	if len(updateMap) == 0 {
		r.logger.Info("没有提供任何有效的字段来更新房源", zap.Uint64("propertyID", id))
		return nil
	}
	updateMap["updated_at"] = time.Now()

	result := r.db.WithContext(ctx).
		Model(&entities.Property{}).
		Where("id = ?", id).
		Updates(updateMap)
	if result.Error != nil {
		r.logger.Error("更新房源数据库操作失败",
			zap.Error(result.Error),
			zap.Uint64("propertyID", id),
			zap.Any("updateData", updateMap))
		return result.Error
	}
	if result.RowsAffected == 0 {
		r.logger.Warn("尝试更新房源但未找到记录或记录已被删除", zap.Uint64("propertyID", id))
		return commonerrors.ErrRepoNotFound
	}
	return nil
}

func (r *propertyRepository) DeleteProperty(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("property_id = ?", id).Delete(&entities.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("property_id = ?", id).Delete(&entities.PropertyFavorite{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&entities.Property{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return commonerrors.ErrRepoNotFound
		}
		return nil
	})
}

func (r *propertyRepository) ListByStatuses(ctx context.Context, statuses []enums.Status) ([]*entities.Property, error) {
	var properties []*entities.Property
	query := r.withAssociations(ctx)
	if len(statuses) > 0 {
		query = query.Where("status IN ?", statuses)
	}
	if err := query.Order("created_at DESC").Find(&properties).Error; err != nil {
		r.logger.Error("按状态查询房源列表失败", zap.Error(err), zap.Any("statuses", statuses))
		return nil, err
	}
	return properties, nil
}

func (r *propertyRepository) ListByCategory(ctx context.Context, categoryID uint64) ([]*entities.Property, error) {
	var properties []*entities.Property
	err := r.withAssociations(ctx).
		Where("category_id = ?", categoryID).
		Order("created_at DESC").
		Find(&properties).Error
	if err != nil {
		r.logger.Error("按分类查询房源列表失败", zap.Error(err), zap.Uint64("categoryID", categoryID))
		return nil, err
	}
	return properties, nil
}

func (r *propertyRepository) ListFeatured(ctx context.Context) ([]*entities.Property, error) {
	var properties []*entities.Property
	err := r.withAssociations(ctx).
		Where("is_featured = ?", true).
		Order("created_at DESC").
		Find(&properties).Error
	if err != nil {
		r.logger.Error("查询精选房源列表失败", zap.Error(err))
		return nil, err
	}
	return properties, nil
}

func (r *propertyRepository) SearchByName(ctx context.Context, query string) ([]*entities.Property, error) {
	var properties []*entities.Property
	pattern := "%" + strings.ToLower(query) + "%"
	err := r.withAssociations(ctx).
		Where("LOWER(name) LIKE ?", pattern).
		Order("created_at DESC").
		Find(&properties).Error
	if err != nil {
		r.logger.Error("按名称搜索房源失败", zap.Error(err), zap.String("query", query))
		return nil, err
	}
	return properties, nil
}
