package mysql

import (
	"context"

	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/realestate_service/models/dto"
	"github.com/Xushengqwer/realestate_service/models/entities"
)

// PropertyAdminRepository 定义了管理后台的房源查询接口。
// - 与 PropertyRepository 分离：条件组合和分页只有后台用，避免污染面向前台的接口。
type PropertyAdminRepository interface {
	// ListPropertiesByCondition 按条件分页查询房源列表，返回列表与总数。
	ListPropertiesByCondition(ctx context.Context, req *dto.ListPropertiesByConditionRequest) ([]*entities.Property, int64, error)
}

type propertyAdminRepository struct {
	db     *gorm.DB
	logger *core.ZapLogger
}

// NewPropertyAdminRepository 是 propertyAdminRepository 的构造函数。
func NewPropertyAdminRepository(db *gorm.DB, logger *core.ZapLogger) PropertyAdminRepository {
	return &propertyAdminRepository{db: db, logger: logger}
}

func (r *propertyAdminRepository) ListPropertiesByCondition(ctx context.Context, req *dto.ListPropertiesByConditionRequest) ([]*entities.Property, int64, error) {
	query := r.db.WithContext(ctx).Model(&entities.Property{})

	if req.Name != nil && *req.Name != "" {
		query = query.Where("name LIKE ?", "%"+*req.Name+"%")
	}
	if req.Status != nil {
		query = query.Where("status = ?", *req.Status)
	}
	if req.CategoryID != nil {
		query = query.Where("category_id = ?", *req.CategoryID)
	}
	if req.IsFeatured != nil {
		query = query.Where("is_featured = ?", *req.IsFeatured)
	}

	// 先数总数再取当前页，两个查询共享同一组 where 条件。
	var total int64
	if err := query.Count(&total).Error; err != nil {
		r.logger.Error("统计后台房源总数失败", zap.Error(err), zap.Any("request", req))
		return nil, 0, err
	}

	orderBy := "created_at"
	if req.OrderBy == "updated_at" {
		orderBy = "updated_at"
	}
	direction := "ASC"
	if req.OrderDesc {
		direction = "DESC"
	}

	var properties []*entities.Property
	err := query.
		Preload("Category").
		Preload("AddedBy").
		Order(orderBy + " " + direction).
		Offset(req.GetOffset()).
		Limit(req.PageSize).
		Find(&properties).Error
	if err != nil {
		r.logger.Error("后台按条件查询房源列表失败", zap.Error(err), zap.Any("request", req))
		return nil, 0, err
	}
	return properties, total, nil
}
