package dto

import (
	"github.com/Xushengqwer/go-common/models/enums"

	"github.com/Xushengqwer/realestate_service/models/entities"
)

// CreatePropertyRequest 定义了创建房源的请求数据结构
// - multipart/form-data 提交，图片文件独立于这些表单字段（字段名 "image"）
// - IsFeatured/Status 允许提交，但非管理员的取值会被授权策略强制覆盖
type CreatePropertyRequest struct {
	Name            string                   `json:"name" form:"name" binding:"required,max=255"`                              // 房源名称，必填
	Type            string                   `json:"type" form:"type" binding:"required,max=100"`                              // 房源类型，必填
	Location        string                   `json:"location" form:"location" binding:"required,max=255"`                      // 位置，必填
	Price           float64                  `json:"price" form:"price" binding:"omitempty,gte=0"`                             // 价格，可选，大于等于0
	TransactionType entities.TransactionType `json:"transaction_type" form:"transaction_type" binding:"omitempty,oneof=sale rent"` // 交易类型，缺省 sale
	CategoryID      uint64                   `json:"category_id" form:"category_id" binding:"required"`                        // 所属分类，必填
	IsFeatured      *bool                    `json:"is_featured" form:"is_featured" binding:"omitempty"`                       // 精选标记，可选（非管理员无效）
	Status          *enums.Status            `json:"status" form:"status" binding:"omitempty,oneof=0 1 2" swaggertype:"integer"` // 审核状态，可选（非管理员无效）
}

// UpdatePropertyRequest 定义了更新房源的请求数据结构
// - 全部字段可选：nil 表示不更新对应字段
// - Status/IsFeatured 仅管理员生效，属主提交时静默忽略
type UpdatePropertyRequest struct {
	Name            *string                   `json:"name" form:"name" binding:"omitempty,max=255"`
	Type            *string                   `json:"type" form:"type" binding:"omitempty,max=100"`
	Location        *string                   `json:"location" form:"location" binding:"omitempty,max=255"`
	Price           *float64                  `json:"price" form:"price" binding:"omitempty,gte=0"`
	TransactionType *entities.TransactionType `json:"transaction_type" form:"transaction_type" binding:"omitempty,oneof=sale rent"`
	CategoryID      *uint64                   `json:"category_id" form:"category_id" binding:"omitempty"`
	IsFeatured      *bool                     `json:"is_featured" form:"is_featured" binding:"omitempty"`
	Status          *enums.Status             `json:"status" form:"status" binding:"omitempty,oneof=0 1 2" swaggertype:"integer"`
}

// SearchPropertiesRequest 房源名称模糊搜索的查询参数
type SearchPropertiesRequest struct {
	Query string `form:"q" binding:"required,max=255"` // 搜索关键词，必填，大小写不敏感子串匹配
}

// ByCategoryRequest 按分类查询房源的查询参数
type ByCategoryRequest struct {
	CategoryID uint64 `form:"category_id" binding:"required"` // 分类ID，必填
}

// ListPropertiesByConditionRequest 定义管理员分页条件查询房源的请求数据结构
type ListPropertiesByConditionRequest struct {
	Name       *string       `form:"name" json:"name,omitempty"`                                  // 名称模糊查询，可选
	Status     *enums.Status `form:"status" json:"status,omitempty" swaggertype:"integer"`        // 状态筛选，可选（0=待审核, 1=已审核, 2=拒绝）
	CategoryID *uint64       `form:"category_id" json:"category_id,omitempty"`                    // 分类筛选，可选
	IsFeatured *bool         `form:"is_featured" json:"is_featured,omitempty"`                    // 精选筛选，可选
	OrderBy    string        `form:"order_by" json:"order_by"`                                    // 排序字段（created_at 或 updated_at），默认 created_at
	OrderDesc  bool          `form:"order_desc" json:"order_desc"`                                // 是否降序，true 为降序
	Page       int           `form:"page" json:"page" binding:"required,gt=0"`                    // 页码，从 1 开始，必填
	PageSize   int           `form:"page_size" json:"page_size" binding:"required,gt=0,lte=100"`  // 每页大小，必填
}

// GetOffset 计算分页偏移量。
func (r *ListPropertiesByConditionRequest) GetOffset() int {
	if r.Page <= 0 {
		return 0
	}
	return (r.Page - 1) * r.PageSize
}
