package dto

// CreateCategoryRequest 定义了创建分类的请求数据结构
type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required,max=100"` // 分类名称，必填
	Icon string `json:"icon" binding:"omitempty"`        // 图标，可选的不透明文本
}

// UpdateCategoryRequest 定义了更新分类的请求数据结构，nil 字段不更新
type UpdateCategoryRequest struct {
	Name *string `json:"name" binding:"omitempty,max=100"`
	Icon *string `json:"icon" binding:"omitempty"`
}
