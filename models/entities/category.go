package entities

import "github.com/Xushengqwer/go-common/models/entities"

// Category 房源分类实体
// - 表名: categories
// - 关系: 与 Property 一对多；删除分类时在同一事务中级联删除其下全部房源
type Category struct {
	entities.BaseModel

	// 分类名称，不要求唯一
	Name string `gorm:"type:varchar(100);not null"`

	// 图标，不透明文本（前端自行解释，可能是 URL 或内联 SVG/base64）
	Icon string `gorm:"type:text"`
}
