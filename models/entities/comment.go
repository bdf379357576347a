package entities

import "github.com/Xushengqwer/go-common/models/entities"

// Comment 房源评论实体
// - 只支持创建与（管理员）删除，无编辑路径
// - 表名: comments
type Comment struct {
	entities.BaseModel

	// 评论人用户ID，必填；序列化时输出其展示名
	UserID uint64 `gorm:"type:bigint;not null;index"`
	User   *User  `gorm:"constraint:OnDelete:CASCADE"`

	// 所属房源ID，必填
	PropertyID uint64    `gorm:"type:bigint;not null;index"`
	Property   *Property `gorm:"constraint:OnDelete:CASCADE"`

	// 评论内容，非空文本
	Content string `gorm:"type:text;not null"`
}
