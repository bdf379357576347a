package entities

import "github.com/Xushengqwer/go-common/models/entities"

// Profile 用户资料实体
// - 与 User 表一对一关系，注册时在同一事务中创建
// - 表名: profiles
type Profile struct {
	entities.BaseModel

	// 所属用户ID，外键，unique 保证一对一
	UserID uint64 `gorm:"type:bigint;not null;uniqueIndex"`
	User   *User  `gorm:"constraint:OnDelete:CASCADE"`

	// 联系电话，可选
	Phone string `gorm:"type:varchar(20)"`

	// 头像公开访问 URL，可选；相对路径的存量数据由序列化层拼接为绝对 URL
	AvatarURL string `gorm:"type:varchar(1023)"`

	// 头像在 COS 中的 ObjectKey，更新头像时用于删除旧对象
	AvatarObjectKey string `gorm:"type:varchar(255)"`
}
