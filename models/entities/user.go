package entities

import "github.com/Xushengqwer/go-common/models/entities"

// User 用户实体
// - 使用场景: 认证、房源归属、收藏/购买/评论关联
// - 表名: users (GORM 默认使用结构体名复数形式)
type User struct {
	entities.BaseModel // 嵌入自定义的 BaseModel ,包含 ID, CreatedAt, UpdatedAt, DeletedAt，支持软删除

	// 用户名，注册时取邮箱，全表唯一
	// - 类型: varchar(255)，邮箱长度上限内
	// - GORM 标签: uniqueIndex 由数据库保证唯一性，重复注册依赖唯一键冲突报错
	Username string `gorm:"type:varchar(255);not null;uniqueIndex"`

	// 邮箱，与 Username 同值冗余存储，便于后续用户名与邮箱解耦
	Email string `gorm:"type:varchar(255);not null"`

	// 展示名（对应注册时提交的 name），可为空；为空时对外展示 Username
	Name string `gorm:"type:varchar(150)"`

	// 密码哈希，bcrypt 产物，永不参与序列化
	Password string `gorm:"type:varchar(255);not null"`

	// 管理员标志，决定审核、全量可见性与后台操作权限
	IsAdmin bool `gorm:"default:false"`
}

// DisplayName 对外展示名：优先展示 Name，为空时回退到 Username。
func (u *User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	return u.Username
}
