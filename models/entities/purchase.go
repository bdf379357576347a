package entities

import (
	"time"

	"github.com/Xushengqwer/go-common/models/entities"
)

// Purchase 购买记录实体
// - 只增不改：没有任何更新路径，结算/购买只会追加新行
// - 表名: purchases
type Purchase struct {
	entities.BaseModel

	// 买家用户ID，必填
	UserID uint64 `gorm:"type:bigint;not null;index"`
	User   *User  `gorm:"constraint:OnDelete:CASCADE"`

	// 房源ID，可空：房源被删除后购买记录仍然保留，序列化时房源载荷为 null
	PropertyID *uint64   `gorm:"type:bigint;index"`
	Property   *Property `gorm:"constraint:OnDelete:SET NULL"`

	// 数量，恒为 1：结算时按数量展开为多行而非聚合（沿用既有数据契约）
	Quantity int `gorm:"not null;default:1"`

	// 购买时间，创建时写入后不再变更
	PurchaseDate time.Time `gorm:"not null;autoCreateTime"`
}
