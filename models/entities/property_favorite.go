package entities

import "time"

// PropertyFavorite 用户收藏房源的多对多关联
// - 表名: property_favorites
// - 复合主键 (property_id, user_id) 保证同一用户对同一房源至多一条记录，
//   配合 ON CONFLICT DO NOTHING 实现收藏操作的幂等
type PropertyFavorite struct {
	PropertyID uint64    `gorm:"type:bigint;primaryKey"`
	UserID     uint64    `gorm:"type:bigint;primaryKey"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
}
