package vo

import (
	"time"

	"github.com/Xushengqwer/realestate_service/models/entities"
)

// PurchaseVO 定义了购买记录的响应数据结构
// - Property 为 null 表示对应房源在购买后已被删除
type PurchaseVO struct {
	ID           uint64      `json:"id"`            // 购买记录ID
	Property     *PropertyVO `json:"property"`      // 房源载荷，已删除时为 null
	Quantity     int         `json:"quantity"`      // 数量
	PurchaseDate time.Time   `json:"purchase_date"` // 购买时间
}

// NewPurchaseVOFromEntity 将购买记录实体转换为 VO。
func NewPurchaseVOFromEntity(entity *entities.Purchase, mediaBaseURL string, isFavorite bool) *PurchaseVO {
	if entity == nil {
		return nil
	}
	return &PurchaseVO{
		ID:           entity.ID,
		Property:     NewPropertyVOFromEntity(entity.Property, mediaBaseURL, isFavorite),
		Quantity:     entity.Quantity,
		PurchaseDate: entity.PurchaseDate,
	}
}

// CheckoutResultVO 定义了购物车结算的响应数据结构
type CheckoutResultVO struct {
	Created int `json:"created"` // 本次结算生成的购买记录条数
}
