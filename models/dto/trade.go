package dto

// CartItem 结算购物车中的一个条目
type CartItem struct {
	PropertyID uint64 `json:"property_id" binding:"required"`       // 房源ID，必填
	Quantity   int    `json:"quantity" binding:"required,min=1"`    // 数量，必填，至少为 1
}

// CheckoutRequest 定义了购物车结算的请求数据结构
// - 逐条处理，遇到不存在的房源即中止；之前条目已生成的购买记录保留（尽力而为语义）
type CheckoutRequest struct {
	Items []CartItem `json:"items" binding:"required,min=1,dive"` // 条目列表，至少一条
}

// AddPurchaseRequest 后台直接补录购买记录的请求数据结构
type AddPurchaseRequest struct {
	UserID     uint64 `json:"user_id" binding:"required"`     // 买家用户ID，必填
	PropertyID uint64 `json:"property_id" binding:"required"` // 房源ID，必填
}
