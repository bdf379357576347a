package entities

// TransactionType 房源交易类型
type TransactionType string

const (
	TransactionSale TransactionType = "sale" // 出售
	TransactionRent TransactionType = "rent" // 出租
)

// Valid 校验枚举取值，binding 的 oneof 之外供服务层兜底使用。
func (t TransactionType) Valid() bool {
	return t == TransactionSale || t == TransactionRent
}
