package entities

import (
	"github.com/Xushengqwer/go-common/models/entities"
	"github.com/Xushengqwer/go-common/models/enums"
)

// Property 房源实体
// - 使用场景: 房源列表页/详情页的数据，承载审核状态与精选标记
// - 表名: properties (GORM 默认使用结构体名复数形式)
type Property struct {
	entities.BaseModel // 嵌入自定义的 BaseModel ,包含 ID, CreatedAt, UpdatedAt, DeletedAt，支持软删除

	// 房源名称，必填，最大长度255个字符
	Name string `gorm:"type:varchar(255);not null"`

	// 图片路径，可能是 COS 上传后的绝对 URL，也可能是媒体目录下的相对路径
	// - 序列化时统一解析为绝对 URL（已是 http(s) 开头的原样透传，空值输出空串）
	ImagePath string `gorm:"type:varchar(1023)"`

	// 图片在COS中的ObjectKey，仅服务端上传的图片有值，删除房源时用于清理对象
	ImageObjectKey string `gorm:"type:varchar(255)"`

	// 房源类型（apartment/villa/office 等自由文本），必填
	Type string `gorm:"type:varchar(100);not null"`

	// 地理位置描述，必填
	Location string `gorm:"type:varchar(255);not null"`

	// 价格，decimal(10,2)，期望非负（与原始数据契约一致，不在数据库层强制）
	Price float64 `gorm:"type:decimal(10,2);not null;default:0"`

	// 交易类型: sale=出售, rent=出租
	TransactionType TransactionType `gorm:"type:varchar(50);not null;default:'sale'"`

	// 精选标记，非管理员提交时被策略层强制为 false
	IsFeatured bool `gorm:"default:false"`

	// 审核状态，枚举类型：0=待审核, 1=已审核, 2=拒绝
	// - 非管理员创建默认待审核；管理员创建默认已审核
	Status enums.Status `gorm:"type:int;default:0"`

	// 所属分类ID，外键，必填；删除分类时其下房源一并删除（事务内级联）
	CategoryID uint64    `gorm:"type:bigint;not null;index"`
	Category   *Category `gorm:"constraint:OnDelete:CASCADE"`

	// 提交人用户ID，可空；删除用户时置 NULL 而非删除房源
	AddedByID *uint64 `gorm:"type:bigint;index"`
	AddedBy   *User   `gorm:"foreignKey:AddedByID;constraint:OnDelete:SET NULL"`
}
