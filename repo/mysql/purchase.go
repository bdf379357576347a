package mysql

import (
	"context"

	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/realestate_service/models/entities"
)

// PurchaseRepository 定义了购买记录在 MySQL 中的持久化操作接口。
// 购买记录是追加型数据：只有创建与查询，没有任何更新路径。
type PurchaseRepository interface {
	// CreatePurchase 追加一条购买记录。
	// - 结算批量下单时由服务层逐条调用：每条各自提交，
	//   中途失败不回滚已提交的行（尽力而为语义，契约层面明示）。
	CreatePurchase(ctx context.Context, purchase *entities.Purchase) error

	// ListPurchasesByUser 查询用户的全部购买记录（按创建顺序）。
	// - 预加载房源及其分类；房源已被软删除时 Property 为 nil。
	ListPurchasesByUser(ctx context.Context, userID uint64) ([]*entities.Purchase, error)
}

type purchaseRepository struct {
	db     *gorm.DB
	logger *core.ZapLogger
}

// NewPurchaseRepository 是 purchaseRepository 的构造函数。
func NewPurchaseRepository(db *gorm.DB, logger *core.ZapLogger) PurchaseRepository {
	return &purchaseRepository{db: db, logger: logger}
}

func (r *purchaseRepository) CreatePurchase(ctx context.Context, purchase *entities.Purchase) error {
	if err := r.db.WithContext(ctx).Create(purchase).Error; err != nil {
		r.logger.Error("创建购买记录失败",
			zap.Error(err),
			zap.Uint64("userID", purchase.UserID))
		return err
	}
	return nil
}

func (r *purchaseRepository) ListPurchasesByUser(ctx context.Context, userID uint64) ([]*entities.Purchase, error) {
	var purchases []*entities.Purchase
	err := r.db.WithContext(ctx).
		Preload("Property").
		Preload("Property.Category").
		Preload("Property.AddedBy").
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&purchases).Error
	if err != nil {
		r.logger.Error("查询用户购买记录失败", zap.Error(err), zap.Uint64("userID", userID))
		return nil, err
	}
	return purchases, nil
}
