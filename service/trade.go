package service

import (
	"context"
	"errors"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"

	"github.com/Xushengqwer/realestate_service/models/auth"
	"github.com/Xushengqwer/realestate_service/models/dto"
	"github.com/Xushengqwer/realestate_service/models/entities"
	"github.com/Xushengqwer/realestate_service/models/vo"
	"github.com/Xushengqwer/realestate_service/myErrors"
	mysqlRepo "github.com/Xushengqwer/realestate_service/repo/mysql"
)

// TradeService 封装了收藏与购买相关的业务逻辑。
type TradeService struct {
	propertyRepo mysqlRepo.PropertyRepository
	favoriteRepo mysqlRepo.FavoriteRepository
	purchaseRepo mysqlRepo.PurchaseRepository
	userRepo     mysqlRepo.UserRepository
	policy       *AuthorizationPolicy
	mediaBaseURL string
	logger       *core.ZapLogger
}

// NewTradeService 是 TradeService 的构造函数。
func NewTradeService(
	propertyRepo mysqlRepo.PropertyRepository,
	favoriteRepo mysqlRepo.FavoriteRepository,
	purchaseRepo mysqlRepo.PurchaseRepository,
	userRepo mysqlRepo.UserRepository,
	policy *AuthorizationPolicy,
	mediaBaseURL string,
	logger *core.ZapLogger,
) *TradeService {
	return &TradeService{
		propertyRepo: propertyRepo,
		favoriteRepo: favoriteRepo,
		purchaseRepo: purchaseRepo,
		userRepo:     userRepo,
		policy:       policy,
		mediaBaseURL: mediaBaseURL,
		logger:       logger,
	}
}

// ensurePropertyExists 校验房源存在，不存在时返回 commonerrors.ErrRepoNotFound。
func (s *TradeService) ensurePropertyExists(ctx context.Context, propertyID uint64) error {
	_, err := s.propertyRepo.GetPropertyByID(ctx, propertyID)
	return err
}

// FavoriteProperty 收藏房源；重复收藏是幂等的。
func (s *TradeService) FavoriteProperty(ctx context.Context, identity *auth.Identity, propertyID uint64) error {
	if err := s.policy.RequireUser(identity); err != nil {
		return err
	}
	if err := s.ensurePropertyExists(ctx, propertyID); err != nil {
		return err
	}
	return s.favoriteRepo.AddFavorite(ctx, identity.UserID, propertyID)
}

// UnfavoriteProperty 取消收藏；未收藏过同样视为成功。
func (s *TradeService) UnfavoriteProperty(ctx context.Context, identity *auth.Identity, propertyID uint64) error {
	if err := s.policy.RequireUser(identity); err != nil {
		return err
	}
	if err := s.ensurePropertyExists(ctx, propertyID); err != nil {
		return err
	}
	return s.favoriteRepo.RemoveFavorite(ctx, identity.UserID, propertyID)
}

// BuyProperty 对单个房源生成一条数量为 1 的购买记录。
func (s *TradeService) BuyProperty(ctx context.Context, identity *auth.Identity, propertyID uint64) error {
	if err := s.policy.RequireUser(identity); err != nil {
		return err
	}
	if err := s.ensurePropertyExists(ctx, propertyID); err != nil {
		return err
	}

	purchase := &entities.Purchase{
		UserID:     identity.UserID,
		PropertyID: &propertyID,
		Quantity:   1,
	}
	if err := s.purchaseRepo.CreatePurchase(ctx, purchase); err != nil {
		return err
	}
	s.logger.Info("生成购买记录", zap.Uint64("userID", identity.UserID), zap.Uint64("propertyID", propertyID))
	return nil
}

// Checkout 批量结算购物车。
// - 逐条顺序处理：条目数量为 N 时展开成 N 条数量为 1 的购买记录。
// - 某个条目指向的房源不存在时立即中止，返回点名该ID的
//   myErrors.PropertyNotFoundError；此前条目生成的记录保留（非原子语义）。
func (s *TradeService) Checkout(ctx context.Context, identity *auth.Identity, req *dto.CheckoutRequest) (*vo.CheckoutResultVO, error) {
	if err := s.policy.RequireUser(identity); err != nil {
		return nil, err
	}

	created := 0
	for _, item := range req.Items {
		if err := s.ensurePropertyExists(ctx, item.PropertyID); err != nil {
			if errors.Is(err, commonerrors.ErrRepoNotFound) {
				s.logger.Warn("结算中止：条目指向的房源不存在",
					zap.Uint64("propertyID", item.PropertyID),
					zap.Int("alreadyCreated", created))
				return nil, &myErrors.PropertyNotFoundError{PropertyID: item.PropertyID}
			}
			return nil, err
		}

		propertyID := item.PropertyID
		for i := 0; i < item.Quantity; i++ {
			purchase := &entities.Purchase{
				UserID:     identity.UserID,
				PropertyID: &propertyID,
				Quantity:   1,
			}
			if err := s.purchaseRepo.CreatePurchase(ctx, purchase); err != nil {
				return nil, err
			}
			created++
		}
	}

	s.logger.Info("购物车结算完成", zap.Uint64("userID", identity.UserID), zap.Int("created", created))
	return &vo.CheckoutResultVO{Created: created}, nil
}

// ListOwnPurchases 返回请求方本人的购买记录。
// 房源已被删除的记录照常返回，房源载荷为 null。
func (s *TradeService) ListOwnPurchases(ctx context.Context, identity *auth.Identity) ([]*vo.PurchaseVO, error) {
	if err := s.policy.RequireUser(identity); err != nil {
		return nil, err
	}

	purchases, err := s.purchaseRepo.ListPurchasesByUser(ctx, identity.UserID)
	if err != nil {
		return nil, err
	}

	// 针对仍然存在的房源批量解析收藏标记
	ids := make([]uint64, 0, len(purchases))
	for _, purchase := range purchases {
		if purchase.Property != nil {
			ids = append(ids, purchase.Property.ID)
		}
	}
	var favoriteSet map[uint64]struct{}
	if len(ids) > 0 {
		set, favErr := s.favoriteRepo.FilterFavorited(ctx, identity.UserID, ids)
		if favErr != nil {
			s.logger.Warn("解析购买记录的收藏标记失败，按未收藏返回", zap.Error(favErr))
		} else {
			favoriteSet = set
		}
	}

	purchaseVOs := make([]*vo.PurchaseVO, 0, len(purchases))
	for _, purchase := range purchases {
		isFavorite := false
		if purchase.Property != nil {
			_, isFavorite = favoriteSet[purchase.Property.ID]
		}
		purchaseVOs = append(purchaseVOs, vo.NewPurchaseVOFromEntity(purchase, s.mediaBaseURL, isFavorite))
	}
	return purchaseVOs, nil
}

// AddPurchaseDirect 后台补录一条购买记录（仅管理员）。
func (s *TradeService) AddPurchaseDirect(ctx context.Context, identity *auth.Identity, req *dto.AddPurchaseRequest) error {
	if err := s.policy.RequireAdmin(identity); err != nil {
		return err
	}
	if _, err := s.userRepo.GetUserByID(ctx, req.UserID); err != nil {
		return err
	}
	if err := s.ensurePropertyExists(ctx, req.PropertyID); err != nil {
		return err
	}

	propertyID := req.PropertyID
	purchase := &entities.Purchase{
		UserID:     req.UserID,
		PropertyID: &propertyID,
		Quantity:   1,
	}
	if err := s.purchaseRepo.CreatePurchase(ctx, purchase); err != nil {
		return err
	}
	s.logger.Info("后台补录购买记录",
		zap.Uint64("operatorID", identity.UserID),
		zap.Uint64("userID", req.UserID),
		zap.Uint64("propertyID", req.PropertyID))
	return nil
}
