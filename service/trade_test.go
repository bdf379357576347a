package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/Xushengqwer/go-common/models/enums"

	"github.com/Xushengqwer/realestate_service/models/auth"
	"github.com/Xushengqwer/realestate_service/models/dto"
	"github.com/Xushengqwer/realestate_service/models/entities"
	"github.com/Xushengqwer/realestate_service/myErrors"
)

func makeApprovedProperty(id uint64) *entities.Property {
	property := &entities.Property{
		Name:            fmt.Sprintf("测试房源 %d", id),
		Type:            "住宅",
		Location:        "测试城市",
		Price:           100,
		TransactionType: entities.TransactionSale,
		Status:          enums.Approved,
	}
	property.ID = id
	return property
}

func newTradeServiceForTest(t *testing.T, propertyRepo *fakePropertyRepo, favoriteRepo *fakeFavoriteRepo, purchaseRepo *fakePurchaseRepo, userRepo *fakeUserRepo) *TradeService {
	t.Helper()
	return NewTradeService(propertyRepo, favoriteRepo, purchaseRepo, userRepo, NewAuthorizationPolicy(), "http://media.test", newTestLogger(t))
}

func TestFavoritePropertyIdempotent(t *testing.T) {
	ctx := context.Background()
	favoriteRepo := newFakeFavoriteRepo()
	svc := newTradeServiceForTest(t, newFakePropertyRepo(makeApprovedProperty(1)), favoriteRepo, &fakePurchaseRepo{}, newFakeUserRepo())
	identity := &auth.Identity{UserID: 7}

	if err := svc.FavoriteProperty(ctx, identity, 1); err != nil {
		t.Fatalf("首次收藏失败: %v", err)
	}
	if err := svc.FavoriteProperty(ctx, identity, 1); err != nil {
		t.Fatalf("重复收藏应当幂等成功: %v", err)
	}
	if len(favoriteRepo.favorites) != 1 {
		t.Errorf("重复收藏不应产生额外关系，got %d", len(favoriteRepo.favorites))
	}

	if err := svc.UnfavoriteProperty(ctx, identity, 1); err != nil {
		t.Fatalf("取消收藏失败: %v", err)
	}
	if err := svc.UnfavoriteProperty(ctx, identity, 1); err != nil {
		t.Fatalf("重复取消收藏应当幂等成功: %v", err)
	}
	if len(favoriteRepo.favorites) != 0 {
		t.Errorf("取消后关系应被清空，got %d", len(favoriteRepo.favorites))
	}
}

func TestFavoritePropertyNotFound(t *testing.T) {
	ctx := context.Background()
	svc := newTradeServiceForTest(t, newFakePropertyRepo(), newFakeFavoriteRepo(), &fakePurchaseRepo{}, newFakeUserRepo())

	err := svc.FavoriteProperty(ctx, &auth.Identity{UserID: 7}, 42)
	if !errors.Is(err, commonerrors.ErrRepoNotFound) {
		t.Errorf("收藏不存在的房源应返回 ErrRepoNotFound，got %v", err)
	}
}

func TestBuyPropertyCreatesSingleRow(t *testing.T) {
	ctx := context.Background()
	purchaseRepo := &fakePurchaseRepo{}
	svc := newTradeServiceForTest(t, newFakePropertyRepo(makeApprovedProperty(1)), newFakeFavoriteRepo(), purchaseRepo, newFakeUserRepo())

	if err := svc.BuyProperty(ctx, &auth.Identity{UserID: 7}, 1); err != nil {
		t.Fatalf("购买失败: %v", err)
	}
	if len(purchaseRepo.purchases) != 1 {
		t.Fatalf("应生成一条购买记录，got %d", len(purchaseRepo.purchases))
	}
	purchase := purchaseRepo.purchases[0]
	if purchase.Quantity != 1 || purchase.UserID != 7 || purchase.PropertyID == nil || *purchase.PropertyID != 1 {
		t.Errorf("购买记录内容不符: %+v", purchase)
	}
}

func TestCheckoutExpandsQuantities(t *testing.T) {
	ctx := context.Background()
	purchaseRepo := &fakePurchaseRepo{}
	svc := newTradeServiceForTest(t, newFakePropertyRepo(makeApprovedProperty(1), makeApprovedProperty(2)), newFakeFavoriteRepo(), purchaseRepo, newFakeUserRepo())

	result, err := svc.Checkout(ctx, &auth.Identity{UserID: 7}, &dto.CheckoutRequest{
		Items: []dto.CartItem{
			{PropertyID: 1, Quantity: 2},
			{PropertyID: 2, Quantity: 1},
		},
	})
	if err != nil {
		t.Fatalf("结算失败: %v", err)
	}
	if result.Created != 3 {
		t.Errorf("数量 2+1 应展开为 3 条记录，got %d", result.Created)
	}
	if len(purchaseRepo.purchases) != 3 {
		t.Fatalf("仓库应有 3 条记录，got %d", len(purchaseRepo.purchases))
	}
	for _, purchase := range purchaseRepo.purchases {
		if purchase.Quantity != 1 {
			t.Errorf("展开后的每条记录数量应为 1，got %d", purchase.Quantity)
		}
	}
}

func TestCheckoutPartialCommitOnMissingProperty(t *testing.T) {
	ctx := context.Background()
	purchaseRepo := &fakePurchaseRepo{}
	svc := newTradeServiceForTest(t, newFakePropertyRepo(makeApprovedProperty(1)), newFakeFavoriteRepo(), purchaseRepo, newFakeUserRepo())

	_, err := svc.Checkout(ctx, &auth.Identity{UserID: 7}, &dto.CheckoutRequest{
		Items: []dto.CartItem{
			{PropertyID: 1, Quantity: 2},
			{PropertyID: 42, Quantity: 1},
		},
	})
	if err == nil {
		t.Fatal("缺失房源的结算应当失败")
	}

	var notFound *myErrors.PropertyNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("应返回 PropertyNotFoundError，got %T", err)
	}
	if notFound.PropertyID != 42 {
		t.Errorf("错误应点名缺失的房源ID 42，got %d", notFound.PropertyID)
	}
	if want := "Property 42 not found"; notFound.Error() != want {
		t.Errorf("错误消息不符: got %q, want %q", notFound.Error(), want)
	}
	if !errors.Is(err, commonerrors.ErrRepoNotFound) {
		t.Error("PropertyNotFoundError 应匹配 ErrRepoNotFound，保证控制器映射到 404")
	}

	// 非原子语义：此前条目生成的记录保留
	if len(purchaseRepo.purchases) != 2 {
		t.Errorf("中止前已提交的 2 条记录应保留，got %d", len(purchaseRepo.purchases))
	}
}

func TestCheckoutRequiresLogin(t *testing.T) {
	ctx := context.Background()
	svc := newTradeServiceForTest(t, newFakePropertyRepo(), newFakeFavoriteRepo(), &fakePurchaseRepo{}, newFakeUserRepo())

	_, err := svc.Checkout(ctx, nil, &dto.CheckoutRequest{Items: []dto.CartItem{{PropertyID: 1, Quantity: 1}}})
	if !errors.Is(err, commonerrors.ErrUserNotLoggedIn) {
		t.Errorf("匿名结算应返回 ErrUnauthorized，got %v", err)
	}
}

func TestListOwnPurchasesKeepsOrphanedRows(t *testing.T) {
	ctx := context.Background()
	purchaseRepo := &fakePurchaseRepo{}
	favoriteRepo := newFakeFavoriteRepo()
	property := makeApprovedProperty(1)
	svc := newTradeServiceForTest(t, newFakePropertyRepo(property), favoriteRepo, purchaseRepo, newFakeUserRepo())
	identity := &auth.Identity{UserID: 7}

	// 一条房源仍在且已收藏，一条房源已被删除
	propertyID := uint64(1)
	_ = purchaseRepo.CreatePurchase(ctx, &entities.Purchase{UserID: 7, PropertyID: &propertyID, Property: property, Quantity: 1})
	_ = purchaseRepo.CreatePurchase(ctx, &entities.Purchase{UserID: 7, Quantity: 1})
	_ = favoriteRepo.AddFavorite(ctx, 7, 1)

	purchases, err := svc.ListOwnPurchases(ctx, identity)
	if err != nil {
		t.Fatalf("查询购买记录失败: %v", err)
	}
	if len(purchases) != 2 {
		t.Fatalf("应返回全部 2 条记录，got %d", len(purchases))
	}
	if purchases[0].Property == nil || !purchases[0].Property.IsFavorite {
		t.Error("仍存在的房源应带载荷且收藏标记为 true")
	}
	if purchases[1].Property != nil {
		t.Error("房源已删除的记录载荷应为 null")
	}
}

func TestAddPurchaseDirectRequiresAdmin(t *testing.T) {
	ctx := context.Background()
	buyer := &entities.User{Username: "buyer@test.local"}
	buyer.ID = 7
	purchaseRepo := &fakePurchaseRepo{}
	svc := newTradeServiceForTest(t, newFakePropertyRepo(makeApprovedProperty(1)), newFakeFavoriteRepo(), purchaseRepo, newFakeUserRepo(buyer))

	req := &dto.AddPurchaseRequest{UserID: 7, PropertyID: 1}
	if err := svc.AddPurchaseDirect(ctx, &auth.Identity{UserID: 8}, req); !errors.Is(err, myErrors.ErrForbidden) {
		t.Errorf("普通用户补录应返回 ErrForbidden，got %v", err)
	}

	if err := svc.AddPurchaseDirect(ctx, &auth.Identity{UserID: 1, IsAdmin: true}, req); err != nil {
		t.Fatalf("管理员补录失败: %v", err)
	}
	if len(purchaseRepo.purchases) != 1 || purchaseRepo.purchases[0].UserID != 7 {
		t.Errorf("补录记录应归属目标用户，got %+v", purchaseRepo.purchases)
	}

	if err := svc.AddPurchaseDirect(ctx, &auth.Identity{UserID: 1, IsAdmin: true}, &dto.AddPurchaseRequest{UserID: 99, PropertyID: 1}); !errors.Is(err, commonerrors.ErrRepoNotFound) {
		t.Errorf("目标用户不存在应返回 ErrRepoNotFound，got %v", err)
	}
}
