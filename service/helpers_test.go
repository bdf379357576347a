package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/Xushengqwer/go-common/commonerrors"
	commonConfig "github.com/Xushengqwer/go-common/config"
	"github.com/Xushengqwer/go-common/core"
	"github.com/Xushengqwer/go-common/models/enums"
	"gorm.io/gorm"

	"github.com/Xushengqwer/realestate_service/models/entities"
)

func newTestLogger(t *testing.T) *core.ZapLogger {
	t.Helper()
	logger, err := core.NewZapLogger(commonConfig.ZapConfig{})
	if err != nil {
		t.Fatalf("初始化测试 logger 失败: %v", err)
	}
	return logger
}

// fakePropertyRepo 用内存 map 模拟房源仓库，只实现测试会触达的路径。
type fakePropertyRepo struct {
	properties map[uint64]*entities.Property
}

func newFakePropertyRepo(properties ...*entities.Property) *fakePropertyRepo {
	repo := &fakePropertyRepo{properties: make(map[uint64]*entities.Property)}
	for _, p := range properties {
		repo.properties[p.ID] = p
	}
	return repo
}

func (f *fakePropertyRepo) CreateProperty(ctx context.Context, property *entities.Property) error {
	property.ID = uint64(len(f.properties) + 1)
	f.properties[property.ID] = property
	return nil
}

func (f *fakePropertyRepo) GetPropertyByID(ctx context.Context, id uint64) (*entities.Property, error) {
	property, ok := f.properties[id]
	if !ok {
		return nil, commonerrors.ErrRepoNotFound
	}
	return property, nil
}

func (f *fakePropertyRepo) UpdateProperty(ctx context.Context, id uint64, updateMap map[string]interface{}) error {
	if _, ok := f.properties[id]; !ok {
		return commonerrors.ErrRepoNotFound
	}
	return nil
}

func (f *fakePropertyRepo) DeleteProperty(ctx context.Context, id uint64) error {
	if _, ok := f.properties[id]; !ok {
		return commonerrors.ErrRepoNotFound
	}
	delete(f.properties, id)
	return nil
}

func (f *fakePropertyRepo) ListByStatuses(ctx context.Context, statuses []enums.Status) ([]*entities.Property, error) {
	var result []*entities.Property
	for _, p := range f.properties {
		if len(statuses) == 0 {
			result = append(result, p)
			continue
		}
		for _, status := range statuses {
			if p.Status == status {
				result = append(result, p)
				break
			}
		}
	}
	return result, nil
}

func (f *fakePropertyRepo) ListByCategory(ctx context.Context, categoryID uint64) ([]*entities.Property, error) {
	var result []*entities.Property
	for _, p := range f.properties {
		if p.CategoryID == categoryID {
			result = append(result, p)
		}
	}
	return result, nil
}

func (f *fakePropertyRepo) ListFeatured(ctx context.Context) ([]*entities.Property, error) {
	var result []*entities.Property
	for _, p := range f.properties {
		if p.IsFeatured {
			result = append(result, p)
		}
	}
	return result, nil
}

func (f *fakePropertyRepo) SearchByName(ctx context.Context, query string) ([]*entities.Property, error) {
	return nil, nil
}

// fakeFavoriteRepo 用内存集合模拟收藏关系，保持与真实实现一致的幂等语义。
type fakeFavoriteRepo struct {
	favorites map[string]struct{}
}

func newFakeFavoriteRepo() *fakeFavoriteRepo {
	return &fakeFavoriteRepo{favorites: make(map[string]struct{})}
}

func favoriteKey(userID, propertyID uint64) string {
	return fmt.Sprintf("%d:%d", userID, propertyID)
}

func (f *fakeFavoriteRepo) AddFavorite(ctx context.Context, userID, propertyID uint64) error {
	f.favorites[favoriteKey(userID, propertyID)] = struct{}{}
	return nil
}

func (f *fakeFavoriteRepo) RemoveFavorite(ctx context.Context, userID, propertyID uint64) error {
	delete(f.favorites, favoriteKey(userID, propertyID))
	return nil
}

func (f *fakeFavoriteRepo) IsFavorited(ctx context.Context, userID, propertyID uint64) (bool, error) {
	_, ok := f.favorites[favoriteKey(userID, propertyID)]
	return ok, nil
}

func (f *fakeFavoriteRepo) FilterFavorited(ctx context.Context, userID uint64, propertyIDs []uint64) (map[uint64]struct{}, error) {
	result := make(map[uint64]struct{})
	for _, id := range propertyIDs {
		if _, ok := f.favorites[favoriteKey(userID, id)]; ok {
			result[id] = struct{}{}
		}
	}
	return result, nil
}

// fakePurchaseRepo 记录通过服务层生成的购买记录。
type fakePurchaseRepo struct {
	purchases []*entities.Purchase
}

func (f *fakePurchaseRepo) CreatePurchase(ctx context.Context, purchase *entities.Purchase) error {
	purchase.ID = uint64(len(f.purchases) + 1)
	f.purchases = append(f.purchases, purchase)
	return nil
}

func (f *fakePurchaseRepo) ListPurchasesByUser(ctx context.Context, userID uint64) ([]*entities.Purchase, error) {
	var result []*entities.Purchase
	for _, p := range f.purchases {
		if p.UserID == userID {
			result = append(result, p)
		}
	}
	return result, nil
}

// fakeUserRepo 用内存 map 模拟用户仓库，用户名唯一约束对齐 TranslateError 行为。
type fakeUserRepo struct {
	users  map[uint64]*entities.User
	nextID uint64
}

func newFakeUserRepo(users ...*entities.User) *fakeUserRepo {
	repo := &fakeUserRepo{users: make(map[uint64]*entities.User), nextID: 1}
	for _, u := range users {
		repo.users[u.ID] = u
		if u.ID >= repo.nextID {
			repo.nextID = u.ID + 1
		}
	}
	return repo
}

func (f *fakeUserRepo) CreateUserWithProfile(ctx context.Context, user *entities.User, profile *entities.Profile) error {
	for _, existing := range f.users {
		if existing.Username == user.Username {
			return gorm.ErrDuplicatedKey
		}
	}
	user.ID = f.nextID
	f.nextID++
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) GetUserByUsername(ctx context.Context, username string) (*entities.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, commonerrors.ErrRepoNotFound
}

func (f *fakeUserRepo) GetUserByID(ctx context.Context, id uint64) (*entities.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, commonerrors.ErrRepoNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) UpdatePassword(ctx context.Context, userID uint64, passwordHash string) error {
	u, ok := f.users[userID]
	if !ok {
		return commonerrors.ErrRepoNotFound
	}
	u.Password = passwordHash
	return nil
}

// fakeTokenRepo 模拟令牌仓库的 get-or-create 语义。
type fakeTokenRepo struct {
	byUser  map[uint64]string
	byToken map[string]uint64
	minted  int
}

func newFakeTokenRepo() *fakeTokenRepo {
	return &fakeTokenRepo{byUser: make(map[uint64]string), byToken: make(map[string]uint64)}
}

func (f *fakeTokenRepo) GetOrCreateToken(ctx context.Context, userID uint64) (string, error) {
	if token, ok := f.byUser[userID]; ok {
		return token, nil
	}
	f.minted++
	token := fmt.Sprintf("token-%d-%d", userID, f.minted)
	f.byUser[userID] = token
	f.byToken[token] = userID
	return token, nil
}

func (f *fakeTokenRepo) ResolveToken(ctx context.Context, token string) (uint64, error) {
	userID, ok := f.byToken[token]
	if !ok {
		return 0, commonerrors.ErrRepoNotFound
	}
	return userID, nil
}
