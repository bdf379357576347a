package service

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/Xushengqwer/go-common/models/enums"
	"github.com/tencentyun/cos-go-sdk-v5"

	"github.com/Xushengqwer/realestate_service/models/auth"
	"github.com/Xushengqwer/realestate_service/models/dto"
	"github.com/Xushengqwer/realestate_service/models/entities"
	"github.com/Xushengqwer/realestate_service/myErrors"
)

// fakeCategoryRepo 只覆盖房源服务会触达的分类校验路径。
type fakeCategoryRepo struct {
	categories map[uint64]*entities.Category
}

func newFakeCategoryRepo(categories ...*entities.Category) *fakeCategoryRepo {
	repo := &fakeCategoryRepo{categories: make(map[uint64]*entities.Category)}
	for _, c := range categories {
		repo.categories[c.ID] = c
	}
	return repo
}

func (f *fakeCategoryRepo) CreateCategory(ctx context.Context, category *entities.Category) error {
	category.ID = uint64(len(f.categories) + 1)
	f.categories[category.ID] = category
	return nil
}

func (f *fakeCategoryRepo) GetCategoryByID(ctx context.Context, id uint64) (*entities.Category, error) {
	category, ok := f.categories[id]
	if !ok {
		return nil, commonerrors.ErrRepoNotFound
	}
	return category, nil
}

func (f *fakeCategoryRepo) ListCategories(ctx context.Context) ([]*entities.Category, error) {
	var result []*entities.Category
	for _, c := range f.categories {
		result = append(result, c)
	}
	return result, nil
}

func (f *fakeCategoryRepo) UpdateCategory(ctx context.Context, id uint64, updateMap map[string]interface{}) error {
	if _, ok := f.categories[id]; !ok {
		return commonerrors.ErrRepoNotFound
	}
	return nil
}

func (f *fakeCategoryRepo) DeleteCategoryWithProperties(ctx context.Context, id uint64) error {
	if _, ok := f.categories[id]; !ok {
		return commonerrors.ErrRepoNotFound
	}
	delete(f.categories, id)
	return nil
}

// fakeFeaturedCache 记录读写次数，用于断言缓存命中与回填行为。
type fakeFeaturedCache struct {
	properties []*entities.Property
	hasValue   bool
	sets       int
}

func (f *fakeFeaturedCache) GetFeaturedProperties(ctx context.Context) ([]*entities.Property, error) {
	if !f.hasValue {
		return nil, myErrors.ErrCacheMiss
	}
	return f.properties, nil
}

func (f *fakeFeaturedCache) SetFeaturedProperties(ctx context.Context, properties []*entities.Property) error {
	f.properties = properties
	f.hasValue = true
	f.sets++
	return nil
}

// fakeAdminRepo 固定返回预置的分页结果。
type fakeAdminRepo struct {
	properties []*entities.Property
	total      int64
}

func (f *fakeAdminRepo) ListPropertiesByCondition(ctx context.Context, req *dto.ListPropertiesByConditionRequest) ([]*entities.Property, int64, error) {
	return f.properties, f.total, nil
}

// noopCOSClient 测试替身，永不被实际调用。
type noopCOSClient struct{}

func (n *noopCOSClient) GetClient() *cos.Client { return nil }

func (n *noopCOSClient) UploadFile(ctx context.Context, objectKey string, reader io.Reader, size int64, contentType string) (string, error) {
	return "", errors.New("测试不应触发上传")
}

func (n *noopCOSClient) DeleteObject(ctx context.Context, objectKey string) error {
	return nil
}

func newPropertyServiceForTest(t *testing.T, propertyRepo *fakePropertyRepo, categoryRepo *fakeCategoryRepo, cache *fakeFeaturedCache) *PropertyService {
	t.Helper()
	return NewPropertyService(
		propertyRepo,
		&fakeAdminRepo{},
		categoryRepo,
		newFakeFavoriteRepo(),
		cache,
		&noopCOSClient{},
		nil, // 无 Kafka
		NewAuthorizationPolicy(),
		"http://media.test",
		newTestLogger(t),
	)
}

func TestGetPropertyByIDHidesInvisibleAsNotFound(t *testing.T) {
	ctx := context.Background()
	ownerID := uint64(7)
	pending := makeApprovedProperty(1)
	pending.Status = enums.Pending
	pending.AddedByID = &ownerID

	svc := newPropertyServiceForTest(t, newFakePropertyRepo(pending), newFakeCategoryRepo(), &fakeFeaturedCache{})

	// 其他用户与匿名：按不存在处理，不暴露"存在但无权查看"
	if _, err := svc.GetPropertyByID(ctx, nil, 1); !errors.Is(err, commonerrors.ErrRepoNotFound) {
		t.Errorf("匿名查看待审核房源应返回 ErrRepoNotFound，got %v", err)
	}
	if _, err := svc.GetPropertyByID(ctx, &auth.Identity{UserID: 8}, 1); !errors.Is(err, commonerrors.ErrRepoNotFound) {
		t.Errorf("无关用户查看待审核房源应返回 ErrRepoNotFound，got %v", err)
	}

	// 属主与管理员可见
	if _, err := svc.GetPropertyByID(ctx, &auth.Identity{UserID: ownerID}, 1); err != nil {
		t.Errorf("属主查看待审核房源不应报错: %v", err)
	}
	if _, err := svc.GetPropertyByID(ctx, &auth.Identity{UserID: 1, IsAdmin: true}, 1); err != nil {
		t.Errorf("管理员查看待审核房源不应报错: %v", err)
	}
}

func TestCreatePropertySanitizesNonAdminSubmission(t *testing.T) {
	ctx := context.Background()
	category := &entities.Category{Name: "公寓"}
	category.ID = 1
	propertyRepo := newFakePropertyRepo()
	svc := newPropertyServiceForTest(t, propertyRepo, newFakeCategoryRepo(category), &fakeFeaturedCache{})

	featured := true
	approved := enums.Approved
	created, err := svc.CreateProperty(ctx, &auth.Identity{UserID: 7}, &dto.CreatePropertyRequest{
		Name:       "江景公寓",
		Type:       "住宅",
		Location:   "测试城市",
		CategoryID: 1,
		IsFeatured: &featured,
		Status:     &approved,
	}, nil)
	if err != nil {
		t.Fatalf("创建房源失败: %v", err)
	}
	if created.IsFeatured {
		t.Error("普通用户提交的精选标记应被清除")
	}
	if created.Status != enums.Pending {
		t.Errorf("普通用户提交的房源应进入待审核，got %v", created.Status)
	}
	if created.TransactionType != entities.TransactionSale {
		t.Errorf("交易类型缺省应为 sale，got %v", created.TransactionType)
	}
	if created.AddedByUserID == nil || *created.AddedByUserID != 7 {
		t.Errorf("属主应固定为提交人本人，got %v", created.AddedByUserID)
	}
}

func TestCreatePropertyRejectsUnknownCategory(t *testing.T) {
	ctx := context.Background()
	svc := newPropertyServiceForTest(t, newFakePropertyRepo(), newFakeCategoryRepo(), &fakeFeaturedCache{})

	_, err := svc.CreateProperty(ctx, &auth.Identity{UserID: 7}, &dto.CreatePropertyRequest{
		Name:       "江景公寓",
		Type:       "住宅",
		Location:   "测试城市",
		CategoryID: 42,
	}, nil)
	if !errors.Is(err, commonerrors.ErrRepoNotFound) {
		t.Errorf("未知分类应返回 ErrRepoNotFound，got %v", err)
	}
}

func TestListFeaturedCacheFallback(t *testing.T) {
	ctx := context.Background()
	featured := makeApprovedProperty(1)
	featured.IsFeatured = true
	cache := &fakeFeaturedCache{}
	svc := newPropertyServiceForTest(t, newFakePropertyRepo(featured, makeApprovedProperty(2)), newFakeCategoryRepo(), cache)

	// 缓存未命中：回源数据库并回填
	properties, err := svc.ListFeatured(ctx, nil)
	if err != nil {
		t.Fatalf("精选列表查询失败: %v", err)
	}
	if len(properties) != 1 || properties[0].ID != 1 {
		t.Fatalf("应只返回精选房源，got %v", properties)
	}
	if cache.sets != 1 {
		t.Errorf("未命中后应回填缓存一次，got %d", cache.sets)
	}

	// 第二次读直接命中缓存，不再回填
	if _, err := svc.ListFeatured(ctx, nil); err != nil {
		t.Fatalf("二次查询失败: %v", err)
	}
	if cache.sets != 1 {
		t.Errorf("缓存命中不应再次回填，got %d", cache.sets)
	}
}

func TestListPendingRequiresAdmin(t *testing.T) {
	ctx := context.Background()
	pending := makeApprovedProperty(1)
	pending.Status = enums.Pending
	svc := newPropertyServiceForTest(t, newFakePropertyRepo(pending, makeApprovedProperty(2)), newFakeCategoryRepo(), &fakeFeaturedCache{})

	if _, err := svc.ListPending(ctx, &auth.Identity{UserID: 7}); !errors.Is(err, myErrors.ErrForbidden) {
		t.Errorf("普通用户查看待审核列表应返回 ErrForbidden，got %v", err)
	}

	properties, err := svc.ListPending(ctx, &auth.Identity{UserID: 1, IsAdmin: true})
	if err != nil {
		t.Fatalf("管理员查看待审核列表失败: %v", err)
	}
	if len(properties) != 1 || properties[0].ID != 1 {
		t.Errorf("待审核列表应只含待审核房源，got %v", properties)
	}
}
