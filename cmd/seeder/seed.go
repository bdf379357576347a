package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"

	"github.com/Xushengqwer/go-common/core"
	"github.com/brianvoe/gofakeit/v6"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Xushengqwer/realestate_service/models/auth"
	"github.com/Xushengqwer/realestate_service/models/dto"
	"github.com/Xushengqwer/realestate_service/models/entities"
	"github.com/Xushengqwer/realestate_service/myErrors"
	"github.com/Xushengqwer/realestate_service/repo/mysql"
	"github.com/Xushengqwer/realestate_service/service"
)

// 固定的管理员测试账号，重复执行 Seeder 时复用已有账号。
const (
	seedAdminEmail    = "admin@realestate.local"
	seedAdminPassword = "admin123456"
	seedUserPassword  = "user123456"
)

// 预置的分类，贴近真实房产平台的基础盘。
var seedCategories = []dto.CreateCategoryRequest{
	{Name: "公寓", Icon: "apartment"},
	{Name: "别墅", Icon: "villa"},
	{Name: "写字楼", Icon: "office"},
	{Name: "商铺", Icon: "shop"},
	{Name: "土地", Icon: "land"},
}

var seedPropertyTypes = []string{"住宅", "商业", "工业", "混合用途"}

// Seed 通过服务层填充测试数据：一个管理员、若干普通用户、基础分类与随机房源。
// 走服务层而非直接写库，授权策略对状态/精选字段的收敛逻辑同样作用于测试数据。
func Seed(
	ctx context.Context,
	db *gorm.DB,
	userRepo mysql.UserRepository,
	authSvc *service.AuthService,
	categorySvc *service.CategoryService,
	propertySvc *service.PropertyService,
	logger *core.ZapLogger,
	numUsers int,
	numProperties int,
) {
	logger.Info("开始填充测试数据 (通过服务层)...",
		zap.Int("用户数量", numUsers),
		zap.Int("房源数量", numProperties))

	// --- 1. 管理员账号（注册后直接改库提升权限，服务层没有提权入口） ---
	adminIdentity, err := ensureAdmin(ctx, db, userRepo, authSvc, logger)
	if err != nil {
		logger.Error("准备管理员账号失败，中止数据填充", zap.Error(err))
		return
	}

	// --- 2. 普通用户 ---
	identities := make([]*auth.Identity, 0, numUsers)
	for i := 0; i < numUsers; i++ {
		req := &dto.RegisterRequest{
			Name:     gofakeit.Name(),
			Email:    fmt.Sprintf("seed_user_%d_%s", i, gofakeit.Email()),
			Password: seedUserPassword,
		}
		registered, regErr := authSvc.Register(ctx, req)
		if regErr != nil {
			logger.Warn("创建测试用户失败，跳过", zap.Error(regErr), zap.String("email", req.Email))
			continue
		}
		identities = append(identities, &auth.Identity{UserID: registered.UserID})
	}
	if len(identities) == 0 {
		logger.Error("没有可用的测试用户，中止房源填充")
		return
	}
	logger.Info("测试用户创建完毕", zap.Int("实际数量", len(identities)))

	// --- 3. 基础分类（可能已存在，最终以 List 结果为准） ---
	for _, catReq := range seedCategories {
		req := catReq
		if _, catErr := categorySvc.CreateCategory(ctx, adminIdentity, &req); catErr != nil {
			logger.Warn("创建分类失败（可能已存在）", zap.Error(catErr), zap.String("name", req.Name))
		}
	}
	categories, err := categorySvc.ListCategories(ctx)
	if err != nil || len(categories) == 0 {
		logger.Error("读取分类列表失败，中止房源填充", zap.Error(err))
		return
	}
	categoryIDs := make([]uint64, 0, len(categories))
	for _, c := range categories {
		categoryIDs = append(categoryIDs, c.ID)
	}
	logger.Info("分类准备完毕", zap.Int("数量", len(categoryIDs)))

	// --- 4. 并发生成房源 ---
	var wg sync.WaitGroup
	concurrencyLimit := 10
	semaphore := make(chan struct{}, concurrencyLimit)

	for i := 0; i < numProperties; i++ {
		wg.Add(1)
		semaphore <- struct{}{}

		go func(itemIndex int) {
			defer wg.Done()
			defer func() { <-semaphore }()

			// 约 1/4 的房源由管理员发布（直接过审），其余由普通用户提交进入待审核。
			identity := adminIdentity
			if rand.Intn(4) != 0 {
				identity = identities[rand.Intn(len(identities))]
			}

			transactionType := entities.TransactionSale
			if rand.Intn(3) == 0 {
				transactionType = entities.TransactionRent
			}

			createReq := &dto.CreatePropertyRequest{
				Name:            fmt.Sprintf("%s · %s", gofakeit.Street(), gofakeit.Company()),
				Type:            seedPropertyTypes[rand.Intn(len(seedPropertyTypes))],
				Location:        fmt.Sprintf("%s, %s", gofakeit.City(), gofakeit.State()),
				Price:           gofakeit.Price(50000, 5000000),
				TransactionType: transactionType,
				CategoryID:      categoryIDs[rand.Intn(len(categoryIDs))],
			}
			// 管理员发布的房源约 1/3 标记为精选，用于撑起精选缓存。
			if identity.IsAdmin && rand.Intn(3) == 0 {
				featured := true
				createReq.IsFeatured = &featured
			}

			resp, createErr := propertySvc.CreateProperty(ctx, identity, createReq, nil)
			if createErr != nil {
				logger.Error(fmt.Sprintf("创建房源 %d/%d 失败", itemIndex+1, numProperties),
					zap.Error(createErr),
					zap.String("name", createReq.Name),
					zap.Uint64("user_id", identity.UserID))
			} else {
				logger.Info(fmt.Sprintf("成功创建房源 %d/%d", itemIndex+1, numProperties),
					zap.Uint64("property_id", resp.ID),
					zap.String("name", resp.Name))
			}
		}(i)
	}

	wg.Wait()
	logger.Info("测试数据填充完毕 (通过服务层)。")
}

// ensureAdmin 注册（或复用）固定的管理员账号并保证 is_admin 已置位。
func ensureAdmin(
	ctx context.Context,
	db *gorm.DB,
	userRepo mysql.UserRepository,
	authSvc *service.AuthService,
	logger *core.ZapLogger,
) (*auth.Identity, error) {
	var adminID uint64

	registered, err := authSvc.Register(ctx, &dto.RegisterRequest{
		Name:     "Seed Admin",
		Email:    seedAdminEmail,
		Password: seedAdminPassword,
	})
	switch {
	case err == nil:
		adminID = registered.UserID
		logger.Info("管理员账号创建成功", zap.Uint64("userID", adminID), zap.String("email", seedAdminEmail))
	case errors.Is(err, myErrors.ErrEmailTaken):
		existing, getErr := userRepo.GetUserByUsername(ctx, seedAdminEmail)
		if getErr != nil {
			return nil, fmt.Errorf("管理员账号已存在但读取失败: %w", getErr)
		}
		adminID = existing.ID
		logger.Info("复用已有的管理员账号", zap.Uint64("userID", adminID))
	default:
		return nil, err
	}

	if err := db.WithContext(ctx).
		Model(&entities.User{}).
		Where("id = ?", adminID).
		Update("is_admin", true).Error; err != nil {
		return nil, fmt.Errorf("提升管理员权限失败: %w", err)
	}

	return &auth.Identity{UserID: adminID, IsAdmin: true}, nil
}
