package service

import (
	"context"

	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"

	"github.com/Xushengqwer/realestate_service/models/auth"
	"github.com/Xushengqwer/realestate_service/models/dto"
	"github.com/Xushengqwer/realestate_service/models/entities"
	"github.com/Xushengqwer/realestate_service/models/vo"
	mysqlRepo "github.com/Xushengqwer/realestate_service/repo/mysql"
)

// CategoryService 封装了房源分类的业务逻辑。
// 读公开，写（增删改）只对管理员开放。
type CategoryService struct {
	categoryRepo mysqlRepo.CategoryRepository
	policy       *AuthorizationPolicy
	logger       *core.ZapLogger
}

// NewCategoryService 是 CategoryService 的构造函数。
func NewCategoryService(categoryRepo mysqlRepo.CategoryRepository, policy *AuthorizationPolicy, logger *core.ZapLogger) *CategoryService {
	return &CategoryService{
		categoryRepo: categoryRepo,
		policy:       policy,
		logger:       logger,
	}
}

// ListCategories 返回全部分类（按ID升序）。
func (s *CategoryService) ListCategories(ctx context.Context) ([]*vo.CategoryVO, error) {
	categories, err := s.categoryRepo.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	return vo.MapCategoriesToVOs(categories), nil
}

// GetCategoryByID 返回单个分类。
func (s *CategoryService) GetCategoryByID(ctx context.Context, id uint64) (*vo.CategoryVO, error) {
	category, err := s.categoryRepo.GetCategoryByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return vo.NewCategoryVOFromEntity(category), nil
}

// CreateCategory 新建分类（仅管理员）。
func (s *CategoryService) CreateCategory(ctx context.Context, identity *auth.Identity, req *dto.CreateCategoryRequest) (*vo.CategoryVO, error) {
	if err := s.policy.RequireAdmin(identity); err != nil {
		return nil, err
	}
	category := &entities.Category{
		Name: req.Name,
		Icon: req.Icon,
	}
	if err := s.categoryRepo.CreateCategory(ctx, category); err != nil {
		return nil, err
	}
	s.logger.Info("创建分类成功", zap.Uint64("categoryID", category.ID), zap.String("name", category.Name))
	return vo.NewCategoryVOFromEntity(category), nil
}

// UpdateCategory 部分更新分类（仅管理员）。
func (s *CategoryService) UpdateCategory(ctx context.Context, identity *auth.Identity, id uint64, req *dto.UpdateCategoryRequest) (*vo.CategoryVO, error) {
	if err := s.policy.RequireAdmin(identity); err != nil {
		return nil, err
	}

	updateMap := make(map[string]interface{})
	if req.Name != nil {
		updateMap["name"] = *req.Name
	}
	if req.Icon != nil {
		updateMap["icon"] = *req.Icon
	}
	if err := s.categoryRepo.UpdateCategory(ctx, id, updateMap); err != nil {
		return nil, err
	}

	category, err := s.categoryRepo.GetCategoryByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return vo.NewCategoryVOFromEntity(category), nil
}

// DeleteCategory 删除分类及其名下全部房源（仅管理员，单事务级联）。
func (s *CategoryService) DeleteCategory(ctx context.Context, identity *auth.Identity, id uint64) error {
	if err := s.policy.RequireAdmin(identity); err != nil {
		return err
	}
	if err := s.categoryRepo.DeleteCategoryWithProperties(ctx, id); err != nil {
		return err
	}
	s.logger.Info("删除分类及其名下房源成功", zap.Uint64("categoryID", id))
	return nil
}
