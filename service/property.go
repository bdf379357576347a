package service

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"path"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/Xushengqwer/go-common/core"
	"github.com/Xushengqwer/go-common/models/enums"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Xushengqwer/realestate_service/constant"
	"github.com/Xushengqwer/realestate_service/dependencies"
	"github.com/Xushengqwer/realestate_service/models/auth"
	"github.com/Xushengqwer/realestate_service/models/dto"
	"github.com/Xushengqwer/realestate_service/models/entities"
	"github.com/Xushengqwer/realestate_service/models/events"
	"github.com/Xushengqwer/realestate_service/models/vo"
	"github.com/Xushengqwer/realestate_service/myErrors"
	"github.com/Xushengqwer/realestate_service/mq/producer"
	mysqlRepo "github.com/Xushengqwer/realestate_service/repo/mysql"
	redisRepo "github.com/Xushengqwer/realestate_service/repo/redis"
)

// PropertyService 封装了房源目录的全部业务逻辑：
// 列表/详情的可见性过滤、创建时的字段收敛、图片上传、精选缓存与审核事件。
type PropertyService struct {
	propertyRepo  mysqlRepo.PropertyRepository
	adminRepo     mysqlRepo.PropertyAdminRepository
	categoryRepo  mysqlRepo.CategoryRepository
	favoriteRepo  mysqlRepo.FavoriteRepository
	featuredCache redisRepo.FeaturedCache
	cosClient     dependencies.COSClientInterface
	kafkaProducer *producer.KafkaProducer // 可为 nil（未配置 broker 时事件静默跳过）
	policy        *AuthorizationPolicy
	mediaBaseURL  string
	logger        *core.ZapLogger
}

// NewPropertyService 是 PropertyService 的构造函数。
func NewPropertyService(
	propertyRepo mysqlRepo.PropertyRepository,
	adminRepo mysqlRepo.PropertyAdminRepository,
	categoryRepo mysqlRepo.CategoryRepository,
	favoriteRepo mysqlRepo.FavoriteRepository,
	featuredCache redisRepo.FeaturedCache,
	cosClient dependencies.COSClientInterface,
	kafkaProducer *producer.KafkaProducer,
	policy *AuthorizationPolicy,
	mediaBaseURL string,
	logger *core.ZapLogger,
) *PropertyService {
	return &PropertyService{
		propertyRepo:  propertyRepo,
		adminRepo:     adminRepo,
		categoryRepo:  categoryRepo,
		favoriteRepo:  favoriteRepo,
		featuredCache: featuredCache,
		cosClient:     cosClient,
		kafkaProducer: kafkaProducer,
		policy:        policy,
		mediaBaseURL:  mediaBaseURL,
		logger:        logger,
	}
}

// buildVOs 把实体列表转成 VO 列表，并针对请求身份批量解析收藏标记。
// 收藏关系查询失败只降级（全部 false）不阻断列表本身。
func (s *PropertyService) buildVOs(ctx context.Context, identity *auth.Identity, properties []*entities.Property) []*vo.PropertyVO {
	var favoriteSet map[uint64]struct{}
	if identity != nil && len(properties) > 0 {
		ids := make([]uint64, 0, len(properties))
		for _, property := range properties {
			ids = append(ids, property.ID)
		}
		set, err := s.favoriteRepo.FilterFavorited(ctx, identity.UserID, ids)
		if err != nil {
			s.logger.Warn("批量解析收藏标记失败，按未收藏返回", zap.Error(err), zap.Uint64("userID", identity.UserID))
		} else {
			favoriteSet = set
		}
	}
	return vo.MapPropertiesToVOs(properties, s.mediaBaseURL, favoriteSet)
}

// uploadImage 把上传的图片文件写入 COS，返回公开 URL 与对象键。
func (s *PropertyService) uploadImage(ctx context.Context, fileHeader *multipart.FileHeader) (string, string, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return "", "", fmt.Errorf("打开上传的图片文件失败: %w", err)
	}
	defer file.Close()

	objectKey := constant.COSObjectKeyPrefixPropertyImages + uuid.NewString() + path.Ext(fileHeader.Filename)
	contentType := fileHeader.Header.Get("Content-Type")
	publicURL, err := s.cosClient.UploadFile(ctx, objectKey, file, fileHeader.Size, contentType)
	if err != nil {
		return "", "", err
	}
	return publicURL, objectKey, nil
}

// ListProperties 返回请求身份可见的房源列表（最新的在前）。
func (s *PropertyService) ListProperties(ctx context.Context, identity *auth.Identity) ([]*vo.PropertyVO, error) {
	properties, err := s.propertyRepo.ListByStatuses(ctx, s.policy.VisibleStatuses(identity))
	if err != nil {
		return nil, err
	}
	return s.buildVOs(ctx, identity, properties), nil
}

// GetPropertyByID 返回单个房源详情。
// 不可见的房源统一按不存在处理，不向请求方暴露"存在但无权查看"。
func (s *PropertyService) GetPropertyByID(ctx context.Context, identity *auth.Identity, id uint64) (*vo.PropertyVO, error) {
	property, err := s.propertyRepo.GetPropertyByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !s.policy.CanViewProperty(identity, property) {
		return nil, commonerrors.ErrRepoNotFound
	}

	isFavorite := false
	if identity != nil {
		favorited, err := s.favoriteRepo.IsFavorited(ctx, identity.UserID, id)
		if err != nil {
			s.logger.Warn("查询单个收藏标记失败，按未收藏返回", zap.Error(err), zap.Uint64("propertyID", id))
		} else {
			isFavorite = favorited
		}
	}
	return vo.NewPropertyVOFromEntity(property, s.mediaBaseURL, isFavorite), nil
}

// CreateProperty 创建新房源。
// - 需要登录；属主固定为请求方本人。
// - 精选/状态字段经授权策略收敛：非管理员强制待审核、非精选。
// - imageFile 可为 nil（无图房源）。
// - 进入待审核状态的房源异步发出审核事件，发送失败不影响创建结果。
func (s *PropertyService) CreateProperty(ctx context.Context, identity *auth.Identity, req *dto.CreatePropertyRequest, imageFile *multipart.FileHeader) (*vo.PropertyVO, error) {
	if err := s.policy.RequireUser(identity); err != nil {
		return nil, err
	}

	if _, err := s.categoryRepo.GetCategoryByID(ctx, req.CategoryID); err != nil {
		return nil, err
	}

	transactionType := req.TransactionType
	if transactionType == "" {
		transactionType = entities.TransactionSale
	}

	property := &entities.Property{
		Name:            req.Name,
		Type:            req.Type,
		Location:        req.Location,
		Price:           req.Price,
		TransactionType: transactionType,
		CategoryID:      req.CategoryID,
		AddedByID:       &identity.UserID,
	}
	s.policy.SanitizeNewProperty(identity, property, req.IsFeatured, req.Status)

	if imageFile != nil {
		publicURL, objectKey, err := s.uploadImage(ctx, imageFile)
		if err != nil {
			s.logger.Error("创建房源时上传图片失败", zap.Error(err))
			return nil, err
		}
		property.ImagePath = publicURL
		property.ImageObjectKey = objectKey
	}

	if err := s.propertyRepo.CreateProperty(ctx, property); err != nil {
		s.logger.Error("创建房源失败", zap.Error(err), zap.Uint64("userID", identity.UserID))
		return nil, err
	}

	if property.Status == enums.Pending && s.kafkaProducer != nil {
		auditErr := s.kafkaProducer.SendPropertyPendingAuditEvent(ctx, events.PropertyData{
			PropertyID: property.ID,
			Name:       property.Name,
			Location:   property.Location,
			Price:      property.Price,
			AddedByID:  property.AddedByID,
		})
		if auditErr != nil {
			s.logger.Warn("发送房源待审核事件失败", zap.Error(auditErr), zap.Uint64("propertyID", property.ID))
		}
	}

	// 重新读一次拿到预加载的分类与提交人
	created, err := s.propertyRepo.GetPropertyByID(ctx, property.ID)
	if err != nil {
		return nil, err
	}
	return vo.NewPropertyVOFromEntity(created, s.mediaBaseURL, false), nil
}

// UpdateProperty 部分更新房源。
// - 管理员或属主本人可改；其他人返回 myErrors.ErrForbidden。
// - 状态与精选字段只有管理员生效，属主提交时静默忽略。
// - 换图成功后旧的图片对象尽力清理，清理失败不回滚更新。
func (s *PropertyService) UpdateProperty(ctx context.Context, identity *auth.Identity, id uint64, req *dto.UpdatePropertyRequest, imageFile *multipart.FileHeader) (*vo.PropertyVO, error) {
	if err := s.policy.RequireUser(identity); err != nil {
		return nil, err
	}

	property, err := s.propertyRepo.GetPropertyByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !s.policy.CanModifyProperty(identity, property) {
		return nil, myErrors.ErrForbidden
	}

	updateMap := make(map[string]interface{})
	if req.Name != nil {
		updateMap["name"] = *req.Name
	}
	if req.Type != nil {
		updateMap["type"] = *req.Type
	}
	if req.Location != nil {
		updateMap["location"] = *req.Location
	}
	if req.Price != nil {
		updateMap["price"] = *req.Price
	}
	if req.TransactionType != nil {
		updateMap["transaction_type"] = *req.TransactionType
	}
	if req.CategoryID != nil {
		if _, err := s.categoryRepo.GetCategoryByID(ctx, *req.CategoryID); err != nil {
			return nil, err
		}
		updateMap["category_id"] = *req.CategoryID
	}
	if identity.IsStaff() {
		if req.IsFeatured != nil {
			updateMap["is_featured"] = *req.IsFeatured
		}
		if req.Status != nil {
			updateMap["status"] = *req.Status
		}
	}

	oldObjectKey := ""
	if imageFile != nil {
		publicURL, objectKey, err := s.uploadImage(ctx, imageFile)
		if err != nil {
			s.logger.Error("更新房源时上传图片失败", zap.Error(err), zap.Uint64("propertyID", id))
			return nil, err
		}
		updateMap["image_path"] = publicURL
		updateMap["image_object_key"] = objectKey
		oldObjectKey = property.ImageObjectKey
	}

	if err := s.propertyRepo.UpdateProperty(ctx, id, updateMap); err != nil {
		return nil, err
	}

	if oldObjectKey != "" {
		if err := s.cosClient.DeleteObject(ctx, oldObjectKey); err != nil {
			s.logger.Warn("清理房源旧图片对象失败", zap.Error(err), zap.String("objectKey", oldObjectKey))
		}
	}

	updated, err := s.propertyRepo.GetPropertyByID(ctx, id)
	if err != nil {
		return nil, err
	}
	isFavorite, favErr := s.favoriteRepo.IsFavorited(ctx, identity.UserID, id)
	if favErr != nil {
		isFavorite = false
	}
	return vo.NewPropertyVOFromEntity(updated, s.mediaBaseURL, isFavorite), nil
}

// DeleteProperty 删除房源（软删除，连带清理评论与收藏关系）。
// 管理员或属主本人可删；图片对象尽力清理。
func (s *PropertyService) DeleteProperty(ctx context.Context, identity *auth.Identity, id uint64) error {
	if err := s.policy.RequireUser(identity); err != nil {
		return err
	}

	property, err := s.propertyRepo.GetPropertyByID(ctx, id)
	if err != nil {
		return err
	}
	if !s.policy.CanModifyProperty(identity, property) {
		return myErrors.ErrForbidden
	}

	if err := s.propertyRepo.DeleteProperty(ctx, id); err != nil {
		return err
	}

	if property.ImageObjectKey != "" {
		if err := s.cosClient.DeleteObject(ctx, property.ImageObjectKey); err != nil {
			s.logger.Warn("清理已删除房源的图片对象失败", zap.Error(err), zap.String("objectKey", property.ImageObjectKey))
		}
	}
	return nil
}

// ListByCategory 返回指定分类下的房源。
// - 分类不存在时返回 commonerrors.ErrRepoNotFound。
// - 不做审核状态过滤，沿用既有对外行为。
func (s *PropertyService) ListByCategory(ctx context.Context, identity *auth.Identity, categoryID uint64) ([]*vo.PropertyVO, error) {
	if _, err := s.categoryRepo.GetCategoryByID(ctx, categoryID); err != nil {
		return nil, err
	}
	properties, err := s.propertyRepo.ListByCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	return s.buildVOs(ctx, identity, properties), nil
}

// ListFeatured 返回精选房源列表，优先走 Redis 缓存，未命中回源数据库并回填。
// 收藏标记始终针对当前请求身份现算，不进缓存。
func (s *PropertyService) ListFeatured(ctx context.Context, identity *auth.Identity) ([]*vo.PropertyVO, error) {
	properties, err := s.featuredCache.GetFeaturedProperties(ctx)
	if err != nil {
		if !errors.Is(err, myErrors.ErrCacheMiss) {
			s.logger.Warn("读取精选缓存出错，回源数据库", zap.Error(err))
		}
		properties, err = s.propertyRepo.ListFeatured(ctx)
		if err != nil {
			return nil, err
		}
		if cacheErr := s.featuredCache.SetFeaturedProperties(ctx, properties); cacheErr != nil {
			s.logger.Warn("回填精选缓存失败", zap.Error(cacheErr))
		}
	}
	return s.buildVOs(ctx, identity, properties), nil
}

// SearchProperties 按名称做大小写不敏感的子串搜索。
func (s *PropertyService) SearchProperties(ctx context.Context, identity *auth.Identity, query string) ([]*vo.PropertyVO, error) {
	properties, err := s.propertyRepo.SearchByName(ctx, query)
	if err != nil {
		return nil, err
	}
	return s.buildVOs(ctx, identity, properties), nil
}

// ListPending 返回全部待审核房源（仅管理员）。
func (s *PropertyService) ListPending(ctx context.Context, identity *auth.Identity) ([]*vo.PropertyVO, error) {
	if err := s.policy.RequireAdmin(identity); err != nil {
		return nil, err
	}
	properties, err := s.propertyRepo.ListByStatuses(ctx, []enums.Status{enums.Pending})
	if err != nil {
		return nil, err
	}
	return s.buildVOs(ctx, identity, properties), nil
}

// ListPropertiesByCondition 管理后台的条件分页查询（仅管理员）。
func (s *PropertyService) ListPropertiesByCondition(ctx context.Context, identity *auth.Identity, req *dto.ListPropertiesByConditionRequest) (*vo.ListPropertiesPageVO, error) {
	if err := s.policy.RequireAdmin(identity); err != nil {
		return nil, err
	}
	properties, total, err := s.adminRepo.ListPropertiesByCondition(ctx, req)
	if err != nil {
		return nil, err
	}
	return &vo.ListPropertiesPageVO{
		Properties: s.buildVOs(ctx, identity, properties),
		Total:      total,
	}, nil
}
