package service

import (
	"context"
	"fmt"
	"mime/multipart"
	"path"

	"github.com/Xushengqwer/go-common/core"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/Xushengqwer/realestate_service/constant"
	"github.com/Xushengqwer/realestate_service/dependencies"
	"github.com/Xushengqwer/realestate_service/models/auth"
	"github.com/Xushengqwer/realestate_service/models/dto"
	"github.com/Xushengqwer/realestate_service/models/vo"
	mysqlRepo "github.com/Xushengqwer/realestate_service/repo/mysql"
)

// ProfileService 封装了个人资料页的查询与更新。
type ProfileService struct {
	userRepo     mysqlRepo.UserRepository
	profileRepo  mysqlRepo.ProfileRepository
	cosClient    dependencies.COSClientInterface
	policy       *AuthorizationPolicy
	mediaBaseURL string
	logger       *core.ZapLogger
}

// NewProfileService 是 ProfileService 的构造函数。
func NewProfileService(
	userRepo mysqlRepo.UserRepository,
	profileRepo mysqlRepo.ProfileRepository,
	cosClient dependencies.COSClientInterface,
	policy *AuthorizationPolicy,
	mediaBaseURL string,
	logger *core.ZapLogger,
) *ProfileService {
	return &ProfileService{
		userRepo:     userRepo,
		profileRepo:  profileRepo,
		cosClient:    cosClient,
		policy:       policy,
		mediaBaseURL: mediaBaseURL,
		logger:       logger,
	}
}

// GetOwnProfile 返回请求方本人的资料页。
// 资料行缺失时返回 commonerrors.ErrRepoNotFound（注册流程保证正常账号都有）。
func (s *ProfileService) GetOwnProfile(ctx context.Context, identity *auth.Identity) (*vo.ProfileVO, error) {
	if err := s.policy.RequireUser(identity); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetUserByID(ctx, identity.UserID)
	if err != nil {
		return nil, err
	}
	profile, err := s.profileRepo.GetProfileByUserID(ctx, identity.UserID)
	if err != nil {
		return nil, err
	}

	return &vo.ProfileVO{
		Name:     user.DisplayName(),
		Email:    user.Email,
		Phone:    profile.Phone,
		IsAdmin:  user.IsAdmin,
		ImageURL: vo.ResolveMediaURL(profile.AvatarURL, s.mediaBaseURL),
	}, nil
}

// UpdateOwnProfile 更新请求方本人的资料页，只改提交的字段。
// - Phone 非空则更新。
// - Password 非空则重新哈希后写回用户表。
// - avatarFile 非 nil 则上传新头像，旧头像对象尽力清理。
func (s *ProfileService) UpdateOwnProfile(ctx context.Context, identity *auth.Identity, req *dto.UpdateProfileRequest, avatarFile *multipart.FileHeader) (*vo.ProfileVO, error) {
	if err := s.policy.RequireUser(identity); err != nil {
		return nil, err
	}

	profile, err := s.profileRepo.GetProfileByUserID(ctx, identity.UserID)
	if err != nil {
		return nil, err
	}

	if req.Password != "" {
		hashed, hashErr := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if hashErr != nil {
			s.logger.Error("更新资料时口令哈希失败", zap.Error(hashErr), zap.Uint64("userID", identity.UserID))
			return nil, fmt.Errorf("口令哈希失败: %w", hashErr)
		}
		if err := s.userRepo.UpdatePassword(ctx, identity.UserID, string(hashed)); err != nil {
			return nil, err
		}
	}

	updateMap := make(map[string]interface{})
	if req.Phone != "" {
		updateMap["phone"] = req.Phone
	}

	oldObjectKey := ""
	if avatarFile != nil {
		file, openErr := avatarFile.Open()
		if openErr != nil {
			return nil, fmt.Errorf("打开上传的头像文件失败: %w", openErr)
		}
		objectKey := constant.COSObjectKeyPrefixAvatars + uuid.NewString() + path.Ext(avatarFile.Filename)
		publicURL, upErr := s.cosClient.UploadFile(ctx, objectKey, file, avatarFile.Size, avatarFile.Header.Get("Content-Type"))
		file.Close()
		if upErr != nil {
			s.logger.Error("上传头像失败", zap.Error(upErr), zap.Uint64("userID", identity.UserID))
			return nil, upErr
		}
		updateMap["avatar_url"] = publicURL
		updateMap["avatar_object_key"] = objectKey
		oldObjectKey = profile.AvatarObjectKey
	}

	if len(updateMap) > 0 {
		if err := s.profileRepo.UpdateProfile(ctx, identity.UserID, updateMap); err != nil {
			return nil, err
		}
	}

	if oldObjectKey != "" {
		if err := s.cosClient.DeleteObject(ctx, oldObjectKey); err != nil {
			s.logger.Warn("清理旧头像对象失败", zap.Error(err), zap.String("objectKey", oldObjectKey))
		}
	}

	return s.GetOwnProfile(ctx, identity)
}
