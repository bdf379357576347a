package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Xushengqwer/realestate_service/models/auth"
	"github.com/Xushengqwer/realestate_service/models/dto"
	"github.com/Xushengqwer/realestate_service/models/entities"
	"github.com/Xushengqwer/realestate_service/models/vo"
	"github.com/Xushengqwer/realestate_service/myErrors"
	mysqlRepo "github.com/Xushengqwer/realestate_service/repo/mysql"
	redisRepo "github.com/Xushengqwer/realestate_service/repo/redis"
)

// AuthService 负责注册、登录与令牌解析。
// 账号以邮箱为登录名（username 即邮箱），口令用 bcrypt 存储。
type AuthService struct {
	userRepo  mysqlRepo.UserRepository
	tokenRepo redisRepo.AuthTokenRepository
	logger    *core.ZapLogger
}

// NewAuthService 是 AuthService 的构造函数。
func NewAuthService(
	userRepo mysqlRepo.UserRepository,
	tokenRepo redisRepo.AuthTokenRepository,
	logger *core.ZapLogger,
) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
		logger:    logger,
	}
}

// Register 创建新账号及其空白资料页。
// - 邮箱已被占用时返回 myErrors.ErrEmailTaken。
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*vo.RegisterVO, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("注册时口令哈希失败", zap.Error(err))
		return nil, fmt.Errorf("口令哈希失败: %w", err)
	}

	user := &entities.User{
		Username: req.Email,
		Email:    req.Email,
		Name:     req.Name,
		Password: string(hashed),
	}
	profile := &entities.Profile{}

	if err := s.userRepo.CreateUserWithProfile(ctx, user, profile); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, myErrors.ErrEmailTaken
		}
		s.logger.Error("注册创建用户失败", zap.Error(err), zap.String("email", req.Email))
		return nil, err
	}

	s.logger.Info("新用户注册成功", zap.Uint64("userID", user.ID), zap.String("email", req.Email))
	return &vo.RegisterVO{UserID: user.ID}, nil
}

// Login 校验邮箱口令并签发访问令牌。
// - 同一用户重复登录复用同一枚令牌（get-or-create 语义）。
// - 账号不存在与口令错误统一返回 myErrors.ErrInvalidCredentials，不泄露账号是否存在。
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*vo.LoginVO, error) {
	user, err := s.userRepo.GetUserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, commonerrors.ErrRepoNotFound) {
			return nil, myErrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, myErrors.ErrInvalidCredentials
	}

	token, err := s.tokenRepo.GetOrCreateToken(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	return &vo.LoginVO{Token: token, IsAdmin: user.IsAdmin}, nil
}

// ResolveIdentity 把请求携带的令牌解析成身份。
// 令牌无效、对应用户不存在时一律视为未认证（fail closed）。
func (s *AuthService) ResolveIdentity(ctx context.Context, token string) (*auth.Identity, error) {
	userID, err := s.tokenRepo.ResolveToken(ctx, token)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &auth.Identity{UserID: user.ID, IsAdmin: user.IsAdmin}, nil
}
