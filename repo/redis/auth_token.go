package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/Xushengqwer/go-common/core"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Xushengqwer/realestate_service/constant"
)

// AuthTokenRepository 定义了访问令牌在 Redis 中的存取接口。
// 令牌是不透明的 UUID 字符串，双向映射各存一个键：
//   - auth_token:{token} -> userID   （请求鉴权时正向解析）
//   - user_token:{userID} -> token   （登录时复用已有令牌，保证同一用户只持有一枚）
type AuthTokenRepository interface {
	// GetOrCreateToken 返回用户当前的令牌；不存在时铸造一枚新令牌并写入双向映射。
	GetOrCreateToken(ctx context.Context, userID uint64) (string, error)

	// ResolveToken 将令牌解析为用户 ID。
	// - 令牌不存在或已过期时返回 commonerrors.ErrRepoNotFound。
	ResolveToken(ctx context.Context, token string) (uint64, error)
}

type authTokenRepository struct {
	client *redis.Client
	logger *core.ZapLogger
	ttl    time.Duration // 0 表示永不过期
}

// NewAuthTokenRepository 是 authTokenRepository 的构造函数。
func NewAuthTokenRepository(client *redis.Client, logger *core.ZapLogger, ttl time.Duration) AuthTokenRepository {
	return &authTokenRepository{client: client, logger: logger, ttl: ttl}
}

func (r *authTokenRepository) GetOrCreateToken(ctx context.Context, userID uint64) (string, error) {
	userKey := constant.UserTokenKeyPrefix + strconv.FormatUint(userID, 10)

	existing, err := r.client.Get(ctx, userKey).Result()
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, redis.Nil) {
		r.logger.Error("查询用户令牌失败", zap.Error(err), zap.Uint64("userID", userID))
		return "", fmt.Errorf("查询用户令牌失败: %w", err)
	}

	token := uuid.NewString()
	tokenKey := constant.AuthTokenKeyPrefix + token

	// 双向映射用流水线一次写入，减少一次往返。
	pipe := r.client.Pipeline()
	pipe.Set(ctx, tokenKey, strconv.FormatUint(userID, 10), r.ttl)
	pipe.Set(ctx, userKey, token, r.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		r.logger.Error("写入访问令牌失败", zap.Error(err), zap.Uint64("userID", userID))
		return "", fmt.Errorf("写入访问令牌失败: %w", err)
	}
	return token, nil
}

func (r *authTokenRepository) ResolveToken(ctx context.Context, token string) (uint64, error) {
	tokenKey := constant.AuthTokenKeyPrefix + token

	value, err := r.client.Get(ctx, tokenKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, commonerrors.ErrRepoNotFound
		}
		r.logger.Error("解析访问令牌失败", zap.Error(err))
		return 0, fmt.Errorf("解析访问令牌失败: %w", err)
	}

	userID, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		// 键里的内容不是数字说明存储被污染，按未认证处理并告警。
		r.logger.Error("访问令牌映射内容非法", zap.String("value", value), zap.Error(err))
		return 0, commonerrors.ErrRepoNotFound
	}
	return userID, nil
}
