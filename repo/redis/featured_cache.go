package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Xushengqwer/go-common/core"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Xushengqwer/realestate_service/constant"
	"github.com/Xushengqwer/realestate_service/models/entities"
	"github.com/Xushengqwer/realestate_service/myErrors"
)

// FeaturedCache 定义了精选房源列表在 Redis 中的缓存接口。
// 精选列表读多写少，由定时任务周期性重建，读路径未命中时回源数据库。
type FeaturedCache interface {
	// GetFeaturedProperties 读取缓存的精选房源列表。
	// - 缓存未命中时返回 myErrors.ErrCacheMiss。
	GetFeaturedProperties(ctx context.Context) ([]*entities.Property, error)

	// SetFeaturedProperties 整体覆盖缓存的精选房源列表，带固定 TTL 兜底。
	SetFeaturedProperties(ctx context.Context, properties []*entities.Property) error
}

type featuredCache struct {
	client *redis.Client
	logger *core.ZapLogger
}

// NewFeaturedCache 是 featuredCache 的构造函数。
func NewFeaturedCache(client *redis.Client, logger *core.ZapLogger) FeaturedCache {
	return &featuredCache{client: client, logger: logger}
}

func (c *featuredCache) GetFeaturedProperties(ctx context.Context) ([]*entities.Property, error) {
	data, err := c.client.Get(ctx, constant.FeaturedPropertiesKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, myErrors.ErrCacheMiss
		}
		c.logger.Error("读取精选房源缓存失败", zap.Error(err))
		return nil, fmt.Errorf("读取精选房源缓存失败: %w", err)
	}

	var properties []*entities.Property
	if err := json.Unmarshal(data, &properties); err != nil {
		// 反序列化失败当作未命中处理，让读路径回源并等待任务重建。
		c.logger.Error("精选房源缓存内容反序列化失败", zap.Error(err))
		return nil, myErrors.ErrCacheMiss
	}
	return properties, nil
}

func (c *featuredCache) SetFeaturedProperties(ctx context.Context, properties []*entities.Property) error {
	data, err := json.Marshal(properties)
	if err != nil {
		return fmt.Errorf("序列化精选房源列表失败: %w", err)
	}

	err = c.client.Set(ctx, constant.FeaturedPropertiesKey, data, constant.FeaturedPropertiesCacheTTL).Err()
	if err != nil {
		c.logger.Error("写入精选房源缓存失败", zap.Error(err))
		return fmt.Errorf("写入精选房源缓存失败: %w", err)
	}
	return nil
}
