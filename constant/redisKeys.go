package constant

import "time"

// Redis Key 相关常量 (导出)
const (
	// --- Key 前缀 (用于动态生成 Key) ---

	// AuthTokenKeyPrefix 是认证令牌到用户ID映射的 Key 前缀。
	// 每个已登录用户会有一个对应的 String 类型的 Key。
	// 示例 Key: "auth_token:550e8400-e29b-41d4-a716-446655440000"
	// Redis 类型: String
	// 示例值: "123" (持有该令牌的用户ID)
	AuthTokenKeyPrefix = "auth_token:"

	// UserTokenKeyPrefix 是用户ID到其当前令牌的反向映射的 Key 前缀。
	// 登录时先查该 Key 以复用已签发的令牌，保证用户与令牌 1:1。
	// 示例 Key: "user_token:123"
	// Redis 类型: String
	// 示例值: "550e8400-e29b-41d4-a716-446655440000"
	UserTokenKeyPrefix = "user_token:"

	// --- 固定 Key 名称 (全局使用的 Key) ---

	// FeaturedPropertiesKey 是精选房源列表缓存的 Key 名称。
	// 由定时任务周期性刷新，读路径未命中时回源数据库并懒填充。
	// Redis 类型: String (JSON 序列化的房源实体列表)
	FeaturedPropertiesKey = "featured_properties"
)

// FeaturedPropertiesCacheTTL 是精选房源缓存的过期时间。
// 略大于刷新周期，保证任务失败一轮后缓存仍可自然过期回源。
const FeaturedPropertiesCacheTTL = 15 * time.Minute
