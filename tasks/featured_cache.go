// File: tasks/featured_cache.go
package tasks

import (
	"context"
	"time"

	"github.com/Xushengqwer/go-common/core"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/Xushengqwer/realestate_service/constant"
	mysqlRepo "github.com/Xushengqwer/realestate_service/repo/mysql"
	redisRepo "github.com/Xushengqwer/realestate_service/repo/redis"
)

// FeaturedCacheTask 负责定时刷新 Redis 中的精选房源缓存。
// 读路径优先走缓存，这里周期性从数据库重建，保证精选位变更在一个周期内可见。
type FeaturedCacheTask struct {
	propertyRepo  mysqlRepo.PropertyRepository
	featuredCache redisRepo.FeaturedCache
	cron          *cron.Cron
	logger        *core.ZapLogger
}

// NewFeaturedCacheTask 初始化并启动精选房源缓存的定时任务。
func NewFeaturedCacheTask(propertyRepo mysqlRepo.PropertyRepository, featuredCache redisRepo.FeaturedCache, logger *core.ZapLogger) *FeaturedCacheTask {
	task := &FeaturedCacheTask{
		propertyRepo:  propertyRepo,
		featuredCache: featuredCache,
		cron:          cron.New(),
		logger:        logger,
	}
	task.startCronJob()
	return task
}

// startCronJob 配置并启动 cron 作业。
func (t *FeaturedCacheTask) startCronJob() {
	schedule := constant.FeaturedCacheCronSpec
	t.logger.Info("准备启动精选房源缓存刷新定时任务", zap.String("schedule", schedule))

	entryID, err := t.cron.AddFunc(schedule, func() {
		startTime := time.Now()
		// 单次执行设置超时，防止数据库抖动时任务卡死
		ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
		defer cancel()

		t.refreshFeaturedCache(ctx)

		t.logger.Info("精选房源缓存刷新任务执行完毕", zap.Duration("duration", time.Since(startTime)))
	})
	if err != nil {
		t.logger.Fatal("添加精选房源缓存刷新 cron 作业失败", zap.Error(err), zap.String("schedule", schedule))
	}

	t.cron.Start()
	t.logger.Info("精选房源缓存刷新定时任务已启动", zap.Uint("cronEntryID", uint(entryID)))
}

// refreshFeaturedCache 从数据库全量重建精选房源缓存。
// 查询失败时保留现有缓存（带 TTL 兜底），等待下个周期重试。
func (t *FeaturedCacheTask) refreshFeaturedCache(ctx context.Context) {
	properties, err := t.propertyRepo.ListFeatured(ctx)
	if err != nil {
		t.logger.Error("刷新精选缓存时查询数据库失败，保留现有缓存", zap.Error(err))
		return
	}
	if err := t.featuredCache.SetFeaturedProperties(ctx, properties); err != nil {
		t.logger.Error("写入精选房源缓存失败", zap.Error(err))
		return
	}
	t.logger.Info("精选房源缓存已重建", zap.Int("count", len(properties)))
}

// Stop 优雅地停止 cron 调度器。
func (t *FeaturedCacheTask) Stop() context.Context {
	t.logger.Info("正在停止精选房源缓存刷新定时任务...")
	stopCtx := t.cron.Stop()
	t.logger.Info("精选房源缓存刷新定时任务已停止调度。等待正在执行的任务完成...")
	return stopCtx
}
