package constant

// FeaturedCacheCronSpec 精选房源缓存刷新任务的调度表达式。
// robfig/cron v3 的 @every 语法，默认每 5 分钟刷新一次。
const FeaturedCacheCronSpec = "@every 5m"
