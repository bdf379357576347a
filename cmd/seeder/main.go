package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"

	appConfig "github.com/Xushengqwer/realestate_service/config"
	"github.com/Xushengqwer/realestate_service/dependencies"
	"github.com/Xushengqwer/realestate_service/mq/producer"
	"github.com/Xushengqwer/realestate_service/repo/mysql"
	redisRepo "github.com/Xushengqwer/realestate_service/repo/redis"
	"github.com/Xushengqwer/realestate_service/service"
)

func main() {
	// --- 0. 解析命令行参数 ---
	var numProperties int
	var numUsers int
	var configFile string
	flag.StringVar(&configFile, "config", "config/config.development.yaml", "配置文件路径")
	flag.IntVar(&numProperties, "n", 50, "要生成的房源数量 (默认: 50)")
	flag.IntVar(&numUsers, "users", 10, "要生成的普通用户数量 (默认: 10)")
	var waitSeconds int
	flag.IntVar(&waitSeconds, "wait", 5, "数据填充后等待的秒数 (确保异步任务完成, 默认: 5秒)")
	flag.Parse()

	absConfigFile, err := filepath.Abs(configFile)
	if err != nil {
		fmt.Printf("无法获取配置文件的绝对路径 '%s': %v\n", configFile, err)
		absConfigFile = configFile
	}
	fmt.Printf("准备使用配置文件 '%s' (尝试绝对路径: '%s') 生成 %d 条测试房源...\n", configFile, absConfigFile, numProperties)

	if numProperties <= 0 {
		fmt.Println("错误: 生成的房源数量必须大于 0")
		os.Exit(1)
	}
	if numUsers <= 0 {
		fmt.Println("错误: 生成的用户数量必须大于 0")
		os.Exit(1)
	}
	if waitSeconds < 0 {
		fmt.Println("错误: 等待秒数不能为负")
		os.Exit(1)
	}

	// --- 1. 加载配置 ---
	var cfg appConfig.RealEstateConfig
	if err := core.LoadConfig(absConfigFile, &cfg); err != nil {
		fmt.Printf("加载配置失败 (%s): %v\n", absConfigFile, err)
		os.Exit(1)
	}
	fmt.Println("配置加载成功。")
	fmt.Printf("DEBUG: 从配置加载的 MySQL Write DSN: '%s'\n", cfg.MySQLConfig.Write.DSN)
	if cfg.MySQLConfig.Write.DSN == "" {
		fmt.Println("警告: MySQL Write DSN 为空。请检查：")
		fmt.Println("1. 配置文件路径是否正确 (当前尝试路径: ", absConfigFile, ")。")
		fmt.Println("2. 配置文件内容中 `mysqlConfig.write.dsn` 是否存在且有值。")
		fmt.Println("3. 是否有环境变量覆盖了此配置项为空字符串。")
	}

	// --- 2. 初始化日志记录器 ---
	logger, loggerErr := core.NewZapLogger(cfg.ZapConfig)
	if loggerErr != nil {
		fmt.Printf("初始化 ZapLogger 失败: %v\n", loggerErr)
		os.Exit(1)
	}
	defer func() {
		logger.Info("Seeder: 正在刷新日志...")
		_ = logger.Logger().Sync()
		logger.Info("Seeder: 日志已刷新。")
	}()
	logger.Info("Logger 初始化成功 (Seeder)")

	// --- 3. 初始化 MySQL 数据库连接 ---
	db, dbErr := dependencies.InitMySQL(&cfg, logger)
	if dbErr != nil {
		logger.Fatal("初始化 MySQL 失败 (Seeder)", zap.Error(dbErr))
	}
	logger.Info("MySQL 连接成功 (Seeder)")

	// --- 4. 初始化 Kafka 生产者 (无 broker 配置时跳过，创建待审核房源不发事件) ---
	var kafkaProducer *producer.KafkaProducer
	if len(cfg.KafkaConfig.Brokers) > 0 {
		kafkaProducer = producer.NewKafkaProducer(cfg.KafkaConfig, logger)
		logger.Info("Kafka 生产者已初始化 (Seeder)")
	} else {
		logger.Warn("未配置 Kafka broker，Seeder 跳过审核事件发送")
	}

	// --- 5. 初始化 COS 客户端 ---
	cos, cosErr := dependencies.InitCOS(&cfg.COSConfig, logger)
	if cosErr != nil {
		logger.Fatal("初始化 COS 客户端失败 (Seeder)", zap.Error(cosErr))
	}
	logger.Info("COS 客户端初始化成功 (Seeder)")

	// --- 6. 初始化 Redis (可选：仅精选缓存依赖，失败不阻塞填充) ---
	var featuredCache redisRepo.FeaturedCache
	if rdb, redisErr := dependencies.InitRedis(&cfg.RedisConfig, logger); redisErr != nil {
		logger.Warn("初始化 Redis 失败 (Seeder)，精选缓存相关功能将不可用", zap.Error(redisErr))
	} else {
		featuredCache = redisRepo.NewFeaturedCache(rdb, logger)
	}

	// --- 7. 初始化 Repositories ---
	userRepo := mysql.NewUserRepository(db, logger)
	categoryRepo := mysql.NewCategoryRepository(db, logger)
	propertyRepo := mysql.NewPropertyRepository(db, logger)
	adminRepo := mysql.NewPropertyAdminRepository(db, logger)
	favoriteRepo := mysql.NewFavoriteRepository(db, logger)

	// --- 8. 初始化 Services (Seeder 不登录，令牌仓库留空) ---
	policy := service.NewAuthorizationPolicy()
	authSvc := service.NewAuthService(userRepo, nil, logger)
	categorySvc := service.NewCategoryService(categoryRepo, policy, logger)
	propertySvc := service.NewPropertyService(
		propertyRepo,
		adminRepo,
		categoryRepo,
		favoriteRepo,
		featuredCache,
		cos,
		kafkaProducer,
		policy,
		cfg.MediaConfig.BaseURL,
		logger,
	)
	logger.Info("服务层已初始化 (Seeder)")

	// --- 9. 执行数据填充 ---
	ctx := context.Background()
	startTime := time.Now()
	logger.Info("开始执行数据填充...", zap.Int("预计房源数量", numProperties), zap.Int("预计用户数量", numUsers))

	Seed(ctx, db, userRepo, authSvc, categorySvc, propertySvc, logger, numUsers, numProperties)

	duration := time.Since(startTime)
	logger.Info("数据填充主要逻辑完成！", zap.Duration("耗时", duration))

	// --- 10. 等待一段时间以确保异步 Kafka 任务有时间发送 ---
	if waitSeconds > 0 && kafkaProducer != nil {
		logger.Info(fmt.Sprintf("Seeder: 数据填充请求已发送，等待 %d 秒以允许异步 Kafka 消息发送...", waitSeconds))
		time.Sleep(time.Duration(waitSeconds) * time.Second)
		logger.Info(fmt.Sprintf("Seeder: %d 秒等待结束。", waitSeconds))
	}

	fmt.Printf("数据填充完成！总耗时（包括等待）: %v\n", time.Since(startTime))
	logger.Info("Seeder main: 所有任务完成（包括等待期），准备退出。")
}
