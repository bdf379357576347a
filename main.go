package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	_ "github.com/Xushengqwer/realestate_service/docs" // 确保导入了 docs 包

	// 导入项目包
	appConfig "github.com/Xushengqwer/realestate_service/config"
	"github.com/Xushengqwer/realestate_service/constant"
	"github.com/Xushengqwer/realestate_service/controller"
	"github.com/Xushengqwer/realestate_service/dependencies"
	"github.com/Xushengqwer/realestate_service/mq/consumer"
	"github.com/Xushengqwer/realestate_service/mq/producer"
	"github.com/Xushengqwer/realestate_service/repo/mysql"
	redisrepo "github.com/Xushengqwer/realestate_service/repo/redis"
	"github.com/Xushengqwer/realestate_service/router"
	"github.com/Xushengqwer/realestate_service/service"
	"github.com/Xushengqwer/realestate_service/tasks"

	// 导入公共模块
	sharedCore "github.com/Xushengqwer/go-common/core"
	sharedTracing "github.com/Xushengqwer/go-common/core/tracing"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
)

// @title           RealEstate Service API
// @version         1.0
// @description     房产信息服务，提供房源发布与审核、分类、收藏、购买、评论、个人资料等功能。
// @termsOfService  http://swagger.io/terms/

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8085
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

// @schemes http https
func main() {
	// --- 配置和基础设置 ---
	var configFile string
	flag.StringVar(&configFile, "config", "config/config.development.yaml", "Path to configuration file")
	flag.Parse()

	// 1. 加载配置
	var cfg appConfig.RealEstateConfig
	if err := sharedCore.LoadConfig(configFile, &cfg); err != nil {
		log.Fatalf("FATAL: 加载配置失败 (%s): %v", configFile, err)
	}

	// 打印最终生效的配置以供调试
	configBytes, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		log.Fatalf("无法序列化配置以进行打印: %v", err)
	}
	log.Printf("✅ 配置加载成功！最终生效的配置如下:\n%s\n", string(configBytes))

	// 2. 初始化 Logger
	logger, loggerErr := sharedCore.NewZapLogger(cfg.ZapConfig)
	if loggerErr != nil {
		log.Fatalf("FATAL: 初始化 ZapLogger 失败: %v", loggerErr)
	}
	defer func() {
		logger.Info("正在同步日志...")
		if err := logger.Logger().Sync(); err != nil {
			log.Printf("WARN: ZapLogger Sync 失败: %v\n", err)
		}
	}()
	logger.Info("Logger 初始化成功")

	// 3. 初始化 TracerProvider
	var tracerShutdown func(context.Context) error
	if cfg.TracerConfig.Enabled {
		var err error
		tracerShutdown, err = sharedTracing.InitTracerProvider(
			constant.ServiceName,
			constant.ServiceVersion,
			cfg.TracerConfig,
		)
		if err != nil {
			logger.Fatal("初始化 TracerProvider 失败", zap.Error(err))
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			logger.Info("正在关闭 TracerProvider...")
			if err := tracerShutdown(ctx); err != nil {
				logger.Error("关闭 TracerProvider 失败", zap.Error(err))
			} else {
				logger.Info("TracerProvider 已成功关闭")
			}
		}()
		logger.Info("分布式追踪已初始化")
		// 本服务暂无出站 HTTP 调用，Transport 先初始化备用
		_ = otelhttp.NewTransport(http.DefaultTransport)
	} else {
		logger.Info("分布式追踪已禁用")
		tracerShutdown = func(ctx context.Context) error { return nil }
	}

	// --- 4. 初始化核心依赖 ---
	// 4.1 数据库 (MySQL)
	db, dbErr := dependencies.InitMySQL(&cfg, logger)
	if dbErr != nil {
		logger.Fatal("初始化 MySQL 数据库失败", zap.Error(dbErr))
	}
	logger.Info("MySQL 数据库连接成功")

	// 4.2 Redis
	rdb, redisErr := dependencies.InitRedis(&cfg.RedisConfig, logger)
	if redisErr != nil {
		logger.Fatal("初始化 Redis 失败", zap.Error(redisErr))
	}
	logger.Info("Redis 连接成功")

	// 4.3 COS客户端
	cos, cosErr := dependencies.InitCOS(&cfg.COSConfig, logger)
	if cosErr != nil {
		logger.Fatal("初始化 COS 客户端失败", zap.Error(cosErr))
	}
	logger.Info("COS 客户端初始化成功")

	// 4.4 Kafka 生产者
	var kafkaProducer *producer.KafkaProducer
	if len(cfg.KafkaConfig.Brokers) > 0 {
		kafkaProducer = producer.NewKafkaProducer(cfg.KafkaConfig, logger)
		logger.Info("Kafka 生产者已初始化")
	} else {
		logger.Warn("未配置 Kafka brokers，Kafka 生产者将为 nil")
	}

	// --- 5. 初始化数据仓库层 (Repositories) ---
	userRepo := mysql.NewUserRepository(db, logger)
	profileRepo := mysql.NewProfileRepository(db, logger)
	categoryRepo := mysql.NewCategoryRepository(db, logger)
	propertyRepo := mysql.NewPropertyRepository(db, logger)
	propertyAdminRepo := mysql.NewPropertyAdminRepository(db, logger)
	favoriteRepo := mysql.NewFavoriteRepository(db, logger)
	purchaseRepo := mysql.NewPurchaseRepository(db, logger)
	commentRepo := mysql.NewCommentRepository(db, logger)
	logger.Debug("MySQL Repositories 初始化完成")

	tokenTTL := time.Duration(cfg.AuthConfig.TokenTTLSeconds) * time.Second
	authTokenRepo := redisrepo.NewAuthTokenRepository(rdb, logger, tokenTTL)
	featuredCache := redisrepo.NewFeaturedCache(rdb, logger)
	logger.Debug("Redis Repositories 初始化完成")

	// --- 6. 初始化服务层 (Services) ---
	policy := service.NewAuthorizationPolicy()
	mediaBaseURL := cfg.MediaConfig.BaseURL
	authService := service.NewAuthService(userRepo, authTokenRepo, logger)
	propertyService := service.NewPropertyService(propertyRepo, propertyAdminRepo, categoryRepo, favoriteRepo, featuredCache, cos, kafkaProducer, policy, mediaBaseURL, logger)
	categoryService := service.NewCategoryService(categoryRepo, policy, logger)
	tradeService := service.NewTradeService(propertyRepo, favoriteRepo, purchaseRepo, userRepo, policy, mediaBaseURL, logger)
	commentService := service.NewCommentService(commentRepo, propertyRepo, userRepo, policy, logger)
	profileService := service.NewProfileService(userRepo, profileRepo, cos, policy, mediaBaseURL, logger)
	notificationService := service.NewNotificationService(userRepo, kafkaProducer, policy, logger)
	logger.Debug("Services 初始化完成")

	// --- 7. 初始化控制器层 (Controllers) ---
	authController := controller.NewAuthController(authService)
	propertyController := controller.NewPropertyController(propertyService)
	categoryController := controller.NewCategoryController(categoryService)
	tradeController := controller.NewTradeController(tradeService)
	commentController := controller.NewCommentController(commentService)
	profileController := controller.NewProfileController(profileService)
	notificationController := controller.NewNotificationController(notificationService)
	logger.Debug("Controllers 初始化完成")

	// --- 8. 初始化 Kafka 消费者 ---
	var consumers []*consumer.Consumer
	var consumerWg sync.WaitGroup
	var consumerCtx, consumerCancel = context.WithCancel(context.Background())

	if len(cfg.KafkaConfig.Brokers) > 0 {
		groupID := cfg.KafkaConfig.ConsumerGroupID
		if groupID == "" {
			logger.Warn("Kafka ConsumerGroupID 未在配置中设置，将使用默认值 'realestate_service_group'")
			groupID = "realestate_service_group"
		}

		// 站内通知消费者：读取通知事件并执行投递（当前为日志占位投递）
		notificationTopic := cfg.KafkaConfig.Topics.UserNotification
		if notificationTopic != "" {
			notificationHandler := consumer.NewUserNotificationHandler(logger)
			notificationConsumer, err := consumer.NewConsumer(
				&cfg.KafkaConfig,
				groupID,
				notificationTopic,
				notificationHandler,
				logger,
			)
			if err != nil {
				logger.Fatal("初始化站内通知 Kafka 消费者失败", zap.Error(err))
			}
			consumers = append(consumers, notificationConsumer)
			logger.Info("站内通知 Kafka 消费者已准备就绪", zap.String("topic", notificationTopic))
		} else {
			logger.Warn("UserNotification topic 未配置，跳过站内通知消费者创建")
		}

		if len(consumers) > 0 {
			logger.Info(fmt.Sprintf("准备启动 %d 个 Kafka 消费者...", len(consumers)))
			for _, c := range consumers {
				consumerWg.Add(1)
				go func(cons *consumer.Consumer) {
					defer consumerWg.Done()
					cons.Start(consumerCtx)
				}(c)
			}
		} else {
			logger.Warn("没有配置任何有效的 Kafka 消费者。")
		}
	} else {
		logger.Warn("Kafka Brokers 未配置，跳过所有 Kafka 消费者初始化。")
	}

	// --- 9. 初始化定时任务 ---
	featuredTask := tasks.NewFeaturedCacheTask(propertyRepo, featuredCache, logger)
	logger.Info("后台定时任务已初始化并启动")

	// --- 10. 设置 Gin 路由器 ---
	ginRouter := router.SetupRouter(
		logger,
		&cfg,
		authService,
		authController,
		propertyController,
		categoryController,
		tradeController,
		commentController,
		profileController,
		notificationController,
	)
	logger.Info("Gin 路由器已设置")

	// --- 11. 启动 HTTP 服务器 ---
	serverAddr := fmt.Sprintf(":%s", cfg.ServerConfig.Port)
	httpServer := &http.Server{
		Addr:    serverAddr,
		Handler: ginRouter,
	}

	go func() {
		logger.Info("HTTP 服务器开始监听", zap.String("address", serverAddr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP 服务器启动失败", zap.Error(err))
		}
		logger.Info("HTTP 服务器已停止监听")
	}()

	// --- 12. 实现优雅关停 ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	receivedSignal := <-quit
	logger.Info("收到关停信号，开始优雅退出...", zap.String("signal", receivedSignal.String()))

	shutdownCtx, shutdownCancelFunc := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancelFunc()

	// a. 停止 HTTP 服务器 (允许处理完当前请求)
	logger.Info("正在关闭 HTTP 服务器...")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("关闭 HTTP 服务器失败", zap.Error(err))
	} else {
		logger.Info("HTTP 服务器已成功关闭")
	}

	// b. 关闭 Kafka 消费者
	if consumerCancel != nil {
		logger.Info("正在发送停止信号给 Kafka 消费者...")
		consumerCancel()
	}
	logger.Info("等待 Kafka 消费者停止...")
	consumerWg.Wait()

	for _, c := range consumers {
		if err := c.Close(); err != nil {
			logger.Error("关闭某个 Kafka 消费者时出错", zap.Error(err))
		}
	}
	logger.Info("所有 Kafka 消费者已停止。")

	// c. 停止定时任务调度器 (等待任务结束)
	logger.Info("正在停止定时任务...")
	taskStopCtx := featuredTask.Stop()
	select {
	case <-taskStopCtx.Done():
		logger.Info("精选缓存任务已停止")
	case <-shutdownCtx.Done():
		logger.Error("等待定时任务停止超时", zap.Error(shutdownCtx.Err()))
	}
	logger.Info("所有定时任务已停止")

	logger.Info("服务已成功关闭")
}
