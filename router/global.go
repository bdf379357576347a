package router

import (
	"net/http"
	"time"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/Xushengqwer/go-common/core"
	commonMiddleware "github.com/Xushengqwer/go-common/middleware"
	"github.com/gin-gonic/gin"
	otelgin "go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	appConfig "github.com/Xushengqwer/realestate_service/config"
	"github.com/Xushengqwer/realestate_service/constant"
	"github.com/Xushengqwer/realestate_service/controller"
	"github.com/Xushengqwer/realestate_service/middleware"
	"github.com/Xushengqwer/realestate_service/service"
)

// SetupRouter 仅负责配置 Gin 引擎、中间件和路由注册。
func SetupRouter(
	logger *core.ZapLogger,
	cfg *appConfig.RealEstateConfig,
	authService *service.AuthService,
	authController *controller.AuthController,
	propertyController *controller.PropertyController,
	categoryController *controller.CategoryController,
	tradeController *controller.TradeController,
	commentController *controller.CommentController,
	profileController *controller.ProfileController,
	notificationController *controller.NotificationController,
) *gin.Engine {
	logger.Info("开始设置 Gin 路由...")

	// 使用 gin.New() 而不是 gin.Default()，Recovery 和访问日志用统一中间件
	router := gin.New()

	// 1. OTel Middleware (最先，处理追踪上下文和 Span)
	router.Use(otelgin.Middleware(constant.ServiceName))

	// 2. Panic Recovery (捕获后续中间件和 handler 的 panic)
	router.Use(commonMiddleware.ErrorHandlingMiddleware(logger))

	// 3. Request Logger (记录访问日志，需要 TraceID)
	if baseLogger := logger.Logger(); baseLogger != nil {
		router.Use(commonMiddleware.RequestLoggerMiddleware(baseLogger))
	} else {
		logger.Warn("无法获取底层的 *zap.Logger，跳过 RequestLoggerMiddleware 注册")
	}

	// 4. Request Timeout (超时控制)
	requestTimeout := time.Duration(cfg.ServerConfig.RequestTimeout) * time.Second
	router.Use(commonMiddleware.RequestTimeoutMiddleware(logger, requestTimeout))

	// 5. Token 解析 (Bearer 令牌 -> 身份；无令牌/无效令牌按匿名放行)
	router.Use(middleware.TokenAuth(authService, logger))

	logger.Debug("已注册全局中间件")

	// --- 创建 API 版本分组 ---
	v1 := router.Group("/api/v1/realestate")
	logger.Debug("已创建 API/v1/realestate 分组")

	// --- 注册控制器路由 ---
	authController.RegisterRoutes(v1)
	propertyController.RegisterRoutes(v1)
	categoryController.RegisterRoutes(v1)
	tradeController.RegisterRoutes(v1)
	commentController.RegisterRoutes(v1)
	profileController.RegisterRoutes(v1)
	notificationController.RegisterRoutes(v1)
	logger.Info("所有控制器路由已注册到 /api/v1/realestate 分组")

	// --- 注册 Swagger UI 路由 ---
	// 访问 /swagger/index.html 即可看到 Swagger UI 界面
	swaggerURL := ginSwagger.URL("/swagger/doc.json")
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, swaggerURL))
	logger.Info("Swagger UI endpoint registered at /swagger/*any")

	// --- 健康检查等路由 ---
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	logger.Info("Gin 路由器设置完成")
	return router
}
