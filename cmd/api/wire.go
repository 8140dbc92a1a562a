//go:build wireinject
// +build wireinject

// Wire依赖注入配置文件
//
// 教学说明：
// 1. Wire是Google开发的编译期依赖注入工具
// 2. 与运行时反射注入不同，Wire在编译期生成代码
// 3. 优势：零运行时开销、类型安全、编译期检测循环依赖
//
// Wire工作流程：
// Step 1: 编写wire.go（本文件），定义Providers和Injector
// Step 2: 运行 `wire gen ./cmd/api`
// Step 3: Wire生成wire_gen.go，包含完整的依赖创建代码
// Step 4: main.go调用wire_gen.go中的InitializeApp()

package main

import (
	"github.com/gin-gonic/gin"
	"github.com/google/wire"
	goredis "github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	appbook "github.com/xiebiao/bookreview/internal/application/book"
	appreview "github.com/xiebiao/bookreview/internal/application/review"
	appuser "github.com/xiebiao/bookreview/internal/application/user"
	"github.com/xiebiao/bookreview/internal/domain/book"
	"github.com/xiebiao/bookreview/internal/domain/user"
	"github.com/xiebiao/bookreview/internal/infrastructure/config"
	"github.com/xiebiao/bookreview/internal/infrastructure/persistence/mysql"
	"github.com/xiebiao/bookreview/internal/infrastructure/persistence/redis"
	"github.com/xiebiao/bookreview/internal/interface/http/handler"
	"github.com/xiebiao/bookreview/internal/interface/http/middleware"
	"github.com/xiebiao/bookreview/pkg/jwt"
	"github.com/xiebiao/bookreview/pkg/metrics"
	"github.com/xiebiao/bookreview/pkg/response"
)

// infrastructureSet 基础设施层依赖
// 包含：配置加载、数据库连接、Redis连接
var infrastructureSet = wire.NewSet(
	config.Load,     // 加载配置文件
	mysql.NewDB,     // 创建MySQL连接
	redis.NewClient, // 创建Redis连接
)

// repositorySet 仓储层依赖
// 事务管理器以appreview.Transactor接口注入到书评用例
var repositorySet = wire.NewSet(
	mysql.NewUserRepository,   // 用户仓储
	mysql.NewBookRepository,   // 图书仓储
	mysql.NewReviewRepository, // 书评仓储
	mysql.NewTxManager,        // 事务管理器
	wire.Bind(new(appreview.Transactor), new(*mysql.TxManager)),
)

// domainSet 领域层依赖
var domainSet = wire.NewSet(
	user.NewService, // 用户领域服务
	book.NewService, // 图书领域服务
)

// applicationSet 应用层依赖
var applicationSet = wire.NewSet(
	appuser.NewRegisterUseCase,      // 用户注册用例
	appuser.NewLoginUseCase,         // 用户登录用例
	appuser.NewLogoutUseCase,        // 用户登出用例
	appuser.NewGetProfileUseCase,    // 用户信息用例
	appbook.NewAddBookUseCase,       // 添加图书用例
	appbook.NewListBooksUseCase,     // 图书列表用例
	appbook.NewSearchBooksUseCase,   // 图书搜索用例
	appbook.NewBookDetailUseCase,    // 图书详情用例
	appreview.NewSubmitReviewUseCase, // 提交书评用例
	appreview.NewEditReviewUseCase,   // 编辑书评用例
	appreview.NewRemoveReviewUseCase, // 删除书评用例
)

// middlewareSet 中间件依赖
var middlewareSet = wire.NewSet(
	provideJWTManager,   // JWT管理器（需要从config提取参数）
	provideSessionStore, // Session存储（需要从Redis创建）
	wire.Bind(new(appuser.SessionStore), new(*redis.SessionStore)),
	metrics.New,                  // Prometheus指标
	middleware.NewAuthMiddleware, // 认证中间件
)

// handlerSet HTTP处理器依赖
var handlerSet = wire.NewSet(
	handler.NewUserHandler,   // 用户处理器
	handler.NewBookHandler,   // 图书处理器
	handler.NewReviewHandler, // 书评处理器
)

// provideJWTManager 从配置创建JWT管理器
// Wire无法自动知道如何从Config提取参数，所以需要手动编写Provider
func provideJWTManager(cfg *config.Config) *jwt.Manager {
	return jwt.NewManager(
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpire,
		cfg.JWT.RefreshTokenExpire,
	)
}

// provideSessionStore 从Redis客户端创建Session存储
func provideSessionStore(client *goredis.Client) *redis.SessionStore {
	return redis.NewSessionStore(client)
}

// provideGinEngine 创建并配置Gin引擎
// 路由注册与main.go中的registerRoutes保持一致
func provideGinEngine(
	cfg *config.Config,
	userHandler *handler.UserHandler,
	bookHandler *handler.BookHandler,
	reviewHandler *handler.ReviewHandler,
	authMiddleware *middleware.AuthMiddleware,
	httpMetrics *metrics.Metrics,
) *gin.Engine {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	r.Use(httpMetrics.GinMiddleware())

	r.GET("/ping", func(c *gin.Context) {
		response.Success(c, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})
	r.GET("/metrics", httpMetrics.Handler())
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	auth := r.Group("/auth")
	{
		auth.POST("/signup", userHandler.Signup)
		auth.POST("/login", userHandler.Login)
		auth.GET("/me", authMiddleware.RequireAuth(), userHandler.Me)
		auth.POST("/logout", authMiddleware.RequireAuth(), userHandler.Logout)
	}

	books := r.Group("/books")
	{
		books.GET("", bookHandler.ListBooks)
		books.GET("/search", bookHandler.SearchBooks)
		books.GET("/:id", bookHandler.GetBook)
		books.POST("", authMiddleware.RequireAuth(), bookHandler.AddBook)
		books.POST("/:bookId/reviews", authMiddleware.RequireAuth(), reviewHandler.SubmitReview)
		books.PUT("/:bookId/reviews/:reviewId", authMiddleware.RequireAuth(), reviewHandler.EditReview)
		books.DELETE("/:bookId/reviews/:reviewId", authMiddleware.RequireAuth(), reviewHandler.RemoveReview)
	}

	return r
}

// InitializeApp 初始化整个应用
// wire.Build 的参数是所有的 Provider
// Wire会在编译期分析依赖关系，生成初始化代码
func InitializeApp() (*gin.Engine, error) {
	wire.Build(
		infrastructureSet,
		repositorySet,
		domainSet,
		applicationSet,
		middlewareSet,
		handlerSet,
		provideGinEngine,
	)

	// 占位返回值，实际运行时由wire_gen.go替代
	return nil, nil
}
