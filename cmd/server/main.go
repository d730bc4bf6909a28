package main

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"YClaw/internal/conf"
	"YClaw/internal/data"
	"YClaw/internal/handler"
	"YClaw/internal/middleware"
	"YClaw/internal/repository"
	"YClaw/internal/service"
	"YClaw/internal/utils"
)

func main() {
	// 1. 加载配置
	cfg := conf.LoadConfig()

	// JWT 签名配置 (中间件和 Service 共用)
	utils.InitJWT(cfg.Auth.JWTSecret, cfg.Auth.TokenTTLHours)

	// 2. 初始化数据层 (Postgres, Redis)
	d, cleanup, err := data.NewData(cfg)
	if err != nil {
		log.Fatalf("❌ 数据层初始化失败: %v", err)
	}
	defer cleanup()

	userRepo := repository.NewUserRepository(d.DB)
	appRepo := repository.NewApplicationRepository(d.DB)

	// 3. 初始化服务层
	authSvc := service.NewAuthService(userRepo)
	landingSvc := service.NewLandingService(d, appRepo, cfg.App.Batch, cfg.App.CacheTTLSeconds)
	appSvc := service.NewApplicationService(appRepo, landingSvc)

	// 4. 初始化 Handler (控制器)
	authH := handler.NewAuthHandler(authSvc)
	appH := handler.NewApplicationHandler(appSvc)
	landingH := handler.NewLandingHandler(landingSvc)

	// 5. 初始化 Gin Web Server
	r := gin.Default()
	r.Use(middleware.TraceMiddleware())

	// CORS 配置
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"}, // 开发环境允许所有，生产环境建议指定前端域名
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Content-Length", "Accept-Encoding", "X-CSRF-Token", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// 6. 注册路由
	api := r.Group("/api/v1")
	{
		// 用户认证模块
		auth := api.Group("/auth")
		{
			auth.POST("/register", authH.Register)
			auth.POST("/login", authH.Login)
			auth.POST("/guest", authH.Guest)
		}

		// 落地页公开接口 (无需登录)
		api.GET("/stats", landingH.Stats)
		api.GET("/applications/recent", landingH.Recent)

		// 查询本人申请：未登录不算错误，返回 null，所以用可选鉴权
		api.GET("/applications/me", middleware.OptionalJWTAuth(), appH.Me)

		// 受保护的路由 (Protected Routes)
		protected := api.Group("/")
		protected.Use(middleware.JWTAuth())
		{
			// 提交申请
			protected.POST("/applications", appH.Submit)
		}
	}

	log.Printf("🚀 YClaw 后端已启动，监听端口 :%s (批次 %s)", cfg.App.Port, cfg.App.Batch)
	if err := r.Run(":" + cfg.App.Port); err != nil {
		log.Fatalf("❌ Server 启动失败: %v", err)
	}
}
