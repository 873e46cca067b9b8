package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/BerniceZTT/cdp_end/config"
	"github.com/BerniceZTT/cdp_end/middleware"
	"github.com/BerniceZTT/cdp_end/repository"
	"github.com/BerniceZTT/cdp_end/routes"
	"github.com/BerniceZTT/cdp_end/service"
	"github.com/BerniceZTT/cdp_end/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	// 初始化日志
	utils.InitLogger()

	// 加载配置
	cfg := config.LoadConfig()

	// 设置Gin模式
	if cfg.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// 初始化持久化后端
	var kv repository.KVStore
	switch cfg.StorageBackend {
	case "memory":
		utils.Logger.Warn().Msg("使用内存存储，进程退出后数据丢失")
		kv = repository.NewMemoryStore()
	default:
		if err := repository.InitMongoDB(cfg.MongoURI, cfg.MongoDB); err != nil {
			utils.Logger.Fatal().Err(err).Msg("Failed to connect to MongoDB")
		}
		defer repository.CloseMongoDB()
		kv = repository.NewMongoStore()
	}

	// 构建生命周期存储（启动时自动恢复或播种数据）
	store := service.NewLifecycleStore(kv, service.WithLogger(utils.Logger))

	// 每日凌晨2点执行冷线索老化任务
	service.ScheduleDailyTaskAt(2, 0, 0, func() {
		service.RunColdLeadAging(store)
	})

	// 创建Gin实例
	router := gin.New()

	// 应用中间件
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS())
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.OperationLoggerMiddleware())

	// 注册路由
	routes.RegisterRoutes(router, cfg, store)

	// 设置HTTP服务器
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// 启动服务器
	go func() {
		utils.Logger.Info().Msgf("服务器启动，监听端口: %d", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			utils.Logger.Fatal().Err(err).Msg("启动服务器失败")
		}
	}()

	// 优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	utils.Logger.Info().Msg("正在关闭服务器...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		utils.Logger.Fatal().Err(err).Msg("服务器关闭异常")
	}

	utils.Logger.Info().Msg("服务器已优雅关闭")
}
