package routes

import (
	"github.com/BerniceZTT/cdp_end/config"
	"github.com/BerniceZTT/cdp_end/repository"
	"github.com/BerniceZTT/cdp_end/service"
	"github.com/BerniceZTT/cdp_end/utils"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes 注册所有路由
func RegisterRoutes(router *gin.Engine, cfg *config.Config, store *service.LifecycleStore) {
	// 注册认证路由
	RegisterAuthRoutes(router, cfg)

	// 注册生命周期路由
	RegisterLifecycleRoutes(router, store)

	// 健康检查路由
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// 数据库状态检查路由
	if cfg.StorageBackend == "mongo" {
		router.GET("/api/db-status", func(c *gin.Context) {
			status, err := repository.GetDatabaseStatus()
			if err != nil {
				utils.ErrorResponse(c, "获取数据库状态失败: "+err.Error(), 500)
				return
			}
			c.JSON(200, status)
		})
	}
}
