package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/BerniceZTT/cdp_end/config"
	"github.com/BerniceZTT/cdp_end/controllers"
	"github.com/BerniceZTT/cdp_end/middleware"
)

// RegisterAuthRoutes 注册认证相关路由
func RegisterAuthRoutes(router *gin.Engine, cfg *config.Config) {
	ctrl := controllers.NewAuthController(cfg)

	authRoutes := router.Group("/api/auth")

	// 登录
	authRoutes.POST("/login", ctrl.Login)

	// 校验token
	authRoutes.GET("/validate", middleware.AuthMiddleware(), ctrl.Validate)
}
