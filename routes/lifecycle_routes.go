package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/BerniceZTT/cdp_end/controllers"
	"github.com/BerniceZTT/cdp_end/middleware"
	"github.com/BerniceZTT/cdp_end/service"
)

// RegisterLifecycleRoutes 注册线索生命周期相关路由
func RegisterLifecycleRoutes(router *gin.Engine, store *service.LifecycleStore) {
	ctrl := controllers.NewLifecycleController(store)

	lifecycleRoutes := router.Group("/api/lifecycle")
	lifecycleRoutes.Use(middleware.AuthMiddleware())

	// 获取按阶段分组的线索
	lifecycleRoutes.GET("/leads", ctrl.GetLeads)

	// 获取客户列表
	lifecycleRoutes.GET("/customers", ctrl.GetCustomers)

	// 获取最近的移动历史
	lifecycleRoutes.GET("/movements", ctrl.GetMovements)

	// 移动线索到新阶段
	lifecycleRoutes.POST("/move", ctrl.MoveLead)

	// 直接添加客户
	lifecycleRoutes.POST("/customers", ctrl.AddCustomer)

	// 重置为初始数据
	lifecycleRoutes.POST("/reset", ctrl.Reset)
}
