package controllers

import (
	"errors"
	"net/http"

	"github.com/BerniceZTT/cdp_end/models"
	"github.com/BerniceZTT/cdp_end/service"
	"github.com/BerniceZTT/cdp_end/utils"

	"github.com/gin-gonic/gin"
)

// LifecycleController 线索生命周期接口控制器，持有注入的存储实例
type LifecycleController struct {
	Store *service.LifecycleStore
}

// NewLifecycleController 创建生命周期控制器
func NewLifecycleController(store *service.LifecycleStore) *LifecycleController {
	return &LifecycleController{Store: store}
}

// GetLeads 获取按阶段分组的线索
func (ctrl *LifecycleController) GetLeads(c *gin.Context) {
	leads := ctrl.Store.Leads()

	utils.LogInfo(map[string]interface{}{
		"tofu": len(leads.Tofu),
		"mofu": len(leads.Mofu),
		"bofu": len(leads.Bofu),
		"cold": len(leads.Cold),
	}, "获取线索列表")

	c.JSON(http.StatusOK, leads)
}

// GetCustomers 获取客户列表
func (ctrl *LifecycleController) GetCustomers(c *gin.Context) {
	customers := ctrl.Store.Customers()

	utils.LogInfo(map[string]interface{}{
		"count": len(customers),
	}, "获取客户列表")

	c.JSON(http.StatusOK, customers)
}

// GetMovements 获取最近的线索移动历史
func (ctrl *LifecycleController) GetMovements(c *gin.Context) {
	c.JSON(http.StatusOK, ctrl.Store.RecentMovements())
}

// MoveLead 移动线索到新阶段
func (ctrl *LifecycleController) MoveLead(c *gin.Context) {
	var req models.MoveLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, "无效的请求参数: "+err.Error(), http.StatusBadRequest)
		return
	}

	utils.LogInfo(map[string]interface{}{
		"leadId":    req.LeadID,
		"fromStage": req.FromStage,
		"toStage":   req.ToStage,
	}, "线索移动请求")

	err := ctrl.Store.MoveLead(req.LeadID, req.FromStage, req.ToStage, req.Notes)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrLeadNotFound):
			utils.HandleError(c, utils.CreateNotFoundError("线索"))
		case errors.Is(err, service.ErrUnknownStage), errors.Is(err, service.ErrUnknownTransition):
			utils.HandleError(c, utils.CreateBadRequestError(err.Error()))
		default:
			utils.HandleError(c, err)
		}
		return
	}

	utils.SuccessResponse(c, gin.H{
		"leads":     ctrl.Store.Leads(),
		"movements": ctrl.Store.RecentMovements(),
	}, "线索移动成功")
}

// AddCustomer 直接添加客户
func (ctrl *LifecycleController) AddCustomer(c *gin.Context) {
	var customer models.Customer
	if err := c.ShouldBindJSON(&customer); err != nil {
		utils.ErrorResponse(c, "无效的请求参数: "+err.Error(), http.StatusBadRequest)
		return
	}

	if customer.ID == "" || customer.Email == "" {
		utils.ErrorResponse(c, "缺少必要字段", http.StatusBadRequest)
		return
	}

	ctrl.Store.AddCustomer(customer)

	utils.SuccessResponse(c, customer, "添加客户成功", http.StatusCreated)
}

// Reset 重置为初始数据
func (ctrl *LifecycleController) Reset(c *gin.Context) {
	user, err := utils.GetUser(c)
	if err == nil {
		utils.LogInfo(map[string]interface{}{
			"username": user.Username,
		}, "重置初始数据请求")
	}

	ctrl.Store.ResetToOriginalData()

	utils.SuccessResponse(c, nil, "已重置为初始数据")
}
