package controllers

import (
	"net/http"

	"github.com/BerniceZTT/cdp_end/config"
	"github.com/BerniceZTT/cdp_end/models"
	"github.com/BerniceZTT/cdp_end/utils"

	"github.com/gin-gonic/gin"
)

// AuthController 认证控制器
type AuthController struct {
	Cfg *config.Config
}

// NewAuthController 创建认证控制器
func NewAuthController(cfg *config.Config) *AuthController {
	return &AuthController{Cfg: cfg}
}

// Login 用户登录
func (ctrl *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, "无效的请求参数: "+err.Error(), http.StatusBadRequest)
		return
	}

	utils.Logger.Info().
		Str("username", req.Username).
		Msg("登录尝试")

	// 校验配置中的管理员账号
	if req.Username != ctrl.Cfg.AdminUser ||
		!utils.VerifyPassword(req.Password, utils.HashPassword(ctrl.Cfg.AdminPassword)) {
		utils.Logger.Info().Str("username", req.Username).Msg("登录失败: 用户名或密码错误")
		utils.ErrorResponse(c, "用户名或密码错误", http.StatusUnauthorized)
		return
	}

	token, err := utils.GenerateToken("1", req.Username, "ADMIN")
	if err != nil {
		utils.ErrorResponse(c, "生成token失败", http.StatusInternalServerError)
		return
	}

	utils.SuccessResponse(c, models.LoginResponse{
		Token:    token,
		Username: req.Username,
		Role:     "ADMIN",
	}, "登录成功")
}

// Validate 校验当前token有效性
func (ctrl *AuthController) Validate(c *gin.Context) {
	user, err := utils.GetUser(c)
	if err != nil {
		utils.HandleError(c, utils.CreateUnauthorizedError())
		return
	}

	utils.SuccessResponse(c, user, "token有效")
}
