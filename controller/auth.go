package controller

import (
	"net/http"

	"github.com/Xushengqwer/go-common/response"
	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/realestate_service/models/dto"
	"github.com/Xushengqwer/realestate_service/service"
)

// AuthController 定义认证控制器的结构体
type AuthController struct {
	authService *service.AuthService
}

// NewAuthController 构造函数，用于创建 AuthController 实例
func NewAuthController(authService *service.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// Register 用户注册
// @Summary      注册新账号
// @Description  使用姓名、邮箱、密码注册新账号；邮箱即登录名，重复注册返回 400。
// @Tags         auth (认证)
// @Accept       json
// @Produce      json
// @Param        request body dto.RegisterRequest true "注册请求"
// @Success      200 {object} vo.RegisterResponseWrapper "注册成功"
// @Failure      400 {object} vo.BaseResponseWrapper "参数非法或邮箱已被注册"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/realestate/register [post]
func (ctrl *AuthController) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的请求参数: "+err.Error())
		return
	}

	registerVO, err := ctrl.authService.Register(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err, "注册失败")
		return
	}
	response.RespondSuccess(c, registerVO, "注册成功")
}

// Login 用户登录
// @Summary      登录并获取访问令牌
// @Description  校验邮箱与密码，返回不透明令牌与管理员标志；同一用户重复登录复用同一令牌。
// @Tags         auth (认证)
// @Accept       json
// @Produce      json
// @Param        request body dto.LoginRequest true "登录请求"
// @Success      200 {object} vo.LoginResponseWrapper "登录成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的请求参数"
// @Failure      401 {object} vo.BaseResponseWrapper "邮箱或密码错误"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/realestate/login [post]
func (ctrl *AuthController) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的请求参数: "+err.Error())
		return
	}

	loginVO, err := ctrl.authService.Login(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err, "登录失败")
		return
	}
	response.RespondSuccess(c, loginVO, "登录成功")
}

// RegisterRoutes 注册 AuthController 的路由（无需令牌）
func (ctrl *AuthController) RegisterRoutes(group *gin.RouterGroup) {
	group.POST("/register", ctrl.Register)
	group.POST("/login", ctrl.Login)
}
