package controller

import (
	"net/http"

	"github.com/Xushengqwer/go-common/response"
	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/realestate_service/middleware"
	"github.com/Xushengqwer/realestate_service/models/dto"
	"github.com/Xushengqwer/realestate_service/service"
)

// ProfileController 定义个人资料控制器的结构体
type ProfileController struct {
	profileService *service.ProfileService
}

// NewProfileController 构造函数，用于创建 ProfileController 实例
func NewProfileController(profileService *service.ProfileService) *ProfileController {
	return &ProfileController{profileService: profileService}
}

// GetProfile 获取个人资料
// @Summary      获取当前用户的个人资料
// @Description  返回展示名、邮箱、电话、管理员标志与头像绝对 URL。
// @Tags         profile (个人资料)
// @Accept       json
// @Produce      json
// @Success      200 {object} vo.ProfileResponseWrapper "个人资料获取成功"
// @Failure      401 {object} vo.BaseResponseWrapper "未登录"
// @Failure      404 {object} vo.BaseResponseWrapper "资料不存在"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/realestate/user/profile [get]
func (ctrl *ProfileController) GetProfile(c *gin.Context) {
	identity := middleware.IdentityFromContext(c)
	profileVO, err := ctrl.profileService.GetOwnProfile(c.Request.Context(), identity)
	if err != nil {
		respondServiceError(c, err, "获取个人资料失败")
		return
	}
	response.RespondSuccess(c, profileVO, "个人资料获取成功")
}

// UpdateProfile 更新个人资料
// @Summary      更新当前用户的个人资料
// @Description  multipart/form-data 提交，只有提交的字段生效：phone 更新电话，password 重设密码，image 文件更新头像（旧头像对象尽力清理）。
// @Tags         profile (个人资料)
// @Accept       multipart/form-data
// @Produce      json
// @Param        phone formData string false "联系电话" maxLength(20)
// @Param        password formData string false "新密码 (至少6位)" minLength(6)
// @Param        image formData file false "新头像文件"
// @Success      200 {object} vo.ProfileResponseWrapper "个人资料更新成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的请求参数"
// @Failure      401 {object} vo.BaseResponseWrapper "未登录"
// @Failure      404 {object} vo.BaseResponseWrapper "资料不存在"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/realestate/user/profile/update [put]
func (ctrl *ProfileController) UpdateProfile(c *gin.Context) {
	var req dto.UpdateProfileRequest
	if err := c.ShouldBind(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "绑定请求数据失败: "+err.Error())
		return
	}

	identity := middleware.IdentityFromContext(c)
	profileVO, err := ctrl.profileService.UpdateOwnProfile(c.Request.Context(), identity, &req, imageFromForm(c))
	if err != nil {
		respondServiceError(c, err, "更新个人资料失败")
		return
	}
	response.RespondSuccess(c, profileVO, "个人资料更新成功")
}

// RegisterRoutes 注册 ProfileController 的路由（全部需要登录）
func (ctrl *ProfileController) RegisterRoutes(group *gin.RouterGroup) {
	user := group.Group("/user", middleware.RequireAuth())
	{
		user.GET("/profile", ctrl.GetProfile)              // GET /api/v1/realestate/user/profile
		user.PUT("/profile/update", ctrl.UpdateProfile)    // PUT /api/v1/realestate/user/profile/update
	}
}
