package controller

import (
	"net/http"

	"github.com/Xushengqwer/go-common/response"
	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/realestate_service/middleware"
	"github.com/Xushengqwer/realestate_service/models/dto"
	"github.com/Xushengqwer/realestate_service/service"
)

// NotificationController 定义站内通知控制器的结构体
type NotificationController struct {
	notificationService *service.NotificationService
}

// NewNotificationController 构造函数，用于创建 NotificationController 实例
func NewNotificationController(notificationService *service.NotificationService) *NotificationController {
	return &NotificationController{notificationService: notificationService}
}

// SendNotification 发送站内通知
// @Summary      向指定用户发送通知 (管理员)
// @Description  通知事件写入 Kafka 后立即返回，由消费侧异步投递。
// @Tags         admin (管理后台)
// @Accept       json
// @Produce      json
// @Param        request body dto.SendNotificationRequest true "通知请求"
// @Success      200 {object} vo.BaseResponseWrapper "通知已进入投递队列"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的请求参数"
// @Failure      401 {object} vo.BaseResponseWrapper "未登录"
// @Failure      403 {object} vo.BaseResponseWrapper "非管理员"
// @Failure      404 {object} vo.BaseResponseWrapper "目标用户不存在"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/realestate/notifications [post]
func (ctrl *NotificationController) SendNotification(c *gin.Context) {
	var req dto.SendNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的请求参数: "+err.Error())
		return
	}
	identity := middleware.IdentityFromContext(c)
	if err := ctrl.notificationService.SendNotification(c.Request.Context(), identity, &req); err != nil {
		respondServiceError(c, err, "发送通知失败")
		return
	}
	response.RespondSuccess[any](c, nil, "通知已进入投递队列")
}

// RegisterRoutes 注册 NotificationController 的路由
func (ctrl *NotificationController) RegisterRoutes(group *gin.RouterGroup) {
	group.POST("/notifications", middleware.RequireAdmin(), ctrl.SendNotification)
}
