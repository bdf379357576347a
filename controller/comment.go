package controller

import (
	"net/http"

	"github.com/Xushengqwer/go-common/response"
	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/realestate_service/middleware"
	"github.com/Xushengqwer/realestate_service/models/dto"
	"github.com/Xushengqwer/realestate_service/service"
)

// CommentController 定义评论控制器的结构体
type CommentController struct {
	commentService *service.CommentService
}

// NewCommentController 构造函数，用于创建 CommentController 实例
func NewCommentController(commentService *service.CommentService) *CommentController {
	return &CommentController{commentService: commentService}
}

// CreateComment 发表评论
// @Summary      在指定房源下发表评论
// @Description  评论内容非空；响应携带评论人展示名。
// @Tags         comments (评论)
// @Accept       json
// @Produce      json
// @Param        id path uint64 true "房源 ID" Format(uint64)
// @Param        request body dto.CreateCommentRequest true "评论内容"
// @Success      200 {object} vo.CommentResponseWrapper "评论发表成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的请求参数"
// @Failure      401 {object} vo.BaseResponseWrapper "未登录"
// @Failure      404 {object} vo.BaseResponseWrapper "房源不存在"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/realestate/properties/{id}/comments [post]
func (ctrl *CommentController) CreateComment(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的请求参数: "+err.Error())
		return
	}
	identity := middleware.IdentityFromContext(c)
	commentVO, err := ctrl.commentService.CreateComment(c.Request.Context(), identity, id, &req)
	if err != nil {
		respondServiceError(c, err, "发表评论失败")
		return
	}
	response.RespondSuccess(c, commentVO, "评论发表成功")
}

// ListCommentsForProperty 获取房源评论
// @Summary      获取指定房源的评论列表 (公开)
// @Description  最新的评论在前；评论人展示名优先用 Name，为空回退用户名。
// @Tags         comments (评论)
// @Accept       json
// @Produce      json
// @Param        id path uint64 true "房源 ID" Format(uint64)
// @Success      200 {object} vo.CommentListResponseWrapper "评论列表获取成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的房源 ID 格式"
// @Failure      404 {object} vo.BaseResponseWrapper "房源不存在"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/realestate/properties/{id}/comments [get]
func (ctrl *CommentController) ListCommentsForProperty(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	comments, err := ctrl.commentService.ListCommentsForProperty(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, "获取评论列表失败")
		return
	}
	response.RespondSuccess(c, comments, "评论列表获取成功")
}

// ListAllComments 获取全站评论
// @Summary      获取全站评论列表 (管理员)
// @Description  返回全站评论，最新的在前，用于后台巡查。
// @Tags         admin (管理后台)
// @Accept       json
// @Produce      json
// @Success      200 {object} vo.CommentListResponseWrapper "评论列表获取成功"
// @Failure      401 {object} vo.BaseResponseWrapper "未登录"
// @Failure      403 {object} vo.BaseResponseWrapper "非管理员"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/realestate/admin/comments [get]
func (ctrl *CommentController) ListAllComments(c *gin.Context) {
	identity := middleware.IdentityFromContext(c)
	comments, err := ctrl.commentService.ListAllComments(c.Request.Context(), identity)
	if err != nil {
		respondServiceError(c, err, "获取全站评论失败")
		return
	}
	response.RespondSuccess(c, comments, "评论列表获取成功")
}

// DeleteComment 删除评论
// @Summary      删除指定评论 (管理员)
// @Description  软删除一条评论；评论不存在返回 404。
// @Tags         admin (管理后台)
// @Accept       json
// @Produce      json
// @Param        id path uint64 true "评论 ID" Format(uint64)
// @Success      200 {object} vo.BaseResponseWrapper "评论删除成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的评论 ID 格式"
// @Failure      401 {object} vo.BaseResponseWrapper "未登录"
// @Failure      403 {object} vo.BaseResponseWrapper "非管理员"
// @Failure      404 {object} vo.BaseResponseWrapper "评论不存在"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/realestate/admin/comments/{id} [delete]
func (ctrl *CommentController) DeleteComment(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	identity := middleware.IdentityFromContext(c)
	if err := ctrl.commentService.DeleteComment(c.Request.Context(), identity, id); err != nil {
		respondServiceError(c, err, "删除评论失败")
		return
	}
	response.RespondSuccess[any](c, nil, "评论删除成功")
}

// RegisterRoutes 注册 CommentController 的路由
func (ctrl *CommentController) RegisterRoutes(group *gin.RouterGroup) {
	properties := group.Group("/properties")
	{
		properties.GET("/:id/comments", ctrl.ListCommentsForProperty)                      // GET  /api/v1/realestate/properties/:id/comments
		properties.POST("/:id/comments", middleware.RequireAuth(), ctrl.CreateComment)     // POST /api/v1/realestate/properties/:id/comments
	}

	admin := group.Group("/admin", middleware.RequireAdmin())
	{
		admin.GET("/comments", ctrl.ListAllComments)         // GET    /api/v1/realestate/admin/comments
		admin.DELETE("/comments/:id", ctrl.DeleteComment)    // DELETE /api/v1/realestate/admin/comments/:id
	}
}
