package controller

import (
	"net/http"

	"github.com/Xushengqwer/go-common/response"
	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/realestate_service/middleware"
	"github.com/Xushengqwer/realestate_service/models/dto"
	"github.com/Xushengqwer/realestate_service/service"
)

// CategoryController 定义分类控制器的结构体
type CategoryController struct {
	categoryService *service.CategoryService
}

// NewCategoryController 构造函数，用于创建 CategoryController 实例
func NewCategoryController(categoryService *service.CategoryService) *CategoryController {
	return &CategoryController{categoryService: categoryService}
}

// ListCategories 获取分类列表
// @Summary      获取全部分类 (公开)
// @Tags         categories (分类)
// @Accept       json
// @Produce      json
// @Success      200 {object} vo.CategoryListResponseWrapper "分类列表获取成功"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/realestate/categories [get]
func (ctrl *CategoryController) ListCategories(c *gin.Context) {
	categories, err := ctrl.categoryService.ListCategories(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "获取分类列表失败")
		return
	}
	response.RespondSuccess(c, categories, "分类列表获取成功")
}

// GetCategory 获取分类详情
// @Summary      获取指定ID的分类 (公开)
// @Tags         categories (分类)
// @Accept       json
// @Produce      json
// @Param        id path uint64 true "分类 ID" Format(uint64)
// @Success      200 {object} vo.CategoryResponseWrapper "分类获取成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的分类 ID 格式"
// @Failure      404 {object} vo.BaseResponseWrapper "分类不存在"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/realestate/categories/{id} [get]
func (ctrl *CategoryController) GetCategory(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	categoryVO, err := ctrl.categoryService.GetCategoryByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, "获取分类失败")
		return
	}
	response.RespondSuccess(c, categoryVO, "分类获取成功")
}

// CreateCategory 新建分类
// @Summary      新建分类 (管理员)
// @Tags         categories (分类)
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateCategoryRequest true "分类信息"
// @Success      200 {object} vo.CategoryResponseWrapper "分类创建成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的请求参数"
// @Failure      401 {object} vo.BaseResponseWrapper "未登录"
// @Failure      403 {object} vo.BaseResponseWrapper "非管理员"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/realestate/categories [post]
func (ctrl *CategoryController) CreateCategory(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的请求参数: "+err.Error())
		return
	}
	identity := middleware.IdentityFromContext(c)
	categoryVO, err := ctrl.categoryService.CreateCategory(c.Request.Context(), identity, &req)
	if err != nil {
		respondServiceError(c, err, "创建分类失败")
		return
	}
	response.RespondSuccess(c, categoryVO, "分类创建成功")
}

// UpdateCategory 更新分类
// @Summary      更新指定ID的分类 (管理员)
// @Description  部分更新：只有提交的字段生效。
// @Tags         categories (分类)
// @Accept       json
// @Produce      json
// @Param        id path uint64 true "分类 ID" Format(uint64)
// @Param        request body dto.UpdateCategoryRequest true "分类信息"
// @Success      200 {object} vo.CategoryResponseWrapper "分类更新成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的请求参数"
// @Failure      401 {object} vo.BaseResponseWrapper "未登录"
// @Failure      403 {object} vo.BaseResponseWrapper "非管理员"
// @Failure      404 {object} vo.BaseResponseWrapper "分类不存在"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/realestate/categories/{id} [put]
func (ctrl *CategoryController) UpdateCategory(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的请求参数: "+err.Error())
		return
	}
	identity := middleware.IdentityFromContext(c)
	categoryVO, err := ctrl.categoryService.UpdateCategory(c.Request.Context(), identity, id, &req)
	if err != nil {
		respondServiceError(c, err, "更新分类失败")
		return
	}
	response.RespondSuccess(c, categoryVO, "分类更新成功")
}

// DeleteCategory 删除分类
// @Summary      删除指定ID的分类 (管理员)
// @Description  同一事务内级联删除该分类下的全部房源及其评论、收藏关系。
// @Tags         categories (分类)
// @Accept       json
// @Produce      json
// @Param        id path uint64 true "分类 ID" Format(uint64)
// @Success      200 {object} vo.BaseResponseWrapper "分类删除成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的分类 ID 格式"
// @Failure      401 {object} vo.BaseResponseWrapper "未登录"
// @Failure      403 {object} vo.BaseResponseWrapper "非管理员"
// @Failure      404 {object} vo.BaseResponseWrapper "分类不存在"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/realestate/categories/{id} [delete]
func (ctrl *CategoryController) DeleteCategory(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	identity := middleware.IdentityFromContext(c)
	if err := ctrl.categoryService.DeleteCategory(c.Request.Context(), identity, id); err != nil {
		respondServiceError(c, err, "删除分类失败")
		return
	}
	response.RespondSuccess[any](c, nil, "分类删除成功")
}

// RegisterRoutes 注册 CategoryController 的路由
func (ctrl *CategoryController) RegisterRoutes(group *gin.RouterGroup) {
	categories := group.Group("/categories")
	{
		categories.GET("", ctrl.ListCategories)                                        // GET    /api/v1/realestate/categories
		categories.GET("/:id", ctrl.GetCategory)                                       // GET    /api/v1/realestate/categories/:id
		categories.POST("", middleware.RequireAdmin(), ctrl.CreateCategory)            // POST   /api/v1/realestate/categories
		categories.PUT("/:id", middleware.RequireAdmin(), ctrl.UpdateCategory)         // PUT    /api/v1/realestate/categories/:id
		categories.DELETE("/:id", middleware.RequireAdmin(), ctrl.DeleteCategory)      // DELETE /api/v1/realestate/categories/:id
	}
}
