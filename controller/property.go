package controller

import (
	"mime/multipart"
	"net/http"

	"github.com/Xushengqwer/go-common/response"
	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/realestate_service/middleware"
	"github.com/Xushengqwer/realestate_service/models/dto"
	"github.com/Xushengqwer/realestate_service/service"
)

// PropertyController 定义房源控制器的结构体
type PropertyController struct {
	propertyService *service.PropertyService
}

// NewPropertyController 构造函数，用于创建 PropertyController 实例
func NewPropertyController(propertyService *service.PropertyService) *PropertyController {
	return &PropertyController{propertyService: propertyService}
}

// imageFromForm 取出 multipart 表单中的图片文件，没传则返回 nil。
func imageFromForm(c *gin.Context) *multipart.FileHeader {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return nil
	}
	return fileHeader
}

// ListProperties 获取房源列表
// @Summary      获取房源列表 (公开)
// @Description  按创建时间倒序返回请求方可见的房源：匿名与普通用户只见已过审，管理员全量可见。
// @Tags         properties (房源)
// @Accept       json
// @Produce      json
// @Success      200 {object} vo.PropertyListResponseWrapper "房源列表获取成功"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/realestate/properties [get]
func (ctrl *PropertyController) ListProperties(c *gin.Context) {
	identity := middleware.IdentityFromContext(c)
	properties, err := ctrl.propertyService.ListProperties(c.Request.Context(), identity)
	if err != nil {
		respondServiceError(c, err, "获取房源列表失败")
		return
	}
	response.RespondSuccess(c, properties, "房源列表获取成功")
}

// GetProperty 获取房源详情
// @Summary      获取指定ID的房源详情
// @Description  已过审的房源公开可见；待审核/已驳回的只有管理员与提交人可见，其余请求按不存在处理。
// @Tags         properties (房源)
// @Accept       json
// @Produce      json
// @Param        id path uint64 true "房源 ID" Format(uint64)
// @Success      200 {object} vo.PropertyResponseWrapper "房源详情获取成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的房源 ID 格式"
// @Failure      404 {object} vo.BaseResponseWrapper "房源不存在"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/realestate/properties/{id} [get]
func (ctrl *PropertyController) GetProperty(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	identity := middleware.IdentityFromContext(c)
	propertyVO, err := ctrl.propertyService.GetPropertyByID(c.Request.Context(), identity, id)
	if err != nil {
		respondServiceError(c, err, "获取房源详情失败")
		return
	}
	response.RespondSuccess(c, propertyVO, "房源详情获取成功")
}

// CreateProperty 创建房源
// @Summary      创建新房源
// @Description  multipart/form-data 提交，图片文件字段名 "image"（可选）。非管理员提交的房源强制进入待审核、非精选。
// @Tags         properties (房源)
// @Accept       multipart/form-data
// @Produce      json
// @Param        name formData string true "房源名称" maxLength(255)
// @Param        type formData string true "房源类型" maxLength(100)
// @Param        location formData string true "位置" maxLength(255)
// @Param        price formData number false "价格 (大于等于0)" minimum(0)
// @Param        transaction_type formData string false "交易类型" Enums(sale,rent) default(sale)
// @Param        category_id formData uint64 true "所属分类 ID"
// @Param        is_featured formData boolean false "精选标记 (仅管理员生效)"
// @Param        status formData int false "审核状态 (仅管理员生效, 0:待审核, 1:已过审, 2:已驳回)" Enums(0,1,2)
// @Param        image formData file false "房源图片文件"
// @Success      200 {object} vo.PropertyResponseWrapper "房源创建成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的请求参数"
// @Failure      401 {object} vo.BaseResponseWrapper "未登录"
// @Failure      404 {object} vo.BaseResponseWrapper "分类不存在"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/realestate/properties [post]
func (ctrl *PropertyController) CreateProperty(c *gin.Context) {
	var req dto.CreatePropertyRequest
	if err := c.ShouldBind(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "绑定请求数据失败: "+err.Error())
		return
	}

	identity := middleware.IdentityFromContext(c)
	propertyVO, err := ctrl.propertyService.CreateProperty(c.Request.Context(), identity, &req, imageFromForm(c))
	if err != nil {
		respondServiceError(c, err, "创建房源失败")
		return
	}
	response.RespondSuccess(c, propertyVO, "房源创建成功")
}

// UpdateProperty 更新房源
// @Summary      更新指定ID的房源
// @Description  部分更新：只有提交的字段生效。管理员或提交人本人可改；状态与精选字段仅管理员生效。PUT 与 PATCH 行为一致。
// @Tags         properties (房源)
// @Accept       multipart/form-data
// @Produce      json
// @Param        id path uint64 true "房源 ID" Format(uint64)
// @Param        name formData string false "房源名称" maxLength(255)
// @Param        type formData string false "房源类型" maxLength(100)
// @Param        location formData string false "位置" maxLength(255)
// @Param        price formData number false "价格 (大于等于0)" minimum(0)
// @Param        transaction_type formData string false "交易类型" Enums(sale,rent)
// @Param        category_id formData uint64 false "所属分类 ID"
// @Param        is_featured formData boolean false "精选标记 (仅管理员生效)"
// @Param        status formData int false "审核状态 (仅管理员生效)" Enums(0,1,2)
// @Param        image formData file false "新的房源图片文件"
// @Success      200 {object} vo.PropertyResponseWrapper "房源更新成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的请求参数"
// @Failure      401 {object} vo.BaseResponseWrapper "未登录"
// @Failure      403 {object} vo.BaseResponseWrapper "非管理员且非提交人"
// @Failure      404 {object} vo.BaseResponseWrapper "房源或分类不存在"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/realestate/properties/{id} [put]
func (ctrl *PropertyController) UpdateProperty(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.UpdatePropertyRequest
	if err := c.ShouldBind(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "绑定请求数据失败: "+err.Error())
		return
	}

	identity := middleware.IdentityFromContext(c)
	propertyVO, err := ctrl.propertyService.UpdateProperty(c.Request.Context(), identity, id, &req, imageFromForm(c))
	if err != nil {
		respondServiceError(c, err, "更新房源失败")
		return
	}
	response.RespondSuccess(c, propertyVO, "房源更新成功")
}

// DeleteProperty 删除房源
// @Summary      删除指定ID的房源
// @Description  软删除房源并清理其评论与收藏关系；购买记录保留。管理员或提交人本人可删。
// @Tags         properties (房源)
// @Accept       json
// @Produce      json
// @Param        id path uint64 true "房源 ID" Format(uint64)
// @Success      200 {object} vo.BaseResponseWrapper "房源删除成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的房源 ID 格式"
// @Failure      401 {object} vo.BaseResponseWrapper "未登录"
// @Failure      403 {object} vo.BaseResponseWrapper "非管理员且非提交人"
// @Failure      404 {object} vo.BaseResponseWrapper "房源不存在"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/realestate/properties/{id} [delete]
func (ctrl *PropertyController) DeleteProperty(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	identity := middleware.IdentityFromContext(c)
	if err := ctrl.propertyService.DeleteProperty(c.Request.Context(), identity, id); err != nil {
		respondServiceError(c, err, "删除房源失败")
		return
	}
	response.RespondSuccess[any](c, nil, "房源删除成功")
}

// ListByCategory 按分类获取房源
// @Summary      按分类获取房源列表 (公开)
// @Description  返回指定分类下的全部房源；分类不存在返回 404。
// @Tags         properties (房源)
// @Accept       json
// @Produce      json
// @Param        category_id query uint64 true "分类 ID"
// @Success      200 {object} vo.PropertyListResponseWrapper "房源列表获取成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的查询参数"
// @Failure      404 {object} vo.BaseResponseWrapper "分类不存在"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/realestate/properties/by_category [get]
func (ctrl *PropertyController) ListByCategory(c *gin.Context) {
	var req dto.ByCategoryRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的查询参数: "+err.Error())
		return
	}
	identity := middleware.IdentityFromContext(c)
	properties, err := ctrl.propertyService.ListByCategory(c.Request.Context(), identity, req.CategoryID)
	if err != nil {
		respondServiceError(c, err, "按分类获取房源失败")
		return
	}
	response.RespondSuccess(c, properties, "房源列表获取成功")
}

// ListFeatured 获取精选房源
// @Summary      获取精选房源列表 (公开)
// @Description  返回全部精选房源，优先读取 Redis 缓存，未命中回源数据库。
// @Tags         properties (房源)
// @Accept       json
// @Produce      json
// @Success      200 {object} vo.PropertyListResponseWrapper "精选房源获取成功"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/realestate/properties/featured [get]
func (ctrl *PropertyController) ListFeatured(c *gin.Context) {
	identity := middleware.IdentityFromContext(c)
	properties, err := ctrl.propertyService.ListFeatured(c.Request.Context(), identity)
	if err != nil {
		respondServiceError(c, err, "获取精选房源失败")
		return
	}
	response.RespondSuccess(c, properties, "精选房源获取成功")
}

// SearchProperties 搜索房源
// @Summary      按名称搜索房源 (公开)
// @Description  按名称做大小写不敏感的子串匹配。
// @Tags         properties (房源)
// @Accept       json
// @Produce      json
// @Param        q query string true "搜索关键词" maxLength(255)
// @Success      200 {object} vo.PropertyListResponseWrapper "搜索成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的查询参数"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/realestate/properties/search [get]
func (ctrl *PropertyController) SearchProperties(c *gin.Context) {
	var req dto.SearchPropertiesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的查询参数: "+err.Error())
		return
	}
	identity := middleware.IdentityFromContext(c)
	properties, err := ctrl.propertyService.SearchProperties(c.Request.Context(), identity, req.Query)
	if err != nil {
		respondServiceError(c, err, "搜索房源失败")
		return
	}
	response.RespondSuccess(c, properties, "搜索成功")
}

// ListPending 获取待审核房源
// @Summary      获取待审核房源列表 (管理员)
// @Description  返回全部处于待审核状态的房源。
// @Tags         properties (房源)
// @Accept       json
// @Produce      json
// @Success      200 {object} vo.PropertyListResponseWrapper "待审核房源获取成功"
// @Failure      401 {object} vo.BaseResponseWrapper "未登录"
// @Failure      403 {object} vo.BaseResponseWrapper "非管理员"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/realestate/properties/pending [get]
func (ctrl *PropertyController) ListPending(c *gin.Context) {
	identity := middleware.IdentityFromContext(c)
	properties, err := ctrl.propertyService.ListPending(c.Request.Context(), identity)
	if err != nil {
		respondServiceError(c, err, "获取待审核房源失败")
		return
	}
	response.RespondSuccess(c, properties, "待审核房源获取成功")
}

// ListByCondition 后台条件分页查询房源
// @Summary      条件分页查询房源 (管理员)
// @Description  支持按名称模糊、状态、分类、精选标记组合筛选并分页，返回列表与总数。
// @Tags         admin (管理后台)
// @Accept       json
// @Produce      json
// @Param        name query string false "名称模糊查询"
// @Param        status query int false "状态筛选 (0:待审核, 1:已过审, 2:已驳回)" Enums(0,1,2)
// @Param        category_id query uint64 false "分类筛选"
// @Param        is_featured query boolean false "精选筛选"
// @Param        order_by query string false "排序字段 (created_at 或 updated_at)" default(created_at)
// @Param        order_desc query boolean false "是否降序"
// @Param        page query int true "页码 (从1开始)" minimum(1)
// @Param        page_size query int true "每页大小" minimum(1) maximum(100)
// @Success      200 {object} vo.ListPropertiesPageResponseWrapper "查询成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的查询参数"
// @Failure      401 {object} vo.BaseResponseWrapper "未登录"
// @Failure      403 {object} vo.BaseResponseWrapper "非管理员"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/realestate/admin/properties [get]
func (ctrl *PropertyController) ListByCondition(c *gin.Context) {
	var req dto.ListPropertiesByConditionRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的查询参数: "+err.Error())
		return
	}
	identity := middleware.IdentityFromContext(c)
	pageVO, err := ctrl.propertyService.ListPropertiesByCondition(c.Request.Context(), identity, &req)
	if err != nil {
		respondServiceError(c, err, "条件查询房源失败")
		return
	}
	response.RespondSuccess(c, pageVO, "查询成功")
}

// RegisterRoutes 注册 PropertyController 的路由
func (ctrl *PropertyController) RegisterRoutes(group *gin.RouterGroup) {
	properties := group.Group("/properties")
	{
		properties.GET("", ctrl.ListProperties)                                      // GET  /api/v1/realestate/properties
		properties.POST("", middleware.RequireAuth(), ctrl.CreateProperty)           // POST /api/v1/realestate/properties
		properties.GET("/featured", ctrl.ListFeatured)                               // GET  /api/v1/realestate/properties/featured
		properties.GET("/by_category", ctrl.ListByCategory)                          // GET  /api/v1/realestate/properties/by_category
		properties.GET("/search", ctrl.SearchProperties)                             // GET  /api/v1/realestate/properties/search
		properties.GET("/pending", middleware.RequireAdmin(), ctrl.ListPending)      // GET  /api/v1/realestate/properties/pending
		properties.GET("/:id", ctrl.GetProperty)                                     // GET  /api/v1/realestate/properties/:id
		properties.PUT("/:id", middleware.RequireAuth(), ctrl.UpdateProperty)        // PUT  /api/v1/realestate/properties/:id
		properties.PATCH("/:id", middleware.RequireAuth(), ctrl.UpdateProperty)      // PATCH 与 PUT 行为一致
		properties.DELETE("/:id", middleware.RequireAuth(), ctrl.DeleteProperty)     // DELETE /api/v1/realestate/properties/:id
	}

	admin := group.Group("/admin", middleware.RequireAdmin())
	{
		admin.GET("/properties", ctrl.ListByCondition) // GET /api/v1/realestate/admin/properties
	}
}
