package controller

import (
	"net/http"

	"github.com/Xushengqwer/go-common/response"
	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/realestate_service/middleware"
	"github.com/Xushengqwer/realestate_service/models/dto"
	"github.com/Xushengqwer/realestate_service/service"
)

// TradeController 定义收藏与购买控制器的结构体
type TradeController struct {
	tradeService *service.TradeService
}

// NewTradeController 构造函数，用于创建 TradeController 实例
func NewTradeController(tradeService *service.TradeService) *TradeController {
	return &TradeController{tradeService: tradeService}
}

// FavoriteProperty 收藏房源
// @Summary      收藏指定房源
// @Description  把房源加入当前用户的收藏；重复收藏是幂等的。
// @Tags         trade (收藏与购买)
// @Accept       json
// @Produce      json
// @Param        id path uint64 true "房源 ID" Format(uint64)
// @Success      200 {object} vo.BaseResponseWrapper "收藏成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的房源 ID 格式"
// @Failure      401 {object} vo.BaseResponseWrapper "未登录"
// @Failure      404 {object} vo.BaseResponseWrapper "房源不存在"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/realestate/properties/{id}/favorite [post]
func (ctrl *TradeController) FavoriteProperty(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	identity := middleware.IdentityFromContext(c)
	if err := ctrl.tradeService.FavoriteProperty(c.Request.Context(), identity, id); err != nil {
		respondServiceError(c, err, "收藏房源失败")
		return
	}
	response.RespondSuccess[any](c, nil, "收藏成功")
}

// UnfavoriteProperty 取消收藏
// @Summary      取消收藏指定房源
// @Description  把房源移出当前用户的收藏；未收藏过同样视为成功。
// @Tags         trade (收藏与购买)
// @Accept       json
// @Produce      json
// @Param        id path uint64 true "房源 ID" Format(uint64)
// @Success      200 {object} vo.BaseResponseWrapper "取消收藏成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的房源 ID 格式"
// @Failure      401 {object} vo.BaseResponseWrapper "未登录"
// @Failure      404 {object} vo.BaseResponseWrapper "房源不存在"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/realestate/properties/{id}/unfavorite [post]
func (ctrl *TradeController) UnfavoriteProperty(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	identity := middleware.IdentityFromContext(c)
	if err := ctrl.tradeService.UnfavoriteProperty(c.Request.Context(), identity, id); err != nil {
		respondServiceError(c, err, "取消收藏失败")
		return
	}
	response.RespondSuccess[any](c, nil, "取消收藏成功")
}

// BuyProperty 购买房源
// @Summary      购买指定房源
// @Description  生成一条数量为 1 的购买记录。
// @Tags         trade (收藏与购买)
// @Accept       json
// @Produce      json
// @Param        id path uint64 true "房源 ID" Format(uint64)
// @Success      200 {object} vo.BaseResponseWrapper "购买成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的房源 ID 格式"
// @Failure      401 {object} vo.BaseResponseWrapper "未登录"
// @Failure      404 {object} vo.BaseResponseWrapper "房源不存在"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/realestate/properties/{id}/buy [post]
func (ctrl *TradeController) BuyProperty(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	identity := middleware.IdentityFromContext(c)
	if err := ctrl.tradeService.BuyProperty(c.Request.Context(), identity, id); err != nil {
		respondServiceError(c, err, "购买房源失败")
		return
	}
	response.RespondSuccess[any](c, nil, "购买成功")
}

// Checkout 购物车结算
// @Summary      批量结算购物车
// @Description  逐条顺序处理：条目数量为 N 时生成 N 条购买记录。某条目的房源不存在时立即返回 404 并点名该ID，此前已生成的记录保留。
// @Tags         trade (收藏与购买)
// @Accept       json
// @Produce      json
// @Param        request body dto.CheckoutRequest true "结算请求"
// @Success      200 {object} vo.CheckoutResultResponseWrapper "结算完成"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的请求参数"
// @Failure      401 {object} vo.BaseResponseWrapper "未登录"
// @Failure      404 {object} vo.BaseResponseWrapper "某条目指向的房源不存在"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/realestate/cart/checkout [post]
func (ctrl *TradeController) Checkout(c *gin.Context) {
	var req dto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的请求参数: "+err.Error())
		return
	}
	identity := middleware.IdentityFromContext(c)
	resultVO, err := ctrl.tradeService.Checkout(c.Request.Context(), identity, &req)
	if err != nil {
		respondServiceError(c, err, "结算失败")
		return
	}
	response.RespondSuccess(c, resultVO, "结算完成")
}

// ListOwnPurchases 获取本人购买记录
// @Summary      获取当前用户的购买记录
// @Description  返回当前用户的全部购买记录；房源已被删除的记录房源载荷为 null。
// @Tags         trade (收藏与购买)
// @Accept       json
// @Produce      json
// @Success      200 {object} vo.PurchaseListResponseWrapper "购买记录获取成功"
// @Failure      401 {object} vo.BaseResponseWrapper "未登录"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/realestate/user/purchases [get]
func (ctrl *TradeController) ListOwnPurchases(c *gin.Context) {
	identity := middleware.IdentityFromContext(c)
	purchases, err := ctrl.tradeService.ListOwnPurchases(c.Request.Context(), identity)
	if err != nil {
		respondServiceError(c, err, "获取购买记录失败")
		return
	}
	response.RespondSuccess(c, purchases, "购买记录获取成功")
}

// AddPurchaseDirect 后台补录购买记录
// @Summary      后台补录购买记录 (管理员)
// @Description  为指定用户直接生成一条购买记录，用于线下成交补录。
// @Tags         admin (管理后台)
// @Accept       json
// @Produce      json
// @Param        request body dto.AddPurchaseRequest true "补录请求"
// @Success      200 {object} vo.BaseResponseWrapper "补录成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的请求参数"
// @Failure      401 {object} vo.BaseResponseWrapper "未登录"
// @Failure      403 {object} vo.BaseResponseWrapper "非管理员"
// @Failure      404 {object} vo.BaseResponseWrapper "用户或房源不存在"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/realestate/user/purchases/add [post]
func (ctrl *TradeController) AddPurchaseDirect(c *gin.Context) {
	var req dto.AddPurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的请求参数: "+err.Error())
		return
	}
	identity := middleware.IdentityFromContext(c)
	if err := ctrl.tradeService.AddPurchaseDirect(c.Request.Context(), identity, &req); err != nil {
		respondServiceError(c, err, "补录购买记录失败")
		return
	}
	response.RespondSuccess[any](c, nil, "补录成功")
}

// RegisterRoutes 注册 TradeController 的路由
func (ctrl *TradeController) RegisterRoutes(group *gin.RouterGroup) {
	properties := group.Group("/properties", middleware.RequireAuth())
	{
		properties.POST("/:id/favorite", ctrl.FavoriteProperty)     // POST /api/v1/realestate/properties/:id/favorite
		properties.POST("/:id/unfavorite", ctrl.UnfavoriteProperty) // POST /api/v1/realestate/properties/:id/unfavorite
		properties.POST("/:id/buy", ctrl.BuyProperty)               // POST /api/v1/realestate/properties/:id/buy
	}

	group.POST("/cart/checkout", middleware.RequireAuth(), ctrl.Checkout)

	user := group.Group("/user")
	{
		user.GET("/purchases", middleware.RequireAuth(), ctrl.ListOwnPurchases)
		user.POST("/purchases/add", middleware.RequireAdmin(), ctrl.AddPurchaseDirect)
	}
}
