package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/Xushengqwer/go-common/response"
	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/realestate_service/myErrors"
)

// respondServiceError 把服务层错误统一映射为 HTTP 响应。
// 404 的消息透传服务层原文（批量结算要点名缺失的房源ID），其余用调用方给的前缀。
func respondServiceError(c *gin.Context, err error, fallbackMsg string) {
	switch {
	case errors.Is(err, commonerrors.ErrRepoNotFound):
		response.RespondError(c, http.StatusNotFound, response.ErrCodeClientResourceNotFound, err.Error())
	case errors.Is(err, myErrors.ErrInvalidCredentials):
		response.RespondError(c, http.StatusUnauthorized, response.ErrCodeClientUnauthorized, "邮箱或密码错误")
	case errors.Is(err, commonerrors.ErrUserNotLoggedIn):
		response.RespondError(c, http.StatusUnauthorized, response.ErrCodeClientUnauthorized, "请先登录")
	case errors.Is(err, myErrors.ErrForbidden):
		response.RespondError(c, http.StatusForbidden, response.ErrCodeClientUnauthorized, "没有权限执行该操作")
	case errors.Is(err, myErrors.ErrEmailTaken):
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "该邮箱已被注册")
	default:
		response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, fallbackMsg+": "+err.Error())
	}
}

// parseIDParam 解析路径中的数字ID参数，非法时直接返回 400 并报告 false。
func parseIDParam(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的 "+name+" 格式")
		return 0, false
	}
	return id, true
}
