package middleware

import (
	"net/http"
	"strings"

	"github.com/Xushengqwer/go-common/core"
	"github.com/Xushengqwer/go-common/response"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Xushengqwer/realestate_service/models/auth"
	"github.com/Xushengqwer/realestate_service/service"
)

// identityContextKey 是身份信息在 gin context 中的键。
const identityContextKey = "auth_identity"

// IdentityFromContext 取出当前请求的身份，匿名请求返回 nil。
func IdentityFromContext(c *gin.Context) *auth.Identity {
	value, exists := c.Get(identityContextKey)
	if !exists {
		return nil
	}
	identity, ok := value.(*auth.Identity)
	if !ok {
		return nil
	}
	return identity
}

// TokenAuth 解析 Authorization: Bearer <token> 并把身份写入请求上下文。
// - 不带令牌、令牌无效的请求按匿名放行（可见性过滤由业务层决定）。
// - 强制登录/强制管理员由 RequireAuth / RequireAdmin 在路由上叠加。
func TokenAuth(authService *service.AuthService, logger *core.ZapLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.Next()
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
			// 头部格式不对按匿名处理，不中断请求
			c.Next()
			return
		}

		identity, err := authService.ResolveIdentity(c.Request.Context(), parts[1])
		if err != nil {
			// 解析失败（过期/伪造/用户已注销）一律当匿名，fail closed
			logger.Debug("访问令牌解析失败，按匿名处理", zap.Error(err))
			c.Next()
			return
		}

		c.Set(identityContextKey, identity)
		c.Next()
	}
}

// RequireAuth 要求请求已携带有效令牌，否则返回 401。
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if IdentityFromContext(c) == nil {
			response.RespondError(c, http.StatusUnauthorized, response.ErrCodeClientUnauthorized, "请先登录")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAdmin 要求请求方是管理员：未登录 401，非管理员 403。
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := IdentityFromContext(c)
		if identity == nil {
			response.RespondError(c, http.StatusUnauthorized, response.ErrCodeClientUnauthorized, "请先登录")
			c.Abort()
			return
		}
		if !identity.IsAdmin {
			response.RespondError(c, http.StatusForbidden, response.ErrCodeClientUnauthorized, "没有权限执行该操作")
			c.Abort()
			return
		}
		c.Next()
	}
}
