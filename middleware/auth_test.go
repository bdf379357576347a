package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Xushengqwer/go-common/commonerrors"
	commonConfig "github.com/Xushengqwer/go-common/config"
	"github.com/Xushengqwer/go-common/core"
	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/realestate_service/models/entities"
	"github.com/Xushengqwer/realestate_service/service"
)

// 内存版用户与令牌仓库，只覆盖中间件链路会触达的方法。
type stubUserRepo struct {
	users map[uint64]*entities.User
}

func (s *stubUserRepo) CreateUserWithProfile(ctx context.Context, user *entities.User, profile *entities.Profile) error {
	s.users[user.ID] = user
	return nil
}

func (s *stubUserRepo) GetUserByUsername(ctx context.Context, username string) (*entities.User, error) {
	for _, u := range s.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, commonerrors.ErrRepoNotFound
}

func (s *stubUserRepo) GetUserByID(ctx context.Context, id uint64) (*entities.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, commonerrors.ErrRepoNotFound
	}
	return u, nil
}

func (s *stubUserRepo) UpdatePassword(ctx context.Context, userID uint64, passwordHash string) error {
	return nil
}

type stubTokenRepo struct {
	tokens map[string]uint64
}

func (s *stubTokenRepo) GetOrCreateToken(ctx context.Context, userID uint64) (string, error) {
	for token, id := range s.tokens {
		if id == userID {
			return token, nil
		}
	}
	return "", commonerrors.ErrRepoNotFound
}

func (s *stubTokenRepo) ResolveToken(ctx context.Context, token string) (uint64, error) {
	userID, ok := s.tokens[token]
	if !ok {
		return 0, commonerrors.ErrRepoNotFound
	}
	return userID, nil
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger, err := core.NewZapLogger(commonConfig.ZapConfig{})
	if err != nil {
		t.Fatalf("初始化测试 logger 失败: %v", err)
	}

	regular := &entities.User{Username: "user@test.local"}
	regular.ID = 7
	admin := &entities.User{Username: "admin@test.local", IsAdmin: true}
	admin.ID = 1

	userRepo := &stubUserRepo{users: map[uint64]*entities.User{7: regular, 1: admin}}
	tokenRepo := &stubTokenRepo{tokens: map[string]uint64{"user-token": 7, "admin-token": 1}}
	authService := service.NewAuthService(userRepo, tokenRepo, logger)

	router := gin.New()
	router.Use(TokenAuth(authService, logger))
	router.GET("/open", func(c *gin.Context) {
		identity := IdentityFromContext(c)
		if identity == nil {
			c.String(http.StatusOK, "anonymous")
			return
		}
		c.String(http.StatusOK, "user")
	})
	router.GET("/protected", RequireAuth(), func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	router.GET("/admin", RequireAdmin(), func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	return router
}

func doRequest(router *gin.Engine, path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestTokenAuthAnonymousPassthrough(t *testing.T) {
	router := newTestRouter(t)

	cases := []struct {
		name   string
		header string
	}{
		{"无令牌", ""},
		{"非 Bearer 头部", "Basic dXNlcjpwYXNz"},
		{"格式残缺", "Bearer"},
		{"无效令牌", "Bearer forged-token"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			recorder := doRequest(router, "/open", tc.header)
			if recorder.Code != http.StatusOK {
				t.Fatalf("公开路由应放行，got %d", recorder.Code)
			}
			if recorder.Body.String() != "anonymous" {
				t.Errorf("应按匿名处理，got %q", recorder.Body.String())
			}
		})
	}
}

func TestTokenAuthResolvesIdentity(t *testing.T) {
	router := newTestRouter(t)

	recorder := doRequest(router, "/open", "Bearer user-token")
	if recorder.Body.String() != "user" {
		t.Errorf("有效令牌应解析出身份，got %q", recorder.Body.String())
	}

	// Bearer 关键字大小写不敏感
	recorder = doRequest(router, "/open", "bearer user-token")
	if recorder.Body.String() != "user" {
		t.Errorf("bearer 小写也应解析出身份，got %q", recorder.Body.String())
	}
}

func TestRequireAuth(t *testing.T) {
	router := newTestRouter(t)

	if code := doRequest(router, "/protected", "").Code; code != http.StatusUnauthorized {
		t.Errorf("匿名访问受保护路由应返回 401，got %d", code)
	}
	if code := doRequest(router, "/protected", "Bearer user-token").Code; code != http.StatusOK {
		t.Errorf("有效令牌应放行，got %d", code)
	}
}

func TestRequireAdmin(t *testing.T) {
	router := newTestRouter(t)

	if code := doRequest(router, "/admin", "").Code; code != http.StatusUnauthorized {
		t.Errorf("匿名访问管理路由应返回 401，got %d", code)
	}
	if code := doRequest(router, "/admin", "Bearer user-token").Code; code != http.StatusForbidden {
		t.Errorf("普通用户访问管理路由应返回 403，got %d", code)
	}
	if code := doRequest(router, "/admin", "Bearer admin-token").Code; code != http.StatusOK {
		t.Errorf("管理员应放行，got %d", code)
	}
}
