package service

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/Xushengqwer/realestate_service/models/dto"
	"github.com/Xushengqwer/realestate_service/myErrors"
)

func newAuthServiceForTest(t *testing.T, userRepo *fakeUserRepo, tokenRepo *fakeTokenRepo) *AuthService {
	t.Helper()
	return NewAuthService(userRepo, tokenRepo, newTestLogger(t))
}

func TestRegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	userRepo := newFakeUserRepo()
	tokenRepo := newFakeTokenRepo()
	svc := newAuthServiceForTest(t, userRepo, tokenRepo)

	registered, err := svc.Register(ctx, &dto.RegisterRequest{
		Name:     "张三",
		Email:    "zhangsan@test.local",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("注册失败: %v", err)
	}
	if registered.UserID == 0 {
		t.Fatal("注册应返回非零的用户ID")
	}

	user, err := userRepo.GetUserByID(ctx, registered.UserID)
	if err != nil {
		t.Fatalf("读取注册用户失败: %v", err)
	}
	if user.Username != "zhangsan@test.local" {
		t.Errorf("用户名应取邮箱，got %q", user.Username)
	}
	if user.Password == "secret123" {
		t.Error("口令不应明文入库")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("secret123")) != nil {
		t.Error("入库的口令哈希应能校验原始口令")
	}

	login, err := svc.Login(ctx, &dto.LoginRequest{Username: "zhangsan@test.local", Password: "secret123"})
	if err != nil {
		t.Fatalf("登录失败: %v", err)
	}
	if login.Token == "" {
		t.Fatal("登录应签发令牌")
	}
	if login.IsAdmin {
		t.Error("普通用户登录 is_admin 应为 false")
	}

	// 重复登录复用同一枚令牌
	again, err := svc.Login(ctx, &dto.LoginRequest{Username: "zhangsan@test.local", Password: "secret123"})
	if err != nil {
		t.Fatalf("二次登录失败: %v", err)
	}
	if again.Token != login.Token {
		t.Error("同一用户重复登录应复用同一枚令牌")
	}
	if tokenRepo.minted != 1 {
		t.Errorf("只应铸造一枚令牌，got %d", tokenRepo.minted)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	svc := newAuthServiceForTest(t, newFakeUserRepo(), newFakeTokenRepo())

	req := &dto.RegisterRequest{Name: "张三", Email: "zhangsan@test.local", Password: "secret123"}
	if _, err := svc.Register(ctx, req); err != nil {
		t.Fatalf("首次注册失败: %v", err)
	}
	if _, err := svc.Register(ctx, req); !errors.Is(err, myErrors.ErrEmailTaken) {
		t.Errorf("重复邮箱注册应返回 ErrEmailTaken，got %v", err)
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	ctx := context.Background()
	svc := newAuthServiceForTest(t, newFakeUserRepo(), newFakeTokenRepo())

	if _, err := svc.Register(ctx, &dto.RegisterRequest{Name: "张三", Email: "zhangsan@test.local", Password: "secret123"}); err != nil {
		t.Fatalf("注册失败: %v", err)
	}

	// 账号不存在与口令错误返回同一个错误，不泄露账号是否存在
	if _, err := svc.Login(ctx, &dto.LoginRequest{Username: "nobody@test.local", Password: "secret123"}); !errors.Is(err, myErrors.ErrInvalidCredentials) {
		t.Errorf("账号不存在应返回 ErrInvalidCredentials，got %v", err)
	}
	if _, err := svc.Login(ctx, &dto.LoginRequest{Username: "zhangsan@test.local", Password: "wrong"}); !errors.Is(err, myErrors.ErrInvalidCredentials) {
		t.Errorf("口令错误应返回 ErrInvalidCredentials，got %v", err)
	}
}

func TestResolveIdentity(t *testing.T) {
	ctx := context.Background()
	userRepo := newFakeUserRepo()
	tokenRepo := newFakeTokenRepo()
	svc := newAuthServiceForTest(t, userRepo, tokenRepo)

	registered, err := svc.Register(ctx, &dto.RegisterRequest{Name: "张三", Email: "zhangsan@test.local", Password: "secret123"})
	if err != nil {
		t.Fatalf("注册失败: %v", err)
	}
	login, err := svc.Login(ctx, &dto.LoginRequest{Username: "zhangsan@test.local", Password: "secret123"})
	if err != nil {
		t.Fatalf("登录失败: %v", err)
	}

	identity, err := svc.ResolveIdentity(ctx, login.Token)
	if err != nil {
		t.Fatalf("令牌解析失败: %v", err)
	}
	if identity.UserID != registered.UserID || identity.IsAdmin {
		t.Errorf("解析出的身份不符: %+v", identity)
	}

	if _, err := svc.ResolveIdentity(ctx, "forged-token"); err == nil {
		t.Error("伪造令牌解析应当失败")
	}

	// 令牌有效但用户已不存在：fail closed
	delete(userRepo.users, registered.UserID)
	if _, err := svc.ResolveIdentity(ctx, login.Token); err == nil {
		t.Error("用户已注销时令牌解析应当失败")
	}
}
