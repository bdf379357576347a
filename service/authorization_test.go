package service

import (
	"errors"
	"testing"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/Xushengqwer/go-common/models/enums"

	"github.com/Xushengqwer/realestate_service/models/auth"
	"github.com/Xushengqwer/realestate_service/models/entities"
	"github.com/Xushengqwer/realestate_service/myErrors"
)

func TestVisibleStatuses(t *testing.T) {
	policy := NewAuthorizationPolicy()

	if got := policy.VisibleStatuses(&auth.Identity{UserID: 1, IsAdmin: true}); got != nil {
		t.Errorf("管理员应当不过滤状态，got %v", got)
	}

	for name, identity := range map[string]*auth.Identity{
		"匿名":   nil,
		"普通用户": {UserID: 7},
	} {
		got := policy.VisibleStatuses(identity)
		if len(got) != 1 || got[0] != enums.Approved {
			t.Errorf("%s 应当只看到已过审房源，got %v", name, got)
		}
	}
}

func TestCanViewProperty(t *testing.T) {
	policy := NewAuthorizationPolicy()
	ownerID := uint64(7)

	approved := &entities.Property{Status: enums.Approved}
	pending := &entities.Property{Status: enums.Pending, AddedByID: &ownerID}

	if !policy.CanViewProperty(nil, approved) {
		t.Error("已过审房源匿名应当可见")
	}
	if policy.CanViewProperty(nil, pending) {
		t.Error("待审核房源匿名不应可见")
	}
	if policy.CanViewProperty(&auth.Identity{UserID: 8}, pending) {
		t.Error("待审核房源其他用户不应可见")
	}
	if !policy.CanViewProperty(&auth.Identity{UserID: ownerID}, pending) {
		t.Error("待审核房源属主本人应当可见")
	}
	if !policy.CanViewProperty(&auth.Identity{UserID: 99, IsAdmin: true}, pending) {
		t.Error("待审核房源管理员应当可见")
	}
}

func TestSanitizeNewProperty(t *testing.T) {
	policy := NewAuthorizationPolicy()
	featured := true
	rejected := enums.Rejected

	t.Run("非管理员强制待审核且非精选", func(t *testing.T) {
		property := &entities.Property{}
		approved := enums.Approved
		policy.SanitizeNewProperty(&auth.Identity{UserID: 7}, property, &featured, &approved)
		if property.IsFeatured {
			t.Error("非管理员提交的精选标记应被清除")
		}
		if property.Status != enums.Pending {
			t.Errorf("非管理员提交的状态应被强制为待审核，got %v", property.Status)
		}
	})

	t.Run("管理员缺省过审", func(t *testing.T) {
		property := &entities.Property{}
		policy.SanitizeNewProperty(&auth.Identity{UserID: 1, IsAdmin: true}, property, nil, nil)
		if property.Status != enums.Approved {
			t.Errorf("管理员未显式指定状态时应缺省为已过审，got %v", property.Status)
		}
		if property.IsFeatured {
			t.Error("管理员未显式指定精选时应保持非精选")
		}
	})

	t.Run("管理员显式取值生效", func(t *testing.T) {
		property := &entities.Property{}
		policy.SanitizeNewProperty(&auth.Identity{UserID: 1, IsAdmin: true}, property, &featured, &rejected)
		if !property.IsFeatured {
			t.Error("管理员显式设置的精选标记应当生效")
		}
		if property.Status != enums.Rejected {
			t.Errorf("管理员显式设置的状态应当生效，got %v", property.Status)
		}
	})
}

func TestCanModifyProperty(t *testing.T) {
	policy := NewAuthorizationPolicy()
	ownerID := uint64(7)
	property := &entities.Property{Status: enums.Approved, AddedByID: &ownerID}

	if !policy.CanModifyProperty(&auth.Identity{UserID: ownerID}, property) {
		t.Error("属主本人应当可以修改")
	}
	if !policy.CanModifyProperty(&auth.Identity{UserID: 1, IsAdmin: true}, property) {
		t.Error("管理员应当可以修改")
	}
	if policy.CanModifyProperty(&auth.Identity{UserID: 8}, property) {
		t.Error("无关用户不应可以修改")
	}
	if policy.CanModifyProperty(nil, property) {
		t.Error("匿名不应可以修改")
	}
	if policy.CanModifyProperty(&auth.Identity{UserID: 8}, &entities.Property{Status: enums.Approved}) {
		t.Error("无属主房源普通用户不应可以修改")
	}
}

func TestRoleGates(t *testing.T) {
	policy := NewAuthorizationPolicy()

	if err := policy.RequireUser(nil); !errors.Is(err, commonerrors.ErrUserNotLoggedIn) {
		t.Errorf("匿名 RequireUser 应返回 ErrUnauthorized，got %v", err)
	}
	if err := policy.RequireUser(&auth.Identity{UserID: 7}); err != nil {
		t.Errorf("已登录 RequireUser 不应报错，got %v", err)
	}
	if err := policy.RequireAdmin(nil); !errors.Is(err, myErrors.ErrForbidden) {
		t.Errorf("匿名 RequireAdmin 应返回 ErrForbidden，got %v", err)
	}
	if err := policy.RequireAdmin(&auth.Identity{UserID: 7}); !errors.Is(err, myErrors.ErrForbidden) {
		t.Errorf("普通用户 RequireAdmin 应返回 ErrForbidden，got %v", err)
	}
	if err := policy.RequireAdmin(&auth.Identity{UserID: 1, IsAdmin: true}); err != nil {
		t.Errorf("管理员 RequireAdmin 不应报错，got %v", err)
	}
}
