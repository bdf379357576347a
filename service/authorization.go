package service

import (
	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/Xushengqwer/go-common/models/enums"

	"github.com/Xushengqwer/realestate_service/models/auth"
	"github.com/Xushengqwer/realestate_service/models/entities"
	"github.com/Xushengqwer/realestate_service/myErrors"
)

// AuthorizationPolicy 集中了房源可见性与角色门槛的判定规则。
// 纯计算，无任何外部依赖，各服务共享同一份规则，避免散落在各处后悄悄分叉。
type AuthorizationPolicy struct{}

// NewAuthorizationPolicy 是 AuthorizationPolicy 的构造函数。
func NewAuthorizationPolicy() *AuthorizationPolicy {
	return &AuthorizationPolicy{}
}

// VisibleStatuses 返回该身份在房源列表中可见的状态集合。
// - 管理员返回 nil，表示不过滤（待审/驳回全可见）。
// - 其他身份（含匿名）只能看到已过审的房源。
func (p *AuthorizationPolicy) VisibleStatuses(identity *auth.Identity) []enums.Status {
	if identity.IsStaff() {
		return nil
	}
	return []enums.Status{enums.Approved}
}

// CanViewProperty 判定该身份能否查看单个房源详情。
// 已过审的房源人人可见；待审/驳回的只有管理员和提交人本人可见。
func (p *AuthorizationPolicy) CanViewProperty(identity *auth.Identity, property *entities.Property) bool {
	if property.Status == enums.Approved {
		return true
	}
	if identity.IsStaff() {
		return true
	}
	if identity != nil && property.AddedByID != nil && *property.AddedByID == identity.UserID {
		return true
	}
	return false
}

// SanitizeNewProperty 按提交人身份收敛新房源的敏感字段。
// - 非管理员：强制非精选、强制待审核，无视请求里传了什么。
// - 管理员：精选按请求取值，状态缺省为已过审，显式传了就用传的。
func (p *AuthorizationPolicy) SanitizeNewProperty(identity *auth.Identity, property *entities.Property, requestedFeatured *bool, requestedStatus *enums.Status) {
	if !identity.IsStaff() {
		property.IsFeatured = false
		property.Status = enums.Pending
		return
	}
	if requestedFeatured != nil {
		property.IsFeatured = *requestedFeatured
	}
	if requestedStatus != nil {
		property.Status = *requestedStatus
	} else {
		property.Status = enums.Approved
	}
}

// CanModifyProperty 判定该身份能否修改/删除指定房源（管理员或提交人本人）。
func (p *AuthorizationPolicy) CanModifyProperty(identity *auth.Identity, property *entities.Property) bool {
	if identity.IsStaff() {
		return true
	}
	if identity != nil && property.AddedByID != nil && *property.AddedByID == identity.UserID {
		return true
	}
	return false
}

// RequireUser 要求请求方已登录。
func (p *AuthorizationPolicy) RequireUser(identity *auth.Identity) error {
	if identity == nil {
		return commonerrors.ErrUserNotLoggedIn
	}
	return nil
}

// RequireAdmin 要求请求方是管理员。
func (p *AuthorizationPolicy) RequireAdmin(identity *auth.Identity) error {
	if !identity.IsStaff() {
		return myErrors.ErrForbidden
	}
	return nil
}
