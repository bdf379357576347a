package myErrors

import (
	"errors"
	"fmt"

	"github.com/Xushengqwer/go-common/commonerrors"
)

// ErrCacheMiss 表示在缓存层未找到对应的键值
var ErrCacheMiss = errors.New("cache: key not found (miss)")

// ErrInvalidCredentials 表示登录时用户名不存在或密码校验失败。
// 注意对外只暴露统一的“凭证无效”，不区分具体是哪一种，避免用户名枚举。
var ErrInvalidCredentials = errors.New("auth: invalid credentials")

// ErrEmailTaken 表示注册时邮箱（即用户名）已被占用
var ErrEmailTaken = errors.New("auth: email already taken")

// ErrForbidden 表示调用方身份合法但无权执行该操作（非管理员/非资源属主）
var ErrForbidden = errors.New("auth: operation forbidden")

// PropertyNotFoundError 表示批量结算时某个条目指向的房源不存在。
// 错误信息点名具体的房源ID；此前条目产生的购买记录已各自提交、不回滚。
type PropertyNotFoundError struct {
	PropertyID uint64
}

func (e *PropertyNotFoundError) Error() string {
	return fmt.Sprintf("Property %d not found", e.PropertyID)
}

// Is 让 errors.Is(err, commonerrors.ErrRepoNotFound) 对本错误成立，
// 控制器可以沿用统一的 404 映射。
func (e *PropertyNotFoundError) Is(target error) bool {
	return target == commonerrors.ErrRepoNotFound
}
