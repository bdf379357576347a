package auth

// Identity 已解析的调用方身份，由认证中间件写入请求上下文，
// 再由控制器显式传入各服务方法（避免服务层读取全局请求状态）。
// nil 表示匿名调用方。
type Identity struct {
	UserID  uint64 // 用户ID
	IsAdmin bool   // 管理员（staff）标志
}

// IsStaff 判空安全的管理员判断，匿名视为非管理员。
func (i *Identity) IsStaff() bool {
	return i != nil && i.IsAdmin
}
