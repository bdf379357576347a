package vo

// LoginVO 登录成功的响应数据结构
type LoginVO struct {
	Token   string `json:"token"`    // 不透明令牌，后续请求放入 Authorization: Bearer <token>
	IsAdmin bool   `json:"is_admin"` // 管理员标志
}

// RegisterVO 注册成功的响应数据结构
type RegisterVO struct {
	UserID uint64 `json:"user_id"` // 新建用户ID
}

// ProfileVO 个人资料的响应数据结构
type ProfileVO struct {
	Name     string `json:"name"`      // 展示名
	Email    string `json:"email"`     // 邮箱
	Phone    string `json:"phone"`     // 联系电话，未填为空串
	IsAdmin  bool   `json:"is_admin"`  // 管理员标志
	ImageURL string `json:"image_url"` // 头像绝对 URL，未设置为空串
}
