package dto

// RegisterRequest 定义了用户注册的请求数据结构
// - 用户名取邮箱，重复注册由数据库唯一键拦截
type RegisterRequest struct {
	Name     string `json:"name" binding:"required,max=150"`      // 展示名，必填
	Email    string `json:"email" binding:"required,email"`       // 邮箱，必填，同时作为用户名
	Password string `json:"password" binding:"required,min=6"`    // 明文密码，服务端 bcrypt 哈希后入库
}

// LoginRequest 定义了用户登录的请求数据结构
type LoginRequest struct {
	Username string `json:"username" binding:"required"` // 用户名（即注册邮箱）
	Password string `json:"password" binding:"required"` // 明文密码
}
