package dto

// UpdateProfileRequest 定义了更新个人资料的请求数据结构
// - multipart/form-data 提交；头像文件独立于这些表单字段（字段名 "image"）
// - 每个字段仅在非空时生效
type UpdateProfileRequest struct {
	Phone    string `json:"phone" form:"phone" binding:"omitempty,max=20"`       // 联系电话，可选
	Password string `json:"password" form:"password" binding:"omitempty,min=6"` // 新密码，可选，提交后重新哈希
}
