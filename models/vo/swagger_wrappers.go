package vo

// --- 用于成功响应且包含具体 Data 的包装器 ---

// LoginResponseWrapper 对应 response.APIResponse[vo.LoginVO]
type LoginResponseWrapper struct {
	Code    int     `json:"code" example:"0"`
	Message string  `json:"message,omitempty" example:"success"`
	Data    LoginVO `json:"data"`
}

// RegisterResponseWrapper 对应 response.APIResponse[vo.RegisterVO]
type RegisterResponseWrapper struct {
	Code    int        `json:"code" example:"0"`
	Message string     `json:"message,omitempty" example:"success"`
	Data    RegisterVO `json:"data"`
}

// PropertyResponseWrapper 对应 response.APIResponse[vo.PropertyVO]
type PropertyResponseWrapper struct {
	Code    int        `json:"code" example:"0"`
	Message string     `json:"message,omitempty" example:"success"`
	Data    PropertyVO `json:"data"`
}

// PropertyListResponseWrapper 对应 response.APIResponse[[]vo.PropertyVO]
type PropertyListResponseWrapper struct {
	Code    int           `json:"code" example:"0"`
	Message string        `json:"message,omitempty" example:"success"`
	Data    []*PropertyVO `json:"data"`
}

// ListPropertiesPageResponseWrapper 对应 response.APIResponse[vo.ListPropertiesPageVO]
type ListPropertiesPageResponseWrapper struct {
	Code    int                  `json:"code" example:"0"`
	Message string               `json:"message,omitempty" example:"success"`
	Data    ListPropertiesPageVO `json:"data"`
}

// CategoryResponseWrapper 对应 response.APIResponse[vo.CategoryVO]
type CategoryResponseWrapper struct {
	Code    int        `json:"code" example:"0"`
	Message string     `json:"message,omitempty" example:"success"`
	Data    CategoryVO `json:"data"`
}

// CategoryListResponseWrapper 对应 response.APIResponse[[]vo.CategoryVO]
type CategoryListResponseWrapper struct {
	Code    int           `json:"code" example:"0"`
	Message string        `json:"message,omitempty" example:"success"`
	Data    []*CategoryVO `json:"data"`
}

// PurchaseListResponseWrapper 对应 response.APIResponse[[]vo.PurchaseVO]
type PurchaseListResponseWrapper struct {
	Code    int           `json:"code" example:"0"`
	Message string        `json:"message,omitempty" example:"success"`
	Data    []*PurchaseVO `json:"data"`
}

// CheckoutResultResponseWrapper 对应 response.APIResponse[vo.CheckoutResultVO]
type CheckoutResultResponseWrapper struct {
	Code    int              `json:"code" example:"0"`
	Message string           `json:"message,omitempty" example:"success"`
	Data    CheckoutResultVO `json:"data"`
}

// CommentResponseWrapper 对应 response.APIResponse[vo.CommentVO]
type CommentResponseWrapper struct {
	Code    int       `json:"code" example:"0"`
	Message string    `json:"message,omitempty" example:"success"`
	Data    CommentVO `json:"data"`
}

// CommentListResponseWrapper 对应 response.APIResponse[[]vo.CommentVO]
type CommentListResponseWrapper struct {
	Code    int          `json:"code" example:"0"`
	Message string       `json:"message,omitempty" example:"success"`
	Data    []*CommentVO `json:"data"`
}

// ProfileResponseWrapper 对应 response.APIResponse[vo.ProfileVO]
type ProfileResponseWrapper struct {
	Code    int       `json:"code" example:"0"`
	Message string    `json:"message,omitempty" example:"success"`
	Data    ProfileVO `json:"data"`
}

// --- 用于错误响应 或 简单成功响应（只有 Code 和 Message） ---

// BaseResponseWrapper 代表一个只包含 Code 和 Message 的响应。
// 适用于错误情况（RespondError 返回时 Data 为 nil 且 omitempty）
// 或某些成功操作（如 DELETE）可能也只返回 Code 和 Message。
type BaseResponseWrapper struct {
	Code    int    `json:"code" example:"0"`          // 成功时为 0, 错误时为具体错误码
	Message string `json:"message" example:"success"` // 成功或错误消息
}
