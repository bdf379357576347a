package vo

import "strings"

// ResolveMediaURL 把存储的图片路径解析为对外可访问的绝对 URL。
// - 空路径输出空串
// - 已经是绝对 URL（http/https 开头）的原样透传
// - 其余视为媒体目录下的相对路径，与 baseURL 拼接
func ResolveMediaURL(path string, baseURL string) string {
	if path == "" {
		return ""
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	return strings.TrimSuffix(baseURL, "/") + "/" + strings.TrimPrefix(path, "/")
}
