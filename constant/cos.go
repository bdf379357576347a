package constant

// COS 对象键前缀
const (
	// COSObjectKeyPrefixPropertyImages 房源图片的对象键前缀。
	// 完整对象键示例: "properties/images/20250828/123_uuid.jpg"
	COSObjectKeyPrefixPropertyImages = "properties/images/"

	// COSObjectKeyPrefixAvatars 用户头像的对象键前缀。
	COSObjectKeyPrefixAvatars = "profiles/avatars/"
)
