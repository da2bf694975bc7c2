package consts

const (
	MimePrefixImage = "image"
)

const (
	// PostImageDir 帖子图片在存储桶中的前缀
	PostImageDir = "post_images/"
)

const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

// 上下文中的用户信息键
const (
	UserIDKey = "user_id"
	RolesKey  = "roles"
)
