package consts

// gin.Context 中的鉴权字段
const (
	UserIDKey   = "user_id"
	UsernameKey = "username"
)

// 分页默认值
const (
	DefaultPageLimit = 10
	MaxPageLimit     = 100
)

// 上传图片
const (
	ThumbnailMaxWidth = 1200
	AvatarMaxWidth    = 400
	MaxUploadBytes    = 10 << 20
)

// BaseURLKey 请求的 scheme://host，用于拼接分页链接
const BaseURLKey = "base_url"

// 对象存储前缀
const (
	ThumbnailPrefix = "uploads"
	AvatarPrefix    = "avatars"
)
