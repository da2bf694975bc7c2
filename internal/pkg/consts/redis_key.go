package consts

const (
	TokenBlacklistKey = "token:blacklist:"
	MediaTempKey      = "media:temp"
)
