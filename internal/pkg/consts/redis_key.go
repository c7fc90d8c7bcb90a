package consts

const (
	TokenBlacklistKey = "inkpost:auth:revoked:"
)
