package ecode

// 业务错误码，0表示成功

const (
	Success = 0

	Unknown     = 10001 // 未知错误
	ValidateErr = 10002 // 参数校验失败
	NotFoundErr = 10003 // 资源不存在
	StoreErr    = 10004 // 持久化失败
)

var messages = map[int]string{
	Success:     "OK",
	Unknown:     "Internal server error",
	ValidateErr: "Validation failed",
	NotFoundErr: "Not found",
	StoreErr:    "Store operation failed",
}

// Message 返回错误码的默认描述
func Message(code int) string {
	if msg, ok := messages[code]; ok {
		return msg
	}
	return messages[Unknown]
}
