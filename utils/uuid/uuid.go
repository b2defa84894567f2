package uuid

import (
	"strings"

	"github.com/google/uuid"
)

// GenUUID 生成不带连字符的uuid
func GenUUID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// GenUUID16 生成16位短uuid，用于请求链路追踪
func GenUUID16() string {
	return GenUUID()[:16]
}
