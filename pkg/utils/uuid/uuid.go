package uuid

import (
	"strings"

	"github.com/google/uuid"
)

// NewRunID 生成不带横线的UUID v4，用作一次运行的标识
func NewRunID() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")
}
