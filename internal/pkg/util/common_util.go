package util

import (
	"strconv"
)

// PtrBool 用于将 bool 转换为 *bool
func PtrBool(b bool) *bool {
	return &b
}

// PtrUint64 用于将 uint64 转换为 *uint64
func PtrUint64(i uint64) *uint64 {
	return &i
}

// BoolOr 指针为空时返回默认值
func BoolOr(b *bool, def bool) bool {
	if b == nil {
		return def
	}
	return *b
}

// ParseID 解析路径中的数字 ID
func ParseID(raw string) (uint64, bool) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return id, true
}
