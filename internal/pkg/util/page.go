package util

import (
	"strconv"
)

// PageSize 列表固定每页条数
const PageSize = 10

// ParsePage 解析页码，空值视为第一页；非数字或小于 1 返回 false
func ParsePage(raw string) (int, bool) {
	if raw == "" {
		return 1, true
	}
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 0, false
	}
	return page, true
}

// TotalPages 第一页总是存在，即使列表为空
func TotalPages(total int64, pageSize int) int {
	if total <= 0 {
		return 1
	}
	return int((total + int64(pageSize) - 1) / int64(pageSize))
}
