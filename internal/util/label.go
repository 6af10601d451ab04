package util

import (
	"fmt"
	"strconv"
	"strings"
)

// ParsePostIDLabel 解析旧版管理界面的帖子标签 "12: 内容预览..."，返回帖子 ID。
// 新接口直接传数字 ID，这里只为兼容旧前端仍在提交的标签格式。
func ParsePostIDLabel(label string) (uint, error) {
	idx := strings.Index(label, ":")
	if idx <= 0 {
		return 0, fmt.Errorf("malformed post label: %q", label)
	}

	id, err := strconv.ParseUint(strings.TrimSpace(label[:idx]), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("malformed post label: %q", label)
	}

	return uint(id), nil
}
