package models

import (
	"fmt"
	"strings"
)

// ValidationError 字段校验错误，指明出错字段和非法取值
// 枚举字段不允许静默兜底，必须在计算前报错
type ValidationError struct {
	Field string
	Value string
}

// Error 实现error接口
func (e *ValidationError) Error() string {
	return fmt.Sprintf("字段 %s 的取值无效: %q", e.Field, e.Value)
}

// NewValidationError 创建字段校验错误
func NewValidationError(field, value string) *ValidationError {
	return &ValidationError{Field: field, Value: value}
}

// RequireNonBlank 校验必填文本，去掉首尾空白后不允许为空
// binding:"required" 拦不住纯空白串，必须在这里二次校验
func RequireNonBlank(field, value string) (string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", NewValidationError(field, value)
	}
	return trimmed, nil
}
