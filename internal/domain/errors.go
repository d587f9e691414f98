package domain

import "fmt"

// ValidationError 业务规则校验失败（唯一的校验错误类型）
// 由用例产生；领域服务只给结论，不抛错
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s %s", e.Field, e.Reason)
}

func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}
