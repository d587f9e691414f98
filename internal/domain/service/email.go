package service

import "strings"

// EmailValidator 领域服务：纯函数，无 I/O，无副作用
// 规则刻意简化：含 "@" 即视为合法邮箱
type EmailValidator struct{}

func NewEmailValidator() EmailValidator { return EmailValidator{} }

func (EmailValidator) Valid(email string) bool {
	return strings.Contains(email, "@")
}
