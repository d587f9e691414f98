package usecase

import (
	"context"
	"fmt"
	"strings"

	"go-user-service/internal/domain"
	"go-user-service/internal/domain/service"
)

// CreateUser 应用层用例：校验 → 构造实体 → 持久化
// 依赖在组合根注入；实例无状态，可被多请求共享
type CreateUser struct {
	emails service.EmailValidator
	users  domain.UserRepository
}

func NewCreateUser(emails service.EmailValidator, users domain.UserRepository) *CreateUser {
	return &CreateUser{emails: emails, users: users}
}

// Execute 校验不通过时不触碰仓储（要么失败零写入，要么恰好一次 Save）
func (uc *CreateUser) Execute(ctx context.Context, in domain.UserCreate) (*domain.User, error) {
	email := strings.TrimSpace(in.Email)
	name := strings.TrimSpace(in.Name)

	if !uc.emails.Valid(email) {
		return nil, domain.NewValidationError("email", fmt.Sprintf("%q is not a valid email", email))
	}

	u := &domain.User{Name: name, Email: email}
	saved, err := uc.users.Save(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("save user: %w", err)
	}
	return saved, nil
}
