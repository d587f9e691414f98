package usecase

import (
	"context"
	"fmt"

	"go-user-service/internal/domain"
)

// GetUser 按 ID 查询；未命中返回 nil, nil，由传输层决定如何表达
type GetUser struct {
	users domain.UserRepository
}

func NewGetUser(users domain.UserRepository) *GetUser {
	return &GetUser{users: users}
}

func (uc *GetUser) Execute(ctx context.Context, id uint) (*domain.User, error) {
	u, err := uc.users.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user %d: %w", id, err)
	}
	return u, nil
}
