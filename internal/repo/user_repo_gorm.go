package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"go-user-service/internal/domain"
)

// UserRepo 基于 GORM 的 UserRepository 实现
type UserRepo struct{ db *gorm.DB }

func NewUserRepo(db *gorm.DB) *UserRepo { return &UserRepo{db: db} }

// Save 持久化并回填自增 ID
func (r *UserRepo) Save(ctx context.Context, u *domain.User) (*domain.User, error) {
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		return nil, err
	}
	return u, nil
}

func (r *UserRepo) GetByID(ctx context.Context, id uint) (*domain.User, error) {
	var u domain.User
	err := r.db.WithContext(ctx).First(&u, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}
