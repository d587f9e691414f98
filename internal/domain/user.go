package domain

import (
	"context"
	"time"
)

// User 领域实体：ID 由持久层分配（自增主键）
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:64;not null" json:"name"`
	Email     string    `gorm:"size:191;not null" json:"email"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (User) TableName() string { return "users" }

// UserCreate 创建入参（无 ID）
type UserCreate struct {
	Name  string `json:"name"  binding:"required,max=64"`
	Email string `json:"email" binding:"required"`
}

// UserResponse 对外投影
type UserResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

func (u *User) Response() UserResponse {
	return UserResponse{ID: u.ID, Name: u.Name, Email: u.Email, CreatedAt: u.CreatedAt}
}

// UserRepository 持久化契约：接口本身不做 I/O
// GetByID 未命中返回 nil, nil（缺失不是错误）
type UserRepository interface {
	Save(ctx context.Context, u *User) (*User, error)
	GetByID(ctx context.Context, id uint) (*User, error)
}
