package repo

import (
	"context"
	"fmt"
	"time"

	"go-user-service/internal/core/cache"
	"go-user-service/internal/domain"
)

// CachedUserRepo 读穿透缓存装饰器：GetByID 走 redis，Save 透写后失效键
// 任意 UserRepository 变体都可被包装
type CachedUserRepo struct {
	inner domain.UserRepository
	cache *cache.Cache
	ttl   time.Duration
}

func NewCachedUserRepo(inner domain.UserRepository, c *cache.Cache, ttl time.Duration) *CachedUserRepo {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &CachedUserRepo{inner: inner, cache: c, ttl: ttl}
}

func userKey(id uint) string { return fmt.Sprintf("user:%d", id) }

func (r *CachedUserRepo) Save(ctx context.Context, u *domain.User) (*domain.User, error) {
	saved, err := r.inner.Save(ctx, u)
	if err != nil {
		return nil, err
	}
	// 覆盖可能存在的负缓存
	_ = r.cache.Invalidate(ctx, userKey(saved.ID))
	return saved, nil
}

func (r *CachedUserRepo) GetByID(ctx context.Context, id uint) (*domain.User, error) {
	return cache.GetOrLoadJSON[domain.User](r.cache, ctx, userKey(id), r.ttl,
		func(ctx context.Context) (*domain.User, error) {
			return r.inner.GetByID(ctx, id)
		})
}
