package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"go-user-service/internal/domain"
	"go-user-service/internal/domain/service"
	"go-user-service/internal/usecase"
)

type memRepo struct {
	mu     sync.Mutex
	nextID uint
	byID   map[uint]domain.User
}

func newMemRepo() *memRepo { return &memRepo{nextID: 1, byID: map[uint]domain.User{}} }

func (r *memRepo) Save(_ context.Context, u *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *u
	cp.ID = r.nextID
	r.nextID++
	r.byID[cp.ID] = cp
	return &cp, nil
}

func (r *memRepo) GetByID(_ context.Context, id uint) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := u
	return &cp, nil
}

type envelope struct {
	Code int             `json:"code"`
	Msg  string          `json:"msg"`
	Data json.RawMessage `json:"data"`
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	repo := newMemRepo()
	emails := service.NewEmailValidator()
	h := NewUserHandler(
		usecase.NewCreateUser(emails, repo),
		usecase.NewGetUser(repo),
		zap.NewNop(),
	)
	r := gin.New()
	h.MountAPI(r.Group("/api/v1"))
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return w, env
}

func TestCreateUserEndpoint(t *testing.T) {
	r := newTestRouter()

	w, env := doJSON(t, r, http.MethodPost, "/api/v1/users",
		gin.H{"name": "Alice", "email": "alice@example.com"})
	assert.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, 0, env.Code, "msg: %s", env.Msg)

	var out domain.UserResponse
	require.NoError(t, json.Unmarshal(env.Data, &out))
	assert.Equal(t, uint(1), out.ID)
	assert.Equal(t, "Alice", out.Name)
	assert.Equal(t, "alice@example.com", out.Email)
}

func TestCreateUserEndpointInvalidEmail(t *testing.T) {
	r := newTestRouter()

	_, env := doJSON(t, r, http.MethodPost, "/api/v1/users",
		gin.H{"name": "Bob", "email": "bob-no-at-sign"})
	assert.Equal(t, 400, env.Code)
	assert.Contains(t, env.Msg, "not a valid email")

	// 校验失败不落库：该 ID 不存在
	_, env = doJSON(t, r, http.MethodGet, "/api/v1/users/1", nil)
	assert.Equal(t, 404, env.Code)
}

func TestCreateUserEndpointBadPayload(t *testing.T) {
	r := newTestRouter()

	// 缺字段：绑定层拒绝
	_, env := doJSON(t, r, http.MethodPost, "/api/v1/users", gin.H{"email": "a@b"})
	assert.Equal(t, 400, env.Code)
}

func TestGetUserEndpointRoundTrip(t *testing.T) {
	r := newTestRouter()

	_, created := doJSON(t, r, http.MethodPost, "/api/v1/users",
		gin.H{"name": "Alice", "email": "alice@example.com"})
	require.Equal(t, 0, created.Code)

	var saved domain.UserResponse
	require.NoError(t, json.Unmarshal(created.Data, &saved))

	_, got := doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/v1/users/%d", saved.ID), nil)
	require.Equal(t, 0, got.Code)

	var fetched domain.UserResponse
	require.NoError(t, json.Unmarshal(got.Data, &fetched))
	assert.Equal(t, saved, fetched)
}

func TestGetUserEndpointInvalidID(t *testing.T) {
	r := newTestRouter()

	_, env := doJSON(t, r, http.MethodGet, "/api/v1/users/not-a-number", nil)
	assert.Equal(t, 400, env.Code)
}
