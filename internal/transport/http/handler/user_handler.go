package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-user-service/internal/domain"
	resp "go-user-service/internal/transport/http/response"
	"go-user-service/internal/usecase"
)

// UserHandler 传输适配器：只做绑定、委派、序列化，不带业务逻辑
type UserHandler struct {
	create *usecase.CreateUser
	get    *usecase.GetUser
	log    *zap.Logger
}

func NewUserHandler(create *usecase.CreateUser, get *usecase.GetUser, l *zap.Logger) *UserHandler {
	return &UserHandler{create: create, get: get, log: l}
}

// MountAPI 实现 router.APIModule
func (h *UserHandler) MountAPI(g *gin.RouterGroup) {
	g.POST("/users", h.Create)
	g.GET("/users/:id", h.Get)
}

func (h *UserHandler) Create(c *gin.Context) {
	var in domain.UserCreate
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusOK, resp.Error(resp.CodeBadRequest, err.Error()))
		return
	}

	u, err := h.create.Execute(c.Request.Context(), in)
	if err != nil {
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			c.JSON(http.StatusOK, resp.Error(resp.CodeBadRequest, ve.Error()))
			return
		}
		h.log.Error("create user", zap.String("rid", c.GetString("rid")), zap.Error(err))
		c.JSON(http.StatusOK, resp.Error(resp.CodeServerError, "create user failed"))
		return
	}
	c.JSON(http.StatusOK, resp.OK(u.Response()))
}

func (h *UserHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusOK, resp.Error(resp.CodeBadRequest, "invalid id"))
		return
	}

	u, err := h.get.Execute(c.Request.Context(), uint(id))
	if err != nil {
		h.log.Error("get user", zap.String("rid", c.GetString("rid")), zap.Error(err))
		c.JSON(http.StatusOK, resp.Error(resp.CodeServerError, "get user failed"))
		return
	}
	if u == nil {
		c.JSON(http.StatusOK, resp.Error(resp.CodeNotFound, "user not found"))
		return
	}
	c.JSON(http.StatusOK, resp.OK(u.Response()))
}
