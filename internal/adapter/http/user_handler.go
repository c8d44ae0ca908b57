package http

import (
	"context"
	"net/http"

	"rentify-backend/internal/usecase/user"

	"github.com/labstack/echo/v4"
)

type UserService interface {
	Get(ctx context.Context, id uint64) (*user.Profile, error)
}

type UserHandler struct{ uc UserService }

func NewUserHandler(uc UserService) *UserHandler { return &UserHandler{uc: uc} }

func (h *UserHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	p, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}
