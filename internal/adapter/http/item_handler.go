package http

import (
	"context"
	"net/http"
	"strconv"

	"rentify-backend/internal/domain/item"

	"github.com/labstack/echo/v4"
)

type ItemService interface {
	List(ctx context.Context, includeDisabled bool) ([]item.Item, error)
	Get(ctx context.Context, id uint64) (*item.Item, error)
}

type ItemHandler struct{ uc ItemService }

func NewItemHandler(uc ItemService) *ItemHandler { return &ItemHandler{uc: uc} }

func (h *ItemHandler) List(c echo.Context) error {
	includeDisabled, _ := strconv.ParseBool(c.QueryParam("includeDisabled"))
	out, err := h.uc.List(c.Request().Context(), includeDisabled)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ItemHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	it, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, it)
}
