package http

import (
	"context"
	"net/http"

	"rentify-backend/internal/domain/favorite"

	"github.com/labstack/echo/v4"
)

type FavoriteService interface {
	List(ctx context.Context, userID uint64) ([]favorite.View, error)
	Add(ctx context.Context, userID, itemID uint64) error
	Remove(ctx context.Context, userID, itemID uint64) error
}

type FavoriteHandler struct{ uc FavoriteService }

func NewFavoriteHandler(uc FavoriteService) *FavoriteHandler { return &FavoriteHandler{uc: uc} }

func (h *FavoriteHandler) List(c echo.Context) error {
	userID, err := pathID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.List(c.Request().Context(), userID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

type addFavoriteReq struct {
	ItemID uint64 `json:"item_id" validate:"required"`
}

func (h *FavoriteHandler) Add(c echo.Context) error {
	userID, err := pathID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	var req addFavoriteReq
	if ok, err := bindValid(c, &req); !ok {
		return err
	}
	if err := h.uc.Add(c.Request().Context(), userID, req.ItemID); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true})
}

func (h *FavoriteHandler) Remove(c echo.Context) error {
	userID, err := pathID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	itemID, err := pathID(c, "item_id")
	if err != nil {
		return writeError(c, err)
	}
	if err := h.uc.Remove(c.Request().Context(), userID, itemID); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true})
}
