package http

import (
	"context"
	"net/http"

	"rentify-backend/internal/domain/history"
	ucHistory "rentify-backend/internal/usecase/history"

	"github.com/labstack/echo/v4"
)

type HistoryService interface {
	List(ctx context.Context) ([]history.View, error)
	ListByUser(ctx context.Context, userID uint64) ([]history.View, error)
	Get(ctx context.Context, id uint64) (*history.Record, error)
	Correct(ctx context.Context, id uint64, in ucHistory.CorrectInput) (*history.Record, error)
}

type HistoryHandler struct{ uc HistoryService }

func NewHistoryHandler(uc HistoryService) *HistoryHandler { return &HistoryHandler{uc: uc} }

func (h *HistoryHandler) List(c echo.Context) error {
	out, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *HistoryHandler) ListByUser(c echo.Context) error {
	userID, err := pathID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.ListByUser(c.Request().Context(), userID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *HistoryHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	rec, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, rec)
}

type correctHistoryReq struct {
	Status         *string `json:"status"          validate:"omitempty,max=20"`
	ReturnDate     *string `json:"return_date"     validate:"omitempty,datetime=2006-01-02"`
	LateReturn     *bool   `json:"late_return"`
	LenderResponse *string `json:"lender_response" validate:"omitempty,max=2000"`
}

func (h *HistoryHandler) Correct(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	var req correctHistoryReq
	if ok, err := bindValid(c, &req); !ok {
		return err
	}
	in := ucHistory.CorrectInput{
		Status:         req.Status,
		LateReturn:     req.LateReturn,
		LenderResponse: req.LenderResponse,
	}
	if req.ReturnDate != nil {
		if in.ReturnDate, err = parseDate(*req.ReturnDate); err != nil {
			return writeError(c, err)
		}
	}
	rec, err := h.uc.Correct(c.Request().Context(), id, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true, "record": rec})
}
