package http

import (
	"context"
	"net/http"

	"rentify-backend/internal/domain/apperr"
	br "rentify-backend/internal/domain/borrowrequest"
	"rentify-backend/internal/usecase/borrow"

	"github.com/labstack/echo/v4"
)

// BorrowService is the slice of the borrow usecase the handler drives.
type BorrowService interface {
	Create(ctx context.Context, in borrow.CreateInput) (uint64, error)
	SetStatus(ctx context.Context, requestID uint64, status br.Status, lenderResponse *string) error
	Cancel(ctx context.Context, requestID, borrowerID uint64) error
	Return(ctx context.Context, requestID uint64, late bool) (uint64, error)
	Get(ctx context.Context, requestID uint64) (*br.View, error)
	List(ctx context.Context) ([]br.View, error)
	ListByBorrower(ctx context.Context, borrowerID uint64, status string) ([]br.View, error)
}

type BorrowHandler struct{ uc BorrowService }

func NewBorrowHandler(uc BorrowService) *BorrowHandler { return &BorrowHandler{uc: uc} }

type createBorrowReq struct {
	ItemID         uint64 `json:"item_id"         validate:"required"`
	BorrowerID     uint64 `json:"borrower_id"     validate:"required"`
	LenderID       uint64 `json:"lender_id"       validate:"required"`
	BorrowerReason string `json:"borrower_reason" validate:"max=2000"`
	// Accept canonical date `YYYY-MM-DD` (aligns with schema DATE)
	BorrowDate string `json:"borrow_date" validate:"omitempty,datetime=2006-01-02"`
	ReturnDate string `json:"return_date" validate:"omitempty,datetime=2006-01-02"`
}

func (h *BorrowHandler) Create(c echo.Context) error {
	var req createBorrowReq
	if ok, err := bindValid(c, &req); !ok {
		return err
	}
	borrowDate, err := parseDate(req.BorrowDate)
	if err != nil {
		return writeError(c, err)
	}
	returnDate, err := parseDate(req.ReturnDate)
	if err != nil {
		return writeError(c, err)
	}

	id, err := h.uc.Create(c.Request().Context(), borrow.CreateInput{
		ItemID:         req.ItemID,
		BorrowerID:     req.BorrowerID,
		LenderID:       req.LenderID,
		BorrowerReason: req.BorrowerReason,
		BorrowDate:     borrowDate,
		ReturnDate:     returnDate,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true, "request_id": id})
}

func (h *BorrowHandler) List(c echo.Context) error {
	out, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *BorrowHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	v, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, v)
}

func (h *BorrowHandler) ListByBorrower(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.ListByBorrower(c.Request().Context(), id, c.QueryParam("status"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

// updateBorrowReq carries either a lender decision or a return.
type updateBorrowReq struct {
	Status         string  `json:"status"          validate:"omitempty,decision"`
	LenderResponse *string `json:"lender_response" validate:"omitempty,max=2000"`
	ReturnItem     bool    `json:"return_item"`
	LateReturn     bool    `json:"late_return"`
}

func (h *BorrowHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	var req updateBorrowReq
	if ok, err := bindValid(c, &req); !ok {
		return err
	}
	ctx := c.Request().Context()

	if req.ReturnItem {
		hid, err := h.uc.Return(ctx, id, req.LateReturn)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusOK, map[string]any{"success": true, "history_id": hid})
	}

	status, ok := br.ParseStatus(req.Status)
	if !ok {
		return writeError(c, apperr.Validation("status or return_item is required"))
	}
	if err := h.uc.SetStatus(ctx, id, status, req.LenderResponse); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true})
}

type cancelBorrowReq struct {
	BorrowerID uint64 `json:"borrower_id" validate:"required"`
}

func (h *BorrowHandler) Cancel(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	var req cancelBorrowReq
	if ok, err := bindValid(c, &req); !ok {
		return err
	}
	if err := h.uc.Cancel(c.Request().Context(), id, req.BorrowerID); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true, "cancelled": true})
}
