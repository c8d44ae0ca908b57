package borrowrequest

import (
	"strings"
	"time"

	"rentify-backend/internal/domain/apperr"
)

type Status string

const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusDeclined Status = "Declined"
	StatusCanceled Status = "Canceled"
)

var (
	ErrNotFound          = apperr.NotFound("borrow request not found")
	ErrNotPending        = apperr.New(apperr.KindInvalidTransition, "request is not pending")
	ErrNotApproved       = apperr.New(apperr.KindInvalidTransition, "only approved requests can be returned")
	ErrNotOwner          = apperr.New(apperr.KindForbidden, "only the borrower can cancel this request")
	ErrMissingIDs        = apperr.Validation("item_id, borrower_id and lender_id are required")
	ErrInvalidDates      = apperr.Validation("return_date must not be before borrow_date")
	ErrUnsupportedStatus = apperr.Validation("status must be Approved or Declined")
)

// Table: borrow_requests
type BorrowRequest struct {
	ID             uint64     `gorm:"column:request_id;primaryKey;autoIncrement" json:"request_id"`
	ItemID         uint64     `gorm:"column:item_id;not null;index" json:"item_id"`
	BorrowerID     uint64     `gorm:"column:borrower_id;not null;index:idx_borrow_requests_borrower_status" json:"borrower_id"`
	LenderID       uint64     `gorm:"column:lender_id;not null;index" json:"lender_id"`
	Status         Status     `gorm:"column:status;size:20;not null;default:Pending;index:idx_borrow_requests_borrower_status" json:"status"`
	BorrowerReason string     `gorm:"column:borrower_reason;type:text" json:"borrower_reason"`
	LenderResponse *string    `gorm:"column:lender_response;type:text" json:"lender_response"`
	BorrowDate     *time.Time `gorm:"column:borrow_date;type:date" json:"borrow_date"`
	ReturnDate     *time.Time `gorm:"column:return_date;type:date" json:"return_date"`
	CreatedAt      time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (BorrowRequest) TableName() string { return "borrow_requests" }

// View is the joined row served by the list endpoints.
type View struct {
	BorrowRequest
	ItemName         string `gorm:"column:item_name" json:"item_name"`
	BorrowerUsername string `gorm:"column:borrower_username" json:"borrower_username"`
	BorrowerName     string `gorm:"column:borrower_name" json:"borrower_name"`
	LenderName       string `gorm:"column:lender_name" json:"lender_name"`
}

// ParseStatus accepts any casing of a known status.
func ParseStatus(s string) (Status, bool) {
	for _, st := range []Status{StatusPending, StatusApproved, StatusDeclined, StatusCanceled} {
		if strings.EqualFold(s, string(st)) {
			return st, true
		}
	}
	return "", false
}

var transitions = map[Status][]Status{
	StatusPending: {StatusApproved, StatusDeclined, StatusCanceled},
}

// CanTransition reports whether a request in state from may move to state to
// in one step. Approved requests leave the table through archiving, which is
// not a status change.
func CanTransition(from, to Status) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}
