package history

import (
	"time"

	"rentify-backend/internal/domain/apperr"
)

type Status string

const (
	StatusPending      Status = "Pending"
	StatusReturned     Status = "Returned"
	StatusReturnedLate Status = "Returned_Late"
)

var ErrNotFound = apperr.NotFound("history record not found")

// Table: history. Append-only; rows are corrected in place, never removed.
type Record struct {
	ID             uint64     `gorm:"column:history_id;primaryKey;autoIncrement" json:"history_id"`
	UserID         uint64     `gorm:"column:user_id;not null;index" json:"user_id"`
	ItemID         uint64     `gorm:"column:item_id;not null;index" json:"item_id"`
	BorrowDate     *time.Time `gorm:"column:borrow_date;type:date" json:"borrow_date"`
	ReturnDate     *time.Time `gorm:"column:return_date;type:date" json:"return_date"`
	Status         Status     `gorm:"column:status;size:20;not null" json:"status"`
	BorrowerReason string     `gorm:"column:borrower_reason;type:text" json:"borrower_reason"`
	LenderResponse *string    `gorm:"column:lender_response;type:text" json:"lender_response"`
	LateReturn     bool       `gorm:"column:late_return;not null;default:false" json:"late_return"`
	CreatedAt      time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Record) TableName() string { return "history" }

// TerminalStatus is the status an archived loan lands in.
func TerminalStatus(late bool) Status {
	if late {
		return StatusReturnedLate
	}
	return StatusReturned
}

// View joins the item name for listings.
type View struct {
	Record
	ItemName string `gorm:"column:item_name" json:"item_name"`
}
