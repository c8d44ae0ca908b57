package borrow

import "time"

type CreateInput struct {
	ItemID         uint64
	BorrowerID     uint64
	LenderID       uint64
	BorrowerReason string
	BorrowDate     *time.Time
	ReturnDate     *time.Time
}
