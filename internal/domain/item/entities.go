package item

import (
	"time"

	"rentify-backend/internal/domain/apperr"
)

const StatusAvailable = "Available"

var (
	ErrNotFound     = apperr.NotFound("item not found")
	ErrNotAvailable = apperr.Validation("item is not available")
)

// Table: items. availability_status is free text; only a case-insensitive
// "available" lets a new borrow request through.
type Item struct {
	ID                 uint64    `gorm:"column:item_id;primaryKey;autoIncrement" json:"item_id"`
	Name               string    `gorm:"column:item_name;size:255;not null" json:"item_name"`
	Description        string    `gorm:"column:description;type:text" json:"description"`
	AvailabilityStatus string    `gorm:"column:availability_status;size:50;not null;default:Available" json:"availability_status"`
	LenderID           uint64    `gorm:"column:lender_id;index" json:"lender_id"`
	CreatedAt          time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Item) TableName() string { return "items" }
