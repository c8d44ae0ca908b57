package favorite

import (
	"context"
	"time"
)

// Table: user_favorites
type Favorite struct {
	UserID    uint64    `gorm:"column:user_id;primaryKey;autoIncrement:false" json:"user_id"`
	ItemID    uint64    `gorm:"column:item_id;primaryKey;autoIncrement:false" json:"item_id"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Favorite) TableName() string { return "user_favorites" }

type View struct {
	ItemID             uint64 `gorm:"column:item_id" json:"item_id"`
	ItemName           string `gorm:"column:item_name" json:"item_name"`
	Description        string `gorm:"column:description" json:"description"`
	AvailabilityStatus string `gorm:"column:availability_status" json:"availability_status"`
}

type Repository interface {
	List(ctx context.Context, userID uint64) ([]View, error)
	// Add is a no-op when the pair already exists.
	Add(ctx context.Context, userID, itemID uint64) error
	Remove(ctx context.Context, userID, itemID uint64) (int64, error)
}
