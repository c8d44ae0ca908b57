package borrow

import (
	"context"
	"errors"
	"strings"

	"rentify-backend/internal/domain/apperr"
	"rentify-backend/internal/domain/item"

	"gorm.io/gorm"
)

// CheckAvailable gates request creation on the item's current status. It is
// not consulted again at approval time, so several pending requests may
// target one item.
func (u *Usecase) CheckAvailable(ctx context.Context, itemID uint64) error {
	it, err := u.items.GetByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return item.ErrNotFound
		}
		return apperr.Store(err)
	}
	if !strings.EqualFold(it.AvailabilityStatus, "available") {
		return item.ErrNotAvailable
	}
	return nil
}
