package favorite

import (
	"context"
	"errors"

	"rentify-backend/internal/domain/apperr"
	domain "rentify-backend/internal/domain/favorite"
	"rentify-backend/internal/domain/item"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	ErrMissingItem = apperr.Validation("item_id is required")
	ErrNotFound    = apperr.NotFound("favorite not found")
)

type Usecase struct {
	repo  domain.Repository
	items item.Repository
	log   *zap.Logger
}

func NewUsecase(repo domain.Repository, items item.Repository, log *zap.Logger) *Usecase {
	if log == nil {
		log = zap.NewNop()
	}
	return &Usecase{repo: repo, items: items, log: log}
}

func (u *Usecase) List(ctx context.Context, userID uint64) ([]domain.View, error) {
	out, err := u.repo.List(ctx, userID)
	if err != nil {
		return nil, apperr.Store(err)
	}
	if out == nil {
		out = []domain.View{}
	}
	return out, nil
}

// Add is idempotent; the item must exist.
func (u *Usecase) Add(ctx context.Context, userID, itemID uint64) error {
	if itemID == 0 {
		return ErrMissingItem
	}
	if _, err := u.items.GetByID(ctx, itemID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return item.ErrNotFound
		}
		return apperr.Store(err)
	}
	if err := u.repo.Add(ctx, userID, itemID); err != nil {
		return apperr.Store(err)
	}
	u.log.Debug("favorite added", zap.Uint64("user_id", userID), zap.Uint64("item_id", itemID))
	return nil
}

func (u *Usecase) Remove(ctx context.Context, userID, itemID uint64) error {
	n, err := u.repo.Remove(ctx, userID, itemID)
	if err != nil {
		return apperr.Store(err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
