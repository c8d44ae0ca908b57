package favoritemock

import (
	"context"

	domain "rentify-backend/internal/domain/favorite"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	ListFn   func(ctx context.Context, userID uint64) ([]domain.View, error)
	AddFn    func(ctx context.Context, userID, itemID uint64) error
	RemoveFn func(ctx context.Context, userID, itemID uint64) (int64, error)
}

var _ domain.Repository = (*Repo)(nil)

func (m *Repo) List(ctx context.Context, userID uint64) ([]domain.View, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, userID)
	}
	return nil, nil
}

func (m *Repo) Add(ctx context.Context, userID, itemID uint64) error {
	if m.AddFn != nil {
		return m.AddFn(ctx, userID, itemID)
	}
	return nil
}

func (m *Repo) Remove(ctx context.Context, userID, itemID uint64) (int64, error) {
	if m.RemoveFn != nil {
		return m.RemoveFn(ctx, userID, itemID)
	}
	return 1, nil
}
