package itemmock

import (
	"context"

	domain "rentify-backend/internal/domain/item"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	GetByIDFn func(ctx context.Context, id uint64) (*domain.Item, error)
	ListFn    func(ctx context.Context, includeDisabled bool) ([]domain.Item, error)
}

var _ domain.Repository = (*Repo)(nil)

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Item, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, context.Canceled
}

func (m *Repo) List(ctx context.Context, includeDisabled bool) ([]domain.Item, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, includeDisabled)
	}
	return nil, nil
}

// Available returns a GetByIDFn that serves an item with the given status.
func Available(status string) func(context.Context, uint64) (*domain.Item, error) {
	return func(_ context.Context, id uint64) (*domain.Item, error) {
		return &domain.Item{ID: id, Name: "item", AvailabilityStatus: status}, nil
	}
}
