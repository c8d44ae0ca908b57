package item

import "context"

type Repository interface {
	GetByID(ctx context.Context, id uint64) (*Item, error)
	// List returns every item, or only Available ones when includeDisabled is false.
	List(ctx context.Context, includeDisabled bool) ([]Item, error)
}
