package history

import "context"

type Repository interface {
	Create(ctx context.Context, r *Record) error
	GetByID(ctx context.Context, id uint64) (*Record, error)
	Save(ctx context.Context, r *Record) error

	// List returns every record when userID is 0.
	List(ctx context.Context, userID uint64) ([]View, error)
}
