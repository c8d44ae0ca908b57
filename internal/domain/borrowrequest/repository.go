package borrowrequest

import "context"

type Repository interface {
	Create(ctx context.Context, r *BorrowRequest) error
	GetByID(ctx context.Context, id uint64) (*BorrowRequest, error)
	GetByIDForUpdate(ctx context.Context, id uint64) (*BorrowRequest, error)

	// LockByBorrower locks every request of the borrower, ordered by id, and
	// returns them. Callers serialize per-borrower decisions through it.
	LockByBorrower(ctx context.Context, borrowerID uint64) ([]BorrowRequest, error)

	// UpdateStatus writes status (and the response when non-nil) and reports
	// how many rows were touched.
	UpdateStatus(ctx context.Context, id uint64, status Status, lenderResponse *string) (int64, error)
	Delete(ctx context.Context, id uint64) (int64, error)

	GetView(ctx context.Context, id uint64) (*View, error)
	ListViews(ctx context.Context) ([]View, error)
	ListViewsByBorrower(ctx context.Context, borrowerID uint64, status Status) ([]View, error)
}
