package requestmock

import (
	"context"

	domain "rentify-backend/internal/domain/borrowrequest"
)

// Repo is a function-backed mock that satisfies domain.Repository.
// Unset lookups fail with context.Canceled so a forgotten stub is loud.
type Repo struct {
	CreateFn              func(ctx context.Context, r *domain.BorrowRequest) error
	GetByIDFn             func(ctx context.Context, id uint64) (*domain.BorrowRequest, error)
	GetByIDForUpdateFn    func(ctx context.Context, id uint64) (*domain.BorrowRequest, error)
	LockByBorrowerFn      func(ctx context.Context, borrowerID uint64) ([]domain.BorrowRequest, error)
	UpdateStatusFn        func(ctx context.Context, id uint64, status domain.Status, lenderResponse *string) (int64, error)
	DeleteFn              func(ctx context.Context, id uint64) (int64, error)
	GetViewFn             func(ctx context.Context, id uint64) (*domain.View, error)
	ListViewsFn           func(ctx context.Context) ([]domain.View, error)
	ListViewsByBorrowerFn func(ctx context.Context, borrowerID uint64, status domain.Status) ([]domain.View, error)
}

var _ domain.Repository = (*Repo)(nil)

func (m *Repo) Create(ctx context.Context, r *domain.BorrowRequest) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, r)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.BorrowRequest, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByIDForUpdate(ctx context.Context, id uint64) (*domain.BorrowRequest, error) {
	if m.GetByIDForUpdateFn != nil {
		return m.GetByIDForUpdateFn(ctx, id)
	}
	return nil, context.Canceled
}

func (m *Repo) LockByBorrower(ctx context.Context, borrowerID uint64) ([]domain.BorrowRequest, error) {
	if m.LockByBorrowerFn != nil {
		return m.LockByBorrowerFn(ctx, borrowerID)
	}
	return nil, context.Canceled
}

func (m *Repo) UpdateStatus(ctx context.Context, id uint64, status domain.Status, lenderResponse *string) (int64, error) {
	if m.UpdateStatusFn != nil {
		return m.UpdateStatusFn(ctx, id, status, lenderResponse)
	}
	return 1, nil
}

func (m *Repo) Delete(ctx context.Context, id uint64) (int64, error) {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return 1, nil
}

func (m *Repo) GetView(ctx context.Context, id uint64) (*domain.View, error) {
	if m.GetViewFn != nil {
		return m.GetViewFn(ctx, id)
	}
	return nil, context.Canceled
}

func (m *Repo) ListViews(ctx context.Context) ([]domain.View, error) {
	if m.ListViewsFn != nil {
		return m.ListViewsFn(ctx)
	}
	return nil, nil
}

func (m *Repo) ListViewsByBorrower(ctx context.Context, borrowerID uint64, status domain.Status) ([]domain.View, error) {
	if m.ListViewsByBorrowerFn != nil {
		return m.ListViewsByBorrowerFn(ctx, borrowerID, status)
	}
	return nil, nil
}
