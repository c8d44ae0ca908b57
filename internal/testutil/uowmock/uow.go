package uowmock

import (
	"context"
	"errors"

	"rentify-backend/internal/domain/borrowrequest"
	"rentify-backend/internal/domain/uow"
)

// Ensure compile-time compliance
var _ uow.UnitOfWork = (*UoW)(nil)

var errUnimplemented = errors.New("uowmock: method not implemented")

// UoW is a function-backed mock that satisfies uow.UnitOfWork.
// Fill in the function fields you need in a test; unfilled ones return errUnimplemented.
type UoW struct {
	WithinTxFn        func(ctx context.Context, fn func(r uow.Repos) error) error
	WithinRequestTxFn func(ctx context.Context, requestID uint64, fn func(r uow.Repos, br *borrowrequest.BorrowRequest) error) error
}

func New() *UoW { return &UoW{} }

func (m *UoW) WithWithinTx(fn func(context.Context, func(uow.Repos) error) error) *UoW {
	m.WithinTxFn = fn
	return m
}

func (m *UoW) WithWithinRequestTx(fn func(context.Context, uint64, func(uow.Repos, *borrowrequest.BorrowRequest) error) error) *UoW {
	m.WithinRequestTxFn = fn
	return m
}

func (m *UoW) Reset() { *m = UoW{} }

func (m *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	if m.WithinTxFn != nil {
		return m.WithinTxFn(ctx, fn)
	}
	return errUnimplemented
}

func (m *UoW) WithinRequestTx(ctx context.Context, requestID uint64, fn func(r uow.Repos, br *borrowrequest.BorrowRequest) error) error {
	if m.WithinRequestTxFn != nil {
		return m.WithinRequestTxFn(ctx, requestID, fn)
	}
	return errUnimplemented
}

// Passthrough runs every callback directly against repos with no transaction.
// WithinRequestTx resolves the request through repos.Requests.GetByIDForUpdate.
func Passthrough(repos uow.Repos) *UoW {
	return New().
		WithWithinTx(func(_ context.Context, fn func(uow.Repos) error) error {
			return fn(repos)
		}).
		WithWithinRequestTx(func(ctx context.Context, id uint64, fn func(uow.Repos, *borrowrequest.BorrowRequest) error) error {
			cur, err := repos.Requests.GetByIDForUpdate(ctx, id)
			if err != nil {
				return err
			}
			return fn(repos, cur)
		})
}
