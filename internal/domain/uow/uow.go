package uow

import (
	"context"

	"rentify-backend/internal/domain/borrowrequest"
	"rentify-backend/internal/domain/history"
	"rentify-backend/internal/domain/item"
	"rentify-backend/internal/domain/principal"
)

// Repos are bound to one transaction.
type Repos struct {
	Items     item.Repository
	Requests  borrowrequest.Repository
	History   history.Repository
	Principal principal.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock the request row first, then pass it in
	WithinRequestTx(ctx context.Context, requestID uint64, fn func(r Repos, br *borrowrequest.BorrowRequest) error) error
}
