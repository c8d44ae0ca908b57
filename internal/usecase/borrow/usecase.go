package borrow

import (
	"context"
	"errors"
	"time"

	"rentify-backend/internal/domain/apperr"
	br "rentify-backend/internal/domain/borrowrequest"
	"rentify-backend/internal/domain/item"
	"rentify-backend/internal/domain/uow"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Usecase struct {
	items    item.Repository
	requests br.Repository
	uow      uow.UnitOfWork
	log      *zap.Logger
	now      func() time.Time
}

// NewUsecase: pass the read repos and a UoW for the transactional transitions.
func NewUsecase(items item.Repository, requests br.Repository, tx uow.UnitOfWork, log *zap.Logger) *Usecase {
	if log == nil {
		log = zap.NewNop()
	}
	return &Usecase{items: items, requests: requests, uow: tx, log: log, now: time.Now}
}

func (u *Usecase) Create(ctx context.Context, in CreateInput) (uint64, error) {
	if in.ItemID == 0 || in.BorrowerID == 0 || in.LenderID == 0 {
		return 0, br.ErrMissingIDs
	}
	if in.BorrowDate != nil && in.ReturnDate != nil && in.ReturnDate.Before(*in.BorrowDate) {
		return 0, br.ErrInvalidDates
	}
	if err := u.CheckAvailable(ctx, in.ItemID); err != nil {
		return 0, err
	}

	req := &br.BorrowRequest{
		ItemID:         in.ItemID,
		BorrowerID:     in.BorrowerID,
		LenderID:       in.LenderID,
		Status:         br.StatusPending,
		BorrowerReason: in.BorrowerReason,
		BorrowDate:     in.BorrowDate,
		ReturnDate:     in.ReturnDate,
	}
	if err := u.requests.Create(ctx, req); err != nil {
		return 0, apperr.Store(err)
	}
	u.log.Info("borrow request created",
		zap.Uint64("request_id", req.ID),
		zap.Uint64("item_id", req.ItemID),
		zap.Uint64("borrower_id", req.BorrowerID),
	)
	return req.ID, nil
}

// SetStatus approves or declines a pending request. The borrower's rows are
// locked for the whole check-then-write so two approvals for one borrower
// cannot both pass the exclusivity check.
func (u *Usecase) SetStatus(ctx context.Context, requestID uint64, status br.Status, lenderResponse *string) error {
	if status != br.StatusApproved && status != br.StatusDeclined {
		return br.ErrUnsupportedStatus
	}
	if u.uow == nil {
		return apperr.Store(errors.New("borrow: no unit of work configured"))
	}

	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		cur, err := r.Requests.GetByID(ctx, requestID)
		if err != nil {
			return notFoundOr(err, br.ErrNotFound)
		}

		rows, err := r.Requests.LockByBorrower(ctx, cur.BorrowerID)
		if err != nil {
			return err
		}
		var target *br.BorrowRequest
		for i := range rows {
			if rows[i].ID == requestID {
				target = &rows[i]
				break
			}
		}
		if target == nil {
			return br.ErrNotFound
		}

		// State guard: only pending -> approved/declined
		if !br.CanTransition(target.Status, status) {
			return br.ErrNotPending
		}

		if status == br.StatusApproved {
			for _, other := range rows {
				if other.ID != requestID && other.Status == br.StatusApproved {
					return apperr.Exclusivity(other.ID)
				}
			}
		}

		n, err := r.Requests.UpdateStatus(ctx, requestID, status, lenderResponse)
		if err != nil {
			return err
		}
		if n == 0 {
			return br.ErrNotFound
		}
		return nil
	})
	if err != nil {
		return apperr.Wrap(err)
	}

	u.log.Info("borrow request status changed",
		zap.Uint64("request_id", requestID),
		zap.String("status", string(status)),
	)
	return nil
}

// Cancel lets the original borrower withdraw a pending request.
func (u *Usecase) Cancel(ctx context.Context, requestID, borrowerID uint64) error {
	if u.uow == nil {
		return apperr.Store(errors.New("borrow: no unit of work configured"))
	}
	err := u.uow.WithinRequestTx(ctx, requestID, func(r uow.Repos, cur *br.BorrowRequest) error {
		if cur.BorrowerID != borrowerID {
			return br.ErrNotOwner
		}
		if !br.CanTransition(cur.Status, br.StatusCanceled) {
			return br.ErrNotPending
		}
		n, err := r.Requests.UpdateStatus(ctx, requestID, br.StatusCanceled, nil)
		if err != nil {
			return err
		}
		if n == 0 {
			return br.ErrNotFound
		}
		return nil
	})
	if err != nil {
		return apperr.Wrap(notFoundOr(err, br.ErrNotFound))
	}
	u.log.Info("borrow request canceled", zap.Uint64("request_id", requestID))
	return nil
}

func (u *Usecase) Get(ctx context.Context, requestID uint64) (*br.View, error) {
	v, err := u.requests.GetView(ctx, requestID)
	if err != nil {
		return nil, apperr.Wrap(notFoundOr(err, br.ErrNotFound))
	}
	return v, nil
}

func (u *Usecase) List(ctx context.Context) ([]br.View, error) {
	out, err := u.requests.ListViews(ctx)
	if err != nil {
		return nil, apperr.Store(err)
	}
	return nonNil(out), nil
}

// ListByBorrower filters on status when one is given.
func (u *Usecase) ListByBorrower(ctx context.Context, borrowerID uint64, status string) ([]br.View, error) {
	var st br.Status
	if status != "" {
		parsed, ok := br.ParseStatus(status)
		if !ok {
			return nil, apperr.Validation("unknown status filter " + status)
		}
		st = parsed
	}
	out, err := u.requests.ListViewsByBorrower(ctx, borrowerID, st)
	if err != nil {
		return nil, apperr.Store(err)
	}
	return nonNil(out), nil
}

func notFoundOr(err, notFound error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	return err
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
