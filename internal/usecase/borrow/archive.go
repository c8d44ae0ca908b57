package borrow

import (
	"context"
	"errors"
	"time"

	"rentify-backend/internal/domain/apperr"
	br "rentify-backend/internal/domain/borrowrequest"
	"rentify-backend/internal/domain/history"
	"rentify-backend/internal/domain/uow"

	"go.uber.org/zap"
)

var (
	errArchiveItemMissing     = apperr.NotFound("item of the request no longer exists")
	errArchiveBorrowerMissing = apperr.NotFound("borrower of the request no longer exists")
)

// Return completes a loan by archiving it.
func (u *Usecase) Return(ctx context.Context, requestID uint64, late bool) (uint64, error) {
	return u.Archive(ctx, requestID, late)
}

// Archive moves an approved request into history: the history row is inserted
// and the request row deleted in one transaction, so the loan lives in exactly
// one of the two tables.
func (u *Usecase) Archive(ctx context.Context, requestID uint64, late bool) (uint64, error) {
	if u.uow == nil {
		return 0, apperr.Store(errors.New("borrow: no unit of work configured"))
	}

	var historyID uint64
	err := u.uow.WithinRequestTx(ctx, requestID, func(r uow.Repos, cur *br.BorrowRequest) error {
		if cur.Status != br.StatusApproved {
			return br.ErrNotApproved
		}
		if _, err := r.Items.GetByID(ctx, cur.ItemID); err != nil {
			return notFoundOr(err, errArchiveItemMissing)
		}
		if _, err := r.Principal.GetUserByID(ctx, cur.BorrowerID); err != nil {
			return notFoundOr(err, errArchiveBorrowerMissing)
		}

		returnDate := cur.ReturnDate
		if returnDate == nil {
			today := u.now().UTC().Truncate(24 * time.Hour)
			returnDate = &today
		}
		rec := &history.Record{
			UserID:         cur.BorrowerID,
			ItemID:         cur.ItemID,
			BorrowDate:     cur.BorrowDate,
			ReturnDate:     returnDate,
			Status:         history.TerminalStatus(late),
			BorrowerReason: cur.BorrowerReason,
			LenderResponse: cur.LenderResponse,
			LateReturn:     late,
		}
		if err := r.History.Create(ctx, rec); err != nil {
			return err
		}

		n, err := r.Requests.Delete(ctx, requestID)
		if err != nil {
			return err
		}
		if n == 0 {
			return br.ErrNotFound
		}
		historyID = rec.ID
		return nil
	})
	if err != nil {
		return 0, apperr.Wrap(notFoundOr(err, br.ErrNotFound))
	}

	u.log.Info("borrow request archived",
		zap.Uint64("request_id", requestID),
		zap.Uint64("history_id", historyID),
		zap.Bool("late", late),
	)
	return historyID, nil
}
