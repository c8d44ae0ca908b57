package history

import (
	"context"
	"errors"
	"strings"

	"rentify-backend/internal/domain/apperr"
	domain "rentify-backend/internal/domain/history"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	ErrNothingToCorrect = apperr.Validation("no correctable field given")
	ErrUnknownStatus    = apperr.Validation("status must be Pending, Returned or Returned_Late")
)

type Usecase struct {
	repo domain.Repository
	log  *zap.Logger
}

func NewUsecase(repo domain.Repository, log *zap.Logger) *Usecase {
	if log == nil {
		log = zap.NewNop()
	}
	return &Usecase{repo: repo, log: log}
}

func (u *Usecase) List(ctx context.Context) ([]domain.View, error) {
	return u.list(ctx, 0)
}

func (u *Usecase) ListByUser(ctx context.Context, userID uint64) ([]domain.View, error) {
	if userID == 0 {
		return nil, apperr.Validation("user id is required")
	}
	return u.list(ctx, userID)
}

func (u *Usecase) list(ctx context.Context, userID uint64) ([]domain.View, error) {
	out, err := u.repo.List(ctx, userID)
	if err != nil {
		return nil, apperr.Store(err)
	}
	if out == nil {
		out = []domain.View{}
	}
	return out, nil
}

func (u *Usecase) Get(ctx context.Context, id uint64) (*domain.Record, error) {
	rec, err := u.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, apperr.Store(err)
	}
	return rec, nil
}

// Correct edits the status and return fields of an archived record. Records
// are never deleted.
func (u *Usecase) Correct(ctx context.Context, id uint64, in CorrectInput) (*domain.Record, error) {
	if in.empty() {
		return nil, ErrNothingToCorrect
	}
	var status domain.Status
	if in.Status != nil {
		st, ok := parseStatus(*in.Status)
		if !ok {
			return nil, ErrUnknownStatus
		}
		status = st
	}

	rec, err := u.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.LateReturn != nil {
		rec.LateReturn = *in.LateReturn
		// keep the terminal status in step with the flag unless one was given
		if status == "" && rec.Status != domain.StatusPending {
			rec.Status = domain.TerminalStatus(rec.LateReturn)
		}
	}
	if status != "" {
		rec.Status = status
	}
	if in.ReturnDate != nil {
		rd := *in.ReturnDate
		rec.ReturnDate = &rd
	}
	if in.LenderResponse != nil {
		resp := *in.LenderResponse
		rec.LenderResponse = &resp
	}

	if err := u.repo.Save(ctx, rec); err != nil {
		return nil, apperr.Store(err)
	}
	u.log.Info("history record corrected", zap.Uint64("history_id", id), zap.String("status", string(rec.Status)))
	return rec, nil
}

func parseStatus(s string) (domain.Status, bool) {
	for _, st := range []domain.Status{domain.StatusPending, domain.StatusReturned, domain.StatusReturnedLate} {
		if strings.EqualFold(s, string(st)) {
			return st, true
		}
	}
	return "", false
}
