package item

import (
	"context"
	"errors"

	"rentify-backend/internal/domain/apperr"
	domain "rentify-backend/internal/domain/item"

	"gorm.io/gorm"
)

type Usecase struct{ repo domain.Repository }

func NewUsecase(repo domain.Repository) *Usecase { return &Usecase{repo: repo} }

// List hides items that are not Available unless includeDisabled is set.
func (u *Usecase) List(ctx context.Context, includeDisabled bool) ([]domain.Item, error) {
	out, err := u.repo.List(ctx, includeDisabled)
	if err != nil {
		return nil, apperr.Store(err)
	}
	if out == nil {
		out = []domain.Item{}
	}
	return out, nil
}

func (u *Usecase) Get(ctx context.Context, id uint64) (*domain.Item, error) {
	it, err := u.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, apperr.Store(err)
	}
	return it, nil
}
