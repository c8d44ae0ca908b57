package user

import (
	"context"
	"errors"

	"rentify-backend/internal/domain/apperr"
	"rentify-backend/internal/domain/principal"

	"gorm.io/gorm"
)

var ErrNotFound = apperr.NotFound("user not found")

// Profile is a users row without its credential.
type Profile struct {
	UserID   uint64 `json:"user_id"`
	Username string `json:"username"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

type Usecase struct{ repo principal.Repository }

func NewUsecase(repo principal.Repository) *Usecase { return &Usecase{repo: repo} }

func (u *Usecase) Get(ctx context.Context, id uint64) (*Profile, error) {
	usr, err := u.repo.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, apperr.Store(err)
	}
	return &Profile{
		UserID:   usr.ID,
		Username: usr.Username,
		FullName: usr.FullName,
		Email:    usr.Email,
		Role:     usr.Role,
	}, nil
}
