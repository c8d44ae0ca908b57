package user

import (
	"context"
	"errors"
	"testing"

	"rentify-backend/internal/domain/principal"
	"rentify-backend/internal/testutil/principalmock"

	"gorm.io/gorm"
)

func TestGet(t *testing.T) {
	hash := "$2a$10$abc"
	repo := &principalmock.Repo{
		GetUserByIDFn: func(_ context.Context, id uint64) (*principal.User, error) {
			if id != 3 {
				return nil, gorm.ErrRecordNotFound
			}
			return &principal.User{ID: 3, Username: "bob", Role: "User", PasswordHash: &hash}, nil
		},
	}
	uc := NewUsecase(repo)

	p, err := uc.Get(context.Background(), 3)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if p.UserID != 3 || p.Username != "bob" {
		t.Fatalf("profile=%+v", p)
	}
	if _, err := uc.Get(context.Background(), 4); !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}
