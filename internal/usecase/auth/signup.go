package auth

import (
	"context"
	"errors"
	"strings"

	"rentify-backend/internal/domain/apperr"
	"rentify-backend/internal/domain/credential"
	"rentify-backend/internal/domain/principal"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const signupRole = "User"

var ErrSignupMissingFields = apperr.Validation("username, email and password are required")

type Signup struct {
	store    principal.Repository
	verifier *credential.Verifier
	log      *zap.Logger
}

func NewSignup(store principal.Repository, verifier *credential.Verifier, log *zap.Logger) *Signup {
	if verifier == nil {
		verifier = credential.NewVerifier()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Signup{store: store, verifier: verifier, log: log}
}

// Register creates a users row with a bcrypt credential. Uniqueness is only
// checked against users; staff and lender names may collide.
func (s *Signup) Register(ctx context.Context, in SignupInput) (*SignupResult, error) {
	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.TrimSpace(in.Email)
	if in.Username == "" || in.Email == "" || in.Password == "" {
		return nil, ErrSignupMissingFields
	}

	exists, err := s.store.UserExists(ctx, in.Username, in.Email)
	if err != nil {
		return nil, apperr.Store(err)
	}
	if exists {
		return nil, principal.ErrDuplicate
	}

	hash, err := s.verifier.Hash(in.Password)
	if err != nil {
		return nil, apperr.Validation("password cannot be hashed")
	}
	fullName := strings.TrimSpace(in.FullName)
	if fullName == "" {
		fullName = in.Username
	}
	u := &principal.User{
		Username:     in.Username,
		Email:        in.Email,
		FullName:     fullName,
		Role:         signupRole,
		PasswordHash: &hash,
	}
	if err := s.store.CreateUser(ctx, u); err != nil {
		// lost a race with a concurrent signup
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, principal.ErrDuplicate
		}
		return nil, apperr.Store(err)
	}

	s.log.Info("user signed up", zap.Uint64("user_id", u.ID), zap.String("username", u.Username))
	return &SignupResult{
		UserID:   u.ID,
		Username: u.Username,
		Email:    u.Email,
		FullName: u.FullName,
		Role:     u.Role,
	}, nil
}
