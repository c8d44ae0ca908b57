package auth

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"rentify-backend/internal/domain/apperr"
	"rentify-backend/internal/domain/credential"
	"rentify-backend/internal/domain/principal"
	"rentify-backend/internal/testutil/principalmock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func strp(s string) *string { return &s }

func mustHash(t *testing.T, s string) *string {
	t.Helper()
	b, err := bcrypt.GenerateFromPassword([]byte(s), bcrypt.MinCost)
	require.NoError(t, err)
	return strp(string(b))
}

func newResolver(repo principal.Repository) *Resolver {
	return NewResolver(repo, credential.NewVerifier(credential.WithCost(bcrypt.MinCost)), nil)
}

func drain(t *testing.T, r *Resolver) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, r.Drain(ctx))
}

func TestLogin_RoleNormalization(t *testing.T) {
	tables := principalmock.NewTables()
	tables.Put(principal.Principal{Kind: principal.KindStaff, ID: 1, Username: "boss", Role: "Admin", PasswordHash: mustHash(t, "pw")})
	tables.Put(principal.Principal{Kind: principal.KindLender, ID: 2, Username: "len", Role: "Owner", PasswordHash: mustHash(t, "pw")})
	tables.Put(principal.Principal{Kind: principal.KindUser, ID: 3, Username: "bob", Role: "User", PasswordHash: mustHash(t, "pw")})
	r := newResolver(tables.Repo())

	tests := []struct {
		username string
		kind     principal.Kind
		role     string
	}{
		{"boss", principal.KindStaff, "admin"},
		{"len", principal.KindLender, "lender"},
		{"bob", principal.KindUser, "User"},
	}
	for _, tc := range tests {
		t.Run(tc.username, func(t *testing.T) {
			id, err := r.Login(context.Background(), tc.username, "pw")
			require.NoError(t, err)
			assert.Equal(t, tc.kind, id.Kind)
			assert.Equal(t, tc.role, id.Role)
		})
	}
}

func TestLogin_PrecedenceAndFailFast(t *testing.T) {
	tables := principalmock.NewTables()
	// same username in staff and user; staff wins
	tables.Put(principal.Principal{Kind: principal.KindStaff, ID: 1, Username: "sam", Role: "STAFF", PasswordHash: mustHash(t, "staff-pw")})
	tables.Put(principal.Principal{Kind: principal.KindUser, ID: 9, Username: "sam", Role: "User", PasswordHash: mustHash(t, "user-pw")})
	r := newResolver(tables.Repo())

	id, err := r.Login(context.Background(), "sam", "staff-pw")
	require.NoError(t, err)
	assert.Equal(t, principal.KindStaff, id.Kind)

	// the user-table password must not be tried once staff matched the name
	_, err = r.Login(context.Background(), "sam", "user-pw")
	assert.ErrorIs(t, err, ErrInvalidLogin)
}

func TestLogin_UnknownAndWrongPasswordLookAlike(t *testing.T) {
	tables := principalmock.NewTables()
	tables.Put(principal.Principal{Kind: principal.KindUser, ID: 3, Username: "bob", Role: "User", PasswordHash: mustHash(t, "pw")})
	r := newResolver(tables.Repo())

	_, errUnknown := r.Login(context.Background(), "nobody", "pw")
	_, errWrong := r.Login(context.Background(), "bob", "nope")
	require.Error(t, errUnknown)
	require.Error(t, errWrong)
	assert.Equal(t, errUnknown.Error(), errWrong.Error())
	assert.Equal(t, apperr.KindInvalidCredentials, apperr.KindOf(errUnknown))
}

func TestLogin_LegacyUpgrade(t *testing.T) {
	tables := principalmock.NewTables()
	tables.Put(principal.Principal{Kind: principal.KindLender, ID: 2, Username: "old", PasswordHash: strp("plain-pw")})
	r := newResolver(tables.Repo())
	ctx := context.Background()

	_, err := r.Login(ctx, "old", "plain-pw")
	require.NoError(t, err)
	drain(t, r)

	stored := tables.Stored(principal.KindLender, "old")
	require.NotNil(t, stored)
	assert.Equal(t, credential.KindModern, credential.Classify(stored).Kind)
	assert.True(t, strings.HasPrefix(*stored, "$2"))

	_, err = r.Login(ctx, "old", "plain-pw")
	require.NoError(t, err)
	drain(t, r)
	assert.Equal(t, *stored, *tables.Stored(principal.KindLender, "old"), "modern hash must not be rewritten")
}

func TestLogin_UpgradeFailureDoesNotFailLogin(t *testing.T) {
	tables := principalmock.NewTables()
	tables.Put(principal.Principal{Kind: principal.KindUser, ID: 3, Username: "bob", Role: "User", PasswordHash: strp("pw")})
	repo := tables.Repo()
	repo.UpgradeCredentialFn = func(context.Context, principal.Kind, uint64, string) error {
		return errors.New("read-only replica")
	}
	r := newResolver(repo)

	id, err := r.Login(context.Background(), "bob", "pw")
	require.NoError(t, err)
	assert.Equal(t, uint64(3), id.ID)
	drain(t, r)
	assert.Equal(t, "pw", *tables.Stored(principal.KindUser, "bob"))
}

func TestLogin_UpgradeOutlivesRequestContext(t *testing.T) {
	tables := principalmock.NewTables()
	tables.Put(principal.Principal{Kind: principal.KindUser, ID: 3, Username: "bob", PasswordHash: strp("pw")})
	repo := tables.Repo()
	var sawCanceled bool
	upgrade := repo.UpgradeCredentialFn
	repo.UpgradeCredentialFn = func(ctx context.Context, k principal.Kind, id uint64, h string) error {
		sawCanceled = ctx.Err() != nil
		return upgrade(ctx, k, id, h)
	}
	r := newResolver(repo)

	ctx, cancel := context.WithCancel(context.Background())
	_, err := r.Login(ctx, "bob", "pw")
	cancel()
	require.NoError(t, err)
	drain(t, r)
	assert.False(t, sawCanceled)
}

func TestLogin_NullCredential(t *testing.T) {
	tables := principalmock.NewTables()
	tables.Put(principal.Principal{Kind: principal.KindUser, ID: 3, Username: "seed"})

	_, err := newResolver(tables.Repo()).Login(context.Background(), "seed", "")
	assert.ErrorIs(t, err, ErrInvalidLogin)

	lax := NewResolver(tables.Repo(), credential.NewVerifier(credential.WithNullCredential(true)), nil)
	_, err = lax.Login(context.Background(), "seed", "")
	assert.NoError(t, err)
	drain(t, lax)
}

func TestLogin_StoreError(t *testing.T) {
	repo := &principalmock.Repo{
		FindByUsernameFn: func(context.Context, principal.Kind, string) (*principal.Principal, error) {
			return nil, errors.New("connection refused")
		},
	}
	_, err := newResolver(repo).Login(context.Background(), "x", "y")
	assert.Equal(t, apperr.KindStore, apperr.KindOf(err))
}
