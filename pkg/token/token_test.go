package token

import (
	"errors"
	"testing"
	"time"

	jwtv5 "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSigner_EmptySecretDisables(t *testing.T) {
	assert.Nil(t, NewSigner("", time.Hour))
}

func TestIssueAndParse(t *testing.T) {
	s := NewSigner("s3cret", time.Hour)
	raw, err := s.Issue("lender", "5", "lender")
	require.NoError(t, err)

	c, err := s.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "lender:5", c.Subject)
	assert.Equal(t, "lender", c.Role)
	assert.Equal(t, "lender", c.Kind)
	assert.Len(t, c.ID, 32)
}

func TestParse_Expired(t *testing.T) {
	s := NewSigner("s3cret", time.Minute)
	issued := time.Now().Add(-time.Hour)
	s.now = func() time.Time { return issued }
	raw, err := s.Issue("user", "1", "User")
	require.NoError(t, err)

	s.now = time.Now
	_, err = s.Parse(raw)
	assert.True(t, errors.Is(err, ErrExpired), "got %v", err)
}

func TestParse_WrongSecret(t *testing.T) {
	raw, err := NewSigner("a", time.Hour).Issue("user", "1", "User")
	require.NoError(t, err)
	_, err = NewSigner("b", time.Hour).Parse(raw)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestParse_RejectsMalformedTokenID(t *testing.T) {
	s := NewSigner("s3cret", time.Hour)
	now := time.Now()
	claims := Claims{
		Kind: "user",
		Role: "User",
		RegisteredClaims: jwtv5.RegisteredClaims{
			ID:        "not-a-token-id",
			Subject:   "user:1",
			Issuer:    issuer,
			IssuedAt:  jwtv5.NewNumericDate(now),
			ExpiresAt: jwtv5.NewNumericDate(now.Add(time.Hour)),
		},
	}
	raw, err := jwtv5.NewWithClaims(jwtv5.SigningMethodHS256, claims).SignedString(s.secret)
	require.NoError(t, err)

	_, err = s.Parse(raw)
	assert.ErrorIs(t, err, ErrInvalid)
}
