// Package token issues and parses the HS256 session tokens returned by login.
package token

import (
	"errors"
	"time"

	"rentify-backend/pkg/id"

	jwtv5 "github.com/golang-jwt/jwt/v5"
)

var (
	ErrExpired = errors.New("token expired")
	ErrInvalid = errors.New("token invalid")
)

const issuer = "rentify"

type Claims struct {
	Kind string `json:"kind"`
	Role string `json:"role"`
	jwtv5.RegisteredClaims
}

type Signer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewSigner returns nil for an empty secret; callers treat a nil Signer as
// "tokens disabled".
func NewSigner(secret string, ttl time.Duration) *Signer {
	if secret == "" {
		return nil
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Signer{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue signs a token whose subject is "<kind>:<id>".
func (s *Signer) Issue(kind, subject, role string) (string, error) {
	now := s.now()
	claims := Claims{
		Kind: kind,
		Role: role,
		RegisteredClaims: jwtv5.RegisteredClaims{
			ID:        id.NewID32(),
			Subject:   kind + ":" + subject,
			Issuer:    issuer,
			IssuedAt:  jwtv5.NewNumericDate(now),
			ExpiresAt: jwtv5.NewNumericDate(now.Add(s.ttl)),
		},
	}
	return jwtv5.NewWithClaims(jwtv5.SigningMethodHS256, claims).SignedString(s.secret)
}

// Parse verifies signature, issuer, expiry and the token id shape.
func (s *Signer) Parse(raw string) (*Claims, error) {
	tok, err := jwtv5.ParseWithClaims(raw, &Claims{}, func(t *jwtv5.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwtv5.SigningMethodHMAC); !ok {
			return nil, ErrInvalid
		}
		return s.secret, nil
	}, jwtv5.WithIssuer(issuer), jwtv5.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwtv5.ErrTokenExpired) {
			return nil, ErrExpired
		}
		return nil, ErrInvalid
	}
	claims, ok := tok.Claims.(*Claims)
	if !ok || !tok.Valid || !id.Valid32(claims.ID) {
		return nil, ErrInvalid
	}
	return claims, nil
}
