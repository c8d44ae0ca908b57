// Package credential classifies stored passwords and checks submitted
// secrets against them. Stored values are either bcrypt hashes (modern) or
// anything else, including NULL (legacy plaintext from early seeding).
package credential

import (
	"crypto/subtle"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

type Kind int

const (
	KindLegacy Kind = iota
	KindModern
)

func (k Kind) String() string {
	if k == KindModern {
		return "modern"
	}
	return "legacy"
}

var bcryptPrefixes = []string{"$2a$", "$2b$", "$2y$"}

// Credential is a stored password tagged with its encoding. Value is nil for
// a NULL column.
type Credential struct {
	Kind  Kind
	Value *string
}

// Classify tags a stored column value.
func Classify(stored *string) Credential {
	if stored != nil {
		for _, p := range bcryptPrefixes {
			if strings.HasPrefix(*stored, p) {
				return Credential{Kind: KindModern, Value: stored}
			}
		}
	}
	return Credential{Kind: KindLegacy, Value: stored}
}

type Result struct {
	Valid  bool
	Legacy bool
}

// NeedsUpgrade is true when a successful check ran against a legacy value.
func (r Result) NeedsUpgrade() bool { return r.Valid && r.Legacy }

type Verifier struct {
	cost int
	// allowNull lets a NULL legacy credential match the empty secret.
	allowNull bool
}

type Option func(*Verifier)

// WithCost sets the bcrypt cost used by Hash.
func WithCost(cost int) Option {
	return func(v *Verifier) {
		if cost >= bcrypt.MinCost && cost <= bcrypt.MaxCost {
			v.cost = cost
		}
	}
}

// WithNullCredential enables the historical rule that a NULL stored password
// accepts an empty submission. Off by default.
func WithNullCredential(allow bool) Option {
	return func(v *Verifier) { v.allowNull = allow }
}

func NewVerifier(opts ...Option) *Verifier {
	v := &Verifier{cost: bcrypt.DefaultCost}
	for _, o := range opts {
		o(v)
	}
	return v
}

// Verify has no side effects; upgrading is the caller's job.
func (v *Verifier) Verify(submitted string, c Credential) Result {
	if c.Kind == KindModern {
		err := bcrypt.CompareHashAndPassword([]byte(*c.Value), []byte(submitted))
		return Result{Valid: err == nil}
	}
	if c.Value == nil {
		return Result{Valid: v.allowNull && submitted == "", Legacy: true}
	}
	ok := subtle.ConstantTimeCompare([]byte(*c.Value), []byte(submitted)) == 1
	return Result{Valid: ok, Legacy: true}
}

// Hash produces the modern encoding of secret.
func (v *Verifier) Hash(secret string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(secret), v.cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
