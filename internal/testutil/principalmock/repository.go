package principalmock

import (
	"context"
	"sync"

	domain "rentify-backend/internal/domain/principal"

	"gorm.io/gorm"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	FindByUsernameFn    func(ctx context.Context, kind domain.Kind, username string) (*domain.Principal, error)
	UpgradeCredentialFn func(ctx context.Context, kind domain.Kind, id uint64, hash string) error
	GetUserByIDFn       func(ctx context.Context, id uint64) (*domain.User, error)
	UserExistsFn        func(ctx context.Context, username, email string) (bool, error)
	CreateUserFn        func(ctx context.Context, u *domain.User) error
}

var _ domain.Repository = (*Repo)(nil)

func (m *Repo) FindByUsername(ctx context.Context, kind domain.Kind, username string) (*domain.Principal, error) {
	if m.FindByUsernameFn != nil {
		return m.FindByUsernameFn(ctx, kind, username)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) UpgradeCredential(ctx context.Context, kind domain.Kind, id uint64, hash string) error {
	if m.UpgradeCredentialFn != nil {
		return m.UpgradeCredentialFn(ctx, kind, id, hash)
	}
	return nil
}

func (m *Repo) GetUserByID(ctx context.Context, id uint64) (*domain.User, error) {
	if m.GetUserByIDFn != nil {
		return m.GetUserByIDFn(ctx, id)
	}
	return &domain.User{ID: id}, nil
}

func (m *Repo) UserExists(ctx context.Context, username, email string) (bool, error) {
	if m.UserExistsFn != nil {
		return m.UserExistsFn(ctx, username, email)
	}
	return false, nil
}

func (m *Repo) CreateUser(ctx context.Context, u *domain.User) error {
	if m.CreateUserFn != nil {
		return m.CreateUserFn(ctx, u)
	}
	return nil
}

// Tables is a small in-memory principal store keyed by kind then username.
// It records credential upgrades so tests can observe the stored value change.
type Tables struct {
	mu   sync.Mutex
	rows map[domain.Kind]map[string]*domain.Principal
}

func NewTables() *Tables {
	return &Tables{rows: map[domain.Kind]map[string]*domain.Principal{}}
}

// Put stores p under p.Kind. A nil hash models a NULL column.
func (t *Tables) Put(p domain.Principal) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.rows[p.Kind] == nil {
		t.rows[p.Kind] = map[string]*domain.Principal{}
	}
	cp := p
	t.rows[p.Kind][p.Username] = &cp
}

// Stored returns the current password_hash of the row, or nil.
func (t *Tables) Stored(kind domain.Kind, username string) *string {
	t.mu.Lock()
	defer t.mu.Unlock()
	if p, ok := t.rows[kind][username]; ok && p.PasswordHash != nil {
		v := *p.PasswordHash
		return &v
	}
	return nil
}

// Repo returns a mock backed by the tables.
func (t *Tables) Repo() *Repo {
	return &Repo{
		FindByUsernameFn: func(_ context.Context, kind domain.Kind, username string) (*domain.Principal, error) {
			t.mu.Lock()
			defer t.mu.Unlock()
			p, ok := t.rows[kind][username]
			if !ok {
				return nil, gorm.ErrRecordNotFound
			}
			cp := *p
			return &cp, nil
		},
		UpgradeCredentialFn: func(_ context.Context, kind domain.Kind, id uint64, hash string) error {
			t.mu.Lock()
			defer t.mu.Unlock()
			for _, p := range t.rows[kind] {
				if p.ID == id {
					h := hash
					p.PasswordHash = &h
					return nil
				}
			}
			return gorm.ErrRecordNotFound
		},
	}
}
