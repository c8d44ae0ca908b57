package auth

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"rentify-backend/internal/domain/apperr"
	"rentify-backend/internal/domain/credential"
	"rentify-backend/internal/domain/principal"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrInvalidLogin is returned for unknown usernames and wrong secrets alike.
var ErrInvalidLogin = apperr.New(apperr.KindInvalidCredentials, "invalid login")

const defaultUpgradeTimeout = 5 * time.Second

type Resolver struct {
	store    principal.Repository
	verifier *credential.Verifier
	log      *zap.Logger

	upgradeTimeout time.Duration
	inflight       sync.WaitGroup
}

func NewResolver(store principal.Repository, verifier *credential.Verifier, log *zap.Logger) *Resolver {
	if verifier == nil {
		verifier = credential.NewVerifier()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Resolver{store: store, verifier: verifier, log: log, upgradeTimeout: defaultUpgradeTimeout}
}

// Login walks the principal tables in precedence order. The first table that
// knows the username decides the outcome; a wrong secret there does not fall
// through to the next table.
func (r *Resolver) Login(ctx context.Context, username, secret string) (*Identity, error) {
	if username == "" {
		return nil, ErrInvalidLogin
	}
	for _, kind := range principal.Precedence {
		p, err := r.store.FindByUsername(ctx, kind, username)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, principal.ErrNotFound) {
				continue
			}
			return nil, apperr.Store(err)
		}

		res := r.verifier.Verify(secret, credential.Classify(p.PasswordHash))
		if !res.Valid {
			return nil, ErrInvalidLogin
		}
		if res.NeedsUpgrade() {
			r.upgrade(ctx, p.Kind, p.ID, secret)
		}
		return &Identity{
			Kind:     kind,
			ID:       p.ID,
			Username: p.Username,
			FullName: p.FullName,
			Email:    p.Email,
			Role:     normalizeRole(kind, p.Role),
		}, nil
	}
	return nil, ErrInvalidLogin
}

func normalizeRole(kind principal.Kind, stored string) string {
	switch kind {
	case principal.KindStaff:
		return strings.ToLower(stored)
	case principal.KindLender:
		return "lender"
	default:
		return stored
	}
}

// upgrade rehashes a legacy credential in the background. The login response
// does not wait for it and its failure is only logged.
func (r *Resolver) upgrade(ctx context.Context, kind principal.Kind, id uint64, secret string) {
	r.inflight.Add(1)
	go func() {
		defer r.inflight.Done()
		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), r.upgradeTimeout)
		defer cancel()

		log := r.log.With(zap.String("kind", string(kind)), zap.Uint64("id", id))
		hash, err := r.verifier.Hash(secret)
		if err != nil {
			log.Warn("credential upgrade: hash failed", zap.Error(err))
			return
		}
		if err := r.store.UpgradeCredential(ctx, kind, id, hash); err != nil {
			log.Warn("credential upgrade failed", zap.Error(err))
			return
		}
		log.Info("legacy credential upgraded")
	}()
}

// Drain blocks until in-flight credential upgrades finish or ctx is done.
func (r *Resolver) Drain(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		r.inflight.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
