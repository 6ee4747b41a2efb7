package memory

import (
	"context"
	"sync"
	"time"

	"github.com/iliyamo/expo-management/internal/repository"
)

type refreshToken struct {
	userID  string
	expires time.Time
	revoked bool
}

// TokenRepo keeps refresh token hashes in memory.  It is used when no
// MySQL ledger is configured and by tests.
type TokenRepo struct {
	mu     sync.Mutex
	tokens map[string]*refreshToken
	now    func() time.Time
}

func NewTokenRepo() *TokenRepo {
	return &TokenRepo{tokens: map[string]*refreshToken{}, now: func() time.Time { return time.Now().UTC() }}
}

var _ repository.TokenRepo = (*TokenRepo)(nil)

func (r *TokenRepo) StoreRefresh(ctx context.Context, userID string, tokenHash string, exp time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tokens[tokenHash]; ok {
		return repository.ErrDuplicate
	}
	r.tokens[tokenHash] = &refreshToken{userID: userID, expires: exp}
	return nil
}

func (r *TokenRepo) ValidateRefresh(ctx context.Context, tokenHash string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tokens[tokenHash]
	if !ok || t.revoked || r.now().After(t.expires) {
		return "", repository.ErrNotFound
	}
	return t.userID, nil
}

func (r *TokenRepo) RevokeByHash(ctx context.Context, tokenHash string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if t, ok := r.tokens[tokenHash]; ok {
		t.revoked = true
	}
	return nil
}

func (r *TokenRepo) RevokeAllForUser(ctx context.Context, userID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range r.tokens {
		if t.userID == userID {
			t.revoked = true
		}
	}
	return nil
}
