package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

// refreshTokensDDL creates the ledger table when it is missing.
const refreshTokensDDL = `CREATE TABLE IF NOT EXISTS refresh_tokens (
  id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
  user_id CHAR(24) NOT NULL,
  token_hash CHAR(64) NOT NULL UNIQUE,
  expires_at DATETIME NOT NULL,
  revoked_at DATETIME NULL,
  created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
  INDEX idx_refresh_user (user_id)
)`

// SQLTokenRepo persists/validates refresh tokens in MySQL (single
// 'token_hash' column, user ids stored as hex object ids).
type SQLTokenRepo struct {
	DB  *sql.DB
	now func() time.Time
}

func NewSQLTokenRepo(db *sql.DB) *SQLTokenRepo {
	return &SQLTokenRepo{DB: db, now: func() time.Time { return time.Now().UTC() }}
}

// EnsureSchema creates the refresh_tokens table.
func (r *SQLTokenRepo) EnsureSchema(ctx context.Context) error {
	_, err := r.DB.ExecContext(ctx, refreshTokensDDL)
	return err
}

// StoreRefresh inserts a refresh token hash row.
func (r *SQLTokenRepo) StoreRefresh(ctx context.Context, userID string, tokenHash string, exp time.Time) error {
	_, err := r.DB.ExecContext(ctx,
		"INSERT INTO refresh_tokens (user_id, token_hash, expires_at) VALUES (?,?,?)",
		userID, tokenHash, exp)
	return err
}

// ValidateRefresh returns the user id if a non-revoked, non-expired token
// exists; ErrNotFound otherwise.
func (r *SQLTokenRepo) ValidateRefresh(ctx context.Context, tokenHash string) (string, error) {
	var (
		userID    string
		expiresAt time.Time
		revokedAt sql.NullTime
	)
	err := r.DB.QueryRowContext(ctx,
		"SELECT user_id, expires_at, revoked_at FROM refresh_tokens WHERE token_hash=? LIMIT 1",
		tokenHash).Scan(&userID, &expiresAt, &revokedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	if revokedAt.Valid || r.now().After(expiresAt) {
		return "", ErrNotFound
	}
	return userID, nil
}

// RevokeByHash marks a token as revoked.
func (r *SQLTokenRepo) RevokeByHash(ctx context.Context, tokenHash string) error {
	_, err := r.DB.ExecContext(ctx,
		"UPDATE refresh_tokens SET revoked_at=NOW() WHERE token_hash=? AND revoked_at IS NULL",
		tokenHash)
	return err
}

// RevokeAllForUser revokes all of the user's active tokens.
func (r *SQLTokenRepo) RevokeAllForUser(ctx context.Context, userID string) error {
	_, err := r.DB.ExecContext(ctx,
		"UPDATE refresh_tokens SET revoked_at=NOW() WHERE user_id=? AND revoked_at IS NULL",
		userID)
	return err
}
