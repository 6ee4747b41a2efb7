package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockTokenRepo(t *testing.T) (*SQLTokenRepo, sqlmock.Sqlmock, time.Time) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	repo := NewSQLTokenRepo(db)
	repo.now = func() time.Time { return now }
	return repo, mock, now
}

func TestSQLTokenRepo_StoreRefresh(t *testing.T) {
	repo, mock, now := newMockTokenRepo(t)
	exp := now.Add(24 * time.Hour)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO refresh_tokens (user_id, token_hash, expires_at) VALUES (?,?,?)")).
		WithArgs("64b7f0c2a1b2c3d4e5f60718", "hash", exp).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.StoreRefresh(context.Background(), "64b7f0c2a1b2c3d4e5f60718", "hash", exp))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLTokenRepo_ValidateRefresh(t *testing.T) {
	query := regexp.QuoteMeta("SELECT user_id, expires_at, revoked_at FROM refresh_tokens WHERE token_hash=? LIMIT 1")

	t.Run("active token", func(t *testing.T) {
		repo, mock, now := newMockTokenRepo(t)
		rows := sqlmock.NewRows([]string{"user_id", "expires_at", "revoked_at"}).
			AddRow("u1", now.Add(time.Hour), nil)
		mock.ExpectQuery(query).WithArgs("h").WillReturnRows(rows)

		id, err := repo.ValidateRefresh(context.Background(), "h")
		require.NoError(t, err)
		assert.Equal(t, "u1", id)
	})

	t.Run("revoked token", func(t *testing.T) {
		repo, mock, now := newMockTokenRepo(t)
		rows := sqlmock.NewRows([]string{"user_id", "expires_at", "revoked_at"}).
			AddRow("u1", now.Add(time.Hour), now.Add(-time.Minute))
		mock.ExpectQuery(query).WithArgs("h").WillReturnRows(rows)

		_, err := repo.ValidateRefresh(context.Background(), "h")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("expired token", func(t *testing.T) {
		repo, mock, now := newMockTokenRepo(t)
		rows := sqlmock.NewRows([]string{"user_id", "expires_at", "revoked_at"}).
			AddRow("u1", now.Add(-time.Second), nil)
		mock.ExpectQuery(query).WithArgs("h").WillReturnRows(rows)

		_, err := repo.ValidateRefresh(context.Background(), "h")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("unknown token", func(t *testing.T) {
		repo, mock, _ := newMockTokenRepo(t)
		mock.ExpectQuery(query).WithArgs("h").WillReturnError(sql.ErrNoRows)

		_, err := repo.ValidateRefresh(context.Background(), "h")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestSQLTokenRepo_RevokeAllForUser(t *testing.T) {
	repo, mock, _ := newMockTokenRepo(t)
	mock.ExpectExec(regexp.QuoteMeta("UPDATE refresh_tokens SET revoked_at=NOW() WHERE user_id=? AND revoked_at IS NULL")).
		WithArgs("u1").
		WillReturnResult(sqlmock.NewResult(0, 3))

	require.NoError(t, repo.RevokeAllForUser(context.Background(), "u1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
