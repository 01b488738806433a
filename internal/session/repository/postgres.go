package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"smartlink/host/internal/session/domain"
)

type PostgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository returns a session repository that uses the given db for persistence.
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const sessionColumns = `id, user_id, token, refresh_token, expires_at, created_at`

// GetByRefreshToken returns the session holding refreshToken, or nil if none.
// It returns an error only for database failures, not for missing rows.
func (r *PostgresRepository) GetByRefreshToken(ctx context.Context, refreshToken string) (*domain.Session, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+sessionColumns+` FROM sessions WHERE refresh_token = $1`, refreshToken)
	return scanSession(row)
}

// GetByTokenAndUser returns the session holding token for the given user, or
// nil if none. Both must match so a verified token with no live row fails.
func (r *PostgresRepository) GetByTokenAndUser(ctx context.Context, token, userID string) (*domain.Session, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+sessionColumns+` FROM sessions WHERE token = $1 AND user_id = $2`, token, userID)
	return scanSession(row)
}

// Create persists the session. The session must have ID set.
func (r *PostgresRepository) Create(ctx context.Context, s *domain.Session) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO sessions (id, user_id, token, refresh_token, expires_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		s.ID, s.UserID, s.Token, s.RefreshToken, s.ExpiresAt, s.CreatedAt,
	)
	return err
}

// DeleteByToken removes every session whose access token equals token.
func (r *PostgresRepository) DeleteByToken(ctx context.Context, token string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE token = $1`, token)
	return err
}

// DeleteByID removes the session with the given id.
func (r *PostgresRepository) DeleteByID(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE id = $1`, id)
	return err
}

// Rotate atomically swaps the session's token pair. The WHERE clause carries
// the old refresh token as an optimistic concurrency guard; zero rows affected
// means another rotation or a logout won the race.
func (r *PostgresRepository) Rotate(ctx context.Context, id, oldRefreshToken, token, refreshToken string, expiresAt time.Time) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE sessions
		SET token = $3, refresh_token = $4, expires_at = $5
		WHERE id = $1 AND refresh_token = $2`,
		id, oldRefreshToken, token, refreshToken, expiresAt,
	)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

func scanSession(row *sql.Row) (*domain.Session, error) {
	var s domain.Session
	err := row.Scan(&s.ID, &s.UserID, &s.Token, &s.RefreshToken, &s.ExpiresAt, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}
