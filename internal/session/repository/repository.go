package repository

import (
	"context"
	"time"

	"smartlink/host/internal/session/domain"
)

// Repository defines persistence for sessions. Session rows are the sole
// source of truth for revocation; implementations must not cache them.
type Repository interface {
	GetByRefreshToken(ctx context.Context, refreshToken string) (*domain.Session, error)
	GetByTokenAndUser(ctx context.Context, token, userID string) (*domain.Session, error)
	Create(ctx context.Context, s *domain.Session) error
	// DeleteByToken removes every session whose access token equals token.
	// Deleting a token with no matching session is not an error.
	DeleteByToken(ctx context.Context, token string) error
	DeleteByID(ctx context.Context, id string) error
	// Rotate overwrites the session's token pair and expiry, guarded by the
	// refresh token the caller presented. Returns false when the guard does not
	// match (the session was concurrently rotated or deleted), so a lost race
	// is a defined failure instead of silent token loss.
	Rotate(ctx context.Context, id, oldRefreshToken, token, refreshToken string, expiresAt time.Time) (bool, error)
}
