package domain

import "time"

// Session represents one active authentication grant. A session is binary
// live/absent: logout and failed refresh delete the row outright. ExpiresAt
// always equals the current access token's encoded expiration.
type Session struct {
	ID           string
	UserID       string
	Token        string // current access token value, unique
	RefreshToken string // current refresh token value, unique
	ExpiresAt    time.Time
	CreatedAt    time.Time
}

// Expired reports whether the session's recorded expiry is in the past.
func (s *Session) Expired(now time.Time) bool {
	return s.ExpiresAt.Before(now)
}
