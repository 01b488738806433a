package security

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	// ErrInvalidToken is returned when a token is malformed, carries the wrong
	// signature, or fails claim validation for any reason other than expiry.
	ErrInvalidToken = errors.New("invalid token")
	// ErrTokenExpired is returned when a token's signature is valid but its
	// expiration time is in the past. Callers may log the distinction but must
	// present a uniform "invalid session" surface to the UI.
	ErrTokenExpired = errors.New("token expired")
)

// TokenKind discriminates access tokens from refresh tokens. Refresh tokens
// carry a "type":"refresh" claim; access tokens carry no type claim, matching
// the wire format the UI already understands.
type TokenKind string

const (
	TokenKindAccess  TokenKind = "access"
	TokenKindRefresh TokenKind = "refresh"
)

const refreshTypeClaim = "refresh"

// Claims holds the JWT payload for both token kinds.
type Claims struct {
	jwt.RegisteredClaims
	TokenType string `json:"type,omitempty"`
}

// TokenIssuer issues and verifies HS256 JWTs signed with a single shared
// secret. The secret must come from explicit configuration; there is no
// fallback value.
type TokenIssuer struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewTokenIssuer returns a TokenIssuer signing with secret. accessTTL and
// refreshTTL bound the lifetime of the respective token kinds.
func NewTokenIssuer(secret []byte, accessTTL, refreshTTL time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: secret, accessTTL: accessTTL, refreshTTL: refreshTTL}
}

// Issue signs a token of the given kind for subject (user id) and returns the
// token string together with its embedded expiration time.
func (i *TokenIssuer) Issue(subject string, kind TokenKind) (string, time.Time, error) {
	ttl := i.accessTTL
	if kind == TokenKindRefresh {
		ttl = i.refreshTTL
	}
	now := time.Now().UTC()
	expiresAt := now.Add(ttl)
	// A unique jti keeps token strings distinct even when two tokens for
	// the same subject are minted within the same second. Session rows
	// key on the token value, so collisions here would collide there.
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	if kind == TokenKindRefresh {
		claims.TokenType = refreshTypeClaim
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return token, expiresAt, nil
}

// Verify parses and validates tokenString. Returns the subject, the token
// kind, and the embedded expiry. Fails closed: ErrTokenExpired for valid
// signatures past their expiration, ErrInvalidToken for everything else.
func (i *TokenIssuer) Verify(tokenString string) (subject string, kind TokenKind, expiresAt time.Time, err error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return i.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", "", time.Time{}, ErrTokenExpired
		}
		return "", "", time.Time{}, ErrInvalidToken
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return "", "", time.Time{}, ErrInvalidToken
	}
	if claims.Subject == "" || claims.ExpiresAt == nil {
		return "", "", time.Time{}, ErrInvalidToken
	}
	kind = TokenKindAccess
	if claims.TokenType == refreshTypeClaim {
		kind = TokenKindRefresh
	}
	return claims.Subject, kind, claims.ExpiresAt.Time, nil
}
