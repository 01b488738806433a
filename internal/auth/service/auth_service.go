package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"smartlink/host/internal/security"
	sessiondomain "smartlink/host/internal/session/domain"
	userdomain "smartlink/host/internal/user/domain"
)

// Sentinel errors for the auth service; the bridge handler maps them to
// stable envelope error codes.
var (
	ErrUserExists         = errors.New("an account with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountInactive    = errors.New("account is not active")
	ErrInvalidToken       = errors.New("invalid refresh token")
	ErrTokenExpired       = errors.New("session has expired")
	ErrSessionNotFound    = errors.New("session not found")
	ErrInvalidSession     = errors.New("invalid or expired session")
	ErrInvalidInput       = errors.New("invalid input")
)

// AuthResult holds the outcome of Register, Login, or Refresh: the owning
// user and the freshly minted token pair. ExpiresAt is the access token's
// expiry, which the session row mirrors.
type AuthResult struct {
	User         *userdomain.User
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
}

// UserRepo is the minimal user repository needed by the auth service.
type UserRepo interface {
	GetByID(ctx context.Context, id string) (*userdomain.User, error)
	GetByEmail(ctx context.Context, email string) (*userdomain.User, error)
	Create(ctx context.Context, u *userdomain.User) error
	UpdateLastLogin(ctx context.Context, id string, at time.Time) error
}

// SessionRepo is the minimal session repository needed by the auth service.
type SessionRepo interface {
	GetByRefreshToken(ctx context.Context, refreshToken string) (*sessiondomain.Session, error)
	GetByTokenAndUser(ctx context.Context, token, userID string) (*sessiondomain.Session, error)
	Create(ctx context.Context, s *sessiondomain.Session) error
	DeleteByToken(ctx context.Context, token string) error
	DeleteByID(ctx context.Context, id string) error
	Rotate(ctx context.Context, id, oldRefreshToken, token, refreshToken string, expiresAt time.Time) (bool, error)
}

// AuthService is the sole authority over who is authenticated and with what
// token pair. It owns session rows and is the only component that mints
// tokens.
type AuthService struct {
	userRepo    UserRepo
	sessionRepo SessionRepo
	hasher      *security.Hasher
	tokens      *security.TokenIssuer
}

// NewAuthService returns an AuthService with the given dependencies.
func NewAuthService(userRepo UserRepo, sessionRepo SessionRepo, hasher *security.Hasher, tokens *security.TokenIssuer) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		hasher:      hasher,
		tokens:      tokens,
	}
}

// Register creates a user with the given email and password, opens a session,
// and returns the token pair. Fails with ErrUserExists when the normalized
// email is already taken.
func (s *AuthService) Register(ctx context.Context, email, password, firstName, lastName string) (*AuthResult, error) {
	email = normalizeEmail(email)
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if password == "" {
		return nil, fmt.Errorf("%w: password is required", ErrInvalidInput)
	}
	existing, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUserExists
	}
	hashed, err := s.hasher.Hash([]byte(password))
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	user := &userdomain.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: hashed,
		FirstName:    strings.TrimSpace(firstName),
		LastName:     strings.TrimSpace(lastName),
		Role:         userdomain.RoleMember,
		Status:       userdomain.StatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := user.Validate(); err != nil {
		return nil, err
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return s.openSession(ctx, user)
}

// Login authenticates with email/password, opens a new session, and updates
// last-login. Missing user and wrong password are indistinguishable to the
// caller: both are ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}
	if err := s.hasher.Compare(user.PasswordHash, []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	if user.Status != userdomain.StatusActive {
		return nil, ErrAccountInactive
	}
	result, err := s.openSession(ctx, user)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	if err := s.userRepo.UpdateLastLogin(ctx, user.ID, now); err != nil {
		return nil, err
	}
	user.LastLoginAt = &now
	return result, nil
}

// Logout deletes every session holding accessToken. It is idempotent and
// always succeeds: a dangling session poses no risk beyond its natural
// expiry, and reporting failure would leak whether the session existed.
func (s *AuthService) Logout(ctx context.Context, accessToken string) {
	if accessToken == "" {
		return
	}
	_ = s.sessionRepo.DeleteByToken(ctx, accessToken)
}

// Refresh rotates the session identified by refreshToken: the old token pair
// becomes unusable immediately, even before its cryptographic expiry. An
// expired session is deleted and reported as ErrTokenExpired; a concurrent
// rotation losing the compare-and-swap is reported as ErrInvalidToken.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*AuthResult, error) {
	if refreshToken == "" {
		return nil, ErrInvalidToken
	}
	sess, err := s.sessionRepo.GetByRefreshToken(ctx, refreshToken)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, ErrInvalidToken
	}
	if sess.Expired(time.Now().UTC()) {
		_ = s.sessionRepo.DeleteByID(ctx, sess.ID)
		return nil, ErrTokenExpired
	}
	user, err := s.userRepo.GetByID(ctx, sess.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidToken
	}
	accessToken, accessExp, err := s.tokens.Issue(user.ID, security.TokenKindAccess)
	if err != nil {
		return nil, err
	}
	newRefresh, _, err := s.tokens.Issue(user.ID, security.TokenKindRefresh)
	if err != nil {
		return nil, err
	}
	ok, err := s.sessionRepo.Rotate(ctx, sess.ID, refreshToken, accessToken, newRefresh, accessExp)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrInvalidToken
	}
	return &AuthResult{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: newRefresh,
		ExpiresAt:    accessExp,
	}, nil
}

// GetSession verifies accessToken cryptographically and then requires a live
// session row for that exact token and user. A token that verifies but has no
// matching row is revoked server-side and fails with ErrSessionNotFound.
func (s *AuthService) GetSession(ctx context.Context, accessToken string) (*userdomain.User, *sessiondomain.Session, error) {
	subject, kind, _, err := s.tokens.Verify(accessToken)
	if err != nil {
		return nil, nil, ErrInvalidSession
	}
	if kind != security.TokenKindAccess {
		return nil, nil, ErrInvalidSession
	}
	sess, err := s.sessionRepo.GetByTokenAndUser(ctx, accessToken, subject)
	if err != nil {
		return nil, nil, err
	}
	if sess == nil {
		return nil, nil, ErrSessionNotFound
	}
	user, err := s.userRepo.GetByID(ctx, subject)
	if err != nil {
		return nil, nil, err
	}
	if user == nil {
		return nil, nil, ErrSessionNotFound
	}
	return user, sess, nil
}

// openSession mints a token pair for user and persists the session row. The
// row's expiry mirrors the access token's encoded expiration.
func (s *AuthService) openSession(ctx context.Context, user *userdomain.User) (*AuthResult, error) {
	accessToken, accessExp, err := s.tokens.Issue(user.ID, security.TokenKindAccess)
	if err != nil {
		return nil, err
	}
	refreshToken, _, err := s.tokens.Issue(user.ID, security.TokenKindRefresh)
	if err != nil {
		return nil, err
	}
	sess := &sessiondomain.Session{
		ID:           uuid.New().String(),
		UserID:       user.ID,
		Token:        accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    accessExp,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.sessionRepo.Create(ctx, sess); err != nil {
		return nil, err
	}
	return &AuthResult{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    accessExp,
	}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

func validateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	if !emailPattern.MatchString(email) {
		return fmt.Errorf("%w: invalid email format", ErrInvalidInput)
	}
	return nil
}
