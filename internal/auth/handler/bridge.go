// Package handler exposes the auth operations over the bridge and maps
// auth service errors to stable envelope error codes.
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strings"
	"time"

	"smartlink/host/internal/auth/service"
	"smartlink/host/internal/bridge"
	"smartlink/host/internal/ratelimit"
	userdomain "smartlink/host/internal/user/domain"
)

// Domain error codes carried in the envelope for auth operations.
const (
	CodeUserExists         = "USER_EXISTS"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeAccountInactive    = "ACCOUNT_INACTIVE"
	CodeInvalidToken       = "INVALID_TOKEN"
	CodeTokenExpired       = "TOKEN_EXPIRED"
	CodeSessionNotFound    = "SESSION_NOT_FOUND"
	CodeInvalidSession     = "INVALID_SESSION"
	CodeRegistrationFailed = "REGISTRATION_FAILED"
	CodeLoginFailed        = "LOGIN_FAILED"
	CodeRefreshFailed      = "REFRESH_FAILED"
	CodeRateLimited        = "RATE_LIMITED"
)

// Limits applied to the credential-bearing operations.
type RateLimit struct {
	Limit  int
	Window time.Duration
}

type Handler struct {
	auth    *service.AuthService
	limiter *ratelimit.RedisLimiter
	limit   RateLimit
}

// New returns the auth bridge handler. limiter may be nil, in which case
// login and register are not throttled.
func New(auth *service.AuthService, limiter *ratelimit.RedisLimiter, limit RateLimit) *Handler {
	return &Handler{auth: auth, limiter: limiter, limit: limit}
}

// Register wires the auth operations into the router.
func (h *Handler) Register(r *bridge.Router) {
	r.Handle(bridge.OpAuthRegister, h.register)
	r.Handle(bridge.OpAuthLogin, h.login)
	r.Handle(bridge.OpAuthLogout, h.logout)
	r.Handle(bridge.OpAuthRefresh, h.refresh)
	r.Handle(bridge.OpAuthGetSession, h.getSession)
}

// authPayload is the wire shape for login, register and refresh results.
type authPayload struct {
	User         userdomain.Profile `json:"user"`
	AccessToken  string             `json:"accessToken"`
	RefreshToken string             `json:"refreshToken"`
	ExpiresAt    int64              `json:"expiresAt"` // epoch milliseconds
}

func toAuthPayload(res *service.AuthResult) authPayload {
	return authPayload{
		User:         res.User.Profile(),
		AccessToken:  res.AccessToken,
		RefreshToken: res.RefreshToken,
		ExpiresAt:    res.ExpiresAt.UnixMilli(),
	}
}

// allow checks the fixed-window limiter for one credential attempt
// against the given email. The limiter keys on the normalized email so
// an attacker cannot reset the window by varying case.
func (h *Handler) allow(ctx context.Context, op, email string) bool {
	if h.limiter == nil {
		return true
	}
	key := op + ":" + strings.ToLower(strings.TrimSpace(email))
	return h.limiter.Allow(ctx, key, h.limit.Limit, h.limit.Window)
}

type registerArgs struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

func (h *Handler) register(ctx context.Context, args json.RawMessage) (any, error) {
	var in registerArgs
	if err := json.Unmarshal(args, &in); err != nil {
		return nil, bridge.NewError(bridge.CodeInvalidArgument, "malformed registration request")
	}
	if !h.allow(ctx, bridge.OpAuthRegister, in.Email) {
		return nil, bridge.NewError(CodeRateLimited, "too many attempts, try again later")
	}

	res, err := h.auth.Register(ctx, in.Email, in.Password, in.FirstName, in.LastName)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserExists):
			return nil, bridge.NewError(CodeUserExists, err.Error())
		case errors.Is(err, service.ErrInvalidInput):
			return nil, bridge.NewError(bridge.CodeInvalidArgument, err.Error())
		default:
			log.Printf("auth: register failed: %v", err)
			return nil, bridge.NewError(CodeRegistrationFailed, "registration failed")
		}
	}
	return toAuthPayload(res), nil
}

type loginArgs struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) login(ctx context.Context, args json.RawMessage) (any, error) {
	var in loginArgs
	if err := json.Unmarshal(args, &in); err != nil {
		return nil, bridge.NewError(bridge.CodeInvalidArgument, "malformed login request")
	}
	if !h.allow(ctx, bridge.OpAuthLogin, in.Email) {
		return nil, bridge.NewError(CodeRateLimited, "too many attempts, try again later")
	}

	res, err := h.auth.Login(ctx, in.Email, in.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			return nil, bridge.NewError(CodeInvalidCredentials, "Invalid email or password")
		case errors.Is(err, service.ErrAccountInactive):
			return nil, bridge.NewError(CodeAccountInactive, err.Error())
		default:
			log.Printf("auth: login failed: %v", err)
			return nil, bridge.NewError(CodeLoginFailed, "login failed")
		}
	}
	return toAuthPayload(res), nil
}

// logout revokes the session behind the caller's access token. It always
// succeeds: logging out an unknown or already-revoked token is a no-op.
func (h *Handler) logout(ctx context.Context, args json.RawMessage) (any, error) {
	h.auth.Logout(ctx, bridge.AccessToken(ctx))
	return nil, nil
}

type refreshArgs struct {
	RefreshToken string `json:"refreshToken"`
}

func (h *Handler) refresh(ctx context.Context, args json.RawMessage) (any, error) {
	var in refreshArgs
	if err := json.Unmarshal(args, &in); err != nil || in.RefreshToken == "" {
		return nil, bridge.NewError(bridge.CodeInvalidArgument, "refresh token required")
	}

	res, err := h.auth.Refresh(ctx, in.RefreshToken)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidToken):
			return nil, bridge.NewError(CodeInvalidToken, err.Error())
		case errors.Is(err, service.ErrTokenExpired):
			return nil, bridge.NewError(CodeTokenExpired, err.Error())
		case errors.Is(err, service.ErrAccountInactive):
			return nil, bridge.NewError(CodeAccountInactive, err.Error())
		default:
			log.Printf("auth: refresh failed: %v", err)
			return nil, bridge.NewError(CodeRefreshFailed, "token refresh failed")
		}
	}
	return toAuthPayload(res), nil
}

// sessionPayload is the wire shape for get-session.
type sessionPayload struct {
	User      userdomain.Profile `json:"user"`
	ExpiresAt int64              `json:"expiresAt"` // epoch milliseconds
}

func (h *Handler) getSession(ctx context.Context, args json.RawMessage) (any, error) {
	token := bridge.AccessToken(ctx)
	if token == "" {
		return nil, bridge.NewError(CodeInvalidSession, "no session token")
	}

	user, sess, err := h.auth.GetSession(ctx, token)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSessionNotFound):
			return nil, bridge.NewError(CodeSessionNotFound, err.Error())
		case errors.Is(err, service.ErrInvalidSession):
			return nil, bridge.NewError(CodeInvalidSession, err.Error())
		default:
			log.Printf("auth: get-session failed: %v", err)
			return nil, bridge.NewError(bridge.CodeOperationFailed, "failed to load session")
		}
	}
	return sessionPayload{
		User:      user.Profile(),
		ExpiresAt: sess.ExpiresAt.UnixMilli(),
	}, nil
}
