package bridge

import "context"

type contextKey struct{ name string }

var (
	accessTokenKey = contextKey{"access_token"}
	userIDKey      = contextKey{"user_id"}
	roleKey        = contextKey{"role"}
)

// WithAccessToken returns a context carrying the raw bearer token from the
// request frame. Set by the bridge server before dispatch; read by the auth
// interceptor and by handlers with implicit-token operations (logout,
// get-session).
func WithAccessToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, accessTokenKey, token)
}

// AccessToken returns the raw bearer token from ctx, or "" if unset.
func AccessToken(ctx context.Context) string {
	v, _ := ctx.Value(accessTokenKey).(string)
	return v
}

// WithIdentity returns a context with the authenticated user's id and role.
// Set by the auth interceptor after session validation.
func WithIdentity(ctx context.Context, userID, role string) context.Context {
	ctx = context.WithValue(ctx, userIDKey, userID)
	return context.WithValue(ctx, roleKey, role)
}

// UserID returns the authenticated user id from ctx, or "" if the request
// is unauthenticated.
func UserID(ctx context.Context) string {
	v, _ := ctx.Value(userIDKey).(string)
	return v
}

// Role returns the authenticated user's role from ctx, or "" when
// unauthenticated.
func Role(ctx context.Context) string {
	v, _ := ctx.Value(roleKey).(string)
	return v
}
