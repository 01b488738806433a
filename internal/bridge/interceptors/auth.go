// Package interceptors provides cross-cutting middleware for the bridge
// dispatch chain: authentication with policy-gated access control, audit
// trail emission, and telemetry.
package interceptors

import (
	"context"
	"encoding/json"
	"log"

	"smartlink/host/internal/bridge"
	"smartlink/host/internal/policy/engine"
	sessiondomain "smartlink/host/internal/session/domain"
	userdomain "smartlink/host/internal/user/domain"
)

// SessionChecker resolves an access token to its user and live session row.
// Tokens whose session has been revoked must not resolve.
type SessionChecker interface {
	GetSession(ctx context.Context, accessToken string) (*userdomain.User, *sessiondomain.Session, error)
}

// Auth authenticates each request from the access token carried on the
// context and consults the access policy before letting the request
// through. Requests that pass with a valid session gain an identity on
// the context for downstream handlers.
func Auth(sessions SessionChecker, policy engine.Evaluator) bridge.Interceptor {
	return func(ctx context.Context, op string, args json.RawMessage, next bridge.HandlerFunc) (any, error) {
		var (
			authenticated bool
			userID        string
			role          string
		)

		if token := bridge.AccessToken(ctx); token != "" {
			user, _, err := sessions.GetSession(ctx, token)
			if err == nil {
				authenticated = true
				userID = user.ID
				role = string(user.Role)
			}
		}

		decision, err := policy.EvaluateOp(ctx, engine.Input{
			Op:            op,
			Authenticated: authenticated,
			Role:          role,
		})
		if err != nil {
			log.Printf("policy evaluation failed for %s: %v", op, err)
			return nil, bridge.NewError(bridge.CodeOperationFailed, "access policy unavailable")
		}
		if !decision.Allow {
			if !authenticated {
				return nil, bridge.NewError(bridge.CodeUnauthenticated, "authentication required")
			}
			return nil, bridge.NewError(bridge.CodePermissionDenied, "operation not permitted")
		}

		if authenticated {
			ctx = bridge.WithIdentity(ctx, userID, role)
		}
		return next(ctx, args)
	}
}
