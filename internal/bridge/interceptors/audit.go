package interceptors

import (
	"context"
	"encoding/json"

	"smartlink/host/internal/audit"
	"smartlink/host/internal/bridge"
)

// Operations too chatty or too sensitive to audit. Reads of the current
// session happen on every window focus; login/register payloads carry
// credentials and are audited by the auth handler itself on outcome.
var auditSkipOps = map[string]struct{}{
	bridge.OpAuthGetSession:   {},
	bridge.OpSystemGetStatus:  {},
	bridge.OpSettingsGetTheme: {},
}

// Audit records one audit entry per authenticated operation after the
// handler runs. Recording is best-effort and never fails the request.
func Audit(logger audit.AuditLogger) bridge.Interceptor {
	return func(ctx context.Context, op string, args json.RawMessage, next bridge.HandlerFunc) (any, error) {
		data, err := next(ctx, args)

		userID := bridge.UserID(ctx)
		if userID == "" {
			return data, err
		}
		if _, skip := auditSkipOps[op]; skip {
			return data, err
		}

		ar := audit.ParseOp(op)
		meta := ""
		if err != nil {
			meta = `{"outcome":"error"}`
		}
		logger.LogEvent(ctx, userID, ar.Action, ar.Resource, meta)
		return data, err
	}
}
