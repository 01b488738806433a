package engine

import "context"

// Input describes one dispatched operation for policy evaluation.
type Input struct {
	// Op is the wire operation name (e.g. "chat:send-message").
	Op string
	// Authenticated is true when the request carried an access token bound to
	// a live session.
	Authenticated bool
	// Role is the authenticated user's role (ADMIN/MANAGER/MEMBER/GUEST);
	// empty when unauthenticated.
	Role string
}

// Decision is the outcome of access-policy evaluation for one operation.
type Decision struct {
	Allow bool
}

// Evaluator decides whether an operation may proceed, using OPA or other
// engines. The bridge's policy interceptor consults it on every dispatch.
type Evaluator interface {
	EvaluateOp(ctx context.Context, in Input) (Decision, error)
}
