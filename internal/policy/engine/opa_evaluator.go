package engine

import (
	"context"
	"fmt"

	"github.com/open-policy-agent/opa/v1/rego"
)

const policyQuery = "data.smartlink.bridge_access.allow"

// Default Rego policy for bridge operations. Auth operations are public (they
// carry their own token semantics); settings and window operations are
// trust-the-local-process; everything else requires a live session, and a few
// destructive operations are additionally closed to GUEST sessions.
const defaultRegoPolicy = `package smartlink.bridge_access

default allow := false

public_ops := {
	"auth:login", "auth:register", "auth:refresh", "auth:logout", "auth:get-session",
	"settings:get", "settings:update", "settings:get-theme", "settings:set-theme",
	"settings:export", "settings:import",
	"system:get-status", "system:check-updates", "system:offline-status",
	"system:minimize", "system:maximize", "system:close",
}

guest_restricted_ops := {
	"team:create-team", "team:delete-task", "chat:delete-channel",
	"documents:delete", "meetings:delete",
}

guest_restricted(op) if op in guest_restricted_ops

allow if input.op in public_ops

allow if {
	input.authenticated
	not guest_restricted(input.op)
}

allow if {
	input.authenticated
	guest_restricted(input.op)
	input.role != "GUEST"
}
`

// OPAEvaluator evaluates the bridge access policy using OPA Rego. The policy
// is compiled once at construction; evaluation is a pure in-process query.
type OPAEvaluator struct {
	query rego.PreparedEvalQuery
}

// NewOPAEvaluator compiles the default bridge access policy and returns an
// evaluator for it.
func NewOPAEvaluator(ctx context.Context) (*OPAEvaluator, error) {
	query, err := rego.New(
		rego.Query(policyQuery),
		rego.Module("bridge_access.rego", defaultRegoPolicy),
	).PrepareForEval(ctx)
	if err != nil {
		return nil, fmt.Errorf("compile bridge access policy: %w", err)
	}
	return &OPAEvaluator{query: query}, nil
}

// EvaluateOp evaluates the access policy for one operation. Fails closed: an
// undefined result denies.
func (e *OPAEvaluator) EvaluateOp(ctx context.Context, in Input) (Decision, error) {
	results, err := e.query.Eval(ctx, rego.EvalInput(map[string]interface{}{
		"op":            in.Op,
		"authenticated": in.Authenticated,
		"role":          in.Role,
	}))
	if err != nil {
		return Decision{}, fmt.Errorf("evaluate bridge access policy: %w", err)
	}
	if len(results) == 0 || len(results[0].Expressions) == 0 {
		return Decision{Allow: false}, nil
	}
	allow, ok := results[0].Expressions[0].Value.(bool)
	if !ok {
		return Decision{Allow: false}, nil
	}
	return Decision{Allow: allow}, nil
}
