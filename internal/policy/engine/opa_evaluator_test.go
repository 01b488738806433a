package engine

import (
	"context"
	"testing"
)

func newEvaluator(t *testing.T) *OPAEvaluator {
	t.Helper()
	e, err := NewOPAEvaluator(context.Background())
	if err != nil {
		t.Fatalf("NewOPAEvaluator: %v", err)
	}
	return e
}

func TestPublicOpsAllowedWithoutAuth(t *testing.T) {
	e := newEvaluator(t)
	for _, op := range []string{"auth:login", "auth:register", "settings:get-theme", "system:minimize"} {
		d, err := e.EvaluateOp(context.Background(), Input{Op: op})
		if err != nil {
			t.Fatalf("EvaluateOp(%s): %v", op, err)
		}
		if !d.Allow {
			t.Fatalf("EvaluateOp(%s) unauthenticated = deny, want allow", op)
		}
	}
}

func TestProtectedOpsDeniedWithoutAuth(t *testing.T) {
	e := newEvaluator(t)
	for _, op := range []string{"chat:get-channels", "team:get-tasks", "documents:list", "analytics:get-dashboard"} {
		d, err := e.EvaluateOp(context.Background(), Input{Op: op})
		if err != nil {
			t.Fatalf("EvaluateOp(%s): %v", op, err)
		}
		if d.Allow {
			t.Fatalf("EvaluateOp(%s) unauthenticated = allow, want deny", op)
		}
	}
}

func TestProtectedOpsAllowedWithAuth(t *testing.T) {
	e := newEvaluator(t)
	d, err := e.EvaluateOp(context.Background(), Input{Op: "chat:get-channels", Authenticated: true, Role: "MEMBER"})
	if err != nil {
		t.Fatalf("EvaluateOp: %v", err)
	}
	if !d.Allow {
		t.Fatal("authenticated member denied chat:get-channels")
	}
}

func TestGuestRestrictedOps(t *testing.T) {
	e := newEvaluator(t)
	cases := []struct {
		role string
		want bool
	}{
		{"GUEST", false},
		{"MEMBER", true},
		{"ADMIN", true},
	}
	for _, tc := range cases {
		d, err := e.EvaluateOp(context.Background(), Input{Op: "team:create-team", Authenticated: true, Role: tc.role})
		if err != nil {
			t.Fatalf("EvaluateOp(%s): %v", tc.role, err)
		}
		if d.Allow != tc.want {
			t.Fatalf("team:create-team as %s = %v, want %v", tc.role, d.Allow, tc.want)
		}
	}
}

func TestUnknownOpDeniedByDefault(t *testing.T) {
	e := newEvaluator(t)
	d, err := e.EvaluateOp(context.Background(), Input{Op: "debug:eval", Authenticated: false})
	if err != nil {
		t.Fatalf("EvaluateOp: %v", err)
	}
	if d.Allow {
		t.Fatal("unknown unauthenticated op allowed; policy must fail closed")
	}
}
