package interceptors

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"smartlink/host/internal/bridge"
	"smartlink/host/internal/policy/engine"
	sessiondomain "smartlink/host/internal/session/domain"
	userdomain "smartlink/host/internal/user/domain"
)

type fakeSessionChecker struct {
	user *userdomain.User
	err  error
}

func (f *fakeSessionChecker) GetSession(ctx context.Context, accessToken string) (*userdomain.User, *sessiondomain.Session, error) {
	if f.err != nil {
		return nil, nil, f.err
	}
	return f.user, &sessiondomain.Session{ID: "s-1", UserID: f.user.ID}, nil
}

type fakeEvaluator struct {
	allow bool
	err   error
	seen  engine.Input
}

func (f *fakeEvaluator) EvaluateOp(ctx context.Context, in engine.Input) (engine.Decision, error) {
	f.seen = in
	return engine.Decision{Allow: f.allow}, f.err
}

func passthrough(ctx context.Context, args json.RawMessage) (any, error) {
	return "ok", nil
}

func TestAuthDeniesUnauthenticated(t *testing.T) {
	sessions := &fakeSessionChecker{err: errors.New("no session")}
	policy := &fakeEvaluator{allow: false}
	ic := Auth(sessions, policy)

	_, err := ic(context.Background(), "chat:get-channels", nil, passthrough)

	var be *bridge.Error
	if !errors.As(err, &be) || be.Code != bridge.CodeUnauthenticated {
		t.Fatalf("err = %v, want %s", err, bridge.CodeUnauthenticated)
	}
	if policy.seen.Authenticated {
		t.Error("policy saw authenticated input without a valid token")
	}
}

func TestAuthDeniesByPolicy(t *testing.T) {
	sessions := &fakeSessionChecker{user: &userdomain.User{ID: "u-1", Role: userdomain.RoleGuest}}
	policy := &fakeEvaluator{allow: false}
	ic := Auth(sessions, policy)

	ctx := bridge.WithAccessToken(context.Background(), "token")
	_, err := ic(ctx, "team:create-team", nil, passthrough)

	var be *bridge.Error
	if !errors.As(err, &be) || be.Code != bridge.CodePermissionDenied {
		t.Fatalf("err = %v, want %s", err, bridge.CodePermissionDenied)
	}
	if !policy.seen.Authenticated || policy.seen.Role != "GUEST" {
		t.Errorf("policy input = %+v, want authenticated GUEST", policy.seen)
	}
}

func TestAuthAttachesIdentity(t *testing.T) {
	sessions := &fakeSessionChecker{user: &userdomain.User{ID: "u-1", Role: userdomain.RoleMember}}
	policy := &fakeEvaluator{allow: true}
	ic := Auth(sessions, policy)

	var gotUserID, gotRole string
	next := func(ctx context.Context, args json.RawMessage) (any, error) {
		gotUserID = bridge.UserID(ctx)
		gotRole = bridge.Role(ctx)
		return nil, nil
	}

	ctx := bridge.WithAccessToken(context.Background(), "token")
	if _, err := ic(ctx, "chat:get-channels", nil, next); err != nil {
		t.Fatalf("interceptor: %v", err)
	}
	if gotUserID != "u-1" || gotRole != "MEMBER" {
		t.Errorf("identity = %s/%s, want u-1/MEMBER", gotUserID, gotRole)
	}
}

func TestAuthAllowsPublicOpWithoutToken(t *testing.T) {
	sessions := &fakeSessionChecker{err: errors.New("no session")}
	policy := &fakeEvaluator{allow: true}
	ic := Auth(sessions, policy)

	data, err := ic(context.Background(), "auth:login", nil, passthrough)
	if err != nil {
		t.Fatalf("interceptor: %v", err)
	}
	if data != "ok" {
		t.Errorf("data = %v, want ok", data)
	}
}

func TestAuthFailsClosedOnPolicyError(t *testing.T) {
	sessions := &fakeSessionChecker{err: errors.New("no session")}
	policy := &fakeEvaluator{err: errors.New("rego blew up")}
	ic := Auth(sessions, policy)

	_, err := ic(context.Background(), "auth:login", nil, passthrough)

	var be *bridge.Error
	if !errors.As(err, &be) || be.Code != bridge.CodeOperationFailed {
		t.Fatalf("err = %v, want %s", err, bridge.CodeOperationFailed)
	}
}
