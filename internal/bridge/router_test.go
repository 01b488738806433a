package bridge

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

func TestDispatchUnknownOperation(t *testing.T) {
	r := NewRouter()
	r.Handle("chat:get-channels", func(ctx context.Context, args json.RawMessage) (any, error) {
		return nil, nil
	})

	env := r.Dispatch(context.Background(), "chat:drop-tables", nil)
	if env.Success {
		t.Fatal("unknown op dispatched successfully")
	}
	if env.Error == nil || env.Error.Code != CodeUnknownOperation {
		t.Fatalf("error = %+v, want %s", env.Error, CodeUnknownOperation)
	}
	if env.Metadata == nil || env.Metadata.RequestID == "" {
		t.Error("metadata missing on error envelope")
	}
}

func TestDispatchSuccessEnvelope(t *testing.T) {
	r := NewRouter()
	r.Handle("system:get-status", func(ctx context.Context, args json.RawMessage) (any, error) {
		return map[string]string{"status": "healthy"}, nil
	})

	env := r.Dispatch(context.Background(), "system:get-status", nil)
	if !env.Success {
		t.Fatalf("env = %+v", env.Error)
	}
	if env.Error != nil {
		t.Errorf("error set on success envelope: %+v", env.Error)
	}
	if env.Metadata == nil || env.Metadata.Timestamp == 0 {
		t.Error("metadata missing on success envelope")
	}
	data, ok := env.Data.(map[string]string)
	if !ok || data["status"] != "healthy" {
		t.Errorf("data = %v", env.Data)
	}
}

func TestDispatchDomainErrorKeepsCode(t *testing.T) {
	r := NewRouter()
	r.Handle("auth:login", func(ctx context.Context, args json.RawMessage) (any, error) {
		return nil, NewError("INVALID_CREDENTIALS", "Invalid email or password")
	})

	env := r.Dispatch(context.Background(), "auth:login", nil)
	if env.Success || env.Error == nil {
		t.Fatalf("env = %+v", env)
	}
	if env.Error.Code != "INVALID_CREDENTIALS" {
		t.Errorf("code = %s", env.Error.Code)
	}
	if env.Error.Message != "Invalid email or password" {
		t.Errorf("message = %s", env.Error.Message)
	}
}

func TestDispatchInternalErrorIsGeneric(t *testing.T) {
	r := NewRouter()
	r.Handle("settings:get", func(ctx context.Context, args json.RawMessage) (any, error) {
		return nil, errors.New("pq: connection refused")
	})

	env := r.Dispatch(context.Background(), "settings:get", nil)
	if env.Success || env.Error == nil {
		t.Fatalf("env = %+v", env)
	}
	if env.Error.Code != CodeOperationFailed {
		t.Errorf("code = %s, want %s", env.Error.Code, CodeOperationFailed)
	}
	// Infrastructure detail must not leak across the bridge.
	if env.Error.Message == "pq: connection refused" {
		t.Error("internal error message leaked to the UI")
	}
}

func TestDispatchWrappedDomainError(t *testing.T) {
	r := NewRouter()
	r.Handle("auth:refresh", func(ctx context.Context, args json.RawMessage) (any, error) {
		return nil, errors.Join(errors.New("context"), NewError("TOKEN_EXPIRED", "Session expired"))
	})

	env := r.Dispatch(context.Background(), "auth:refresh", nil)
	if env.Error == nil || env.Error.Code != "TOKEN_EXPIRED" {
		t.Fatalf("error = %+v, want TOKEN_EXPIRED", env.Error)
	}
}

func TestInterceptorOrderAndShortCircuit(t *testing.T) {
	var order []string
	outer := func(ctx context.Context, op string, args json.RawMessage, next HandlerFunc) (any, error) {
		order = append(order, "outer")
		return next(ctx, args)
	}
	inner := func(ctx context.Context, op string, args json.RawMessage, next HandlerFunc) (any, error) {
		order = append(order, "inner")
		return nil, NewError(CodeUnauthenticated, "Not authenticated")
	}
	r := NewRouter(outer, inner)
	r.Handle("chat:get-channels", func(ctx context.Context, args json.RawMessage) (any, error) {
		order = append(order, "handler")
		return nil, nil
	})

	env := r.Dispatch(context.Background(), "chat:get-channels", nil)
	if env.Success || env.Error.Code != CodeUnauthenticated {
		t.Fatalf("env = %+v", env)
	}
	if len(order) != 2 || order[0] != "outer" || order[1] != "inner" {
		t.Errorf("order = %v, want [outer inner]", order)
	}
}

func TestInterceptorsSkipUnknownOps(t *testing.T) {
	called := false
	ic := func(ctx context.Context, op string, args json.RawMessage, next HandlerFunc) (any, error) {
		called = true
		return next(ctx, args)
	}
	r := NewRouter(ic)

	r.Dispatch(context.Background(), "nope:nope", nil)
	if called {
		t.Error("interceptor ran for an unregistered operation")
	}
}

func TestHandleDuplicatePanics(t *testing.T) {
	r := NewRouter()
	h := func(ctx context.Context, args json.RawMessage) (any, error) { return nil, nil }
	r.Handle("auth:login", h)

	defer func() {
		if recover() == nil {
			t.Error("duplicate Handle did not panic")
		}
	}()
	r.Handle("auth:login", h)
}

func TestOpsSorted(t *testing.T) {
	r := NewRouter()
	h := func(ctx context.Context, args json.RawMessage) (any, error) { return nil, nil }
	r.Handle("b:op", h)
	r.Handle("a:op", h)
	r.Handle("c:op", h)

	ops := r.Ops()
	want := []string{"a:op", "b:op", "c:op"}
	if len(ops) != len(want) {
		t.Fatalf("ops = %v", ops)
	}
	for i := range want {
		if ops[i] != want[i] {
			t.Errorf("ops[%d] = %s, want %s", i, ops[i], want[i])
		}
	}
}
