package interceptors

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"smartlink/host/internal/bridge"
)

type recordedEvent struct {
	userID   string
	action   string
	resource string
	metadata string
}

type fakeAuditLogger struct {
	mu     sync.Mutex
	events []recordedEvent
}

func (f *fakeAuditLogger) LogEvent(ctx context.Context, userID, action, resource, metadata string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, recordedEvent{userID, action, resource, metadata})
}

func TestAuditRecordsAuthenticatedOps(t *testing.T) {
	logger := &fakeAuditLogger{}
	ic := Audit(logger)

	ctx := bridge.WithIdentity(context.Background(), "u-1", "MEMBER")
	if _, err := ic(ctx, "chat:send-message", nil, passthrough); err != nil {
		t.Fatalf("interceptor: %v", err)
	}

	if len(logger.events) != 1 {
		t.Fatalf("events = %d, want 1", len(logger.events))
	}
	e := logger.events[0]
	if e.userID != "u-1" || e.action != "send_message" || e.resource != "chat" {
		t.Errorf("event = %+v", e)
	}
}

func TestAuditSkipsAnonymousOps(t *testing.T) {
	logger := &fakeAuditLogger{}
	ic := Audit(logger)

	if _, err := ic(context.Background(), "auth:login", nil, passthrough); err != nil {
		t.Fatalf("interceptor: %v", err)
	}
	if len(logger.events) != 0 {
		t.Fatalf("events = %d, want 0", len(logger.events))
	}
}

func TestAuditSkipsChattyOps(t *testing.T) {
	logger := &fakeAuditLogger{}
	ic := Audit(logger)

	ctx := bridge.WithIdentity(context.Background(), "u-1", "MEMBER")
	if _, err := ic(ctx, bridge.OpAuthGetSession, nil, passthrough); err != nil {
		t.Fatalf("interceptor: %v", err)
	}
	if len(logger.events) != 0 {
		t.Fatalf("events = %d, want 0", len(logger.events))
	}
}

func TestAuditMarksErrorOutcome(t *testing.T) {
	logger := &fakeAuditLogger{}
	ic := Audit(logger)

	failing := func(ctx context.Context, args json.RawMessage) (any, error) {
		return nil, errors.New("boom")
	}
	ctx := bridge.WithIdentity(context.Background(), "u-1", "MEMBER")
	if _, err := ic(ctx, "documents:delete", nil, failing); err == nil {
		t.Fatal("expected handler error to propagate")
	}

	if len(logger.events) != 1 {
		t.Fatalf("events = %d, want 1", len(logger.events))
	}
	if logger.events[0].metadata != `{"outcome":"error"}` {
		t.Errorf("metadata = %q", logger.events[0].metadata)
	}
}
