package audit

import (
	"context"
	"errors"
	"sync"
	"testing"

	"smartlink/host/internal/audit/domain"
)

type fakeAuditRepo struct {
	mu      sync.Mutex
	entries []*domain.AuditLog
	err     error
}

func (f *fakeAuditRepo) GetByID(ctx context.Context, id string) (*domain.AuditLog, error) {
	return nil, nil
}

func (f *fakeAuditRepo) ListByUser(ctx context.Context, userID string, limit, offset int32) ([]*domain.AuditLog, error) {
	return nil, nil
}

func (f *fakeAuditRepo) Create(ctx context.Context, a *domain.AuditLog) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.entries = append(f.entries, a)
	return nil
}

func TestLogEventPersistsEntry(t *testing.T) {
	repo := &fakeAuditRepo{}
	logger := NewLogger(repo)

	logger.LogEvent(context.Background(), "u-1", "send_message", "chat", `{"channel":"general"}`)

	if len(repo.entries) != 1 {
		t.Fatalf("entries = %d, want 1", len(repo.entries))
	}
	e := repo.entries[0]
	if e.ID == "" {
		t.Error("entry ID not set")
	}
	if e.UserID != "u-1" || e.Action != "send_message" || e.Resource != "chat" {
		t.Errorf("entry = %+v", e)
	}
	if e.CreatedAt.IsZero() {
		t.Error("CreatedAt not set")
	}
}

func TestLogEventSwallowsRepoErrors(t *testing.T) {
	repo := &fakeAuditRepo{err: errors.New("db down")}
	logger := NewLogger(repo)

	// Must not panic or surface the error.
	logger.LogEvent(context.Background(), "u-1", "login", "auth", "")
}

func TestLogEventNilRepo(t *testing.T) {
	logger := NewLogger(nil)
	logger.LogEvent(context.Background(), "u-1", "login", "auth", "")
}
