package handler

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"smartlink/host/internal/bridge"
	"smartlink/host/internal/settings/domain"
)

type fakeSettingsRepo struct {
	mu     sync.Mutex
	stored *domain.Settings
	err    error
}

func (f *fakeSettingsRepo) Get(ctx context.Context) (*domain.Settings, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	if f.stored == nil {
		return nil, nil
	}
	cp := *f.stored
	return &cp, nil
}

func (f *fakeSettingsRepo) Save(ctx context.Context, s *domain.Settings) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	cp := *s
	f.stored = &cp
	return nil
}

func TestGetReturnsDefaultsWhenEmpty(t *testing.T) {
	h := New(&fakeSettingsRepo{})

	data, err := h.get(context.Background(), nil)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	s := data.(*domain.Settings)
	if s.Theme != domain.ThemeSystem || s.Language != "en" {
		t.Errorf("defaults = %+v", s)
	}
	if !s.Notifications.Desktop {
		t.Error("desktop notifications should default on")
	}
}

func TestUpdateMergesPartialFields(t *testing.T) {
	repo := &fakeSettingsRepo{stored: domain.Default()}
	h := New(repo)

	data, err := h.update(context.Background(), json.RawMessage(`{"theme":"dark"}`))
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	s := data.(*domain.Settings)
	if s.Theme != domain.ThemeDark {
		t.Errorf("theme = %s, want dark", s.Theme)
	}
	if s.Language != "en" {
		t.Errorf("language = %s, untouched field changed", s.Language)
	}
	if repo.stored.Theme != domain.ThemeDark {
		t.Error("update not persisted")
	}
}

func TestUpdateRejectsInvalidTheme(t *testing.T) {
	h := New(&fakeSettingsRepo{})

	_, err := h.update(context.Background(), json.RawMessage(`{"theme":"neon"}`))
	var be *bridge.Error
	if !errors.As(err, &be) || be.Code != bridge.CodeInvalidArgument {
		t.Fatalf("err = %v, want %s", err, bridge.CodeInvalidArgument)
	}
}

func TestSetThemeValidates(t *testing.T) {
	repo := &fakeSettingsRepo{}
	h := New(repo)

	for _, theme := range []string{"light", "dark", "system"} {
		if _, err := h.setTheme(context.Background(), json.RawMessage(`{"theme":"`+theme+`"}`)); err != nil {
			t.Fatalf("setTheme(%s): %v", theme, err)
		}
	}
	if repo.stored.Theme != domain.ThemeSystem {
		t.Errorf("stored theme = %s, want system", repo.stored.Theme)
	}

	_, err := h.setTheme(context.Background(), json.RawMessage(`{"theme":"blue"}`))
	var be *bridge.Error
	if !errors.As(err, &be) || be.Code != bridge.CodeInvalidArgument {
		t.Fatalf("err = %v, want %s", err, bridge.CodeInvalidArgument)
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	repo := &fakeSettingsRepo{stored: &domain.Settings{
		Theme:         domain.ThemeDark,
		Language:      "de",
		Notifications: domain.Notifications{Email: false, Desktop: true, Sound: false},
	}}
	h := New(repo)

	out, err := h.export(context.Background(), nil)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	exported := out.(map[string]string)["data"]

	repo.stored = nil
	importArgs, _ := json.Marshal(map[string]string{"data": exported})
	data, err := h.import_(context.Background(), importArgs)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	s := data.(*domain.Settings)
	if s.Theme != domain.ThemeDark || s.Language != "de" || s.Notifications.Email {
		t.Errorf("imported = %+v", s)
	}
}

func TestImportRejectsGarbage(t *testing.T) {
	h := New(&fakeSettingsRepo{})

	_, err := h.import_(context.Background(), json.RawMessage(`{"data":"not json"}`))
	var be *bridge.Error
	if !errors.As(err, &be) || be.Code != bridge.CodeInvalidArgument {
		t.Fatalf("err = %v, want %s", err, bridge.CodeInvalidArgument)
	}
}

func TestSaveErrorSurfacesAsOperationFailed(t *testing.T) {
	repo := &fakeSettingsRepo{err: errors.New("db down")}
	h := New(repo)

	_, err := h.setTheme(context.Background(), json.RawMessage(`{"theme":"dark"}`))
	var be *bridge.Error
	if !errors.As(err, &be) || be.Code != bridge.CodeOperationFailed {
		t.Fatalf("err = %v, want %s", err, bridge.CodeOperationFailed)
	}
}
