// Package handler exposes the settings operations over the bridge.
package handler

import (
	"context"
	"encoding/json"
	"log"

	"smartlink/host/internal/bridge"
	"smartlink/host/internal/settings/domain"
	"smartlink/host/internal/settings/repository"
)

type Handler struct {
	repo repository.Repository
}

func New(repo repository.Repository) *Handler {
	return &Handler{repo: repo}
}

// Register wires the settings operations into the router.
func (h *Handler) Register(r *bridge.Router) {
	r.Handle(bridge.OpSettingsGet, h.get)
	r.Handle(bridge.OpSettingsUpdate, h.update)
	r.Handle(bridge.OpSettingsGetTheme, h.getTheme)
	r.Handle(bridge.OpSettingsSetTheme, h.setTheme)
	r.Handle(bridge.OpSettingsExport, h.export)
	r.Handle(bridge.OpSettingsImport, h.import_)
}

// load returns the stored settings or the defaults when none exist.
func (h *Handler) load(ctx context.Context) (*domain.Settings, error) {
	s, err := h.repo.Get(ctx)
	if err != nil {
		log.Printf("settings: load failed: %v", err)
		return nil, bridge.NewError(bridge.CodeOperationFailed, "failed to load settings")
	}
	if s == nil {
		return domain.Default(), nil
	}
	return s, nil
}

func (h *Handler) save(ctx context.Context, s *domain.Settings) error {
	if err := h.repo.Save(ctx, s); err != nil {
		log.Printf("settings: save failed: %v", err)
		return bridge.NewError(bridge.CodeOperationFailed, "failed to save settings")
	}
	return nil
}

func (h *Handler) get(ctx context.Context, args json.RawMessage) (any, error) {
	return h.load(ctx)
}

type updateArgs struct {
	Theme         *string               `json:"theme"`
	Language      *string               `json:"language"`
	Notifications *domain.Notifications `json:"notifications"`
}

// update merges the provided fields into the stored document. Absent
// fields keep their current values.
func (h *Handler) update(ctx context.Context, args json.RawMessage) (any, error) {
	var in updateArgs
	if err := json.Unmarshal(args, &in); err != nil {
		return nil, bridge.NewError(bridge.CodeInvalidArgument, "malformed settings update")
	}
	s, err := h.load(ctx)
	if err != nil {
		return nil, err
	}
	if in.Theme != nil {
		s.Theme = *in.Theme
	}
	if in.Language != nil {
		s.Language = *in.Language
	}
	if in.Notifications != nil {
		s.Notifications = *in.Notifications
	}
	if err := s.Validate(); err != nil {
		return nil, bridge.NewError(bridge.CodeInvalidArgument, err.Error())
	}
	if err := h.save(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

func (h *Handler) getTheme(ctx context.Context, args json.RawMessage) (any, error) {
	s, err := h.load(ctx)
	if err != nil {
		return nil, err
	}
	return map[string]string{"theme": s.Theme}, nil
}

type setThemeArgs struct {
	Theme string `json:"theme"`
}

func (h *Handler) setTheme(ctx context.Context, args json.RawMessage) (any, error) {
	var in setThemeArgs
	if err := json.Unmarshal(args, &in); err != nil {
		return nil, bridge.NewError(bridge.CodeInvalidArgument, "malformed theme argument")
	}
	if !domain.ValidTheme(in.Theme) {
		return nil, bridge.NewError(bridge.CodeInvalidArgument, "theme must be light, dark or system")
	}
	s, err := h.load(ctx)
	if err != nil {
		return nil, err
	}
	s.Theme = in.Theme
	if err := h.save(ctx, s); err != nil {
		return nil, err
	}
	return map[string]string{"theme": s.Theme}, nil
}

// export returns the settings document serialized to a string so the UI
// can offer it as a downloadable backup.
func (h *Handler) export(ctx context.Context, args json.RawMessage) (any, error) {
	s, err := h.load(ctx)
	if err != nil {
		return nil, err
	}
	doc, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, bridge.NewError(bridge.CodeOperationFailed, "failed to export settings")
	}
	return map[string]string{"data": string(doc)}, nil
}

type importArgs struct {
	Data string `json:"data"`
}

// import_ replaces the stored document with a previously exported one.
func (h *Handler) import_(ctx context.Context, args json.RawMessage) (any, error) {
	var in importArgs
	if err := json.Unmarshal(args, &in); err != nil {
		return nil, bridge.NewError(bridge.CodeInvalidArgument, "malformed import argument")
	}
	var s domain.Settings
	if err := json.Unmarshal([]byte(in.Data), &s); err != nil {
		return nil, bridge.NewError(bridge.CodeInvalidArgument, "import data is not a settings document")
	}
	if err := s.Validate(); err != nil {
		return nil, bridge.NewError(bridge.CodeInvalidArgument, err.Error())
	}
	if err := h.save(ctx, &s); err != nil {
		return nil, err
	}
	return &s, nil
}
