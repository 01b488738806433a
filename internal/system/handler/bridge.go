// Package handler exposes the system operations over the bridge.
package handler

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"smartlink/host/internal/bridge"
	"smartlink/host/internal/system"
)

// Pinger reports backing-store reachability. *sql.DB satisfies it.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type Handler struct {
	window  system.WindowController
	db      Pinger
	version string
	started time.Time
}

func New(window system.WindowController, db Pinger, version string) *Handler {
	if window == nil {
		window = system.NopController{}
	}
	return &Handler{
		window:  window,
		db:      db,
		version: version,
		started: time.Now(),
	}
}

// Register wires the system operations into the router.
func (h *Handler) Register(r *bridge.Router) {
	r.Handle(bridge.OpSystemMinimize, h.minimize)
	r.Handle(bridge.OpSystemMaximize, h.maximize)
	r.Handle(bridge.OpSystemClose, h.close)
	r.Handle(bridge.OpSystemGetStatus, h.getStatus)
	r.Handle(bridge.OpSystemCheckUpdates, h.checkUpdates)
	r.Handle(bridge.OpSystemOfflineStatus, h.offlineStatus)
}

func (h *Handler) minimize(ctx context.Context, args json.RawMessage) (any, error) {
	if err := h.window.Minimize(); err != nil {
		log.Printf("system: minimize failed: %v", err)
		return nil, bridge.NewError(bridge.CodeOperationFailed, "failed to minimize window")
	}
	return nil, nil
}

func (h *Handler) maximize(ctx context.Context, args json.RawMessage) (any, error) {
	if err := h.window.Maximize(); err != nil {
		log.Printf("system: maximize failed: %v", err)
		return nil, bridge.NewError(bridge.CodeOperationFailed, "failed to maximize window")
	}
	return nil, nil
}

func (h *Handler) close(ctx context.Context, args json.RawMessage) (any, error) {
	if err := h.window.Close(); err != nil {
		log.Printf("system: close failed: %v", err)
		return nil, bridge.NewError(bridge.CodeOperationFailed, "failed to close window")
	}
	return nil, nil
}

type statusPayload struct {
	Status   string  `json:"status"`
	Database string  `json:"database"`
	Uptime   float64 `json:"uptime"`
	Version  string  `json:"version"`
}

// getStatus reports host health. Database trouble degrades the status
// instead of failing the call so the UI can render it.
func (h *Handler) getStatus(ctx context.Context, args json.RawMessage) (any, error) {
	out := statusPayload{
		Status:   "ok",
		Database: "connected",
		Uptime:   time.Since(h.started).Seconds(),
		Version:  h.version,
	}
	if h.db == nil {
		out.Database = "not configured"
	} else {
		pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()
		if err := h.db.PingContext(pingCtx); err != nil {
			out.Status = "degraded"
			out.Database = "error"
		}
	}
	return out, nil
}

// checkUpdates reports update availability. The host has no update feed
// yet, so it always reports the running version as current.
func (h *Handler) checkUpdates(ctx context.Context, args json.RawMessage) (any, error) {
	return map[string]any{
		"available": false,
		"version":   h.version,
	}, nil
}

// offlineStatus reports whether the host can reach its backing store.
func (h *Handler) offlineStatus(ctx context.Context, args json.RawMessage) (any, error) {
	offline := false
	if h.db != nil {
		pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()
		offline = h.db.PingContext(pingCtx) != nil
	}
	return map[string]any{"offline": offline}, nil
}
