// Package telemetry defines the host's telemetry event surface and
// helpers for emitting events without blocking request handling.
package telemetry

import (
	"context"

	"smartlink/host/internal/telemetry/domain"
)

// EventEmitter emits telemetry events (e.g. to OTel Logs). Best-effort; callers log and ignore errors.
type EventEmitter interface {
	Emit(ctx context.Context, event *domain.Event) error
}
