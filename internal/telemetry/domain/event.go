package domain

import (
	"encoding/json"
	"time"
)

// Event is one telemetry event emitted by the host, e.g. a handled
// bridge request or an auth outcome.
type Event struct {
	UserID    string
	SessionID string
	EventType string
	Source    string
	Metadata  json.RawMessage
	CreatedAt time.Time
}
