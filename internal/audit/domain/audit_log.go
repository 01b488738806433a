package domain

import "time"

// AuditLog represents one recorded operation against the host.
type AuditLog struct {
	ID        string
	UserID    string
	Action    string
	Resource  string
	Metadata  string
	CreatedAt time.Time
}
