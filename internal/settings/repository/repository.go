package repository

import (
	"context"

	"smartlink/host/internal/settings/domain"
)

// Repository defines persistence for the application settings document.
type Repository interface {
	// Get returns the stored settings, or nil if none have been saved yet.
	Get(ctx context.Context) (*domain.Settings, error)
	// Save stores the settings document, replacing any previous one.
	Save(ctx context.Context, s *domain.Settings) error
}
