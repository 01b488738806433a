package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"smartlink/host/internal/settings/domain"
)

// The settings document lives in a single jsonb row keyed by a fixed id.
const settingsRowID = "app"

type PostgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository returns a settings repository that uses the given db for persistence.
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Get returns the stored settings document, or nil if none has been saved yet.
// It returns an error only for database failures, not for the missing row.
func (r *PostgresRepository) Get(ctx context.Context) (*domain.Settings, error) {
	var doc []byte
	err := r.db.QueryRowContext(ctx,
		"SELECT document FROM app_settings WHERE id = $1", settingsRowID).Scan(&doc)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	var s domain.Settings
	if err := json.Unmarshal(doc, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// Save stores the settings document, replacing any previous one.
func (r *PostgresRepository) Save(ctx context.Context, s *domain.Settings) error {
	doc, err := json.Marshal(s)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO app_settings (id, document, updated_at) VALUES ($1, $2, $3)
		 ON CONFLICT (id) DO UPDATE SET document = EXCLUDED.document, updated_at = EXCLUDED.updated_at`,
		settingsRowID, doc, time.Now().UTC())
	return err
}
