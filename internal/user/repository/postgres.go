package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"smartlink/host/internal/user/domain"
)

type PostgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository returns a user repository that uses the given db for persistence.
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const userColumns = `id, email, password_hash, first_name, last_name, avatar, job_title, department, role, status, last_login_at, created_at, updated_at`

// GetByID returns the user for id, or nil if not found.
// It returns an error only for database failures, not for missing rows.
func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return scanUser(row)
}

// GetByEmail returns the user with the given email, or nil if not found.
// The caller is responsible for lowercase normalization.
func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
	return scanUser(row)
}

// Create persists the user. The user must have ID set; it is not assigned here.
func (r *PostgresRepository) Create(ctx context.Context, u *domain.User) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO users (id, email, password_hash, first_name, last_name, avatar, job_title, department, role, status, last_login_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		u.ID, u.Email, u.PasswordHash, u.FirstName, u.LastName,
		nullString(u.Avatar), nullString(u.JobTitle), nullString(u.Department),
		string(u.Role), string(u.Status), nullTime(u.LastLoginAt), u.CreatedAt, u.UpdatedAt,
	)
	return err
}

// Update overwrites the user's mutable profile fields and bumps updated_at.
func (r *PostgresRepository) Update(ctx context.Context, u *domain.User) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE users
		SET first_name = $2, last_name = $3, avatar = $4, job_title = $5, department = $6,
		    role = $7, status = $8, updated_at = $9
		WHERE id = $1`,
		u.ID, u.FirstName, u.LastName,
		nullString(u.Avatar), nullString(u.JobTitle), nullString(u.Department),
		string(u.Role), string(u.Status), time.Now().UTC(),
	)
	return err
}

// UpdateLastLogin sets the user's last-login timestamp.
func (r *PostgresRepository) UpdateLastLogin(ctx context.Context, id string, at time.Time) error {
	_, err := r.db.ExecContext(ctx, `UPDATE users SET last_login_at = $2 WHERE id = $1`, id, at)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*domain.User, error) {
	var (
		u                           domain.User
		avatar, jobTitle, dept      sql.NullString
		role, status                string
		lastLogin                   sql.NullTime
	)
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.FirstName, &u.LastName,
		&avatar, &jobTitle, &dept, &role, &status, &lastLogin, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	u.Avatar = avatar.String
	u.JobTitle = jobTitle.String
	u.Department = dept.String
	u.Role = domain.Role(role)
	u.Status = domain.Status(status)
	if lastLogin.Valid {
		t := lastLogin.Time
		u.LastLoginAt = &t
	}
	return &u, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
