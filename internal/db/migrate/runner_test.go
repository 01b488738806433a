package migrate

import (
	"strings"
	"testing"
)

func TestRun_EmptyDSN(t *testing.T) {
	err := Run("", "up")
	if err == nil {
		t.Fatal("Run with empty DSN should return error")
	}
	if !strings.Contains(err.Error(), "DATABASE_URL") {
		t.Errorf("error = %q, should name DATABASE_URL", err)
	}
}

func TestRun_InvalidDirection(t *testing.T) {
	for _, direction := range []string{"", "sideways", "UP", "Up"} {
		t.Run("direction "+direction, func(t *testing.T) {
			err := Run("postgres://localhost/smartlink", direction)
			if err == nil {
				t.Fatalf("Run with direction %q should return error", direction)
			}
			if !strings.Contains(err.Error(), "direction") {
				t.Errorf("error = %q, should mention direction", err)
			}
		})
	}
}

// Valid directions pass validation; the failure, if any, comes from the
// database connection, never from direction parsing.
func TestRun_ValidDirections(t *testing.T) {
	for _, direction := range []string{"up", "down"} {
		t.Run(direction, func(t *testing.T) {
			err := Run("postgres://localhost/nonexistent", direction)
			if err != nil && strings.Contains(err.Error(), "direction") {
				t.Errorf("direction %q rejected: %v", direction, err)
			}
		})
	}
}

func TestRun_InvalidDSN(t *testing.T) {
	for _, dsn := range []string{"invalid-dsn", "://localhost/smartlink", "postgres://"} {
		t.Run(dsn, func(t *testing.T) {
			if err := Run(dsn, "up"); err == nil {
				t.Errorf("Run(%q) should return error", dsn)
			}
		})
	}
}

// The embedded migration set itself must always load; any Run error against
// an unreachable database comes after the source driver was built.
func TestRun_SourceDriverLoads(t *testing.T) {
	err := Run("postgres://localhost/nonexistent", "up")
	if err != nil && strings.Contains(err.Error(), "migrate source") {
		t.Errorf("embedded migrations failed to load: %v", err)
	}
}
