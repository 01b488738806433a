// migrate runs DB migrations from embedded SQL; use go run ./cmd/migrate.
//
// Reads DATABASE_URL directly so migrations can run in environments
// where the host's full configuration (JWT secret etc.) is absent.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"smartlink/host/internal/db/migrate"
)

func main() {
	direction := flag.String("direction", "up", "Migration direction: up or down")
	flag.Parse()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		fmt.Fprintln(os.Stderr, "DATABASE_URL is not set; create a .env from .env.example or set DATABASE_URL")
		os.Exit(1)
	}

	if err := migrate.Run(dsn, *direction); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			// Already at target version; success.
			return
		}
		fmt.Fprintln(os.Stderr, "migrate:", err)
		os.Exit(1)
	}
}
