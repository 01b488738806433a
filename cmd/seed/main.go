// seed inserts development sample data for local testing.
// Idempotent: skips inserts if the dev user (dev@example.com) already exists.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"

	"smartlink/host/internal/config"
	"smartlink/host/internal/db"
	"smartlink/host/internal/security"
	settingsdomain "smartlink/host/internal/settings/domain"
	settingsrepo "smartlink/host/internal/settings/repository"
	userdomain "smartlink/host/internal/user/domain"
	userrepo "smartlink/host/internal/user/repository"
)

const (
	devUserEmail = "dev@example.com"
	devPassword  = "password123"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is not set; create a .env from .env.example or set DATABASE_URL")
	}

	conn, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	defer conn.Close()

	ctx := context.Background()
	users := userrepo.NewPostgresRepository(conn)

	existing, err := users.GetByEmail(ctx, devUserEmail)
	if err != nil {
		log.Fatalf("seed check: %v", err)
	}
	if existing != nil {
		log.Println("Seed already applied (dev@example.com exists). Skipping.")
		os.Exit(0)
	}

	hasher := security.NewHasher(cfg.Argon2MemoryKB, cfg.Argon2Time, cfg.Argon2Parallelism)
	passwordHash, err := hasher.Hash([]byte(devPassword))
	if err != nil {
		log.Fatalf("hash password: %v", err)
	}

	now := time.Now().UTC()
	if err := users.Create(ctx, &userdomain.User{
		ID:           uuid.New().String(),
		Email:        devUserEmail,
		PasswordHash: passwordHash,
		FirstName:    "Dev",
		LastName:     "User",
		JobTitle:     "Developer",
		Role:         userdomain.RoleAdmin,
		Status:       userdomain.StatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}); err != nil {
		log.Fatalf("create dev user: %v", err)
	}

	settings := settingsrepo.NewPostgresRepository(conn)
	if err := settings.Save(ctx, settingsdomain.Default()); err != nil {
		log.Fatalf("save default settings: %v", err)
	}

	log.Println("Seed completed successfully.")
	fmt.Printf("Dev login: %s / %s\n", devUserEmail, devPassword)
}
