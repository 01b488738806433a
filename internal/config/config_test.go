package config

import (
	"strings"
	"testing"
	"time"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("JWT_SECRET", testSecret)
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.BridgeAddr != "127.0.0.1:7420" {
		t.Errorf("BridgeAddr = %s", cfg.BridgeAddr)
	}
	if cfg.AccessTTL() != time.Hour {
		t.Errorf("AccessTTL = %v, want 1h", cfg.AccessTTL())
	}
	if cfg.RefreshTTL() != 168*time.Hour {
		t.Errorf("RefreshTTL = %v, want 168h", cfg.RefreshTTL())
	}
	if cfg.Argon2MemoryKB != 64*1024 || cfg.Argon2Time != 3 || cfg.Argon2Parallelism != 4 {
		t.Errorf("argon2 params = %d/%d/%d", cfg.Argon2MemoryKB, cfg.Argon2Time, cfg.Argon2Parallelism)
	}
	if cfg.AuthRateLimit != 10 || cfg.RateWindow() != time.Minute {
		t.Errorf("rate limit = %d/%v", cfg.AuthRateLimit, cfg.RateWindow())
	}
}

func TestLoadRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	if err == nil {
		t.Fatal("Load succeeded without JWT_SECRET")
	}
	if !strings.Contains(err.Error(), "JWT_SECRET") {
		t.Errorf("err = %v", err)
	}
}

func TestLoadRejectsShortSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "too-short")

	if _, err := Load(); err == nil {
		t.Fatal("Load accepted a short JWT_SECRET")
	}
}

func TestLoadRejectsWeakArgon2(t *testing.T) {
	setRequired(t)
	t.Setenv("ARGON2_MEMORY_KB", "1024")

	if _, err := Load(); err == nil {
		t.Fatal("Load accepted a weak ARGON2_MEMORY_KB")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	setRequired(t)
	t.Setenv("BRIDGE_ADDR", "127.0.0.1:9999")
	t.Setenv("JWT_ACCESS_TTL", "30m")
	t.Setenv("REDIS_ADDR", "localhost:6379")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.BridgeAddr != "127.0.0.1:9999" {
		t.Errorf("BridgeAddr = %s", cfg.BridgeAddr)
	}
	if cfg.AccessTTL() != 30*time.Minute {
		t.Errorf("AccessTTL = %v", cfg.AccessTTL())
	}
	if cfg.RedisAddr != "localhost:6379" {
		t.Errorf("RedisAddr = %s", cfg.RedisAddr)
	}
}

func TestTTLFallbacks(t *testing.T) {
	cfg := &Config{JWTAccessTTL: "garbage", JWTRefreshTTL: "-5m", AuthRateWindow: ""}
	if cfg.AccessTTL() != time.Hour {
		t.Errorf("AccessTTL = %v", cfg.AccessTTL())
	}
	if cfg.RefreshTTL() != 168*time.Hour {
		t.Errorf("RefreshTTL = %v", cfg.RefreshTTL())
	}
	if cfg.RateWindow() != time.Minute {
		t.Errorf("RateWindow = %v", cfg.RateWindow())
	}
}
