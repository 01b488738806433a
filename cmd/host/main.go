package main

import (
	"context"
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"smartlink/host/internal/audit"
	auditrepo "smartlink/host/internal/audit/repository"
	authhandler "smartlink/host/internal/auth/handler"
	authservice "smartlink/host/internal/auth/service"
	capabilityhandler "smartlink/host/internal/capability/handler"
	"smartlink/host/internal/capability/stub"
	"smartlink/host/internal/config"
	"smartlink/host/internal/db"
	"smartlink/host/internal/policy/engine"
	"smartlink/host/internal/ratelimit"
	"smartlink/host/internal/security"
	"smartlink/host/internal/server"
	sessionrepo "smartlink/host/internal/session/repository"
	settingsrepo "smartlink/host/internal/settings/repository"
	"smartlink/host/internal/telemetry"
	telemetryotel "smartlink/host/internal/telemetry/otel"
	userrepo "smartlink/host/internal/user/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	providers, err := telemetryotel.NewProviders(ctx, cfg.OTLPEndpoint, "smartlink-host", cfg.OTLPInsecure)
	if err != nil {
		log.Fatalf("telemetry: %v", err)
	}
	providers.SetGlobal()

	conn, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	defer conn.Close()

	policy, err := engine.NewOPAEvaluator(ctx)
	if err != nil {
		log.Fatalf("policy: %v", err)
	}

	var limiter *ratelimit.RedisLimiter
	if cfg.RedisAddr != "" {
		limiter = ratelimit.NewRedisLimiter(redis.NewClient(&redis.Options{Addr: cfg.RedisAddr}))
	}

	auth := authservice.NewAuthService(
		userrepo.NewPostgresRepository(conn),
		sessionrepo.NewPostgresRepository(conn),
		security.NewHasher(cfg.Argon2MemoryKB, cfg.Argon2Time, cfg.Argon2Parallelism),
		security.NewTokenIssuer([]byte(cfg.JWTSecret), cfg.AccessTTL(), cfg.RefreshTTL()),
	)

	srv := server.New(server.Deps{
		Auth:         auth,
		Policy:       policy,
		SettingsRepo: settingsrepo.NewPostgresRepository(conn),
		Capabilities: capabilityhandler.Services{
			Agent:         stub.NewAgent(),
			Chat:          stub.NewChat(),
			Team:          stub.NewTeam(),
			Documents:     stub.NewDocuments(),
			Meetings:      stub.NewMeetings(),
			Analytics:     stub.NewAnalytics(),
			Notifications: stub.NewNotifications(),
			Integrations:  stub.NewIntegrations(),
			Voice:         stub.NewVoice(),
		},
		Limiter:  limiter,
		AuthRate: authhandler.RateLimit{Limit: cfg.AuthRateLimit, Window: cfg.RateWindow()},
		Audit:    audit.NewLogger(auditrepo.NewPostgresRepository(conn)),
		Emitter:  telemetryotel.NewEventEmitter(providers.LoggerProvider),
		DBPinger: conn,
		Version:  cfg.Version,
	})

	lis, err := net.Listen("tcp", cfg.BridgeAddr)
	if err != nil {
		log.Fatalf("listen: %v", err)
	}
	defer lis.Close()

	go func() {
		log.Printf("bridge listening on %s", cfg.BridgeAddr)
		if err := srv.Serve(ctx, lis); err != nil {
			log.Fatalf("serve: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("shutting down bridge...")
	cancel()
	lis.Close()
	time.Sleep(telemetry.ShutdownDrainDuration)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := providers.Shutdown(shutdownCtx); err != nil {
		log.Printf("telemetry shutdown: %v", err)
	}
	log.Println("bridge stopped")
}
