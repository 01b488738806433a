// Package server assembles the bridge router from its dependencies: the
// interceptor chain, the auth and settings handlers, the system surface,
// and the capability services.
package server

import (
	authhandler "smartlink/host/internal/auth/handler"
	authservice "smartlink/host/internal/auth/service"
	"smartlink/host/internal/bridge"
	"smartlink/host/internal/bridge/interceptors"
	capabilityhandler "smartlink/host/internal/capability/handler"
	"smartlink/host/internal/policy/engine"
	"smartlink/host/internal/ratelimit"
	settingshandler "smartlink/host/internal/settings/handler"
	settingsrepo "smartlink/host/internal/settings/repository"
	"smartlink/host/internal/system"
	systemhandler "smartlink/host/internal/system/handler"
	"smartlink/host/internal/telemetry"

	"smartlink/host/internal/audit"
)

// Deps holds the wired dependencies for the bridge router.
type Deps struct {
	// Auth handles register/login/logout/refresh/get-session. Required.
	Auth *authservice.AuthService
	// Policy gates every operation. Required.
	Policy engine.Evaluator
	// SettingsRepo backs the settings operations. Required.
	SettingsRepo settingsrepo.Repository
	// Capabilities backs the non-auth domain operations. Required.
	Capabilities capabilityhandler.Services
	// Publisher delivers push events; nil disables push mirroring.
	Publisher capabilityhandler.Publisher
	// Limiter throttles login/register; nil disables throttling.
	Limiter *ratelimit.RedisLimiter
	// AuthRate is the limit applied through Limiter.
	AuthRate authhandler.RateLimit
	// Audit records operations; nil disables the audit trail.
	Audit audit.AuditLogger
	// Emitter receives telemetry events; nil disables event emission.
	Emitter telemetry.EventEmitter
	// Window controls the UI shell window; nil falls back to a no-op.
	Window system.WindowController
	// DBPinger reports store health for system:get-status; may be nil.
	DBPinger systemhandler.Pinger
	// Version is reported by system:get-status.
	Version string
}

// BuildRouter returns the fully wired router. Interceptor order is
// telemetry outermost, then authentication, then audit, so spans cover
// the whole request and audit entries carry the resolved identity.
func BuildRouter(deps Deps) *bridge.Router {
	chain := []bridge.Interceptor{
		interceptors.Telemetry(deps.Emitter, map[string]bool{
			bridge.OpSystemGetStatus: true,
		}),
		interceptors.Auth(deps.Auth, deps.Policy),
	}
	if deps.Audit != nil {
		chain = append(chain, interceptors.Audit(deps.Audit))
	}
	r := bridge.NewRouter(chain...)

	authhandler.New(deps.Auth, deps.Limiter, deps.AuthRate).Register(r)
	settingshandler.New(deps.SettingsRepo).Register(r)
	systemhandler.New(deps.Window, deps.DBPinger, deps.Version).Register(r)
	capabilityhandler.New(deps.Capabilities, deps.Publisher).Register(r)

	return r
}

// New assembles the router and the bridge server together, routing
// capability push events back out through the server's subscriptions.
// deps.Publisher is overridden.
func New(deps Deps) *bridge.Server {
	pub := &relayPublisher{}
	deps.Publisher = pub
	srv := bridge.NewServer(BuildRouter(deps))
	pub.srv = srv
	return srv
}

// relayPublisher breaks the construction cycle between the router's
// capability handlers and the server they publish through. srv is set
// before the server accepts connections.
type relayPublisher struct {
	srv *bridge.Server
}

func (p *relayPublisher) Publish(channel string, payload any) {
	if p.srv != nil {
		p.srv.Publish(channel, payload)
	}
}
