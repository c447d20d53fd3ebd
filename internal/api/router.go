package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/authlab/secure-api/internal/api/handler"
	"github.com/authlab/secure-api/internal/api/middleware"
	"github.com/authlab/secure-api/internal/core/domain"
	"github.com/authlab/secure-api/internal/core/ports"
	"github.com/authlab/secure-api/internal/core/service"
	"github.com/authlab/secure-api/internal/infrastructure/config"
	redisdb "github.com/authlab/secure-api/internal/infrastructure/db/redis"
	"github.com/authlab/secure-api/internal/pkg/clock"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// rdb is optional; when present it backs the token revocation check.
func NewRouter(cfg *config.Config, store ports.CredentialStore, rdb *redis.Client, log zerolog.Logger) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("secureapi"))

	// --- Dependencies ---
	var revocations ports.RevocationChecker
	if rdb != nil {
		revocations = redisdb.NewRevocationList(rdb)
	}

	hasher := service.NewBcryptHasher()
	tokenService := service.NewJWTService(cfg.JWTSecret, cfg.TokenTTL, clock.NewRealClock(), revocations)
	authService, err := service.NewAuthService(store, hasher, tokenService)
	if err != nil {
		return nil, err
	}

	authHandler := handler.NewAuthHandler(authService)
	siteHandler := handler.NewSiteHandler()

	basicGate := middleware.BasicAuth(authService, cfg.BasicRealm)
	tokenGate := middleware.Auth(tokenService)

	// --- Public routes ---
	e.GET("/", siteHandler.Home)
	e.POST("/login", authHandler.Login)

	// --- Protected routes ---
	e.GET("/basic-protected", siteHandler.BasicProtected, basicGate)
	e.GET("/jwt-protected", siteHandler.JWTProtected, tokenGate)
	e.GET("/admin-only", siteHandler.AdminOnly, tokenGate, middleware.RBAC(domain.RoleAdmin))

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – is the revocation list reachable?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e, nil
}
