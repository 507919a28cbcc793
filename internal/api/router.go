package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/inkpress/blog-backend/internal/api/handler"
	"github.com/inkpress/blog-backend/internal/api/middleware"
	"github.com/inkpress/blog-backend/internal/core/service"
	"github.com/inkpress/blog-backend/internal/infrastructure/config"
	mongodb "github.com/inkpress/blog-backend/internal/infrastructure/db/mongo"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("blog"))
	e.Use(middleware.RateLimit(rdb, cfg.RateLimitMax, cfg.RateLimitWindow, log))

	// --- Dependencies ---
	users := mongodb.NewUserRepository(db)
	hasher := service.NewPasswordHasher(cfg.BcryptCost)
	tokens := service.NewTokenService(cfg.JWTSecret, cfg.JWTExpiresIn)
	authService := service.NewAuthService(users, hasher, tokens, log)
	authHandler := handler.NewAuthHandler(authService)
	authGate := middleware.Auth(tokens, users)

	// --- Auth routes ---
	e.POST("/signup", authHandler.SignUp)
	e.POST("/login", authHandler.Login)
	e.PATCH("/updatePassword", authHandler.UpdatePassword, authGate)
	e.GET("/me", authHandler.Me, authGate)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
