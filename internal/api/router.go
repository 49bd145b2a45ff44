package api

import (
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"

	_ "github.com/userhub/users-api/docs"
	"github.com/userhub/users-api/internal/api/handler"
	"github.com/userhub/users-api/internal/core/service"
	"github.com/userhub/users-api/internal/infrastructure/config"
	"github.com/userhub/users-api/internal/infrastructure/db/postgres"
	"github.com/userhub/users-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(pool *pgxpool.Pool, rdb *goredis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("users_api"))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     []string{cfg.FrontendURL},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders:     []string{echo.HeaderContentType, echo.HeaderAuthorization},
		AllowCredentials: true,
	}))

	// --- Dependencies ---
	userRepo := postgres.NewUserRepository(pool)
	hasher := service.NewBcryptHasher(0)
	tokens := service.NewJWTCodec(cfg.JWTSecret, cfg.TokenTTL)
	throttle := redis.NewLoginThrottle(rdb, cfg.Throttle.MaxAttempts, cfg.Throttle.Window)

	authService := service.NewAuthService(userRepo, hasher, tokens, throttle, log)
	userService := service.NewUserService(userRepo, hasher, log)

	authHandler := handler.NewAuthHandler(authService, tokens.TTL(), cfg.IsProduction())
	userHandler := handler.NewUserHandler(userService)

	// --- API routes ---
	v1 := e.Group("/api/v1")
	v1.POST("/auth/register", authHandler.Register)
	v1.POST("/auth/login", authHandler.Login)
	v1.GET("/auth/logout", authHandler.Logout)
	v1.GET("/auth/verify", authHandler.Verify)

	v1.GET("/users", userHandler.List)
	v1.GET("/users/:id", userHandler.Get)
	v1.PUT("/users/:id", userHandler.Update)
	v1.DELETE("/users/:id", userHandler.Delete)

	// --- Health probes and operational endpoints ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(pool, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
