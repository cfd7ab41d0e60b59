package api

import (
	"github.com/google/uuid"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/SamPomeroy/aise26-w12d2-workforce-analytics-api/internal/api/handler"
	"github.com/SamPomeroy/aise26-w12d2-workforce-analytics-api/internal/api/middleware"
	"github.com/SamPomeroy/aise26-w12d2-workforce-analytics-api/internal/core/domain"
	"github.com/SamPomeroy/aise26-w12d2-workforce-analytics-api/internal/core/ports"
	"github.com/SamPomeroy/aise26-w12d2-workforce-analytics-api/internal/core/service"
	"github.com/SamPomeroy/aise26-w12d2-workforce-analytics-api/internal/infrastructure/config"
	mongorepo "github.com/SamPomeroy/aise26-w12d2-workforce-analytics-api/internal/infrastructure/db/mongo"
	"github.com/SamPomeroy/aise26-w12d2-workforce-analytics-api/internal/pkg/ratelimit"
	"github.com/SamPomeroy/aise26-w12d2-workforce-analytics-api/internal/pkg/security"
)

// NewRouter builds the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, dispatcher ports.TaskDispatcher, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     cfg.CORSOrigins,
		AllowCredentials: true,
	}))
	e.Use(middleware.RequestLogger(log))
	e.Use(echoprometheus.NewMiddleware("workforce"))

	// --- Dependencies ---
	userRepo := mongorepo.NewUserRepository(db)
	jobRepo := mongorepo.NewJobRepository(db)
	skillRepo := mongorepo.NewSkillRepository(db)

	codec := security.NewTokenCodec(cfg.SecretKey, cfg.TokenTTL())

	authService := service.NewAuthService(userRepo, codec, log)
	jobService := service.NewJobService(jobRepo, dispatcher, log)
	skillService := service.NewSkillService(skillRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	jobHandler := handler.NewJobHandler(jobService)
	skillHandler := handler.NewSkillHandler(skillService)
	infoHandler := handler.NewInfoHandler()

	auth := middleware.Auth(codec, userRepo)
	optionalAuth := middleware.OptionalAuth(codec, userRepo)

	apiLimit := middleware.RateLimit(
		ratelimit.New(rdb, "rate_limit", cfg.RateLimit.Requests, cfg.RateLimit.Window(), log),
		"rate_limit",
	)
	loginLimit := middleware.RateLimit(
		ratelimit.New(rdb, "rate_limit:login", cfg.RateLimit.LoginRequests, cfg.RateLimit.LoginWindow(), log),
		"rate_limit:login",
	)

	// --- Service info ---
	e.GET("/", infoHandler.Root)
	e.GET("/v1", infoHandler.V1)
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Health probes (no auth, no throttling) ---
	healthHandler := handler.NewHealthHandler()
	healthDetailedHandler := handler.NewHealthDetailedHandler(db, rdb)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/detailed", healthDetailedHandler.Detailed)

	// --- Auth routes ---
	authGroup := e.Group("/v1/auth")
	authGroup.POST("/register", authHandler.Register)
	authGroup.POST("/login", authHandler.Login, loginLimit)
	authGroup.GET("/me", authHandler.Me, auth)

	// --- Job postings ---
	jobs := e.Group("/v1/jobs", apiLimit)
	jobs.GET("", jobHandler.List, optionalAuth)
	jobs.GET("/:id", jobHandler.Get, optionalAuth)
	jobs.POST("", jobHandler.Create, auth, middleware.RBAC(domain.RoleEmployer, domain.RoleAdmin))
	jobs.PUT("/:id", jobHandler.Update, auth, middleware.RBAC(domain.RoleEmployer, domain.RoleAdmin))
	jobs.PATCH("/:id/deactivate", jobHandler.Deactivate, auth, middleware.RBAC(domain.RoleEmployer, domain.RoleAdmin))
	jobs.DELETE("/:id", jobHandler.Delete, auth, middleware.RBAC(domain.RoleAdmin))
	jobs.POST("/:id/analyze", jobHandler.Analyze, auth)

	// --- Skill catalogue ---
	skills := e.Group("/v1/skills", apiLimit)
	skills.GET("", skillHandler.List, optionalAuth)
	skills.GET("/trending/top", skillHandler.Trending, optionalAuth)
	skills.GET("/name/:name", skillHandler.GetByName, optionalAuth)
	skills.GET("/:id", skillHandler.Get, optionalAuth)
	skills.POST("", skillHandler.Create, auth, middleware.RBAC(domain.RoleAdmin))
	skills.PUT("/:id", skillHandler.Update, auth, middleware.RBAC(domain.RoleAdmin))
	skills.DELETE("/:id", skillHandler.Delete, auth, middleware.RBAC(domain.RoleAdmin))

	return e
}
