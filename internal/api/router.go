package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/adminpanel/admin-system/internal/api/handler"
	"github.com/adminpanel/admin-system/internal/api/middleware"
	"github.com/adminpanel/admin-system/internal/core/domain"
	"github.com/adminpanel/admin-system/internal/core/ports"
	"github.com/adminpanel/admin-system/internal/core/service"
	"github.com/adminpanel/admin-system/internal/core/token"
	"github.com/adminpanel/admin-system/internal/infrastructure/config"
	pgstore "github.com/adminpanel/admin-system/internal/infrastructure/db/postgres"
	redisstore "github.com/adminpanel/admin-system/internal/infrastructure/db/redis"
	"github.com/adminpanel/admin-system/internal/infrastructure/http/handlers"
)

// NewRouter builds and returns the Echo instance with all routes
// registered. rdb may be nil; reset tokens then stay redeemable until
// their natural expiry.
func NewRouter(db *gorm.DB, rdb *redis.Client, cfg *config.Config, mailer ports.Mailer, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("admin"))

	// --- Dependencies ---
	userRepo := pgstore.NewUserRepository(db)
	departmentRepo := pgstore.NewDepartmentRepository(db)

	sessionCodec := token.NewSessionCodec(cfg.JWTSecret, cfg.JWTTTL)
	resetCodec := token.NewResetCodec(cfg.ResetSecret, cfg.ResetTTL)

	var marker ports.ResetTokenMarker
	if rdb != nil {
		marker = redisstore.NewResetTokenMarker(rdb, cfg.ResetTTL)
	}

	authService := service.NewAuthService(userRepo, departmentRepo, sessionCodec, resetCodec, marker, mailer, cfg.FrontendURL, log)
	userService := service.NewUserService(userRepo, departmentRepo, log)
	departmentService := service.NewDepartmentService(departmentRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService, log)
	departmentHandler := handler.NewDepartmentHandler(departmentService)

	guard := middleware.Auth(sessionCodec, userRepo)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Auth routes (public) ---
	e.POST("/auth/signup", authHandler.SignUp)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/forgot-password", authHandler.ForgotPassword)
	e.POST("/auth/reset-password", authHandler.ResetPassword)

	// --- User management (admin only) ---
	users := e.Group("/users", guard, adminOnly)
	users.GET("", userHandler.List)
	users.POST("", userHandler.Create)
	users.GET("/:id", userHandler.Get)
	users.PUT("/:id", userHandler.Update)
	users.DELETE("/:id", userHandler.Delete)

	// --- Departments: reading is open, writing is admin only ---
	e.GET("/departments", departmentHandler.List)
	e.POST("/departments", departmentHandler.Create, guard, adminOnly)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
