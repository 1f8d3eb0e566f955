package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/lumenhotels/backoffice/docs"
	"github.com/lumenhotels/backoffice/internal/api/handler"
	"github.com/lumenhotels/backoffice/internal/api/middleware"
	"github.com/lumenhotels/backoffice/internal/core/domain"
	"github.com/lumenhotels/backoffice/internal/core/ports"
	"github.com/lumenhotels/backoffice/internal/core/service"
	"github.com/lumenhotels/backoffice/internal/infrastructure/config"
	mongorepo "github.com/lumenhotels/backoffice/internal/infrastructure/db/mongo"
	redisstore "github.com/lumenhotels/backoffice/internal/infrastructure/db/redis"
	httphandlers "github.com/lumenhotels/backoffice/internal/infrastructure/http/handlers"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, audit ports.AuditRecorder, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("backoffice"))

	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Dependencies ---
	userRepo := mongorepo.NewUserRepository(db)
	taskRepo := mongorepo.NewHousekeepingRepository(db)
	roomRepo := mongorepo.NewRoomRepository(db)
	roomTypeRepo := mongorepo.NewRoomTypeRepository(db)
	ratePlanRepo := mongorepo.NewRatePlanRepository(db)
	auditRepo := mongorepo.NewAuditRepository(db)
	tokenStore := redisstore.NewResetTokenStore(rdb)

	authService := service.NewAuthService(userRepo, tokenStore, cfg.JWTSecret, cfg.BaseURL, 24*time.Hour, log)
	userService := service.NewUserService(userRepo, log)
	taskService := service.NewHousekeepingService(taskRepo, log)
	roomService := service.NewRoomService(roomRepo, log)
	roomTypeService := service.NewRoomTypeService(roomTypeRepo, log)
	ratePlanService := service.NewRatePlanService(ratePlanRepo, log)
	auditService := service.NewAuditReadService(auditRepo)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService, audit)
	taskHandler := handler.NewHousekeepingHandler(taskService, audit)
	roomHandler := handler.NewRoomHandler(roomService, audit)
	roomTypeHandler := handler.NewRoomTypeHandler(roomTypeService, audit)
	ratePlanHandler := handler.NewRatePlanHandler(ratePlanService, audit)
	auditHandler := handler.NewAuditHandler(auditService)

	// --- Public routes ---
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/forgot-password", authHandler.ForgotPassword)
	e.POST("/auth/reset-password", authHandler.ResetPassword)

	// --- Health probes (no auth required) ---
	healthHandler := httphandlers.NewHealthHandler()
	readinessHandler := httphandlers.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Authenticated API ---
	v1 := e.Group("/v1", middleware.Auth(cfg.JWTSecret))

	adminOnly := middleware.RequireRole(domain.RoleAdmin)
	staff := middleware.RequireRole(domain.RoleAdmin, domain.RoleHousekeeping)

	// Housekeeping: admins and housekeeping staff.
	hk := v1.Group("/housekeeping", staff)
	hk.GET("", taskHandler.List)
	hk.POST("", taskHandler.Create)
	hk.GET("/:id", taskHandler.Get)
	hk.PUT("/:id", taskHandler.Update)
	hk.DELETE("/:id", taskHandler.Delete)

	// Rooms: reads for staff, writes admin-only.
	rooms := v1.Group("/rooms", staff)
	rooms.GET("", roomHandler.List)
	rooms.GET("/:id", roomHandler.Get)
	rooms.POST("", roomHandler.Create, adminOnly)
	rooms.PUT("/:id", roomHandler.Update, adminOnly)
	rooms.DELETE("/:id", roomHandler.Delete, adminOnly)

	v1.GET("/availability", roomHandler.Availability, staff)

	roomTypes := v1.Group("/room-types", staff)
	roomTypes.GET("", roomTypeHandler.List)
	roomTypes.GET("/:id", roomTypeHandler.Get)
	roomTypes.POST("", roomTypeHandler.Create, adminOnly)
	roomTypes.PUT("/:id", roomTypeHandler.Update, adminOnly)
	roomTypes.DELETE("/:id", roomTypeHandler.Delete, adminOnly)

	ratePlans := v1.Group("/rate-plans", staff)
	ratePlans.GET("", ratePlanHandler.List)
	ratePlans.GET("/:id", ratePlanHandler.Get)
	ratePlans.POST("", ratePlanHandler.Create, adminOnly)
	ratePlans.PUT("/:id", ratePlanHandler.Update, adminOnly)
	ratePlans.DELETE("/:id", ratePlanHandler.Delete, adminOnly)

	// Account management and the audit trail are admin-only.
	users := v1.Group("/users", adminOnly)
	users.GET("", userHandler.List)
	users.POST("", userHandler.Create)
	users.GET("/:id", userHandler.Get)
	users.PUT("/:id", userHandler.Update)
	users.DELETE("/:id", userHandler.Delete)

	v1.GET("/audit-log", auditHandler.List, adminOnly)

	return e
}
