package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"techconsult-api/internal/config"
	"techconsult-api/internal/handlers"
	appMiddleware "techconsult-api/internal/middleware"
	"techconsult-api/internal/repositories"
	"techconsult-api/internal/services"
	"techconsult-api/pkg/database"
)

func main() {
	_ = godotenv.Load()

	log := logrus.New()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	}

	// Database
	pool, err := database.NewPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer pool.Close()
	log.Info("connected to postgres")

	if err := database.Migrate(cfg.DatabaseURL); err != nil {
		log.Fatalf("migrations: %v", err)
	}
	log.Info("migrations applied")

	// Repositories
	userRepo := repositories.NewUserRepo(pool)
	appointmentRepo := repositories.NewAppointmentRepo(pool)

	// Services
	passwordSvc := services.NewPasswordService(cfg.BcryptCost)
	authSvc := services.NewAuthService(userRepo, passwordSvc, log)
	appointmentSvc := services.NewAppointmentService(appointmentRepo)

	// Handlers
	authHandlers := handlers.NewAuthHandlers(authSvc, log)
	appointmentHandlers := handlers.NewAppointmentHandlers(appointmentSvc, log)
	healthHandlers := handlers.NewHealthHandlers(pool)

	// Echo instance
	e := echo.New()
	e.HideBanner = true

	// Global middleware
	e.Pre(echoMiddleware.RemoveTrailingSlash())
	e.Use(echoMiddleware.RequestIDWithConfig(echoMiddleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(appMiddleware.RequestLogger(log))
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORS())

	// Health endpoints
	e.GET("/health", healthHandlers.Health)
	e.GET("/health/ready", healthHandlers.Ready)

	api := e.Group("/api")

	// Auth routes, rate limited per client IP
	auth := api.Group("/auth")
	auth.Use(echoMiddleware.RateLimiterWithConfig(echoMiddleware.RateLimiterConfig{
		Store: echoMiddleware.NewRateLimiterMemoryStoreWithConfig(echoMiddleware.RateLimiterMemoryStoreConfig{
			Rate:      rate.Limit(cfg.AuthRateLimit),
			Burst:     cfg.AuthRateBurst,
			ExpiresIn: 3 * time.Minute,
		}),
	}))
	auth.POST("/register", authHandlers.Register)
	auth.POST("/login", authHandlers.Login)
	auth.GET("/:id", authHandlers.GetByID)

	// Appointment routes: booking is public, list/get/delete is the
	// admin surface
	appointments := api.Group("/manage-appointments")
	appointments.POST("", appointmentHandlers.Create)
	appointments.GET("", appointmentHandlers.List)
	appointments.GET("/:id", appointmentHandlers.GetByID)
	appointments.DELETE("/:id", appointmentHandlers.Delete)

	// Start server with graceful shutdown
	go func() {
		log.Infof("listening on %s", cfg.Addr())
		if err := e.Start(cfg.Addr()); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server: %v", err)
		}
	}()

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	<-ch
	log.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Errorf("shutdown: %v", err)
	}
}
