package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"timeshare_manager/internal/config"
	"timeshare_manager/internal/handler"
	"timeshare_manager/internal/middleware"
	"timeshare_manager/internal/repository"
	"timeshare_manager/internal/service"
	"timeshare_manager/internal/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.Env == "development" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading, relying on environment variables")
	}

	// --- Configuration ---
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// --- Database Connection ---
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	dbPool, err := config.ConnectDB(ctx, cfg.DSN(), logger)
	cancel()
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer dbPool.Close()

	// --- Migrations ---
	if err := config.Migrate(dbPool, logger); err != nil {
		logger.Fatal("Failed to migrate database", zap.Error(err))
	}

	// --- Initialize Utilities ---
	jwtUtil, err := utils.NewJWTUtil(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTAudience, cfg.TokenTTL)
	if err != nil {
		logger.Fatal("Failed to initialize JWT util", zap.Error(err))
	}

	// --- Initialize Repositories ---
	userRepo := repository.NewUserRepository(dbPool)
	roleRepo := repository.NewRoleRepository(dbPool)
	placeRepo := repository.NewPlaceRepository(dbPool)
	roomRepo := repository.NewRoomRepository(dbPool)
	timeshareRepo := repository.NewTimeshareRepository(dbPool)

	// --- Initialize Services ---
	authService := service.NewAuthService(userRepo, roleRepo, jwtUtil, cfg.PasswordPolicy(), logger)
	placeService := service.NewPlaceService(placeRepo, roomRepo)
	timeshareService := service.NewTimeshareService(timeshareRepo)

	// Seed the fixed role set at startup so grants and registration work
	if result, err := authService.SeedRoles(context.Background()); err != nil {
		logger.Fatal("Failed to seed roles", zap.Error(err))
	} else {
		logger.Info("role seeding finished", zap.String("message", result.Message))
	}

	// --- Initialize Handlers ---
	authHandler := handler.NewAuthHandler(authService, logger)
	placeHandler := handler.NewPlaceHandler(placeService, logger)
	timeshareHandler := handler.NewTimeshareHandler(timeshareService, logger)

	// --- Setup Gin Router ---
	if cfg.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.AllowedOrigins()
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	// --- Initialize Middlewares ---
	jwtAuthMW := middleware.JWTAuthMiddleware(jwtUtil)
	adminMW := middleware.AdminMiddleware()
	staffMW := middleware.StaffMiddleware()

	// --- Register Routes ---
	apiGroup := router.Group("/api/v1")
	authHandler.RegisterAuthRoutes(apiGroup, jwtAuthMW, adminMW)
	placeHandler.RegisterPlaceRoutes(apiGroup, jwtAuthMW, adminMW)
	timeshareHandler.RegisterTimeshareRoutes(apiGroup, jwtAuthMW, staffMW, adminMW)

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		if err := dbPool.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "db": "unhealthy"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "db": "healthy"})
	})

	// --- Start Server ---
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: router,
	}

	go func() {
		logger.Info("server starting", zap.String("port", cfg.ServerPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("listen failed", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}

	logger.Info("server exiting")
}
