package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/artiefy/clinicafix-sub000/internal/config"
	"github.com/artiefy/clinicafix-sub000/internal/database"
	"github.com/artiefy/clinicafix-sub000/internal/handler"
	"github.com/artiefy/clinicafix-sub000/internal/middleware"
	"github.com/artiefy/clinicafix-sub000/internal/repository"
	"github.com/artiefy/clinicafix-sub000/internal/service"
	"github.com/artiefy/clinicafix-sub000/pkg/logger"
	"github.com/artiefy/clinicafix-sub000/pkg/metrics"
	"github.com/artiefy/clinicafix-sub000/pkg/utils"

	"github.com/gin-gonic/gin"
	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"
)

func main() {
	// 1. Load configuration
	cfg := config.LoadConfig()

	// 2. Build the service logger
	zlog, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer zlog.Sync()

	// 3. Initialize JWT utilities with config
	utils.InitJWT(
		cfg.JWT.AccessSecret,
		cfg.JWT.AccessTokenExpiry,
		cfg.JWT.RefreshTokenExpiry,
	)

	// 4. Initialize database connection
	db := database.Connect(cfg)

	// 5. Ensure the uploads directory exists
	if err := os.MkdirAll(cfg.Uploads.Dir, 0o755); err != nil {
		log.Fatalf("Failed to create uploads directory: %v", err)
	}

	// 6. Initialize repositories
	roomRepo := repository.NewRoomRepo(db)
	bedRepo := repository.NewBedRepo(db)
	patientRepo := repository.NewPatientRepo(db)
	dischargeRepo := repository.NewDischargeRepo(db)
	alertRepo := repository.NewAlertRepo(db)
	clinicalRepo := repository.NewClinicalRepo(db)
	predictionRepo := repository.NewPredictionRepo(db)
	userRepo := repository.NewUserRepo(db)

	// 7. Initialize services
	workflowService := service.NewWorkflowService(db, zlog)
	bedService := service.NewBedService(bedRepo, roomRepo, alertRepo, zlog)
	patientService := service.NewPatientService(patientRepo, dischargeRepo, zlog)
	clinicalService := service.NewClinicalService(clinicalRepo, patientRepo, zlog)
	predictionService := service.NewPredictionService(predictionRepo, zlog)
	authService := service.NewAuthService(userRepo)

	// 8. Setup Gin
	gin.SetMode(cfg.Server.GinMode)
	r := gin.Default()

	collector := metrics.NewCollector("clinicafix")
	workflowService.InstrumentWith(collector)
	r.Use(middleware.CORS(cfg))
	r.Use(middleware.RateLimiter(rate.Limit(cfg.RateLimit.RPS), cfg.RateLimit.Burst))
	r.Use(middleware.Metrics(collector))

	// Audio notes are served back as static assets
	r.Static(cfg.Uploads.BaseURL, cfg.Uploads.Dir)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "healthy", "service": "clinicafix"})
	})
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	// 9. Register API routes
	handlers := handler.Handlers{
		Auth:       handler.NewAuthHandler(authService),
		Bed:        handler.NewBedHandler(bedService, workflowService),
		Patient:    handler.NewPatientHandler(patientService, workflowService),
		Clinical:   handler.NewClinicalHandler(clinicalService, cfg.Uploads.Dir, cfg.Uploads.BaseURL),
		Prediction: handler.NewPredictionHandler(predictionService),
	}
	readCache := gocache.New(cfg.Cache.TTL, 2*cfg.Cache.TTL)
	handler.RegisterRoutes(r, handlers,
		[]gin.HandlerFunc{middleware.AuthMiddleware()},
		[]gin.HandlerFunc{middleware.Cache(readCache, cfg.Cache.TTL)},
	)

	// 10. Start the server with graceful shutdown
	go func() {
		log.Printf("Server starting on port %s", cfg.Server.Port)
		if err := r.Run(":" + cfg.Server.Port); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")
	log.Println("Server exited")
}
