package main

import (
	"context"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	v1 "github.com/projectdesk-api/api/v1"
	"github.com/projectdesk-api/config"
	"github.com/projectdesk-api/database"
	"github.com/projectdesk-api/lib/notify"
	"github.com/projectdesk-api/lib/otpstore"
	"github.com/projectdesk-api/middleware"
	"github.com/projectdesk-api/repositories"
	"github.com/projectdesk-api/routes"
	"github.com/projectdesk-api/services"
	"github.com/projectdesk-api/utils"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func main() {
	config.LoadEnv()

	cfg, err := config.Load()
	if err != nil {
		utils.Logger.Fatalf("Invalid configuration: %v", err)
	}
	utils.InitLogger("projectdesk-api", cfg.LogLevel)

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		utils.Logger.Fatalf("Failed to initialize database: %v", err)
	}

	userRepo := repositories.NewUserRepository(db)
	projectRepo := repositories.NewProjectRepository(db)
	requestRepo := repositories.NewAccessRequestRepository(db)
	gitRepoRepo := repositories.NewGitRepositoryRepository(db)
	linkRepo := repositories.NewProjectLinkRepository(db)
	docRepo := repositories.NewHelpDocumentRepository(db)

	var codes services.OTPStore
	if cfg.RedisURL != "" {
		store, err := otpstore.NewRedisStore(cfg.RedisURL, "projectdesk:")
		if err != nil {
			utils.Logger.Fatalf("Failed to configure Redis: %v", err)
		}
		defer store.Close()
		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := store.Ping(pingCtx); err != nil {
			utils.Logger.Fatalf("Failed to reach Redis: %v", err)
		}
		cancel()
		codes = store
		utils.Logger.Info("OTP codes stored in Redis")
	} else {
		codes = otpstore.NewMemoryStore()
		utils.Logger.Warn("REDIS_URL not set, OTP codes kept in process memory")
	}

	var sms services.SMSSender = notify.LogSender{}
	if cfg.TwilioAccountSID != "" && cfg.TwilioAuthToken != "" {
		sms = notify.NewTwilioSender(cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.TwilioFromPhone)
	}

	var mailer services.Mailer = notify.LogMailer{}
	if cfg.SendGridAPIKey != "" {
		mailer = notify.NewSendGridMailer(cfg.SendGridAPIKey, cfg.SendGridFromEmail)
	}

	tokenService := services.NewTokenService(cfg.JWTSecret, userRepo, cfg.AuthVerifySignature)
	authService := services.NewAuthService(userRepo, tokenService)
	deps := v1.Dependencies{
		Tokens:         tokenService,
		Auth:           authService,
		OTP:            services.NewOTPService(userRepo, codes, sms, authService, cfg.OTPTTL, cfg.OTPLength),
		AccessRequests: services.NewAccessRequestService(requestRepo, userRepo, projectRepo, mailer),
		Users:          services.NewUserService(userRepo),
		Projects:       services.NewProjectService(projectRepo, userRepo),
		Resources:      services.NewResourceService(projectRepo, gitRepoRepo, linkRepo, docRepo),
		RateLimiter:    middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst),
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	if err := middleware.RegisterMetrics(registry); err != nil {
		utils.Logger.Fatalf("Failed to register metrics: %v", err)
	}

	// Initialize router
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestLogger(), middleware.Metrics())

	// CORS configuration
	corsConfig := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders:    []string{middleware.RequestIDHeader},
		AllowCredentials: true,
	}
	if len(cfg.CORSOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.CORSOrigins
	} else {
		corsConfig.AllowOriginFunc = func(string) bool { return true }
	}
	router.Use(cors.New(corsConfig))

	routes.SetupRoutes(router, deps, registry)

	// Start server
	utils.Logger.Infof("ProjectDesk API starting on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		utils.Logger.Fatalf("Failed to start server: %v", err)
	}
}
