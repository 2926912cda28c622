// @title           AdsGenie Backend API
// @version         1.0.0
// @description     Backend API for AdsGenie. Generates advertisement image variations from a product photo and animates ad images into short videos.

// @contact.name   API Support
// @contact.email  support@example.com

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

package main

import (
	"context"
	"log"
	"net/http"
	"net/url"

	"adsgenie-backend/docs"
	"adsgenie-backend/internal/aigateway"
	"adsgenie-backend/internal/config"
	"adsgenie-backend/internal/database"
	"adsgenie-backend/internal/handlers"
	"adsgenie-backend/internal/imagekit"
	"adsgenie-backend/internal/middleware"
	"adsgenie-backend/internal/services"
	"adsgenie-backend/internal/supabase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Set Gin mode
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Update Swagger docs with dynamic base URL
	if cfg.BaseURL != "" {
		baseURL, err := url.Parse(cfg.BaseURL)
		if err == nil {
			docs.SwaggerInfo.Host = baseURL.Host
			if baseURL.Scheme == "https" {
				docs.SwaggerInfo.Schemes = []string{"https", "http"}
			} else {
				docs.SwaggerInfo.Schemes = []string{"http", "https"}
			}
		}
	}

	if !cfg.GenerationConfigured() {
		log.Println("Warning: AI_GATEWAY_API_KEY not set. Ad generation requests will fail.")
	}
	if !cfg.AnimationConfigured() {
		log.Println("Warning: storage or video backend credentials not set. Ad animation requests will fail.")
	}

	// Supabase Auth verifies tokens remotely when no JWT secret is configured
	var verifier middleware.TokenVerifier
	if cfg.SupabaseURL != "" && cfg.SupabasePublishableKey != "" {
		supabaseClient, err := supabase.NewClient(cfg)
		if err != nil {
			if cfg.SupabaseJWTSecret == "" {
				log.Fatalf("Failed to initialize Supabase client: %v", err)
			}
			log.Printf("Warning: Failed to initialize Supabase client: %v", err)
		} else {
			verifier = supabaseClient
		}
	}

	// Backends
	gatewayClient := aigateway.NewClient(cfg.AIGatewayURL, cfg.AIGatewayAPIKey, cfg.AIGatewayModel, cfg.BackendTimeout)
	imagekitClient := imagekit.NewClient(cfg.ImageKitPrivateKey, cfg.ImageKitURLEndpoint,
		cfg.ImageKitUploadURL, cfg.ImageKitVideoURL, cfg.BackendTimeout)

	var store services.ObjectStore = imagekitClient
	if cfg.StorageProvider == config.StorageProviderSupabase {
		storageClient, err := supabase.NewStorageClient(cfg.SupabaseURL, cfg.SupabasePublishableKey, cfg.SupabaseStorageBucket)
		if err != nil {
			log.Fatalf("Failed to initialize storage client: %v", err)
		}
		store = storageClient
	}

	// Ad history needs a direct PostgreSQL connection
	var historyStore services.HistoryStore
	if cfg.DatabaseURL == "" {
		log.Println("Warning: DATABASE_URL not set. Migrations will be skipped and ad history is disabled.")
	} else {
		dbClient, err := supabase.NewDatabaseClient(cfg.DatabaseURL)
		if err != nil {
			log.Printf("Warning: Failed to initialize database client: %v", err)
		} else {
			defer dbClient.Close()
			historyStore = dbClient
			runMigrations(cfg.DatabaseURL)
		}
	}

	generator := services.NewAdGenerator(gatewayClient, cfg.GenerationConcurrency, cfg.BackendTimeout)
	animator := services.NewAnimator(store, imagekitClient, cfg.ImageKitFolder, cfg.BackendTimeout)
	adsHandler := handlers.NewAdsHandler(cfg, generator, animator, services.NewHistory(historyStore))

	// Setup router
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check (no auth)
	router.GET("/health", handlers.HealthHandler)

	// API routes
	api := router.Group("/api/v1")
	api.Use(middleware.AuthMiddleware(cfg, verifier))

	api.POST("/ads/generate", adsHandler.Generate)
	api.POST("/ads/animate", adsHandler.Animate)
	api.GET("/ads", adsHandler.List)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func runMigrations(dbURL string) {
	migrator, err := database.NewMigrator(dbURL)
	if err != nil {
		log.Printf("Warning: Failed to initialize migrator: %v", err)
		return
	}
	defer migrator.Close()

	if err := migrator.Run(context.Background()); err != nil {
		log.Printf("Warning: Migration failed: %v", err)
		return
	}
	log.Println("Migrations completed successfully")
}
