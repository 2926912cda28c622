package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	StorageProviderImageKit = "imagekit"
	StorageProviderSupabase = "supabase"
)

type Config struct {
	// AI gateway (multimodal image generation)
	AIGatewayAPIKey string
	AIGatewayURL    string
	AIGatewayModel  string

	// ImageKit (asset upload + video generation)
	ImageKitPrivateKey  string
	ImageKitURLEndpoint string
	ImageKitUploadURL   string
	ImageKitVideoURL    string
	ImageKitFolder      string

	// StorageProvider selects where animation source images are stored.
	StorageProvider string

	// Supabase
	SupabaseURL            string
	SupabasePublishableKey string
	SupabaseJWTSecret      string
	SupabaseStorageBucket  string

	// Database
	DatabaseURL string

	// Backend calls
	BackendTimeout        time.Duration
	GenerationConcurrency int

	// Server
	Port        string
	Environment string
	BaseURL     string
}

// Load reads the configuration from the environment. A .env file in the
// working directory is loaded first when present.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg := &Config{
		AIGatewayAPIKey: getEnv("AI_GATEWAY_API_KEY", os.Getenv("LOVABLE_API_KEY")),
		AIGatewayURL:    getEnv("AI_GATEWAY_URL", "https://ai.gateway.lovable.dev/v1/chat/completions"),
		AIGatewayModel:  getEnv("AI_GATEWAY_MODEL", "google/gemini-2.5-flash-image"),

		ImageKitPrivateKey:  getEnv("IMAGEKIT_PRIVATE_KEY", ""),
		ImageKitURLEndpoint: getEnv("IMAGEKIT_URL_ENDPOINT", ""),
		ImageKitUploadURL:   getEnv("IMAGEKIT_UPLOAD_URL", "https://upload.imagekit.io/api/v1/files/upload"),
		ImageKitVideoURL:    getEnv("IMAGEKIT_VIDEO_URL", "https://api.imagekit.io/v1/generateVideo"),
		ImageKitFolder:      getEnv("IMAGEKIT_FOLDER", "/ads-genie/"),

		StorageProvider: getEnv("STORAGE_PROVIDER", StorageProviderImageKit),

		SupabaseURL:            getEnv("SUPABASE_URL", ""),
		SupabasePublishableKey: getEnv("SUPABASE_PUBLISHABLE_KEY", ""),
		SupabaseJWTSecret:      getEnv("SUPABASE_JWT_SECRET", ""),
		SupabaseStorageBucket:  getEnv("SUPABASE_STORAGE_BUCKET", "ad-assets"),

		DatabaseURL: getEnv("DATABASE_URL", ""),

		BackendTimeout:        60 * time.Second,
		GenerationConcurrency: 4,

		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),
		BaseURL:     getEnv("BASE_URL", "http://localhost:8080"),
	}

	if v := os.Getenv("BACKEND_TIMEOUT_SECONDS"); v != "" {
		seconds, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid BACKEND_TIMEOUT_SECONDS: %w", err)
		}
		cfg.BackendTimeout = time.Duration(seconds) * time.Second
	}

	if v := os.Getenv("GENERATION_CONCURRENCY"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid GENERATION_CONCURRENCY: %w", err)
		}
		cfg.GenerationConcurrency = n
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate rejects configurations the server cannot run with at all.
// Missing backend credentials are reported per request instead.
func (c *Config) Validate() error {
	if c.SupabaseJWTSecret == "" && (c.SupabaseURL == "" || c.SupabasePublishableKey == "") {
		return fmt.Errorf("SUPABASE_JWT_SECRET or SUPABASE_URL and SUPABASE_PUBLISHABLE_KEY are required")
	}
	if c.StorageProvider != StorageProviderImageKit && c.StorageProvider != StorageProviderSupabase {
		return fmt.Errorf("STORAGE_PROVIDER must be %q or %q, got %q", StorageProviderImageKit, StorageProviderSupabase, c.StorageProvider)
	}
	if c.StorageProvider == StorageProviderSupabase && c.SupabaseURL == "" {
		return fmt.Errorf("SUPABASE_URL is required when STORAGE_PROVIDER is %q", StorageProviderSupabase)
	}
	if c.BackendTimeout <= 0 {
		return fmt.Errorf("backend timeout must be positive")
	}
	if c.GenerationConcurrency <= 0 {
		return fmt.Errorf("generation concurrency must be positive")
	}
	return nil
}

// GenerationConfigured reports whether the AI gateway credential is present.
func (c *Config) GenerationConfigured() bool {
	return c.AIGatewayAPIKey != ""
}

// AnimationConfigured reports whether both the asset store and the video
// backend have their credentials.
func (c *Config) AnimationConfigured() bool {
	if c.ImageKitPrivateKey == "" {
		return false
	}
	if c.StorageProvider == StorageProviderSupabase {
		return c.SupabaseURL != "" && c.SupabasePublishableKey != ""
	}
	return c.ImageKitURLEndpoint != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
