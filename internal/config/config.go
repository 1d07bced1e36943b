package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	// Generative text relay (script generation, keyword extraction)
	GeminiAPIKey     string
	GeminiAPIBaseURL string

	// Text to speech
	TTSAPIKey     string
	TTSAPIBaseURL string

	// Stock media providers, both optional. Search precedence is
	// Pexels -> Pixabay -> embedded mock catalog.
	PexelsAPIKey  string
	PixabayAPIKey string

	// Supabase Storage for generated assets; local disk when unset
	SupabaseURL           string
	SupabaseServiceKey    string
	SupabaseStorageBucket string

	// Auth
	JWTSecret string

	// Storage
	DataDir   string
	AssetsDir string

	// Server
	Port        string
	Environment string
	BaseURL     string
}

func Load() (*Config, error) {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := &Config{
		GeminiAPIKey:     getEnv("GEMINI_API_KEY", ""),
		GeminiAPIBaseURL: getEnv("GEMINI_API_BASE_URL", "https://generativelanguage.googleapis.com/v1beta/"),

		TTSAPIKey:     getEnv("TTS_API_KEY", ""),
		TTSAPIBaseURL: getEnv("TTS_API_BASE_URL", ""),

		PexelsAPIKey:  getEnv("PEXELS_API_KEY", ""),
		PixabayAPIKey: getEnv("PIXABAY_API_KEY", ""),

		SupabaseURL:           getEnv("SUPABASE_URL", ""),
		SupabaseServiceKey:    getEnv("SUPABASE_SERVICE_KEY", ""),
		SupabaseStorageBucket: getEnv("SUPABASE_STORAGE_BUCKET", "generated-assets"),

		JWTSecret: getEnv("JWT_SECRET", ""),

		DataDir:   getEnv("DATA_DIR", "data"),
		AssetsDir: getEnv("ASSETS_DIR", "data/assets"),

		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),
		BaseURL:     getEnv("BASE_URL", "http://localhost:8080"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if c.SupabaseURL != "" && c.SupabaseServiceKey == "" {
		return fmt.Errorf("SUPABASE_SERVICE_KEY is required when SUPABASE_URL is set")
	}
	return nil
}

// SupabaseStorageEnabled reports whether generated assets go to Supabase
// Storage instead of the local assets directory.
func (c *Config) SupabaseStorageEnabled() bool {
	return c.SupabaseURL != "" && c.SupabaseServiceKey != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
