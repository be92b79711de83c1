package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Token     TokenConfig
	RateLimit RateLimitConfig
	Gemini    GeminiConfig
	Storage   StorageConfig
	CORS      CORSConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type DatabaseConfig struct {
	URL string
}

type RedisConfig struct {
	URL string
}

type TokenConfig struct {
	AccessSecret     string
	RefreshSecret    string
	AccessTTL        time.Duration
	RefreshTTL       time.Duration
	AccessCookieAge  int
	RefreshCookieAge int
}

type RateLimitConfig struct {
	Window time.Duration
	Max    int
}

type GeminiConfig struct {
	APIKey string
}

// StorageConfig covers the Cloudinary account the frontend uploads to and the
// local scratch directory used for server-side PDF text extraction.
type StorageConfig struct {
	CloudinaryCloudName    string
	CloudinaryUploadPreset string
	ScratchDir             string
	MaxFileSize            int64
}

type CORSConfig struct {
	Origins string
}

// Load reads configuration from the environment. Every variable without a
// default is required and a missing one aborts startup.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Reading from environment.")
	}

	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "3000"),
			Env:  getEnv("ENV", "development"),
		},
		Database: DatabaseConfig{
			URL: mustEnv("DATABASE_URL"),
		},
		Redis: RedisConfig{
			URL: mustEnv("REDIS_URL"),
		},
		Token: TokenConfig{
			AccessSecret:     mustEnv("ACCESS_TOKEN_SECRET"),
			RefreshSecret:    mustEnv("REFRESH_TOKEN_SECRET"),
			AccessTTL:        mustEnvAsDuration("ACCESS_TOKEN_TTL"),
			RefreshTTL:       mustEnvAsDuration("REFRESH_TOKEN_TTL"),
			AccessCookieAge:  mustEnvAsInt("ACCESS_TOKEN_MAX_AGE"),
			RefreshCookieAge: mustEnvAsInt("REFRESH_TOKEN_MAX_AGE"),
		},
		RateLimit: RateLimitConfig{
			Window: mustEnvAsDuration("RATE_LIMIT_WINDOW"),
			Max:    mustEnvAsInt("RATE_LIMIT_MAX"),
		},
		Gemini: GeminiConfig{
			APIKey: mustEnv("GEMINI_API_KEY"),
		},
		Storage: StorageConfig{
			CloudinaryCloudName:    mustEnv("CLOUDINARY_CLOUD_NAME"),
			CloudinaryUploadPreset: mustEnv("CLOUDINARY_UPLOAD_PRESET"),
			ScratchDir:             getEnv("SCRATCH_DIR", "./tmp/uploads"),
			MaxFileSize:            getEnvAsInt64("MAX_FILE_SIZE", 10485760),
		},
		CORS: CORSConfig{
			Origins: mustEnv("CORS_ORIGINS"),
		},
	}
}

func (c *Config) IsProduction() bool {
	return c.Server.Env == "production"
}

// AllowedOrigins returns the comma-separated CORS_ORIGINS list with
// surrounding whitespace removed from each entry.
func (c *Config) AllowedOrigins() string {
	parts := strings.Split(c.CORS.Origins, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return strings.Join(parts, ",")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func mustEnv(key string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Fatalf("❌ Missing required environment variable: %s", key)
	}
	return value
}

func mustEnvAsInt(key string) int {
	value, err := strconv.Atoi(mustEnv(key))
	if err != nil {
		log.Fatalf("❌ Invalid integer for environment variable %s", key)
	}
	return value
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
		return value
	}
	return defaultValue
}

func mustEnvAsDuration(key string) time.Duration {
	duration, err := time.ParseDuration(mustEnv(key))
	if err != nil {
		log.Fatalf("❌ Invalid duration for environment variable %s", key)
	}
	return duration
}
