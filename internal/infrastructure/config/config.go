package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	usecasecontract "github.com/mikiasgoitom/Studiofolio/internal/usecase/contract"
)

// Config holds application configuration values.
type Config struct {
	AppEnv             string
	Port               string
	MongoURI           string
	MongoDBName        string
	RedisURL           string
	S3BucketName       string
	S3Region           string
	CORSAllowedOrigins []string
	RateLimitPerSecond float64
	CacheTTL           time.Duration
	ShutdownTimeout    time.Duration
	Board              usecasecontract.BoardSettings
}

// NewConfig creates a new Config instance, loading values from environment variables.
func NewConfig() usecasecontract.IConfigProvider {
	return &Config{
		AppEnv:             getEnv("APP_ENV", "development"),
		Port:               getEnv("PORT", "8080"),
		MongoURI:           getEnv("MONGODB_URI", "mongodb://localhost:27017"),
		MongoDBName:        getEnv("MONGODB_DB_NAME", "studiofolio"),
		RedisURL:           getEnv("REDIS_URL", ""),
		S3BucketName:       getEnv("S3_BUCKET_NAME", ""),
		S3Region:           getEnv("S3_REGION", "us-east-1"),
		CORSAllowedOrigins: getEnvAsList("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000"}),
		RateLimitPerSecond: getEnvAsFloat("RATE_LIMIT_PER_SECOND", 20),
		CacheTTL:           time.Minute * time.Duration(getEnvAsInt("CACHE_TTL_MINUTES", 30)),
		ShutdownTimeout:    time.Second * time.Duration(getEnvAsInt("SHUTDOWN_TIMEOUT_SECONDS", 10)),
		Board: usecasecontract.BoardSettings{
			HoldThreshold: getEnvAsMillis("BOARD_HOLD_THRESHOLD_MS", 500),
			SaveDebounce:  getEnvAsMillis("BOARD_SAVE_DEBOUNCE_MS", 800),
			SaveSettle:    getEnvAsMillis("BOARD_SAVE_SETTLE_MS", 500),
			EmptyMessage:  getEnv("BOARD_EMPTY_MESSAGE", "No media added yet."),
			Columns:       getEnvAsInt("BOARD_COLUMNS", 4),
		},
	}
}

func (c *Config) GetAppEnv() string { return c.AppEnv }

func (c *Config) GetPort() string { return c.Port }

func (c *Config) GetMongoURI() string { return c.MongoURI }

func (c *Config) GetMongoDBName() string { return c.MongoDBName }

// GetRedisURL returns the Redis URL. Empty disables caching.
func (c *Config) GetRedisURL() string { return c.RedisURL }

// GetS3BucketName returns the media bucket. Empty disables object removal on delete.
func (c *Config) GetS3BucketName() string { return c.S3BucketName }

func (c *Config) GetS3Region() string { return c.S3Region }

func (c *Config) GetCORSAllowedOrigins() []string { return c.CORSAllowedOrigins }

func (c *Config) GetRateLimitPerSecond() float64 { return c.RateLimitPerSecond }

func (c *Config) GetCacheTTL() time.Duration { return c.CacheTTL }

func (c *Config) GetShutdownTimeout() time.Duration { return c.ShutdownTimeout }

// GetBoardSettings returns the arrangement board timings and presentation defaults.
func (c *Config) GetBoardSettings() usecasecontract.BoardSettings { return c.Board }

// Helper function to get an environment variable or return a default value.
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// Helper function to get an environment variable as an integer or return a default value.
func getEnvAsInt(name string, fallback int) int {
	valueStr := getEnv(name, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}

func getEnvAsFloat(name string, fallback float64) float64 {
	valueStr := getEnv(name, "")
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	return fallback
}

func getEnvAsMillis(name string, fallback int) time.Duration {
	return time.Millisecond * time.Duration(getEnvAsInt(name, fallback))
}

// getEnvAsList splits a comma separated variable, dropping blanks.
func getEnvAsList(name string, fallback []string) []string {
	valueStr := getEnv(name, "")
	if valueStr == "" {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(valueStr, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
