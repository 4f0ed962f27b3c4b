// internal/infrastructure/config/config.go
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// App
	AppVersion string

	// Server
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	// Allotment data provider
	ProviderBaseURL string
	ProviderTimeout time.Duration

	// Station-group master data: "provider" or "postgres"
	StationSource string
	PostgresURI   string

	// Snapshot cache
	SnapshotEnabled bool
	MongoURI        string
	MongoDB         string

	// Engine strategies
	DateStrategy  string
	MatchStrategy string
	TotalsScope   string
	// ScheduleYear pins date derivation; 0 means the current year.
	ScheduleYear int
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	// Load .env file if it exists
	godotenv.Load()

	// Set defaults and override with env vars
	config := &Config{
		AppVersion:   getEnv("APP_VERSION", "1.0.0"),
		Port:         getEnv("PORT", "8080"),
		ReadTimeout:  time.Duration(getEnvAsInt("READ_TIMEOUT", 30)) * time.Second,
		WriteTimeout: time.Duration(getEnvAsInt("WRITE_TIMEOUT", 30)) * time.Second,

		ProviderBaseURL: getEnv("PROVIDER_BASE_URL", "http://127.0.0.1:5000"),
		ProviderTimeout: time.Duration(getEnvAsInt("PROVIDER_TIMEOUT", 30)) * time.Second,

		StationSource: getEnv("STATION_SOURCE", "provider"),
		PostgresURI:   getEnv("POSTGRES_DSN", ""),

		SnapshotEnabled: getEnvAsBool("SNAPSHOT_ENABLED", false),
		MongoURI:        getEnv("MONGODB_DSN", "mongodb://localhost:27017"),
		MongoDB:         getEnv("MONGO_DB", "allotment"),

		DateStrategy:  getEnv("DATE_STRATEGY", "first-occurrence"),
		MatchStrategy: getEnv("MATCH_STRATEGY", "date-inclusive"),
		TotalsScope:   getEnv("TOTALS_SCOPE", "confirmed"),
		ScheduleYear:  getEnvAsInt("SCHEDULE_YEAR", 0),
	}

	return config, nil
}

// Helper functions to get environment variables
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}
