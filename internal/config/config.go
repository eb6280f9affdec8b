package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	ServerPort     string
	LogMode        string
	DatabaseType   string
	DatabasePath   string
	DatabaseURL    string
	MigrationsPath string

	SessionDuration   time.Duration
	LearnerIdleTTL    time.Duration
	CSRFSecret        string
	FunctionSecret    string
	OAuthRedirectBase string

	GoogleClientID     string
	GoogleClientSecret string

	// Model gateway used by the generation endpoint
	GatewayURL    string
	GatewayAPIKey string
	GatewayModel  string

	// When set, the kids controller calls this remote generation endpoint
	// instead of the in-process gateway.
	GenerationURL     string
	GenerationTimeout time.Duration

	GenerateRateLimit  int
	GenerateRateWindow time.Duration
}

// Load reads configuration from environment variables with sensible defaults.
// A .env file in the working directory is loaded first when present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ServerPort:     getEnv("PORT", "8080"),
		LogMode:        getEnv("LOG_MODE", "development"),
		DatabaseType:   getEnv("DB_TYPE", "sqlite"),
		DatabasePath:   getEnv("DB_PATH", "./learnhub.db"),
		DatabaseURL:    getEnv("DATABASE_URL", ""),
		MigrationsPath: getEnv("MIGRATIONS_PATH", "./migrations"),

		SessionDuration:   getDuration("SESSION_DURATION", 24*time.Hour),
		LearnerIdleTTL:    getDuration("LEARNER_IDLE_TTL", 2*time.Hour),
		CSRFSecret:        getEnv("CSRF_SECRET", "dev-csrf-secret"),
		FunctionSecret:    getEnv("FUNCTION_SECRET", ""),
		OAuthRedirectBase: getEnv("OAUTH_REDIRECT_BASE_URL", ""),

		GoogleClientID:     getEnv("GOOGLE_CLIENT_ID", ""),
		GoogleClientSecret: getEnv("GOOGLE_CLIENT_SECRET", ""),

		GatewayURL:    strings.TrimRight(getEnv("AI_GATEWAY_URL", "https://ai.gateway.lovable.dev"), "/"),
		GatewayAPIKey: getEnv("AI_GATEWAY_API_KEY", ""),
		GatewayModel:  getEnv("AI_GATEWAY_MODEL", "google/gemini-2.5-flash"),

		GenerationURL:     getEnv("GENERATION_URL", ""),
		GenerationTimeout: getDuration("GENERATION_TIMEOUT", 60*time.Second),

		GenerateRateLimit:  getInt("GENERATE_RATE_LIMIT", 10),
		GenerateRateWindow: getDuration("GENERATE_RATE_WINDOW", time.Minute),
	}
}

// getEnv reads an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getInt(key string, defaultValue int) int {
	v := getEnv(key, "")
	if v == "" {
		return defaultValue
	}
	i, err := strconv.Atoi(v)
	if err != nil || i <= 0 {
		return defaultValue
	}
	return i
}

// getDuration accepts Go duration strings ("90s") or whole seconds ("90").
func getDuration(key string, defaultValue time.Duration) time.Duration {
	v := getEnv(key, "")
	if v == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(v); err == nil && d > 0 {
		return d
	}
	if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	return defaultValue
}
