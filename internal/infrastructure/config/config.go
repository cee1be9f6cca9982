// internal/infrastructure/config/config.go
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// App
	AppVersion       string
	LogLevel         string
	MetricsNamespace string
	PublicBaseURL    string

	// Server
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration

	// Relational store
	DBDriver       string
	DatabaseDSN    string
	DBMaxOpenConns int
	DBMaxIdleConns int
	DBConnMaxLife  time.Duration
	AutoMigrate    bool

	// MongoDB (activity log)
	MongoURI            string
	MongoDB             string
	MongoUser           string
	MongoPassword       string
	MongoAppName        string
	MongoConnectTimeout time.Duration
	MongoMaxPoolSize    int

	// Redis (cache invalidation)
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// Gmail
	GmailClientID     string
	GmailClientSecret string
	GmailRefreshToken string
	GmailSender       string
	GmailRecipients   []string

	// WhatsApp
	WhatsAppEndpoint   string
	WhatsAppToken      string
	WhatsAppRecipients []string

	// Activity listing
	ActivityDefaultLimit int
	ActivityMaxLimit     int
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	// Load .env file if it exists
	godotenv.Load()

	config := &Config{
		AppVersion:       getEnv("APP_VERSION", "1.0.0"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		MetricsNamespace: getEnv("METRICS_NAMESPACE", "tourcatalog"),
		PublicBaseURL:    getEnv("PUBLIC_BASE_URL", ""),

		Port:            getEnv("PORT", "8080"),
		ReadTimeout:     time.Duration(getEnvAsInt("READ_TIMEOUT", 30)) * time.Second,
		WriteTimeout:    time.Duration(getEnvAsInt("WRITE_TIMEOUT", 30)) * time.Second,
		ShutdownTimeout: time.Duration(getEnvAsInt("SHUTDOWN_TIMEOUT", 15)) * time.Second,

		DBDriver:       getEnv("DB_DRIVER", "postgres"),
		DatabaseDSN:    getEnv("DATABASE_DSN", "host=localhost user=postgres password=postgres dbname=catalog port=5432 sslmode=disable"),
		DBMaxOpenConns: getEnvAsInt("DB_MAX_OPEN_CONNS", 20),
		DBMaxIdleConns: getEnvAsInt("DB_MAX_IDLE_CONNS", 5),
		DBConnMaxLife:  time.Duration(getEnvAsInt("DB_CONN_MAX_LIFETIME", 300)) * time.Second,
		AutoMigrate:    getEnvAsBool("AUTO_MIGRATE", true),

		MongoURI:            getEnv("MONGODB_DSN", "mongodb://localhost:27017"),
		MongoDB:             getEnv("MONGO_DB", "catalog"),
		MongoUser:           getEnv("MONGO_USER", ""),
		MongoPassword:       getEnv("MONGO_PASSWORD", ""),
		MongoAppName:        getEnv("MONGO_APP_NAME", "tourcatalog-service"),
		MongoConnectTimeout: time.Duration(getEnvAsInt("MONGO_CONNECT_TIMEOUT", 10)) * time.Second,
		MongoMaxPoolSize:    getEnvAsInt("MONGO_MAX_POOL_SIZE", 20),

		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvAsInt("REDIS_DB", 0),

		GmailClientID:     getEnv("GMAIL_CLIENT_ID", ""),
		GmailClientSecret: getEnv("GMAIL_CLIENT_SECRET", ""),
		GmailRefreshToken: getEnv("GMAIL_REFRESH_TOKEN", ""),
		GmailSender:       getEnv("GMAIL_SENDER", ""),
		GmailRecipients:   getEnvAsList("GMAIL_RECIPIENTS"),

		WhatsAppEndpoint:   getEnv("WHATSAPP_ENDPOINT", ""),
		WhatsAppToken:      getEnv("WHATSAPP_TOKEN", ""),
		WhatsAppRecipients: getEnvAsList("WHATSAPP_RECIPIENTS"),

		ActivityDefaultLimit: getEnvAsInt("ACTIVITY_DEFAULT_LIMIT", 50),
		ActivityMaxLimit:     getEnvAsInt("ACTIVITY_MAX_LIMIT", 500),
	}

	return config, nil
}

// GmailEnabled reports whether email notifications can be sent
func (c *Config) GmailEnabled() bool {
	return c.GmailClientID != "" && c.GmailRefreshToken != "" && len(c.GmailRecipients) > 0
}

// WhatsAppEnabled reports whether WhatsApp notifications can be sent
func (c *Config) WhatsAppEnabled() bool {
	return c.WhatsAppEndpoint != "" && len(c.WhatsAppRecipients) > 0
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

// getEnvAsList splits a comma separated value, dropping blanks
func getEnvAsList(key string) []string {
	var out []string
	for _, part := range strings.Split(getEnv(key, ""), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
