package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for our application
type Config struct {
	Server       ServerConfig
	Database     DatabaseConfig
	Redis        RedisConfig
	Logger       LoggerConfig
	JWT          JWTConfig
	CORS         CORSConfig
	RateLimit    RateLimitConfig
	Storage      StorageConfig
	Scheduler    SchedulerConfig
	Registration RegistrationConfig
	Ledger       LedgerConfig
	Admin        AdminConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port    string
	GinMode string
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
}

// RedisConfig holds redis configuration
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// LoggerConfig holds logger configuration
type LoggerConfig struct {
	Level  string
	Format string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret   string
	TokenTTL time.Duration
	ResetTTL time.Duration
}

// CORSConfig holds CORS configuration
type CORSConfig struct {
	AllowedOrigins string
}

// Origins splits AllowedOrigins into a trimmed list
func (c CORSConfig) Origins() []string {
	var origins []string
	for _, o := range strings.Split(c.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

// RateLimitConfig holds the per-IP limits for unauthenticated routes
type RateLimitConfig struct {
	RequestsPerSecond float64
	Burst             int
}

// StorageConfig holds local file storage configuration
type StorageConfig struct {
	UploadDir     string
	PublicBaseURL string
}

// SchedulerConfig holds scheduler configuration
type SchedulerConfig struct {
	ModerationDigestCron string
	ModerationStaleAfter time.Duration
}

// RegistrationConfig holds registration intake configuration
type RegistrationConfig struct {
	DraftTTL time.Duration
	// ClaimProfileStatus is the status written when an existing member claims an account
	ClaimProfileStatus string
}

// LedgerConfig holds security fee ledger configuration
type LedgerConfig struct {
	MonthlyFee      int64
	CutoffYear      int
	PaymentBaseURL  string
	FirstLedgerYear int
}

// AdminConfig holds the bootstrap administrator account
type AdminConfig struct {
	Email    string
	Password string
	Name     string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		// It's okay if .env file doesn't exist
		fmt.Println("No .env file found, using environment variables")
	}

	config := &Config{
		Server: ServerConfig{
			Port:    getEnv("PORT", "8080"),
			GinMode: getEnv("GIN_MODE", "debug"),
		},
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnvAsInt("DB_PORT", 5432),
			User:            getEnv("DB_USER", "strata"),
			Password:        getEnv("DB_PASSWORD", "secret"),
			DBName:          getEnv("DB_NAME", "strata"),
			SSLMode:         getEnv("DB_SSLMODE", "disable"),
			MaxIdleConns:    getEnvAsInt("DB_MAX_IDLE_CONNS", 10),
			MaxOpenConns:    getEnvAsInt("DB_MAX_OPEN_CONNS", 50),
			ConnMaxLifetime: getEnvAsDuration("DB_CONN_MAX_LIFETIME", time.Hour),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		Logger: LoggerConfig{
			Level:  getEnv("LOG_LEVEL", "debug"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		JWT: JWTConfig{
			Secret:   getEnv("JWT_SECRET", "your-secret-key"),
			TokenTTL: getEnvAsDuration("JWT_TOKEN_TTL", 24*time.Hour),
			ResetTTL: getEnvAsDuration("PASSWORD_RESET_TTL", time.Hour),
		},
		CORS: CORSConfig{
			AllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://127.0.0.1:3000,http://localhost:5500,http://127.0.0.1:5500"),
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: getEnvAsFloat("RATE_LIMIT_RPS", 2),
			Burst:             getEnvAsInt("RATE_LIMIT_BURST", 10),
		},
		Storage: StorageConfig{
			UploadDir:     getEnv("UPLOAD_DIR", "tmp/uploads"),
			PublicBaseURL: getEnv("UPLOAD_PUBLIC_BASE_URL", "/uploads"),
		},
		Scheduler: SchedulerConfig{
			ModerationDigestCron: getEnv("MODERATION_DIGEST_CRON", "0 0 8 * * *"),
			ModerationStaleAfter: getEnvAsDuration("MODERATION_STALE_AFTER", 72*time.Hour),
		},
		Registration: RegistrationConfig{
			DraftTTL:           getEnvAsDuration("DRAFT_TTL", 24*time.Hour),
			ClaimProfileStatus: getEnv("CLAIM_PROFILE_STATUS", "active"),
		},
		Ledger: LedgerConfig{
			MonthlyFee:      int64(getEnvAsInt("LEDGER_MONTHLY_FEE", 100)),
			CutoffYear:      getEnvAsInt("LEDGER_CUTOFF_YEAR", 2025),
			PaymentBaseURL:  getEnv("LEDGER_PAYMENT_BASE_URL", "https://toyyibpay.com"),
			FirstLedgerYear: getEnvAsInt("LEDGER_FIRST_YEAR", 2022),
		},
		Admin: AdminConfig{
			Email:    getEnv("ADMIN_EMAIL", ""),
			Password: getEnv("ADMIN_PASSWORD", ""),
			Name:     getEnv("ADMIN_NAME", "Pentadbir"),
		},
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) validate() error {
	switch c.Registration.ClaimProfileStatus {
	case "pending", "approved", "rejected", "active":
	default:
		return fmt.Errorf("invalid CLAIM_PROFILE_STATUS %q", c.Registration.ClaimProfileStatus)
	}
	if c.Ledger.MonthlyFee <= 0 {
		return fmt.Errorf("LEDGER_MONTHLY_FEE must be positive")
	}
	return nil
}

// GetDSN returns PostgreSQL connection string
func (d *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

// getEnv gets an environment variable with a fallback value
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// getEnvAsInt gets an environment variable as integer with a fallback value
func getEnvAsInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvAsFloat gets an environment variable as float with a fallback value
func getEnvAsFloat(key string, fallback float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return fallback
}

// getEnvAsDuration gets an environment variable as time.Duration (e.g. "72h") with a fallback value
func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
