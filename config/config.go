package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	JWT       JWTConfig
	Mail      MailConfig
	Defaults  DefaultsConfig
	RateLimit RateLimitConfig
}

type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Timeout     time.Duration
	Port        string
	FrontendURL string
}

type DatabaseConfig struct {
	Host            string
	Port            int
	Name            string
	User            string
	Password        string
	SSLMode         string
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

// JWTConfig carries the two independent signing secrets. Access tokens and
// refresh tokens must never verify against each other's secret.
type JWTConfig struct {
	AccessSecret  string
	AccessExpiry  time.Duration
	RefreshSecret string
	RefreshExpiry time.Duration
	// LedgerTTL sets the absolute expiry stored with each refresh token row,
	// independent of the token's own exp claim.
	LedgerTTL time.Duration
}

type RedisConfig struct {
	Host         string
	Port         int
	Password     string
	Database     int
	Enabled      bool
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type MailConfig struct {
	Host               string
	Port               int
	Username           string
	Password           string
	OnboardingTemplate string
}

// DefaultsConfig holds the seeded credentials and ID generation settings.
type DefaultsConfig struct {
	EmployeePassword  string
	PatientPassword   string
	EmployeeIDPrefix  string
	EmployeeIDPadding int
}

type RateLimitConfig struct {
	Request  int
	Duration int
}

func LoadConfig() (*Config, error) {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	config := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "hms-api"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "8080"),
			Debug:       getEnvAsBool("APP_DEBUG", true),
			Timeout:     getEnvAsDuration("APP_TIMEOUT", 30*time.Second),
			FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
		},
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnvAsInt("DB_PORT", 5432),
			Name:            getEnv("DB_NAME", "hms_db"),
			User:            getEnv("DB_USER", "postgres"),
			Password:        getEnv("DB_PASSWORD", "postgres"),
			SSLMode:         getEnv("DB_SSL_MODE", "disable"),
			MaxIdleConns:    getEnvAsInt("DB_MAX_IDLE_CONNS", 10),
			MaxOpenConns:    getEnvAsInt("DB_MAX_OPEN_CONNS", 100),
			ConnMaxLifetime: getEnvAsDuration("DB_CONN_MAX_LIFETIME", time.Hour),
			ConnMaxIdleTime: getEnvAsDuration("DB_CONN_MAX_IDLE_TIME", 10*time.Minute),
		},
		Redis: RedisConfig{
			Host:         getEnv("REDIS_HOST", "localhost"),
			Port:         getEnvAsInt("REDIS_PORT", 6379),
			Password:     getEnv("REDIS_PASSWORD", ""),
			Database:     getEnvAsInt("REDIS_DB", 0),
			Enabled:      getEnvAsBool("REDIS_ENABLED", true),
			PoolSize:     getEnvAsInt("REDIS_POOL_SIZE", 10),
			MinIdleConns: getEnvAsInt("REDIS_MIN_IDLE_CONNS", 5),
			DialTimeout:  getEnvAsDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:  getEnvAsDuration("REDIS_READ_TIMEOUT", 3*time.Second),
			WriteTimeout: getEnvAsDuration("REDIS_WRITE_TIMEOUT", 3*time.Second),
		},
		JWT: JWTConfig{
			AccessSecret:  getEnv("JWT_SECRET", "change_me_in_production"),
			AccessExpiry:  getEnvAsDuration("ACCESS_TOKEN_EXPIRES_IN", 15*time.Minute),
			RefreshSecret: getEnv("JWT_REFRESH_SECRET", "change_me_too_in_production"),
			RefreshExpiry: getEnvAsDuration("REFRESH_TOKEN_EXPIRES_IN", 30*24*time.Hour),
			LedgerTTL:     getEnvAsDuration("REFRESH_LEDGER_TTL", 30*24*time.Hour),
		},
		Mail: MailConfig{
			Host:               getEnv("SMTP_HOST", "localhost"),
			Port:               getEnvAsInt("SMTP_PORT", 587),
			Username:           getEnv("SMTP_USERNAME", ""),
			Password:           getEnv("SMTP_PASSWORD", ""),
			OnboardingTemplate: getEnv("ONBOARDING_TEMPLATE_ID", ""),
		},
		Defaults: DefaultsConfig{
			EmployeePassword:  getEnv("DEFAULT_PASSWORD", "Employee@123"),
			PatientPassword:   getEnv("DEFAULT_PATIENT_PASSWORD", "patient123"),
			EmployeeIDPrefix:  getEnv("EMPLOYEE_ID_PREFIX", "EMP"),
			EmployeeIDPadding: getEnvAsInt("EMPLOYEE_ID_PADDING", 6),
		},
		RateLimit: RateLimitConfig{
			Request:  getEnvAsInt("RATE_LIMIT_MAX_REQUEST", 100),
			Duration: getEnvAsInt("RATE_LIMIT_DURATION", 60),
		},
	}

	return config, nil
}

func (c *Config) DatabaseConnectionString() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func (c *Config) RedisAddress() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		boolValue, err := strconv.ParseBool(value)
		if err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
