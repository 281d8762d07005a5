// Package config loads the service configuration once at startup.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

// Storage drivers accepted by STORAGE_DRIVER.
const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

// ErrUnknownStorageDriver is returned when STORAGE_DRIVER names an unsupported backend.
var ErrUnknownStorageDriver = errors.New("unknown storage driver")

// Config holds every setting the service reads at startup.
type Config struct {
	App      AppConfig
	Postgres PostgresConfig
	Redis    RedisConfig
	Kafka    KafkaConfig
	JWT      JWTConfig
	Bcrypt   BcryptConfig
}

// AppConfig holds HTTP server and process settings.
type AppConfig struct {
	Host               string
	Port               string
	Name               string
	LogLevel           string
	StorageDriver      string
	CORSAllowedOrigins []string
}

// Addr returns host:port for the HTTP listener.
func (c AppConfig) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// PostgresConfig holds database connection settings.
type PostgresConfig struct {
	URL          string
	Host         string
	Port         int
	User         string
	Password     string
	DB           string
	SSLMode      string
	MaxOpenConns int
	MaxIdleConns int
}

// DSN returns the connection string. DATABASE_URL wins over the individual parts.
func (c PostgresConfig) DSN() string {
	if c.URL != "" {
		return c.URL
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DB, c.SSLMode)
}

// RedisConfig holds profile cache settings. An empty Host disables the cache.
type RedisConfig struct {
	Host         string
	Port         int
	DB           int
	Password     string
	PoolSize     int
	MinIdleConns int
	ProfileTTL   time.Duration
}

// Enabled reports whether a Redis host was configured.
func (c RedisConfig) Enabled() bool {
	return c.Host != ""
}

// Addr returns host:port of the Redis server.
func (c RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// KafkaConfig holds event publishing settings. No brokers disables publishing.
type KafkaConfig struct {
	Brokers []string
	Topic   string
}

// Enabled reports whether at least one broker was configured.
func (c KafkaConfig) Enabled() bool {
	return len(c.Brokers) > 0
}

// JWTConfig holds token signing settings.
type JWTConfig struct {
	SecretKey  string
	Expiration time.Duration
}

// BcryptConfig holds the password hashing cost.
type BcryptConfig struct {
	Cost int
}

// Load reads the env file at path (missing files are ignored) and then the
// process environment, returning the resulting configuration.
func Load(path string) (Config, error) {
	_ = godotenv.Load(path)

	var (
		cfg Config
		err error
	)

	// Application config
	cfg.App.Host = getEnv("APP_HOST", "localhost")
	cfg.App.Port = getEnv("APP_PORT", "8080")
	cfg.App.Name = getEnv("APP_NAME", "AI Career Toolkit")
	cfg.App.LogLevel = getEnv("APP_LOG_LEVEL", "info")
	cfg.App.StorageDriver = strings.ToLower(getEnv("STORAGE_DRIVER", StoragePostgres))
	cfg.App.CORSAllowedOrigins = splitList(getEnv("CORS_ALLOWED_ORIGINS", "*"))
	switch cfg.App.StorageDriver {
	case StoragePostgres, StorageMemory:
	default:
		return Config{}, fmt.Errorf("%w: %q", ErrUnknownStorageDriver, cfg.App.StorageDriver)
	}

	// PostgreSQL config
	cfg.Postgres.URL = getEnv("DATABASE_URL", "")
	cfg.Postgres.Host = getEnv("POSTGRES_HOST", "localhost")
	cfg.Postgres.User = getEnv("POSTGRES_USER", "user")
	cfg.Postgres.Password = getEnv("POSTGRES_PASSWORD", "password")
	cfg.Postgres.DB = getEnv("POSTGRES_DB", "career_toolkit")
	cfg.Postgres.SSLMode = getEnv("POSTGRES_SSLMODE", "disable")
	if cfg.Postgres.Port, err = getInt("POSTGRES_PORT", 5432); err != nil {
		return Config{}, err
	}
	if cfg.Postgres.MaxOpenConns, err = getInt("POSTGRES_MAX_OPEN_CONNS", 16); err != nil {
		return Config{}, err
	}
	if cfg.Postgres.MaxIdleConns, err = getInt("POSTGRES_MAX_IDLE_CONNS", 8); err != nil {
		return Config{}, err
	}

	// Redis config
	cfg.Redis.Host = getEnv("REDIS_HOST", "")
	cfg.Redis.Password = getEnv("REDIS_PASSWORD", "")
	if cfg.Redis.Port, err = getInt("REDIS_PORT", 6379); err != nil {
		return Config{}, err
	}
	if cfg.Redis.DB, err = getInt("REDIS_DB", 0); err != nil {
		return Config{}, err
	}
	if cfg.Redis.PoolSize, err = getInt("REDIS_POOL_SIZE", 10); err != nil {
		return Config{}, err
	}
	if cfg.Redis.MinIdleConns, err = getInt("REDIS_MIN_IDLE_CONNS", 2); err != nil {
		return Config{}, err
	}
	ttl, err := getInt("REDIS_PROFILE_TTL_SECONDS", 300)
	if err != nil {
		return Config{}, err
	}
	cfg.Redis.ProfileTTL = time.Duration(ttl) * time.Second

	// Kafka config
	cfg.Kafka.Brokers = splitList(getEnv("KAFKA_BROKERS", ""))
	cfg.Kafka.Topic = getEnv("KAFKA_TOPIC", "account-events")

	// JWT config
	cfg.JWT.SecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	expMinutes, err := getInt("JWT_EXP_MINUTES", 30)
	if err != nil {
		return Config{}, err
	}
	cfg.JWT.Expiration = time.Duration(expMinutes) * time.Minute

	// Bcrypt config
	if cfg.Bcrypt.Cost, err = getInt("BCRYPT_COST", bcrypt.DefaultCost); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return defaultValue
}

func getInt(key string, defaultValue int) (int, error) {
	raw := getEnv(key, strconv.Itoa(defaultValue))
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	return v, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
