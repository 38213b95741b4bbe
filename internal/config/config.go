package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Media    MediaConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
}

type DatabaseConfig struct {
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string

	ConnectTimeout      time.Duration
	PoolMaxConns        int32
	PoolMinConns        int32
	PoolMaxConnLifetime time.Duration
	PoolMaxConnIdleTime time.Duration

	MigrationsDir string
}

type JWTConfig struct {
	AccessSecret     string
	RefreshSecret    string
	AccessExpiresIn  time.Duration
	RefreshExpiresIn time.Duration
}

// MediaConfig points at the external media host that serves profile photos.
type MediaConfig struct {
	BaseURL   string
	APIKey    string
	APISecret string
}

var errMissingRequiredEnv = errors.New("missing required environment variables")

func Load() (Config, error) {
	cfg := Config{}

	var missing []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key string) string {
		return strings.TrimSpace(os.Getenv(key))
	}

	cfg.App = AppConfig{
		AppName:     req("APP_NAME"),
		Environment: req("APP_ENV"),
		HTTPPort:    req("HTTP_PORT"),
	}

	cfg.Database = DatabaseConfig{
		DBHost:     opt("DB_HOST"),
		DBPort:     opt("DB_PORT"),
		DBName:     opt("DB_NAME"),
		DBUser:     opt("DB_USER"),
		DBPassword: opt("DB_PASSWORD"),
		DBSSLMode:  opt("DB_SSL_MODE"),

		ConnectTimeout:      durationSecondsDefault(opt("DB_CONNECT_TIMEOUT_SECONDS"), 0),
		PoolMaxConns:        int32Env(opt("DB_POOL_MAX_CONNS")),
		PoolMinConns:        int32Env(opt("DB_POOL_MIN_CONNS")),
		PoolMaxConnLifetime: durationSecondsDefault(opt("DB_POOL_MAX_CONN_LIFETIME_SECONDS"), 0),
		PoolMaxConnIdleTime: durationSecondsDefault(opt("DB_POOL_MAX_CONN_IDLE_SECONDS"), 0),

		MigrationsDir: opt("DB_MIGRATIONS_DIR"),
	}

	cfg.JWT = JWTConfig{
		AccessSecret:     req("JWT_ACCESS_SECRET"),
		RefreshSecret:    req("JWT_REFRESH_SECRET"),
		AccessExpiresIn:  durationSecondsDefault(opt("JWT_ACCESS_EXPIRES_SECONDS"), 15*time.Minute),
		RefreshExpiresIn: durationSecondsDefault(opt("JWT_REFRESH_EXPIRES_SECONDS"), 7*24*time.Hour),
	}

	cfg.Media = MediaConfig{
		BaseURL:   opt("MEDIA_BASE_URL"),
		APIKey:    opt("MEDIA_API_KEY"),
		APISecret: opt("MEDIA_API_SECRET"),
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}

	return cfg, nil
}

func durationSecondsDefault(raw string, def time.Duration) time.Duration {
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return def
	}
	return time.Duration(v) * time.Second
}

func int32Env(raw string) int32 {
	if raw == "" {
		return 0
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return 0
	}
	return int32(v)
}
