// internal/config/config.go
// Loader konfigurasi dari environment variables (+ file .env opsional)
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// BuildVersion diisi saat build via -ldflags "-X alphawell/internal/config.BuildVersion=..."
var BuildVersion = "dev"

type Config struct {
	AppName    string
	AppEnv     string
	AppPort    string
	LogLevel   string
	LogFormat  string
	CORSOrigin string

	MySQL struct {
		DSN     string
		MaxOpen int
		MaxIdle int
	}

	Auth struct {
		JWTSecret  string
		AccessTTL  time.Duration
		RefreshTTL time.Duration
		PruneCron  string
	}

	// Wells AI: service forecasting remote (opsional, fallback ke simulator lokal)
	WellsAPI struct {
		BaseURL string
		APIKey  string
		Timeout time.Duration
	}

	LLM struct {
		APIKey  string
		APIBase string
		Model   string
	}
}

// Load membaca .env (kalau ada) lalu environment. envFile kosong = ".env" default.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("load env file %s: %w", envFile, err)
		}
	} else {
		// .env tidak wajib
		_ = godotenv.Load()
	}

	c := &Config{}
	c.AppName = getEnv("APP_NAME", "alphawell")
	c.AppEnv = getEnv("APP_ENV", "development")
	c.AppPort = getEnv("APP_PORT", "8080")
	c.LogLevel = getEnv("LOG_LEVEL", "info")
	c.LogFormat = getEnv("LOG_FORMAT", "json")
	c.CORSOrigin = getEnv("CORS_ORIGIN", "*")

	c.MySQL.DSN = getEnv("DB_DSN", os.Getenv("DB_DSN_DOCKER"))
	c.MySQL.MaxOpen = getEnvInt("MYSQL_MAX_OPEN_CONNS", 10)
	c.MySQL.MaxIdle = getEnvInt("MYSQL_MAX_IDLE_CONNS", 5)

	c.Auth.JWTSecret = getEnv("AUTH_JWT_SECRET", "")
	c.Auth.AccessTTL = getEnvDuration("AUTH_ACCESS_TTL", 15*time.Minute)
	c.Auth.RefreshTTL = getEnvDuration("AUTH_REFRESH_TTL", 7*24*time.Hour)
	c.Auth.PruneCron = getEnv("TOKEN_PRUNE_CRON", "@every 1h")

	c.WellsAPI.BaseURL = strings.TrimSuffix(getEnv("WELLS_API_BASE", ""), "/")
	c.WellsAPI.APIKey = getEnv("WELLS_API_KEY", "")
	c.WellsAPI.Timeout = getEnvDuration("WELLS_API_TIMEOUT", 20*time.Second)

	c.LLM.APIKey = getEnv("OPENAI_API_KEY", "")
	c.LLM.APIBase = getEnv("OPENAI_BASE_URL", "")
	c.LLM.Model = getEnv("OPENAI_MODEL", "gpt-4o-mini")

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate memastikan nilai wajib terisi. Secret JWT boleh kosong hanya di development.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.AppPort == "" {
		return errors.New("APP_PORT must be provided")
	}
	if c.Auth.JWTSecret == "" {
		if c.AppEnv == "production" {
			return errors.New("AUTH_JWT_SECRET must be provided in production")
		}
		c.Auth.JWTSecret = "alphawell-dev-secret"
	}
	if c.Auth.AccessTTL <= 0 || c.Auth.RefreshTTL <= 0 {
		return errors.New("AUTH_ACCESS_TTL and AUTH_REFRESH_TTL must be positive")
	}
	return nil
}

// RemoteEnabled true kalau base URL Wells AI dikonfigurasi.
func (c *Config) RemoteEnabled() bool { return c.WellsAPI.BaseURL != "" }

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		var i int
		_, err := fmt.Sscanf(v, "%d", &i)
		if err == nil {
			return i
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
