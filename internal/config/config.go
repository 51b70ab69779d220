package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultDatabaseURL    = "portfolio.db"
	defaultPort           = "5000"
	defaultAdminUser      = "admin"
	defaultAdminPass      = "password"
	defaultUploadDir      = "uploads"
	defaultAdminSlug      = "dash"
	defaultSessionTTL     = "1h"
	defaultConvertBin     = "soffice"
	defaultConvertTimeout = "2m"
	defaultMaxUploadFiles = 15
)

type Config struct {
	AppEnv         string
	DatabaseURL    string
	Port           string
	AdminUser      string
	AdminPass      string
	UploadDir      string
	PublicBaseURL  string
	AdminSlug      string
	SessionTTL     time.Duration
	ConvertBin     string
	ConvertTimeout time.Duration
	MaxUploadFiles int
}

func Load() (*Config, error) {
	cfg := &Config{}

	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = strings.TrimSpace(os.Getenv("ENV"))
	}
	if appEnv == "" {
		appEnv = "dev"
	}
	cfg.AppEnv = strings.ToLower(appEnv)

	cfg.DatabaseURL = strings.TrimSpace(getEnv("DATABASE_URL", defaultDatabaseURL))
	cfg.Port = strings.TrimSpace(getEnv("PORT", defaultPort))
	cfg.AdminUser = getEnv("ADMIN_USER", defaultAdminUser)
	cfg.AdminPass = getEnv("ADMIN_PASS", defaultAdminPass)
	cfg.UploadDir = strings.TrimSpace(getEnv("UPLOAD_DIR", defaultUploadDir))
	cfg.PublicBaseURL = strings.TrimRight(strings.TrimSpace(os.Getenv("PUBLIC_BASE_URL")), "/")
	cfg.AdminSlug = strings.TrimSpace(getEnv("ADMIN_SLUG", defaultAdminSlug))

	var err error
	cfg.SessionTTL, err = parseDurationEnv("ADMIN_SESSION_TTL", defaultSessionTTL)
	if err != nil {
		return nil, err
	}

	cfg.ConvertBin = strings.TrimSpace(getEnv("CONVERT_BIN", defaultConvertBin))
	cfg.ConvertTimeout, err = parseDurationEnv("CONVERT_TIMEOUT", defaultConvertTimeout)
	if err != nil {
		return nil, err
	}

	cfg.MaxUploadFiles = defaultMaxUploadFiles
	if v := strings.TrimSpace(os.Getenv("MAX_UPLOAD_FILES")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("invalid MAX_UPLOAD_FILES value %q", v)
		}
		cfg.MaxUploadFiles = n
	}

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	log.Printf("config loaded: env=%s port=%s upload_dir=%s session_ttl=%s", cfg.AppEnv, cfg.Port, cfg.UploadDir, cfg.SessionTTL)

	return cfg, nil
}

func validateConfig(cfg *Config) error {
	if cfg.SessionTTL <= 0 {
		return fmt.Errorf("ADMIN_SESSION_TTL must be > 0")
	}
	if cfg.ConvertTimeout <= 0 {
		return fmt.Errorf("CONVERT_TIMEOUT must be > 0")
	}
	if cfg.UploadDir == "" {
		return fmt.Errorf("UPLOAD_DIR must not be empty")
	}

	if isProdLike(cfg.AppEnv) {
		if isEmptyOrDefault(cfg.AdminUser, defaultAdminUser) {
			return fmt.Errorf("in prod/release ADMIN_USER must be set and not default")
		}
		if isEmptyOrDefault(cfg.AdminPass, defaultAdminPass) {
			return fmt.Errorf("in prod/release ADMIN_PASS must be set and not default")
		}
	}

	return nil
}

func isProdLike(env string) bool {
	env = strings.ToLower(strings.TrimSpace(env))
	return env == "prod" || env == "production" || env == "release"
}

func isEmptyOrDefault(v, def string) bool {
	trimmed := strings.TrimSpace(v)
	return trimmed == "" || trimmed == def
}

func parseDurationEnv(name, fallback string) (time.Duration, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return d, nil
}

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
