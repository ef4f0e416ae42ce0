package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Roster source kinds.
const (
	SourceFile     = "file"
	SourceURL      = "url"
	SourcePostgres = "postgres"
)

// Config aggregates runtime configuration for the service.
type Config struct {
	App       AppConfig
	Postgres  PostgresConfig
	Redis     RedisConfig
	Logger    LoggerConfig
	Auth      AuthConfig
	Directory DirectoryConfig
	Popup     PopupConfig
}

// AppConfig controls server level behavior.
type AppConfig struct {
	Name                  string
	Env                   string
	Host                  string
	Port                  string
	Version               string
	RequestTimeoutSeconds int
}

// PostgresConfig holds DB connection values.
type PostgresConfig struct {
	DSN            string
	MaxConns       int32
	MinConns       int32
	RunMigrations  bool
	ConnMaxIdleSec int32
	ConnMaxLifeSec int32
}

// RedisConfig holds Redis connection values.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level string
}

// AuthConfig defines admin token parameters.
type AuthConfig struct {
	JWTSecret             string
	AccessTokenTTLMinutes int
}

// DirectoryConfig controls where the roster comes from and how it is displayed.
type DirectoryConfig struct {
	Source              string
	DataPath            string
	DataURL             string
	FetchTimeoutSeconds int
	OrgPrefix           string
	StripOrgPrefix      bool
	IncludeMobile       bool
	ExtensionOfficeCode string
	LabelPhone          bool
	LabelExtension      bool
}

// PopupConfig lists the notice popups shown to visitors, in order.
type PopupConfig struct {
	IDs      []string
	Timezone string
}

// Load reads configuration from environment variables, applying defaults where possible.
func Load() (*Config, error) {
	_ = godotenv.Load()

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	source := strings.ToLower(getEnv("DIRECTORY_SOURCE", SourceFile))
	switch source {
	case SourceFile, SourceURL, SourcePostgres:
	default:
		return nil, fmt.Errorf("invalid DIRECTORY_SOURCE %q", source)
	}

	maxConns := int32(getEnvAsInt("POSTGRES_MAX_CONNS", 10))
	minConns := int32(getEnvAsInt("POSTGRES_MIN_CONNS", 2))
	runMigrations := getEnvAsBool("POSTGRES_RUN_MIGRATIONS", true)
	connMaxIdle := int32(getEnvAsInt("POSTGRES_CONN_MAX_IDLE_SECONDS", 30))
	connMaxLife := int32(getEnvAsInt("POSTGRES_CONN_MAX_LIFE_SECONDS", 300))

	cfg := &Config{
		App: AppConfig{
			Name:                  getEnv("APP_NAME", "org-directory"),
			Env:                   getEnv("APP_ENV", "development"),
			Host:                  getEnv("APP_HOST", "0.0.0.0"),
			Port:                  getEnv("APP_PORT", "8080"),
			Version:               getEnv("APP_VERSION", "dev"),
			RequestTimeoutSeconds: getEnvAsInt("HTTP_REQUEST_TIMEOUT_SECONDS", 30),
		},
		Postgres: PostgresConfig{
			DSN:            os.Getenv("POSTGRES_DSN"),
			MaxConns:       maxConns,
			MinConns:       minConns,
			RunMigrations:  runMigrations,
			ConnMaxIdleSec: connMaxIdle,
			ConnMaxLifeSec: connMaxLife,
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "127.0.0.1:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       redisDB,
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Auth: AuthConfig{
			JWTSecret:             getEnv("AUTH_JWT_SECRET", "dev-secret"),
			AccessTokenTTLMinutes: getEnvAsInt("AUTH_ACCESS_TOKEN_TTL_MINUTES", 60),
		},
		Directory: DirectoryConfig{
			Source:              source,
			DataPath:            getEnv("DIRECTORY_DATA_PATH", "./data/workday_employees_by_org.json"),
			DataURL:             os.Getenv("DIRECTORY_DATA_URL"),
			FetchTimeoutSeconds: getEnvAsInt("DIRECTORY_FETCH_TIMEOUT_SECONDS", 10),
			OrgPrefix:           os.Getenv("DIRECTORY_ORG_PREFIX"),
			StripOrgPrefix:      getEnvAsBool("DIRECTORY_STRIP_ORG_PREFIX", false),
			IncludeMobile:       getEnvAsBool("DIRECTORY_INCLUDE_MOBILE", true),
			ExtensionOfficeCode: getEnv("DIRECTORY_EXTENSION_OFFICE_CODE", "582"),
			LabelPhone:          getEnvAsBool("DIRECTORY_LABEL_PHONE", false),
			LabelExtension:      getEnvAsBool("DIRECTORY_LABEL_EXTENSION", false),
		},
		Popup: PopupConfig{
			IDs:      getEnvAsList("POPUP_IDS", []string{"p1", "p2"}),
			Timezone: getEnv("POPUP_TIMEZONE", "UTC"),
		},
	}

	if cfg.Directory.Source == SourceURL && cfg.Directory.DataURL == "" {
		return nil, fmt.Errorf("DIRECTORY_DATA_URL is required when DIRECTORY_SOURCE=%s", SourceURL)
	}
	if cfg.Directory.Source == SourcePostgres && cfg.Postgres.DSN == "" {
		return nil, fmt.Errorf("POSTGRES_DSN is required when DIRECTORY_SOURCE=%s", SourcePostgres)
	}
	if _, err := time.LoadLocation(cfg.Popup.Timezone); err != nil {
		return nil, fmt.Errorf("invalid POPUP_TIMEZONE: %w", err)
	}

	return cfg, nil
}

// Addr returns the HTTP bind address.
func (a AppConfig) Addr() string {
	return fmt.Sprintf("%s:%s", a.Host, a.Port)
}

// RequestTimeout returns the configured request timeout duration.
func (a AppConfig) RequestTimeout() time.Duration {
	if a.RequestTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(a.RequestTimeoutSeconds) * time.Second
}

// FetchTimeout returns the roster fetch timeout.
func (d DirectoryConfig) FetchTimeout() time.Duration {
	if d.FetchTimeoutSeconds <= 0 {
		return 10 * time.Second
	}
	return time.Duration(d.FetchTimeoutSeconds) * time.Second
}

// Location returns the timezone used to decide what "today" is for popups.
func (p PopupConfig) Location() *time.Location {
	loc, err := time.LoadLocation(p.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvAsBool(key string, fallback bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(val)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvAsList(key string, fallback []string) []string {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(val, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
