package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// InsecureDefaultSecret is used when SECRET_KEY is unset. Production refuses it.
const InsecureDefaultSecret = "your_random_secret_key"

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Auth      AuthConfig      `mapstructure:"auth"`
	App       AppConfig       `mapstructure:"app"`
	Chat      ChatConfig      `mapstructure:"chat"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	CORS      CORSConfig      `mapstructure:"cors"`
	Tracing   TracingConfig   `mapstructure:"tracing"`
}

type ServerConfig struct {
	Port            string        `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// DatabaseConfig selects the store. Driver "sqlite" uses Path; "postgres" uses
// DSN when set, otherwise the discrete Host/Port/User/Password/Name fields.
type DatabaseConfig struct {
	Driver   string `mapstructure:"driver"`
	Path     string `mapstructure:"path"`
	DSN      string `mapstructure:"dsn"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
}

// RedisConfig is optional; an empty Addr disables redis.
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type AuthConfig struct {
	SecretKey               string        `mapstructure:"secret_key"`
	AccessTokenTTL          time.Duration `mapstructure:"access_token_ttl"`
	FirebaseCredentialsPath string        `mapstructure:"firebase_credentials_path"`
}

type AppConfig struct {
	Environment string `mapstructure:"environment"`
	LogLevel    string `mapstructure:"log_level"`
	LogFormat   string `mapstructure:"log_format"`
	Version     string `mapstructure:"version"`
	ServiceName string `mapstructure:"service_name"`
}

type ChatConfig struct {
	HistoryLimit      int    `mapstructure:"history_limit"`
	RetentionDays     int    `mapstructure:"retention_days"`
	RetentionSchedule string `mapstructure:"retention_schedule"`
}

type RateLimitConfig struct {
	Enabled           bool    `mapstructure:"enabled"`
	RequestsPerSecond float64 `mapstructure:"requests_per_second"`
	Burst             int     `mapstructure:"burst"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type TracingConfig struct {
	Enabled    bool    `mapstructure:"enabled"`
	Endpoint   string  `mapstructure:"endpoint"`
	SampleRate float64 `mapstructure:"sample_rate"`
}

// envBindings maps config keys to the environment variables that set them.
var envBindings = map[string]string{
	"server.port":                    "PORT",
	"server.shutdown_timeout":        "SHUTDOWN_TIMEOUT",
	"database.driver":                "DB_DRIVER",
	"database.path":                  "DATABASE_NAME",
	"database.dsn":                   "DB_DSN",
	"database.host":                  "DB_HOST",
	"database.port":                  "DB_PORT",
	"database.user":                  "DB_USER",
	"database.password":              "DB_PASSWORD",
	"database.name":                  "DB_NAME",
	"redis.addr":                     "REDIS_ADDR",
	"redis.password":                 "REDIS_PASSWORD",
	"redis.db":                       "REDIS_DB",
	"auth.secret_key":                "SECRET_KEY",
	"auth.access_token_ttl":          "ACCESS_TOKEN_TTL",
	"auth.firebase_credentials_path": "FIREBASE_CREDENTIALS_PATH",
	"app.environment":                "APP_ENV",
	"app.log_level":                  "LOG_LEVEL",
	"app.log_format":                 "LOG_FORMAT",
	"app.version":                    "APP_VERSION",
	"app.service_name":               "SERVICE_NAME",
	"chat.history_limit":             "CHAT_HISTORY_LIMIT",
	"chat.retention_days":            "CHAT_RETENTION_DAYS",
	"chat.retention_schedule":        "CHAT_RETENTION_SCHEDULE",
	"rate_limit.enabled":             "RATE_LIMIT_ENABLED",
	"rate_limit.requests_per_second": "RATE_LIMIT_RPS",
	"rate_limit.burst":               "RATE_LIMIT_BURST",
	"cors.allowed_origins":           "CORS_ALLOWED_ORIGINS",
	"tracing.enabled":                "TRACING_ENABLED",
	"tracing.endpoint":               "OTEL_EXPORTER_OTLP_ENDPOINT",
	"tracing.sample_rate":            "TRACING_SAMPLE_RATE",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.path", "llm_app.db")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.name", "archbot")
	v.SetDefault("redis.db", 0)
	v.SetDefault("auth.access_token_ttl", 30*time.Minute)
	v.SetDefault("app.environment", "development")
	v.SetDefault("app.log_level", "info")
	v.SetDefault("app.log_format", "json")
	v.SetDefault("app.version", "1.0.0")
	v.SetDefault("app.service_name", "archbot-backend")
	v.SetDefault("chat.history_limit", 10)
	v.SetDefault("chat.retention_days", 0)
	v.SetDefault("chat.retention_schedule", "0 0 3 * * *")
	v.SetDefault("rate_limit.enabled", false)
	v.SetDefault("rate_limit.requests_per_second", 5.0)
	v.SetDefault("rate_limit.burst", 10)
	v.SetDefault("cors.allowed_origins", []string{"*"})
	v.SetDefault("tracing.enabled", false)
	v.SetDefault("tracing.endpoint", "localhost:4317")
	v.SetDefault("tracing.sample_rate", 1.0)
}

// Load reads .env (if present), an optional YAML file named by CONFIG_FILE
// and the environment, in increasing order of precedence.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found, using environment variables")
	}

	cfg, err := LoadFrom(os.Getenv("CONFIG_FILE"))
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFrom builds the config without validating it. An empty path skips the
// YAML layer.
func LoadFrom(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file %s: %w", path, err)
		}
	}

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("bind %s: %w", env, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	cfg.CORS.AllowedOrigins = splitList(strings.Join(cfg.CORS.AllowedOrigins, ","))

	if cfg.Auth.SecretKey == "" {
		cfg.Auth.SecretKey = InsecureDefaultSecret
		slog.Warn("using fallback SECRET_KEY, set SECRET_KEY for production")
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("PORT is required")
	}

	switch c.Database.Driver {
	case "sqlite":
		if c.Database.Path == "" {
			return errors.New("DATABASE_NAME is required for the sqlite driver")
		}
	case "postgres":
		if c.Database.DSN == "" && c.Database.Host == "" {
			return errors.New("DB_DSN or DB_HOST is required for the postgres driver")
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.Database.Driver)
	}

	if c.Auth.AccessTokenTTL <= 0 {
		return errors.New("ACCESS_TOKEN_TTL must be positive")
	}
	if c.IsProduction() && c.Auth.SecretKey == InsecureDefaultSecret {
		return errors.New("SECRET_KEY must be set in production")
	}
	if c.Chat.HistoryLimit <= 0 {
		return errors.New("CHAT_HISTORY_LIMIT must be positive")
	}
	if c.Chat.RetentionDays < 0 {
		return errors.New("CHAT_RETENTION_DAYS cannot be negative")
	}
	if c.RateLimit.Enabled && (c.RateLimit.RequestsPerSecond <= 0 || c.RateLimit.Burst <= 0) {
		return errors.New("RATE_LIMIT_RPS and RATE_LIMIT_BURST must be positive")
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
