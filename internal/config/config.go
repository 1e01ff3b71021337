package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultPath is where both binaries look for the YAML file.
const DefaultPath = "configs/config.yaml"

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port string `yaml:"port" env:"SERVER_PORT"`
		Mode string `yaml:"mode" env:"SERVER_MODE"`
	} `yaml:"server"`

	Database struct {
		Host            string `yaml:"host" env:"DB_HOST"`
		Port            string `yaml:"port" env:"DB_PORT"`
		User            string `yaml:"user" env:"DB_USER"`
		Password        string `yaml:"password" env:"DB_PASSWORD"`
		DBName          string `yaml:"dbname" env:"DB_NAME"`
		SSLMode         string `yaml:"sslmode" env:"DB_SSLMODE"`
		MaxIdleConns    int    `yaml:"max_idle_conns" env:"DB_MAX_IDLE_CONNS"`
		MaxOpenConns    int    `yaml:"max_open_conns" env:"DB_MAX_OPEN_CONNS"`
		ConnMaxLifetime string `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME"`
		MigrateOnStart  bool   `yaml:"migrate_on_start" env:"DB_MIGRATE_ON_START"`
	} `yaml:"database"`

	JWT struct {
		Secret                string `yaml:"secret" env:"JWT_SECRET"`
		AccessTokenExpiration string `yaml:"access_token_expiration" env:"JWT_ACCESS_TOKEN_EXPIRATION"`
		Issuer                string `yaml:"issuer" env:"JWT_ISSUER"`
	} `yaml:"jwt"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`

	Seed struct {
		Enabled         bool   `yaml:"enabled" env:"SEED_ENABLED"`
		DemoData        bool   `yaml:"demo_data" env:"SEED_DEMO_DATA"`
		AdminUsername   string `yaml:"admin_username" env:"SEED_ADMIN_USERNAME"`
		AdminPassword   string `yaml:"admin_password" env:"SEED_ADMIN_PASSWORD"`
		TeacherUsername string `yaml:"teacher_username" env:"SEED_TEACHER_USERNAME"`
		TeacherPassword string `yaml:"teacher_password" env:"SEED_TEACHER_PASSWORD"`
		TeacherName     string `yaml:"teacher_name" env:"SEED_TEACHER_NAME"`
	} `yaml:"seed"`

	Portal struct {
		Port           string        `yaml:"port" env:"PORTAL_PORT"`
		BackendURL     string        `yaml:"backend_url" env:"PORTAL_BACKEND_URL"`
		RequestTimeout time.Duration `yaml:"request_timeout" env:"PORTAL_REQUEST_TIMEOUT"`
		SessionSecret  string        `yaml:"session_secret" env:"PORTAL_SESSION_SECRET"`
		SessionName    string        `yaml:"session_name" env:"PORTAL_SESSION_NAME"`
		StateStore     string        `yaml:"state_store" env:"PORTAL_STATE_STORE"`
		StateTTL       time.Duration `yaml:"state_ttl" env:"PORTAL_STATE_TTL"`
		CSRFEnabled    bool          `yaml:"csrf_enabled" env:"PORTAL_CSRF_ENABLED"`
		CSRFKey        string        `yaml:"csrf_key" env:"PORTAL_CSRF_KEY"`
		SecureCookies  bool          `yaml:"secure_cookies" env:"PORTAL_SECURE_COOKIES"`
		TrustedOrigins []string      `yaml:"trusted_origins" env:"PORTAL_TRUSTED_ORIGINS"`
	} `yaml:"portal"`

	Redis struct {
		Addr     string `yaml:"addr" env:"REDIS_ADDR"`
		Password string `yaml:"password" env:"REDIS_PASSWORD"`
		DB       int    `yaml:"db" env:"REDIS_DB"`
		Prefix   string `yaml:"prefix" env:"REDIS_PREFIX"`
	} `yaml:"redis"`

	Metrics struct {
		Enabled bool   `yaml:"enabled" env:"METRICS_ENABLED"`
		Path    string `yaml:"path" env:"METRICS_PATH"`
	} `yaml:"metrics"`
}

// LoadConfig loads configuration from defaults, an optional .env file, a YAML file and
// environment variables, in that order of precedence (last wins).
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	// .env never overrides variables that are already set in the process environment
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := processStructFields(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.Server.Port = "5000"
	config.Server.Mode = "development"

	config.Database.Host = "localhost"
	config.Database.Port = "5432"
	config.Database.User = "postgres"
	config.Database.Password = "postgres"
	config.Database.DBName = "college_db"
	config.Database.SSLMode = "disable"
	config.Database.MaxIdleConns = 2
	config.Database.MaxOpenConns = 10
	config.Database.ConnMaxLifetime = "1h"
	config.Database.MigrateOnStart = true

	config.JWT.AccessTokenExpiration = "8h"
	config.JWT.Issuer = "college-portal"

	config.Logging.Level = "info"
	config.Logging.Format = "json"

	config.Seed.Enabled = true
	config.Seed.AdminUsername = "admin"
	config.Seed.TeacherUsername = "teacher"
	config.Seed.TeacherName = "Default Teacher"

	config.Portal.Port = "3000"
	config.Portal.BackendURL = "http://localhost:5000/api"
	config.Portal.SessionName = "college_portal"
	config.Portal.StateStore = "memory"
	config.Portal.StateTTL = 2 * time.Hour
	config.Portal.CSRFEnabled = true

	config.Redis.Addr = "localhost:6379"
	config.Redis.Prefix = "college_portal"

	config.Metrics.Enabled = true
	config.Metrics.Path = "/metrics"
}

// validateConfig checks the settings shared by every binary.
func validateConfig(config *Config) error {
	if config.Server.Mode != "development" && config.Server.Mode != "production" && config.Server.Mode != "test" {
		return fmt.Errorf("unknown server mode %q", config.Server.Mode)
	}

	if _, err := time.ParseDuration(config.JWT.AccessTokenExpiration); err != nil {
		return fmt.Errorf("invalid JWT access token expiration format: %w", err)
	}

	switch config.Portal.StateStore {
	case "memory", "redis":
	default:
		return fmt.Errorf("unknown portal state store %q", config.Portal.StateStore)
	}

	return nil
}

// ValidateAPI checks the settings the REST backend cannot start without.
func (c *Config) ValidateAPI() error {
	if c.Database.Host == "" {
		return fmt.Errorf("database host is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT secret is required")
	}
	return nil
}

// ValidatePortal checks the settings the portal cannot start without.
func (c *Config) ValidatePortal() error {
	if !strings.HasPrefix(c.Portal.BackendURL, "http://") && !strings.HasPrefix(c.Portal.BackendURL, "https://") {
		return fmt.Errorf("portal backend url must be absolute, got %q", c.Portal.BackendURL)
	}
	if c.Portal.SessionSecret == "" {
		return fmt.Errorf("portal session secret is required")
	}
	if c.Portal.CSRFEnabled && len(c.Portal.CSRFKey) != 32 {
		return fmt.Errorf("portal csrf key must be 32 bytes")
	}
	return nil
}

// GetPostgresConnectionString returns postgres connection string
func (c *Config) GetPostgresConnectionString() string {
	sslMode := c.Database.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.DBName,
		sslMode,
	)
}

// IsProduction reports whether gin should run in release mode.
func (c *Config) IsProduction() bool {
	return c.Server.Mode == "production"
}
