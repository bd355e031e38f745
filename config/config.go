package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	yaml "gopkg.in/yaml.v3"
)

const (
	DriverMemory = "memory"
	DriverSQLite = "sqlite"
)

// Config represents the application configuration
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Storage StorageConfig `yaml:"storage"`
	Log     LogConfig     `yaml:"log"`
	Audit   AuditConfig   `yaml:"audit"`
	Alerts  AlertsConfig  `yaml:"alerts"`
}

// ServerConfig represents the HTTP server configuration
type ServerConfig struct {
	Host                   string `yaml:"host"`
	Port                   int    `yaml:"port"`
	RequestTimeoutSeconds  int    `yaml:"request_timeout"`
	ShutdownTimeoutSeconds int    `yaml:"shutdown_timeout"`
}

// StorageConfig selects where access logs and the monitoring status live
type StorageConfig struct {
	Driver string `yaml:"driver"` // "memory" | "sqlite"
	Path   string `yaml:"path"`
}

// LogConfig represents the logging configuration
type LogConfig struct {
	Level string `yaml:"level"`
}

// AuditConfig controls the mutation audit trail (sqlite only)
type AuditConfig struct {
	Enabled *bool `yaml:"enabled"`
}

// AlertsConfig holds external alert sink settings
type AlertsConfig struct {
	Firebase FirebaseConfig `yaml:"firebase"`
}

// FirebaseConfig mirrors the web SDK configuration block
type FirebaseConfig struct {
	APIKey            string `yaml:"api_key"`
	AuthDomain        string `yaml:"auth_domain"`
	DatabaseURL       string `yaml:"database_url"`
	ProjectID         string `yaml:"project_id"`
	StorageBucket     string `yaml:"storage_bucket"`
	MessagingSenderID string `yaml:"messaging_sender_id"`
	AppID             string `yaml:"app_id"`
}

// Addr returns the listen address
func (s ServerConfig) Addr() string {
	return s.Host + ":" + strconv.Itoa(s.Port)
}

// RequestTimeout returns the per-request timeout
func (s ServerConfig) RequestTimeout() time.Duration {
	return time.Duration(s.RequestTimeoutSeconds) * time.Second
}

// ShutdownTimeout returns the graceful shutdown deadline
func (s ServerConfig) ShutdownTimeout() time.Duration {
	return time.Duration(s.ShutdownTimeoutSeconds) * time.Second
}

// AuditEnabled reports whether mutating requests are recorded
func (c *Config) AuditEnabled() bool {
	return c.Audit.Enabled == nil || *c.Audit.Enabled
}

// LoadEnvFile loads variables from the given .env files. Missing files are ignored.
func LoadEnvFile(filenames ...string) error {
	if err := godotenv.Load(filenames...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load env file: %w", err)
	}
	return nil
}

// Load builds the configuration from an optional YAML file and the environment.
// An empty filePath skips the file.
func Load(filePath string) (*Config, error) {
	config := &Config{}

	if filePath != "" {
		data, err := os.ReadFile(filePath) //nolint:gosec // Trusted file path input
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	if err := applyEnvVars(config); err != nil {
		return nil, err
	}

	setDefaults(config)

	if err := validateConfig(config); err != nil {
		return nil, err
	}

	return config, nil
}

// applyEnvVars applies environment variables to the configuration
func applyEnvVars(config *Config) error {
	if host, ok := os.LookupEnv("HOST"); ok {
		config.Server.Host = host
	}
	if err := envInt("PORT", &config.Server.Port); err != nil {
		return err
	}
	if err := envInt("REQUEST_TIMEOUT_SECONDS", &config.Server.RequestTimeoutSeconds); err != nil {
		return err
	}
	if err := envInt("SHUTDOWN_TIMEOUT_SECONDS", &config.Server.ShutdownTimeoutSeconds); err != nil {
		return err
	}

	envString("STORAGE_DRIVER", &config.Storage.Driver)
	envString("DB_PATH", &config.Storage.Path)
	envString("LOG_LEVEL", &config.Log.Level)

	if v := strings.TrimSpace(os.Getenv("AUDIT_ENABLED")); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid AUDIT_ENABLED %q: %w", v, err)
		}
		config.Audit.Enabled = &enabled
	}

	fb := &config.Alerts.Firebase
	envString("FIREBASE_API_KEY", &fb.APIKey)
	envString("FIREBASE_AUTH_DOMAIN", &fb.AuthDomain)
	envString("FIREBASE_DATABASE_URL", &fb.DatabaseURL)
	envString("FIREBASE_PROJECT_ID", &fb.ProjectID)
	envString("FIREBASE_STORAGE_BUCKET", &fb.StorageBucket)
	envString("FIREBASE_MESSAGING_SENDER_ID", &fb.MessagingSenderID)
	envString("FIREBASE_APP_ID", &fb.AppID)

	return nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	if config.Server.Port == 0 {
		config.Server.Port = 8080
	}
	if config.Server.RequestTimeoutSeconds == 0 {
		config.Server.RequestTimeoutSeconds = 60
	}
	if config.Server.ShutdownTimeoutSeconds == 0 {
		config.Server.ShutdownTimeoutSeconds = 5
	}
	if config.Storage.Driver == "" {
		config.Storage.Driver = DriverMemory
	}
	config.Storage.Driver = strings.ToLower(config.Storage.Driver)
	if config.Storage.Path == "" {
		config.Storage.Path = "access_monitor.db"
	}
	if config.Log.Level == "" {
		config.Log.Level = "info"
	}
	config.Log.Level = strings.ToLower(config.Log.Level)
}

// validateConfig validates the configuration
func validateConfig(config *Config) error {
	if config.Server.Port < 1 || config.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", config.Server.Port)
	}
	if config.Server.RequestTimeoutSeconds < 0 {
		return fmt.Errorf("request timeout must not be negative, got %d", config.Server.RequestTimeoutSeconds)
	}
	if config.Server.ShutdownTimeoutSeconds < 0 {
		return fmt.Errorf("shutdown timeout must not be negative, got %d", config.Server.ShutdownTimeoutSeconds)
	}

	switch config.Storage.Driver {
	case DriverMemory, DriverSQLite:
	default:
		return fmt.Errorf("unknown storage driver %q (want %q or %q)", config.Storage.Driver, DriverMemory, DriverSQLite)
	}

	switch config.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q", config.Log.Level)
	}

	return nil
}

func envString(key string, dst *string) {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		*dst = v
	}
}

func envInt(key string, dst *int) error {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	*dst = n
	return nil
}
