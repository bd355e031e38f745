package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var envKeys = []string{
	"HOST", "PORT", "REQUEST_TIMEOUT_SECONDS", "SHUTDOWN_TIMEOUT_SECONDS",
	"STORAGE_DRIVER", "DB_PATH", "LOG_LEVEL", "AUDIT_ENABLED",
	"FIREBASE_API_KEY", "FIREBASE_AUTH_DOMAIN", "FIREBASE_DATABASE_URL",
	"FIREBASE_PROJECT_ID", "FIREBASE_STORAGE_BUCKET",
	"FIREBASE_MESSAGING_SENDER_ID", "FIREBASE_APP_ID",
}

// clearEnv blanks every variable Load reads so the host environment cannot leak in
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range envKeys {
		t.Setenv(k, "")
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr())
	assert.Equal(t, 60*time.Second, cfg.Server.RequestTimeout())
	assert.Equal(t, 5*time.Second, cfg.Server.ShutdownTimeout())
	assert.Equal(t, DriverMemory, cfg.Storage.Driver)
	assert.Equal(t, "access_monitor.db", cfg.Storage.Path)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.True(t, cfg.AuditEnabled())
	assert.Empty(t, cfg.Alerts.Firebase.APIKey)
}

func TestLoad_YAMLFile(t *testing.T) {
	clearEnv(t)

	path := writeConfig(t, `
server:
  host: 127.0.0.1
  port: 9090
  shutdown_timeout: 10
storage:
  driver: SQLite
  path: /tmp/monitor.db
log:
  level: debug
audit:
  enabled: false
alerts:
  firebase:
    api_key: key
    database_url: https://example.firebaseio.com
    project_id: demo
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9090", cfg.Server.Addr())
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout())
	assert.Equal(t, DriverSQLite, cfg.Storage.Driver)
	assert.Equal(t, "/tmp/monitor.db", cfg.Storage.Path)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.False(t, cfg.AuditEnabled())
	assert.Equal(t, "demo", cfg.Alerts.Firebase.ProjectID)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "server:\n  port: 9090\nstorage:\n  driver: sqlite\n")

	t.Setenv("PORT", "7000")
	t.Setenv("STORAGE_DRIVER", "memory")
	t.Setenv("AUDIT_ENABLED", "false")
	t.Setenv("FIREBASE_API_KEY", "env-key")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 7000, cfg.Server.Port)
	assert.Equal(t, DriverMemory, cfg.Storage.Driver)
	assert.False(t, cfg.AuditEnabled())
	assert.Equal(t, "env-key", cfg.Alerts.Firebase.APIKey)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "port not a number", env: map[string]string{"PORT": "http"}},
		{name: "port out of range", env: map[string]string{"PORT": "70000"}},
		{name: "unknown driver", env: map[string]string{"STORAGE_DRIVER": "postgres"}},
		{name: "unknown log level", env: map[string]string{"LOG_LEVEL": "trace"}},
		{name: "audit flag not a bool", env: map[string]string{"AUDIT_ENABLED": "sometimes"}},
		{name: "negative timeout", env: map[string]string{"SHUTDOWN_TIMEOUT_SECONDS": "-1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := Load("")
			assert.Error(t, err)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	clearEnv(t)

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadEnvFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	// A missing file is not an error
	require.NoError(t, LoadEnvFile(filepath.Join(dir, ".env")))

	envPath := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envPath, []byte("FIREBASE_PROJECT_ID=from-dotenv\n"), 0o600))

	// godotenv does not override variables that are already set, even empty ones
	os.Unsetenv("FIREBASE_PROJECT_ID")
	t.Cleanup(func() { os.Unsetenv("FIREBASE_PROJECT_ID") })

	require.NoError(t, LoadEnvFile(envPath))
	assert.Equal(t, "from-dotenv", os.Getenv("FIREBASE_PROJECT_ID"))
}
