package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090

[database]
host = "db"
dbname = "booking"
user = "booking"
password = "secret"

[auth]
jwt_secret = "file-secret"

[metrics]
enabled = true
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, 10, cfg.Server.ReadTimeout)
	assert.Equal(t, StorageDriverPostgres, cfg.Storage.Driver)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, 3, cfg.Transactions.RetryAttempts)
	assert.Equal(t, "host=db port=5432 user=booking password=secret dbname=booking sslmode=disable", cfg.Database.DSN())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("DB_PASSWORD", "env-password")

	path := writeConfig(t, `
[storage]
driver = "MEMORY"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "env-secret", cfg.Auth.JWTSecret)
	assert.Equal(t, "env-password", cfg.Database.Password)
	assert.Equal(t, StorageDriverMemory, cfg.Storage.Driver)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "missing secret", content: "[storage]\ndriver = \"memory\"\n"},
		{name: "unknown driver", content: "[storage]\ndriver = \"mongo\"\n[auth]\njwt_secret = \"x\"\n"},
		{name: "bad port", content: "[server]\nhttp_port = 0\n[auth]\njwt_secret = \"x\"\n"},
		{name: "broken toml", content: "[server\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("JWT_SECRET", "")
			_, err := Load(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}
}
