package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rigcheck.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv(ConfigPathEnvVar, "")

	cfg, err := Load("")
	require.NoError(t, err)

	want := Default()
	assert.Empty(t, cfg.Skip)
	cfg.Skip = want.Skip
	assert.Equal(t, want, cfg)
}

func TestLoad_FileThenEnv(t *testing.T) {
	path := writeFile(t, `
data: /srv/rigcheck/catalog.yaml
language: de
skip:
  - storage-*
  - fan-sizes
log:
  level: debug
server:
  port: 9000
  rate_limit: 5
  read_timeout: 3s
`)
	t.Setenv("RIGCHECK_SERVER_PORT", "9100")
	t.Setenv("RIGCHECK_SERVER_RATE_LIMIT_BURST", "7")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/srv/rigcheck/catalog.yaml", cfg.Data)
	assert.Equal(t, "de", cfg.Language)
	assert.Equal(t, []string{"storage-*", "fan-sizes"}, cfg.Skip)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 9100, cfg.Server.Port, "env wins over file")
	assert.Equal(t, 7, cfg.Server.RateLimitBurst)
	assert.Equal(t, float64(5), cfg.Server.RateLimit)
	assert.Equal(t, 3*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, Default().Server.WriteTimeout, cfg.Server.WriteTimeout, "unset keys keep defaults")
}

func TestLoad_ConfigPathFromEnv(t *testing.T) {
	t.Setenv(ConfigPathEnvVar, writeFile(t, "language: de\n"))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "de", cfg.Language)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		env     map[string]string
		wantMsg string
	}{
		{name: "bad level", env: map[string]string{"RIGCHECK_LOG_LEVEL": "loud"}, wantMsg: "validation failed"},
		{name: "bad port", file: "server:\n  port: 70000\n", wantMsg: "validation failed"},
		{name: "bad language", env: map[string]string{"RIGCHECK_LANGUAGE": "not a tag"}, wantMsg: "validation failed"},
		{name: "malformed file", file: "server: [", wantMsg: "failed to load config file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(ConfigPathEnvVar, "")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			path := ""
			if tt.file != "" {
				path = writeFile(t, tt.file)
			}
			_, err := Load(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestEnvTransform(t *testing.T) {
	tests := map[string]string{
		"RIGCHECK_DATA":                    "data",
		"RIGCHECK_LANGUAGE":                "language",
		"RIGCHECK_LOG_LEVEL":               "log.level",
		"RIGCHECK_SERVER_PORT":             "server.port",
		"RIGCHECK_SERVER_SHUTDOWN_TIMEOUT": "server.shutdown_timeout",
	}
	for in, want := range tests {
		assert.Equal(t, want, envTransform(in), in)
	}
}

func TestServerConfig(t *testing.T) {
	cfg := Default()
	cfg.Server.Port = 9999
	cfg.Server.RateLimit = 2.5

	srv := cfg.ServerConfig()
	assert.Equal(t, 9999, srv.Port)
	assert.Equal(t, rate.Limit(2.5), srv.RateLimit)
	assert.Equal(t, cfg.Server.ShutdownTimeout, srv.ShutdownTimeout)
}
