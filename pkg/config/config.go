// Package config loads rigcheck settings from built-in defaults, an
// optional YAML file and RIGCHECK_* environment variables, in that order of
// precedence (later wins).
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	"golang.org/x/time/rate"

	"github.com/rigcheck/rigcheck/pkg/server"
	"github.com/rigcheck/rigcheck/pkg/validation"
)

const (
	// EnvPrefix is the prefix of every environment override,
	// e.g. RIGCHECK_SERVER_PORT=9090.
	EnvPrefix = "RIGCHECK_"

	// ConfigPathEnvVar names the config file when no path is given.
	ConfigPathEnvVar = EnvPrefix + "CONFIG"
)

// sections are the nested config blocks; RIGCHECK_<SECTION>_<KEY> maps to
// <section>.<key>.
var sections = []string{"log", "server"}

// Config holds all rigcheck settings.
type Config struct {
	// Data is the path of the store document. Empty selects the embedded
	// sample data.
	Data string `koanf:"data"`

	// Language is the BCP 47 tag messages are rendered in.
	Language string `koanf:"language" validate:"omitempty,bcp47_language_tag"`

	// Skip lists rule name patterns to leave out of every verification,
	// e.g. "storage-*".
	Skip []string `koanf:"skip"`

	Log    LogConfig    `koanf:"log"`
	Server ServerConfig `koanf:"server"`
}

type LogConfig struct {
	Level string `koanf:"level" validate:"oneof=debug info warn error"`
}

type ServerConfig struct {
	Address         string        `koanf:"address"`
	Port            int           `koanf:"port" validate:"min=1,max=65535"`
	RateLimit       float64       `koanf:"rate_limit" validate:"gt=0"`
	RateLimitBurst  int           `koanf:"rate_limit_burst" validate:"min=1"`
	ReadTimeout     time.Duration `koanf:"read_timeout" validate:"gt=0"`
	WriteTimeout    time.Duration `koanf:"write_timeout" validate:"gt=0"`
	IdleTimeout     time.Duration `koanf:"idle_timeout" validate:"gt=0"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"gt=0"`
}

// Default returns the built-in configuration.
func Default() *Config {
	srv := server.DefaultConfig()
	return &Config{
		Language: "en",
		Log:      LogConfig{Level: "info"},
		Server: ServerConfig{
			Address:         srv.Address,
			Port:            srv.Port,
			RateLimit:       float64(srv.RateLimit),
			RateLimitBurst:  srv.RateLimitBurst,
			ReadTimeout:     srv.ReadTimeout,
			WriteTimeout:    srv.WriteTimeout,
			IdleTimeout:     srv.IdleTimeout,
			ShutdownTimeout: srv.ShutdownTimeout,
		},
	}
}

// Load builds the configuration. path names an optional YAML file; when
// empty, RIGCHECK_CONFIG is consulted. A named file that cannot be read is
// an error.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path == "" {
		path = os.Getenv(ConfigPathEnvVar)
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := validation.Struct(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// envTransform maps RIGCHECK_SERVER_RATE_LIMIT to server.rate_limit.
func envTransform(key string) string {
	key = strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
	for _, section := range sections {
		if rest, ok := strings.CutPrefix(key, section+"_"); ok {
			return section + "." + rest
		}
	}
	return key
}

// ServerConfig converts the server section for the HTTP server.
func (c *Config) ServerConfig() *server.Config {
	return &server.Config{
		Address:         c.Server.Address,
		Port:            c.Server.Port,
		RateLimit:       rate.Limit(c.Server.RateLimit),
		RateLimitBurst:  c.Server.RateLimitBurst,
		ReadTimeout:     c.Server.ReadTimeout,
		WriteTimeout:    c.Server.WriteTimeout,
		IdleTimeout:     c.Server.IdleTimeout,
		ShutdownTimeout: c.Server.ShutdownTimeout,
	}
}
