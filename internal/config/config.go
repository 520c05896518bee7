// Package config loads haptics settings from an optional YAML file.
package config

import (
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"strings"

	"github.com/mj1618/macos-haptics/haptics"
	"gopkg.in/yaml.v3"
)

// Access is a permission value for one command.
type Access string

const (
	Allow Access = "allow"
	Deny  Access = "deny"
)

// Permissions holds one independently grantable capability per command.
type Permissions struct {
	Perform     Access `yaml:"perform"`
	IsSupported Access `yaml:"is_supported"`
}

// Allowed reports whether command may run. Unknown commands are denied.
func (p Permissions) Allowed(command string) bool {
	switch command {
	case haptics.CommandPerform:
		return p.Perform != Deny
	case haptics.CommandIsSupported:
		return p.IsSupported != Deny
	default:
		return false
	}
}

// Config is the full set of settings.
type Config struct {
	Transport      string      `yaml:"transport"`
	Port           int         `yaml:"port"`
	Codec          string      `yaml:"codec"`
	Server         string      `yaml:"server"`
	Permissions    Permissions `yaml:"permissions"`
	RetryTransient bool        `yaml:"retry_transient"`
	LogLevel       string      `yaml:"log_level"`
	// AllowedOrigins lists extra http(s) origins the websocket transport
	// accepts, e.g. "http://localhost:5173". "*" accepts any origin.
	// Same-origin pages and non-web schemes (file://, app://) are always
	// accepted.
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{
		Transport: "stdio",
		Port:      8080,
		Codec:     "json",
		Permissions: Permissions{
			Perform:     Allow,
			IsSupported: Allow,
		},
		LogLevel: "warn",
	}
}

// Load reads path over the defaults. An empty path returns Default().
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks enumerated fields.
func (c Config) Validate() error {
	switch c.Transport {
	case "stdio", "streamable-http", "websocket":
	default:
		return fmt.Errorf("unsupported transport: %s (use stdio, streamable-http, or websocket)", c.Transport)
	}
	switch c.Codec {
	case "json", "cbor":
	default:
		return fmt.Errorf("unsupported codec: %s (use json or cbor)", c.Codec)
	}
	for name, a := range map[string]Access{"perform": c.Permissions.Perform, "is_supported": c.Permissions.IsSupported} {
		if a != Allow && a != Deny {
			return fmt.Errorf("permission %s: %q (use allow or deny)", name, a)
		}
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	for _, o := range c.AllowedOrigins {
		if o == "*" {
			continue
		}
		u, err := url.Parse(o)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("allowed origin %q: want scheme://host[:port] or *", o)
		}
	}
	return nil
}

// ParseLevel converts a log_level value to an slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning", "":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelWarn, fmt.Errorf("unknown log level: %q (expected debug, info, warn, or error)", s)
	}
}

// NewLogger returns a text logger on stderr at the configured level.
func (c Config) NewLogger() *slog.Logger {
	level, _ := ParseLevel(c.LogLevel)
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
