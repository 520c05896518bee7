package cmd

import (
	"context"
	"fmt"

	"github.com/mj1618/macos-haptics/haptics"
	"github.com/mj1618/macos-haptics/internal/bridge"
	"github.com/mj1618/macos-haptics/internal/command"
	"github.com/mj1618/macos-haptics/internal/config"
	"github.com/mj1618/macos-haptics/internal/platform"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// addClientFlags registers the flags shared by every command that talks to
// a handler.
func addClientFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "Path to a YAML config file")
	fs.String("server", "", "Send commands to a running server (ws://host:port/ws or http://host:port/mcp)")
	fs.String("codec", "json", "WebSocket codec: json, cbor")
	fs.String("log-level", "warn", "Log level: debug, info, warn, error")
	fs.Bool("retry-transient", false, "Probe support again after a transport failure instead of caching false")
}

// loadConfig reads --config and applies explicitly set flags on top.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	fs := cmd.Flags()
	path, _ := fs.GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}

	if fs.Changed("server") {
		cfg.Server, _ = fs.GetString("server")
	}
	if fs.Changed("codec") {
		cfg.Codec, _ = fs.GetString("codec")
	}
	if fs.Changed("log-level") {
		cfg.LogLevel, _ = fs.GetString("log-level")
	}
	if fs.Changed("retry-transient") {
		cfg.RetryTransient, _ = fs.GetBool("retry-transient")
	}
	if fs.Changed("transport") {
		cfg.Transport, _ = fs.GetString("transport")
	}
	if fs.Changed("port") {
		cfg.Port, _ = fs.GetInt("port")
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// newHandler returns a command handler for the local platform. On
// platforms without haptics the handler reports unsupported.
func newHandler(cfg config.Config) *command.Handler {
	provider, err := platform.NewProvider()
	if err != nil {
		cfg.NewLogger().Debug("no haptics provider", "error", err)
		provider = nil
	}
	return command.New(provider)
}

// newClient builds a facade over the configured channel. The returned
// function releases the channel.
func newClient(ctx context.Context, cfg config.Config) (*haptics.Client, func(), error) {
	logger := cfg.NewLogger()

	var (
		ch      haptics.Channel
		release = func() {}
	)
	if cfg.Server == "" {
		ch = newHandler(cfg)
	} else {
		conn, err := bridge.Dial(ctx, cfg.Server, cfg.Codec)
		if err != nil {
			return nil, nil, fmt.Errorf("connect to %s: %w", cfg.Server, err)
		}
		ch = conn
		release = func() {
			if err := conn.Close(); err != nil {
				logger.Debug("close channel", "error", err)
			}
		}
	}

	c := haptics.New(ch,
		haptics.WithLogger(logger),
		haptics.WithTransientRetry(cfg.RetryTransient),
	)
	return c, release, nil
}
