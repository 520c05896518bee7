package cmd

import (
	"fmt"

	"github.com/mj1618/macos-haptics/internal/server"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the haptics commands to other processes",
	Long: `Start a server exposing the is_supported and perform commands.

Supported transports:
  stdio             MCP over standard I/O (default)
  streamable-http   MCP over streamable HTTP, at /mcp
  websocket         JSON or CBOR invoke envelopes, at /ws

Each command can be denied independently in the config file:

  permissions:
    perform: allow
    is_supported: deny

Browser pages on other http(s) origins are refused by the websocket
transport unless listed:

  allowed_origins:
    - http://localhost:5173

Examples:
  haptics serve
  haptics serve --transport websocket --port 8080
  haptics serve --transport streamable-http --config haptics.yaml`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("transport", "stdio", "Transport: stdio, streamable-http, websocket")
	serveCmd.Flags().Int("port", 8080, "Port for the streamable-http and websocket transports")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	srv := server.New(newHandler(cfg), server.Options{
		Permissions:    cfg.Permissions,
		Logger:         cfg.NewLogger(),
		AllowedOrigins: cfg.AllowedOrigins,
	})
	if err := srv.Serve(cfg); err != nil {
		return fmt.Errorf("serve %s: %w", cfg.Transport, err)
	}
	return nil
}
