// Package server hosts the native command handler behind an invocation
// channel: MCP tools (stdio or streamable HTTP) or a WebSocket endpoint.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/mj1618/macos-haptics/haptics"
	"github.com/mj1618/macos-haptics/internal/command"
	"github.com/mj1618/macos-haptics/internal/config"
	"github.com/mj1618/macos-haptics/internal/version"
	"github.com/mj1618/macos-haptics/internal/wire"
)

// WebSocketPath is where the WebSocket transport accepts connections.
const WebSocketPath = "/ws"

// Server exposes a command.Handler over the configured transports.
type Server struct {
	handler     *command.Handler
	permissions config.Permissions
	logger      *slog.Logger
	mcp         *mcpserver.MCPServer

	allowedOrigins []string
}

// Options configures a Server.
type Options struct {
	Permissions config.Permissions
	Logger      *slog.Logger
	// AllowedOrigins extends the websocket origin check; see originAllowed.
	AllowedOrigins []string
}

// New creates a server with both haptics tools registered.
func New(handler *command.Handler, opts Options) *Server {
	s := &Server{
		handler:     handler,
		permissions: opts.Permissions,
		logger:      opts.Logger,

		allowedOrigins: opts.AllowedOrigins,
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	s.mcp = mcpserver.NewMCPServer("macos-haptics", version.Version)
	s.registerTools()
	return s
}

// MCP returns the underlying MCP server, for in-process clients.
func (s *Server) MCP() *mcpserver.MCPServer {
	return s.mcp
}

// Serve runs the transport named in cfg until it fails.
func (s *Server) Serve(cfg config.Config) error {
	addr := fmt.Sprintf(":%d", cfg.Port)
	switch cfg.Transport {
	case "stdio":
		return mcpserver.ServeStdio(s.mcp)
	case "streamable-http":
		s.logger.Info("serving MCP", "addr", addr)
		httpServer := mcpserver.NewStreamableHTTPServer(s.mcp)
		return httpServer.Start(addr)
	case "websocket":
		mux := http.NewServeMux()
		mux.Handle(WebSocketPath, s.WebSocketHandler())
		s.logger.Info("serving websocket", "addr", addr, "path", WebSocketPath)
		return http.ListenAndServe(addr, mux)
	default:
		return fmt.Errorf("unsupported transport: %s (use stdio, streamable-http, or websocket)", cfg.Transport)
	}
}

// call runs one command and renders the outcome as a reply. Every
// transport goes through here, so permissions are enforced in one place.
func (s *Server) call(ctx context.Context, cmd string, args map[string]any) wire.Reply {
	switch cmd {
	case haptics.CommandIsSupported, haptics.CommandPerform:
	default:
		return wire.Reply{Error: fmt.Sprintf("unknown command %q", cmd), Code: wire.CodeUnknownCommand}
	}
	if !s.permissions.Allowed(cmd) {
		s.logger.Warn("command denied", "cmd", cmd)
		return wire.Reply{Error: fmt.Sprintf("command %s is not allowed", cmd), Code: wire.CodeForbidden}
	}

	switch cmd {
	case haptics.CommandIsSupported:
		supported, err := s.handler.HandleIsSupported(ctx)
		if err != nil {
			return wire.Failure(err)
		}
		s.logger.Debug("is_supported", "supported", supported)
		return wire.Reply{OK: true, Supported: &supported}

	default:
		pattern, err := wire.IntArg(args, wire.ArgPattern, int(haptics.Generic))
		if err != nil {
			return wire.Reply{Error: err.Error(), Code: wire.CodeBadRequest}
		}
		at, err := wire.IntArg(args, wire.ArgPerformanceTime, int(haptics.Default))
		if err != nil {
			return wire.Reply{Error: err.Error(), Code: wire.CodeBadRequest}
		}
		if err := s.handler.HandlePerform(ctx, pattern, at); err != nil {
			s.logger.Warn("perform failed", "pattern", pattern, "performanceTime", at, "error", err)
			return wire.Failure(err)
		}
		s.logger.Debug("perform", "pattern", pattern, "performanceTime", at)
		return wire.Reply{OK: true}
	}
}
