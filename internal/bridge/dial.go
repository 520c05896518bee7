// Package bridge connects a haptics.Client to a remote command handler.
package bridge

import (
	"context"
	"fmt"
	"net/url"

	"github.com/mj1618/macos-haptics/haptics"
	"github.com/mj1618/macos-haptics/internal/wire"
)

// Conn is a channel that holds a connection open.
type Conn interface {
	haptics.Channel
	Close() error
}

// Dial picks a transport from the URL scheme: ws/wss for the WebSocket
// endpoint, http/https for a streamable-http MCP server. codecName only
// applies to WebSocket connections.
func Dial(ctx context.Context, rawURL, codecName string) (Conn, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid server url %q: %w", rawURL, err)
	}
	switch u.Scheme {
	case "ws", "wss":
		codec, err := wire.CodecByName(codecName)
		if err != nil {
			return nil, err
		}
		return DialWebSocket(ctx, rawURL, codec)
	case "http", "https":
		return DialMCP(ctx, rawURL)
	default:
		return nil, fmt.Errorf("unsupported server url scheme %q (use ws, wss, http, or https)", u.Scheme)
	}
}
