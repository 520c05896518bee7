package bridge

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/client"
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/mj1618/macos-haptics/haptics"
	"github.com/mj1618/macos-haptics/internal/version"
	"github.com/mj1618/macos-haptics/internal/wire"
	"gopkg.in/yaml.v3"
)

// MCPChannel sends haptics commands as MCP tool calls.
type MCPChannel struct {
	client *client.Client
}

// NewInProcess connects to an MCP server running in the same process.
func NewInProcess(ctx context.Context, srv *mcpserver.MCPServer) (*MCPChannel, error) {
	c, err := client.NewInProcessClient(srv)
	if err != nil {
		return nil, fmt.Errorf("create in-process client: %w", err)
	}
	return startMCP(ctx, c)
}

// DialMCP connects to a streamable-http MCP server, e.g.
// http://localhost:8080/mcp.
func DialMCP(ctx context.Context, url string) (*MCPChannel, error) {
	c, err := client.NewStreamableHttpClient(url)
	if err != nil {
		return nil, fmt.Errorf("create mcp client for %s: %w", url, err)
	}
	return startMCP(ctx, c)
}

func startMCP(ctx context.Context, c *client.Client) (*MCPChannel, error) {
	if err := c.Start(ctx); err != nil {
		_ = c.Close()
		return nil, fmt.Errorf("start mcp client: %w", err)
	}

	req := mcp.InitializeRequest{}
	req.Params.ProtocolVersion = mcp.LATEST_PROTOCOL_VERSION
	req.Params.ClientInfo = mcp.Implementation{
		Name:    "macos-haptics",
		Version: version.Version,
	}
	if _, err := c.Initialize(ctx, req); err != nil {
		_ = c.Close()
		return nil, fmt.Errorf("initialize mcp session: %w", err)
	}
	return &MCPChannel{client: c}, nil
}

// IsSupported implements haptics.Channel.
func (m *MCPChannel) IsSupported(ctx context.Context) (bool, error) {
	reply, err := m.invoke(ctx, haptics.CommandIsSupported, nil)
	if err != nil {
		return false, err
	}
	return supportedFrom(reply)
}

// Perform implements haptics.Channel.
func (m *MCPChannel) Perform(ctx context.Context, req haptics.Request) error {
	reply, err := m.invoke(ctx, haptics.CommandPerform, wire.PerformArgs(req))
	if err != nil {
		return err
	}
	return reply.Err()
}

// Close ends the MCP session.
func (m *MCPChannel) Close() error {
	return m.client.Close()
}

func (m *MCPChannel) invoke(ctx context.Context, cmd string, args map[string]any) (wire.Reply, error) {
	req := mcp.CallToolRequest{}
	req.Params.Name = cmd
	if args != nil {
		req.Params.Arguments = args
	}

	res, err := m.client.CallTool(ctx, req)
	if err != nil {
		return wire.Reply{}, &haptics.ChannelError{Command: cmd, Err: err}
	}

	text := resultText(res)
	var reply wire.Reply
	if err := yaml.Unmarshal([]byte(text), &reply); err != nil {
		if res.IsError {
			// Rejected by the MCP layer itself (e.g. unknown tool).
			return wire.Reply{}, &haptics.ChannelError{Command: cmd, Err: errors.New(strings.TrimSpace(text))}
		}
		return wire.Reply{}, &haptics.ChannelError{Command: cmd, Err: fmt.Errorf("decode reply: %w", err)}
	}
	if res.IsError {
		reply.OK = false
	}
	return reply, nil
}

func resultText(res *mcp.CallToolResult) string {
	var b strings.Builder
	for _, c := range res.Content {
		switch tc := c.(type) {
		case mcp.TextContent:
			b.WriteString(tc.Text)
		case *mcp.TextContent:
			b.WriteString(tc.Text)
		}
	}
	return b.String()
}

func supportedFrom(reply wire.Reply) (bool, error) {
	if err := reply.Err(); err != nil {
		return false, err
	}
	if reply.Supported == nil {
		return false, errors.New("is_supported reply has no supported field")
	}
	return *reply.Supported, nil
}

var _ haptics.Channel = (*MCPChannel)(nil)
