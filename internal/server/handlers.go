package server

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mj1618/macos-haptics/haptics"
	"github.com/mj1618/macos-haptics/internal/wire"
	"gopkg.in/yaml.v3"
)

func (s *Server) registerTools() {
	// is_supported
	s.mcp.AddTool(
		mcp.NewTool(haptics.CommandIsSupported,
			mcp.WithDescription("Report whether haptic feedback is available on this machine"),
		),
		s.handleIsSupported,
	)

	// perform
	s.mcp.AddTool(
		mcp.NewTool(haptics.CommandPerform,
			mcp.WithDescription("Perform haptic feedback on the Force Touch trackpad"),
			mcp.WithNumber(wire.ArgPattern, mcp.Description("Pattern: 0=alignment, 1=level-change, 2=generic (default)")),
			mcp.WithNumber(wire.ArgPerformanceTime, mcp.Description("When to perform: 0=default, 1=now, 2=draw-completed")),
		),
		s.handlePerform,
	)
}

// replyToText serializes a Reply to YAML for the MCP response.
func replyToText(r wire.Reply) string {
	b, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Sprintf("ok: %v\nerror: %s\ncode: %s", r.OK, r.Error, r.Code)
	}
	return string(b)
}

func toolResult(r wire.Reply) *mcp.CallToolResult {
	if !r.OK {
		return mcp.NewToolResultError(replyToText(r))
	}
	return mcp.NewToolResultText(replyToText(r))
}

func (s *Server) handleIsSupported(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return toolResult(s.call(ctx, haptics.CommandIsSupported, request.GetArguments())), nil
}

func (s *Server) handlePerform(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return toolResult(s.call(ctx, haptics.CommandPerform, request.GetArguments())), nil
}
