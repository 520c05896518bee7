package haptics

import "context"

// Command names carried by the invocation channel.
const (
	CommandPerform     = "perform"
	CommandIsSupported = "is_supported"
)

// Channel carries the two commands to a native command handler and returns
// its answers. Implementations must be safe for concurrent use.
type Channel interface {
	// IsSupported sends the is_supported command.
	IsSupported(ctx context.Context) (bool, error)

	// Perform sends the perform command with req's wire values.
	Perform(ctx context.Context, req Request) error
}
