package haptics

import (
	"errors"
	"fmt"
)

// ErrUnsupportedPlatform is returned when no haptic provider exists on the
// current platform, e.g. on anything other than macOS.
var ErrUnsupportedPlatform = errors.New("haptic feedback is only supported on macOS")

// ChannelError reports that the invocation channel itself failed: the
// transport was unreachable, closed, or rejected the call before a handler
// produced an answer.
type ChannelError struct {
	Command string
	Err     error
}

func (e *ChannelError) Error() string {
	return fmt.Sprintf("invoke %s: %v", e.Command, e.Err)
}

func (e *ChannelError) Unwrap() error { return e.Err }

// PerformError is the failure returned by Client.Perform.
type PerformError struct {
	Request Request
	Err     error
}

func (e *PerformError) Error() string {
	return fmt.Sprintf("haptics: perform %s at %s: %v", e.Request.Pattern, e.Request.Time, e.Err)
}

func (e *PerformError) Unwrap() error { return e.Err }
