// Package command implements the native side of the two haptics commands.
//
// A Handler holds no mutable state. Every call queries or dispatches to the
// platform performer exactly once, so it is safe to invoke from any number
// of transport goroutines at once.
package command

import (
	"context"
	"fmt"

	"github.com/mj1618/macos-haptics/haptics"
	"github.com/mj1618/macos-haptics/internal/platform"
)

// Handler translates command payloads into calls on the platform performer.
type Handler struct {
	performer platform.HapticPerformer
}

// New returns a Handler for provider. A nil provider, or one without a
// haptic performer, behaves as a platform with no haptics at all.
func New(provider *platform.Provider) *Handler {
	h := &Handler{}
	if provider != nil {
		h.performer = provider.Haptics
	}
	return h
}

// HandleIsSupported answers the is_supported command. A missing provider
// reports false rather than an error.
func (h *Handler) HandleIsSupported(ctx context.Context) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	if h.performer == nil {
		return false, nil
	}
	return h.performer.Available(), nil
}

// HandlePerform answers the perform command with raw wire values.
func (h *Handler) HandlePerform(ctx context.Context, pattern, performanceTime int) error {
	req := haptics.WireRequest{Pattern: pattern, PerformanceTime: performanceTime}.Request()
	return h.dispatch(ctx, req)
}

func (h *Handler) dispatch(ctx context.Context, req haptics.Request) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if h.performer == nil {
		return haptics.ErrUnsupportedPlatform
	}
	if err := h.performer.Perform(req.Pattern, req.Time); err != nil {
		return fmt.Errorf("perform %s: %w", req.Pattern, err)
	}
	return nil
}

// IsSupported implements haptics.Channel for in-process use.
func (h *Handler) IsSupported(ctx context.Context) (bool, error) {
	return h.HandleIsSupported(ctx)
}

// Perform implements haptics.Channel for in-process use. The request goes
// through the same wire decoding as a remote call.
func (h *Handler) Perform(ctx context.Context, req haptics.Request) error {
	w := req.Wire()
	return h.HandlePerform(ctx, w.Pattern, w.PerformanceTime)
}

var _ haptics.Channel = (*Handler)(nil)
