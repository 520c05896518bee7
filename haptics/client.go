// Package haptics is the public binding for macOS haptic feedback.
//
// A Client sends two commands, is_supported and perform, over a Channel to a
// native command handler. The handler may live in-process or behind the
// MCP or WebSocket transports served by `haptics serve`.
//
//	c := haptics.New(ch)
//	if c.IsSupported(ctx) {
//		_ = c.Perform(ctx, haptics.WithPattern(haptics.Alignment), haptics.At(haptics.Now))
//	}
//
// Feedback only reaches the user when they touch a Force Touch trackpad and
// have not disabled it in System Settings. A nil error from Perform means the
// handler accepted the request, not that anything was felt.
package haptics

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"golang.org/x/sync/singleflight"
)

type supportState int

const (
	supportUnknown supportState = iota
	supportYes
	supportNo
)

const probeKey = CommandIsSupported

// Client is the binding facade. It owns the process-wide support cache and
// is safe for concurrent use.
type Client struct {
	ch             Channel
	logger         *slog.Logger
	retryTransient bool

	probes singleflight.Group

	mu      sync.RWMutex
	support supportState
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger that receives probe diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithTransientRetry leaves the support cache unresolved when the probe
// fails with a *ChannelError, so the next IsSupported call probes again.
// Handler answers and handler errors are always cached.
func WithTransientRetry(enabled bool) Option {
	return func(c *Client) { c.retryTransient = enabled }
}

// New returns a Client over ch. The support cache starts unknown.
func New(ch Channel, opts ...Option) *Client {
	c := &Client{
		ch:      ch,
		logger:  slog.Default(),
		support: supportUnknown,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// IsSupported reports whether haptic feedback is available. The first call
// probes the handler; every later call returns the cached answer. Concurrent
// first calls share one probe. Probe failures resolve to false and are only
// logged.
//
// The shared probe does not inherit ctx cancellation. A caller whose ctx
// ends first gets false, and the cache is left for the probe to resolve.
func (c *Client) IsSupported(ctx context.Context) bool {
	if v, ok := c.cached(); ok {
		return v
	}
	probeCtx := context.WithoutCancel(ctx)
	res := c.probes.DoChan(probeKey, func() (interface{}, error) {
		// Re-check: a flight may have resolved between cached() and DoChan.
		if v, ok := c.cached(); ok {
			return v, nil
		}
		return c.probe(probeCtx), nil
	})
	select {
	case r := <-res:
		return r.Val.(bool)
	case <-ctx.Done():
		c.logger.Debug("haptics support probe abandoned by caller", "error", ctx.Err())
		return false
	}
}

func (c *Client) cached() (bool, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	switch c.support {
	case supportYes:
		return true, true
	case supportNo:
		return false, true
	default:
		return false, false
	}
}

func (c *Client) resolve(v bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.support != supportUnknown {
		return
	}
	if v {
		c.support = supportYes
	} else {
		c.support = supportNo
	}
}

// probe is the fail-closed wrapper: errors never leave it.
func (c *Client) probe(ctx context.Context) bool {
	supported, err := c.ch.IsSupported(ctx)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			c.logger.Warn("haptics support probe interrupted, will retry", "error", err)
			return false
		}
		var chErr *ChannelError
		if c.retryTransient && errors.As(err, &chErr) {
			c.logger.Warn("haptics support probe failed, will retry", "error", err)
			return false
		}
		c.logger.Warn("haptics support probe failed, treating as unsupported", "error", err)
		c.resolve(false)
		return false
	}
	c.logger.Debug("haptics support resolved", "supported", supported)
	c.resolve(supported)
	return supported
}

// Perform sends one perform request. With no options it performs Generic
// feedback at Default time. It does not consult the support cache.
func (c *Client) Perform(ctx context.Context, opts ...RequestOption) error {
	return c.PerformRequest(ctx, NewRequest(opts...))
}

// PerformRequest sends req as one perform request.
func (c *Client) PerformRequest(ctx context.Context, req Request) error {
	return c.dispatch(ctx, req)
}

// dispatch is the propagating wrapper: every failure reaches the caller.
func (c *Client) dispatch(ctx context.Context, req Request) error {
	if err := c.ch.Perform(ctx, req); err != nil {
		return &PerformError{Request: req, Err: err}
	}
	return nil
}
