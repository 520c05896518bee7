// Package wire defines the envelopes and codecs shared by both ends of the
// invocation channel.
package wire

import (
	"errors"
	"fmt"
	"math"

	"github.com/mj1618/macos-haptics/haptics"
)

// Error codes carried in Reply.Code.
const (
	CodeUnsupportedPlatform = "unsupported_platform"
	CodeForbidden           = "forbidden"
	CodeBadRequest          = "bad_request"
	CodeUnknownCommand      = "unknown_command"
	CodeDispatchFailed      = "dispatch_failed"
)

// Argument keys of the perform command.
const (
	ArgPattern         = "pattern"
	ArgPerformanceTime = "performanceTime"
)

// Call is one command invocation.
type Call struct {
	ID   string         `json:"id"             cbor:"id"`
	Cmd  string         `json:"cmd"            cbor:"cmd"`
	Args map[string]any `json:"args,omitempty" cbor:"args,omitempty"`
}

// Reply answers a Call. Supported is set only for is_supported.
type Reply struct {
	ID        string `yaml:"id,omitempty"        json:"id,omitempty"        cbor:"id,omitempty"`
	OK        bool   `yaml:"ok"                  json:"ok"                  cbor:"ok"`
	Supported *bool  `yaml:"supported,omitempty" json:"supported,omitempty" cbor:"supported,omitempty"`
	Error     string `yaml:"error,omitempty"     json:"error,omitempty"     cbor:"error,omitempty"`
	Code      string `yaml:"code,omitempty"      json:"code,omitempty"      cbor:"code,omitempty"`
}

// Failure builds an error reply. Errors wrapping
// haptics.ErrUnsupportedPlatform get CodeUnsupportedPlatform; everything
// else gets CodeDispatchFailed.
func Failure(err error) Reply {
	code := CodeDispatchFailed
	if errors.Is(err, haptics.ErrUnsupportedPlatform) {
		code = CodeUnsupportedPlatform
	}
	return Reply{OK: false, Error: err.Error(), Code: code}
}

// Err converts an error reply back into an error. It returns nil for OK
// replies.
func (r Reply) Err() error {
	if r.OK {
		return nil
	}
	if r.Code == CodeUnsupportedPlatform {
		return haptics.ErrUnsupportedPlatform
	}
	msg := r.Error
	if msg == "" {
		msg = "command failed"
	}
	if r.Code != "" {
		return fmt.Errorf("%s: %s", r.Code, msg)
	}
	return errors.New(msg)
}

// PerformArgs returns the argument map of a perform call.
func PerformArgs(req haptics.Request) map[string]any {
	w := req.Wire()
	return map[string]any{
		ArgPattern:         w.Pattern,
		ArgPerformanceTime: w.PerformanceTime,
	}
}

// IntArg reads a non-negative integer argument no larger than
// math.MaxInt32. JSON numbers arrive as float64 and CBOR integers as uint64
// or int64; all pass the same range check. A missing key yields def.
func IntArg(args map[string]any, key string, def int) (int, error) {
	v, ok := args[key]
	if !ok || v == nil {
		return def, nil
	}
	outOfRange := func() error {
		return fmt.Errorf("argument %s out of range: %v (want 0..%d)", key, v, math.MaxInt32)
	}
	switch n := v.(type) {
	case int:
		if n < 0 || n > math.MaxInt32 {
			return 0, outOfRange()
		}
		return n, nil
	case int64:
		if n < 0 || n > math.MaxInt32 {
			return 0, outOfRange()
		}
		return int(n), nil
	case uint64:
		if n > math.MaxInt32 {
			return 0, outOfRange()
		}
		return int(n), nil
	case float64:
		if n != math.Trunc(n) {
			return 0, fmt.Errorf("argument %s must be an integer, got %v", key, n)
		}
		// Negated so the infinities fail too.
		if !(n >= 0 && n <= math.MaxInt32) {
			return 0, outOfRange()
		}
		return int(n), nil
	default:
		return 0, fmt.Errorf("argument %s must be an integer, got %T", key, v)
	}
}
