package haptics

import (
	"fmt"
	"strings"
)

// PerformanceTime says when the feedback fires relative to the caller's
// render loop.
type PerformanceTime int

const (
	// Default lets the system pick the moment.
	Default PerformanceTime = 0
	// Now fires immediately.
	Now PerformanceTime = 1
	// DrawCompleted fires after the next screen update.
	DrawCompleted PerformanceTime = 2
)

// PerformanceTimes lists every performance time in wire order.
var PerformanceTimes = []PerformanceTime{Default, Now, DrawCompleted}

func (t PerformanceTime) String() string {
	switch t {
	case Default:
		return "default"
	case Now:
		return "now"
	case DrawCompleted:
		return "draw-completed"
	default:
		return fmt.Sprintf("time(%d)", int(t))
	}
}

// ParsePerformanceTime converts a flag or config value to a PerformanceTime.
func ParsePerformanceTime(s string) (PerformanceTime, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "default", "0", "":
		return Default, nil
	case "now", "1":
		return Now, nil
	case "draw-completed", "drawcompleted", "draw_completed", "2":
		return DrawCompleted, nil
	default:
		return Default, fmt.Errorf("unknown performance time: %q (expected default, now, or draw-completed)", s)
	}
}

// PerformanceTimeFromWire decodes a wire ordinal. Values outside the closed
// set decode to Default.
func PerformanceTimeFromWire(n int) PerformanceTime {
	switch PerformanceTime(n) {
	case Default, Now, DrawCompleted:
		return PerformanceTime(n)
	default:
		return Default
	}
}
