package haptics

import (
	"fmt"
	"strings"
)

// Pattern is the kind of haptic feedback to perform.
//
// Values are the stable wire ordinals carried by the perform command. They
// are not the AppKit constants; the darwin layer translates them.
type Pattern int

const (
	// Alignment is used when the user is dragging something into alignment
	// with another object, such as a guide or an edge.
	Alignment Pattern = 0
	// LevelChange is used when the user crosses a discrete step, such as
	// the pressure levels of a force-click.
	LevelChange Pattern = 1
	// Generic is general purpose feedback.
	Generic Pattern = 2
)

// Patterns lists every pattern in wire order.
var Patterns = []Pattern{Alignment, LevelChange, Generic}

func (p Pattern) String() string {
	switch p {
	case Alignment:
		return "alignment"
	case LevelChange:
		return "level-change"
	case Generic:
		return "generic"
	default:
		return fmt.Sprintf("pattern(%d)", int(p))
	}
}

// ParsePattern converts a flag or config value to a Pattern.
func ParsePattern(s string) (Pattern, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "alignment", "0":
		return Alignment, nil
	case "level-change", "levelchange", "level_change", "1":
		return LevelChange, nil
	case "generic", "2", "":
		return Generic, nil
	default:
		return Generic, fmt.Errorf("unknown pattern: %q (expected alignment, level-change, or generic)", s)
	}
}

// PatternFromWire decodes a wire ordinal. Values outside the closed set
// decode to Generic.
func PatternFromWire(n int) Pattern {
	switch Pattern(n) {
	case Alignment, LevelChange, Generic:
		return Pattern(n)
	default:
		return Generic
	}
}
