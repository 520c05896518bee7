package platform

import "github.com/mj1618/macos-haptics/haptics"

// HapticPerformer drives the OS haptic engine.
type HapticPerformer interface {
	// Available reports whether a default performer exists. It queries the
	// OS on every call.
	Available() bool

	// Perform issues a single feedback dispatch. The OS may drop it silently
	// (no trackpad contact, haptics disabled); that is not an error.
	Perform(pattern haptics.Pattern, at haptics.PerformanceTime) error
}
