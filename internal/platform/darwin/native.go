//go:build darwin

package darwin

import "github.com/mj1618/macos-haptics/haptics"

// AppKit identifiers. NSHapticFeedbackPattern and the wire vocabulary use
// different orderings.
const (
	nsPatternGeneric     = 0
	nsPatternAlignment   = 1
	nsPatternLevelChange = 2

	nsTimeDefault       = 0
	nsTimeNow           = 1
	nsTimeDrawCompleted = 2
)

func nativePattern(p haptics.Pattern) int {
	switch p {
	case haptics.Alignment:
		return nsPatternAlignment
	case haptics.LevelChange:
		return nsPatternLevelChange
	default:
		return nsPatternGeneric
	}
}

func nativeTime(t haptics.PerformanceTime) int {
	switch t {
	case haptics.Now:
		return nsTimeNow
	case haptics.DrawCompleted:
		return nsTimeDrawCompleted
	default:
		return nsTimeDefault
	}
}
