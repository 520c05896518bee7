//go:build darwin

package darwin

import (
	"testing"

	"github.com/mj1618/macos-haptics/haptics"
)

func TestNativePattern(t *testing.T) {
	tests := []struct {
		in   haptics.Pattern
		want int
	}{
		{haptics.Alignment, nsPatternAlignment},
		{haptics.LevelChange, nsPatternLevelChange},
		{haptics.Generic, nsPatternGeneric},
		{haptics.Pattern(42), nsPatternGeneric},
	}
	for _, tt := range tests {
		if got := nativePattern(tt.in); got != tt.want {
			t.Errorf("nativePattern(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestNativeTime(t *testing.T) {
	tests := []struct {
		in   haptics.PerformanceTime
		want int
	}{
		{haptics.Default, nsTimeDefault},
		{haptics.Now, nsTimeNow},
		{haptics.DrawCompleted, nsTimeDrawCompleted},
		{haptics.PerformanceTime(-3), nsTimeDefault},
	}
	for _, tt := range tests {
		if got := nativeTime(tt.in); got != tt.want {
			t.Errorf("nativeTime(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
