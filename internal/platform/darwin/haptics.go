//go:build darwin && cgo

package darwin

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework AppKit -framework Foundation
#import <AppKit/AppKit.h>

_Static_assert(NSHapticFeedbackPatternGeneric == 0, "NSHapticFeedbackPatternGeneric");
_Static_assert(NSHapticFeedbackPatternAlignment == 1, "NSHapticFeedbackPatternAlignment");
_Static_assert(NSHapticFeedbackPatternLevelChange == 2, "NSHapticFeedbackPatternLevelChange");
_Static_assert(NSHapticFeedbackPerformanceTimeDefault == 0, "NSHapticFeedbackPerformanceTimeDefault");
_Static_assert(NSHapticFeedbackPerformanceTimeNow == 1, "NSHapticFeedbackPerformanceTimeNow");
_Static_assert(NSHapticFeedbackPerformanceTimeDrawCompleted == 2, "NSHapticFeedbackPerformanceTimeDrawCompleted");

static int haptic_available(void) {
    @autoreleasepool {
        id<NSHapticFeedbackPerformer> p = [NSHapticFeedbackManager defaultPerformer];
        return p != nil ? 1 : 0;
    }
}

// Returns -1 when there is no default performer.
static int haptic_perform(long pattern, unsigned long when) {
    @autoreleasepool {
        id<NSHapticFeedbackPerformer> p = [NSHapticFeedbackManager defaultPerformer];
        if (p == nil) {
            return -1;
        }
        [p performFeedbackPattern:(NSHapticFeedbackPattern)pattern
                  performanceTime:(NSHapticFeedbackPerformanceTime)when];
        return 0;
    }
}
*/
import "C"

import (
	"fmt"

	"github.com/mj1618/macos-haptics/haptics"
)

// HapticPerformer implements platform.HapticPerformer with
// NSHapticFeedbackManager's default performer. It holds no state; the
// performer is looked up on every call.
type HapticPerformer struct{}

// NewHapticPerformer returns a new macOS haptic performer.
func NewHapticPerformer() *HapticPerformer {
	return &HapticPerformer{}
}

func (p *HapticPerformer) Available() bool {
	return C.haptic_available() != 0
}

func (p *HapticPerformer) Perform(pattern haptics.Pattern, at haptics.PerformanceTime) error {
	rc := C.haptic_perform(C.long(nativePattern(pattern)), C.ulong(nativeTime(at)))
	if rc != 0 {
		return fmt.Errorf("no default haptic feedback performer (pattern %s, time %s)", pattern, at)
	}
	return nil
}
