//go:build darwin

// Package darwin provides macOS haptic feedback through AppKit's
// NSHapticFeedbackManager.
// The performer requires CGo (Objective-C frameworks).
// When CGo is disabled, no provider is registered and callers see
// platform.ErrUnsupported.
package darwin
