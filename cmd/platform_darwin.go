//go:build darwin

package cmd

// Registers the macOS haptics provider.
import _ "github.com/mj1618/macos-haptics/internal/platform/darwin"
