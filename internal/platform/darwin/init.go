//go:build darwin && cgo

package darwin

import "github.com/mj1618/macos-haptics/internal/platform"

func init() {
	platform.NewProviderFunc = func() (*platform.Provider, error) {
		return &platform.Provider{
			Haptics: NewHapticPerformer(),
		}, nil
	}
}
