//go:build linux || freebsd || openbsd || netbsd

package x11

import (
	"fmt"
	"os"

	"github.com/mj1618/pass-autotype/internal/platform"
)

func init() {
	platform.NewProviderFunc = func() (*platform.Provider, error) {
		x := New()
		return &platform.Provider{
			Inputter:      x,
			WindowManager: x,
		}, nil
	}
	platform.RequestPermissionsFunc = checkDisplay
}

// checkDisplay fails early when no X display is reachable.
func checkDisplay() error {
	if os.Getenv("DISPLAY") == "" {
		return fmt.Errorf("DISPLAY is not set: an X11 session is required")
	}
	return nil
}
