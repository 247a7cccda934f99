package platform

import (
	"fmt"
	"runtime"
)

// Provider bundles all platform backends for the current OS.
type Provider struct {
	Inputter      Inputter
	WindowManager WindowManager
}

// ErrUnsupported is returned on unsupported platforms.
var ErrUnsupported = fmt.Errorf("pass-autotype is not supported on %s/%s; supported: linux (X11, xdotool), darwin (cgo)", runtime.GOOS, runtime.GOARCH)

// NewProviderFunc is set by platform-specific packages via init().
// See internal/platform/x11 and internal/platform/darwin for the registrations.
var NewProviderFunc func() (*Provider, error)

// RequestPermissionsFunc is set by platform-specific packages via init().
// It checks OS permissions (e.g. macOS accessibility) at startup.
var RequestPermissionsFunc func() error

// NewProvider returns a Provider for the current OS.
func NewProvider() (*Provider, error) {
	if NewProviderFunc == nil {
		return nil, ErrUnsupported
	}
	return NewProviderFunc()
}
