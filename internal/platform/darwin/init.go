//go:build darwin && cgo

package darwin

import "github.com/mj1618/pass-autotype/internal/platform"

func init() {
	platform.NewProviderFunc = func() (*platform.Provider, error) {
		return &platform.Provider{
			Inputter:      NewInputter(),
			WindowManager: NewWindowManager(),
		}, nil
	}
	platform.RequestPermissionsFunc = CheckAccessibilityPermission
}
