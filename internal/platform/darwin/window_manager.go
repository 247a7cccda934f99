//go:build darwin && cgo

package darwin

import (
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"github.com/mj1618/pass-autotype/internal/model"
)

// frontWindowScript prints "<pid>\t<app>\t<window title>" for the frontmost
// application. The title is empty when the app has no window.
const frontWindowScript = `tell application "System Events"
	set p to first application process whose frontmost is true
	set t to ""
	try
		set t to name of front window of p
	end try
	return (unix id of p as text) & tab & (name of p) & tab & t
end tell`

// DarwinWindowManager implements the platform.WindowManager interface for macOS.
type DarwinWindowManager struct {
	// Command is the osascript executable.
	Command string
}

// NewWindowManager creates a new macOS window manager.
func NewWindowManager() *DarwinWindowManager {
	return &DarwinWindowManager{Command: "osascript"}
}

func (wm *DarwinWindowManager) ActiveWindow() (model.Window, error) {
	if err := CheckAccessibilityPermission(); err != nil {
		return model.Window{}, err
	}
	out, err := exec.Command(wm.Command, "-e", frontWindowScript).Output()
	if err != nil {
		return model.Window{}, fmt.Errorf("osascript: %w", err)
	}
	return parseFrontWindow(string(out))
}

func parseFrontWindow(out string) (model.Window, error) {
	parts := strings.SplitN(strings.TrimRight(out, "\r\n"), "\t", 3)
	if len(parts) != 3 {
		return model.Window{}, fmt.Errorf("unexpected osascript output: %q", out)
	}
	pid, err := strconv.Atoi(parts[0])
	if err != nil {
		return model.Window{}, fmt.Errorf("unexpected pid %q: %w", parts[0], err)
	}
	return model.Window{ID: pid, App: parts[1], Title: parts[2]}, nil
}
