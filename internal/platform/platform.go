package platform

import "github.com/mj1618/pass-autotype/internal/model"

// Inputter simulates keyboard input into the focused window.
// Both methods block until the events have been delivered.
type Inputter interface {
	// TypeText types text literally, pausing delayMs between characters.
	TypeText(text string, delayMs int) error

	// KeyCombo presses a single key, or a combination such as ["ctrl", "l"].
	KeyCombo(keys []string) error
}

// WindowManager queries the desktop's window state.
type WindowManager interface {
	// ActiveWindow returns the currently focused window.
	ActiveWindow() (model.Window, error)
}
