// Package picker implements the interactive entry chooser used when several
// credential entries match the active window.
package picker

import (
	"context"
	"errors"
	"fmt"
)

const (
	// Title is the window title of the chooser.
	Title = "pass-autotype"
	// Prompt is shown above the candidate list.
	Prompt = "choose a password entry"
)

// ErrUnavailable is returned when the picker cannot be shown at all.
var ErrUnavailable = errors.New("picker unavailable")

// Picker asks the user to choose one row. ok is false when the user
// cancelled; a cancellation is not an error.
type Picker interface {
	Pick(ctx context.Context, columns []string, rows [][]string) (index int, ok bool, err error)
}

// Names lists the pickers accepted by New.
var Names = []string{"zenity", "terminal"}

// New returns the picker registered under name. command overrides the
// executable of command-based pickers.
func New(name, command string) (Picker, error) {
	switch name {
	case "zenity":
		return NewZenity(command), nil
	case "terminal":
		return NewTerminal(), nil
	default:
		return nil, fmt.Errorf("unknown picker %q (use zenity or terminal)", name)
	}
}
