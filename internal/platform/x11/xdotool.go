package x11

import (
	"bytes"
	"fmt"
	"io"
	"os/exec"
	"strconv"
	"strings"

	"github.com/mj1618/pass-autotype/internal/model"
)

// Xdotool implements platform.Inputter and platform.WindowManager on top of
// the xdotool command. Every call runs one short-lived process.
type Xdotool struct {
	// Command is the xdotool executable.
	Command string
}

// New returns an Xdotool using the xdotool found on PATH.
func New() *Xdotool {
	return &Xdotool{Command: "xdotool"}
}

// TypeText types text into the focused window. The text is passed on stdin
// so it never shows up in the process list.
func (x *Xdotool) TypeText(text string, delayMs int) error {
	if delayMs < 0 {
		delayMs = 0
	}
	_, err := x.runInput(strings.NewReader(text), "type", "--clearmodifiers", "--delay", strconv.Itoa(delayMs), "--file", "-")
	return err
}

// KeyCombo presses keys as one combination, e.g. ["ctrl", "l"] -> "ctrl+l".
func (x *Xdotool) KeyCombo(keys []string) error {
	if len(keys) == 0 {
		return fmt.Errorf("no key specified")
	}
	_, err := x.run("key", "--clearmodifiers", "--", strings.Join(keys, "+"))
	return err
}

// ActiveWindow returns the id and title of the focused window.
func (x *Xdotool) ActiveWindow() (model.Window, error) {
	out, err := x.run("getactivewindow")
	if err != nil {
		return model.Window{}, err
	}
	idStr := strings.TrimSpace(out)
	id, err := strconv.Atoi(idStr)
	if err != nil {
		return model.Window{}, fmt.Errorf("unexpected window id %q: %w", idStr, err)
	}

	title, err := x.run("getwindowname", idStr)
	if err != nil {
		return model.Window{}, err
	}
	return model.Window{ID: id, Title: strings.TrimRight(title, "\r\n")}, nil
}

func (x *Xdotool) run(args ...string) (string, error) {
	return x.runInput(nil, args...)
}

// runInput executes xdotool with args and stdin. Typed text is never
// included in errors.
func (x *Xdotool) runInput(stdin io.Reader, args ...string) (string, error) {
	cmd := exec.Command(x.Command, args...)
	cmd.Stdin = stdin
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return "", fmt.Errorf("%s %s: %w: %s", x.Command, args[0], err, msg)
		}
		return "", fmt.Errorf("%s %s: %w", x.Command, args[0], err)
	}
	return stdout.String(), nil
}
