package picker

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// zenity exit statuses that mean the dialog was dismissed.
const (
	zenityCancelled = 1
	zenityTimedOut  = 5
)

// Zenity shows a GTK list dialog through zenity(1). It needs no terminal.
type Zenity struct {
	Command string
}

// NewZenity returns a Zenity picker; an empty command means "zenity".
func NewZenity(command string) *Zenity {
	if command == "" {
		command = "zenity"
	}
	return &Zenity{Command: command}
}

// Pick shows the dialog and returns the index of the chosen row. The first
// column must hold the row index.
func (z *Zenity) Pick(ctx context.Context, columns []string, rows [][]string) (int, bool, error) {
	args := []string{
		"--list",
		"--title=" + Title,
		"--text=" + Prompt,
		"--print-column=1",
	}
	for _, c := range columns {
		args = append(args, "--column="+c)
	}
	for _, row := range rows {
		args = append(args, row...)
	}

	out, err := exec.CommandContext(ctx, z.Command, args...).Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && ctx.Err() == nil {
			switch exitErr.ExitCode() {
			case zenityCancelled, zenityTimedOut:
				return 0, false, nil
			}
		}
		return 0, false, fmt.Errorf("%w: %s: %w", ErrUnavailable, z.Command, err)
	}
	return parseSelection(string(out), len(rows))
}

// parseSelection reads the index printed by zenity. Several selected rows
// are separated by "|"; the first one wins.
func parseSelection(out string, n int) (int, bool, error) {
	first, _, _ := strings.Cut(strings.TrimSpace(out), "|")
	if first == "" {
		return 0, false, nil
	}
	index, err := strconv.Atoi(first)
	if err != nil {
		return 0, false, fmt.Errorf("unexpected selection %q: %w", first, err)
	}
	if index < 0 || index >= n {
		return 0, false, fmt.Errorf("selection %d out of range", index)
	}
	return index, true, nil
}
