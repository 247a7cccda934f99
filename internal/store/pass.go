package store

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/charmbracelet/log"
)

// ErrDecrypt is returned when the decrypt command cannot be run at all.
var ErrDecrypt = errors.New("decrypt command failed")

// PassCommand decrypts entries by running `pass show <name>`.
type PassCommand struct {
	// Command is the pass executable, "pass" by default.
	Command string
	// Dir, when set, is exported as PASSWORD_STORE_DIR to the command.
	Dir    string
	Logger *log.Logger
}

// NewPassCommand returns a PassCommand running command against the store at dir.
func NewPassCommand(command, dir string, logger *log.Logger) *PassCommand {
	if command == "" {
		command = "pass"
	}
	return &PassCommand{Command: command, Dir: dir, Logger: logger}
}

// Decrypt runs the pass command and returns its non-empty stdout lines,
// trimmed. A non-zero exit status is not an error: whatever was printed is
// returned, usually nothing. Failing to start the command is ErrDecrypt.
func (p *PassCommand) Decrypt(ctx context.Context, name string) ([]string, error) {
	cmd := exec.CommandContext(ctx, p.Command, "show", name)
	if p.Dir != "" {
		cmd.Env = append(cmd.Environ(), "PASSWORD_STORE_DIR="+p.Dir)
	}
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return nil, fmt.Errorf("%w: %s show %s: %w", ErrDecrypt, p.Command, name, err)
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("%w: %s show %s: %w", ErrDecrypt, p.Command, name, ctxErr)
		}
		p.Logger.Warn("pass exited with an error", "entry", name, "code", exitErr.ExitCode(),
			"stderr", strings.TrimSpace(stderr.String()))
	}
	return splitOutput(stdout.String()), nil
}

func splitOutput(out string) []string {
	var lines []string
	for _, line := range strings.Split(out, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
