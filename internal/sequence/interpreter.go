package sequence

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mj1618/pass-autotype/internal/model"
	"github.com/mj1618/pass-autotype/internal/platform"
)

// DefaultTypeDelay is the pause between typed characters.
const DefaultTypeDelay = 20 * time.Millisecond

// Interpreter runs parsed actions against an entry. Actions run strictly in
// order; the first failing keystroke aborts the run.
type Interpreter struct {
	Inputter  platform.Inputter
	TypeDelay time.Duration
	Logger    *log.Logger

	// Sleep pauses for d. It defaults to a context-aware timer.
	Sleep func(ctx context.Context, d time.Duration) error
}

// NewInterpreter returns an Interpreter typing through inputter.
func NewInterpreter(inputter platform.Inputter, typeDelay time.Duration, logger *log.Logger) *Interpreter {
	return &Interpreter{
		Inputter:  inputter,
		TypeDelay: typeDelay,
		Logger:    logger,
		Sleep:     Sleep,
	}
}

// Execute parses sequence and runs it.
func (in *Interpreter) Execute(ctx context.Context, sequence string, entry *model.Entry) error {
	return in.Run(ctx, Parse(sequence), entry)
}

// Run executes actions in order. A field missing from the entry types
// nothing.
func (in *Interpreter) Run(ctx context.Context, actions []Action, entry *model.Entry) error {
	for i, action := range actions {
		in.Logger.Debug("action", "step", i, "action", action.String())

		switch a := action.(type) {
		case TypeAction:
			value, ok := entry.Field(a.Field)
			if !ok {
				in.Logger.Warn("field not in entry, typing nothing", "field", a.Field, "entry", entry.Name)
				continue
			}
			if value == "" {
				continue
			}
			if err := in.Inputter.TypeText(value, int(in.TypeDelay/time.Millisecond)); err != nil {
				return fmt.Errorf("type field %q: %w", a.Field, err)
			}
		case KeyAction:
			if err := in.Inputter.KeyCombo(a.Keys); err != nil {
				return fmt.Errorf("press %s: %w", a.String(), err)
			}
		case DelayAction:
			sleep := in.Sleep
			if sleep == nil {
				sleep = Sleep
			}
			if err := sleep(ctx, a.Duration); err != nil {
				return err
			}
		case NoOp:
			in.Logger.Debug("skipping token", "token", a.Token, "reason", a.Reason)
		}
	}
	return nil
}

// Sleep blocks for d or until ctx is done.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
