// Package autotype runs one autotype pass: it captures the focused window,
// finds the credential entry whose descriptor matches the window title and
// types that entry's sequence into the window.
package autotype

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mj1618/pass-autotype/internal/match"
	"github.com/mj1618/pass-autotype/internal/model"
	"github.com/mj1618/pass-autotype/internal/platform"
	"github.com/mj1618/pass-autotype/internal/sequence"
)

// Outcome is how a run ended without error.
type Outcome string

const (
	OutcomeTyped         Outcome = "typed"
	OutcomeNoDescriptors Outcome = "no-descriptors"
	OutcomeNoMatch       Outcome = "no-match"
	OutcomeCancelled     Outcome = "cancelled"
	OutcomeDryRun        Outcome = "dry-run"
)

// Result describes a finished run. It never carries field values.
type Result struct {
	Outcome Outcome      `yaml:"outcome"           json:"outcome"`
	Window  model.Window `yaml:"window"            json:"window"`
	Matched []string     `yaml:"matched,omitempty" json:"matched,omitempty"`
	Group   string       `yaml:"group,omitempty"   json:"group,omitempty"`
	Name    string       `yaml:"name,omitempty"    json:"name,omitempty"`
	Steps   int          `yaml:"steps,omitempty"   json:"steps,omitempty"`
}

// Scanner produces the descriptors of the store.
type Scanner interface {
	Scan() (map[string]*model.Descriptor, error)
}

// Resolver picks the entry to type among matched descriptors. A nil entry
// means nothing should be typed.
type Resolver interface {
	Resolve(ctx context.Context, matched []*model.Descriptor) (*model.Entry, error)
}

// Options tune the steps performed before the sequence runs.
type Options struct {
	// Sleep lets the target window settle before the first keystroke.
	Sleep time.Duration
	// Backspace erases the character that triggered the focus change.
	Backspace bool
	// DryRun resolves the entry but types nothing.
	DryRun bool
}

// Runner wires the autotype stages together.
type Runner struct {
	Windows     platform.WindowManager
	Inputter    platform.Inputter
	Scanner     Scanner
	Resolver    Resolver
	Interpreter *sequence.Interpreter
	Options     Options
	Logger      *log.Logger
}

// Run performs one autotype pass. The window is queried exactly once; the
// match and the typing both act on that window.
func (r *Runner) Run(ctx context.Context) (*Result, error) {
	window, err := r.Windows.ActiveWindow()
	if err != nil {
		return nil, fmt.Errorf("query active window: %w", err)
	}
	r.Logger.Debug("window", "id", window.ID, "title", window.Title)
	res := &Result{Window: window}

	descriptors, err := r.Scanner.Scan()
	if err != nil {
		return nil, err
	}
	if len(descriptors) == 0 {
		r.Logger.Debug("no autotype descriptors in store")
		res.Outcome = OutcomeNoDescriptors
		return res, nil
	}

	matched := match.Filter(descriptors, window.Title)
	for _, desc := range matched {
		r.Logger.Debug("match", "path", desc.Path, "sequence", desc.Sequence)
		res.Matched = append(res.Matched, desc.Path)
	}
	if len(matched) == 0 {
		r.Logger.Debug("no descriptor matches window", "title", window.Title)
		res.Outcome = OutcomeNoMatch
		return res, nil
	}

	entry, err := r.Resolver.Resolve(ctx, matched)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		res.Outcome = OutcomeCancelled
		return res, nil
	}
	res.Group, res.Name = entry.Group, entry.Name
	actions := sequence.Parse(entry.Sequence)
	res.Steps = len(actions)
	r.Logger.Debug("entry", "group", entry.Group, "name", entry.Name, "sequence", entry.Sequence)

	if r.Options.DryRun {
		res.Outcome = OutcomeDryRun
		return res, nil
	}

	if err := sequence.Sleep(ctx, r.Options.Sleep); err != nil {
		return nil, err
	}
	if r.Options.Backspace {
		if err := r.Inputter.KeyCombo([]string{platform.KeyBackSpace}); err != nil {
			return nil, fmt.Errorf("press %s: %w", platform.KeyBackSpace, err)
		}
	}
	if err := r.Interpreter.Run(ctx, actions, entry); err != nil {
		return nil, err
	}
	res.Outcome = OutcomeTyped
	return res, nil
}
