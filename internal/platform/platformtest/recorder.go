// Package platformtest provides fakes of the platform backends for tests.
package platformtest

import (
	"strings"
	"sync"
	"time"

	"github.com/mj1618/pass-autotype/internal/model"
)

// Call is one recorded Inputter call.
type Call struct {
	Kind    string // "text" or "key"
	Value   string // typed text, or key names joined with "+"
	DelayMs int
	At      time.Time
}

// Recorder is an Inputter and WindowManager that records calls.
type Recorder struct {
	mu    sync.Mutex
	calls []Call

	// Window is returned by ActiveWindow.
	Window model.Window
	// WindowErr, TextErr and KeyErr make the matching methods fail.
	WindowErr error
	TextErr   error
	KeyErr    error
}

// TypeText records a text injection.
func (r *Recorder) TypeText(text string, delayMs int) error {
	if r.TextErr != nil {
		return r.TextErr
	}
	r.record(Call{Kind: "text", Value: text, DelayMs: delayMs})
	return nil
}

// KeyCombo records a key event.
func (r *Recorder) KeyCombo(keys []string) error {
	if r.KeyErr != nil {
		return r.KeyErr
	}
	r.record(Call{Kind: "key", Value: strings.Join(keys, "+")})
	return nil
}

// ActiveWindow returns the configured window.
func (r *Recorder) ActiveWindow() (model.Window, error) {
	if r.WindowErr != nil {
		return model.Window{}, r.WindowErr
	}
	return r.Window, nil
}

func (r *Recorder) record(c Call) {
	c.At = time.Now()
	r.mu.Lock()
	r.calls = append(r.calls, c)
	r.mu.Unlock()
}

// Calls returns the recorded calls in order.
func (r *Recorder) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Call(nil), r.calls...)
}

// Trace renders the recorded calls as "text(alice)", "key(Tab)", ...
func (r *Recorder) Trace() []string {
	var out []string
	for _, c := range r.Calls() {
		out = append(out, c.Kind+"("+c.Value+")")
	}
	return out
}
