// Package sequence parses and runs autotype sequences.
//
// A sequence is a whitespace-separated list of tokens. The first character
// of a token is its opcode and the rest its operand:
//
//	:field    type the value of an entry field
//	|key      press a key or key combination (e.g. Tab, Return, ctrl+l)
//	!seconds  pause for a decimal number of seconds
//
// Any other token is ignored.
package sequence

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/mj1618/pass-autotype/internal/platform"
)

const (
	opType  = ':'
	opKey   = '|'
	opDelay = '!'
)

// Action is one parsed sequence step. It is implemented by TypeAction,
// KeyAction, DelayAction and NoOp only.
type Action interface {
	String() string
	isAction()
}

// TypeAction types the value of the named entry field.
type TypeAction struct {
	Field string
}

// KeyAction presses a key combination, one key name per element.
type KeyAction struct {
	Keys []string
}

// DelayAction pauses execution.
type DelayAction struct {
	Duration time.Duration
}

// NoOp is a token that does nothing: an unknown opcode or an unusable operand.
type NoOp struct {
	Token  string
	Reason string
}

func (TypeAction) isAction()  {}
func (KeyAction) isAction()   {}
func (DelayAction) isAction() {}
func (NoOp) isAction()        {}

func (a TypeAction) String() string  { return string(opType) + a.Field }
func (a KeyAction) String() string   { return string(opKey) + strings.Join(a.Keys, "+") }
func (a DelayAction) String() string { return string(opDelay) + a.Duration.String() }
func (a NoOp) String() string        { return a.Token }

// Parse splits a sequence into actions. It never fails: tokens that cannot
// be interpreted become NoOp actions.
func Parse(sequence string) []Action {
	tokens := strings.Fields(sequence)
	actions := make([]Action, 0, len(tokens))
	for _, tok := range tokens {
		actions = append(actions, parseToken(tok))
	}
	return actions
}

func parseToken(tok string) Action {
	operand := tok[1:]
	switch tok[0] {
	case opType:
		return TypeAction{Field: operand}
	case opKey:
		keys := platform.ParseKeyCombo(operand)
		if len(keys) == 0 {
			return NoOp{Token: tok, Reason: "empty key"}
		}
		return KeyAction{Keys: keys}
	case opDelay:
		d, ok := parseSeconds(operand)
		if !ok {
			return NoOp{Token: tok, Reason: "invalid delay"}
		}
		return DelayAction{Duration: d}
	default:
		return NoOp{Token: tok, Reason: "unknown opcode"}
	}
}

func parseSeconds(s string) (time.Duration, bool) {
	secs, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(secs) || math.IsInf(secs, 0) || secs < 0 {
		return 0, false
	}
	d := secs * float64(time.Second)
	if d > math.MaxInt64 {
		return 0, false
	}
	return time.Duration(d), true
}
