package script

import (
	"fmt"
	"strconv"

	"github.com/dshills/shadowhand/internal/input/key"
)

// Action identifies what an instruction does.
type Action uint8

const (
	// ActionNone is the zero Action and never produced by Parse.
	ActionNone Action = iota

	ActionMouseMoveAbsolute
	ActionMouseMoveRelative
	ActionMouseClick
	ActionMouseDown
	ActionMouseUp
	ActionKeyClick
	ActionKeyDown
	ActionKeyUp
	ActionKeyTypeSequence
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionMouseMoveAbsolute:
		return "MouseMoveAbsolute"
	case ActionMouseMoveRelative:
		return "MouseMoveRelative"
	case ActionMouseClick:
		return "MouseClick"
	case ActionMouseDown:
		return "MouseDown"
	case ActionMouseUp:
		return "MouseUp"
	case ActionKeyClick:
		return "KeyClick"
	case ActionKeyDown:
		return "KeyDown"
	case ActionKeyUp:
		return "KeyUp"
	case ActionKeyTypeSequence:
		return "KeyTypeSequence"
	default:
		return fmt.Sprintf("Action(%d)", a)
	}
}

// Verb returns the script keyword that produces the action.
func (a Action) Verb() string {
	if r, ok := ruleForAction(a); ok {
		return r.Verb
	}
	return ""
}

// HasPosition reports whether instructions of this action carry X and Y.
func (a Action) HasPosition() bool {
	return a == ActionMouseMoveAbsolute || a == ActionMouseMoveRelative
}

// HasArgument reports whether instructions of this action carry an Argument.
func (a Action) HasArgument() bool {
	return a.IsKeyPress() || a == ActionKeyTypeSequence
}

// IsKeyPress reports whether the action presses a single key and therefore
// needs a resolved key.
func (a Action) IsKeyPress() bool {
	return a == ActionKeyClick || a == ActionKeyDown || a == ActionKeyUp
}

// Instruction is one parsed script line.
//
// X and Y are meaningful only when Action.HasPosition. Argument is meaningful
// only when Action.HasArgument: a raw key name for key presses, literal text
// for ActionKeyTypeSequence. Key is set by ResolveKeys for key presses and is
// the zero Code otherwise.
type Instruction struct {
	Action   Action
	X, Y     int
	Argument string
	Key      key.Code

	// Line is the 1-based source line. Zero for instructions not read
	// from a script.
	Line int
	// Source is the trimmed source line.
	Source string
}

// Resolved reports whether the instruction is ready to execute.
func (in Instruction) Resolved() bool {
	return !in.Action.IsKeyPress() || !in.Key.IsZero()
}

// String returns the instruction as a script line.
func (in Instruction) String() string {
	verb := in.Action.Verb()
	switch {
	case in.Action.HasPosition():
		return verb + " " + strconv.Itoa(in.X) + " " + strconv.Itoa(in.Y)
	case in.Action.HasArgument():
		return verb + " " + in.Argument
	default:
		return verb
	}
}
