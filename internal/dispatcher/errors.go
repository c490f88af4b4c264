package dispatcher

import (
	"errors"
	"fmt"

	"github.com/dshills/shadowhand/internal/script"
)

// Dispatcher errors.
var (
	// ErrNoActuator indicates the dispatcher was created without an actuator.
	ErrNoActuator = errors.New("dispatcher: no actuator")

	// ErrUnsupportedAction indicates an instruction has an action the
	// dispatcher cannot map to an actuator call.
	ErrUnsupportedAction = errors.New("dispatcher: unsupported action")

	// ErrUnresolvedKey indicates a key press reached execution without a
	// resolved key.
	ErrUnresolvedKey = errors.New("dispatcher: unresolved key")

	// ErrPanic indicates the actuator panicked.
	ErrPanic = errors.New("dispatcher: actuator panic")
)

// ExecError reports the instruction that stopped a run.
type ExecError struct {
	// Index is the 0-based position of the instruction in the run.
	Index int
	// Instruction is the failing instruction.
	Instruction script.Instruction
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *ExecError) Error() string {
	in := e.Instruction
	if in.Line > 0 {
		return fmt.Sprintf("line %d: %s: %v", in.Line, in.String(), e.Err)
	}
	return fmt.Sprintf("instruction %d: %s: %v", e.Index+1, in.Action, e.Err)
}

// Unwrap returns the underlying error.
func (e *ExecError) Unwrap() error {
	return e.Err
}
