package dispatcher

import "github.com/dshills/shadowhand/internal/input/key"

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	// ButtonLeft is the primary button. Scripts only ever use this one.
	ButtonLeft MouseButton = iota
	ButtonRight
	ButtonMiddle
)

// String returns the button name.
func (b MouseButton) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonRight:
		return "right"
	case ButtonMiddle:
		return "center"
	default:
		return "unknown"
	}
}

// Actuator performs OS-level mouse and keyboard input.
// Every call must complete, including delivery, before it returns.
type Actuator interface {
	MoveMouseTo(x, y int) error
	MoveMouseBy(dx, dy int) error
	PressMouseButton(btn MouseButton) error
	ReleaseMouseButton(btn MouseButton) error
	ClickMouseButton(btn MouseButton) error
	TapKey(code key.Code) error
	PressKey(code key.Code) error
	ReleaseKey(code key.Code) error
	TypeText(text string) error
}
