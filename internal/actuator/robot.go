package actuator

import (
	"fmt"

	"github.com/go-vgo/robotgo"

	"github.com/dshills/shadowhand/internal/dispatcher"
	"github.com/dshills/shadowhand/internal/input/key"
)

// robotKeyNames maps named keys to robotgo key names.
// robotgo has a single alt/option key, so KeyOption and KeyAlt share it.
var robotKeyNames = map[key.Key]string{
	key.KeyAlt:        "alt",
	key.KeyOption:     "alt",
	key.KeyControl:    "ctrl",
	key.KeyShift:      "shift",
	key.KeyMeta:       "cmd",
	key.KeyCapsLock:   "capslock",
	key.KeyBackspace:  "backspace",
	key.KeyDelete:     "delete",
	key.KeyEscape:     "esc",
	key.KeyReturn:     "enter",
	key.KeySpace:      "space",
	key.KeyTab:        "tab",
	key.KeyHome:       "home",
	key.KeyEnd:        "end",
	key.KeyPageUp:     "pageup",
	key.KeyPageDown:   "pagedown",
	key.KeyUpArrow:    "up",
	key.KeyDownArrow:  "down",
	key.KeyLeftArrow:  "left",
	key.KeyRightArrow: "right",
	key.KeyF1:         "f1",
	key.KeyF2:         "f2",
	key.KeyF3:         "f3",
	key.KeyF4:         "f4",
	key.KeyF5:         "f5",
	key.KeyF6:         "f6",
	key.KeyF7:         "f7",
	key.KeyF8:         "f8",
	key.KeyF9:         "f9",
	key.KeyF10:        "f10",
	key.KeyF11:        "f11",
	key.KeyF12:        "f12",
}

// robotAPI is the subset of robotgo that Robot drives.
type robotAPI struct {
	move         func(x, y int)
	moveRelative func(dx, dy int)
	click        func(button string) error
	toggle       func(button, dir string) error
	keyTap       func(name string) error
	keyToggle    func(name, dir string) error
	typeStr      func(text string)
}

func defaultRobotAPI() robotAPI {
	return robotAPI{
		move:         func(x, y int) { robotgo.Move(x, y) },
		moveRelative: func(dx, dy int) { robotgo.MoveRelative(dx, dy) },
		click: func(button string) error {
			robotgo.Click(button, false)
			return nil
		},
		toggle: func(button, dir string) error {
			return robotgo.Toggle(button, dir)
		},
		keyTap: func(name string) error {
			return robotgo.KeyTap(name)
		},
		keyToggle: func(name, dir string) error {
			return robotgo.KeyToggle(name, dir)
		},
		typeStr: func(text string) { robotgo.TypeStr(text) },
	}
}

var _ dispatcher.Actuator = (*Robot)(nil)

// Robot injects OS-level input events through robotgo.
// Only one Robot should exist per process.
type Robot struct {
	api robotAPI
}

// NewRobot creates the robotgo-backed actuator.
func NewRobot() *Robot {
	return &Robot{api: defaultRobotAPI()}
}

// MoveMouseTo moves the pointer to an absolute screen position.
func (r *Robot) MoveMouseTo(x, y int) error {
	r.api.move(x, y)
	return nil
}

// MoveMouseBy moves the pointer relative to its current position.
func (r *Robot) MoveMouseBy(dx, dy int) error {
	r.api.moveRelative(dx, dy)
	return nil
}

// PressMouseButton presses and holds btn.
func (r *Robot) PressMouseButton(btn dispatcher.MouseButton) error {
	return r.api.toggle(btn.String(), "down")
}

// ReleaseMouseButton releases btn.
func (r *Robot) ReleaseMouseButton(btn dispatcher.MouseButton) error {
	return r.api.toggle(btn.String(), "up")
}

// ClickMouseButton presses and releases btn.
func (r *Robot) ClickMouseButton(btn dispatcher.MouseButton) error {
	return r.api.click(btn.String())
}

// TapKey presses and releases a key. Layout characters outside the range
// robotgo can tap are typed instead.
func (r *Robot) TapKey(code key.Code) error {
	name, ok := robotKeyName(code)
	if !ok {
		if code.IsLayout() {
			r.api.typeStr(string(code.Rune))
			return nil
		}
		return fmt.Errorf("%w: %s", ErrUnsupportedKey, code.Key)
	}
	return r.api.keyTap(name)
}

// PressKey presses and holds a key.
func (r *Robot) PressKey(code key.Code) error {
	name, ok := robotKeyName(code)
	if !ok {
		return fmt.Errorf("%w: %#v", ErrUnsupportedKey, code)
	}
	return r.api.keyToggle(name, "down")
}

// ReleaseKey releases a held key.
func (r *Robot) ReleaseKey(code key.Code) error {
	name, ok := robotKeyName(code)
	if !ok {
		return fmt.Errorf("%w: %#v", ErrUnsupportedKey, code)
	}
	return r.api.keyToggle(name, "up")
}

// TypeText types text as a sequence of characters.
func (r *Robot) TypeText(text string) error {
	r.api.typeStr(text)
	return nil
}

// robotKeyName returns the robotgo name for code. Layout characters map to
// themselves when they are printable ASCII.
func robotKeyName(code key.Code) (string, bool) {
	if code.IsLayout() {
		if code.Rune > ' ' && code.Rune < 0x7f {
			return string(code.Rune), true
		}
		if code.Rune == ' ' {
			return "space", true
		}
		return "", false
	}
	name, ok := robotKeyNames[code.Key]
	return name, ok
}
