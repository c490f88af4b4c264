package key

import "fmt"

// Key represents a named keyboard key.
// For character keys, use KeyRune and set the Rune field in Code.
type Key uint16

const (
	// KeyNone represents no key.
	KeyNone Key = iota

	// Modifier keys
	KeyAlt
	KeyOption
	KeyControl
	KeyShift
	KeyMeta
	KeyCapsLock

	// Editing keys
	KeyBackspace
	KeyDelete
	KeyEscape
	KeyReturn
	KeySpace
	KeyTab

	// Navigation keys
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown

	// Arrow keys
	KeyUpArrow
	KeyDownArrow
	KeyLeftArrow
	KeyRightArrow

	// Function keys
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12

	// KeyRune is used for layout characters (letters, numbers, punctuation).
	// The actual character is stored in Code.Rune.
	KeyRune
)

var keyNames = [...]string{
	KeyNone:       "None",
	KeyAlt:        "Alt",
	KeyOption:     "Option",
	KeyControl:    "Control",
	KeyShift:      "Shift",
	KeyMeta:       "Meta",
	KeyCapsLock:   "CapsLock",
	KeyBackspace:  "Backspace",
	KeyDelete:     "Delete",
	KeyEscape:     "Escape",
	KeyReturn:     "Return",
	KeySpace:      "Space",
	KeyTab:        "Tab",
	KeyHome:       "Home",
	KeyEnd:        "End",
	KeyPageUp:     "PageUp",
	KeyPageDown:   "PageDown",
	KeyUpArrow:    "UpArrow",
	KeyDownArrow:  "DownArrow",
	KeyLeftArrow:  "LeftArrow",
	KeyRightArrow: "RightArrow",
	KeyF1:         "F1",
	KeyF2:         "F2",
	KeyF3:         "F3",
	KeyF4:         "F4",
	KeyF5:         "F5",
	KeyF6:         "F6",
	KeyF7:         "F7",
	KeyF8:         "F8",
	KeyF9:         "F9",
	KeyF10:        "F10",
	KeyF11:        "F11",
	KeyF12:        "F12",
	KeyRune:       "Rune",
}

// String returns a human-readable name for the key.
func (k Key) String() string {
	if int(k) < len(keyNames) {
		return keyNames[k]
	}
	return fmt.Sprintf("Key(%d)", k)
}

// IsSpecial returns true if this is a named (non-character) key.
func (k Key) IsSpecial() bool {
	return k != KeyNone && k < KeyRune
}

// IsModifier returns true for keys that are normally held while another key
// is pressed.
func (k Key) IsModifier() bool {
	return k >= KeyAlt && k <= KeyMeta
}

// IsFunctionKey returns true if this is a function key (F1-F12).
func (k Key) IsFunctionKey() bool {
	return k >= KeyF1 && k <= KeyF12
}

// IsArrowKey returns true if this is an arrow key.
func (k Key) IsArrowKey() bool {
	return k >= KeyUpArrow && k <= KeyRightArrow
}

// IsNavigationKey returns true if this is a navigation key.
func (k Key) IsNavigationKey() bool {
	return k.IsArrowKey() || (k >= KeyHome && k <= KeyPageDown)
}
