package recorder

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/shadowhand/internal/input/key"
)

// Stroke is one captured key press with the modifiers held during it.
type Stroke struct {
	Code key.Code
	// Mods lists held modifiers in press order. Shift is omitted for
	// printable characters since it is already part of the rune.
	Mods []key.Key
}

// Plain reports whether the stroke types a character with no chord.
func (s Stroke) Plain() bool {
	return s.Code.IsLayout() && len(s.Mods) == 0
}

// namedKeys maps tcell keys to named key codes.
var namedKeys = map[tcell.Key]key.Key{
	tcell.KeyEnter:      key.KeyReturn,
	tcell.KeyTab:        key.KeyTab,
	tcell.KeyBackspace:  key.KeyBackspace,
	tcell.KeyBackspace2: key.KeyBackspace,
	tcell.KeyDelete:     key.KeyDelete,
	tcell.KeyEscape:     key.KeyEscape,
	tcell.KeyHome:       key.KeyHome,
	tcell.KeyEnd:        key.KeyEnd,
	tcell.KeyPgUp:       key.KeyPageUp,
	tcell.KeyPgDn:       key.KeyPageDown,
	tcell.KeyUp:         key.KeyUpArrow,
	tcell.KeyDown:       key.KeyDownArrow,
	tcell.KeyLeft:       key.KeyLeftArrow,
	tcell.KeyRight:      key.KeyRightArrow,
	tcell.KeyF1:         key.KeyF1,
	tcell.KeyF2:         key.KeyF2,
	tcell.KeyF3:         key.KeyF3,
	tcell.KeyF4:         key.KeyF4,
	tcell.KeyF5:         key.KeyF5,
	tcell.KeyF6:         key.KeyF6,
	tcell.KeyF7:         key.KeyF7,
	tcell.KeyF8:         key.KeyF8,
	tcell.KeyF9:         key.KeyF9,
	tcell.KeyF10:        key.KeyF10,
	tcell.KeyF11:        key.KeyF11,
	tcell.KeyF12:        key.KeyF12,
}

// Convert translates a tcell key event. It returns false for keys that have
// no script representation.
func Convert(ev *tcell.EventKey) (Stroke, bool) {
	k := ev.Key()
	mod := ev.Modifiers()

	switch {
	case k == tcell.KeyRune:
		r := ev.Rune()
		if r == ' ' {
			return Stroke{Code: key.Named(key.KeySpace), Mods: modifiers(mod, false)}, true
		}
		if !unicode.IsPrint(r) {
			return Stroke{}, false
		}
		return Stroke{Code: key.Layout(r), Mods: modifiers(mod, false)}, true

	case k == tcell.KeyBacktab:
		return Stroke{Code: key.Named(key.KeyTab), Mods: []key.Key{key.KeyShift}}, true

	case k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ && namedKeys[k] == key.KeyNone:
		// Terminals report Ctrl+letter as a control code with no modifier.
		r := 'a' + rune(k-tcell.KeyCtrlA)
		return Stroke{Code: key.Layout(r), Mods: withControl(modifiers(mod, false))}, true
	}

	named, ok := namedKeys[k]
	if !ok {
		return Stroke{}, false
	}
	return Stroke{Code: key.Named(named), Mods: modifiers(mod, true)}, true
}

// IsInterrupt reports whether the event is Ctrl+C.
func IsInterrupt(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyCtrlC {
		return true
	}
	return ev.Key() == tcell.KeyRune && ev.Modifiers()&tcell.ModCtrl != 0 &&
		(ev.Rune() == 'c' || ev.Rune() == 'C')
}

// modifiers lists the held modifiers in the order they are pressed.
func modifiers(mod tcell.ModMask, withShift bool) []key.Key {
	var mods []key.Key
	if mod&tcell.ModCtrl != 0 {
		mods = append(mods, key.KeyControl)
	}
	if mod&tcell.ModAlt != 0 {
		mods = append(mods, key.KeyAlt)
	}
	if mod&tcell.ModMeta != 0 {
		mods = append(mods, key.KeyMeta)
	}
	if withShift && mod&tcell.ModShift != 0 {
		mods = append(mods, key.KeyShift)
	}
	return mods
}

func withControl(mods []key.Key) []key.Key {
	for _, m := range mods {
		if m == key.KeyControl {
			return mods
		}
	}
	return append([]key.Key{key.KeyControl}, mods...)
}
