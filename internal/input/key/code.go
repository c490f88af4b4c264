package key

import (
	"fmt"
	"unicode"
)

// Code is a canonical key code: the resolved, unambiguous representation of a
// key, independent of how it was spelled in a script.
//
// Named keys carry a zero Rune. Layout characters use KeyRune and carry the
// glyph they produce in Rune.
type Code struct {
	Key  Key
	Rune rune
}

// Named returns the code for a named key.
func Named(k Key) Code {
	return Code{Key: k}
}

// Layout returns the code for the key that types r on the current layout.
func Layout(r rune) Code {
	return Code{Key: KeyRune, Rune: r}
}

// IsZero reports whether c is the zero code, meaning unresolved.
func (c Code) IsZero() bool {
	return c.Key == KeyNone && c.Rune == 0
}

// IsLayout reports whether c identifies a layout character.
func (c Code) IsLayout() bool {
	return c.Key == KeyRune
}

// String returns the script spelling of the code: the symbol for named keys
// and the glyph itself for layout characters.
func (c Code) String() string {
	if c.IsLayout() {
		if unicode.IsPrint(c.Rune) && !unicode.IsSpace(c.Rune) {
			return string(c.Rune)
		}
		return fmt.Sprintf("%U", c.Rune)
	}
	if sym, ok := SymbolFor(c.Key); ok {
		return sym
	}
	return c.Key.String()
}

// GoString implements fmt.GoStringer for debugging.
func (c Code) GoString() string {
	return fmt.Sprintf("Code{Key: %s, Rune: %q}", c.Key.String(), c.Rune)
}
