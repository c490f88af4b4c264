package key

import (
	"errors"
	"sort"
	"strings"
	"unicode/utf8"
)

// Resolution errors
var (
	ErrEmptyKey = errors.New("empty key name")
)

// symbolMap maps brace-delimited symbols (lowercase) to Key values.
var symbolMap = map[string]Key{
	"{alt}":        KeyAlt,
	"{backspace}":  KeyBackspace,
	"{capslock}":   KeyCapsLock,
	"{command}":    KeyMeta,
	"{control}":    KeyControl,
	"{delete}":     KeyDelete,
	"{downarrow}":  KeyDownArrow,
	"{end}":        KeyEnd,
	"{escape}":     KeyEscape,
	"{f1}":         KeyF1,
	"{f2}":         KeyF2,
	"{f3}":         KeyF3,
	"{f4}":         KeyF4,
	"{f5}":         KeyF5,
	"{f6}":         KeyF6,
	"{f7}":         KeyF7,
	"{f8}":         KeyF8,
	"{f9}":         KeyF9,
	"{f10}":        KeyF10,
	"{f11}":        KeyF11,
	"{f12}":        KeyF12,
	"{home}":       KeyHome,
	"{leftarrow}":  KeyLeftArrow,
	"{meta}":       KeyMeta,
	"{option}":     KeyOption,
	"{pagedown}":   KeyPageDown,
	"{pageup}":     KeyPageUp,
	"{return}":     KeyReturn,
	"{rightarrow}": KeyRightArrow,
	"{shift}":      KeyShift,
	"{space}":      KeySpace,
	"{super}":      KeyMeta,
	"{tab}":        KeyTab,
	"{uparrow}":    KeyUpArrow,
	"{windows}":    KeyMeta,
}

// preferredSymbol is the spelling used when writing a Key back out.
// Only keys with more than one symbol need an entry.
var preferredSymbol = map[Key]string{
	KeyMeta: "{meta}",
}

// Resolve converts a key argument from a script into a canonical code.
//
// Brace-delimited symbols are matched case-insensitively. Any other argument
// resolves to the layout character of its first character; the rest of the
// argument is ignored, so "ab" resolves to the same code as "a".
func Resolve(arg string) (Code, error) {
	if arg == "" {
		return Code{}, ErrEmptyKey
	}

	if k, ok := symbolMap[strings.ToLower(arg)]; ok {
		return Named(k), nil
	}

	r, _ := utf8.DecodeRuneInString(arg)
	return Layout(r), nil
}

// MustResolve resolves a key argument and panics on error.
// Use only for known-valid arguments in initialization code.
func MustResolve(arg string) Code {
	c, err := Resolve(arg)
	if err != nil {
		panic("invalid key argument: " + arg + ": " + err.Error())
	}
	return c
}

// IsSymbol reports whether arg is one of the recognized brace-delimited symbols.
func IsSymbol(arg string) bool {
	_, ok := symbolMap[strings.ToLower(arg)]
	return ok
}

// SymbolFor returns the symbol that names k.
func SymbolFor(k Key) (string, bool) {
	if sym, ok := preferredSymbol[k]; ok {
		return sym, true
	}
	for sym, sk := range symbolMap {
		if sk == k {
			return sym, true
		}
	}
	return "", false
}

// Symbols returns every recognized symbol in sorted order.
func Symbols() []string {
	syms := make([]string, 0, len(symbolMap))
	for sym := range symbolMap {
		syms = append(syms, sym)
	}
	sort.Strings(syms)
	return syms
}
