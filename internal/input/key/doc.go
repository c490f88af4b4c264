// Package key provides the canonical key model used by instruction scripts.
//
// This package defines the fundamental types for representing keyboard input:
//
//   - Key: Identifies a named keyboard key (modifiers, navigation, function keys)
//   - Code: The canonical key code handed to an actuator, either a named Key
//     or a layout character identified by the glyph it produces
//
// # Key Names
//
// Scripts refer to named keys with brace-delimited symbols such as "{return}",
// "{shift}" or "{f5}". Symbols are matched case-insensitively. Several symbols
// may denote the same key: "{command}", "{meta}", "{super}" and "{windows}" all
// resolve to KeyMeta. "{option}" resolves to KeyOption, which is kept apart from
// KeyAlt so that actuators can honour platform differences.
//
// Anything that is not a symbol resolves to a layout character using the first
// character of the argument.
package key
