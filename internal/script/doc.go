// Package script parses instruction scripts into typed instructions.
//
// A script is UTF-8 text with one instruction per line. Each line is trimmed
// and split on whitespace; the first token is the verb:
//
//	mouse_move_to 100 200
//	mouse_move_relative -10 0
//	mouse_click
//	mouse_down
//	mouse_up
//	key_click {return}
//	key_down {shift}
//	key_up {shift}
//	key_sequence hello world
//
// Blank lines are skipped. There are no comments, variables or flow control:
// a script is a flat list executed once, top to bottom.
//
// Processing happens in two independent passes. Parse turns text into
// instructions and fails on the first malformed line. ResolveKeys then maps
// the key argument of every key_click, key_down and key_up instruction to a
// canonical key.Code. Both passes are pure; neither mutates its input.
package script
