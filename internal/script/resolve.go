package script

import (
	"fmt"

	"github.com/dshills/shadowhand/internal/input/key"
)

// ResolveKeys returns a copy of instructions in which every key press has its
// Key set from its Argument. Other instructions are copied unchanged; key
// sequences are typed as text and need no resolution.
func ResolveKeys(instructions []Instruction) ([]Instruction, error) {
	resolved := make([]Instruction, len(instructions))
	copy(resolved, instructions)

	for i := range resolved {
		in := &resolved[i]
		if !in.Action.IsKeyPress() {
			continue
		}

		code, err := key.Resolve(in.Argument)
		if err != nil {
			return nil, &ResolveError{
				Line:     in.Line,
				Verb:     in.Action.Verb(),
				Argument: in.Argument,
				Err:      fmt.Errorf("%w: %w", ErrKeyResolution, err),
			}
		}
		in.Key = code
	}

	return resolved, nil
}

// Load parses a script and resolves its keys.
func Load(text string) ([]Instruction, error) {
	instructions, err := Parse(text)
	if err != nil {
		return nil, err
	}
	return ResolveKeys(instructions)
}

// LoadFile parses the script at path and resolves its keys.
func LoadFile(path string) ([]Instruction, error) {
	instructions, err := ParseFile(path)
	if err != nil {
		return nil, err
	}
	return ResolveKeys(instructions)
}
