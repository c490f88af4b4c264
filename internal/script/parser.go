package script

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
)

// Parse converts script text into instructions in line order.
// Parsing stops at the first malformed line, which is reported as a
// *ParseError.
func Parse(text string) ([]Instruction, error) {
	lines := strings.Split(text, "\n")
	instructions := make([]Instruction, 0, len(lines))

	for i, raw := range lines {
		line := strings.TrimSpace(raw)
		toks := strings.Fields(line)
		if len(toks) == 0 {
			continue
		}

		in, err := parseLine(line, toks)
		if err != nil {
			return nil, &ParseError{
				Line: i + 1,
				Verb: toks[0],
				Text: line,
				Err:  err,
			}
		}
		in.Line = i + 1
		in.Source = line
		instructions = append(instructions, in)
	}

	return instructions, nil
}

func parseLine(line string, toks []string) (Instruction, error) {
	r, ok := LookupVerb(toks[0])
	if !ok {
		return Instruction{}, ErrUnrecognizedVerb
	}
	return argParsers[r.Args](r, line, toks)
}

// ParseReader reads a whole script from r and parses it.
func ParseReader(r io.Reader) ([]Instruction, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading script: %w", err)
	}
	return Parse(string(data))
}

// ParseFile reads and parses the script at path.
func ParseFile(path string) ([]Instruction, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("reading script %s: %w", path, err)
	}
	return Parse(string(data))
}

// Format renders instructions as script text, one per line.
func Format(instructions []Instruction) string {
	var b strings.Builder
	for _, in := range instructions {
		b.WriteString(in.String())
		b.WriteByte('\n')
	}
	return b.String()
}
