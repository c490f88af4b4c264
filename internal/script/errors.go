package script

import (
	"errors"
	"fmt"
)

// Script errors.
var (
	// ErrFileNotFound indicates the instruction file doesn't exist.
	ErrFileNotFound = errors.New("instruction file not found")

	// ErrArity indicates a verb was given the wrong number of arguments.
	ErrArity = errors.New("wrong number of arguments")

	// ErrInteger indicates a movement argument is not a signed integer.
	ErrInteger = errors.New("invalid integer argument")

	// ErrUnrecognizedVerb indicates the first token of a line is not a verb.
	ErrUnrecognizedVerb = errors.New("unrecognized keyword")

	// ErrKeyResolution indicates a key argument could not be resolved.
	ErrKeyResolution = errors.New("cannot resolve key")
)

// ParseError reports the line that stopped parsing.
type ParseError struct {
	// Line is the 1-based line number in the script.
	Line int
	// Verb is the first token of the line.
	Verb string
	// Text is the offending line, trimmed.
	Text string
	// Err is the underlying error. It wraps one of ErrArity, ErrInteger or
	// ErrUnrecognizedVerb.
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s: %v in %q", e.Line, e.Verb, e.Err, e.Text)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// ResolveError reports a key argument that could not be resolved.
type ResolveError struct {
	Line     int
	Verb     string
	Argument string
	Err      error
}

// Error implements the error interface.
func (e *ResolveError) Error() string {
	return fmt.Sprintf("line %d: %s: %v %q", e.Line, e.Verb, e.Err, e.Argument)
}

// Unwrap returns the underlying error.
func (e *ResolveError) Unwrap() error {
	return e.Err
}
