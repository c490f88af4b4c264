package script

import (
	"fmt"
	"strconv"
	"strings"
)

// ArgKind describes the arguments a verb takes.
type ArgKind uint8

const (
	// ArgNone means the verb takes no arguments.
	ArgNone ArgKind = iota
	// ArgPosition means two signed integers.
	ArgPosition
	// ArgKey means one key-name token.
	ArgKey
	// ArgText means the rest of the line, untokenized.
	ArgText
)

// Rule is one row of the script grammar.
type Rule struct {
	Verb   string
	Action Action
	Args   ArgKind
	// Tokens is the required token count including the verb. Zero means
	// the verb accepts any count.
	Tokens int
}

// describe returns the argument requirement as a phrase.
func (r Rule) describe() string {
	switch r.Args {
	case ArgPosition:
		return "must have 2 int arguments"
	case ArgKey:
		return "must have 1 string argument"
	case ArgText:
		return "takes the rest of the line"
	default:
		return "doesn't take any arguments"
	}
}

// Grammar lists every verb a script may use.
var Grammar = []Rule{
	{Verb: "mouse_move_to", Action: ActionMouseMoveAbsolute, Args: ArgPosition, Tokens: 3},
	{Verb: "mouse_move_relative", Action: ActionMouseMoveRelative, Args: ArgPosition, Tokens: 3},
	{Verb: "mouse_click", Action: ActionMouseClick, Args: ArgNone, Tokens: 1},
	{Verb: "mouse_down", Action: ActionMouseDown, Args: ArgNone, Tokens: 1},
	{Verb: "mouse_up", Action: ActionMouseUp, Args: ArgNone, Tokens: 1},
	{Verb: "key_click", Action: ActionKeyClick, Args: ArgKey, Tokens: 2},
	{Verb: "key_down", Action: ActionKeyDown, Args: ArgKey, Tokens: 2},
	{Verb: "key_up", Action: ActionKeyUp, Args: ArgKey, Tokens: 2},
	{Verb: "key_sequence", Action: ActionKeyTypeSequence, Args: ArgText},
}

// lineParser builds an instruction from a trimmed line and its tokens.
type lineParser func(r Rule, line string, toks []string) (Instruction, error)

var argParsers = map[ArgKind]lineParser{
	ArgNone:     parseNoArgs,
	ArgPosition: parsePosition,
	ArgKey:      parseKeyArg,
	ArgText:     parseText,
}

var (
	verbTable   map[string]Rule
	actionTable map[Action]Rule
)

func init() {
	verbTable = make(map[string]Rule, len(Grammar))
	actionTable = make(map[Action]Rule, len(Grammar))
	for _, r := range Grammar {
		verbTable[r.Verb] = r
		actionTable[r.Action] = r
	}
}

// LookupVerb returns the grammar rule for a verb.
func LookupVerb(verb string) (Rule, bool) {
	r, ok := verbTable[verb]
	return r, ok
}

func ruleForAction(a Action) (Rule, bool) {
	r, ok := actionTable[a]
	return r, ok
}

func checkArity(r Rule, toks []string) error {
	if r.Tokens > 0 && len(toks) != r.Tokens {
		return fmt.Errorf("%w: %s", ErrArity, r.describe())
	}
	return nil
}

func parseNoArgs(r Rule, _ string, toks []string) (Instruction, error) {
	if err := checkArity(r, toks); err != nil {
		return Instruction{}, err
	}
	return Instruction{Action: r.Action}, nil
}

func parsePosition(r Rule, _ string, toks []string) (Instruction, error) {
	if err := checkArity(r, toks); err != nil {
		return Instruction{}, err
	}

	var xy [2]int
	for i, tok := range toks[1:] {
		v, err := strconv.ParseInt(tok, 10, 32)
		if err != nil {
			return Instruction{}, fmt.Errorf("%w %q: %s", ErrInteger, tok, r.describe())
		}
		xy[i] = int(v)
	}

	return Instruction{Action: r.Action, X: xy[0], Y: xy[1]}, nil
}

func parseKeyArg(r Rule, _ string, toks []string) (Instruction, error) {
	if err := checkArity(r, toks); err != nil {
		return Instruction{}, err
	}
	return Instruction{Action: r.Action, Argument: toks[1]}, nil
}

// parseText keeps the line's internal spacing by cutting the verb off the
// front instead of joining tokens.
func parseText(r Rule, line string, _ []string) (Instruction, error) {
	text := strings.TrimSpace(strings.TrimPrefix(line, r.Verb))
	return Instruction{Action: r.Action, Argument: text}, nil
}
