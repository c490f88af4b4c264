package recorder

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/shadowhand/internal/input/key"
	"github.com/dshills/shadowhand/internal/logging"
	"github.com/dshills/shadowhand/internal/script"
)

// EventSource delivers terminal events. PollEvent returns nil once the
// source is closed. tcell.Screen satisfies it.
type EventSource interface {
	PollEvent() tcell.Event
}

// Recorder turns key events into instructions.
type Recorder struct {
	source EventSource
	logger *logging.Logger

	out     []script.Instruction
	pending []rune
	skipped int
}

// New creates a recorder reading from source. A nil logger disables logging.
func New(source EventSource, logger *logging.Logger) *Recorder {
	if logger == nil {
		logger = logging.NullLogger
	}
	return &Recorder{
		source: source,
		logger: logger.WithComponent("recorder"),
	}
}

// Record reads events until Ctrl+C or until the source closes, and returns
// the captured instructions. On a terminal error it returns what was
// captured so far along with the error.
func (r *Recorder) Record() ([]script.Instruction, error) {
	r.out = nil
	r.pending = r.pending[:0]
	r.skipped = 0

	for {
		ev := r.source.PollEvent()
		switch e := ev.(type) {
		case nil:
			return r.finish(), nil
		case *tcell.EventError:
			return r.finish(), fmt.Errorf("terminal: %w", e)
		case *tcell.EventKey:
			if IsInterrupt(e) {
				return r.finish(), nil
			}
			r.Feed(e)
		}
	}
}

// Feed adds one key event to the recording.
func (r *Recorder) Feed(ev *tcell.EventKey) {
	s, ok := Convert(ev)
	if !ok {
		r.skipped++
		r.logger.WithField("key", ev.Name()).Debug("skipping key with no script form")
		return
	}

	if len(s.Mods) == 0 {
		if s.Code.IsLayout() {
			r.pending = append(r.pending, s.Code.Rune)
			return
		}
		if s.Code.Key == key.KeySpace {
			r.pending = append(r.pending, ' ')
			return
		}
	}

	r.flush()
	r.chord(s)
}

// Instructions returns everything captured so far.
func (r *Recorder) Instructions() []script.Instruction {
	r.flush()
	return r.out
}

// Skipped returns the number of keys dropped because they have no script form.
func (r *Recorder) Skipped() int {
	return r.skipped
}

func (r *Recorder) finish() []script.Instruction {
	out := r.Instructions()
	r.logger.WithFields(map[string]any{
		"instructions": len(out),
		"skipped":      r.skipped,
	}).Info("recording finished")
	return out
}

// flush writes pending text. Spaces at either edge would be trimmed from a
// key_sequence line, so they become key_click {space} lines.
func (r *Recorder) flush() {
	if len(r.pending) == 0 {
		return
	}
	text := string(r.pending)
	r.pending = r.pending[:0]

	core := strings.TrimLeft(text, " ")
	lead := len(text) - len(core)
	trimmed := strings.TrimRight(core, " ")
	trail := len(core) - len(trimmed)

	r.spaces(lead)
	if trimmed != "" {
		r.out = append(r.out, script.Instruction{
			Action:   script.ActionKeyTypeSequence,
			Argument: trimmed,
		})
	}
	r.spaces(trail)
}

func (r *Recorder) spaces(n int) {
	for i := 0; i < n; i++ {
		r.out = append(r.out, press(script.ActionKeyClick, key.Named(key.KeySpace)))
	}
}

// chord presses the modifiers, clicks the key, then releases the modifiers
// in reverse order.
func (r *Recorder) chord(s Stroke) {
	for _, m := range s.Mods {
		r.out = append(r.out, press(script.ActionKeyDown, key.Named(m)))
	}
	r.out = append(r.out, press(script.ActionKeyClick, s.Code))
	for i := len(s.Mods) - 1; i >= 0; i-- {
		r.out = append(r.out, press(script.ActionKeyUp, key.Named(s.Mods[i])))
	}
}

func press(action script.Action, c key.Code) script.Instruction {
	return script.Instruction{
		Action:   action,
		Argument: argument(c),
		Key:      c,
	}
}

// argument spells a code the way a script would.
func argument(c key.Code) string {
	if c.IsLayout() {
		return string(c.Rune)
	}
	if sym, ok := key.SymbolFor(c.Key); ok {
		return sym
	}
	return c.Key.String()
}
