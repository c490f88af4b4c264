package recorder

import (
	"sync"

	"github.com/gdamore/tcell/v2"
)

// Prompt is shown on the first terminal row while recording.
const Prompt = "shadowhand: recording keystrokes, press Ctrl+C to stop"

// Terminal is an EventSource backed by a tcell screen.
type Terminal struct {
	screen tcell.Screen
	mu     sync.Mutex
}

// OpenTerminal takes over the controlling terminal and shows the prompt.
// Call Close to restore it.
func OpenTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	t := &Terminal{screen: screen}
	t.draw()
	return t, nil
}

// PollEvent waits for the next event. Resizes redraw the prompt.
func (t *Terminal) PollEvent() tcell.Event {
	ev := t.screen.PollEvent()
	if _, ok := ev.(*tcell.EventResize); ok {
		t.mu.Lock()
		t.screen.Sync()
		t.mu.Unlock()
		t.draw()
	}
	return ev
}

// Close restores the terminal.
func (t *Terminal) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Fini()
}

func (t *Terminal) draw() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Clear()
	style := tcell.StyleDefault.Bold(true)
	x := 0
	for _, r := range Prompt {
		t.screen.SetContent(x, 0, r, nil, style)
		x++
	}
	t.screen.Show()
}
