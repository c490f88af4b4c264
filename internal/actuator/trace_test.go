package actuator

import (
	"bytes"
	"strings"
	"testing"

	"github.com/dshills/shadowhand/internal/dispatcher"
	"github.com/dshills/shadowhand/internal/input/key"
	"github.com/dshills/shadowhand/internal/logging"
	"github.com/dshills/shadowhand/internal/script"
)

func TestTraceLogsEveryCall(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewLogger(logging.LoggerConfig{Level: logging.LogLevelInfo, Output: &buf})
	tr := NewTrace(logger)

	_ = tr.MoveMouseTo(3, 4)
	_ = tr.MoveMouseBy(-1, 2)
	_ = tr.ClickMouseButton(dispatcher.ButtonLeft)
	_ = tr.PressMouseButton(dispatcher.ButtonLeft)
	_ = tr.ReleaseMouseButton(dispatcher.ButtonLeft)
	_ = tr.TapKey(key.Named(key.KeyTab))
	_ = tr.PressKey(key.Named(key.KeyShift))
	_ = tr.ReleaseKey(key.Layout('q'))
	_ = tr.TypeText("a b")

	want := []string{
		"moveMouseTo(3, 4)",
		"moveMouseBy(-1, 2)",
		"clickMouseButton(left)",
		"pressMouseButton(left)",
		"releaseMouseButton(left)",
		"tapKey({tab})",
		"pressKey({shift})",
		"releaseKey(q)",
		`typeText("a b")`,
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d:\n%s", len(lines), len(want), buf.String())
	}
	for i, w := range want {
		if !strings.Contains(lines[i], w+" {component=trace}") {
			t.Errorf("line %d = %q, want it to contain %q", i, lines[i], w)
		}
	}
}

func TestTraceDrivesDispatcher(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewLogger(logging.LoggerConfig{Level: logging.LogLevelInfo, Output: &buf})

	instrs, err := script.Load("mouse_move_to 1 1\nkey_click {Return}\n")
	if err != nil {
		t.Fatal(err)
	}

	d := dispatcher.New(NewTrace(logger), dispatcher.DefaultConfig().WithDelay(0))
	stats, err := d.Run(instrs)
	if err != nil {
		t.Fatal(err)
	}
	if stats.Executed != 2 {
		t.Errorf("Executed = %d", stats.Executed)
	}
	if !strings.Contains(buf.String(), "tapKey({return})") {
		t.Errorf("trace output = %q", buf.String())
	}
}

func TestNewTraceNilLogger(t *testing.T) {
	tr := NewTrace(nil)
	if err := tr.TypeText("x"); err != nil {
		t.Error(err)
	}
}
