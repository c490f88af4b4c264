package actuator

import (
	"github.com/dshills/shadowhand/internal/dispatcher"
	"github.com/dshills/shadowhand/internal/input/key"
	"github.com/dshills/shadowhand/internal/logging"
)

var _ dispatcher.Actuator = (*Trace)(nil)

// Trace logs each call and performs no input.
type Trace struct {
	logger *logging.Logger
}

// NewTrace creates a tracing actuator that writes to logger at info level.
func NewTrace(logger *logging.Logger) *Trace {
	if logger == nil {
		logger = logging.NullLogger
	}
	return &Trace{logger: logger.WithComponent("trace")}
}

func (t *Trace) MoveMouseTo(x, y int) error {
	t.logger.Info("moveMouseTo(%d, %d)", x, y)
	return nil
}

func (t *Trace) MoveMouseBy(dx, dy int) error {
	t.logger.Info("moveMouseBy(%d, %d)", dx, dy)
	return nil
}

func (t *Trace) PressMouseButton(btn dispatcher.MouseButton) error {
	t.logger.Info("pressMouseButton(%s)", btn)
	return nil
}

func (t *Trace) ReleaseMouseButton(btn dispatcher.MouseButton) error {
	t.logger.Info("releaseMouseButton(%s)", btn)
	return nil
}

func (t *Trace) ClickMouseButton(btn dispatcher.MouseButton) error {
	t.logger.Info("clickMouseButton(%s)", btn)
	return nil
}

func (t *Trace) TapKey(code key.Code) error {
	t.logger.Info("tapKey(%s)", code)
	return nil
}

func (t *Trace) PressKey(code key.Code) error {
	t.logger.Info("pressKey(%s)", code)
	return nil
}

func (t *Trace) ReleaseKey(code key.Code) error {
	t.logger.Info("releaseKey(%s)", code)
	return nil
}

func (t *Trace) TypeText(text string) error {
	t.logger.Info("typeText(%q)", text)
	return nil
}
