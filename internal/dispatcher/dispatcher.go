package dispatcher

import (
	"fmt"
	"time"

	"github.com/dshills/shadowhand/internal/logging"
	"github.com/dshills/shadowhand/internal/script"
)

// Stats summarizes a run.
type Stats struct {
	// Executed is the number of instructions whose actuator call succeeded.
	Executed int
	// Elapsed is the wall time of the run, sleeps included.
	Elapsed time.Duration
}

// Dispatcher replays instructions through an Actuator.
type Dispatcher struct {
	actuator Actuator
	config   Config
	logger   *logging.Logger
	metrics  *Metrics

	sleep func(time.Duration)
	now   func() time.Time
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithLogger sets the logger used for per-instruction tracing.
func WithLogger(l *logging.Logger) Option {
	return func(d *Dispatcher) {
		if l != nil {
			d.logger = l
		}
	}
}

// WithSleeper replaces time.Sleep.
func WithSleeper(sleep func(time.Duration)) Option {
	return func(d *Dispatcher) {
		if sleep != nil {
			d.sleep = sleep
		}
	}
}

// New creates a dispatcher for the given actuator.
func New(actuator Actuator, config Config, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		actuator: actuator,
		config:   config,
		logger:   logging.NullLogger,
		sleep:    time.Sleep,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(d)
	}

	if config.EnableMetrics {
		d.metrics = NewMetrics()
	}

	return d
}

// NewWithDefaults creates a dispatcher with default configuration.
func NewWithDefaults(actuator Actuator) *Dispatcher {
	return New(actuator, DefaultConfig())
}

// Config returns the dispatcher configuration.
func (d *Dispatcher) Config() Config {
	return d.config
}

// Metrics returns the collected metrics, or nil if metrics are disabled.
func (d *Dispatcher) Metrics() *Metrics {
	return d.metrics
}

// Run executes instructions in order. See the package documentation for the
// timing contract. The returned Stats are valid even when err is non-nil.
func (d *Dispatcher) Run(instructions []script.Instruction) (Stats, error) {
	start := d.now()
	var stats Stats

	if d.actuator == nil {
		return stats, ErrNoActuator
	}

	d.wait()

	for i, in := range instructions {
		if err := d.execute(in); err != nil {
			stats.Elapsed = d.now().Sub(start)
			d.logger.WithField("line", in.Line).Error("instruction %d failed: %v", i+1, err)
			return stats, &ExecError{Index: i, Instruction: in, Err: err}
		}
		stats.Executed++

		d.wait()
	}

	stats.Elapsed = d.now().Sub(start)
	return stats, nil
}

func (d *Dispatcher) wait() {
	if d.config.Delay > 0 {
		d.sleep(d.config.Delay)
	}
}

// execute performs one actuator call, timing it when metrics are enabled.
func (d *Dispatcher) execute(in script.Instruction) (err error) {
	if !in.Resolved() {
		return fmt.Errorf("%w: %q", ErrUnresolvedKey, in.Argument)
	}

	if d.config.RecoverFromPanic {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("%w: %v", ErrPanic, r)
			}
		}()
	}

	d.logger.WithField("line", in.Line).Debug("%s", in.String())

	callStart := d.now()
	err = d.call(in)
	if d.metrics != nil {
		d.metrics.RecordCall(in.Action, d.now().Sub(callStart), err)
	}
	return err
}

// call maps one instruction onto one actuator primitive.
func (d *Dispatcher) call(in script.Instruction) error {
	a := d.actuator
	switch in.Action {
	case script.ActionMouseMoveAbsolute:
		return a.MoveMouseTo(in.X, in.Y)
	case script.ActionMouseMoveRelative:
		return a.MoveMouseBy(in.X, in.Y)
	case script.ActionMouseClick:
		return a.ClickMouseButton(ButtonLeft)
	case script.ActionMouseDown:
		return a.PressMouseButton(ButtonLeft)
	case script.ActionMouseUp:
		return a.ReleaseMouseButton(ButtonLeft)
	case script.ActionKeyClick:
		return a.TapKey(in.Key)
	case script.ActionKeyDown:
		return a.PressKey(in.Key)
	case script.ActionKeyUp:
		return a.ReleaseKey(in.Key)
	case script.ActionKeyTypeSequence:
		return a.TypeText(in.Argument)
	default:
		return fmt.Errorf("%w: %v", ErrUnsupportedAction, in.Action)
	}
}
