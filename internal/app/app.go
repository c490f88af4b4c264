// Package app wires configuration, logging, the script loader, the
// dispatcher and the recorder into one run of shadowhand.
package app

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/dshills/shadowhand/internal/actuator"
	"github.com/dshills/shadowhand/internal/config"
	"github.com/dshills/shadowhand/internal/dispatcher"
	"github.com/dshills/shadowhand/internal/logging"
	"github.com/dshills/shadowhand/internal/recorder"
	"github.com/dshills/shadowhand/internal/script"
)

// Options configures the application. Zero values fall back to the loaded
// configuration.
type Options struct {
	// ConfigPath is the path to the configuration file.
	ConfigPath string

	// ScriptPath is the instruction file to run or check.
	ScriptPath string

	// RecordPath, when set, captures keystrokes into this file instead of
	// running a script.
	RecordPath string

	// LogLevel overrides logging.level.
	LogLevel string

	// Backend overrides actuator.backend.
	Backend string

	// Delay overrides dispatcher.delay when non-nil.
	Delay *time.Duration

	// DryRun forces the trace backend.
	DryRun bool

	// Check parses and resolves the script without running it.
	Check bool

	// Metrics enables per-action timing, reported after the run.
	Metrics bool

	Stdout io.Writer
	Stderr io.Writer

	// Actuator replaces the backend chosen by configuration.
	Actuator dispatcher.Actuator

	// Sleep replaces time.Sleep between instructions.
	Sleep func(time.Duration)

	// EventSource replaces the terminal when recording.
	EventSource recorder.EventSource
}

// Application is one shadowhand invocation.
type Application struct {
	opts   Options
	config config.Config
	runID  string
	logger *logging.Logger
}

// New loads configuration, applies option overrides and prepares logging.
func New(opts Options) (*Application, error) {
	if opts.ScriptPath == "" && opts.RecordPath == "" {
		return nil, ErrUsage
	}
	if opts.RecordPath != "" && (opts.ScriptPath != "" || opts.Check) {
		return nil, fmt.Errorf("%w: -record cannot be combined with a script or -check", ErrConflictingModes)
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}

	cfg, err := config.Load(config.WithFile(opts.ConfigPath))
	if err != nil {
		return nil, &InitError{Component: "config", Err: err}
	}
	cfg = applyOverrides(cfg, opts)
	if err := cfg.Validate(); err != nil {
		return nil, &InitError{Component: "config", Err: err}
	}

	app := &Application{
		opts:   opts,
		config: cfg,
		runID:  uuid.NewString(),
	}
	app.logger = logging.NewLogger(logging.LoggerConfig{
		Level:  cfg.LogLevel(),
		Output: opts.Stderr,
		Prefix: "shadowhand",
	}).WithField("run", app.runID)

	return app, nil
}

func applyOverrides(cfg config.Config, opts Options) config.Config {
	if opts.LogLevel != "" {
		cfg.Logging.Level = opts.LogLevel
	}
	if opts.Backend != "" {
		cfg.Actuator.Backend = opts.Backend
	}
	if opts.DryRun {
		cfg.Actuator.Backend = actuator.BackendTrace
	}
	if opts.Delay != nil {
		cfg.Dispatcher.Delay = *opts.Delay
	}
	if opts.Metrics {
		cfg.Dispatcher.Metrics = true
	}
	return cfg
}

// Config returns the effective configuration.
func (app *Application) Config() config.Config {
	return app.config
}

// RunID returns the identifier attached to every log line of this run.
func (app *Application) RunID() string {
	return app.runID
}

// Run performs the requested mode: record, check, or execute.
func (app *Application) Run() error {
	if app.opts.RecordPath != "" {
		return app.record()
	}

	instructions, err := script.LoadFile(app.opts.ScriptPath)
	if err != nil {
		return err
	}
	app.logger.WithField("script", app.opts.ScriptPath).
		Debug("loaded %d instructions", len(instructions))

	if app.opts.Check {
		fmt.Fprintf(app.opts.Stdout, "%s: %d instructions OK\n", app.opts.ScriptPath, len(instructions))
		return nil
	}

	return app.execute(instructions)
}

func (app *Application) execute(instructions []script.Instruction) error {
	act, err := app.actuator()
	if err != nil {
		return &InitError{Component: "actuator", Err: err}
	}

	d := dispatcher.New(act, app.config.DispatcherConfig(),
		dispatcher.WithLogger(app.logger.WithComponent("dispatcher")),
		dispatcher.WithSleeper(app.opts.Sleep),
	)

	app.logger.WithFields(map[string]any{
		"backend": app.config.Actuator.Backend,
		"delay":   app.config.Dispatcher.Delay,
	}).Info("running %d instructions", len(instructions))

	stats, err := d.Run(instructions)
	app.reportMetrics(d.Metrics())
	if err != nil {
		return &OperationError{Op: "run", Target: app.opts.ScriptPath, Err: err}
	}

	app.logger.WithField("elapsed", stats.Elapsed).Info("executed %d instructions", stats.Executed)
	return nil
}

// actuator returns the injected actuator or builds one for the configured
// backend. The trace backend always writes to stdout at info level so dry
// runs are visible regardless of the log level.
func (app *Application) actuator() (dispatcher.Actuator, error) {
	if app.opts.Actuator != nil {
		return app.opts.Actuator, nil
	}
	logger := app.logger
	if app.config.Actuator.Backend == actuator.BackendTrace {
		logger = logging.NewLogger(logging.LoggerConfig{
			Level:  logging.LogLevelInfo,
			Output: app.opts.Stdout,
			Prefix: "shadowhand",
		})
	}
	return actuator.New(app.config.Actuator.Backend, logger)
}

func (app *Application) reportMetrics(m *dispatcher.Metrics) {
	if m == nil {
		return
	}
	for _, am := range m.All() {
		app.logger.WithFields(map[string]any{
			"action": am.Action.String(),
			"calls":  am.CallCount,
			"errors": am.ErrorCount,
			"avg":    am.AverageDuration(),
			"max":    am.MaxDuration,
		}).Info("action metrics")
	}
}

func (app *Application) record() error {
	source := app.opts.EventSource
	if source == nil {
		term, err := recorder.OpenTerminal()
		if err != nil {
			return &InitError{Component: "terminal", Err: err}
		}
		defer term.Close()
		source = term
	}

	rec := recorder.New(source, app.logger)
	instructions, err := rec.Record()
	if err != nil && len(instructions) == 0 {
		return &OperationError{Op: "record", Err: err}
	}
	if err != nil {
		app.logger.Warn("recording interrupted, saving %d instructions: %v", len(instructions), err)
	}

	if werr := os.WriteFile(app.opts.RecordPath, []byte(script.Format(instructions)), 0o644); werr != nil {
		return &OperationError{Op: "write", Target: app.opts.RecordPath, Err: werr}
	}
	app.logger.WithField("file", app.opts.RecordPath).Info("recorded %d instructions", len(instructions))
	return nil
}
