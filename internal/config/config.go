package config

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/dshills/shadowhand/internal/actuator"
	"github.com/dshills/shadowhand/internal/config/loader"
	"github.com/dshills/shadowhand/internal/dispatcher"
	"github.com/dshills/shadowhand/internal/logging"
)

// EnvPrefix is the prefix for environment variable overrides.
const EnvPrefix = "SHADOWHAND_"

// DefaultFileName is the config file looked up in the user config directory.
const DefaultFileName = "config.toml"

// Config holds all runtime settings.
type Config struct {
	Dispatcher DispatcherConfig
	Actuator   ActuatorConfig
	Logging    LoggingConfig
}

// DispatcherConfig holds execution settings.
type DispatcherConfig struct {
	// Delay is the wait before the first instruction and after each one.
	Delay time.Duration

	// Metrics enables per-action timing.
	Metrics bool

	// PanicRecovery turns a panicking backend call into an error.
	PanicRecovery bool
}

// ActuatorConfig selects the input backend.
type ActuatorConfig struct {
	// Backend is "robot" or "trace".
	Backend string
}

// LoggingConfig holds logger settings.
type LoggingConfig struct {
	// Level is one of debug, info, warn, error.
	Level string
}

// Default returns the built-in configuration.
func Default() Config {
	dc := dispatcher.DefaultConfig()
	return Config{
		Dispatcher: DispatcherConfig{
			Delay:         dc.Delay,
			Metrics:       dc.EnableMetrics,
			PanicRecovery: dc.RecoverFromPanic,
		},
		Actuator: ActuatorConfig{
			Backend: actuator.BackendRobot,
		},
		Logging: LoggingConfig{
			Level: "warn",
		},
	}
}

// DispatcherConfig converts the settings into a dispatcher configuration.
func (c Config) DispatcherConfig() dispatcher.Config {
	return dispatcher.Config{
		Delay:            c.Dispatcher.Delay,
		EnableMetrics:    c.Dispatcher.Metrics,
		RecoverFromPanic: c.Dispatcher.PanicRecovery,
	}
}

// LogLevel returns the parsed logging level.
func (c Config) LogLevel() logging.LogLevel {
	return logging.ParseLogLevel(c.Logging.Level)
}

// Validate checks every setting.
func (c Config) Validate() error {
	if c.Dispatcher.Delay < 0 {
		return &SettingError{Path: "dispatcher.delay", Value: c.Dispatcher.Delay,
			Err: fmt.Errorf("%w: must not be negative", ErrValidationFailed)}
	}
	if !validBackend(c.Actuator.Backend) {
		return &SettingError{Path: "actuator.backend", Value: c.Actuator.Backend,
			Err: fmt.Errorf("%w: want one of %v", ErrValidationFailed, actuator.Backends())}
	}
	if !logging.ValidLogLevel(c.Logging.Level) {
		return &SettingError{Path: "logging.level", Value: c.Logging.Level,
			Err: fmt.Errorf("%w: want debug, info, warn or error", ErrValidationFailed)}
	}
	return nil
}

func validBackend(name string) bool {
	for _, b := range actuator.Backends() {
		if b == name {
			return true
		}
	}
	return false
}

// options controls Load.
type options struct {
	path     string
	explicit bool
	fs       loader.FileSystem
	env      bool
}

// Option configures Load.
type Option func(*options)

// WithFile loads the given config file. A missing file is an error.
func WithFile(path string) Option {
	return func(o *options) {
		if path != "" {
			o.path = path
			o.explicit = true
		}
	}
}

// WithFileSystem sets the file system used to read config files.
func WithFileSystem(fs loader.FileSystem) Option {
	return func(o *options) {
		o.fs = fs
	}
}

// WithoutEnvironment skips environment variable overrides.
func WithoutEnvironment() Option {
	return func(o *options) {
		o.env = false
	}
}

// Load builds a Config from defaults, the config file and the environment,
// then validates it.
func Load(opts ...Option) (Config, error) {
	o := options{
		path: DefaultPath(),
		fs:   loader.DefaultFS(),
		env:  true,
	}
	for _, opt := range opts {
		opt(&o)
	}

	merged := make(map[string]any)

	if o.path != "" {
		data, err := loadFile(o)
		if err != nil {
			return Config{}, err
		}
		merged = loader.DeepMerge(merged, data)
	}

	if o.env {
		data, err := loader.NewEnvLoader(EnvPrefix).Load()
		if err != nil {
			return Config{}, fmt.Errorf("loading environment: %w", err)
		}
		merged = loader.DeepMerge(merged, data)
	}

	cfg := Default()
	if err := cfg.apply(merged); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func loadFile(o options) (map[string]any, error) {
	if _, err := o.fs.Stat(o.path); err != nil {
		if os.IsNotExist(err) {
			if o.explicit {
				return nil, fmt.Errorf("%w: %s", ErrFileNotFound, o.path)
			}
			return nil, nil
		}
		return nil, fmt.Errorf("reading config file %s: %w", o.path, err)
	}

	l, err := loader.ForFile(o.fs, o.path)
	if err != nil {
		return nil, err
	}
	return l.Load()
}

// DefaultPath returns $XDG_CONFIG_HOME/shadowhand/config.toml, falling back
// to ~/.config. It returns "" when no home directory is known.
func DefaultPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "shadowhand", DefaultFileName)
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ""
	}
	return filepath.Join(home, ".config", "shadowhand", DefaultFileName)
}

// apply copies recognized settings from a merged map. Unknown keys are ignored.
func (c *Config) apply(m map[string]any) error {
	if v, ok := getPath(m, "dispatcher.delay"); ok {
		d, err := toDuration(v)
		if err != nil {
			return &SettingError{Path: "dispatcher.delay", Value: v, Err: err}
		}
		c.Dispatcher.Delay = d
	}
	if v, ok := getPath(m, "dispatcher.metrics"); ok {
		b, ok := v.(bool)
		if !ok {
			return typeError("dispatcher.metrics", v, "bool")
		}
		c.Dispatcher.Metrics = b
	}
	if v, ok := getPath(m, "dispatcher.panicRecovery"); ok {
		b, ok := v.(bool)
		if !ok {
			return typeError("dispatcher.panicRecovery", v, "bool")
		}
		c.Dispatcher.PanicRecovery = b
	}
	if v, ok := getPath(m, "actuator.backend"); ok {
		s, ok := v.(string)
		if !ok {
			return typeError("actuator.backend", v, "string")
		}
		c.Actuator.Backend = s
	}
	if v, ok := getPath(m, "logging.level"); ok {
		s, ok := v.(string)
		if !ok {
			return typeError("logging.level", v, "string")
		}
		c.Logging.Level = s
	}
	return nil
}

func typeError(path string, v any, want string) error {
	return &SettingError{
		Path:  path,
		Value: v,
		Err:   fmt.Errorf("%w: expected %s, got %s", ErrTypeMismatch, want, typeName(v)),
	}
}

// toDuration accepts a Go duration string or a number of seconds.
func toDuration(v any) (time.Duration, error) {
	switch val := v.(type) {
	case time.Duration:
		return val, nil
	case string:
		d, err := time.ParseDuration(val)
		if err != nil {
			return 0, fmt.Errorf("%w: %v", ErrTypeMismatch, err)
		}
		return d, nil
	case int:
		return time.Duration(val) * time.Second, nil
	case int64:
		return time.Duration(val) * time.Second, nil
	case uint64:
		if val > math.MaxInt64/uint64(time.Second) {
			return 0, fmt.Errorf("%w: %d seconds overflows", ErrTypeMismatch, val)
		}
		return time.Duration(val) * time.Second, nil
	case float64:
		return time.Duration(val * float64(time.Second)), nil
	default:
		return 0, fmt.Errorf("%w: expected duration, got %s", ErrTypeMismatch, typeName(v))
	}
}

// getPath retrieves a value from a nested map using a dot-separated path.
func getPath(m map[string]any, path string) (any, bool) {
	current := any(m)
	for _, part := range splitPath(path) {
		cm, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = cm[part]
		if !ok {
			return nil, false
		}
	}
	return current, true
}

// splitPath splits a dot-separated path into non-empty parts.
func splitPath(path string) []string {
	var parts []string
	start := 0
	for i := 0; i <= len(path); i++ {
		if i == len(path) || path[i] == '.' {
			if i > start {
				parts = append(parts, path[start:i])
			}
			start = i + 1
		}
	}
	return parts
}

// typeName returns the type name for error messages.
func typeName(v any) string {
	if v == nil {
		return "nil"
	}
	switch v.(type) {
	case string:
		return "string"
	case int, int64, uint64:
		return "int"
	case float64:
		return "float64"
	case bool:
		return "bool"
	case []any:
		return "[]any"
	case map[string]any:
		return "map"
	default:
		return fmt.Sprintf("%T", v)
	}
}
