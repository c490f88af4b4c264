package dispatcher

import "time"

// DefaultDelay is the wait before the first instruction and after each one.
const DefaultDelay = time.Second

// Config holds dispatcher configuration options.
type Config struct {
	// Delay is the fixed wait applied before the run and after every
	// instruction. Zero disables waiting.
	Delay time.Duration

	// EnableMetrics enables per-action timing and counts.
	EnableMetrics bool

	// RecoverFromPanic converts a panicking actuator call into ErrPanic.
	RecoverFromPanic bool
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Delay:            DefaultDelay,
		EnableMetrics:    false,
		RecoverFromPanic: true,
	}
}

// WithDelay returns a copy of the config with the delay set.
// Negative values are treated as zero.
func (c Config) WithDelay(d time.Duration) Config {
	if d < 0 {
		d = 0
	}
	c.Delay = d
	return c
}

// WithMetrics returns a copy of the config with metrics enabled.
func (c Config) WithMetrics() Config {
	c.EnableMetrics = true
	return c
}

// WithPanicRecovery returns a copy of the config with panic recovery set.
func (c Config) WithPanicRecovery(recover bool) Config {
	c.RecoverFromPanic = recover
	return c
}
