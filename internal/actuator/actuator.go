package actuator

import (
	"errors"
	"fmt"

	"github.com/dshills/shadowhand/internal/dispatcher"
	"github.com/dshills/shadowhand/internal/logging"
)

// Backend names accepted by New.
const (
	BackendRobot = "robot"
	BackendTrace = "trace"
)

// Actuator errors.
var (
	// ErrUnknownBackend indicates New was given an unrecognized name.
	ErrUnknownBackend = errors.New("unknown actuator backend")

	// ErrUnsupportedKey indicates a key the backend cannot press.
	ErrUnsupportedKey = errors.New("unsupported key")
)

// Backends returns the accepted backend names.
func Backends() []string {
	return []string{BackendRobot, BackendTrace}
}

// New returns the actuator for the named backend.
func New(backend string, logger *logging.Logger) (dispatcher.Actuator, error) {
	switch backend {
	case BackendRobot:
		return NewRobot(), nil
	case BackendTrace:
		return NewTrace(logger), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
	}
}
