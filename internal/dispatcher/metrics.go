package dispatcher

import (
	"sort"
	"sync"
	"time"

	"github.com/dshills/shadowhand/internal/script"
)

// Metrics collects actuator call statistics.
type Metrics struct {
	mu sync.RWMutex

	actionMetrics map[script.Action]*ActionMetrics

	totalCalls    uint64
	totalErrors   uint64
	totalDuration time.Duration
}

// ActionMetrics holds metrics for a specific action.
type ActionMetrics struct {
	Action        script.Action
	CallCount     uint64
	ErrorCount    uint64
	TotalDuration time.Duration
	MinDuration   time.Duration
	MaxDuration   time.Duration
}

// AverageDuration returns the mean call duration.
func (am ActionMetrics) AverageDuration() time.Duration {
	if am.CallCount == 0 {
		return 0
	}
	return am.TotalDuration / time.Duration(am.CallCount)
}

// NewMetrics creates a new metrics collector.
func NewMetrics() *Metrics {
	return &Metrics{
		actionMetrics: make(map[script.Action]*ActionMetrics),
	}
}

// RecordCall records one actuator call.
func (m *Metrics) RecordCall(action script.Action, duration time.Duration, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.totalCalls++
	m.totalDuration += duration
	if err != nil {
		m.totalErrors++
	}

	am := m.actionMetrics[action]
	if am == nil {
		am = &ActionMetrics{
			Action:      action,
			MinDuration: duration,
		}
		m.actionMetrics[action] = am
	}

	am.CallCount++
	am.TotalDuration += duration
	if err != nil {
		am.ErrorCount++
	}
	if duration < am.MinDuration {
		am.MinDuration = duration
	}
	if duration > am.MaxDuration {
		am.MaxDuration = duration
	}
}

// TotalCalls returns the number of recorded calls.
func (m *Metrics) TotalCalls() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.totalCalls
}

// TotalErrors returns the number of failed calls.
func (m *Metrics) TotalErrors() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.totalErrors
}

// TotalDuration returns the time spent inside the actuator.
func (m *Metrics) TotalDuration() time.Duration {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.totalDuration
}

// ActionMetrics returns a copy of the metrics for one action.
func (m *Metrics) ActionMetrics(action script.Action) (ActionMetrics, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	am, ok := m.actionMetrics[action]
	if !ok {
		return ActionMetrics{}, false
	}
	return *am, true
}

// All returns copies of every action's metrics ordered by call count, most
// frequent first.
func (m *Metrics) All() []ActionMetrics {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]ActionMetrics, 0, len(m.actionMetrics))
	for _, am := range m.actionMetrics {
		result = append(result, *am)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].CallCount != result[j].CallCount {
			return result[i].CallCount > result[j].CallCount
		}
		return result[i].Action < result[j].Action
	})
	return result
}

// Reset clears all metrics.
func (m *Metrics) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.actionMetrics = make(map[script.Action]*ActionMetrics)
	m.totalCalls = 0
	m.totalErrors = 0
	m.totalDuration = 0
}
