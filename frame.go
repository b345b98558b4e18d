package frame

import (
	"github.com/deepaksharmaongraph/frame-transpiler/internal/core"
	"github.com/deepaksharmaongraph/frame-transpiler/internal/env"
	"github.com/deepaksharmaongraph/frame-transpiler/internal/info"
)

// Build wires and checks a generated machine table, returning it for use
// in a package-level initializer. Build panics on a structurally invalid
// table; see the info package for the checked invariants.
func Build(m *MachineInfo) *MachineInfo { return info.Build(m) }

// Bool wraps a bool in a Value.
func Bool(v bool) Value { return env.Bool(v) }

// Int wraps an integer in a Value.
func Int(v int64) Value { return env.Int(v) }

// Float wraps a float in a Value.
func Float(v float64) Value { return env.Float(v) }

// String wraps a string in a Value.
func String(v string) Value { return env.String(v) }

// Unbounded returns a history capacity with no limit.
func Unbounded() Capacity { return core.Unbounded() }

// Limit returns a history capacity keeping at most n entries. Limit(0)
// disables storage while leaving callback delivery untouched.
func Limit(n int) Capacity { return core.Limit(n) }

// NewEventMonitor returns a monitor with the given event and transition
// history capacities.
func NewEventMonitor(eventCapacity, transitionCapacity Capacity) *EventMonitor {
	return core.NewEventMonitor(eventCapacity, transitionCapacity)
}

// DefaultEventMonitor returns the monitor generated machines construct
// when the program does not configure capacities: event storage disabled,
// most recent transition retained.
func DefaultEventMonitor() *EventMonitor { return core.DefaultEventMonitor() }
