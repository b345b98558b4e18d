// Package core implements the live half of the runtime contract: the
// instance views generated machines expose while running, the event
// monitor that observes dispatch, and the state stack behind push/pop
// transitions.
//
// Dispatch is synchronous and single-threaded by contract. A machine runs
// one interface call at a time; handlers that dispatch further events
// recurse on the same goroutine, and monitor callbacks run inline at their
// protocol points. Nothing in this package starts goroutines, queues
// events, or takes locks.
package core

import (
	"github.com/deepaksharmaongraph/frame-transpiler/internal/env"
	"github.com/deepaksharmaongraph/frame-transpiler/internal/info"
)

// StateInstance is a live occupancy of one state: the static description
// plus the Environments bound when the state was entered. Generated code
// creates one instance per entry; pushing the instance and popping it
// later hands back the same bound Environments.
type StateInstance interface {
	// Info returns the static description of the occupied state.
	Info() *info.StateInfo

	// Arguments holds the state arguments bound at entry. Empty when
	// the state declares no parameters.
	Arguments() env.Environment

	// Variables holds the state's local variables. Handlers mutate them
	// through generated accessors; this view only reads.
	Variables() env.Environment
}

// MethodInstance is one occurrence of a dispatched method: an interface
// call, an event, or an enter/exit sub-event.
type MethodInstance interface {
	// Info returns the static description of the method.
	Info() *info.MethodInfo

	// Arguments holds the call's arguments. Empty when the method
	// declares no parameters.
	Arguments() env.Environment

	// ReturnValue returns the value produced by the handler, if any.
	// It reports false while the event is still being handled and for
	// methods that return nothing.
	ReturnValue() (env.Value, bool)
}

// TransitionInstance records one occurred transition: the table row that
// fired plus the live instances on either side. For pop kinds New is the
// instance restored from the state stack.
type TransitionInstance struct {
	Info *info.TransitionInfo
	Old  StateInstance
	New  StateInstance
}

// String renders the transition the way the source language writes it:
// "A->B" when exit/enter ran, "A->>B" for the change-state kinds.
func (t *TransitionInstance) String() string {
	return t.Old.Info().Name + t.Info.Kind.Arrow() + t.New.Info().Name
}

// Machine is the uniform face of any generated machine. Tooling holds a
// Machine to introspect shape and live state without depending on the
// generated type.
type Machine interface {
	// Info returns the machine's static table.
	Info() *info.MachineInfo

	// CurrentState returns the live instance of the current state.
	CurrentState() StateInstance

	// DomainVariables exposes the machine's domain variables.
	DomainVariables() env.Environment

	// EventMonitor returns the machine's monitor. Callers register
	// callbacks and adjust history capacity through it.
	EventMonitor() *EventMonitor
}
