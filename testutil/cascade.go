package testutil

import (
	frame "github.com/deepaksharmaongraph/frame-transpiler"
)

// Static table for CascadeMachine, laid out the way transpiler output
// declares its own: method descriptors, state descriptors, then one Build
// call wiring the transition rows.
var (
	cascadeTransit = &frame.MethodInfo{Name: "transit", Parameters: []frame.NameInfo{{Name: "n", Type: "int"}}}
	cascadeChange  = &frame.MethodInfo{Name: "change", ReturnType: "int"}
	cascadeMult    = &frame.MethodInfo{Name: "mult", Parameters: []frame.NameInfo{{Name: "a", Type: "int"}, {Name: "b", Type: "int"}}, ReturnType: "int"}
	cascadeReset   = &frame.MethodInfo{Name: "reset"}

	cascadeEnterA = &frame.MethodInfo{Name: "A:>"}
	cascadeExitA  = &frame.MethodInfo{Name: "A:<"}
	cascadeEnterB = &frame.MethodInfo{Name: "B:>", Parameters: []frame.NameInfo{{Name: "n", Type: "int"}}}
	cascadeExitB  = &frame.MethodInfo{Name: "B:<"}
	cascadeEnterC = &frame.MethodInfo{Name: "C:>", Parameters: []frame.NameInfo{{Name: "n", Type: "int"}}}
	cascadeExitC  = &frame.MethodInfo{Name: "C:<"}
	cascadeEnterD = &frame.MethodInfo{Name: "D:>"}
	cascadeExitD  = &frame.MethodInfo{Name: "D:<"}

	cascadeStateA = &frame.StateInfo{
		Name:     "A",
		Handlers: []*frame.MethodInfo{cascadeTransit, cascadeChange, cascadeMult, cascadeEnterA, cascadeExitA},
	}
	cascadeStateB = &frame.StateInfo{
		Name:     "B",
		Handlers: []*frame.MethodInfo{cascadeTransit, cascadeChange, cascadeMult, cascadeReset, cascadeEnterB, cascadeExitB},
	}
	cascadeStateC = &frame.StateInfo{
		Name:     "C",
		Handlers: []*frame.MethodInfo{cascadeTransit, cascadeChange, cascadeReset, cascadeEnterC, cascadeExitC},
	}
	cascadeStateD = &frame.StateInfo{
		Name:     "D",
		Handlers: []*frame.MethodInfo{cascadeChange, cascadeEnterD, cascadeExitD},
	}

	cascadeTable = frame.Build(&frame.MachineInfo{
		Name:      "Cascade",
		Variables: []frame.NameInfo{{Name: "changes", Type: "int"}},
		States:    []*frame.StateInfo{cascadeStateA, cascadeStateB, cascadeStateC, cascadeStateD},
		Interface: []*frame.MethodInfo{cascadeTransit, cascadeChange, cascadeMult, cascadeReset},
		Events: []*frame.MethodInfo{
			cascadeTransit, cascadeChange, cascadeMult, cascadeReset,
			cascadeEnterA, cascadeExitA, cascadeEnterB, cascadeExitB,
			cascadeEnterC, cascadeExitC, cascadeEnterD, cascadeExitD,
		},
		Transitions: []*frame.TransitionInfo{
			{ID: 0, Kind: frame.KindTransition, Event: cascadeTransit, Source: cascadeStateA, Target: cascadeStateB},
			{ID: 1, Kind: frame.KindChangeState, Event: cascadeChange, Source: cascadeStateA, Target: cascadeStateB},
			{ID: 2, Kind: frame.KindTransition, Event: cascadeTransit, Source: cascadeStateB, Target: cascadeStateC},
			{ID: 3, Kind: frame.KindChangeState, Event: cascadeChange, Source: cascadeStateB, Target: cascadeStateC},
			{ID: 4, Kind: frame.KindChangeState, Event: cascadeReset, Source: cascadeStateB, Target: cascadeStateA},
			{ID: 5, Kind: frame.KindTransition, Event: cascadeTransit, Source: cascadeStateC, Target: cascadeStateD},
			{ID: 6, Kind: frame.KindChangeState, Event: cascadeChange, Source: cascadeStateC, Target: cascadeStateA},
			{ID: 7, Kind: frame.KindChangeState, Event: cascadeReset, Source: cascadeStateC, Target: cascadeStateA},
			{ID: 8, Kind: frame.KindChangeState, Event: cascadeChange, Source: cascadeStateD, Target: cascadeStateA},
		},
	})
)

// cascadeTransitArgs binds the single parameter shared by transit
// dispatches and the B/C enter sub-events.
type cascadeTransitArgs struct{ n int64 }

func (a *cascadeTransitArgs) Lookup(name string) (frame.Value, bool) {
	if name == "n" {
		return frame.Int(a.n), true
	}
	return frame.Value{}, false
}

type cascadeMultArgs struct{ a, b int64 }

func (a *cascadeMultArgs) Lookup(name string) (frame.Value, bool) {
	switch name {
	case "a":
		return frame.Int(a.a), true
	case "b":
		return frame.Int(a.b), true
	}
	return frame.Value{}, false
}

type cascadeDomainView struct{ m *CascadeMachine }

func (v cascadeDomainView) Lookup(name string) (frame.Value, bool) {
	if name == "changes" {
		return frame.Int(v.m.changes), true
	}
	return frame.Value{}, false
}

// CascadeMachine is a four-state machine (A, B, C, D) whose enter
// handlers re-dispatch events, producing deeply nested dispatch:
//
//	Transit in A moves to B; B's enter re-dispatches Transit, moving to
//	C; C's enter does the same, moving to D; D's enter dispatches
//	Change, which change-states back to A.
//
// Change counts change-states in the domain variable changes and returns
// the count. Mult computes a*b without transitioning. Reset change-states
// back to A from B or C; A does not handle it.
//
// The monitor keeps the last 5 handled events and 3 transitions.
type CascadeMachine struct {
	monitor *frame.EventMonitor
	current *compartment
	changes int64
}

// NewCascadeMachine returns a machine in state A. The initial enter
// sub-event is not dispatched.
func NewCascadeMachine() *CascadeMachine {
	return &CascadeMachine{
		monitor: frame.NewEventMonitor(frame.Limit(5), frame.Limit(3)),
		current: newCompartment(cascadeStateA, frame.Empty, frame.Empty),
	}
}

func (m *CascadeMachine) Info() *frame.MachineInfo          { return cascadeTable }
func (m *CascadeMachine) CurrentState() frame.StateInstance { return m.current }
func (m *CascadeMachine) DomainVariables() frame.Environment {
	return cascadeDomainView{m}
}
func (m *CascadeMachine) EventMonitor() *frame.EventMonitor { return m.monitor }

// Transit dispatches the transit event with argument n.
func (m *CascadeMachine) Transit(n int64) {
	m.dispatch(newCall(cascadeTransit, &cascadeTransitArgs{n: n}))
}

// Change dispatches the change event and returns the updated change
// count, or 0 if the current state did not handle it.
func (m *CascadeMachine) Change() int64 {
	call := newCall(cascadeChange, frame.Empty)
	m.dispatch(call)
	if v, ok := call.ReturnValue(); ok {
		return v.AsInt()
	}
	return 0
}

// Mult dispatches the mult event and returns the product, or 0 if the
// current state did not handle it.
func (m *CascadeMachine) Mult(a, b int64) int64 {
	call := newCall(cascadeMult, &cascadeMultArgs{a: a, b: b})
	m.dispatch(call)
	if v, ok := call.ReturnValue(); ok {
		return v.AsInt()
	}
	return 0
}

// Reset dispatches the reset event.
func (m *CascadeMachine) Reset() {
	m.dispatch(newCall(cascadeReset, frame.Empty))
}

// dispatch runs one event through the protocol bracket: notify sent, run
// the current state's handler, notify handled.
func (m *CascadeMachine) dispatch(call *methodCall) {
	m.monitor.EventSent(call)
	m.handle(call)
	m.monitor.EventHandled(call)
}

func (m *CascadeMachine) handle(call *methodCall) {
	switch m.current.info {
	case cascadeStateA:
		m.handleA(call)
	case cascadeStateB:
		m.handleB(call)
	case cascadeStateC:
		m.handleC(call)
	case cascadeStateD:
		m.handleD(call)
	}
}

func (m *CascadeMachine) handleA(call *methodCall) {
	switch call.info {
	case cascadeTransit:
		n := mustInt(call.args, "n")
		m.transition(0, newCompartment(cascadeStateB, frame.Empty, frame.Empty), &cascadeTransitArgs{n: n})
	case cascadeChange:
		m.changes++
		call.setReturn(frame.Int(m.changes))
		m.changeState(1, newCompartment(cascadeStateB, frame.Empty, frame.Empty))
	case cascadeMult:
		a, b := mustInt(call.args, "a"), mustInt(call.args, "b")
		call.setReturn(frame.Int(a * b))
	}
}

func (m *CascadeMachine) handleB(call *methodCall) {
	switch call.info {
	case cascadeTransit:
		n := mustInt(call.args, "n")
		m.transition(2, newCompartment(cascadeStateC, frame.Empty, frame.Empty), &cascadeTransitArgs{n: n})
	case cascadeChange:
		m.changes++
		call.setReturn(frame.Int(m.changes))
		m.changeState(3, newCompartment(cascadeStateC, frame.Empty, frame.Empty))
	case cascadeMult:
		a, b := mustInt(call.args, "a"), mustInt(call.args, "b")
		call.setReturn(frame.Int(a * b))
	case cascadeReset:
		m.changeState(4, newCompartment(cascadeStateA, frame.Empty, frame.Empty))
	case cascadeEnterB:
		m.Transit(mustInt(call.args, "n") - 1)
	}
}

func (m *CascadeMachine) handleC(call *methodCall) {
	switch call.info {
	case cascadeTransit:
		m.transition(5, newCompartment(cascadeStateD, frame.Empty, frame.Empty), frame.Empty)
	case cascadeChange:
		m.changes++
		call.setReturn(frame.Int(m.changes))
		m.changeState(6, newCompartment(cascadeStateA, frame.Empty, frame.Empty))
	case cascadeReset:
		m.changeState(7, newCompartment(cascadeStateA, frame.Empty, frame.Empty))
	case cascadeEnterC:
		m.Transit(mustInt(call.args, "n") - 1)
	}
}

func (m *CascadeMachine) handleD(call *methodCall) {
	switch call.info {
	case cascadeChange:
		m.changes++
		call.setReturn(frame.Int(m.changes))
		m.changeState(8, newCompartment(cascadeStateA, frame.Empty, frame.Empty))
	case cascadeEnterD:
		m.Change()
	}
}

// transition runs the full protocol for table row id: exit sub-event,
// compartment swap, transition notification, enter sub-event.
func (m *CascadeMachine) transition(id int, next *compartment, enterArgs frame.Environment) {
	m.dispatch(newCall(cascadeExitOf(m.current.info), frame.Empty))
	old := m.current
	m.current = next
	m.monitor.TransitionOccurred(&frame.TransitionInstance{
		Info: cascadeTable.Transition(id),
		Old:  old,
		New:  next,
	})
	m.dispatch(newCall(cascadeEnterOf(next.info), enterArgs))
}

// changeState swaps the compartment and notifies, with no sub-events.
func (m *CascadeMachine) changeState(id int, next *compartment) {
	old := m.current
	m.current = next
	m.monitor.TransitionOccurred(&frame.TransitionInstance{
		Info: cascadeTable.Transition(id),
		Old:  old,
		New:  next,
	})
}

func cascadeEnterOf(s *frame.StateInfo) *frame.MethodInfo {
	switch s {
	case cascadeStateA:
		return cascadeEnterA
	case cascadeStateB:
		return cascadeEnterB
	case cascadeStateC:
		return cascadeEnterC
	default:
		return cascadeEnterD
	}
}

func cascadeExitOf(s *frame.StateInfo) *frame.MethodInfo {
	switch s {
	case cascadeStateA:
		return cascadeExitA
	case cascadeStateB:
		return cascadeExitB
	case cascadeStateC:
		return cascadeExitC
	default:
		return cascadeExitD
	}
}
