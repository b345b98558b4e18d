package testutil

import (
	frame "github.com/deepaksharmaongraph/frame-transpiler"
)

// Static table for StepperMachine. The transition ids follow the source
// declaration order of a machine that declares a handler between rows 4
// and 6, so the ids observed in any one run are sparse.
var (
	stepperTransit = &frame.MethodInfo{Name: "transit"}
	stepperChange  = &frame.MethodInfo{Name: "change"}

	stepperEnters = [5]*frame.MethodInfo{
		{Name: "S0:>"}, {Name: "S1:>"}, {Name: "S2:>"}, {Name: "S3:>"}, {Name: "S4:>"},
	}
	stepperExits = [5]*frame.MethodInfo{
		{Name: "S0:<"}, {Name: "S1:<"}, {Name: "S2:<"}, {Name: "S3:<"}, {Name: "S4:<"},
	}

	stepperStates = [5]*frame.StateInfo{
		{Name: "S0", Handlers: []*frame.MethodInfo{stepperTransit, stepperChange, stepperEnters[0], stepperExits[0]}},
		{Name: "S1", Handlers: []*frame.MethodInfo{stepperTransit, stepperChange, stepperEnters[1], stepperExits[1]}},
		{Name: "S2", Handlers: []*frame.MethodInfo{stepperTransit, stepperChange, stepperEnters[2], stepperExits[2]}},
		{Name: "S3", Handlers: []*frame.MethodInfo{stepperTransit, stepperChange, stepperEnters[3], stepperExits[3]}},
		{Name: "S4", Handlers: []*frame.MethodInfo{stepperChange, stepperEnters[4], stepperExits[4]}},
	}

	stepperTable = frame.Build(&frame.MachineInfo{
		Name:      "Stepper",
		States:    stepperStates[:],
		Interface: []*frame.MethodInfo{stepperTransit, stepperChange},
		Events: []*frame.MethodInfo{
			stepperTransit, stepperChange,
			stepperEnters[0], stepperExits[0], stepperEnters[1], stepperExits[1],
			stepperEnters[2], stepperExits[2], stepperEnters[3], stepperExits[3],
			stepperEnters[4], stepperExits[4],
		},
		Transitions: []*frame.TransitionInfo{
			{ID: 0, Kind: frame.KindTransition, Event: stepperTransit, Source: stepperStates[0], Target: stepperStates[1]},
			{ID: 1, Kind: frame.KindChangeState, Event: stepperChange, Source: stepperStates[0], Target: stepperStates[1]},
			{ID: 2, Kind: frame.KindTransition, Event: stepperTransit, Source: stepperStates[1], Target: stepperStates[2]},
			{ID: 3, Kind: frame.KindChangeState, Event: stepperChange, Source: stepperStates[1], Target: stepperStates[2]},
			{ID: 4, Kind: frame.KindTransition, Event: stepperTransit, Source: stepperStates[2], Target: stepperStates[3]},
			{ID: 6, Kind: frame.KindChangeState, Event: stepperChange, Source: stepperStates[2], Target: stepperStates[3]},
			{ID: 7, Kind: frame.KindTransition, Event: stepperTransit, Source: stepperStates[3], Target: stepperStates[4]},
			{ID: 8, Kind: frame.KindChangeState, Event: stepperChange, Source: stepperStates[3], Target: stepperStates[4]},
			{ID: 9, Kind: frame.KindChangeState, Event: stepperChange, Source: stepperStates[4], Target: stepperStates[0]},
		},
	})
)

// StepperMachine walks five states S0..S4. Transit moves forward with
// full exit/enter dispatch; Change moves forward silently. S2's enter
// handler re-dispatches Transit and S4's enter handler dispatches
// Change, so a single Transit can cascade. The machine records entered
// and exited state names plus the machine-level hook calls that fire on
// every state change.
type StepperMachine struct {
	// Enters and Exits log state names from enter/exit handlers.
	Enters *Tape
	Exits  *Tape

	// Hooks logs the machine-level transition and change-state hooks,
	// rendered "old->new" and "old->>new".
	Hooks *Tape

	monitor *frame.EventMonitor
	current *compartment
}

// NewStepperMachine returns a machine in S0.
func NewStepperMachine() *StepperMachine {
	return &StepperMachine{
		Enters:  &Tape{},
		Exits:   &Tape{},
		Hooks:   &Tape{},
		monitor: frame.DefaultEventMonitor(),
		current: newCompartment(stepperStates[0], frame.Empty, frame.Empty),
	}
}

func (m *StepperMachine) Info() *frame.MachineInfo           { return stepperTable }
func (m *StepperMachine) CurrentState() frame.StateInstance  { return m.current }
func (m *StepperMachine) DomainVariables() frame.Environment { return frame.Empty }
func (m *StepperMachine) EventMonitor() *frame.EventMonitor  { return m.monitor }

// ClearAll clears the enter, exit, and hook tapes.
func (m *StepperMachine) ClearAll() {
	m.Enters.Clear()
	m.Exits.Clear()
	m.Hooks.Clear()
}

// Transit dispatches the transit event.
func (m *StepperMachine) Transit() { m.dispatch(newCall(stepperTransit, frame.Empty)) }

// Change dispatches the change event.
func (m *StepperMachine) Change() { m.dispatch(newCall(stepperChange, frame.Empty)) }

func (m *StepperMachine) dispatch(call *methodCall) {
	m.monitor.EventSent(call)
	m.handle(call)
	m.monitor.EventHandled(call)
}

func (m *StepperMachine) handle(call *methodCall) {
	switch m.current.info {
	case stepperStates[0]:
		m.handleS0(call)
	case stepperStates[1]:
		m.handleS1(call)
	case stepperStates[2]:
		m.handleS2(call)
	case stepperStates[3]:
		m.handleS3(call)
	case stepperStates[4]:
		m.handleS4(call)
	}
}

func (m *StepperMachine) handleS0(call *methodCall) {
	switch call.info {
	case stepperTransit:
		m.transition(0, 1)
	case stepperChange:
		m.changeState(1, 1)
	case stepperEnters[0]:
		m.Enters.Record("S0")
	case stepperExits[0]:
		m.Exits.Record("S0")
	}
}

func (m *StepperMachine) handleS1(call *methodCall) {
	switch call.info {
	case stepperTransit:
		m.transition(2, 2)
	case stepperChange:
		m.changeState(3, 2)
	case stepperEnters[1]:
		m.Enters.Record("S1")
	case stepperExits[1]:
		m.Exits.Record("S1")
	}
}

func (m *StepperMachine) handleS2(call *methodCall) {
	switch call.info {
	case stepperTransit:
		m.transition(4, 3)
	case stepperChange:
		m.changeState(6, 3)
	case stepperEnters[2]:
		m.Enters.Record("S2")
		m.Transit()
	case stepperExits[2]:
		m.Exits.Record("S2")
	}
}

func (m *StepperMachine) handleS3(call *methodCall) {
	switch call.info {
	case stepperTransit:
		m.transition(7, 4)
	case stepperChange:
		m.changeState(8, 4)
	case stepperEnters[3]:
		m.Enters.Record("S3")
	case stepperExits[3]:
		m.Exits.Record("S3")
	}
}

func (m *StepperMachine) handleS4(call *methodCall) {
	switch call.info {
	case stepperChange:
		m.changeState(9, 0)
	case stepperEnters[4]:
		m.Enters.Record("S4")
		m.Change()
	case stepperExits[4]:
		m.Exits.Record("S4")
	}
}

func (m *StepperMachine) transition(id, nextIdx int) {
	next := newCompartment(stepperStates[nextIdx], frame.Empty, frame.Empty)
	m.dispatch(newCall(stepperExits[stepperIndex(m.current.info)], frame.Empty))
	old := m.current
	m.current = next
	m.transitionHook(old.info, next.info)
	m.monitor.TransitionOccurred(&frame.TransitionInstance{
		Info: stepperTable.Transition(id),
		Old:  old,
		New:  next,
	})
	m.dispatch(newCall(stepperEnters[nextIdx], frame.Empty))
}

func (m *StepperMachine) changeState(id, nextIdx int) {
	next := newCompartment(stepperStates[nextIdx], frame.Empty, frame.Empty)
	old := m.current
	m.current = next
	m.changeStateHook(old.info, next.info)
	m.monitor.TransitionOccurred(&frame.TransitionInstance{
		Info: stepperTable.Transition(id),
		Old:  old,
		New:  next,
	})
}

// transitionHook is the machine-level hook invoked on every full
// transition, at the swap point.
func (m *StepperMachine) transitionHook(old, next *frame.StateInfo) {
	m.Hooks.Record(old.Name + "->" + next.Name)
}

// changeStateHook is the machine-level hook invoked on every
// change-state, at the swap point.
func (m *StepperMachine) changeStateHook(old, next *frame.StateInfo) {
	m.Hooks.Record(old.Name + "->>" + next.Name)
}

func stepperIndex(s *frame.StateInfo) int {
	for i, st := range stepperStates {
		if st == s {
			return i
		}
	}
	return 0
}
