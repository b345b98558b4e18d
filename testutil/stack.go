package testutil

import (
	frame "github.com/deepaksharmaongraph/frame-transpiler"
)

// Static table for StackMachine. State B carries a construction argument
// and a local variable, so pops restoring B demonstrate that the pushed
// compartment's Environments come back exactly as they were bound.
var (
	stackToA       = &frame.MethodInfo{Name: "to_a"}
	stackToB       = &frame.MethodInfo{Name: "to_b", Parameters: []frame.NameInfo{{Name: "tag", Type: "int"}}}
	stackToC       = &frame.MethodInfo{Name: "to_c"}
	stackPush      = &frame.MethodInfo{Name: "push"}
	stackPop       = &frame.MethodInfo{Name: "pop"}
	stackPopChange = &frame.MethodInfo{Name: "pop_change"}

	stackEnterA = &frame.MethodInfo{Name: "A:>"}
	stackExitA  = &frame.MethodInfo{Name: "A:<"}
	stackEnterB = &frame.MethodInfo{Name: "B:>"}
	stackExitB  = &frame.MethodInfo{Name: "B:<"}
	stackEnterC = &frame.MethodInfo{Name: "C:>"}
	stackExitC  = &frame.MethodInfo{Name: "C:<"}

	stackStateA = &frame.StateInfo{
		Name:     "A",
		Handlers: []*frame.MethodInfo{stackToB, stackToC, stackPush, stackPop, stackPopChange, stackEnterA, stackExitA},
	}
	stackStateB = &frame.StateInfo{
		Name:       "B",
		Parameters: []frame.NameInfo{{Name: "tag", Type: "int"}},
		Variables:  []frame.NameInfo{{Name: "visits", Type: "int"}},
		Handlers:   []*frame.MethodInfo{stackToA, stackToC, stackPush, stackPop, stackPopChange, stackEnterB, stackExitB},
	}
	stackStateC = &frame.StateInfo{
		Name:     "C",
		Handlers: []*frame.MethodInfo{stackToA, stackToB, stackPush, stackPop, stackPopChange, stackEnterC, stackExitC},
	}

	stackTable = frame.Build(&frame.MachineInfo{
		Name:      "Stacker",
		States:    []*frame.StateInfo{stackStateA, stackStateB, stackStateC},
		Interface: []*frame.MethodInfo{stackToA, stackToB, stackToC, stackPush, stackPop, stackPopChange},
		Events: []*frame.MethodInfo{
			stackToA, stackToB, stackToC, stackPush, stackPop, stackPopChange,
			stackEnterA, stackExitA, stackEnterB, stackExitB, stackEnterC, stackExitC,
		},
		Transitions: []*frame.TransitionInfo{
			{ID: 0, Kind: frame.KindTransition, Event: stackToB, Source: stackStateA, Target: stackStateB},
			{ID: 1, Kind: frame.KindTransition, Event: stackToC, Source: stackStateA, Target: stackStateC},
			{ID: 2, Kind: frame.KindPopTransition, Event: stackPop, Source: stackStateA},
			{ID: 3, Kind: frame.KindPopChangeState, Event: stackPopChange, Source: stackStateA},
			{ID: 4, Kind: frame.KindTransition, Event: stackToA, Source: stackStateB, Target: stackStateA},
			{ID: 5, Kind: frame.KindTransition, Event: stackToC, Source: stackStateB, Target: stackStateC},
			{ID: 6, Kind: frame.KindPopTransition, Event: stackPop, Source: stackStateB},
			{ID: 7, Kind: frame.KindPopChangeState, Event: stackPopChange, Source: stackStateB},
			{ID: 8, Kind: frame.KindTransition, Event: stackToA, Source: stackStateC, Target: stackStateA},
			{ID: 9, Kind: frame.KindTransition, Event: stackToB, Source: stackStateC, Target: stackStateB},
			{ID: 10, Kind: frame.KindPopTransition, Event: stackPop, Source: stackStateC},
			{ID: 11, Kind: frame.KindPopChangeState, Event: stackPopChange, Source: stackStateC},
		},
	})
)

// stackBArgs binds B's construction argument; the to_b event shares the
// parameter shape.
type stackBArgs struct{ tag int64 }

func (a *stackBArgs) Lookup(name string) (frame.Value, bool) {
	if name == "tag" {
		return frame.Int(a.tag), true
	}
	return frame.Value{}, false
}

type stackBVars struct{ visits int64 }

func (v *stackBVars) Lookup(name string) (frame.Value, bool) {
	if name == "visits" {
		return frame.Int(v.visits), true
	}
	return frame.Value{}, false
}

// StackMachine is a three-state machine compiled with the state-stack
// feature. Push saves the current compartment, Pop restores the top with
// exit/enter dispatch, PopChange restores it silently. Enter and exit
// handlers log "<state>:>" and "<state>:<" to Tape; B's enter handler
// additionally increments its visits variable, so a restored B records
// how often it has been (re)entered.
type StackMachine struct {
	// Tape receives the enter/exit log.
	Tape *Tape

	monitor *frame.EventMonitor
	current *compartment
	stack   frame.StateStack
}

// NewStackMachine returns a machine in state A with an empty stack and a
// default monitor.
func NewStackMachine() *StackMachine {
	return &StackMachine{
		Tape:    &Tape{},
		monitor: frame.DefaultEventMonitor(),
		current: newCompartment(stackStateA, frame.Empty, frame.Empty),
	}
}

func (m *StackMachine) Info() *frame.MachineInfo           { return stackTable }
func (m *StackMachine) CurrentState() frame.StateInstance  { return m.current }
func (m *StackMachine) DomainVariables() frame.Environment { return frame.Empty }
func (m *StackMachine) EventMonitor() *frame.EventMonitor  { return m.monitor }

// StackDepth exposes the stack size for tests.
func (m *StackMachine) StackDepth() int { return m.stack.Len() }

// ToA dispatches to_a.
func (m *StackMachine) ToA() { m.dispatch(newCall(stackToA, frame.Empty)) }

// ToB dispatches to_b, constructing B with the given tag.
func (m *StackMachine) ToB(tag int64) {
	m.dispatch(newCall(stackToB, &stackBArgs{tag: tag}))
}

// ToC dispatches to_c.
func (m *StackMachine) ToC() { m.dispatch(newCall(stackToC, frame.Empty)) }

// Push dispatches push, saving the current state instance.
func (m *StackMachine) Push() { m.dispatch(newCall(stackPush, frame.Empty)) }

// Pop dispatches pop, restoring the top of the stack with exit/enter
// dispatch. With an empty stack the event is a no-op.
func (m *StackMachine) Pop() { m.dispatch(newCall(stackPop, frame.Empty)) }

// PopChange dispatches pop_change, restoring the top of the stack
// without exit/enter dispatch.
func (m *StackMachine) PopChange() { m.dispatch(newCall(stackPopChange, frame.Empty)) }

func (m *StackMachine) dispatch(call *methodCall) {
	m.monitor.EventSent(call)
	m.handle(call)
	m.monitor.EventHandled(call)
}

func (m *StackMachine) handle(call *methodCall) {
	switch m.current.info {
	case stackStateA:
		m.handleA(call)
	case stackStateB:
		m.handleB(call)
	case stackStateC:
		m.handleC(call)
	}
}

func (m *StackMachine) handleA(call *methodCall) {
	switch call.info {
	case stackToB:
		m.transition(0, newBCompartment(call))
	case stackToC:
		m.transition(1, newCompartment(stackStateC, frame.Empty, frame.Empty))
	case stackPush:
		m.stack.Push(m.current)
	case stackPop:
		m.popTransition(2)
	case stackPopChange:
		m.popChangeState(3)
	case stackEnterA:
		m.Tape.Record("A:>")
	case stackExitA:
		m.Tape.Record("A:<")
	}
}

func (m *StackMachine) handleB(call *methodCall) {
	switch call.info {
	case stackToA:
		m.transition(4, newCompartment(stackStateA, frame.Empty, frame.Empty))
	case stackToC:
		m.transition(5, newCompartment(stackStateC, frame.Empty, frame.Empty))
	case stackPush:
		m.stack.Push(m.current)
	case stackPop:
		m.popTransition(6)
	case stackPopChange:
		m.popChangeState(7)
	case stackEnterB:
		m.current.vars.(*stackBVars).visits++
		m.Tape.Record("B:>")
	case stackExitB:
		m.Tape.Record("B:<")
	}
}

func (m *StackMachine) handleC(call *methodCall) {
	switch call.info {
	case stackToA:
		m.transition(8, newCompartment(stackStateA, frame.Empty, frame.Empty))
	case stackToB:
		m.transition(9, newBCompartment(call))
	case stackPush:
		m.stack.Push(m.current)
	case stackPop:
		m.popTransition(10)
	case stackPopChange:
		m.popChangeState(11)
	case stackEnterC:
		m.Tape.Record("C:>")
	case stackExitC:
		m.Tape.Record("C:<")
	}
}

// newBCompartment constructs B's compartment from a to_b call, binding
// the tag argument and fresh variables.
func newBCompartment(call *methodCall) *compartment {
	return newCompartment(stackStateB, &stackBArgs{tag: mustInt(call.args, "tag")}, &stackBVars{})
}

func (m *StackMachine) transition(id int, next *compartment) {
	m.dispatch(newCall(stackExitOf(m.current.info), frame.Empty))
	old := m.current
	m.current = next
	m.monitor.TransitionOccurred(&frame.TransitionInstance{
		Info: stackTable.Transition(id),
		Old:  old,
		New:  next,
	})
	m.dispatch(newCall(stackEnterOf(next.info), frame.Empty))
}

// popTransition restores the pushed compartment with full exit/enter
// dispatch. The restored compartment keeps the Environments it was
// entered with; only the enter sub-event is redispatched against them.
func (m *StackMachine) popTransition(id int) {
	restored, ok := m.stack.Pop()
	if !ok {
		return
	}
	next := restored.(*compartment)
	m.dispatch(newCall(stackExitOf(m.current.info), frame.Empty))
	old := m.current
	m.current = next
	m.monitor.TransitionOccurred(&frame.TransitionInstance{
		Info: stackTable.Transition(id),
		Old:  old,
		New:  next,
	})
	m.dispatch(newCall(stackEnterOf(next.info), frame.Empty))
}

// popChangeState restores the pushed compartment silently.
func (m *StackMachine) popChangeState(id int) {
	restored, ok := m.stack.Pop()
	if !ok {
		return
	}
	next := restored.(*compartment)
	old := m.current
	m.current = next
	m.monitor.TransitionOccurred(&frame.TransitionInstance{
		Info: stackTable.Transition(id),
		Old:  old,
		New:  next,
	})
}

func stackEnterOf(s *frame.StateInfo) *frame.MethodInfo {
	switch s {
	case stackStateA:
		return stackEnterA
	case stackStateB:
		return stackEnterB
	default:
		return stackEnterC
	}
}

func stackExitOf(s *frame.StateInfo) *frame.MethodInfo {
	switch s {
	case stackStateA:
		return stackExitA
	case stackStateB:
		return stackExitB
	default:
		return stackExitC
	}
}
