// Package info defines the static description of a generated state machine:
// its states, events, interface methods, actions, and transition table.
//
// Info values describe the machine's shape, not a running instance. The
// generating compiler knows the shape at generation time and emits one
// immutable table per machine type; every live instance of that machine
// shares the same table. Tooling written against this package works with
// any generated machine without knowing its concrete type.
//
// Tables are wired through Build, which installs the state-to-machine
// back-references and checks structural sanity. A table that fails those
// checks was emitted by a broken generator, so Build panics rather than
// returning an error.
package info

import "fmt"

// MachineInfo is the root description of one machine type.
type MachineInfo struct {
	// Name is the machine (system) name from the source program.
	Name string

	// Variables declares the machine's domain variables.
	Variables []NameInfo

	// States lists every state, root first, in declaration order.
	States []*StateInfo

	// Interface lists the public methods a caller may invoke.
	Interface []*MethodInfo

	// Actions lists the private action methods handlers may call.
	Actions []*MethodInfo

	// Events lists every dispatchable event, including the enter and
	// exit sub-events ("<state>:>" and "<state>:<").
	Events []*MethodInfo

	// Transitions is the static transition table in declaration order.
	Transitions []*TransitionInfo
}

// Build wires and checks a generated machine table. It installs each
// state's back-reference to m and verifies the structural invariants the
// generator is required to uphold. Build returns m so generated code can
// initialize a package-level table in one expression:
//
//	var machineInfo = info.Build(&info.MachineInfo{...})
//
// Build panics on a malformed table; such a table is a generator defect,
// not a runtime condition.
func Build(m *MachineInfo) *MachineInfo {
	if m.Name == "" {
		panic("info: machine name is empty")
	}

	states := make(map[string]*StateInfo, len(m.States))
	for _, s := range m.States {
		if s == nil {
			panic(fmt.Sprintf("info: machine %s has a nil state entry", m.Name))
		}
		if s.Name == "" {
			panic(fmt.Sprintf("info: machine %s has a state with an empty name", m.Name))
		}
		if _, dup := states[s.Name]; dup {
			panic(fmt.Sprintf("info: machine %s declares state %s twice", m.Name, s.Name))
		}
		states[s.Name] = s
		s.machine = m
	}

	for _, s := range m.States {
		if s.Parent != nil && states[s.Parent.Name] != s.Parent {
			panic(fmt.Sprintf("info: state %s has a parent outside machine %s", s.Name, m.Name))
		}
	}

	events := make(map[string]*MethodInfo, len(m.Events))
	for _, e := range m.Events {
		if e == nil || e.Name == "" {
			panic(fmt.Sprintf("info: machine %s has an unnamed event", m.Name))
		}
		if _, dup := events[e.Name]; dup {
			panic(fmt.Sprintf("info: machine %s declares event %s twice", m.Name, e.Name))
		}
		events[e.Name] = e
	}

	for _, s := range m.States {
		for _, h := range s.Handlers {
			if events[h.Name] != h {
				panic(fmt.Sprintf("info: state %s handles %s, which is not a machine event", s.Name, h.Name))
			}
		}
	}

	ids := make(map[int]*TransitionInfo, len(m.Transitions))
	for _, tr := range m.Transitions {
		if tr == nil {
			panic(fmt.Sprintf("info: machine %s has a nil transition entry", m.Name))
		}
		if tr.ID < 0 {
			panic(fmt.Sprintf("info: machine %s has a transition with negative id %d", m.Name, tr.ID))
		}
		if _, dup := ids[tr.ID]; dup {
			panic(fmt.Sprintf("info: machine %s declares transition id %d twice", m.Name, tr.ID))
		}
		ids[tr.ID] = tr
		if tr.Source == nil || states[tr.Source.Name] != tr.Source {
			panic(fmt.Sprintf("info: transition %d of machine %s has no source state", tr.ID, m.Name))
		}
		if tr.Kind.IsPop() {
			if tr.Target != nil {
				panic(fmt.Sprintf("info: pop transition %d of machine %s has a static target", tr.ID, m.Name))
			}
		} else {
			if tr.Target == nil || states[tr.Target.Name] != tr.Target {
				panic(fmt.Sprintf("info: transition %d of machine %s has no target state", tr.ID, m.Name))
			}
		}
	}

	return m
}

// State returns the state named name, or nil.
func (m *MachineInfo) State(name string) *StateInfo {
	for _, s := range m.States {
		if s.Name == name {
			return s
		}
	}
	return nil
}

// Event returns the event named name, or nil.
func (m *MachineInfo) Event(name string) *MethodInfo {
	return findMethod(m.Events, name)
}

// InterfaceMethod returns the interface method named name, or nil.
func (m *MachineInfo) InterfaceMethod(name string) *MethodInfo {
	return findMethod(m.Interface, name)
}

// Action returns the action named name, or nil.
func (m *MachineInfo) Action(name string) *MethodInfo {
	return findMethod(m.Actions, name)
}

// Transition returns the transition with the given id, or nil. Ids are
// stable per machine shape but need not be contiguous.
func (m *MachineInfo) Transition(id int) *TransitionInfo {
	for _, tr := range m.Transitions {
		if tr.ID == id {
			return tr
		}
	}
	return nil
}

func findMethod(methods []*MethodInfo, name string) *MethodInfo {
	for _, mi := range methods {
		if mi.Name == name {
			return mi
		}
	}
	return nil
}
