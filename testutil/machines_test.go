package testutil

import (
	"testing"

	frame "github.com/deepaksharmaongraph/frame-transpiler"
)

// The fixtures all implement the Machine interface, so tooling written
// against it drives any of them. This suite checks the contract surface
// every machine must uphold, independent of its particular shape.
func TestMachineContract(t *testing.T) {
	t.Parallel()

	machines := map[string]frame.Machine{
		"cascade": NewCascadeMachine(),
		"stack":   NewStackMachine(),
		"stepper": NewStepperMachine(),
	}
	for name, m := range machines {
		m := m
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			mi := m.Info()
			if mi == nil {
				t.Fatal("Info returned nil")
			}
			if len(mi.States) == 0 {
				t.Fatal("table declares no states")
			}

			current := m.CurrentState()
			if current == nil {
				t.Fatal("CurrentState returned nil")
			}
			if got := mi.State(current.Info().Name); got != current.Info() {
				t.Errorf("current state %q is not in the table", current.Info().Name)
			}
			if current.Arguments() == nil || current.Variables() == nil {
				t.Error("state instance returned a nil Environment")
			}

			if m.EventMonitor() == nil {
				t.Error("EventMonitor returned nil")
			}

			dom := m.DomainVariables()
			if dom == nil {
				t.Fatal("DomainVariables returned nil")
			}
			if _, ok := dom.Lookup("no_such_name"); ok {
				t.Error("undeclared domain lookup reported a binding")
			}

			for _, s := range mi.States {
				for _, h := range s.Handlers {
					if mi.Event(h.Name) != h {
						t.Errorf("state %s handler %s is not a table event", s.Name, h.Name)
					}
				}
			}
			for _, method := range mi.Interface {
				if mi.Event(method.Name) != method {
					t.Errorf("interface method %s is not dispatchable as an event", method.Name)
				}
			}
			for _, tr := range mi.Transitions {
				if mi.State(tr.Source.Name) != tr.Source {
					t.Errorf("transition %d source %s is not in the table", tr.ID, tr.Source.Name)
				}
				if tr.Kind.IsPop() {
					if tr.Target != nil {
						t.Errorf("pop transition %d has a static target", tr.ID)
					}
					continue
				}
				if mi.State(tr.Target.Name) != tr.Target {
					t.Errorf("transition %d target is not in the table", tr.ID)
				}
			}
		})
	}
}
