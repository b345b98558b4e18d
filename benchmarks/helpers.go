// Package benchmarks provides shared helpers for benchmark tests.
package benchmarks

import (
	"fmt"

	frame "github.com/deepaksharmaongraph/frame-transpiler"
)

// GenFlatTable builds a machine table with n states in a tick ring.
// Transition ids are spaced to mimic the sparse ids a generator emits
// after pruning.
func GenFlatTable(n int) *frame.MachineInfo {
	if n < 1 {
		n = 1
	}
	tick := &frame.MethodInfo{Name: "tick"}
	states := make([]*frame.StateInfo, n)
	for i := range states {
		states[i] = &frame.StateInfo{
			Name:     fmt.Sprintf("s%d", i),
			Handlers: []*frame.MethodInfo{tick},
		}
	}
	transitions := make([]*frame.TransitionInfo, n)
	for i := range transitions {
		transitions[i] = &frame.TransitionInfo{
			ID:     i * 2,
			Kind:   frame.KindTransition,
			Event:  tick,
			Source: states[i],
			Target: states[(i+1)%n],
		}
	}
	return frame.Build(&frame.MachineInfo{
		Name:        fmt.Sprintf("flat_%d", n),
		States:      states,
		Interface:   []*frame.MethodInfo{tick},
		Events:      []*frame.MethodInfo{tick},
		Transitions: transitions,
	})
}

// GenDeepTable builds a table nesting depth compound levels, two leaves
// per level, for exercising hierarchical rendering.
func GenDeepTable(depth int) *frame.MachineInfo {
	if depth < 1 {
		depth = 1
	}
	tick := &frame.MethodInfo{Name: "tick"}
	var states []*frame.StateInfo
	var transitions []*frame.TransitionInfo
	var parent *frame.StateInfo
	for i := 0; i < depth; i++ {
		c := &frame.StateInfo{Name: fmt.Sprintf("c%d", i), Parent: parent}
		leaf1 := &frame.StateInfo{Name: fmt.Sprintf("c%d_leaf1", i), Parent: c, Handlers: []*frame.MethodInfo{tick}}
		leaf2 := &frame.StateInfo{Name: fmt.Sprintf("c%d_leaf2", i), Parent: c, Handlers: []*frame.MethodInfo{tick}}
		states = append(states, c, leaf1, leaf2)
		transitions = append(transitions,
			&frame.TransitionInfo{ID: i * 2, Kind: frame.KindTransition, Event: tick, Source: leaf1, Target: leaf2},
			&frame.TransitionInfo{ID: i*2 + 1, Kind: frame.KindTransition, Event: tick, Source: leaf2, Target: leaf1},
		)
		parent = c
	}
	return frame.Build(&frame.MachineInfo{
		Name:        fmt.Sprintf("deep_%d", depth),
		States:      states,
		Interface:   []*frame.MethodInfo{tick},
		Events:      []*frame.MethodInfo{tick},
		Transitions: transitions,
	})
}
