// Package testutil provides hand-written machines that stand in for
// transpiler output. Each machine implements the full dispatch protocol
// literally (switch-based handlers, per-site Environments, compartment
// swaps), so the protocol tests in this package double as the reference
// traces for what generated code must produce.
package testutil

import (
	"fmt"

	frame "github.com/deepaksharmaongraph/frame-transpiler"
)

// Tape records strings in order. Fixture handlers log to tapes and tests
// assert on the resulting sequences.
type Tape struct {
	entries []string
}

// Record appends an entry.
func (t *Tape) Record(entry string) { t.entries = append(t.entries, entry) }

// Entries returns a copy of the recorded entries.
func (t *Tape) Entries() []string {
	out := make([]string, len(t.entries))
	copy(out, t.entries)
	return out
}

// Len returns the number of recorded entries.
func (t *Tape) Len() int { return len(t.entries) }

// Clear drops all recorded entries.
func (t *Tape) Clear() { t.entries = nil }

// methodCall is the live record of one dispatched method. The dispatching
// machine fills ret before notifying EventHandled, so monitor histories
// observe return values through the shared pointer.
type methodCall struct {
	info   *frame.MethodInfo
	args   frame.Environment
	ret    frame.Value
	hasRet bool
}

func newCall(info *frame.MethodInfo, args frame.Environment) *methodCall {
	return &methodCall{info: info, args: args}
}

func (c *methodCall) Info() *frame.MethodInfo          { return c.info }
func (c *methodCall) Arguments() frame.Environment     { return c.args }
func (c *methodCall) ReturnValue() (frame.Value, bool) { return c.ret, c.hasRet }

func (c *methodCall) setReturn(v frame.Value) {
	c.ret = v
	c.hasRet = true
}

// compartment is one live occupancy of a state: its static info plus the
// argument and variable Environments bound at entry. Machines swap their
// current compartment at the transition point and push compartments onto
// the state stack.
type compartment struct {
	info *frame.StateInfo
	args frame.Environment
	vars frame.Environment
}

func newCompartment(info *frame.StateInfo, args, vars frame.Environment) *compartment {
	return &compartment{info: info, args: args, vars: vars}
}

func (c *compartment) Info() *frame.StateInfo       { return c.info }
func (c *compartment) Arguments() frame.Environment { return c.args }
func (c *compartment) Variables() frame.Environment { return c.vars }

// mustInt reads a declared integer from an Environment. A miss means the
// generated lookup table and its caller disagree, which is unrecoverable.
func mustInt(e frame.Environment, name string) int64 {
	v, ok := e.Lookup(name)
	if !ok {
		panic(fmt.Sprintf("testutil: argument %q is not bound", name))
	}
	return v.AsInt()
}
