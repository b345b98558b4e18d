// Package frame is the runtime contract between state machines emitted by
// the Frame transpiler and the tooling that observes them. Generated code
// implements the interfaces declared here; monitors, tracers, exporters,
// and tests consume them without depending on any concrete machine type.
//
// The contract has two halves. The static half (MachineInfo, StateInfo,
// MethodInfo, TransitionInfo) describes a machine's shape: one immutable
// table per machine type, shared by every instance, built once with Build.
// The live half (Machine, StateInstance, MethodInstance,
// TransitionInstance) exposes a running instance: the current state, the
// Environments bound to it, and the per-dispatch method occurrences.
//
// Observation happens through the EventMonitor each machine carries.
// Generated code notifies it at three points while dispatching an event E
// that causes a full transition:
//
//	EventSent(E)
//	EventSent(exit)    -> exit handler runs  -> EventHandled(exit)
//	state pointer swaps -> TransitionOccurred
//	EventSent(enter)   -> enter handler runs -> EventHandled(enter)
//	EventHandled(E)
//
// A change-state skips the exit/enter lines. Enter handlers may dispatch
// further events, so the protocol nests: sent notifications arrive in
// depth-first order and handled notifications unwind in reverse. All of it
// runs synchronously on the caller's goroutine.
//
// Machines compiled with the state-stack feature additionally push and pop
// live state instances through a StateStack, restoring a popped state's
// original argument and variable Environments.
//
// The observe package layers logging, streaming, and export tooling on top
// of this contract; testutil holds instrumented machines for exercising it.
package frame
