package info

// TransitionKind distinguishes the four ways a machine can move between
// states. The kinds differ in whether exit/enter sub-events run and in
// whether the destination is known statically.
type TransitionKind uint8

const (
	// KindChangeState swaps the current state without running exit or
	// enter sub-events.
	KindChangeState TransitionKind = iota

	// KindTransition runs the old state's exit sub-event, swaps, then
	// runs the new state's enter sub-event.
	KindTransition

	// KindPopTransition restores the top of the state stack with full
	// exit/enter sub-event dispatch. The destination is whatever was
	// pushed, so the static table carries no target.
	KindPopTransition

	// KindPopChangeState restores the top of the state stack silently,
	// like a change-state. No static target.
	KindPopChangeState
)

// String returns the kind name.
func (k TransitionKind) String() string {
	switch k {
	case KindChangeState:
		return "change-state"
	case KindTransition:
		return "transition"
	case KindPopTransition:
		return "pop-transition"
	case KindPopChangeState:
		return "pop-change-state"
	default:
		return "unknown"
	}
}

// IsPop reports whether the kind restores a pushed state instead of
// targeting a statically known state.
func (k TransitionKind) IsPop() bool {
	return k == KindPopTransition || k == KindPopChangeState
}

// RunsExitEnter reports whether the kind dispatches exit and enter
// sub-events around the state swap.
func (k TransitionKind) RunsExitEnter() bool {
	return k == KindTransition || k == KindPopTransition
}

// Arrow returns the source-language arrow for the kind: "->" when exit
// and enter run, "->>" for the silent change-state forms.
func (k TransitionKind) Arrow() string {
	if k.RunsExitEnter() {
		return "->"
	}
	return "->>"
}

// TransitionInfo describes one row of the static transition table.
type TransitionInfo struct {
	// ID is the generator-assigned identifier. Ids are stable for a
	// machine shape across runs and processes. They follow declaration
	// order, so the ids observed in any single run are usually sparse.
	ID int

	// Kind selects the dispatch protocol for this transition.
	Kind TransitionKind

	// Event is the event whose handler performs the transition.
	Event *MethodInfo

	// Label is the optional source-program annotation, or "".
	Label string

	// Source is the state the transition leaves.
	Source *StateInfo

	// Target is the state the transition enters. It is nil exactly when
	// Kind.IsPop(): the destination of a pop is decided by the state
	// stack at run time.
	Target *StateInfo
}
