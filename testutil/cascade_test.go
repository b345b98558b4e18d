package testutil

import (
	"reflect"
	"testing"

	frame "github.com/deepaksharmaongraph/frame-transpiler"
)

// eventNames projects a history slice onto method names.
func eventNames(history []frame.MethodInstance) []string {
	names := make([]string, len(history))
	for i, e := range history {
		names[i] = e.Info().Name
	}
	return names
}

// renderTransitions projects a history slice onto "old->new" strings.
func renderTransitions(history []*frame.TransitionInstance) []string {
	out := make([]string, len(history))
	for i, t := range history {
		out[i] = t.String()
	}
	return out
}

func TestCascadeSentDepthFirst(t *testing.T) {
	t.Parallel()

	m := NewCascadeMachine()
	var sent []string
	m.EventMonitor().AddEventSentCallback(func(e frame.MethodInstance) {
		sent = append(sent, e.Info().Name)
	})

	m.Transit(2)

	want := []string{
		"transit", "A:<", "B:>", "transit", "B:<", "C:>",
		"transit", "C:<", "D:>", "change",
	}
	if !reflect.DeepEqual(sent, want) {
		t.Errorf("sent order = %v, want %v", sent, want)
	}
	if got := m.CurrentState().Info().Name; got != "A" {
		t.Errorf("final state = %q, want A", got)
	}
}

func TestCascadeHandledUnwind(t *testing.T) {
	t.Parallel()

	m := NewCascadeMachine()
	var handled []string
	m.EventMonitor().AddEventHandledCallback(func(e frame.MethodInstance) {
		handled = append(handled, e.Info().Name)
	})

	m.Transit(2)

	// Handled notifications unwind innermost-first: every sub-event a
	// handler dispatches completes before the handler's own event does.
	want := []string{
		"A:<", "B:<", "C:<", "change", "D:>",
		"transit", "C:>", "transit", "B:>", "transit",
	}
	if !reflect.DeepEqual(handled, want) {
		t.Errorf("handled order = %v, want %v", handled, want)
	}
}

func TestCascadeTransitionOrdering(t *testing.T) {
	t.Parallel()

	m := NewCascadeMachine()
	var sentSide, handledSide []string
	m.EventMonitor().AddEventSentCallback(func(e frame.MethodInstance) {
		sentSide = append(sentSide, e.Info().Name)
	})
	m.EventMonitor().AddEventHandledCallback(func(e frame.MethodInstance) {
		handledSide = append(handledSide, e.Info().Name)
	})
	m.EventMonitor().AddTransitionCallback(func(tr *frame.TransitionInstance) {
		sentSide = append(sentSide, tr.String())
		handledSide = append(handledSide, tr.String())
	})

	m.Transit(2)

	// Relative to sends, each transition lands after the exit sub-event
	// and before the enter sub-event of its row.
	wantSent := []string{
		"transit", "A:<", "A->B", "B:>",
		"transit", "B:<", "B->C", "C:>",
		"transit", "C:<", "C->D", "D:>",
		"change", "D->>A",
	}
	if !reflect.DeepEqual(sentSide, wantSent) {
		t.Errorf("sent interleaving = %v, want %v", sentSide, wantSent)
	}

	// Relative to completions, each transition lands after the exit
	// completes and before anything later completes.
	wantHandled := []string{
		"A:<", "A->B", "B:<", "B->C", "C:<", "C->D",
		"D->>A", "change", "D:>", "transit", "C:>", "transit", "B:>", "transit",
	}
	if !reflect.DeepEqual(handledSide, wantHandled) {
		t.Errorf("handled interleaving = %v, want %v", handledSide, wantHandled)
	}
}

func TestCascadeChangeStateSkipsExitEnter(t *testing.T) {
	t.Parallel()

	m := NewCascadeMachine()
	var sent, handled, transitions []string
	m.EventMonitor().AddEventSentCallback(func(e frame.MethodInstance) {
		sent = append(sent, e.Info().Name)
	})
	m.EventMonitor().AddEventHandledCallback(func(e frame.MethodInstance) {
		handled = append(handled, e.Info().Name)
	})
	m.EventMonitor().AddTransitionCallback(func(tr *frame.TransitionInstance) {
		transitions = append(transitions, tr.String())
	})

	m.Change()

	if want := []string{"change"}; !reflect.DeepEqual(sent, want) {
		t.Errorf("sent = %v, want %v", sent, want)
	}
	if want := []string{"change"}; !reflect.DeepEqual(handled, want) {
		t.Errorf("handled = %v, want %v", handled, want)
	}
	if want := []string{"A->>B"}; !reflect.DeepEqual(transitions, want) {
		t.Errorf("transitions = %v, want %v", transitions, want)
	}
	if got := m.CurrentState().Info().Name; got != "B" {
		t.Errorf("final state = %q, want B", got)
	}
}

func TestCascadeReturnValues(t *testing.T) {
	t.Parallel()

	m := NewCascadeMachine()

	if got := m.Change(); got != 1 {
		t.Errorf("first Change() = %d, want 1", got)
	}
	if got := m.Mult(3, 5); got != 15 {
		t.Errorf("Mult(3, 5) = %d, want 15", got)
	}
	if got := m.Change(); got != 2 {
		t.Errorf("second Change() = %d, want 2", got)
	}
	m.Reset()

	history := m.EventMonitor().EventHistory()
	names := eventNames(history)
	want := []string{"change", "mult", "change", "reset"}
	if !reflect.DeepEqual(names, want) {
		t.Fatalf("event history = %v, want %v", names, want)
	}

	for i, wantRet := range []struct {
		present bool
		value   int64
	}{
		{true, 1}, {true, 15}, {true, 2}, {false, 0},
	} {
		v, ok := history[i].ReturnValue()
		if ok != wantRet.present {
			t.Errorf("history[%d] return present = %v, want %v", i, ok, wantRet.present)
			continue
		}
		if ok && v.AsInt() != wantRet.value {
			t.Errorf("history[%d] return = %d, want %d", i, v.AsInt(), wantRet.value)
		}
	}

	// mult's arguments stay inspectable after the dispatch completes.
	args := history[1].Arguments()
	if v, ok := args.Lookup("b"); !ok || v.AsInt() != 5 {
		t.Errorf("mult argument b = %v (ok=%v), want 5", v, ok)
	}
}

func TestCascadeUnhandledEventIsStillObserved(t *testing.T) {
	t.Parallel()

	m := NewCascadeMachine()
	var sent, handled int
	m.EventMonitor().AddEventSentCallback(func(frame.MethodInstance) { sent++ })
	m.EventMonitor().AddEventHandledCallback(func(frame.MethodInstance) { handled++ })

	// A has no reset handler; the dispatch still runs the full bracket.
	m.Reset()

	if sent != 1 || handled != 1 {
		t.Errorf("sent/handled = %d/%d, want 1/1", sent, handled)
	}
	if got := m.CurrentState().Info().Name; got != "A" {
		t.Errorf("state after unhandled event = %q, want A", got)
	}
	if len(m.EventMonitor().TransitionHistory()) != 0 {
		t.Error("unhandled event recorded a transition")
	}
	history := m.EventMonitor().EventHistory()
	if len(history) != 1 {
		t.Fatalf("event history length = %d, want 1", len(history))
	}
	if _, ok := history[0].ReturnValue(); ok {
		t.Error("unhandled event has a return value")
	}
}

func TestCascadeEventHistoryOrder(t *testing.T) {
	t.Parallel()

	m := NewCascadeMachine()
	m.Change()
	m.Mult(2, 3)
	m.Transit(5)

	// Nine events completed; the five-slot history keeps the last five
	// in completion order.
	history := m.EventMonitor().EventHistory()
	names := eventNames(history)
	want := []string{"change", "D:>", "transit", "C:>", "transit"}
	if !reflect.DeepEqual(names, want) {
		t.Fatalf("event history = %v, want %v", names, want)
	}

	// The surviving change is the one D's enter dispatched.
	if v, ok := history[0].ReturnValue(); !ok || v.AsInt() != 2 {
		t.Errorf("change return = %v (ok=%v), want 2", v, ok)
	}
	// Enter and transit arguments are the bound live values.
	if v, ok := history[3].Arguments().Lookup("n"); !ok || v.AsInt() != 5 {
		t.Errorf("C:> argument n = %v (ok=%v), want 5", v, ok)
	}
	if v, ok := history[2].Arguments().Lookup("n"); !ok || v.AsInt() != 4 {
		t.Errorf("inner transit argument n = %v (ok=%v), want 4", v, ok)
	}
	if v, ok := history[4].Arguments().Lookup("n"); !ok || v.AsInt() != 5 {
		t.Errorf("outer transit argument n = %v (ok=%v), want 5", v, ok)
	}
}

func TestCascadeEventHistoryCapacity(t *testing.T) {
	t.Parallel()

	m := NewCascadeMachine()
	mon := m.EventMonitor()
	if got := mon.EventHistoryCapacity(); got != frame.Limit(5) {
		t.Fatalf("event history capacity = %v, want %v", got, frame.Limit(5))
	}

	m.Change()
	m.Mult(2, 3)
	m.Transit(5)

	mon.SetEventHistoryCapacity(frame.Limit(3))
	if got, want := eventNames(mon.EventHistory()), []string{"transit", "C:>", "transit"}; !reflect.DeepEqual(got, want) {
		t.Errorf("after shrink = %v, want %v", got, want)
	}

	mon.SetEventHistoryCapacity(frame.Unbounded())
	m.Mult(4, 4)
	if got, want := eventNames(mon.EventHistory()), []string{"transit", "C:>", "transit", "mult"}; !reflect.DeepEqual(got, want) {
		t.Errorf("after grow = %v, want %v", got, want)
	}

	mon.ClearEventHistory()
	if got := len(mon.EventHistory()); got != 0 {
		t.Errorf("after clear: %d entries", got)
	}

	// Zero capacity disables recording without silencing callbacks.
	mon.SetEventHistoryCapacity(frame.Limit(0))
	var notified int
	mon.AddEventHandledCallback(func(frame.MethodInstance) { notified++ })
	m.Change()
	if got := len(mon.EventHistory()); got != 0 {
		t.Errorf("zero-capacity history holds %d entries", got)
	}
	if notified != 1 {
		t.Errorf("handled notifications = %d, want 1", notified)
	}
}

func TestCascadeTransitionHistoryCapacity(t *testing.T) {
	t.Parallel()

	m := NewCascadeMachine()
	mon := m.EventMonitor()
	if got := mon.TransitionHistoryCapacity(); got != frame.Limit(3) {
		t.Fatalf("transition history capacity = %v, want %v", got, frame.Limit(3))
	}

	m.Change()
	m.Reset()
	if got, want := renderTransitions(mon.TransitionHistory()), []string{"A->>B", "B->>A"}; !reflect.DeepEqual(got, want) {
		t.Errorf("history = %v, want %v", got, want)
	}

	// A cascade pushes four rows through a three-slot window.
	m.Transit(2)
	if got, want := renderTransitions(mon.TransitionHistory()), []string{"B->C", "C->D", "D->>A"}; !reflect.DeepEqual(got, want) {
		t.Errorf("history = %v, want %v", got, want)
	}

	mon.SetTransitionHistoryCapacity(frame.Limit(6))
	m.Transit(2)
	want := []string{"C->D", "D->>A", "A->B", "B->C", "C->D", "D->>A"}
	if got := renderTransitions(mon.TransitionHistory()); !reflect.DeepEqual(got, want) {
		t.Errorf("history = %v, want %v", got, want)
	}

	// Shrinking keeps the newest rows.
	mon.SetTransitionHistoryCapacity(frame.Limit(3))
	m.Change()
	if got, want := renderTransitions(mon.TransitionHistory()), []string{"C->D", "D->>A", "A->>B"}; !reflect.DeepEqual(got, want) {
		t.Errorf("history = %v, want %v", got, want)
	}

	mon.SetTransitionHistoryCapacity(frame.Unbounded())
	m.Reset()
	m.Transit(4)
	m.Transit(5)
	if got := len(mon.TransitionHistory()); got != 12 {
		t.Errorf("unbounded history length = %d, want 12", got)
	}
	last, ok := mon.LastTransition()
	if !ok || last.String() != "D->>A" {
		t.Errorf("last transition = %v (ok=%v), want D->>A", last, ok)
	}
}

func TestCascadeTransitionInstances(t *testing.T) {
	t.Parallel()

	m := NewCascadeMachine()
	m.Change()

	last, ok := m.EventMonitor().LastTransition()
	if !ok {
		t.Fatal("no transition recorded")
	}
	if last.Info.ID != 1 {
		t.Errorf("transition id = %d, want 1", last.Info.ID)
	}
	if last.Info.Kind != frame.KindChangeState {
		t.Errorf("transition kind = %v, want %v", last.Info.Kind, frame.KindChangeState)
	}
	if last.Old.Info() != last.Info.Source || last.New.Info() != last.Info.Target {
		t.Error("live endpoints disagree with the static row")
	}
	if last.New != m.CurrentState() {
		t.Error("New is not the live current state instance")
	}
}

func TestCascadeStaticInfo(t *testing.T) {
	t.Parallel()

	m := NewCascadeMachine()
	info := m.Info()
	if info.Name != "Cascade" {
		t.Errorf("machine name = %q", info.Name)
	}
	if len(info.States) != 4 {
		t.Errorf("state count = %d, want 4", len(info.States))
	}
	if tr := info.Transition(5); tr == nil || tr.Kind != frame.KindTransition {
		t.Errorf("transition 5 = %+v, want a full transition", tr)
	}
	if tr := info.Transition(42); tr != nil {
		t.Errorf("transition 42 = %+v, want nil", tr)
	}
	if !info.State("B").Handles("reset") {
		t.Error("B should handle reset")
	}
	if info.State("A").Handles("reset") {
		t.Error("A should not handle reset")
	}
	if info.State("D").Handles("transit") {
		t.Error("D should not handle transit")
	}
}

func TestCascadeDomainVariables(t *testing.T) {
	t.Parallel()

	m := NewCascadeMachine()
	if v, ok := m.DomainVariables().Lookup("changes"); !ok || v.AsInt() != 0 {
		t.Errorf("changes = %v (ok=%v), want 0", v, ok)
	}

	m.Change()
	m.Change()

	// The view is live, not a snapshot.
	if v, ok := m.DomainVariables().Lookup("changes"); !ok || v.AsInt() != 2 {
		t.Errorf("changes = %v (ok=%v), want 2", v, ok)
	}
	if _, ok := m.DomainVariables().Lookup("missing"); ok {
		t.Error("undeclared domain variable resolved")
	}
}

func TestCascadeCallbackRegistrationOrder(t *testing.T) {
	t.Parallel()

	m := NewCascadeMachine()
	var order []int
	for i := 1; i <= 3; i++ {
		i := i
		m.EventMonitor().AddEventSentCallback(func(frame.MethodInstance) { order = append(order, i) })
	}

	m.Mult(1, 1)

	if want := []int{1, 2, 3}; !reflect.DeepEqual(order, want) {
		t.Errorf("notification order = %v, want %v", order, want)
	}
}
