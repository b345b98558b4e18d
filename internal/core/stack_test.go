package core

import "testing"

func TestStateStackLIFO(t *testing.T) {
	t.Parallel()

	f := newLampFixture()
	var stack StateStack

	stack.Push(f.off)
	stack.Push(f.on)
	stack.Push(f.off)

	if stack.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", stack.Len())
	}

	wantOrder := []StateInstance{f.off, f.on, f.off}
	for i := len(wantOrder) - 1; i >= 0; i-- {
		got, ok := stack.Pop()
		if !ok {
			t.Fatalf("Pop() reported empty with %d entries expected", i+1)
		}
		if got != wantOrder[i] {
			t.Errorf("Pop() = %s, want %s", got.Info().Name, wantOrder[i].Info().Name)
		}
	}
}

func TestStateStackPopEmpty(t *testing.T) {
	t.Parallel()

	var stack StateStack

	if got, ok := stack.Pop(); ok || got != nil {
		t.Errorf("Pop() on empty = (%v, %v), want (nil, false)", got, ok)
	}
}

func TestStateStackPeek(t *testing.T) {
	t.Parallel()

	f := newLampFixture()
	var stack StateStack

	if _, ok := stack.Peek(); ok {
		t.Error("Peek() on empty reported an entry")
	}

	stack.Push(f.on)
	top, ok := stack.Peek()
	if !ok || top != StateInstance(f.on) {
		t.Errorf("Peek() = (%v, %v), want the pushed instance", top, ok)
	}
	if stack.Len() != 1 {
		t.Errorf("Peek() changed Len() to %d", stack.Len())
	}
}
