package core

// StateStack holds pushed state instances for machines compiled with the
// state-stack feature. Push stores the live instance, so a later pop
// restores the state together with the argument and variable Environments
// it was entered with.
//
// The zero StateStack is ready to use.
type StateStack struct {
	entries []StateInstance
}

// Push stores instance on top of the stack.
func (s *StateStack) Push(instance StateInstance) {
	s.entries = append(s.entries, instance)
}

// Pop removes and returns the most recently pushed instance. It reports
// false on an empty stack; generated code treats that as a no-op rather
// than a fault.
func (s *StateStack) Pop() (StateInstance, bool) {
	if len(s.entries) == 0 {
		return nil, false
	}
	top := s.entries[len(s.entries)-1]
	s.entries[len(s.entries)-1] = nil
	s.entries = s.entries[:len(s.entries)-1]
	return top, true
}

// Peek returns the top instance without removing it.
func (s *StateStack) Peek() (StateInstance, bool) {
	if len(s.entries) == 0 {
		return nil, false
	}
	return s.entries[len(s.entries)-1], true
}

// Len returns the number of pushed instances.
func (s *StateStack) Len() int { return len(s.entries) }
