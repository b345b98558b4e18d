package info

// NameInfo declares one named, typed slot: a parameter or a variable.
// Type carries the source-language type name and is opaque to the runtime.
type NameInfo struct {
	Name string
	Type string
}

// StateInfo describes one state of a machine.
type StateInfo struct {
	machine *MachineInfo

	// Name is the state name without the $ sigil.
	Name string

	// Parent is the enclosing state in a hierarchical machine, or nil.
	Parent *StateInfo

	// Parameters declares the state's construction arguments.
	Parameters []NameInfo

	// Variables declares the state's local variables.
	Variables []NameInfo

	// Handlers lists the events this state handles. Every entry is one
	// of the owning machine's Events.
	Handlers []*MethodInfo
}

// Machine returns the owning machine table. The back-reference is
// installed by Build; it lets tooling that is handed a bare state walk
// back up to the full machine description.
func (s *StateInfo) Machine() *MachineInfo { return s.machine }

// Handles reports whether the state declares a handler for the named
// event.
func (s *StateInfo) Handles(eventName string) bool {
	for _, h := range s.Handlers {
		if h.Name == eventName {
			return true
		}
	}
	return false
}
