package info

// MethodInfo describes one callable: an interface method, an event, an
// action, or an enter/exit sub-event. The same descriptor shape serves
// all four roles.
type MethodInfo struct {
	// Name is the method name. Enter and exit sub-events use the
	// "<state>:>" and "<state>:<" naming convention.
	Name string

	// Parameters declares the method's parameters in order.
	Parameters []NameInfo

	// ReturnType is the declared return type, or "" when the method
	// returns nothing.
	ReturnType string
}

// Returns reports whether the method declares a return value.
func (m *MethodInfo) Returns() bool { return m.ReturnType != "" }
