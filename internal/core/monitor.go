package core

// EventCallback observes a MethodInstance at a notification point.
type EventCallback func(MethodInstance)

// TransitionCallback observes an occurred transition.
type TransitionCallback func(*TransitionInstance)

// EventMonitor receives the notifications generated code emits while
// dispatching, keeps bounded histories of them, and fans them out to
// registered callbacks.
//
// Generated code calls EventSent when dispatch of an event begins,
// EventHandled when its handler returns, and TransitionOccurred at the
// instant the current-state pointer swaps. Because handlers may dispatch
// further events, sent notifications arrive in depth-first order and
// handled notifications in the reverse, stack-unwind order.
//
// Callbacks run synchronously on the dispatching goroutine in
// registration order. None of the monitor's methods can fail; history
// capacity only decides retention, never delivery.
type EventMonitor struct {
	events       *History[MethodInstance]
	transitions  *History[*TransitionInstance]
	sent         []EventCallback
	handled      []EventCallback
	transitioned []TransitionCallback
}

// NewEventMonitor returns a monitor with the given history capacities.
// The event history records handled events; the transition history
// records occurred transitions.
func NewEventMonitor(eventCapacity, transitionCapacity Capacity) *EventMonitor {
	return &EventMonitor{
		events:      NewHistory[MethodInstance](eventCapacity),
		transitions: NewHistory[*TransitionInstance](transitionCapacity),
	}
}

// DefaultEventMonitor returns the monitor generated machines construct
// when the program does not configure one: event storage disabled, only
// the most recent transition retained. Callbacks are unaffected by either
// setting.
func DefaultEventMonitor() *EventMonitor {
	return NewEventMonitor(Limit(0), Limit(1))
}

// AddEventSentCallback registers cb for event-sent notifications.
// Callbacks cannot be removed; registration order is delivery order.
func (m *EventMonitor) AddEventSentCallback(cb EventCallback) {
	m.sent = append(m.sent, cb)
}

// AddEventHandledCallback registers cb for event-handled notifications.
func (m *EventMonitor) AddEventHandledCallback(cb EventCallback) {
	m.handled = append(m.handled, cb)
}

// AddTransitionCallback registers cb for transition notifications.
func (m *EventMonitor) AddTransitionCallback(cb TransitionCallback) {
	m.transitioned = append(m.transitioned, cb)
}

// EventSent notifies that dispatch of e has begun. Sent events are not
// recorded in the event history; only handled ones are.
func (m *EventMonitor) EventSent(e MethodInstance) {
	for _, cb := range m.sent {
		cb(e)
	}
}

// EventHandled records e in the event history, then notifies callbacks.
// The history write happens first so a callback reading the history sees
// the event it is being told about.
func (m *EventMonitor) EventHandled(e MethodInstance) {
	m.events.Push(e)
	for _, cb := range m.handled {
		cb(e)
	}
}

// TransitionOccurred records t in the transition history, then notifies
// callbacks. Generated code calls it immediately after swapping the
// current-state pointer and before dispatching the enter sub-event.
func (m *EventMonitor) TransitionOccurred(t *TransitionInstance) {
	m.transitions.Push(t)
	for _, cb := range m.transitioned {
		cb(t)
	}
}

// EventHistory returns a copy of the handled-event history, oldest first.
func (m *EventMonitor) EventHistory() []MethodInstance {
	return m.events.Entries()
}

// TransitionHistory returns a copy of the transition history, oldest
// first.
func (m *EventMonitor) TransitionHistory() []*TransitionInstance {
	return m.transitions.Entries()
}

// LastTransition returns the most recent transition, or false if none is
// retained.
func (m *EventMonitor) LastTransition() (*TransitionInstance, bool) {
	return m.transitions.Last()
}

// ClearEventHistory drops all recorded events.
func (m *EventMonitor) ClearEventHistory() { m.events.Clear() }

// ClearTransitionHistory drops all recorded transitions.
func (m *EventMonitor) ClearTransitionHistory() { m.transitions.Clear() }

// SetEventHistoryCapacity rebounds the event history. Lowering the
// capacity evicts the oldest entries immediately.
func (m *EventMonitor) SetEventHistoryCapacity(c Capacity) {
	m.events.SetCapacity(c)
}

// SetTransitionHistoryCapacity rebounds the transition history.
func (m *EventMonitor) SetTransitionHistoryCapacity(c Capacity) {
	m.transitions.SetCapacity(c)
}

// EventHistoryCapacity returns the event history's capacity.
func (m *EventMonitor) EventHistoryCapacity() Capacity {
	return m.events.Capacity()
}

// TransitionHistoryCapacity returns the transition history's capacity.
func (m *EventMonitor) TransitionHistoryCapacity() Capacity {
	return m.transitions.Capacity()
}
