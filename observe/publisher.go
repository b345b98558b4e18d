package observe

import (
	"errors"

	frame "github.com/deepaksharmaongraph/frame-transpiler"
)

// ErrClosed is returned by Close on an already-closed Publisher.
var ErrClosed = errors.New("observe: publisher is closed")

// NoticeKind discriminates Publisher notifications.
type NoticeKind int

const (
	NoticeEventSent NoticeKind = iota
	NoticeEventHandled
	NoticeTransition
)

func (k NoticeKind) String() string {
	switch k {
	case NoticeEventSent:
		return "event-sent"
	case NoticeEventHandled:
		return "event-handled"
	case NoticeTransition:
		return "transition"
	default:
		return "unknown"
	}
}

// Notification is one monitor callback forwarded to a channel. Event is
// set for the event kinds, Transition for NoticeTransition.
type Notification struct {
	Kind       NoticeKind
	Event      frame.MethodInstance
	Transition *frame.TransitionInstance
}

// Publisher forwards monitor notifications to a buffered channel with a
// non-blocking send. Notifications arriving while the buffer is full
// are dropped rather than stalling the dispatching machine.
type Publisher struct {
	ch     chan Notification
	closed bool
}

// Option configures a Publisher.
type Option func(*Publisher)

// WithBuffer sets the notification buffer size. The default is 64.
func WithBuffer(size int) Option {
	return func(p *Publisher) {
		p.ch = make(chan Notification, size)
	}
}

// NewPublisher creates a Publisher.
func NewPublisher(opts ...Option) *Publisher {
	p := &Publisher{ch: make(chan Notification, 64)}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Attach registers the publisher's three callbacks on the monitor.
func (p *Publisher) Attach(mon *frame.EventMonitor) {
	mon.AddEventSentCallback(func(e frame.MethodInstance) {
		p.publish(Notification{Kind: NoticeEventSent, Event: e})
	})
	mon.AddEventHandledCallback(func(e frame.MethodInstance) {
		p.publish(Notification{Kind: NoticeEventHandled, Event: e})
	})
	mon.AddTransitionCallback(func(tr *frame.TransitionInstance) {
		p.publish(Notification{Kind: NoticeTransition, Transition: tr})
	})
}

// Notifications returns the receive side of the buffer.
func (p *Publisher) Notifications() <-chan Notification { return p.ch }

// Close closes the notification channel. Notifications arriving after
// Close are dropped. Close and the dispatching machine must share a
// goroutine.
func (p *Publisher) Close() error {
	if p.closed {
		return ErrClosed
	}
	p.closed = true
	close(p.ch)
	return nil
}

func (p *Publisher) publish(n Notification) {
	if p.closed {
		return
	}
	select {
	case p.ch <- n:
	default:
	}
}
