// Package observe provides ready-made monitor observers: a zap tracer,
// a channel publisher, and description/export helpers for the static
// info model.
package observe

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	frame "github.com/deepaksharmaongraph/frame-transpiler"
)

// Tracer logs monitor notifications through a zap logger. Event sends
// and completions log at Debug, transitions at Info. Argument, return,
// and state variable values are read through the declared name lists,
// never by enumerating the live Environments.
type Tracer struct {
	log *zap.Logger
}

// NewTracer returns a Tracer writing to log.
func NewTracer(log *zap.Logger) *Tracer { return &Tracer{log: log} }

// Attach registers the tracer's three callbacks on the monitor.
// Callbacks cannot be removed, so a Tracer outlives the monitor it is
// attached to.
func (t *Tracer) Attach(mon *frame.EventMonitor) {
	mon.AddEventSentCallback(t.eventSent)
	mon.AddEventHandledCallback(t.eventHandled)
	mon.AddTransitionCallback(t.transition)
}

func (t *Tracer) eventSent(e frame.MethodInstance) {
	t.log.Debug("event sent", eventFields(e)...)
}

func (t *Tracer) eventHandled(e frame.MethodInstance) {
	t.log.Debug("event handled", eventFields(e)...)
}

func (t *Tracer) transition(tr *frame.TransitionInstance) {
	fields := []zap.Field{
		zap.Int("id", tr.Info.ID),
		zap.String("kind", tr.Info.Kind.String()),
		zap.String("from", tr.Old.Info().Name),
		zap.String("to", tr.New.Info().Name),
	}
	if tr.Info.Event != nil {
		fields = append(fields, zap.String("event", tr.Info.Event.Name))
	}
	next := tr.New.Info()
	if len(next.Parameters) > 0 {
		fields = append(fields, zap.Object("state_args", boundValues{next.Parameters, tr.New.Arguments()}))
	}
	if len(next.Variables) > 0 {
		fields = append(fields, zap.Object("state_vars", boundValues{next.Variables, tr.New.Variables()}))
	}
	t.log.Info("transition", fields...)
}

func eventFields(e frame.MethodInstance) []zap.Field {
	info := e.Info()
	fields := []zap.Field{zap.String("event", info.Name)}
	if ret, ok := e.ReturnValue(); ok {
		fields = append(fields, zap.String("return", ret.String()))
	}
	if len(info.Parameters) > 0 {
		fields = append(fields, zap.Object("args", boundValues{info.Parameters, e.Arguments()}))
	}
	return fields
}

// boundValues marshals the declared names resolvable in an Environment.
type boundValues struct {
	names []frame.NameInfo
	env   frame.Environment
}

func (b boundValues) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	for _, n := range b.names {
		v, ok := b.env.Lookup(n.Name)
		if !ok {
			continue
		}
		switch v.Kind() {
		case frame.KindBool:
			enc.AddBool(n.Name, v.AsBool())
		case frame.KindInt:
			enc.AddInt64(n.Name, v.AsInt())
		case frame.KindFloat:
			enc.AddFloat64(n.Name, v.AsFloat())
		case frame.KindString:
			enc.AddString(n.Name, v.AsString())
		}
	}
	return nil
}
