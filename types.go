package frame

import (
	"github.com/deepaksharmaongraph/frame-transpiler/internal/core"
	"github.com/deepaksharmaongraph/frame-transpiler/internal/env"
	"github.com/deepaksharmaongraph/frame-transpiler/internal/info"
)

// Static info model. See the info package for field documentation.
type (
	MachineInfo    = info.MachineInfo
	StateInfo      = info.StateInfo
	MethodInfo     = info.MethodInfo
	NameInfo       = info.NameInfo
	TransitionInfo = info.TransitionInfo
	TransitionKind = info.TransitionKind
)

// Transition kinds.
const (
	KindChangeState    = info.KindChangeState
	KindTransition     = info.KindTransition
	KindPopTransition  = info.KindPopTransition
	KindPopChangeState = info.KindPopChangeState
)

// Dynamically-kinded values and their read-only containers.
type (
	Kind        = env.Kind
	Value       = env.Value
	Environment = env.Environment
)

// Value kinds.
const (
	KindInvalid = env.KindInvalid
	KindBool    = env.KindBool
	KindInt     = env.KindInt
	KindFloat   = env.KindFloat
	KindString  = env.KindString
)

// Empty is the shared Environment for sites that declare no names.
var Empty = env.Empty

// Live runtime surfaces.
type (
	Machine            = core.Machine
	StateInstance      = core.StateInstance
	MethodInstance     = core.MethodInstance
	TransitionInstance = core.TransitionInstance
	EventMonitor       = core.EventMonitor
	EventCallback      = core.EventCallback
	TransitionCallback = core.TransitionCallback
	StateStack         = core.StateStack
	Capacity           = core.Capacity
)
