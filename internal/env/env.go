// Package env provides the named value lookup primitives shared by every
// runtime surface: event arguments, state arguments, state variables, and
// machine domain variables are all exposed to observers as Environments.
//
// An Environment is read-only by construction. Generated code owns the
// backing storage and mutates it through its own typed fields; observers
// only ever see the Lookup view. Names that are not present answer with a
// plain miss, never an error.
//
// Value is a small tagged union covering the kinds a Frame program can
// declare. Asking a Value for the wrong kind is a defect in generated code,
// not a recoverable condition, so the As* accessors panic.
package env

import (
	"fmt"
	"strconv"
)

// Kind identifies the dynamic type carried by a Value.
type Kind uint8

const (
	// KindInvalid is the kind of the zero Value. No constructed Value has it.
	KindInvalid Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
)

// String returns the lowercase kind name.
func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	default:
		return "invalid"
	}
}

// Value is an immutable dynamically-kinded value. Values are comparable;
// two Values are equal when their kind and payload are equal. The zero
// Value has KindInvalid and represents "no value".
type Value struct {
	kind Kind
	b    bool
	i    int64
	f    float64
	s    string
}

// Bool wraps a bool.
func Bool(v bool) Value { return Value{kind: KindBool, b: v} }

// Int wraps an integer.
func Int(v int64) Value { return Value{kind: KindInt, i: v} }

// Float wraps a float.
func Float(v float64) Value { return Value{kind: KindFloat, f: v} }

// String wraps a string.
func String(v string) Value { return Value{kind: KindString, s: v} }

// Kind returns the kind tag.
func (v Value) Kind() Kind { return v.kind }

// IsValid reports whether the Value was built by one of the constructors.
// The zero Value reports false.
func (v Value) IsValid() bool { return v.kind != KindInvalid }

// AsBool returns the boolean payload. Panics if the Value is not a bool.
func (v Value) AsBool() bool {
	v.mustBe(KindBool)
	return v.b
}

// AsInt returns the integer payload. Panics if the Value is not an int.
func (v Value) AsInt() int64 {
	v.mustBe(KindInt)
	return v.i
}

// AsFloat returns the float payload. Panics if the Value is not a float.
func (v Value) AsFloat() float64 {
	v.mustBe(KindFloat)
	return v.f
}

// AsString returns the string payload. Panics if the Value is not a string.
func (v Value) AsString() string {
	v.mustBe(KindString)
	return v.s
}

func (v Value) mustBe(want Kind) {
	if v.kind != want {
		panic(fmt.Sprintf("env: %s value requested from %s Value", want, v.kind))
	}
}

// Any returns the payload as an untyped interface value, or nil for the
// zero Value.
func (v Value) Any() any {
	switch v.kind {
	case KindBool:
		return v.b
	case KindInt:
		return v.i
	case KindFloat:
		return v.f
	case KindString:
		return v.s
	default:
		return nil
	}
}

// String renders the payload for display. Strings render unquoted; the
// zero Value renders as "<none>".
func (v Value) String() string {
	switch v.kind {
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindString:
		return v.s
	default:
		return "<none>"
	}
}

// Environment is a read-only view over a set of named values. Lookup
// reports (zero, false) for names the site does not declare.
//
// Environments are deliberately not enumerable: the names a site declares
// are published by the static info model, and observers walk those
// declarations and Lookup each one.
type Environment interface {
	Lookup(name string) (Value, bool)
}

// Empty is the shared Environment for sites that declare no names. Every
// Lookup misses.
var Empty Environment = emptyEnvironment{}

type emptyEnvironment struct{}

func (emptyEnvironment) Lookup(string) (Value, bool) { return Value{}, false }
