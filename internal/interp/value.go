package interp

import "strconv"

// Value is a runtime Lox value: a Type/String contract over the four
// dynamic kinds nil, boolean, number, and string. Functions, classes,
// and instances (function.go, class.go) also satisfy this interface.
type Value interface {
	Type() string
	String() string
}

// Nil is the sole value of Lox's nil type.
type Nil struct{}

func (Nil) Type() string   { return "nil" }
func (Nil) String() string { return "nil" }

// Boolean is a Lox true/false value.
type Boolean bool

func (Boolean) Type() string     { return "boolean" }
func (b Boolean) String() string { return strconv.FormatBool(bool(b)) }

// Number is Lox's single numeric type, a float64.
type Number float64

func (Number) Type() string { return "number" }

// String formats the number with the shortest round-tripping
// representation, so an integral value like 3.0 prints as "3" rather
// than "3.0" (3.5 still prints as "3.5").
func (n Number) String() string {
	return strconv.FormatFloat(float64(n), 'f', -1, 64)
}

// String is a Lox string value.
type String string

func (String) Type() string     { return "string" }
func (s String) String() string { return string(s) }

// IsTruthy applies Lox truthiness: nil and false are falsy, every other
// value (including 0 and "") is truthy.
func IsTruthy(v Value) bool {
	switch vv := v.(type) {
	case Nil, nil:
		return false
	case Boolean:
		return bool(vv)
	default:
		return true
	}
}

// IsEqual is Lox's structural equality: Nil equals Nil, and values of
// different dynamic kinds are never equal (and never raise an error,
// unlike most binary operators).
func IsEqual(a, b Value) bool {
	switch av := a.(type) {
	case Nil:
		_, ok := b.(Nil)
		return ok
	case Boolean:
		bv, ok := b.(Boolean)
		return ok && av == bv
	case Number:
		bv, ok := b.(Number)
		return ok && av == bv
	case String:
		bv, ok := b.(String)
		return ok && av == bv
	default:
		return false
	}
}
