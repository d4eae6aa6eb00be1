package interp

import "errors"

// ReturnSignal unwinds the Go call stack from a `return` statement back
// to the enclosing UserFunction.Call. It is intentionally a distinct
// type from any ordinary runtime error (loxerr.RuntimeError): a generic
// error-based implementation would let an unrelated error handler
// upstream mistake a return for a failure. It satisfies the error
// interface only so it can travel through Go's existing (Value, error)
// execution plumbing; callers must check for it explicitly with
// asReturnSignal before treating an error as fatal.
type ReturnSignal struct {
	Value Value
}

func (*ReturnSignal) Error() string { return "return" }

// asReturnSignal reports whether err is (or wraps) a *ReturnSignal, and
// if so stores it in *target.
func asReturnSignal(err error, target **ReturnSignal) bool {
	return errors.As(err, target)
}
