package interp

import (
	"fmt"

	"github.com/cwbudde/go-lox/internal/ast"
)

// UserFunction is a Lox function or method value: an AST declaration
// plus the environment it closed over at definition time.
type UserFunction struct {
	declaration   *ast.FunctionStmt
	closure       *Environment
	isInitializer bool
}

// NewUserFunction wraps declaration with the environment active at its
// definition site. isInitializer marks the class constructor (init),
// whose return value is always the receiver.
func NewUserFunction(declaration *ast.FunctionStmt, closure *Environment, isInitializer bool) *UserFunction {
	return &UserFunction{declaration: declaration, closure: closure, isInitializer: isInitializer}
}

func (f *UserFunction) Type() string { return "function" }

func (f *UserFunction) String() string {
	return fmt.Sprintf("<fn %s>", f.declaration.Name.Lexeme)
}

func (f *UserFunction) Arity() int {
	return len(f.declaration.Params)
}

// Call runs the function body in a fresh scope enclosed by its closure,
// one binding per parameter, intercepting the non-error ReturnSignal
// (control_flow.go) produced by a `return` statement. An initializer
// ignores any returned value and always yields `this`.
func (f *UserFunction) Call(it *Interpreter, args []Value) (Value, error) {
	env := NewEnclosedEnvironment(f.closure)
	for i, param := range f.declaration.Params {
		env.Define(param.Lexeme, args[i])
	}

	result, err := it.executeBlock(f.declaration.Body, env)
	if err != nil {
		var ret *ReturnSignal
		if asReturnSignal(err, &ret) {
			if f.isInitializer {
				v, _ := f.closure.GetAt(0, "this")
				return v, nil
			}
			return ret.Value, nil
		}
		return nil, err
	}
	_ = result

	if f.isInitializer {
		v, _ := f.closure.GetAt(0, "this")
		return v, nil
	}
	return Nil{}, nil
}

// bind produces a copy of the method bound to instance: a fresh
// environment enclosing the method's original closure with `this`
// defined in it. This keeps the closure chain acyclic: the unbound
// method in the class's method table never itself holds a reference
// to any instance.
func (f *UserFunction) bind(instance *Instance) *UserFunction {
	env := NewEnclosedEnvironment(f.closure)
	env.Define("this", instance)
	return NewUserFunction(f.declaration, env, f.isInitializer)
}
