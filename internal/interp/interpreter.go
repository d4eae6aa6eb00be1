// Package interp is the tree-walking evaluator: it consumes a resolved
// statement list and a locals side-table and executes it directly
// against an environment chain, dispatching by a plain type switch per
// node rather than a visitor interface.
package interp

import (
	"fmt"
	"io"
	"os"

	"github.com/cwbudde/go-lox/internal/ast"
	"github.com/cwbudde/go-lox/internal/loxerr"
)

// Interpreter walks a resolved program, executing statements for their
// side effects and evaluating expressions to Values. Construct with
// New, set Locals from the resolver's output, then call Interpret.
type Interpreter struct {
	globals *Environment
	env     *Environment
	locals  map[int]int
	stdout  io.Writer
}

// New creates an Interpreter with a fresh global scope seeded with the
// native builtins.
func New(stdout io.Writer) *Interpreter {
	if stdout == nil {
		stdout = os.Stdout
	}
	globals := NewEnvironment()
	it := &Interpreter{globals: globals, env: globals, locals: map[int]int{}, stdout: stdout}
	it.defineNatives()
	return it
}

// SetLocals installs the resolver's expression-id-to-distance
// side-table. Must be called (even with an empty map) before Interpret.
func (it *Interpreter) SetLocals(locals map[int]int) {
	it.locals = locals
}

// Interpret executes a resolved program, returning the first runtime
// error encountered. Execution stops at the first error.
func (it *Interpreter) Interpret(stmts []ast.Stmt) error {
	for _, stmt := range stmts {
		if err := it.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (it *Interpreter) execute(stmt ast.Stmt) error {
	switch s := stmt.(type) {
	case *ast.ExpressionStmt:
		_, err := it.evaluate(s.Expr)
		return err

	case *ast.PrintStmt:
		v, err := it.evaluate(s.Expr)
		if err != nil {
			return err
		}
		fmt.Fprintln(it.stdout, stringify(v))
		return nil

	case *ast.VarStmt:
		var value Value = Nil{}
		if s.Initializer != nil {
			v, err := it.evaluate(s.Initializer)
			if err != nil {
				return err
			}
			value = v
		}
		it.env.Define(s.Name.Lexeme, value)
		return nil

	case *ast.BlockStmt:
		_, err := it.executeBlock(s.Stmts, NewEnclosedEnvironment(it.env))
		return err

	case *ast.IfStmt:
		cond, err := it.evaluate(s.Condition)
		if err != nil {
			return err
		}
		if IsTruthy(cond) {
			return it.execute(s.Then)
		} else if s.Else != nil {
			return it.execute(s.Else)
		}
		return nil

	case *ast.WhileStmt:
		for {
			cond, err := it.evaluate(s.Condition)
			if err != nil {
				return err
			}
			if !IsTruthy(cond) {
				return nil
			}
			if err := it.execute(s.Body); err != nil {
				return err
			}
		}

	case *ast.FunctionStmt:
		fn := NewUserFunction(s, it.env, false)
		it.env.Define(s.Name.Lexeme, fn)
		return nil

	case *ast.ReturnStmt:
		var value Value = Nil{}
		if s.Value != nil {
			v, err := it.evaluate(s.Value)
			if err != nil {
				return err
			}
			value = v
		}
		return &ReturnSignal{Value: value}

	case *ast.ClassStmt:
		return it.executeClassStmt(s)
	}
	return nil
}

func (it *Interpreter) executeClassStmt(s *ast.ClassStmt) error {
	it.env.Define(s.Name.Lexeme, Nil{})

	methods := make(map[string]*UserFunction, len(s.Methods))
	for _, m := range s.Methods {
		methods[m.Name.Lexeme] = NewUserFunction(m, it.env, m.Name.Lexeme == "init")
	}

	class := NewClass(s.Name.Lexeme, methods)
	return it.env.Assign(s.Name.Lexeme, class)
}

// executeBlock runs stmts against env, always restoring the previous
// environment before returning (including on error or ReturnSignal),
// so a propagating return can't leave the interpreter's current scope
// pointed at a function body that has already exited.
func (it *Interpreter) executeBlock(stmts []ast.Stmt, env *Environment) (Value, error) {
	previous := it.env
	it.env = env
	defer func() { it.env = previous }()

	for _, stmt := range stmts {
		if err := it.execute(stmt); err != nil {
			return nil, err
		}
	}
	return Nil{}, nil
}

// stringify renders a Value the way `print` does.
func stringify(v Value) string {
	if v == nil {
		return "nil"
	}
	return v.String()
}

func (it *Interpreter) defineNatives() {
	it.globals.Define("clock", NewNativeFunction("clock", nativeClock))
}

// runtimeErr builds a loxerr.RuntimeError anchored at the given line.
func runtimeErr(line int, format string, args ...interface{}) error {
	return loxerr.NewRuntimeError(line, format, args...)
}
