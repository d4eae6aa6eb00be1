package interp

import (
	"github.com/cwbudde/go-lox/internal/ast"
	"github.com/cwbudde/go-lox/pkg/token"
)

func (it *Interpreter) evaluate(expr ast.Expr) (Value, error) {
	switch e := expr.(type) {
	case *ast.LiteralExpr:
		return literalValue(e.Value), nil

	case *ast.GroupingExpr:
		return it.evaluate(e.Inner)

	case *ast.VariableExpr:
		return it.lookupVariable(e.Name, e.ID())

	case *ast.AssignExpr:
		value, err := it.evaluate(e.Value)
		if err != nil {
			return nil, err
		}
		if distance, ok := it.locals[e.ID()]; ok {
			it.env.AssignAt(distance, e.Name.Lexeme, value)
		} else if err := it.globals.Assign(e.Name.Lexeme, value); err != nil {
			return nil, runtimeErr(e.Name.Line, "Undefined variable '%s'.", e.Name.Lexeme)
		}
		return value, nil

	case *ast.UnaryExpr:
		return it.evalUnary(e)

	case *ast.BinaryExpr:
		return it.evalBinary(e)

	case *ast.LogicalExpr:
		return it.evalLogical(e)

	case *ast.CallExpr:
		return it.evalCall(e)

	case *ast.GetExpr:
		return it.evalGet(e)

	case *ast.SetExpr:
		return it.evalSet(e)

	case *ast.ThisExpr:
		return it.lookupVariable(e.Keyword, e.ID())
	}
	return Nil{}, nil
}

// literalValue converts the decoded literal carried by the AST
// (nil / bool / float64 / string, produced by the lexer and parser)
// into the evaluator's own Value representation.
func literalValue(v interface{}) Value {
	switch vv := v.(type) {
	case nil:
		return Nil{}
	case bool:
		return Boolean(vv)
	case float64:
		return Number(vv)
	case string:
		return String(vv)
	default:
		return Nil{}
	}
}

// lookupVariable reads name either via the resolver's distance (a
// local) or by walking to globals: unresolved names are always looked
// up in the global scope, never via chain fallback.
func (it *Interpreter) lookupVariable(name token.Token, exprID int) (Value, error) {
	if distance, ok := it.locals[exprID]; ok {
		if v, ok := it.env.GetAt(distance, name.Lexeme); ok {
			return v, nil
		}
	} else if v, ok := it.globals.Get(name.Lexeme); ok {
		return v, nil
	}
	return nil, runtimeErr(name.Line, "Undefined variable '%s'.", name.Lexeme)
}

func (it *Interpreter) evalUnary(e *ast.UnaryExpr) (Value, error) {
	right, err := it.evaluate(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Op.Type {
	case token.MINUS:
		n, ok := right.(Number)
		if !ok {
			return nil, runtimeErr(e.Op.Line, "Operand must be a number.")
		}
		return -n, nil
	case token.BANG:
		return Boolean(!IsTruthy(right)), nil
	}
	return Nil{}, nil
}

func (it *Interpreter) evalLogical(e *ast.LogicalExpr) (Value, error) {
	left, err := it.evaluate(e.Left)
	if err != nil {
		return nil, err
	}

	if e.Op.Type == token.OR {
		if IsTruthy(left) {
			return left, nil
		}
	} else {
		if !IsTruthy(left) {
			return left, nil
		}
	}
	return it.evaluate(e.Right)
}

func (it *Interpreter) evalBinary(e *ast.BinaryExpr) (Value, error) {
	left, err := it.evaluate(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := it.evaluate(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Op.Type {
	case token.EQUAL_EQUAL:
		return Boolean(IsEqual(left, right)), nil
	case token.BANG_EQUAL:
		return Boolean(!IsEqual(left, right)), nil

	case token.PLUS:
		// Lox overloads `+` for number addition and string
		// concatenation; any other combination is a runtime error.
		if ln, ok := left.(Number); ok {
			if rn, ok := right.(Number); ok {
				return ln + rn, nil
			}
		}
		if ls, ok := left.(String); ok {
			if rs, ok := right.(String); ok {
				return ls + rs, nil
			}
		}
		return nil, runtimeErr(e.Op.Line, "Operands must be two numbers or two strings.")

	case token.MINUS, token.STAR, token.SLASH,
		token.GREATER, token.GREATER_EQUAL, token.LESS, token.LESS_EQUAL:
		ln, lok := left.(Number)
		rn, rok := right.(Number)
		if !lok || !rok {
			return nil, runtimeErr(e.Op.Line, "Operands must be numbers.")
		}
		switch e.Op.Type {
		case token.MINUS:
			return ln - rn, nil
		case token.STAR:
			return ln * rn, nil
		case token.SLASH:
			return ln / rn, nil
		case token.GREATER:
			return Boolean(ln > rn), nil
		case token.GREATER_EQUAL:
			return Boolean(ln >= rn), nil
		case token.LESS:
			return Boolean(ln < rn), nil
		case token.LESS_EQUAL:
			return Boolean(ln <= rn), nil
		}
	}
	return Nil{}, nil
}

func (it *Interpreter) evalCall(e *ast.CallExpr) (Value, error) {
	callee, err := it.evaluate(e.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]Value, 0, len(e.Args))
	for _, a := range e.Args {
		v, err := it.evaluate(a)
		if err != nil {
			return nil, err
		}
		args = append(args, v)
	}

	callable, ok := callee.(Callable)
	if !ok {
		return nil, runtimeErr(e.Paren.Line, "Can only call functions and classes.")
	}
	if len(args) != callable.Arity() {
		return nil, runtimeErr(e.Paren.Line, "Expected %d arguments but got %d.", callable.Arity(), len(args))
	}
	return callable.Call(it, args)
}

func (it *Interpreter) evalGet(e *ast.GetExpr) (Value, error) {
	obj, err := it.evaluate(e.Object)
	if err != nil {
		return nil, err
	}
	instance, ok := obj.(*Instance)
	if !ok {
		return nil, runtimeErr(e.Name.Line, "Only instances have properties.")
	}
	v, err := instance.Get(e.Name.Lexeme)
	if err != nil {
		return nil, runtimeErr(e.Name.Line, "%s", err.Error())
	}
	return v, nil
}

func (it *Interpreter) evalSet(e *ast.SetExpr) (Value, error) {
	obj, err := it.evaluate(e.Object)
	if err != nil {
		return nil, err
	}
	instance, ok := obj.(*Instance)
	if !ok {
		return nil, runtimeErr(e.Name.Line, "Only instances have fields.")
	}
	value, err := it.evaluate(e.Value)
	if err != nil {
		return nil, err
	}
	instance.Set(e.Name.Lexeme, value)
	return value, nil
}
