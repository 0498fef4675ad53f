package interpreter

import (
	"errors"
	"fmt"

	"tiny/interpreter-go/pkg/ast"
	"tiny/interpreter-go/pkg/runtime"
)

func (i *Interpreter) evaluateExpression(node ast.Expression) (runtime.Value, error) {
	switch n := node.(type) {
	case *ast.IntegerLiteral:
		return runtime.IntegerValue{Val: n.Value}, nil
	case *ast.Identifier:
		return i.evaluateIdentifier(n)
	case *ast.BinaryExpression:
		return i.evaluateBinaryExpression(n)
	case *ast.FunctionCall:
		result, err := i.evaluateCall(n)
		if err != nil {
			return nil, err
		}
		if result == nil {
			return nil, newRuntimeError(KindMissingResultError, n, "%s produced no value", describeCallee(n))
		}
		return result, nil
	default:
		return nil, fmt.Errorf("unsupported expression type: %s", n.NodeType())
	}
}

func (i *Interpreter) evaluateIdentifier(id *ast.Identifier) (runtime.Value, error) {
	value, err := i.global.Get(id.Name)
	if err != nil {
		if errors.Is(err, runtime.ErrUndefined) {
			return nil, &RuntimeError{
				Kind:    KindNameError,
				Message: fmt.Sprintf("undefined variable '%s'", id.Name),
				Span:    id.Span(),
				Err:     err,
			}
		}
		return nil, err
	}
	return value, nil
}

func (i *Interpreter) evaluateBinaryExpression(expr *ast.BinaryExpression) (runtime.Value, error) {
	left, err := i.evaluateExpression(expr.Left)
	if err != nil {
		return nil, err
	}
	right, err := i.evaluateExpression(expr.Right)
	if err != nil {
		return nil, err
	}
	lhs, ok := left.(runtime.IntegerValue)
	if !ok {
		return nil, newRuntimeError(KindTypeError, expr.Left, "left operand of '%s' must be an integer, got %s", expr.Operator, left.Kind())
	}
	rhs, ok := right.(runtime.IntegerValue)
	if !ok {
		return nil, newRuntimeError(KindTypeError, expr.Right, "right operand of '%s' must be an integer, got %s", expr.Operator, right.Kind())
	}
	return applyBinaryOperator(expr, lhs, rhs)
}
