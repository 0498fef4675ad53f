package interpreter

import (
	"fmt"

	"tiny/interpreter-go/pkg/ast"
	"tiny/interpreter-go/pkg/runtime"
)

// applyBinaryOperator uses uint64 machine arithmetic: + - * wrap modulo 2^64
// and / truncates.
func applyBinaryOperator(expr *ast.BinaryExpression, lhs, rhs runtime.IntegerValue) (runtime.Value, error) {
	switch expr.Operator {
	case ast.OperatorPlus:
		return runtime.IntegerValue{Val: lhs.Val + rhs.Val}, nil
	case ast.OperatorMinus:
		return runtime.IntegerValue{Val: lhs.Val - rhs.Val}, nil
	case ast.OperatorTimes:
		return runtime.IntegerValue{Val: lhs.Val * rhs.Val}, nil
	case ast.OperatorDivide:
		if rhs.Val == 0 {
			return nil, newRuntimeError(KindArithmeticError, expr, "division by zero")
		}
		return runtime.IntegerValue{Val: lhs.Val / rhs.Val}, nil
	case ast.OperatorEquality:
		return nil, newRuntimeError(KindUnsupportedOperationError, expr, "operator '%s' is not supported", expr.Operator)
	default:
		return nil, fmt.Errorf("unsupported binary operator %q", expr.Operator)
	}
}
