package interpreter

import (
	"errors"
	"fmt"

	"tiny/interpreter-go/pkg/ast"
	"tiny/interpreter-go/pkg/runtime"
)

func (i *Interpreter) evaluateStatement(node ast.Statement) error {
	i.logger.Debug("evaluate statement", "node", string(node.NodeType()), "line", node.Span().Start.Line)
	switch n := node.(type) {
	case *ast.ExpressionStatement:
		return i.evaluateExpressionStatement(n)
	case *ast.Declaration:
		return i.evaluateDeclaration(n)
	case *ast.Assignment:
		return i.evaluateAssignment(n)
	default:
		return fmt.Errorf("unsupported statement type: %s", n.NodeType())
	}
}

// A call in statement position may yield no value; any other expression is
// evaluated normally and its value dropped.
func (i *Interpreter) evaluateExpressionStatement(stmt *ast.ExpressionStatement) error {
	if call, ok := stmt.Expression.(*ast.FunctionCall); ok {
		_, err := i.evaluateCall(call)
		return err
	}
	_, err := i.evaluateExpression(stmt.Expression)
	return err
}

func (i *Interpreter) evaluateDeclaration(decl *ast.Declaration) error {
	value, err := i.evaluateExpression(decl.Value)
	if err != nil {
		return err
	}
	if err := i.global.Declare(decl.Name.Name, value); err != nil {
		if errors.Is(err, runtime.ErrRedeclared) {
			return &RuntimeError{
				Kind:    KindNameError,
				Message: fmt.Sprintf("variable '%s' is already declared", decl.Name.Name),
				Span:    decl.Name.Span(),
				Err:     err,
			}
		}
		return err
	}
	return nil
}

func (i *Interpreter) evaluateAssignment(assign *ast.Assignment) error {
	target, ok := assign.Left.(*ast.Identifier)
	if !ok {
		return newRuntimeError(KindTypeError, assign.Left, "cannot assign to %s; assignment target must be a variable name", describeNode(assign.Left))
	}
	if !i.global.IsDeclared(target.Name) {
		return &RuntimeError{
			Kind:    KindNameError,
			Message: fmt.Sprintf("cannot assign to undeclared variable '%s'", target.Name),
			Span:    target.Span(),
			Err:     runtime.ErrUndefined,
		}
	}
	value, err := i.evaluateExpression(assign.Right)
	if err != nil {
		return err
	}
	if err := i.global.Assign(target.Name, value); err != nil {
		return &RuntimeError{Kind: KindNameError, Message: err.Error(), Span: target.Span(), Err: err}
	}
	return nil
}

func describeNode(node ast.Node) string {
	switch n := node.(type) {
	case *ast.IntegerLiteral:
		return "an integer literal"
	case *ast.BinaryExpression:
		return fmt.Sprintf("a '%s' expression", n.Operator)
	case *ast.FunctionCall:
		return "a call expression"
	case *ast.Identifier:
		return fmt.Sprintf("'%s'", n.Name)
	default:
		return string(node.NodeType())
	}
}
