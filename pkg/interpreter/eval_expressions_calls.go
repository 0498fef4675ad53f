package interpreter

import (
	"fmt"

	"tiny/interpreter-go/pkg/ast"
	"tiny/interpreter-go/pkg/runtime"
)

// evaluateCall returns a nil value when the builtin produced none; callers in
// expression position turn that into a MissingResultError.
func (i *Interpreter) evaluateCall(call *ast.FunctionCall) (runtime.Value, error) {
	callee, err := i.evaluateExpression(call.Callee)
	if err != nil {
		return nil, err
	}
	fn, ok := callee.(runtime.BuiltinValue)
	if !ok {
		return nil, newRuntimeError(KindTypeError, call.Callee, "%s is not callable (got %s)", describeNode(call.Callee), callee.Kind())
	}
	arg, err := i.evaluateExpression(call.Argument)
	if err != nil {
		return nil, err
	}
	result, err := runtime.Invoke(&runtime.CallContext{Output: i.output}, fn.ID, arg)
	if err != nil {
		return nil, fmt.Errorf("interpreter: call %s: %w", fn.ID, err)
	}
	return result, nil
}

func describeCallee(call *ast.FunctionCall) string {
	if id, ok := call.Callee.(*ast.Identifier); ok {
		return fmt.Sprintf("call to '%s'", id.Name)
	}
	return "call"
}
