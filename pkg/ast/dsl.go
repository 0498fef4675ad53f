package ast

// Identifier and literal helpers.

func ID(name string) *Identifier {
	return NewIdentifier(name)
}

func Int(value uint64) *IntegerLiteral {
	return NewIntegerLiteral(value)
}

// Expression helpers.

func Bin(operator BinaryOperator, left, right Expression) *BinaryExpression {
	return NewBinaryExpression(operator, left, right)
}

func Add(left, right Expression) *BinaryExpression {
	return Bin(OperatorPlus, left, right)
}

func Sub(left, right Expression) *BinaryExpression {
	return Bin(OperatorMinus, left, right)
}

func Mul(left, right Expression) *BinaryExpression {
	return Bin(OperatorTimes, left, right)
}

func Div(left, right Expression) *BinaryExpression {
	return Bin(OperatorDivide, left, right)
}

func Eq(left, right Expression) *BinaryExpression {
	return Bin(OperatorEquality, left, right)
}

func CallExpr(callee Expression, argument Expression) *FunctionCall {
	return NewFunctionCall(callee, argument)
}

func Call(name string, argument Expression) *FunctionCall {
	return NewFunctionCall(ID(name), argument)
}

// Statement helpers.

func ExprStmt(expr Expression) *ExpressionStatement {
	return NewExpressionStatement(expr)
}

func Decl(name string, value Expression) *Declaration {
	return NewDeclaration(ID(name), value)
}

func Assign(left, right Expression) *Assignment {
	return NewAssignment(left, right)
}

func Mod(body ...Statement) *Module {
	if body == nil {
		body = []Statement{}
	}
	return NewModule(body)
}
