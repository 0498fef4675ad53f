package ast

type NodeType string

const (
	NodeModule              NodeType = "Module"
	NodeExpressionStatement NodeType = "ExpressionStatement"
	NodeDeclaration         NodeType = "Declaration"
	NodeAssignment          NodeType = "Assignment"
	NodeIntegerLiteral      NodeType = "IntegerLiteral"
	NodeIdentifier          NodeType = "Identifier"
	NodeBinaryExpression    NodeType = "BinaryExpression"
	NodeFunctionCall        NodeType = "FunctionCall"
)

type Node interface {
	NodeType() NodeType
	Span() Span
	isNode()
}

type Position struct {
	Line   int `json:"line" yaml:"line"`
	Column int `json:"column" yaml:"column"`
}

type Span struct {
	Start Position `json:"start" yaml:"start"`
	End   Position `json:"end" yaml:"end"`
}

type nodeImpl struct {
	Type NodeType `json:"type" yaml:"type"`
	span Span
}

func newNodeImpl(kind NodeType) nodeImpl {
	return nodeImpl{Type: kind}
}

func (n nodeImpl) NodeType() NodeType { return n.Type }
func (n nodeImpl) Span() Span         { return n.span }
func (nodeImpl) isNode()              {}
func (n *nodeImpl) setSpan(span Span) { n.span = span }

// Marker interfaces. Both sets are closed: only this package can add variants,
// so a type switch over the constructors below is exhaustive.

type Expression interface {
	Node
	expressionNode()
}

type expressionMarker struct{}

func (expressionMarker) expressionNode() {}

type Statement interface {
	Node
	statementNode()
}

type statementMarker struct{}

func (statementMarker) statementNode() {}

// Module is the root of a parsed program.
type Module struct {
	nodeImpl `yaml:",inline"`

	Body []Statement `json:"body" yaml:"body"`
}

func NewModule(body []Statement) *Module {
	return &Module{nodeImpl: newNodeImpl(NodeModule), Body: body}
}

// Statements

type ExpressionStatement struct {
	nodeImpl        `yaml:",inline"`
	statementMarker `json:"-" yaml:"-"`

	Expression Expression `json:"expression" yaml:"expression"`
}

func NewExpressionStatement(expr Expression) *ExpressionStatement {
	return &ExpressionStatement{nodeImpl: newNodeImpl(NodeExpressionStatement), Expression: expr}
}

type Declaration struct {
	nodeImpl        `yaml:",inline"`
	statementMarker `json:"-" yaml:"-"`

	Name  *Identifier `json:"name" yaml:"name"`
	Value Expression  `json:"value" yaml:"value"`
}

func NewDeclaration(name *Identifier, value Expression) *Declaration {
	return &Declaration{nodeImpl: newNodeImpl(NodeDeclaration), Name: name, Value: value}
}

// Assignment keeps an arbitrary expression on the left; only a bare Identifier
// is a valid target, which the evaluator enforces.
type Assignment struct {
	nodeImpl        `yaml:",inline"`
	statementMarker `json:"-" yaml:"-"`

	Left  Expression `json:"left" yaml:"left"`
	Right Expression `json:"right" yaml:"right"`
}

func NewAssignment(left, right Expression) *Assignment {
	return &Assignment{nodeImpl: newNodeImpl(NodeAssignment), Left: left, Right: right}
}

// Expressions

type IntegerLiteral struct {
	nodeImpl         `yaml:",inline"`
	expressionMarker `json:"-" yaml:"-"`

	Value uint64 `json:"value" yaml:"value"`
}

func NewIntegerLiteral(value uint64) *IntegerLiteral {
	return &IntegerLiteral{nodeImpl: newNodeImpl(NodeIntegerLiteral), Value: value}
}

type Identifier struct {
	nodeImpl         `yaml:",inline"`
	expressionMarker `json:"-" yaml:"-"`

	Name string `json:"name" yaml:"name"`
}

func NewIdentifier(name string) *Identifier {
	return &Identifier{nodeImpl: newNodeImpl(NodeIdentifier), Name: name}
}

type BinaryOperator string

const (
	OperatorPlus     BinaryOperator = "+"
	OperatorMinus    BinaryOperator = "-"
	OperatorTimes    BinaryOperator = "*"
	OperatorDivide   BinaryOperator = "/"
	OperatorEquality BinaryOperator = "=="
)

// Precedence reports the binding strength of the operator; higher binds tighter.
func (op BinaryOperator) Precedence() int {
	switch op {
	case OperatorEquality:
		return 1
	case OperatorPlus, OperatorMinus:
		return 2
	case OperatorTimes, OperatorDivide:
		return 3
	default:
		return 0
	}
}

type BinaryExpression struct {
	nodeImpl         `yaml:",inline"`
	expressionMarker `json:"-" yaml:"-"`

	Operator BinaryOperator `json:"operator" yaml:"operator"`
	Left     Expression     `json:"left" yaml:"left"`
	Right    Expression     `json:"right" yaml:"right"`
}

func NewBinaryExpression(operator BinaryOperator, left, right Expression) *BinaryExpression {
	return &BinaryExpression{nodeImpl: newNodeImpl(NodeBinaryExpression), Operator: operator, Left: left, Right: right}
}

// FunctionCall applies a callee to exactly one argument.
type FunctionCall struct {
	nodeImpl         `yaml:",inline"`
	expressionMarker `json:"-" yaml:"-"`

	Callee   Expression `json:"callee" yaml:"callee"`
	Argument Expression `json:"argument" yaml:"argument"`
}

func NewFunctionCall(callee, argument Expression) *FunctionCall {
	return &FunctionCall{nodeImpl: newNodeImpl(NodeFunctionCall), Callee: callee, Argument: argument}
}
