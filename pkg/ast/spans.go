package ast

import "fmt"

// SetSpan annotates the node with the provided span.
func SetSpan(node Node, span Span) {
	if node == nil {
		return
	}
	if setter, ok := node.(interface{ setSpan(Span) }); ok {
		setter.setSpan(span)
	}
}

// IsZero reports whether the span carries no position information.
func (s Span) IsZero() bool {
	return s == Span{}
}

// Cover returns the smallest span enclosing both a and b. Zero spans are ignored.
func Cover(a, b Span) Span {
	switch {
	case a.IsZero():
		return b
	case b.IsZero():
		return a
	}
	out := a
	if comparePosition(b.Start, out.Start) < 0 {
		out.Start = b.Start
	}
	if comparePosition(b.End, out.End) > 0 {
		out.End = b.End
	}
	return out
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

func comparePosition(a, b Position) int {
	switch {
	case a.Line < b.Line:
		return -1
	case a.Line > b.Line:
		return 1
	case a.Column < b.Column:
		return -1
	case a.Column > b.Column:
		return 1
	default:
		return 0
	}
}

// CopySpans traverses src and applies its span metadata to the corresponding
// nodes in dst. Mismatched shapes stop the walk for that subtree.
func CopySpans(dst, src Node) {
	if isNilNode(dst) || isNilNode(src) {
		return
	}
	if dst.NodeType() != src.NodeType() {
		return
	}
	if span := src.Span(); !span.IsZero() {
		SetSpan(dst, span)
	}
	switch d := dst.(type) {
	case *Module:
		s := src.(*Module)
		for i := 0; i < len(d.Body) && i < len(s.Body); i++ {
			CopySpans(d.Body[i], s.Body[i])
		}
	case *ExpressionStatement:
		CopySpans(d.Expression, src.(*ExpressionStatement).Expression)
	case *Declaration:
		s := src.(*Declaration)
		CopySpans(d.Name, s.Name)
		CopySpans(d.Value, s.Value)
	case *Assignment:
		s := src.(*Assignment)
		CopySpans(d.Left, s.Left)
		CopySpans(d.Right, s.Right)
	case *BinaryExpression:
		s := src.(*BinaryExpression)
		CopySpans(d.Left, s.Left)
		CopySpans(d.Right, s.Right)
	case *FunctionCall:
		s := src.(*FunctionCall)
		CopySpans(d.Callee, s.Callee)
		CopySpans(d.Argument, s.Argument)
	case *IntegerLiteral, *Identifier:
	}
}

// isNilNode catches typed nil pointers stored in a Node interface.
func isNilNode(node Node) bool {
	if node == nil {
		return true
	}
	switch n := node.(type) {
	case *Module:
		return n == nil
	case *ExpressionStatement:
		return n == nil
	case *Declaration:
		return n == nil
	case *Assignment:
		return n == nil
	case *IntegerLiteral:
		return n == nil
	case *Identifier:
		return n == nil
	case *BinaryExpression:
		return n == nil
	case *FunctionCall:
		return n == nil
	}
	return false
}
