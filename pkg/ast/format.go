package ast

import (
	"strconv"
	"strings"
)

// Format renders a node back to Tiny source. Binary expressions are fully
// parenthesised so the output re-parses to the same tree regardless of
// precedence.
func Format(node Node) string {
	var b strings.Builder
	writeNode(&b, node)
	return b.String()
}

func writeNode(b *strings.Builder, node Node) {
	switch n := node.(type) {
	case *Module:
		for i, stmt := range n.Body {
			if i > 0 {
				b.WriteByte('\n')
			}
			writeNode(b, stmt)
		}
	case *ExpressionStatement:
		writeNode(b, n.Expression)
		b.WriteByte(';')
	case *Declaration:
		b.WriteString("var ")
		writeNode(b, n.Name)
		b.WriteString(" = ")
		writeNode(b, n.Value)
		b.WriteByte(';')
	case *Assignment:
		writeNode(b, n.Left)
		b.WriteString(" = ")
		writeNode(b, n.Right)
		b.WriteByte(';')
	case *IntegerLiteral:
		b.WriteString(strconv.FormatUint(n.Value, 10))
	case *Identifier:
		b.WriteString(n.Name)
	case *BinaryExpression:
		b.WriteByte('(')
		writeNode(b, n.Left)
		b.WriteByte(' ')
		b.WriteString(string(n.Operator))
		b.WriteByte(' ')
		writeNode(b, n.Right)
		b.WriteByte(')')
	case *FunctionCall:
		writeNode(b, n.Callee)
		b.WriteByte('(')
		writeNode(b, n.Argument)
		b.WriteByte(')')
	case nil:
		b.WriteString("<nil>")
	}
}
