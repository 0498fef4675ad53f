package runtime

import (
	"fmt"
	"strconv"
)

// Kind identifies the runtime value category.
type Kind int

const (
	KindInteger Kind = iota
	KindBuiltin
)

func (k Kind) String() string {
	switch k {
	case KindInteger:
		return "integer"
	case KindBuiltin:
		return "builtin"
	default:
		return fmt.Sprintf("unknown_kind_%d", int(k))
	}
}

// Value is the shared behaviour for all runtime values. The set is closed.
type Value interface {
	Kind() Kind
	isValue()
}

//-----------------------------------------------------------------------------
// Scalars
//-----------------------------------------------------------------------------

type IntegerValue struct {
	Val uint64
}

func (v IntegerValue) Kind() Kind { return KindInteger }
func (IntegerValue) isValue()     {}

//-----------------------------------------------------------------------------
// Callables
//-----------------------------------------------------------------------------

// BuiltinValue refers to an entry of the builtin registry by identifier.
type BuiltinValue struct {
	ID BuiltinID
}

func (v BuiltinValue) Kind() Kind { return KindBuiltin }
func (BuiltinValue) isValue()     {}

// FormatValue renders a value the way print writes it.
func FormatValue(v Value) string {
	switch val := v.(type) {
	case IntegerValue:
		return strconv.FormatUint(val.Val, 10)
	case BuiltinValue:
		return fmt.Sprintf("<builtin %s>", val.ID)
	case nil:
		return "<none>"
	default:
		return fmt.Sprintf("<%s>", v.Kind())
	}
}
