package runtime

import (
	"fmt"
	"io"
	"sort"
)

// BuiltinID names a host-provided function.
type BuiltinID int

const (
	BuiltinPrint BuiltinID = iota
)

// CallContext carries the host resources a builtin may touch.
type CallContext struct {
	Output io.Writer
}

type builtinFunc func(*CallContext, Value) (Value, error)

type builtin struct {
	name string
	impl builtinFunc
}

// The registry is filled once at init and never written afterwards.
var (
	builtinTable  = map[BuiltinID]builtin{}
	builtinByName = map[string]BuiltinID{}
)

func init() {
	register(BuiltinPrint, "print", printBuiltin)
}

func register(id BuiltinID, name string, impl builtinFunc) {
	builtinTable[id] = builtin{name: name, impl: impl}
	builtinByName[name] = id
}

func (id BuiltinID) String() string {
	if b, ok := builtinTable[id]; ok {
		return b.name
	}
	return fmt.Sprintf("builtin(%d)", int(id))
}

// LookupBuiltin resolves a builtin by its source name.
func LookupBuiltin(name string) (BuiltinValue, bool) {
	id, ok := builtinByName[name]
	if !ok {
		return BuiltinValue{}, false
	}
	return BuiltinValue{ID: id}, true
}

// Builtins returns the registered builtin names in sorted order.
func Builtins() []string {
	names := make([]string, 0, len(builtinByName))
	for name := range builtinByName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Invoke runs a builtin. A nil Value with a nil error means the builtin
// produced no result.
func Invoke(ctx *CallContext, id BuiltinID, arg Value) (Value, error) {
	b, ok := builtinTable[id]
	if !ok {
		return nil, fmt.Errorf("unknown builtin %s", id)
	}
	if ctx == nil {
		ctx = &CallContext{Output: io.Discard}
	}
	return b.impl(ctx, arg)
}

func printBuiltin(ctx *CallContext, arg Value) (Value, error) {
	out := ctx.Output
	if out == nil {
		out = io.Discard
	}
	if _, err := io.WriteString(out, FormatValue(arg)+"\n"); err != nil {
		return nil, fmt.Errorf("print: %w", err)
	}
	return nil, nil
}
