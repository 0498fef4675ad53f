package runtime

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

var (
	ErrUndefined  = errors.New("undefined variable")
	ErrRedeclared = errors.New("variable already declared")
	errEmptyName  = errors.New("empty variable name")
	errNilBinding = errors.New("nil value")
)

// Environment holds the program's single flat scope. Builtins are visible
// through Get but live in the read-only registry, not in the binding map.
type Environment struct {
	values map[string]Value
	mu     sync.RWMutex
}

// NewEnvironment creates an empty environment.
func NewEnvironment() *Environment {
	return &Environment{values: make(map[string]Value)}
}

// Declare introduces a new binding. A local binding may shadow a builtin.
func (e *Environment) Declare(name string, value Value) error {
	if name == "" {
		return errEmptyName
	}
	if value == nil {
		return fmt.Errorf("declare '%s': %w", name, errNilBinding)
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if _, ok := e.values[name]; ok {
		return fmt.Errorf("'%s': %w", name, ErrRedeclared)
	}
	e.values[name] = value
	return nil
}

// Assign overwrites an existing binding.
func (e *Environment) Assign(name string, value Value) error {
	if value == nil {
		return fmt.Errorf("assign '%s': %w", name, errNilBinding)
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if _, ok := e.values[name]; !ok {
		return fmt.Errorf("'%s': %w", name, ErrUndefined)
	}
	e.values[name] = value
	return nil
}

// Get retrieves a binding, falling back to the builtin registry.
func (e *Environment) Get(name string) (Value, error) {
	e.mu.RLock()
	v, ok := e.values[name]
	e.mu.RUnlock()
	if ok {
		return v, nil
	}
	if b, ok := LookupBuiltin(name); ok {
		return b, nil
	}
	return nil, fmt.Errorf("'%s': %w", name, ErrUndefined)
}

// IsDeclared reports whether name is bound locally. Builtins do not count.
func (e *Environment) IsDeclared(name string) bool {
	e.mu.RLock()
	_, ok := e.values[name]
	e.mu.RUnlock()
	return ok
}

// Keys returns the bindings in sorted order.
func (e *Environment) Keys() []string {
	e.mu.RLock()
	keys := make([]string, 0, len(e.values))
	for k := range e.values {
		keys = append(keys, k)
	}
	e.mu.RUnlock()
	sort.Strings(keys)
	return keys
}
