package runtime

import (
	"errors"
	"reflect"
	"testing"
)

func TestEnvironmentDeclareAndGet(t *testing.T) {
	env := NewEnvironment()
	if err := env.Declare("x", IntegerValue{Val: 5}); err != nil {
		t.Fatalf("Declare error: %v", err)
	}
	got, err := env.Get("x")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if got != (IntegerValue{Val: 5}) {
		t.Fatalf("unexpected value %#v", got)
	}
	if !env.IsDeclared("x") {
		t.Fatalf("expected x to be declared")
	}
}

func TestEnvironmentRedeclareFails(t *testing.T) {
	env := NewEnvironment()
	if err := env.Declare("x", IntegerValue{Val: 1}); err != nil {
		t.Fatalf("Declare error: %v", err)
	}
	err := env.Declare("x", IntegerValue{Val: 2})
	if !errors.Is(err, ErrRedeclared) {
		t.Fatalf("expected ErrRedeclared, got %v", err)
	}
	got, _ := env.Get("x")
	if got != (IntegerValue{Val: 1}) {
		t.Fatalf("redeclaration must not take effect, got %#v", got)
	}
}

func TestEnvironmentAssign(t *testing.T) {
	env := NewEnvironment()
	if err := env.Assign("y", IntegerValue{Val: 1}); !errors.Is(err, ErrUndefined) {
		t.Fatalf("expected ErrUndefined, got %v", err)
	}
	if env.IsDeclared("y") {
		t.Fatalf("failed assignment must not declare")
	}
	if err := env.Declare("y", IntegerValue{Val: 1}); err != nil {
		t.Fatalf("Declare error: %v", err)
	}
	if err := env.Assign("y", IntegerValue{Val: 9}); err != nil {
		t.Fatalf("Assign error: %v", err)
	}
	got, _ := env.Get("y")
	if got != (IntegerValue{Val: 9}) {
		t.Fatalf("unexpected value %#v", got)
	}
}

func TestEnvironmentBuiltinFallback(t *testing.T) {
	env := NewEnvironment()
	got, err := env.Get("print")
	if err != nil {
		t.Fatalf("Get(print) error: %v", err)
	}
	if got != (BuiltinValue{ID: BuiltinPrint}) {
		t.Fatalf("unexpected builtin %#v", got)
	}
	if env.IsDeclared("print") {
		t.Fatalf("builtins are not local bindings")
	}
	if err := env.Assign("print", IntegerValue{Val: 1}); !errors.Is(err, ErrUndefined) {
		t.Fatalf("assigning an undeclared builtin name should fail, got %v", err)
	}

	if err := env.Declare("print", IntegerValue{Val: 3}); err != nil {
		t.Fatalf("shadowing declare error: %v", err)
	}
	got, _ = env.Get("print")
	if got != (IntegerValue{Val: 3}) {
		t.Fatalf("local binding should shadow builtin, got %#v", got)
	}
	if _, ok := LookupBuiltin("print"); !ok {
		t.Fatalf("shadowing must not alter the registry")
	}
}

func TestEnvironmentUndefined(t *testing.T) {
	env := NewEnvironment()
	_, err := env.Get("missing")
	if !errors.Is(err, ErrUndefined) {
		t.Fatalf("expected ErrUndefined, got %v", err)
	}
}

func TestEnvironmentKeys(t *testing.T) {
	env := NewEnvironment()
	for i, name := range []string{"zeta", "alpha", "mid"} {
		if err := env.Declare(name, IntegerValue{Val: uint64(i)}); err != nil {
			t.Fatalf("Declare(%s) error: %v", name, err)
		}
	}
	if got, want := env.Keys(), []string{"alpha", "mid", "zeta"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Keys mismatch: got %v, want %v", got, want)
	}
}

func TestEnvironmentRejectsNilValues(t *testing.T) {
	env := NewEnvironment()
	if err := env.Declare("x", nil); err == nil {
		t.Fatalf("expected error declaring nil value")
	}
	if err := env.Declare("", IntegerValue{}); err == nil {
		t.Fatalf("expected error declaring empty name")
	}
}
