// Package interpreter evaluates Tiny modules by walking their AST against a
// single flat environment.
package interpreter

import (
	"io"
	"log/slog"
	"os"

	"tiny/interpreter-go/pkg/ast"
	"tiny/interpreter-go/pkg/parser"
	"tiny/interpreter-go/pkg/runtime"
)

// Interpreter owns one environment for the lifetime of a run. It is not safe
// for concurrent use.
type Interpreter struct {
	global *runtime.Environment
	output io.Writer
	logger *slog.Logger
}

// Option customises an Interpreter.
type Option func(*Interpreter)

// WithOutput sets the sink print writes to. The default is os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(i *Interpreter) {
		if w != nil {
			i.output = w
		}
	}
}

// WithLogger attaches a logger. The default discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(i *Interpreter) {
		if logger != nil {
			i.logger = logger
		}
	}
}

// New returns an interpreter with a fresh environment.
func New(opts ...Option) *Interpreter {
	i := &Interpreter{
		global: runtime.NewEnvironment(),
		output: os.Stdout,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Environment exposes the interpreter's environment for inspection.
func (i *Interpreter) Environment() *runtime.Environment {
	return i.global
}

// EvaluateModule runs every statement in order. The first failure stops the
// run; effects of earlier statements remain.
func (i *Interpreter) EvaluateModule(module *ast.Module) error {
	if module == nil {
		return nil
	}
	for _, stmt := range module.Body {
		if err := i.evaluateStatement(stmt); err != nil {
			return err
		}
	}
	return nil
}

// EvaluateSource tokenizes, parses and evaluates source. Nothing runs when
// the source does not parse.
func (i *Interpreter) EvaluateSource(source string) error {
	module, err := parser.ParseModule(source)
	if err != nil {
		return err
	}
	return i.EvaluateModule(module)
}
