package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"tiny/interpreter-go/pkg/driver"
	"tiny/interpreter-go/pkg/interpreter"
)

func newRunCommand(app *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "run <source>",
		Short: "Load, parse and evaluate a Tiny program",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.runSource(cmd.Context(), args[0])
		},
	}
}

func newCheckCommand(app *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "check <source>",
		Short: "Tokenize and parse a Tiny program without running it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := app.loadProgram(cmd.Context(), args[0]); err != nil {
				return err
			}
			_, err := fmt.Fprintln(app.stdout, "syntax: ok")
			return err
		},
	}
}

func (app *cli) newLoader() *driver.Loader {
	return driver.NewLoader(
		driver.WithStdin(app.stdin),
		driver.WithLoaderLogger(app.logger),
	)
}

// loadProgram loads and parses raw. Syntax errors come back as
// *driver.DiagnosticError.
func (app *cli) loadProgram(ctx context.Context, raw string) (*driver.Program, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	program, err := app.newLoader().Load(ctx, raw)
	if err == nil {
		return program, nil
	}
	path := raw
	if program != nil {
		path = program.Path
	}
	if diag, ok := driver.SyntaxDiagnostic(path, err); ok {
		return nil, &driver.DiagnosticError{Diagnostic: diag}
	}
	return nil, err
}

func (app *cli) runSource(ctx context.Context, raw string) error {
	program, err := app.loadProgram(ctx, raw)
	if err != nil {
		return err
	}
	logger := app.logger.With("source", program.Path)
	interp := interpreter.New(
		interpreter.WithOutput(app.stdout),
		interpreter.WithLogger(logger),
	)
	if err := interp.EvaluateProgram(program); err != nil {
		diag := interpreter.BuildDiagnostic(program.Path, err)
		logger.Debug("run failed", "kind", diag.Kind)
		return &driver.DiagnosticError{Diagnostic: diag}
	}
	logger.Debug("run finished", "bindings", len(interp.Environment().Keys()))
	return nil
}
