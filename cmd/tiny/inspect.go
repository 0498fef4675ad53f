package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"tiny/interpreter-go/pkg/ast"
	"tiny/interpreter-go/pkg/lexer"
	"tiny/interpreter-go/pkg/runtime"
)

func newBuiltinsCommand(app *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "builtins",
		Short: "List the builtin functions available to programs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range runtime.Builtins() {
				if _, err := fmt.Fprintln(app.stdout, name); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newTokensCommand(app *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "tokens <source>",
		Short: "Print the token stream of a Tiny program",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			program, err := app.loadProgram(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return writeTokens(app.stdout, program.Tokens)
		},
	}
}

// writeTokens prints one token per line: position, kind, source text and,
// for numbers, the parsed value.
func writeTokens(w io.Writer, tokens []lexer.Token) error {
	for _, tok := range tokens {
		line := fmt.Sprintf("%-7s %-8s %s", tok.Pos(), tok.Kind, tok.Text)
		if tok.Kind == lexer.Number {
			line += fmt.Sprintf(" value=%d", tok.Number)
		}
		if _, err := fmt.Fprintln(w, strings.TrimRight(line, " ")); err != nil {
			return err
		}
	}
	return nil
}

func newASTCommand(app *cli) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "ast <source>",
		Short: "Print the parsed AST of a Tiny program",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			program, err := app.loadProgram(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return writeAST(app.stdout, program.Module, format)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "json", "output format: json, yaml or source")
	return cmd
}

func writeAST(w io.Writer, module *ast.Module, format string) error {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json":
		out, err := json.MarshalIndent(module, "", "  ")
		if err != nil {
			return fmt.Errorf("encode module: %w", err)
		}
		_, err = fmt.Fprintf(w, "%s\n", out)
		return err
	case "yaml":
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(module); err != nil {
			return fmt.Errorf("encode module: %w", err)
		}
		return encoder.Close()
	case "source":
		_, err := fmt.Fprintln(w, ast.Format(module))
		return err
	default:
		return fmt.Errorf("unknown ast format %q (want json, yaml or source)", format)
	}
}
