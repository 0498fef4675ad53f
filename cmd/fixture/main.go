// Command fixture runs a single YAML fixture and prints the outcome as JSON,
// for comparing interpreter builds against each other.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"tiny/interpreter-go/pkg/driver"
	"tiny/interpreter-go/pkg/interpreter"
)

type parityOutput struct {
	Name     string   `json:"name"`
	Stdout   []string `json:"stdout"`
	Error    string   `json:"error,omitempty"`
	Kind     string   `json:"kind,omitempty"`
	Passed   bool     `json:"passed"`
	Failures []string `json:"failures,omitempty"`
}

func main() {
	if err := newCommand(os.Stdout).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newCommand(stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:           "fixture <file.yml>",
		Short:         "Run one fixture and print the result as JSON",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			fixture, err := driver.LoadFixture(args[0])
			if err != nil {
				return err
			}
			return writeJSON(stdout, evaluate(fixture))
		},
	}
}

func evaluate(fixture *driver.Fixture) parityOutput {
	result := interpreter.RunFixture(fixture, nil)
	output := parityOutput{
		Name:     fixture.Name,
		Stdout:   result.Stdout,
		Kind:     string(result.Kind),
		Passed:   result.Passed(),
		Failures: result.Failures,
	}
	if result.Err != nil {
		output.Error = driver.DescribeDiagnostic(interpreter.BuildDiagnostic(fixture.Name, result.Err))
	}
	return output
}

func writeJSON(w io.Writer, output parityOutput) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(output); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}
