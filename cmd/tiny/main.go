package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"tiny/interpreter-go/pkg/driver"
)

const cliToolVersion = "0.1.0-dev"

// errReported marks a failure whose details have already been written.
var errReported = errors.New("failure already reported")

// cli carries the I/O streams and settings shared by every subcommand.
type cli struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	configPath string
	logLevel   string
	noColor    bool

	cfg     *driver.Config
	logger  *slog.Logger
	runID   string
	palette palette
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	app := &cli{
		stdin:   stdin,
		stdout:  stdout,
		stderr:  stderr,
		cfg:     driver.DefaultConfig(),
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		palette: newPalette(false),
	}
	root := newRootCommand(app)
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.Execute(); err != nil {
		var diagErr *driver.DiagnosticError
		switch {
		case errors.As(err, &diagErr):
			app.palette.printDiagnostic(stderr, diagErr.Diagnostic)
		case !errors.Is(err, errReported):
			app.palette.errorLabel.Fprint(stderr, "error:")
			fmt.Fprintf(stderr, " %v\n", err)
		}
		return 1
	}
	return 0
}
