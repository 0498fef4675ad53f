package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"tiny/interpreter-go/pkg/driver"
	"tiny/interpreter-go/pkg/interpreter"
)

func newTestCommand(app *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "test [dir]",
		Short: "Run YAML fixture programs and compare their output",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := app.cfg.Fixtures
			if len(args) == 1 {
				dir = args[0]
			}
			return app.runFixtures(dir)
		},
	}
}

func (app *cli) runFixtures(dir string) error {
	fixtures, err := driver.LoadFixtures(dir)
	if err != nil {
		return err
	}
	if len(fixtures) == 0 {
		return fmt.Errorf("no fixtures found in %s", dir)
	}
	app.logger.Info("running fixtures", "dir", dir, "count", len(fixtures))

	failed := 0
	for _, fixture := range fixtures {
		result := interpreter.RunFixture(fixture, app.logger)
		if result.Passed() {
			app.palette.pass.Fprint(app.stdout, "PASS")
			fmt.Fprintf(app.stdout, " %s\n", fixture.Name)
			continue
		}
		failed++
		app.palette.fail.Fprint(app.stdout, "FAIL")
		fmt.Fprintf(app.stdout, " %s (%s)\n", fixture.Name, fixture.Path)
		for _, failure := range result.Failures {
			fmt.Fprintf(app.stdout, "    %s\n", failure)
		}
	}
	fmt.Fprintf(app.stdout, "%d passed, %d failed\n", len(fixtures)-failed, failed)
	if failed > 0 {
		return errReported
	}
	return nil
}
