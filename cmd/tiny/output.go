package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"tiny/interpreter-go/pkg/driver"
)

type palette struct {
	errorLabel *color.Color
	location   *color.Color
	pass       *color.Color
	fail       *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		errorLabel: color.New(color.FgRed, color.Bold),
		location:   color.New(color.Bold),
		pass:       color.New(color.FgGreen),
		fail:       color.New(color.FgRed),
	}
	for _, c := range []*color.Color{p.errorLabel, p.location, p.pass, p.fail} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// printDiagnostic writes the same text as driver.DescribeDiagnostic with the
// location and kind highlighted.
func (p palette) printDiagnostic(w io.Writer, diag driver.Diagnostic) {
	if loc := diag.LocationString(); loc != "" {
		p.location.Fprint(w, loc)
		fmt.Fprint(w, ": ")
	}
	kind := diag.Kind
	if kind == "" {
		kind = driver.KindError
	}
	p.errorLabel.Fprint(w, kind)
	fmt.Fprintf(w, ": %s\n", strings.TrimSpace(diag.Message))
}
