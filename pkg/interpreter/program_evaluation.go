package interpreter

import (
	"fmt"

	"tiny/interpreter-go/pkg/driver"
)

// EvaluateProgram runs a program produced by driver.Loader.
func (i *Interpreter) EvaluateProgram(program *driver.Program) error {
	if program == nil {
		return fmt.Errorf("interpreter: program is nil")
	}
	if program.Module == nil {
		return fmt.Errorf("interpreter: program %s has no parsed module", program.Path)
	}
	i.logger.Debug("evaluate program", "path", program.Path, "statements", len(program.Module.Body))
	return i.EvaluateModule(program.Module)
}
