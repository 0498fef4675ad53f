package interpreter

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"tiny/interpreter-go/pkg/driver"
)

func TestEvaluateProgramFromLoader(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.tiny")
	if err := os.WriteFile(path, []byte("var x = 6;\nx = x * 7;\nprint(x);\n"), 0o644); err != nil {
		t.Fatalf("write program: %v", err)
	}
	program, err := driver.NewLoader().Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	var out, logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	interp := New(WithOutput(&out), WithLogger(logger))
	if err := interp.EvaluateProgram(program); err != nil {
		t.Fatalf("EvaluateProgram error: %v", err)
	}
	if out.String() != "42\n" {
		t.Fatalf("output = %q", out.String())
	}
	if got := strings.Count(logs.String(), "evaluate statement"); got != 3 {
		t.Fatalf("expected one debug log per statement, got %d:\n%s", got, logs.String())
	}
	if !strings.Contains(logs.String(), "node=Assignment line=2") {
		t.Fatalf("statement logs should carry node type and line:\n%s", logs.String())
	}
}

func TestEvaluateProgramRejectsIncompletePrograms(t *testing.T) {
	interp := New()
	if err := interp.EvaluateProgram(nil); err == nil {
		t.Fatalf("expected error for nil program")
	}
	program, _ := driver.ParseProgram("bad.tiny", "var = 1;")
	if err := interp.EvaluateProgram(program); err == nil {
		t.Fatalf("expected error for program without module")
	}
}

func TestEvaluateModuleNil(t *testing.T) {
	if err := New().EvaluateModule(nil); err != nil {
		t.Fatalf("nil module should be a no-op, got %v", err)
	}
}
