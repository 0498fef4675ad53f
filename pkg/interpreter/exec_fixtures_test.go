package interpreter

import (
	"path/filepath"
	"strings"
	"testing"

	"tiny/interpreter-go/pkg/driver"
)

func TestExecFixtures(t *testing.T) {
	root := filepath.Join("..", "..", "testdata", "fixtures")
	fixtures, err := driver.LoadFixtures(root)
	if err != nil {
		t.Fatalf("load fixtures: %v", err)
	}
	if len(fixtures) == 0 {
		t.Fatalf("no fixtures found under %s", root)
	}
	for _, fixture := range fixtures {
		fixture := fixture
		rel, err := filepath.Rel(root, fixture.Path)
		if err != nil {
			t.Fatalf("relative path for %s: %v", fixture.Path, err)
		}
		t.Run(filepath.ToSlash(rel), func(t *testing.T) {
			result := RunFixture(fixture, nil)
			if !result.Passed() {
				t.Fatalf("%s", strings.Join(result.Failures, "; "))
			}
		})
	}
}

func TestRunFixtureReportsMismatches(t *testing.T) {
	fixture := &driver.Fixture{
		Name:   "wrong",
		Source: "print(1);\nx = 2;",
		Expect: driver.FixtureExpectation{Stdout: []string{"2"}},
	}
	result := RunFixture(fixture, nil)
	if result.Passed() {
		t.Fatalf("expected failures")
	}
	if len(result.Failures) != 2 {
		t.Fatalf("expected stdout and error failures, got %v", result.Failures)
	}
	if result.Kind != KindNameError {
		t.Fatalf("unexpected kind %s", result.Kind)
	}

	fixture = &driver.Fixture{
		Name:   "missing error",
		Source: "print(1);",
		Expect: driver.FixtureExpectation{Stdout: []string{"1"}, Error: "TypeError"},
	}
	result = RunFixture(fixture, nil)
	if result.Passed() || !strings.Contains(result.Failures[0], "got no error") {
		t.Fatalf("unexpected failures %v", result.Failures)
	}
}

func TestRunFixtureComparesAST(t *testing.T) {
	fixture := &driver.Fixture{
		Name:   "grouped",
		Source: "var x = 1+2*3;\nprint(x);",
		Expect: driver.FixtureExpectation{
			Stdout: []string{"7"},
			AST:    "var x = (1 + (2 * 3));\nprint(x);",
		},
	}
	if result := RunFixture(fixture, nil); !result.Passed() {
		t.Fatalf("unexpected failures %v", result.Failures)
	}

	fixture.Expect.AST = "var x = ((1 + 2) * 3);\nprint(x);"
	result := RunFixture(fixture, nil)
	if len(result.Failures) != 1 || !strings.HasPrefix(result.Failures[0], "ast mismatch:") {
		t.Fatalf("expected ast mismatch, got %v", result.Failures)
	}

	fixture.Expect.AST = "var x = ;"
	result = RunFixture(fixture, nil)
	if len(result.Failures) != 1 || !strings.HasPrefix(result.Failures[0], "expected ast does not parse") {
		t.Fatalf("expected unparsable ast failure, got %v", result.Failures)
	}
}
