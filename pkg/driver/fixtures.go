package driver

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// FixtureExpectation is what a fixture run must produce.
type FixtureExpectation struct {
	Stdout []string `yaml:"stdout"`
	// Error is the expected diagnostic kind, e.g. "NameError". Empty means
	// the program must succeed.
	Error string `yaml:"error,omitempty"`
	// AST, when set, is the expected parse of the source written in the
	// fully parenthesised form printed by ast.Format.
	AST string `yaml:"ast,omitempty"`
}

// Fixture is a self-contained program test case stored as YAML.
type Fixture struct {
	Name        string             `yaml:"name"`
	Description string             `yaml:"description,omitempty"`
	Source      string             `yaml:"source"`
	Expect      FixtureExpectation `yaml:"expect"`

	// Path is the manifest file the fixture was read from.
	Path string `yaml:"-"`
}

// LoadFixture reads a single fixture manifest. The name defaults to the
// file name without extension.
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("fixture: read %s: %w", path, err)
	}
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	var fixture Fixture
	if err := decoder.Decode(&fixture); err != nil {
		return nil, fmt.Errorf("fixture: parse %s: %w", path, err)
	}
	if strings.TrimSpace(fixture.Name) == "" {
		fixture.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	if fixture.Source == "" {
		return nil, fmt.Errorf("fixture: %s has no source", path)
	}
	if fixture.Expect.Stdout == nil {
		fixture.Expect.Stdout = []string{}
	}
	fixture.Path = path
	return &fixture, nil
}

// LoadFixtures reads every *.yml / *.yaml fixture under root, sorted by path.
func LoadFixtures(root string) ([]*Fixture, error) {
	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".yml", ".yaml":
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("fixture: walk %s: %w", root, err)
	}
	sort.Strings(paths)
	fixtures := make([]*Fixture, 0, len(paths))
	for _, path := range paths {
		fixture, err := LoadFixture(path)
		if err != nil {
			return nil, err
		}
		fixtures = append(fixtures, fixture)
	}
	return fixtures, nil
}

// SplitOutputLines turns captured output into the line list fixtures compare
// against. A trailing newline does not produce an empty final line.
func SplitOutputLines(output string) []string {
	trimmed := strings.TrimSuffix(output, "\n")
	if trimmed == "" && output == "" {
		return []string{}
	}
	return strings.Split(trimmed, "\n")
}
