package driver

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"

	"tiny/interpreter-go/pkg/lexer"
	"tiny/interpreter-go/pkg/parser"
)

func writeFile(t *testing.T, path, contents string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(strings.TrimSpace(contents)+"\n"), 0o644); err != nil {
		t.Fatalf("write file %s: %v", path, err)
	}
}

// commitFile writes path inside the repository at dir and commits it,
// returning the new commit hash.
func commitFile(t *testing.T, repo *git.Repository, dir, rel, contents, message string) string {
	t.Helper()
	writeFile(t, filepath.Join(dir, rel), contents)
	worktree, err := repo.Worktree()
	if err != nil {
		t.Fatalf("Worktree: %v", err)
	}
	if _, err := worktree.Add(filepath.ToSlash(rel)); err != nil {
		t.Fatalf("Add %s: %v", rel, err)
	}
	hash, err := worktree.Commit(message, &git.CommitOptions{
		Author: &object.Signature{
			Name:  "Tiny Tests",
			Email: "tiny@example.com",
			When:  time.Now(),
		},
	})
	if err != nil {
		t.Fatalf("Commit: %v", err)
	}
	return hash.String()
}

func TestParseSourceRef(t *testing.T) {
	cases := []struct {
		raw  string
		want SourceRef
	}{
		{"main.tiny", SourceRef{Kind: SourceFile, Path: "main.tiny"}},
		{"-", SourceRef{Kind: SourceStdin}},
		{"git+https://example.com/repo.git#src/main.tiny", SourceRef{Kind: SourceGit, URL: "https://example.com/repo.git", Path: "src/main.tiny"}},
		{"git+https://example.com/repo.git#main.tiny@v1.2.0", SourceRef{Kind: SourceGit, URL: "https://example.com/repo.git", Path: "main.tiny", Rev: "v1.2.0"}},
		{"git+git@example.com:org/repo.git#/main.tiny@abc123", SourceRef{Kind: SourceGit, URL: "git@example.com:org/repo.git", Path: "main.tiny", Rev: "abc123"}},
	}
	for _, tc := range cases {
		t.Run(tc.raw, func(t *testing.T) {
			got, err := ParseSourceRef(tc.raw)
			if err != nil {
				t.Fatalf("ParseSourceRef error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("ParseSourceRef(%q) = %#v, want %#v", tc.raw, got, tc.want)
			}
		})
	}
}

func TestParseSourceRefErrors(t *testing.T) {
	for _, raw := range []string{"", "  ", "git+https://example.com/repo.git", "git+https://example.com/repo.git#", "git+#main.tiny", "git+https://example.com/r#main.tiny@"} {
		if _, err := ParseSourceRef(raw); err == nil {
			t.Fatalf("expected error for %q", raw)
		}
	}
}

func TestSourceRefString(t *testing.T) {
	raw := "git+https://example.com/repo.git#main.tiny@v1"
	ref, err := ParseSourceRef(raw)
	if err != nil {
		t.Fatalf("ParseSourceRef error: %v", err)
	}
	if got := ref.String(); got != raw {
		t.Fatalf("String() = %q, want %q", got, raw)
	}
	if got := (SourceRef{Kind: SourceStdin}).DisplayName(); got != "<stdin>" {
		t.Fatalf("stdin DisplayName = %q", got)
	}
}

func TestLoaderLoadsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.tiny")
	writeFile(t, path, "var x = 5;\nprint(x);")

	program, err := NewLoader().Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if program.Path != path || program.Ref.Kind != SourceFile {
		t.Fatalf("unexpected program metadata %#v", program.Ref)
	}
	if len(program.Module.Body) != 2 {
		t.Fatalf("expected 2 statements, got %d", len(program.Module.Body))
	}
	if len(program.Tokens) != 10 {
		t.Fatalf("expected 10 tokens, got %d", len(program.Tokens))
	}
}

func TestLoaderLoadsStdin(t *testing.T) {
	loader := NewLoader(WithStdin(strings.NewReader("print(1);")))
	program, err := loader.Load(context.Background(), StdinRef)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if program.Path != "<stdin>" || program.Source != "print(1);" {
		t.Fatalf("unexpected program %#v", program)
	}
}

func TestLoaderReturnsSyntaxErrors(t *testing.T) {
	dir := t.TempDir()
	lexPath := filepath.Join(dir, "lex.tiny")
	writeFile(t, lexPath, "var x = 1 # 2;")
	program, err := NewLoader().Load(context.Background(), lexPath)
	var lexErr *lexer.Error
	if !errors.As(err, &lexErr) {
		t.Fatalf("expected lexer error, got %v", err)
	}
	if program == nil || program.Source == "" {
		t.Fatalf("program source should be kept on syntax errors")
	}

	parsePath := filepath.Join(dir, "parse.tiny")
	writeFile(t, parsePath, "var = 1;")
	_, err = NewLoader().Load(context.Background(), parsePath)
	var parseErr *parser.Error
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected parser error, got %v", err)
	}
}

func TestLoaderMissingFile(t *testing.T) {
	_, err := NewLoader().Load(context.Background(), filepath.Join(t.TempDir(), "missing.tiny"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestLoaderHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewLoader(WithStdin(strings.NewReader("print(1);"))).Load(ctx, StdinRef)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestLoaderReadsGitRevisions(t *testing.T) {
	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	if err != nil {
		t.Fatalf("PlainInit: %v", err)
	}
	first := commitFile(t, repo, dir, "src/main.tiny", "print(1);", "first")
	commitFile(t, repo, dir, "src/main.tiny", "print(2);", "second")

	loader := NewLoader()
	head, err := loader.Load(context.Background(), "git+"+dir+"#src/main.tiny")
	if err != nil {
		t.Fatalf("Load HEAD error: %v", err)
	}
	if strings.TrimSpace(head.Source) != "print(2);" {
		t.Fatalf("HEAD source = %q", head.Source)
	}

	old, err := loader.Load(context.Background(), "git+file://"+filepath.ToSlash(dir)+"#src/main.tiny@"+first)
	if err != nil {
		t.Fatalf("Load first revision error: %v", err)
	}
	if strings.TrimSpace(old.Source) != "print(1);" {
		t.Fatalf("first revision source = %q", old.Source)
	}
	if old.Ref.Kind != SourceGit || old.Ref.Rev != first {
		t.Fatalf("unexpected ref %#v", old.Ref)
	}

	if _, err := loader.Load(context.Background(), "git+"+dir+"#missing.tiny"); err == nil || !strings.Contains(err.Error(), "not found") {
		t.Fatalf("expected not found error, got %v", err)
	}
	if _, err := loader.Load(context.Background(), "git+"+dir+"#src/main.tiny@no-such-branch"); err == nil {
		t.Fatalf("expected revision error")
	}
}
