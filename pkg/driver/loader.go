package driver

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"tiny/interpreter-go/pkg/ast"
	"tiny/interpreter-go/pkg/lexer"
	"tiny/interpreter-go/pkg/parser"
)

// StdinRef selects standard input as the program source.
const StdinRef = "-"

const gitRefPrefix = "git+"

// SourceKind classifies where program text comes from.
type SourceKind int

const (
	SourceFile SourceKind = iota
	SourceStdin
	SourceGit
)

func (k SourceKind) String() string {
	switch k {
	case SourceFile:
		return "file"
	case SourceStdin:
		return "stdin"
	case SourceGit:
		return "git"
	default:
		return fmt.Sprintf("source(%d)", int(k))
	}
}

// SourceRef is a parsed program reference.
type SourceRef struct {
	Kind SourceKind
	// Path is the file path for SourceFile, or the path inside the repository
	// for SourceGit.
	Path string
	// URL and Rev are set for SourceGit only. An empty Rev means HEAD.
	URL string
	Rev string
}

// String renders the reference in the form ParseSourceRef accepts.
func (r SourceRef) String() string {
	switch r.Kind {
	case SourceStdin:
		return StdinRef
	case SourceGit:
		out := gitRefPrefix + r.URL + "#" + r.Path
		if r.Rev != "" {
			out += "@" + r.Rev
		}
		return out
	default:
		return r.Path
	}
}

// DisplayName is the name used in diagnostics.
func (r SourceRef) DisplayName() string {
	switch r.Kind {
	case SourceStdin:
		return "<stdin>"
	case SourceGit:
		return r.String()
	default:
		return r.Path
	}
}

// ParseSourceRef accepts a file path, "-" for stdin, or
// git+<url>#<path>[@<rev>].
func ParseSourceRef(raw string) (SourceRef, error) {
	raw = strings.TrimSpace(raw)
	switch {
	case raw == "":
		return SourceRef{}, fmt.Errorf("driver: empty source reference")
	case raw == StdinRef:
		return SourceRef{Kind: SourceStdin}, nil
	case strings.HasPrefix(raw, gitRefPrefix):
		rest := strings.TrimPrefix(raw, gitRefPrefix)
		hash := strings.LastIndex(rest, "#")
		if hash <= 0 || hash == len(rest)-1 {
			return SourceRef{}, fmt.Errorf("driver: git source %q must have the form git+<url>#<path>[@<rev>]", raw)
		}
		ref := SourceRef{Kind: SourceGit, URL: rest[:hash]}
		fragment := rest[hash+1:]
		if at := strings.LastIndex(fragment, "@"); at >= 0 {
			ref.Rev = strings.TrimSpace(fragment[at+1:])
			fragment = fragment[:at]
			if ref.Rev == "" {
				return SourceRef{}, fmt.Errorf("driver: git source %q has an empty revision", raw)
			}
		}
		ref.Path = strings.TrimPrefix(filepath.ToSlash(strings.TrimSpace(fragment)), "/")
		if ref.Path == "" {
			return SourceRef{}, fmt.Errorf("driver: git source %q is missing a file path", raw)
		}
		return ref, nil
	default:
		return SourceRef{Kind: SourceFile, Path: raw}, nil
	}
}

// Program is a loaded and parsed Tiny program.
type Program struct {
	Ref    SourceRef
	Path   string
	Source string
	Tokens []lexer.Token
	Module *ast.Module
}

// Loader reads program text and runs it through the lexer and parser.
type Loader struct {
	stdin  io.Reader
	logger *slog.Logger
}

// LoaderOption customises a Loader.
type LoaderOption func(*Loader)

// WithStdin overrides the reader used for the "-" source.
func WithStdin(r io.Reader) LoaderOption {
	return func(l *Loader) { l.stdin = r }
}

// WithLoaderLogger attaches a logger.
func WithLoaderLogger(logger *slog.Logger) LoaderOption {
	return func(l *Loader) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// NewLoader constructs a loader reading stdin from os.Stdin by default.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{
		stdin:  os.Stdin,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// ReadSource returns the complete program text for a reference.
func (l *Loader) ReadSource(ctx context.Context, ref SourceRef) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	switch ref.Kind {
	case SourceStdin:
		data, err := io.ReadAll(l.stdin)
		if err != nil {
			return "", fmt.Errorf("driver: read stdin: %w", err)
		}
		return string(data), nil
	case SourceGit:
		return readGitSource(ctx, ref, l.logger)
	default:
		data, err := os.ReadFile(ref.Path)
		if err != nil {
			return "", fmt.Errorf("driver: read %s: %w", ref.Path, err)
		}
		return string(data), nil
	}
}

// Load reads, tokenizes and parses the program named by raw.
// Lexer and parser failures are returned unwrapped so callers can classify them.
func (l *Loader) Load(ctx context.Context, raw string) (*Program, error) {
	ref, err := ParseSourceRef(raw)
	if err != nil {
		return nil, err
	}
	source, err := l.ReadSource(ctx, ref)
	if err != nil {
		return nil, err
	}
	l.logger.Debug("source loaded", "source", ref.DisplayName(), "kind", ref.Kind.String(), "bytes", len(source))
	program, err := ParseProgram(ref.DisplayName(), source)
	if program != nil {
		program.Ref = ref
	}
	return program, err
}

// ParseProgram tokenizes and parses in-memory source. On a syntax error the
// returned program still carries Path and Source.
func ParseProgram(path, source string) (*Program, error) {
	program := &Program{Path: path, Source: source}
	tokens, err := lexer.Tokenize(source)
	if err != nil {
		return program, err
	}
	program.Tokens = tokens
	module, err := parser.ParseTokens(tokens)
	if err != nil {
		return program, err
	}
	program.Module = module
	return program, nil
}
