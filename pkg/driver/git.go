package driver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/storage/memory"
)

// readGitSource resolves ref.Rev in the repository at ref.URL and returns the
// contents of ref.Path at that commit. Local repositories are opened in place;
// anything else is cloned into memory.
func readGitSource(ctx context.Context, ref SourceRef, logger *slog.Logger) (string, error) {
	repo, err := openGitRepository(ctx, ref.URL)
	if err != nil {
		return "", err
	}

	revision := plumbing.Revision("HEAD")
	if rev := strings.TrimSpace(ref.Rev); rev != "" {
		revision = plumbing.Revision(rev)
	}
	hash, err := repo.ResolveRevision(revision)
	if err != nil {
		return "", fmt.Errorf("driver: resolve revision %s: %w", revision, err)
	}
	commit, err := repo.CommitObject(*hash)
	if err != nil {
		return "", fmt.Errorf("driver: load commit %s: %w", hash, err)
	}
	file, err := commit.File(ref.Path)
	if err != nil {
		if errors.Is(err, object.ErrFileNotFound) {
			return "", fmt.Errorf("driver: %s not found at %s", ref.Path, hash)
		}
		return "", fmt.Errorf("driver: read %s at %s: %w", ref.Path, hash, err)
	}
	contents, err := file.Contents()
	if err != nil {
		return "", fmt.Errorf("driver: read %s at %s: %w", ref.Path, hash, err)
	}
	logger.Debug("git source resolved", "url", ref.URL, "revision", string(revision), "commit", hash.String(), "path", ref.Path)
	return contents, nil
}

func openGitRepository(ctx context.Context, rawURL string) (*git.Repository, error) {
	if dir, ok := localRepositoryPath(rawURL); ok {
		repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
		if err != nil {
			return nil, fmt.Errorf("driver: open git repository %s: %w", dir, err)
		}
		return repo, nil
	}
	repo, err := git.CloneContext(ctx, memory.NewStorage(), nil, &git.CloneOptions{
		URL:  rawURL,
		Tags: git.AllTags,
	})
	if err != nil {
		return nil, fmt.Errorf("driver: git clone %s: %w", rawURL, err)
	}
	return repo, nil
}

// localRepositoryPath reports whether rawURL names a repository on disk,
// either as a file:// URL or as an existing directory.
func localRepositoryPath(rawURL string) (string, bool) {
	if strings.HasPrefix(rawURL, "file://") {
		parsed, err := url.Parse(rawURL)
		if err != nil || parsed.Path == "" {
			return "", false
		}
		return filepath.FromSlash(parsed.Path), true
	}
	if strings.Contains(rawURL, "://") {
		return "", false
	}
	info, err := os.Stat(rawURL)
	if err != nil || !info.IsDir() {
		return "", false
	}
	return rawURL, true
}
