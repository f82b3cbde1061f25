package git

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	"github.com/skosovsky/okie"
	"github.com/skosovsky/okie/remote"
)

// Fetcher reads files from a Git repository cloned on first use.
// Implements okie.Fetcher. Call Close to remove the local clone.
var _ okie.Fetcher = (*Fetcher)(nil)

// ErrNotFound indicates the URL maps to no file in the working tree.
var ErrNotFound = errors.New("remote/git: file not found")

// Fetcher holds repo URL, clone options, and local path.
type Fetcher struct {
	repoURL  string
	branch   string
	dir      string
	depth    int
	rawBase  string
	base     *url.URL
	localDir string
	mu       sync.Mutex
	repo     *git.Repository
}

// NewFetcher creates a Fetcher. Repo is cloned on first Fetch. Use Close to cleanup.
// Returns error if repoURL is empty or the base URL is invalid.
func NewFetcher(repoURL string, opts ...Option) (*Fetcher, error) {
	if strings.TrimSpace(repoURL) == "" {
		return nil, fmt.Errorf("remote/git: repo URL must not be empty")
	}
	g := &Fetcher{
		repoURL: repoURL,
		branch:  "main",
		depth:   1,
		rawBase: okie.DefaultBaseURL,
	}
	for _, opt := range opts {
		opt(g)
	}
	if strings.TrimSpace(g.branch) == "" {
		return nil, fmt.Errorf("remote/git: branch must not be empty")
	}
	base, err := okie.ParseBaseURL(g.rawBase)
	if err != nil {
		return nil, err
	}
	g.base = base
	return g, nil
}

// Fetch reads the file u points at from {clone}/{dir}/{u.Path minus base path}.
// URLs outside the base, or paths escaping dir, return ErrNotFound wrapped in remote.ErrFetchFailed.
func (g *Fetcher) Fetch(ctx context.Context, u *url.URL) ([]byte, error) {
	rel, err := g.relPath(u)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", remote.ErrFetchFailed, err)
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if err := g.ensureClone(ctx); err != nil {
		return nil, fmt.Errorf("%w: %w", remote.ErrFetchFailed, err)
	}
	baseDir := filepath.Clean(filepath.Join(g.localDir, g.dir))
	cleanPath := filepath.Clean(filepath.Join(baseDir, filepath.FromSlash(rel)))
	relPath, relErr := filepath.Rel(baseDir, cleanPath)
	if relErr != nil || strings.HasPrefix(relPath, "..") || filepath.IsAbs(relPath) {
		return nil, fmt.Errorf("%w: %w: %s", remote.ErrFetchFailed, ErrNotFound, u)
	}
	data, err := os.ReadFile(cleanPath) // #nosec G304 -- cleanPath is validated via filepath.Rel to prevent path traversal
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %w: %s", remote.ErrFetchFailed, ErrNotFound, u)
		}
		return nil, fmt.Errorf("%w: read %s: %w", remote.ErrFetchFailed, relPath, err)
	}
	return data, nil
}

func (g *Fetcher) relPath(u *url.URL) (string, error) {
	if u == nil {
		return "", errors.New("nil URL")
	}
	if u.Scheme != g.base.Scheme || u.Host != g.base.Host || !strings.HasPrefix(u.Path, g.base.Path) {
		return "", fmt.Errorf("%w: %s is outside %s", ErrNotFound, u, g.base)
	}
	rel := strings.TrimPrefix(u.Path, g.base.Path)
	if rel == "" {
		return "", fmt.Errorf("%w: %s", ErrNotFound, u)
	}
	return rel, nil
}

// ensureClone clones once per Fetcher. A run is one-shot, so there is no pull.
func (g *Fetcher) ensureClone(ctx context.Context) error {
	if g.repo != nil {
		return nil
	}
	dir, err := os.MkdirTemp("", "okie-git-*")
	if err != nil {
		return fmt.Errorf("temp dir: %w", err)
	}
	g.localDir = dir
	cloneOpts := &git.CloneOptions{
		URL:           g.repoURL,
		ReferenceName: plumbing.NewBranchReferenceName(g.branch),
		SingleBranch:  true,
	}
	if g.depth > 0 {
		cloneOpts.Depth = g.depth
	}
	repo, err := git.PlainCloneContext(ctx, dir, false, cloneOpts)
	if err != nil {
		_ = os.RemoveAll(dir)
		g.localDir = ""
		return fmt.Errorf("clone: %w", err)
	}
	g.repo = repo
	return nil
}

// Close removes the local clone directory. Safe to call multiple times.
func (g *Fetcher) Close() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.localDir == "" {
		return nil
	}
	dir := g.localDir
	g.localDir = ""
	g.repo = nil
	return os.RemoveAll(dir)
}
