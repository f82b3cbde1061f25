package okie

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
)

// DefaultBaseURL is the root every identifier is resolved under.
const DefaultBaseURL = "https://raw.githubusercontent.com/aslilac/okie/main/static/"

// Context is the read-only data shared by every task of a run.
type Context struct {
	Name string
}

// ContextFromDir derives the Context from the base name of dir.
// Returns ErrNoProjectName for the filesystem root or an empty name.
func ContextFromDir(dir string) (Context, error) {
	name := filepath.Base(filepath.Clean(dir))
	if name == "" || name == "." || name == string(filepath.Separator) || name == ".." {
		return Context{}, fmt.Errorf("%w: %q", ErrNoProjectName, dir)
	}
	return Context{Name: name}, nil
}

// ContextFromWorkingDir derives the Context from the current working directory.
func ContextFromWorkingDir() (Context, error) {
	dir, err := os.Getwd()
	if err != nil {
		return Context{}, fmt.Errorf("%w: %w", ErrNoProjectName, err)
	}
	return ContextFromDir(dir)
}

// Target is a resolved identifier: where it is written and where it comes from.
// Path is relative to the scaffolder root and may still contain PathPlaceholder.
type Target struct {
	Path string
	Tag  string // Empty when the identifier had no @tag suffix
	URL  *url.URL
}

// Stage names a step of the per-identifier pipeline.
type Stage string

// Pipeline stages in execution order.
const (
	StageResolve  Stage = "resolve"
	StageFetch    Stage = "fetch"
	StageTemplate Stage = "template"
	StageWrite    Stage = "write"
)

// Result is the terminal state of one identifier. Err is nil when the file was written.
type Result struct {
	ID   string
	Path string // Final written path; empty on failure
	Err  error
}

// Fetcher downloads the body at u. Implementations must return an error for
// any non-2xx response; the HTTP and Git fetchers live in remote and remote/git.
type Fetcher interface {
	Fetch(ctx context.Context, u *url.URL) ([]byte, error)
}

// Reporter receives every failed Result exactly once.
type Reporter interface {
	Report(res Result)
}

// ReporterFunc adapts a function to Reporter.
type ReporterFunc func(Result)

// Report calls f(res).
func (f ReporterFunc) Report(res Result) { f(res) }

type nopReporter struct{}

func (nopReporter) Report(Result) {}
