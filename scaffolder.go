package okie

import (
	"net/url"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Scaffolder runs the resolve, fetch, template, write pipeline for identifiers.
// It holds only read-only state after New and is safe for concurrent use.
type Scaffolder struct {
	fetcher  Fetcher
	ctx      Context
	rawBase  string
	base     *url.URL
	root     string
	reporter Reporter
	logger   *zap.Logger
	sf       singleflight.Group
}

// New creates a Scaffolder that downloads through fetcher and templates with ctx.
// Panics if fetcher is nil.
func New(fetcher Fetcher, ctx Context, opts ...Option) (*Scaffolder, error) {
	if fetcher == nil {
		panic("okie: Fetcher must not be nil")
	}
	s := &Scaffolder{
		fetcher:  fetcher,
		ctx:      ctx,
		rawBase:  DefaultBaseURL,
		reporter: nopReporter{},
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	base, err := ParseBaseURL(s.rawBase)
	if err != nil {
		return nil, err
	}
	s.base = base
	return s, nil
}

// BaseURL returns a copy of the remote root.
func (s *Scaffolder) BaseURL() *url.URL {
	u := *s.base
	return &u
}

// Context returns the shared template context.
func (s *Scaffolder) Context() Context { return s.ctx }
