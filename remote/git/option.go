package git

// Option configures Fetcher.
type Option func(*Fetcher)

// WithBranch sets the branch to clone (e.g. "main"). Default is "main".
func WithBranch(branch string) Option {
	return func(g *Fetcher) {
		g.branch = branch
	}
}

// WithDir sets the subdirectory within the repo that mirrors the base URL (e.g. "static").
// Default is "" (repo root).
func WithDir(dir string) Option {
	return func(g *Fetcher) {
		g.dir = dir
	}
}

// WithDepth sets the clone depth (number of commits). Default is 1 (shallow clone).
// Use 0 for full clone.
func WithDepth(depth int) Option {
	return func(g *Fetcher) {
		g.depth = depth
	}
}

// WithBase sets the base URL whose path prefix is stripped from fetched URLs.
// Default is okie.DefaultBaseURL; use the same value passed to okie.WithBaseURL.
func WithBase(raw string) Option {
	return func(g *Fetcher) {
		g.rawBase = raw
	}
}
