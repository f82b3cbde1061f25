package okie

import "go.uber.org/zap"

// Option configures a Scaffolder (functional options pattern).
type Option func(*Scaffolder)

// WithBaseURL sets the remote root identifiers are resolved under.
// Default is DefaultBaseURL. An invalid URL makes New return ErrInvalidBaseURL.
func WithBaseURL(raw string) Option {
	return func(s *Scaffolder) {
		s.rawBase = raw
	}
}

// WithRoot sets the directory files are written below. Default is "" (working directory).
func WithRoot(dir string) Option {
	return func(s *Scaffolder) {
		s.root = dir
	}
}

// WithReporter sets the Reporter that receives failed results. If r is nil, failures are only returned.
func WithReporter(r Reporter) Option {
	return func(s *Scaffolder) {
		if r != nil {
			s.reporter = r
		}
	}
}

// WithLogger sets the logger for stage tracing. Default is zap.NewNop().
func WithLogger(l *zap.Logger) Option {
	return func(s *Scaffolder) {
		if l != nil {
			s.logger = l
		}
	}
}
