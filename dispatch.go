package okie

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Run fetches every identifier concurrently and waits for all of them.
// Results are in input order. No failure cancels a sibling, and fan-out is
// unbounded: one goroutine per identifier. Duplicates are processed as given.
func (s *Scaffolder) Run(ctx context.Context, ids []string) []Result {
	results := make([]Result, len(ids))
	// Plain Group, no WithContext: a failed task must not cancel the others.
	var g errgroup.Group
	for i, id := range ids {
		g.Go(func() error {
			results[i] = s.Fetch(ctx, id)
			return nil
		})
	}
	_ = g.Wait()

	s.logger.Debug("run finished", zap.Int("files", len(ids)), zap.Int("failed", len(Failed(results))))
	return results
}

// Failed returns the results that ended with an error.
func Failed(results []Result) []Result {
	var out []Result
	for _, res := range results {
		if res.Err != nil {
			out = append(out, res)
		}
	}
	return out
}
