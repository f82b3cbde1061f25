package okie

import (
	"context"

	"go.uber.org/zap"
)

// Fetch runs the pipeline for one identifier and returns its terminal Result.
// Failures are returned in Result.Err as *TaskError and passed to the Reporter;
// they never affect other identifiers.
func (s *Scaffolder) Fetch(ctx context.Context, id string) Result {
	path, err := s.fetch(ctx, id)
	res := Result{ID: id, Path: path, Err: err}
	if err != nil {
		s.logger.Debug("file failed", zap.String("id", id), zap.Error(err))
		s.reporter.Report(res)
	}
	return res
}

func (s *Scaffolder) fetch(ctx context.Context, id string) (string, error) {
	target, err := Resolve(s.base, id)
	if err != nil {
		return "", &TaskError{ID: id, Stage: StageResolve, Err: err}
	}
	log := s.logger.With(zap.String("id", id), zap.String("url", target.URL.String()))
	log.Debug("resolved", zap.String("path", target.Path))

	body, err := s.download(ctx, target)
	if err != nil {
		return "", &TaskError{ID: id, Stage: StageFetch, Err: err}
	}
	log.Debug("fetched", zap.Int("bytes", len(body)))

	content := RenderContent(string(body), s.ctx)

	written, err := WriteFile(s.root, target.Path, []byte(content), s.ctx)
	if err != nil {
		return "", &TaskError{ID: id, Stage: StageWrite, Err: err}
	}
	log.Debug("wrote", zap.String("file", written))
	return written, nil
}

// download coalesces concurrent requests for the same URL into one.
// Each caller gets the shared body; nothing is kept after the request ends.
func (s *Scaffolder) download(ctx context.Context, target Target) ([]byte, error) {
	key := target.URL.String()
	v, err, _ := s.sf.Do(key, func() (any, error) {
		return s.fetcher.Fetch(ctx, target.URL)
	})
	if err != nil {
		return nil, err
	}
	return v.([]byte), nil
}
