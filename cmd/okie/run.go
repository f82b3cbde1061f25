package main

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/skosovsky/okie"
	"github.com/skosovsky/okie/group"
	"github.com/skosovsky/okie/internal/options"
	"github.com/skosovsky/okie/remote"
	"github.com/skosovsky/okie/remote/git"
)

// runFetch fetches every identifier. Per-file failures are printed but do not
// fail the command; only setup errors are returned.
func runFetch(cmd *cobra.Command, args []string) error {
	groups, err := loadGroups()
	if err != nil {
		return err
	}
	if listGroups {
		printGroups(cmd.OutOrStdout(), groups)
		return nil
	}
	if len(args) == 0 {
		return cmd.Help()
	}
	files, err := options.Collect(args, groups)
	if err != nil {
		return err
	}

	pctx, err := projectContext()
	if err != nil {
		return err
	}

	fetcher, cleanup, err := buildFetcher()
	if err != nil {
		return err
	}
	defer cleanup()

	s, err := okie.New(fetcher, pctx,
		okie.WithBaseURL(baseURL),
		okie.WithRoot(workDir),
		okie.WithReporter(&stderrReporter{w: cmd.ErrOrStderr()}),
		okie.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	logger.Debug("fetching", zap.Strings("files", files), zap.String("name", pctx.Name))
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	results := s.Run(ctx, files)
	for _, res := range results {
		if res.Err == nil {
			logger.Info("wrote file", zap.String("id", res.ID), zap.String("path", res.Path))
		}
	}
	return nil
}

func projectContext() (okie.Context, error) {
	if workDir == "" {
		return okie.ContextFromWorkingDir()
	}
	abs, err := filepath.Abs(workDir)
	if err != nil {
		return okie.Context{}, fmt.Errorf("%w: %w", okie.ErrNoProjectName, err)
	}
	return okie.ContextFromDir(abs)
}

func loadGroups() (*group.Set, error) {
	groups := group.Builtin()
	if groupsFile == "" {
		return groups, nil
	}
	extra, err := group.ParseFile(groupsFile)
	if err != nil {
		return nil, err
	}
	return groups.Merge(extra), nil
}

// buildFetcher returns the HTTP fetcher, or a Git fetcher when --git is set.
func buildFetcher() (okie.Fetcher, func(), error) {
	if gitRepo == "" {
		return remote.NewHTTPFetcher(), func() {}, nil
	}
	g, err := git.NewFetcher(gitRepo,
		git.WithBranch(gitBranch),
		git.WithDir(gitDir),
		git.WithBase(baseURL),
	)
	if err != nil {
		return nil, nil, err
	}
	return g, func() {
		if err := g.Close(); err != nil {
			logger.Warn("remove clone", zap.Error(err))
		}
	}, nil
}

func printGroups(w io.Writer, groups *group.Set) {
	for _, name := range groups.Names() {
		ids, _ := groups.Lookup(name)
		fmt.Fprintf(w, "%s%s: %s\n", options.GroupPrefix, name, strings.Join(ids, " "))
	}
}
