package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/skosovsky/okie"
)

var (
	// Global flags
	verbose    bool
	baseURL    string
	workDir    string
	gitRepo    string
	gitBranch  string
	gitDir     string
	groupsFile string
	listGroups bool

	// Logger
	logger *zap.Logger
)

// rootCmd fetches the files named by its arguments
var rootCmd = &cobra.Command{
	Use:   "okie [file|file@tag|+group]...",
	Short: "okie - fetch project scaffolding files",
	Long: `okie downloads scaffolding files from a static tree and writes them
into the current directory, creating parent directories as needed.

Every {{name}} in a file and every $name in a file path is replaced with
the name of the current directory. Append @tag to fetch a variant, and use
+group to fetch a preset list of files.

Example:
  okie Cargo.toml rustfmt.toml .gitignore@rust
  okie +rust LICENSE`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runFetch,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.Flags().StringVar(&baseURL, "base-url", okie.DefaultBaseURL, "Remote root files are resolved under")
	rootCmd.Flags().StringVarP(&workDir, "dir", "C", "", "Write files into dir and take the project name from it (default: current)")
	rootCmd.Flags().StringVar(&gitRepo, "git", "", "Clone this repository and read files from it instead of HTTP")
	rootCmd.Flags().StringVar(&gitBranch, "git-branch", "main", "Branch to clone with --git")
	rootCmd.Flags().StringVar(&gitDir, "git-dir", "static", "Directory in the --git repository that mirrors --base-url")
	rootCmd.Flags().StringVar(&groupsFile, "groups", "", "YAML file with extra groups, merged over the builtin ones")
	rootCmd.Flags().BoolVar(&listGroups, "list-groups", false, "Print the available groups and exit")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		printError(os.Stderr, err)
		os.Exit(1)
	}
}
