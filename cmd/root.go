package cmd

import (
	"fmt"

	"gitdigest/pkg/logging"
	"gitdigest/pkg/splitter"
	"gitdigest/pkg/version"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	digestDir       string
	maxLines        int
	maxDepth        int
	excludePatterns []string
	includePatterns []string
	maxFileSize     int64
	branch          string
	gitingestBin    string
	debug           bool
)

// rootLogger is injected by Execute and replaced when --debug is set.
var rootLogger *zap.Logger

// RootCmd is the base command; running it performs a full digest run.
var RootCmd = &cobra.Command{
	Use:   "gitdigest <root>",
	Short: "Adaptively split gitingest digests by directory size and depth",
	Long: `gitdigest runs the gitingest CLI recursively over a repository,
splitting directories whose digest exceeds a maximum line count into one
digest for their local files plus one digest per subdirectory, down to a
maximum recursion depth. It writes the digest-*.txt files into a digest
directory along with an index file mapping directories to digests.

Requires the gitingest CLI on PATH (pip install gitingest).`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := rootLogger
		if debug {
			if err := logging.Setup(true, "gitdigest", version.Get().Version); err != nil {
				return fmt.Errorf("failed to set up debug logging: %w", err)
			}
			logger = zap.L()
		}

		cfg := splitter.Config{
			RootDir:         args[0],
			OutputDir:       digestDir,
			MaxLines:        maxLines,
			MaxDepth:        maxDepth,
			ExcludePatterns: excludePatterns,
			IncludePatterns: includePatterns,
			MaxFileSize:     maxFileSize,
			Branch:          branch,
			GitingestBin:    gitingestBin,
		}

		return splitter.Run(cfg, logger)
	},
}

func init() {
	RootCmd.Flags().StringVar(&digestDir, "digest-dir", "", "Directory to place all digest files (default: <root>-digest)")
	RootCmd.Flags().IntVar(&maxLines, "max-lines", 20000, "Maximum lines allowed in a single digest before splitting")
	RootCmd.Flags().IntVar(&maxDepth, "max-depth", 1, "Maximum directory depth (relative to root) to split recursively")
	RootCmd.Flags().StringArrayVarP(&excludePatterns, "exclude-pattern", "e", nil, "Pattern to exclude (passed to gitingest -e); repeatable")
	RootCmd.Flags().StringArrayVarP(&includePatterns, "include-pattern", "i", nil, "Pattern to include (passed to gitingest -i); repeatable")
	RootCmd.Flags().Int64VarP(&maxFileSize, "max-size", "s", 0, "Maximum file size to process in bytes (passed to gitingest -s)")
	RootCmd.Flags().StringVarP(&branch, "branch", "b", "", "Branch to ingest (passed to gitingest -b)")
	RootCmd.Flags().StringVar(&gitingestBin, "gitingest-bin", "gitingest", "Name or path of the gitingest executable")
	RootCmd.Flags().BoolVar(&debug, "debug", false, "Enable debug logging")
}

// Execute wires the logger into the command tree and runs it.
func Execute(logger *zap.Logger) error {
	rootLogger = logger
	return RootCmd.Execute()
}
