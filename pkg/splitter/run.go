// Package splitter implements adaptive digest splitting: it drives the
// gitingest CLI recursively over a repository, splitting directories whose
// digest exceeds a line budget into a local-files digest plus one digest per
// subdirectory, down to a bounded depth, and writes an index of the results.
package splitter

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
)

// Run executes one full digest run described by cfg: it validates the root,
// creates the digest directory, digests the tree (splitting adaptively), and
// writes the index manifest. Any ingestion failure aborts the run; no
// partial index is written.
func Run(cfg Config, logger *zap.Logger) error {
	startTime := time.Now()

	rootDir, err := filepath.Abs(cfg.RootDir)
	if err != nil {
		return fmt.Errorf("failed to resolve root directory: %w", err)
	}

	// Validate before creating anything, so a bad root leaves no trace.
	info, err := os.Stat(rootDir)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("root directory does not exist: %s", rootDir)
	}

	rootName := filepath.Base(rootDir)

	digestDir := cfg.OutputDir
	if digestDir == "" {
		digestDir = filepath.Join(filepath.Dir(rootDir), rootName+"-digest")
	}
	digestDir, err = filepath.Abs(digestDir)
	if err != nil {
		return fmt.Errorf("failed to resolve digest directory: %w", err)
	}
	if err := os.MkdirAll(digestDir, 0o755); err != nil {
		return fmt.Errorf("failed to create digest directory: %w", err)
	}

	logger.Info("Starting digest run",
		zap.String("rootDir", rootDir),
		zap.String("digestDir", digestDir),
		zap.Int("maxLines", cfg.MaxLines),
		zap.Int("maxDepth", cfg.MaxDepth),
		zap.Strings("excludePatterns", cfg.ExcludePatterns),
		zap.Strings("includePatterns", cfg.IncludePatterns))

	run := &digestRun{
		cfg:       cfg,
		rootName:  rootName,
		digestDir: digestDir,
		ingestor:  NewCLIIngestor(cfg, logger),
		logger:    logger,
	}

	if err := run.ingestDir(rootDir, ".", 0); err != nil {
		return err
	}

	if err := writeIndex(rootDir, rootName, digestDir, cfg.MaxLines, cfg.MaxDepth, run.index, logger); err != nil {
		return err
	}

	logger.Info("Digest run completed",
		zap.Int("digestCount", len(run.index)),
		zap.Duration("elapsed", time.Since(startTime)))
	return nil
}
