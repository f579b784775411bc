package splitter

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"path"
	"path/filepath"

	"go.uber.org/zap"
)

// digestRun carries the state shared across one run's recursion. The digest
// index grows strictly sequentially; there is never more than one ingestion
// in flight.
type digestRun struct {
	cfg       Config
	rootName  string
	digestDir string
	ingestor  Ingestor
	index     []DigestRecord
	logger    *zap.Logger
}

// ingestDir digests dirPath, whose path relative to the run root is relDir.
// It first ingests the directory as a whole; if the result fits within the
// line budget, or the depth budget is spent, that digest is kept. Otherwise
// the whole-directory digest is discarded and the directory is split: one
// digest for its local files only, then a recursive visit of each immediate
// subdirectory.
func (r *digestRun) ingestDir(dirPath, relDir string, depth int) error {
	tmpPath := filepath.Join(r.digestDir, tmpFileName("", r.rootName))
	// No-op once the file is renamed; keeps error paths from leaving
	// transient files behind.
	defer os.Remove(tmpPath)

	r.logger.Info("Analyzing directory as a whole",
		zap.Int("depth", depth),
		zap.String("dir", dirPath))

	if err := r.ingestor.Ingest(dirPath, tmpPath, r.cfg.ExcludePatterns, r.cfg.IncludePatterns); err != nil {
		return err
	}

	totalLines, err := countLines(tmpPath)
	if err != nil {
		return fmt.Errorf("failed to count lines of %s: %w", tmpPath, err)
	}

	// Small enough, or no depth budget left to split with. The threshold is
	// inclusive: a digest of exactly MaxLines lines is kept whole.
	if totalLines <= r.cfg.MaxLines || depth >= r.cfg.MaxDepth {
		finalName := digestFileName(r.rootName, relDir)
		if err := os.Rename(tmpPath, filepath.Join(r.digestDir, finalName)); err != nil {
			return fmt.Errorf("failed to finalize digest %s: %w", finalName, err)
		}

		r.index = append(r.index, DigestRecord{
			RelDir:     relDir,
			DigestFile: finalName,
			LineCount:  totalLines,
			Depth:      depth,
			Split:      false,
		})

		r.logger.Info("Keeping whole-directory digest",
			zap.Int("depth", depth),
			zap.String("dir", dirPath),
			zap.String("digestFile", finalName),
			zap.Int("lineCount", totalLines))
		return nil
	}

	// Too big and allowed to split. The whole-directory digest is discarded;
	// its line count never reaches the index.
	r.logger.Info("Digest exceeds line budget, splitting into subdirectories",
		zap.Int("depth", depth),
		zap.String("dir", dirPath),
		zap.Int("lineCount", totalLines),
		zap.Int("maxLines", r.cfg.MaxLines))

	if err := os.Remove(tmpPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove temporary digest: %w", err)
	}

	childDirs, err := childDirectories(dirPath)
	if err != nil {
		return fmt.Errorf("failed to list subdirectories of %s: %w", dirPath, err)
	}

	// Local-only exclude set: the global patterns, the global patterns
	// re-anchored at this directory, and one "<child>/**" per immediate
	// subdirectory so that no file belonging to a child's digest is counted
	// here as well.
	localExcludes := append([]string(nil), r.cfg.ExcludePatterns...)
	localExcludes = append(localExcludes, LocalPatterns(r.cfg.ExcludePatterns, filepath.Base(dirPath))...)
	for _, child := range childDirs {
		localExcludes = append(localExcludes, child+"/**")
	}

	localTmpPath := filepath.Join(r.digestDir, tmpFileName("local-", r.rootName))
	defer os.Remove(localTmpPath)
	if err := r.ingestor.Ingest(dirPath, localTmpPath, localExcludes, r.cfg.IncludePatterns); err != nil {
		return err
	}

	localLines, err := countLines(localTmpPath)
	if err != nil {
		return fmt.Errorf("failed to count lines of %s: %w", localTmpPath, err)
	}

	// The split decision is not revisited: however large the local-only
	// digest turns out, it is kept as this directory's digest.
	finalName := digestFileName(r.rootName, relDir)
	if err := os.Rename(localTmpPath, filepath.Join(r.digestDir, finalName)); err != nil {
		return fmt.Errorf("failed to finalize digest %s: %w", finalName, err)
	}

	r.index = append(r.index, DigestRecord{
		RelDir:     relDir,
		DigestFile: finalName,
		LineCount:  localLines,
		Depth:      depth,
		Split:      true,
	})

	r.logger.Info("Created local-files digest",
		zap.Int("depth", depth),
		zap.String("dir", dirPath),
		zap.String("digestFile", finalName),
		zap.Int("lineCount", localLines))

	for _, child := range childDirs {
		if dirExcluded(child, r.cfg.ExcludePatterns) {
			r.logger.Info("Skipping excluded directory",
				zap.Int("depth", depth+1),
				zap.String("dir", filepath.Join(dirPath, child)))
			continue
		}

		childRel := child
		if relDir != "." {
			childRel = path.Join(relDir, child)
		}

		if err := r.ingestDir(filepath.Join(dirPath, child), childRel, depth+1); err != nil {
			return err
		}
	}

	return nil
}

// childDirectories returns the names of dirPath's immediate subdirectories,
// sorted by name.
func childDirectories(dirPath string) ([]string, error) {
	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return nil, err
	}

	var dirs []string
	for _, entry := range entries {
		if entry.IsDir() {
			dirs = append(dirs, entry.Name())
		}
	}
	return dirs, nil
}

// tmpFileName generates a uniquely named transient digest filename. The
// random component keeps concurrent manual runs against the same digest
// directory from colliding.
func tmpFileName(kind, rootName string) string {
	buf := make([]byte, 16)
	_, _ = rand.Read(buf)
	return fmt.Sprintf(".tmp-%s%s-%s.txt", kind, rootName, hex.EncodeToString(buf))
}
