package splitter

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"go.uber.org/zap"
)

// writeIndex renders the digest index into a single manifest file inside the
// digest directory, listing every digest sorted by depth, then by relative
// directory. It is a presentation step only; no decisions are made here.
func writeIndex(rootDir, rootName, digestDir string, maxLines, maxDepth int, index []DigestRecord, logger *zap.Logger) error {
	indexName := fmt.Sprintf("digest-%s-index.txt", rootName)
	indexPath := filepath.Join(digestDir, indexName)

	sorted := append([]DigestRecord(nil), index...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Depth != sorted[j].Depth {
			return sorted[i].Depth < sorted[j].Depth
		}
		return sorted[i].RelDir < sorted[j].RelDir
	})

	f, err := os.Create(indexPath)
	if err != nil {
		return fmt.Errorf("failed to create index file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			logger.Error("Failed to close index file", zap.String("path", indexPath), zap.Error(closeErr))
		}
	}()

	w := bufio.NewWriter(f)

	fmt.Fprintf(w, "Digest index for repository: %s\n\n", rootDir)
	fmt.Fprintf(w, "Max lines per digest: %d\n", maxLines)
	fmt.Fprintf(w, "Max recursion depth: %d\n\n", maxDepth)
	fmt.Fprintf(w, "Generated digests:\n\n")

	for _, entry := range sorted {
		splitNote := ""
		if entry.Split {
			splitNote = " (split into subdirs)"
		}
		fmt.Fprintf(w, "- depth=%d  dir=%-30s -> %s  (%d lines)%s\n",
			entry.Depth, entry.RelDir, entry.DigestFile, entry.LineCount, splitNote)
	}

	fmt.Fprintf(w, "\nNote: Each digest file is produced by gitingest for that directory.\n")
	fmt.Fprintf(w, "Directories marked '(split into subdirs)' also have digests for each\n")
	fmt.Fprintf(w, "of their immediate subdirectories, subject to the configured depth.\n")

	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write index file: %w", err)
	}

	logger.Info("Wrote digest index", zap.String("path", indexPath), zap.Int("digestCount", len(sorted)))
	return nil
}
