package splitter

import (
	"fmt"
	"path/filepath"
	"strings"
)

// DigestRecord describes one produced digest file. Exactly one record is
// created per directory visited; it is never mutated afterwards.
type DigestRecord struct {
	RelDir     string // Directory path relative to the root; "." for the root itself.
	DigestFile string // Filename of the digest within the digest directory.
	LineCount  int    // Measured line count of the digest as written.
	Depth      int    // Recursion depth at which the digest was produced; root is 0.
	Split      bool   // True when the directory's subdirectories got digests of their own.
}

// digestFileName creates a stable digest filename from the root name and a
// relative directory.
//
// Examples:
//
//	rootName="my-repo", relDir="."       -> "digest-my-repo.txt"
//	rootName="my-repo", relDir="foo/bar" -> "digest-my-repo-foo-bar.txt"
func digestFileName(rootName, relDir string) string {
	if relDir == "." || relDir == "" {
		return fmt.Sprintf("digest-%s.txt", rootName)
	}

	var parts []string
	for _, part := range strings.Split(filepath.ToSlash(relDir), "/") {
		if part != "" && part != "." {
			parts = append(parts, part)
		}
	}
	return fmt.Sprintf("digest-%s-%s.txt", rootName, strings.Join(parts, "-"))
}
