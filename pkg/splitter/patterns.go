package splitter

import (
	"strings"

	"gitdigest/pkg/glob"
)

// LocalPatterns derives the exclude patterns that apply inside a directory
// when it is ingested as its own root.
//
// E.g. "datasetcard/*.txt" becomes "*.txt" when dirName is "datasetcard",
// and "**/datasetcard/*.txt" contributes both the original pattern (the "**"
// may still match deeper) and the derived "*.txt".
//
// Patterns whose segments never match dirName or "**", and single-segment
// patterns, contribute nothing. The result preserves input order and may
// contain duplicates; callers treat patterns as idempotent predicates.
func LocalPatterns(excludePatterns []string, dirName string) []string {
	var local []string
	for _, pattern := range excludePatterns {
		parts := strings.Split(pattern, "/")
		for i, part := range parts {
			if (part == dirName || part == "**") && i < len(parts)-1 {
				if part == "**" {
					local = append(local, pattern)
				}
				local = append(local, strings.Join(parts[i+1:], "/"))
			}
		}
	}
	return local
}

// dirExcluded reports whether a directory should be skipped entirely, based
// on its bare name. Exclude patterns are treated as simple globs against the
// name; directory-style patterns ("node_modules/") are honored by retrying
// with a trailing separator.
func dirExcluded(dirName string, excludePatterns []string) bool {
	for _, pattern := range excludePatterns {
		if glob.MatchName(pattern, dirName) || glob.MatchName(pattern, dirName+"/") {
			return true
		}
	}
	return false
}
