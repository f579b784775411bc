package splitter

// Config holds the configuration options for one digest run.
// It is read-only for the duration of the run.
type Config struct {
	RootDir         string   // Root directory of the repository to digest.
	OutputDir       string   // Destination for digest files; "" means a "<root>-digest" sibling of the root.
	MaxLines        int      // Maximum lines allowed in a single digest before a directory is split.
	MaxDepth        int      // Maximum recursion depth (relative to root) to split into.
	ExcludePatterns []string // Global exclude glob patterns, passed through to every ingestion.
	IncludePatterns []string // Global include glob patterns.
	MaxFileSize     int64    // Maximum file size to ingest, in bytes; 0 means no limit is passed.
	Branch          string   // Branch to ingest; "" means the checked-out tree.
	GitingestBin    string   // Name or path of the gitingest executable.
}
