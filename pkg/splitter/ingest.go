package splitter

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os/exec"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// Ingestor produces a text digest of a source directory into an output file.
// Implementations either create the output file in full or return an error;
// the caller treats any error as fatal to the run.
type Ingestor interface {
	Ingest(source, output string, excludePatterns, includePatterns []string) error
}

// CLIIngestor invokes the gitingest command-line tool for each digest.
// The per-run size cap and branch selector are fixed at construction; the
// pattern sets vary per call because splitting rewrites them.
type CLIIngestor struct {
	Bin         string // Executable name or path.
	MaxFileSize int64  // Passed as -s when greater than zero.
	Branch      string // Passed as -b when set.

	logger *zap.Logger
}

// NewCLIIngestor builds a CLIIngestor from the run configuration.
func NewCLIIngestor(cfg Config, logger *zap.Logger) *CLIIngestor {
	bin := cfg.GitingestBin
	if bin == "" {
		bin = "gitingest"
	}
	return &CLIIngestor{
		Bin:         bin,
		MaxFileSize: cfg.MaxFileSize,
		Branch:      cfg.Branch,
		logger:      logger,
	}
}

// Ingest runs gitingest for source, writing the digest to output. A missing
// executable and a failing run are reported as distinct errors, both fatal.
func (g *CLIIngestor) Ingest(source, output string, excludePatterns, includePatterns []string) error {
	args := g.buildArgs(source, output, excludePatterns, includePatterns)

	g.logger.Debug("Running gitingest",
		zap.String("bin", g.Bin),
		zap.String("source", source),
		zap.String("output", output),
		zap.Int("excludeCount", len(excludePatterns)),
		zap.Int("includeCount", len(includePatterns)))

	cmd := exec.Command(g.Bin, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		// exec.ErrNotFound covers PATH lookup; fs.ErrNotExist covers an
		// explicit path that does not exist.
		if errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%s not found; is it installed and on your PATH? (pip install gitingest): %w", g.Bin, err)
		}
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("%s failed for %s: %w: %s", g.Bin, source, err, msg)
		}
		return fmt.Errorf("%s failed for %s: %w", g.Bin, source, err)
	}

	return nil
}

// buildArgs assembles the gitingest argument list for one invocation.
func (g *CLIIngestor) buildArgs(source, output string, excludePatterns, includePatterns []string) []string {
	args := []string{source, "-o", output}

	if g.MaxFileSize > 0 {
		args = append(args, "-s", strconv.FormatInt(g.MaxFileSize, 10))
	}

	for _, pat := range excludePatterns {
		args = append(args, "-e", pat)
	}
	for _, pat := range includePatterns {
		args = append(args, "-i", pat)
	}

	if g.Branch != "" {
		args = append(args, "-b", g.Branch)
	}

	return args
}
