package splitter

import (
	"errors"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewCLIIngestorDefaultsBinary(t *testing.T) {
	g := NewCLIIngestor(Config{}, zap.NewNop())
	assert.Equal(t, "gitingest", g.Bin)

	g = NewCLIIngestor(Config{GitingestBin: "/opt/bin/gitingest"}, zap.NewNop())
	assert.Equal(t, "/opt/bin/gitingest", g.Bin)
}

func TestBuildArgs(t *testing.T) {
	tests := []struct {
		name     string
		ingestor CLIIngestor
		excludes []string
		includes []string
		want     []string
	}{
		{
			name:     "minimal",
			ingestor: CLIIngestor{Bin: "gitingest"},
			want:     []string{"/repo", "-o", "/out/digest.txt"},
		},
		{
			name:     "patterns",
			ingestor: CLIIngestor{Bin: "gitingest"},
			excludes: []string{"node_modules", "dist/**"},
			includes: []string{"*.go"},
			want: []string{
				"/repo", "-o", "/out/digest.txt",
				"-e", "node_modules", "-e", "dist/**",
				"-i", "*.go",
			},
		},
		{
			name:     "size cap and branch",
			ingestor: CLIIngestor{Bin: "gitingest", MaxFileSize: 1048576, Branch: "main"},
			want: []string{
				"/repo", "-o", "/out/digest.txt",
				"-s", "1048576",
				"-b", "main",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.ingestor.buildArgs("/repo", "/out/digest.txt", tt.excludes, tt.includes)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIngestReportsMissingBinary(t *testing.T) {
	g := &CLIIngestor{Bin: "gitdigest-test-no-such-binary", logger: zap.NewNop()}

	err := g.Ingest(t.TempDir(), filepath.Join(t.TempDir(), "out.txt"), nil, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, exec.ErrNotFound))
	assert.Contains(t, err.Error(), "not found")
	assert.Contains(t, err.Error(), "pip install gitingest")
}

func TestIngestReportsMissingBinaryPath(t *testing.T) {
	g := &CLIIngestor{Bin: filepath.Join(t.TempDir(), "gitingest"), logger: zap.NewNop()}

	err := g.Ingest(t.TempDir(), filepath.Join(t.TempDir(), "out.txt"), nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
