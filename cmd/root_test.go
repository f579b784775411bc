package cmd

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRootCmdRejectsMissingRoot(t *testing.T) {
	rootLogger = zap.NewNop()
	RootCmd.SetArgs([]string{filepath.Join(t.TempDir(), "does-not-exist")})

	err := RootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "root directory does not exist")
}

func TestRootCmdRequiresExactlyOneArg(t *testing.T) {
	rootLogger = zap.NewNop()
	RootCmd.SetArgs([]string{})

	err := RootCmd.Execute()
	assert.Error(t, err)
}
