// Package testutil provides shared helpers for the lookup integration
// and CLI e2e suites, which both load the sample model from the
// repository's fixtures directory.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// RepoRoot returns the absolute path to the repository root, two levels
// above the tests/<suite> working directory of the calling test. It
// fails the test if the working directory cannot be determined.
func RepoRoot(t *testing.T) string {
	t.Helper()
	dir, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(dir, "..", ".."))
}
