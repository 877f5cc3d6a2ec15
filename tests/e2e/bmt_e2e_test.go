package e2e

import (
	"os"
	"os/exec"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/biolink/biolink-model-toolkit/tests/testutil"
)

func runBMT(t *testing.T, args ...string) string {
	t.Helper()
	root := testutil.RepoRoot(t)

	cmd := exec.Command("go", append([]string{"run", "./cmd/bmt"}, args...)...)
	cmd.Dir = root
	cmd.Env = append(os.Environ(), "GO111MODULE=on")
	out, err := cmd.Output()
	require.NoError(t, err, string(out))
	return string(out)
}

func TestAncestorsCommandE2E(t *testing.T) {
	out := runBMT(t, "ancestors", "gene", "--schema", "fixtures/biolink-model-sample.yaml")

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Equal(t, []string{
		"gene or gene product",
		"macromolecular machine",
		"genomic entity",
		"molecular entity",
		"biological entity",
		"named thing",
	}, lines)
}

func TestClassifyCommandE2E(t *testing.T) {
	out := runBMT(t, "classify", "treats", "--schema", "fixtures/biolink-model-sample.yaml")

	require.Contains(t, out, "is_category:        false")
	require.Contains(t, out, "is_predicate:       true")

	out = runBMT(t, "classify", "causes", "--schema", "fixtures/biolink-model-sample.yaml")
	require.Contains(t, out, "is_canonical_predicate: true")
}

func TestMappingCommandE2E(t *testing.T) {
	out := runBMT(t, "mapping", "RO:0002410", "--schema", "fixtures/biolink-model-sample.yaml")
	require.Equal(t, "causes", strings.TrimSpace(out))
}

func TestModelVersionCommandE2E(t *testing.T) {
	out := runBMT(t, "model-version", "--schema", "fixtures/biolink-model-sample.yaml")
	require.Equal(t, "4.3.7", strings.TrimSpace(out))
}
