package e2e

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"sdkmanager/tests/testutil"
)

func TestIndexCommandE2E(t *testing.T) {
	root := testutil.RepoRoot(t)
	outPath := filepath.Join(t.TempDir(), "packages.yaml")

	cmd := exec.Command("go", "run", "./cmd/sdkmanager", "index",
		"--manifest-file", "fixtures/checksums-sample.json",
		"--output", outPath,
	)
	cmd.Dir = root
	cmd.Env = append(os.Environ(), "GO111MODULE=on")
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, string(out))

	require.FileExists(t, outPath)
}

func TestListCommandE2E(t *testing.T) {
	root := testutil.RepoRoot(t)

	cmd := exec.Command("go", "run", "./cmd/sdkmanager", "list",
		"--manifest-file", "fixtures/checksums-sample.json",
	)
	cmd.Dir = root
	cmd.Env = append(os.Environ(), "GO111MODULE=on")
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, string(out))

	require.Contains(t, string(out), "build-tools;30.0.3")
	require.Contains(t, string(out), "ndk;25.1.8937393")
}
