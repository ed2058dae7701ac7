package adapters

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManifestFileLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "checksums.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleChecksums), 0o644))

	manifest, checksums, err := NewManifestFileAdapter(path).Load(context.Background(), false)
	require.NoError(t, err)
	assert.NotEmpty(t, manifest)
	assert.NotEmpty(t, checksums)
}

func TestManifestFileMissing(t *testing.T) {
	_, _, err := NewManifestFileAdapter(filepath.Join(t.TempDir(), "absent.json")).Load(context.Background(), false)
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))
}
