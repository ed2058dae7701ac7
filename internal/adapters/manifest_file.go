package adapters

import (
	"context"
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"sdkmanager/internal/ports"
	"sdkmanager/internal/types"
)

// ManifestFileAdapter loads the manifest from a local checksums file
// instead of the network. Used for air-gapped installs and tests; the
// file is trusted as-is, there is no signature to check.
type ManifestFileAdapter struct {
	Path string
}

var _ ports.ManifestSourcePort = ManifestFileAdapter{}

func NewManifestFileAdapter(path string) ManifestFileAdapter {
	return ManifestFileAdapter{Path: path}
}

func (a ManifestFileAdapter) Load(_ context.Context, _ bool) (types.Manifest, types.Checksums, error) {
	data, err := os.ReadFile(a.Path)
	if err != nil {
		return nil, nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("manifest file not found: " + a.Path).
			WithCause(err)
	}
	return DecodeChecksums(data)
}
