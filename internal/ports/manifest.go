package ports

import (
	"context"

	"sdkmanager/internal/types"
)

type ManifestSourcePort interface {
	// Load returns the artifact manifest and its checksum table,
	// fetching from the network when refresh is set or no usable
	// cached copy exists.
	Load(ctx context.Context, refresh bool) (types.Manifest, types.Checksums, error)
}
