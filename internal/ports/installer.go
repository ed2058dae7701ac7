package ports

import (
	"context"

	"sdkmanager/internal/types"
)

// InstallRequest carries everything the installer needs to place one
// downloaded archive under the SDK root.
type InstallRequest struct {
	Identifier  types.Identifier
	Ref         types.ArtifactRef
	ArchivePath string

	// DirRevision overrides the revision segment of templated install
	// directories, e.g. the dotted ndk revision for a release tag.
	DirRevision string
}

type InstallResult struct {
	// Skipped is set when the target directory already existed and
	// the archive was left untouched.
	Skipped bool

	// InstallDir is the final directory the package lives in.
	InstallDir string

	// DroppedEntries counts archive entries discarded during
	// extraction: symlinks whose targets resolved outside the staging
	// tree, and entries whose names escape it.
	DroppedEntries int
}

type ArchiveInstallerPort interface {
	Install(ctx context.Context, req InstallRequest) (InstallResult, error)
}
