package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"sdkmanager/internal/ports"
	"sdkmanager/internal/types"
)

// Install resolves each requested package against the freshly built
// index, downloads its archive, and unpacks it under the SDK root.
// Failures are isolated per package: one bad package does not stop the
// rest of the batch.
func (s Service) Install(ctx context.Context, req InstallRequest) (InstallResult, error) {
	if len(req.Packages) == 0 {
		return InstallResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("no packages specified")
	}
	root := strings.TrimSpace(req.Root)
	if root == "" {
		return InstallResult{}, errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg("SDK root is not set; pass --sdk-root or set ANDROID_HOME")
	}

	index, checksums, err := s.buildIndex(ctx, req.Refresh)
	if err != nil {
		return InstallResult{}, err
	}

	installer := s.NewInstaller(root)
	result := InstallResult{}
	for _, pkg := range req.Packages {
		outcome := s.installOne(ctx, installer, index, checksums, pkg)
		if outcome.Err != nil {
			result.Failed++
			log.Ctx(ctx).Error().Err(outcome.Err).Str("package", pkg).Msg("install failed")
		}
		result.Outcomes = append(result.Outcomes, outcome)
	}
	return result, nil
}

func (s Service) installOne(ctx context.Context, installer ports.ArchiveInstallerPort, index types.PackageIndex, checksums types.Checksums, pkg string) PackageOutcome {
	outcome := PackageOutcome{Package: pkg}

	id := types.ParseIdentifier(pkg)
	ref, ok := index.Lookup(id)
	if !ok {
		msg := fmt.Sprintf("package not found: %q", pkg)
		if suggestion := closestMatch(pkg, index.Names()); suggestion != "" {
			msg += fmt.Sprintf("; did you mean %q?", suggestion)
		}
		outcome.Err = errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(msg)
		return outcome
	}

	archive, err := s.Fetcher.EnsureArtifact(ctx, ref.URL, checksums[ref.URL])
	if err != nil {
		outcome.Err = err
		return outcome
	}

	installed, err := installer.Install(ctx, ports.InstallRequest{
		Identifier:  id,
		Ref:         ref,
		ArchivePath: archive,
		DirRevision: ndkDirRevision(index, id),
	})
	if err != nil {
		outcome.Err = err
		return outcome
	}
	outcome.InstallDir = installed.InstallDir
	outcome.Skipped = installed.Skipped
	return outcome
}

// ndkDirRevision maps an ndk release tag to the dotted revision its
// install directory is named after. Identifiers already carrying a
// dotted revision pass through unchanged.
func ndkDirRevision(index types.PackageIndex, id types.Identifier) string {
	if id.Family() != "ndk" || len(id) < 2 {
		return ""
	}
	if revision, ok := index.NDKReleases[id.Version()]; ok {
		return revision
	}
	return id.Version()
}

func (s Service) buildIndex(ctx context.Context, refresh bool) (types.PackageIndex, types.Checksums, error) {
	manifest, checksums, err := s.Manifest.Load(ctx, refresh)
	if err != nil {
		return types.PackageIndex{}, nil, err
	}
	return s.IndexBuilder.Build(ctx, manifest), checksums, nil
}
