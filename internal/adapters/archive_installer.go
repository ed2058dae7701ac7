package adapters

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"sdkmanager/internal/core"
	"sdkmanager/internal/ports"
)

// installDirs maps a package name to its directory below the SDK root.
// The {revision} placeholder is filled per install.
var installDirs = map[string]string{
	"build-tools":                 "build-tools/{revision}",
	"cmake":                       "cmake/{revision}",
	"cmdline-tools":               "cmdline-tools/{revision}",
	"emulator":                    "emulator",
	"ndk":                         "ndk/{revision}",
	"ndk-bundle":                  "ndk-bundle",
	"platforms":                   "platforms/{revision}",
	"platform-tools":              "platform-tools",
	"skiaparser":                  "skiaparser/{revision}",
	"tools":                       "tools",
	"extras;android;m2repository": "extras/android/m2repository",
}

// noPackageXML lists package families whose layout the Android tooling
// manages itself; generating metadata for them does more harm than
// good.
var noPackageXML = map[string]bool{
	"extras":        true,
	"platforms":     true,
	"sources":       true,
	"system-images": true,
}

const packageXMLTemplate = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<ns2:repository
    xmlns:ns2="http://schemas.android.com/repository/android/common/01"
    xmlns:ns3="http://schemas.android.com/repository/android/generic/01"
    xmlns:ns4="http://schemas.android.com/sdk/android/repo/addon2/01"
    xmlns:ns5="http://schemas.android.com/sdk/android/repo/repository2/01"
    xmlns:ns6="http://schemas.android.com/sdk/android/repo/sys-img2/01">
  <license id="%[1]s" type="text">%[2]s</license>
  <localPackage path="%[3]s">
    <type-details xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance" xsi:type="ns3:genericDetailsType"/>
    <revision>%[4]s</revision>
    <display-name>PLACEHOLDER</display-name>
    <uses-license ref="%[1]s"/>
  </localPackage>
</ns2:repository>`

// ArchiveInstallerAdapter unpacks downloaded archives below the SDK
// root. Extraction goes through a staging directory so a failed or
// hostile archive never leaves partial state in the final location;
// symlinks whose targets resolve outside the staging tree are dropped.
type ArchiveInstallerAdapter struct {
	Root string
}

var _ ports.ArchiveInstallerPort = &ArchiveInstallerAdapter{}

func NewArchiveInstallerAdapter(root string) *ArchiveInstallerAdapter {
	return &ArchiveInstallerAdapter{Root: root}
}

func (a *ArchiveInstallerAdapter) Install(ctx context.Context, req ports.InstallRequest) (ports.InstallResult, error) {
	installDir, err := a.resolveInstallDir(req)
	if err != nil {
		return ports.InstallResult{}, err
	}

	if _, statErr := os.Stat(installDir); statErr == nil {
		log.Ctx(ctx).Info().Str("dir", installDir).Msg("already installed, skipping")
		return ports.InstallResult{Skipped: true, InstallDir: installDir}, nil
	}

	if err := os.MkdirAll(filepath.Dir(installDir), 0o755); err != nil {
		return ports.InstallResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create install parent directory").
			WithCause(err)
	}

	// Staging lives under the SDK root so the final move is a rename
	// on the same filesystem.
	if err := os.MkdirAll(a.Root, 0o755); err != nil {
		return ports.InstallResult{}, stagingWriteError(err)
	}
	staging, err := os.MkdirTemp(a.Root, ".staging-")
	if err != nil {
		return ports.InstallResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create staging directory").
			WithCause(err)
	}
	defer os.RemoveAll(staging)

	toplevels, dropped, err := a.extract(ctx, req.ArchivePath, staging)
	if err != nil {
		return ports.InstallResult{}, err
	}

	if err := moveStaged(staging, installDir, toplevels); err != nil {
		return ports.InstallResult{}, err
	}
	os.Remove(req.ArchivePath)

	if !noPackageXML[req.Identifier.Family()] {
		if err := writePackageXML(installDir, req); err != nil {
			return ports.InstallResult{}, err
		}
	}

	log.Ctx(ctx).Info().Str("dir", installDir).Int("dropped_entries", dropped).Msg("installed")
	return ports.InstallResult{InstallDir: installDir, DroppedEntries: dropped}, nil
}

// resolveInstallDir picks the directory template for a package and
// fills in its revision segment.
func (a *ArchiveInstallerAdapter) resolveInstallDir(req ports.InstallRequest) (string, error) {
	id := req.Identifier
	name := id.Family()
	if name == "extras" && (len(id) == 3 || len(id) == 4) {
		name = strings.Join(id[:3], ";")
	}

	template, ok := installDirs[name]
	if !ok {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("no install location for package: " + id.String())
	}

	dir := template
	if len(id) > 1 {
		revision := id.Version()
		if req.DirRevision != "" {
			revision = req.DirRevision
		}
		dir = strings.ReplaceAll(template, "{revision}", revision)
	}
	return filepath.Join(a.Root, filepath.FromSlash(dir)), nil
}

// extract unpacks the archive into staging and returns the set of
// toplevel names plus the count of dropped entries. A corrupt archive
// is deleted from the cache so the next run re-downloads it.
func (a *ArchiveInstallerAdapter) extract(ctx context.Context, archivePath string, staging string) (map[string]bool, int, error) {
	reader, err := zip.OpenReader(archivePath)
	if err != nil {
		os.Remove(archivePath)
		return nil, 0, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("bad archive: " + filepath.Base(archivePath)).
			WithCause(err)
	}
	defer reader.Close()

	// The staging path itself may traverse symlinks (tmpfs setups);
	// resolve it once so containment checks compare resolved paths.
	resolvedStaging, err := filepath.EvalSymlinks(staging)
	if err != nil {
		return nil, 0, stagingWriteError(err)
	}

	toplevels := map[string]bool{}
	dropped := 0
	for _, file := range reader.File {
		dest, ok := containedPath(staging, file.Name)
		if !ok {
			dropped++
			log.Ctx(ctx).Error().
				Str("entry", file.Name).
				Msg("entry name escapes extraction root, dropping")
			continue
		}
		toplevels[strings.SplitN(filepath.ToSlash(file.Name), "/", 2)[0]] = true

		mode := file.Mode()
		switch {
		case mode&os.ModeSymlink != 0:
			ok, err := extractSymlink(ctx, file, resolvedStaging, dest)
			if err != nil {
				return nil, 0, err
			}
			if !ok {
				dropped++
			}
		case file.FileInfo().IsDir():
			if err := os.MkdirAll(dest, 0o755); err != nil {
				return nil, 0, stagingWriteError(err)
			}
		default:
			perm := os.FileMode(0o644)
			if mode&0o100 != 0 {
				perm = 0o755
			}
			if err := extractFile(file, dest, perm); err != nil {
				return nil, 0, err
			}
		}
	}
	return toplevels, dropped, nil
}

// extractSymlink materializes a symlink entry and then verifies that
// its resolved target stays inside the staging tree. Links that point
// outside, or whose targets cannot be resolved, are removed. Returns
// false when the link was dropped.
func extractSymlink(ctx context.Context, file *zip.File, staging string, dest string) (bool, error) {
	rc, err := file.Open()
	if err != nil {
		return false, stagingWriteError(err)
	}
	target, err := io.ReadAll(rc)
	rc.Close()
	if err != nil {
		return false, stagingWriteError(err)
	}

	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return false, stagingWriteError(err)
	}
	if err := os.Symlink(string(target), dest); err != nil {
		return false, stagingWriteError(err)
	}

	resolved, err := filepath.EvalSymlinks(dest)
	if err == nil {
		if _, inside := containedRel(staging, resolved); inside {
			return true, nil
		}
	}
	os.Remove(dest)
	rel, _ := filepath.Rel(staging, dest)
	log.Ctx(ctx).Error().
		Str("link", rel).
		Str("target", string(target)).
		Msg("unexpected symlink target, dropping")
	return false, nil
}

func extractFile(file *zip.File, dest string, perm os.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return stagingWriteError(err)
	}
	rc, err := file.Open()
	if err != nil {
		return stagingWriteError(err)
	}
	defer rc.Close()

	out, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return stagingWriteError(err)
	}
	if _, err := io.Copy(out, rc); err != nil {
		out.Close()
		return stagingWriteError(err)
	}
	if err := out.Close(); err != nil {
		return stagingWriteError(err)
	}
	// O_CREATE honors umask; force the intended bits.
	return os.Chmod(dest, perm)
}

// moveStaged promotes staged content into the install directory. A
// single toplevel directory is collapsed away so wrapper directories
// inside the archive do not nest the installed layout.
func moveStaged(staging string, installDir string, toplevels map[string]bool) error {
	entries, err := os.ReadDir(staging)
	if err != nil {
		return stagingWriteError(err)
	}

	// Every entry may have been dropped during extraction; the
	// install directory is still created so the package registers as
	// present.
	if len(entries) == 0 {
		if err := os.MkdirAll(installDir, 0o755); err != nil {
			return stagingWriteError(err)
		}
		return nil
	}

	if len(toplevels) == 1 && len(entries) == 1 {
		if err := os.Rename(filepath.Join(staging, entries[0].Name()), installDir); err != nil {
			return stagingWriteError(err)
		}
		return nil
	}

	if err := os.MkdirAll(installDir, 0o755); err != nil {
		return stagingWriteError(err)
	}
	for _, entry := range entries {
		if err := os.Rename(filepath.Join(staging, entry.Name()), filepath.Join(installDir, entry.Name())); err != nil {
			return stagingWriteError(err)
		}
	}
	return nil
}

// writePackageXML records install metadata the Android Gradle plugin
// reads to discover the package.
func writePackageXML(installDir string, req ports.InstallRequest) error {
	family := req.Identifier.Family()

	xmlPath := req.Identifier.String()
	switch family {
	case "emulator", "ndk-bundle", "tools":
		// No version in the metadata path for these.
		xmlPath = family
	case "ndk":
		xmlPath = "ndk;" + req.Ref.Revision.Dotted()
	}

	templates := []string{"<major>%d</major>", "<minor>%d</minor>", "<micro>%d</micro>"}
	revision := ""
	for i, component := range core.TruncatedRevision(req.Ref.Revision) {
		revision += fmt.Sprintf(templates[i], component)
	}

	content := fmt.Sprintf(packageXMLTemplate, "android-sdk-license", androidSDKLicense, xmlPath, revision)
	if err := os.WriteFile(filepath.Join(installDir, "package.xml"), []byte(content), 0o644); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write package metadata").
			WithCause(err)
	}
	return nil
}

// containedPath joins name below root and reports whether the result
// stays inside root.
func containedPath(root string, name string) (string, bool) {
	dest := filepath.Join(root, filepath.FromSlash(name))
	if _, ok := containedRel(root, dest); !ok {
		return "", false
	}
	return dest, true
}

func containedRel(root string, path string) (string, bool) {
	rel, err := filepath.Rel(root, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", false
	}
	return rel, true
}

func stagingWriteError(err error) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeInternal).
		WithMsg("failed to stage archive content").
		WithCause(err)
}
