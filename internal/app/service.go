package app

import (
	"os"
	"path/filepath"

	"sdkmanager/internal/adapters"
	"sdkmanager/internal/core"
	"sdkmanager/internal/ports"
)

type Service struct {
	Manifest     ports.ManifestSourcePort
	Fetcher      ports.FetcherPort
	LicenseStore ports.LicenseStorePort
	IndexWriter  ports.IndexCachePort
	IndexBuilder *core.IndexBuilder

	// NewInstaller builds the installer for a given SDK root; the
	// root is only known per request.
	NewInstaller func(root string) ports.ArchiveInstallerPort
}

func NewService(cacheDir string, keyringPath string) Service {
	verifier := adapters.NewGPGVerifierAdapter(keyringPath)
	return Service{
		Manifest:     adapters.NewManifestHTTPAdapter(cacheDir, verifier),
		Fetcher:      adapters.NewFetcherAdapter(cacheDir),
		LicenseStore: adapters.NewLicenseStoreAdapter(),
		IndexWriter:  adapters.NewIndexFileAdapter(),
		IndexBuilder: core.NewIndexBuilder(),
		NewInstaller: func(root string) ports.ArchiveInstallerPort {
			return adapters.NewArchiveInstallerAdapter(root)
		},
	}
}

// DefaultCacheDir is where manifests and downloaded archives live.
func DefaultCacheDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "sdkmanager")
	}
	return filepath.Join(home, ".cache", "sdkmanager")
}
