package adapters

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"sdkmanager/internal/ports"
)

// knownLicenses maps each Android license file name to the accepted
// hash lines it must carry. The hashes identify license revisions the
// Android tooling checks for before using a package.
var knownLicenses = map[string]string{
	"android-sdk-license":             "\n8933bad161af4178b1185d1a37fbf41ea5269c55\n\nd56f5187479451eabf01fb78af6dfcb131a6481e\n24333f8a63b6825ea9c5514f83c2829b004d1fee",
	"android-sdk-preview-license":     "\n84831b9409646a918e30573bab4c9c91346d8abd\n",
	"android-sdk-preview-license-old": "79120722343a6f314e0719f863036c702b0e6b2a\n\n84831b9409646a918e30573bab4c9c91346d8abd",
	"intel-android-extra-license":     "\nd975f751698a77b662f1254ddbeed3901e976f5a\n",
}

type LicenseStoreAdapter struct{}

var _ ports.LicenseStorePort = LicenseStoreAdapter{}

func NewLicenseStoreAdapter() LicenseStoreAdapter {
	return LicenseStoreAdapter{}
}

func (LicenseStoreAdapter) WriteAccepted(root string) error {
	licensesDir := filepath.Join(root, "licenses")
	if err := os.MkdirAll(licensesDir, 0o755); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create licenses directory").
			WithCause(err)
	}
	for name, content := range knownLicenses {
		if err := os.WriteFile(filepath.Join(licensesDir, name), []byte(content), 0o644); err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to write license file: " + name).
				WithCause(err)
		}
	}
	return nil
}

func (LicenseStoreAdapter) Accepted(root string) (bool, error) {
	found := map[string]bool{}
	licensesDir := filepath.Join(root, "licenses")
	entries, err := os.ReadDir(licensesDir)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to read licenses directory").
			WithCause(err)
	}
	for _, entry := range entries {
		data, err := os.ReadFile(filepath.Join(licensesDir, entry.Name()))
		if err != nil {
			continue
		}
		for _, line := range strings.Split(strings.TrimSpace(string(data)), "\n") {
			if line != "" {
				found[line] = true
			}
		}
	}
	for _, hash := range KnownLicenseHashes() {
		if !found[hash] {
			return false, nil
		}
	}
	return true, nil
}

// KnownLicenseHashes returns every hash line across the known license
// files.
func KnownLicenseHashes() []string {
	var hashes []string
	for _, content := range knownLicenses {
		for _, line := range strings.Split(strings.TrimSpace(content), "\n") {
			if line != "" {
				hashes = append(hashes, line)
			}
		}
	}
	return hashes
}
