package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sdkmanager/internal/types"
)

func entryIDs(result normalized) []string {
	ids := make([]string, 0, len(result.entries))
	for _, e := range result.entries {
		ids = append(ids, e.id.String())
	}
	return ids
}

// ---------------------------------------------------------------------------
// classify
// ---------------------------------------------------------------------------

func TestClassifyRejectsNonZip(t *testing.T) {
	_, ok := classify("https://dl.google.com/android/repository/platform-tools_r33.0.3-linux.tar.gz")
	assert.False(t, ok)
}

func TestClassifyUnknownFamily(t *testing.T) {
	_, ok := classify("https://dl.google.com/android/repository/docs-24_r01.zip")
	assert.False(t, ok)
}

func TestClassifyNDKBeforePlatforms(t *testing.T) {
	// "android-ndk-*" must land in the ndk family even though the
	// filename carries the platforms "android-" prefix.
	handler, ok := classify("https://dl.google.com/android/repository/android-ndk-r25b-linux.zip")
	require.True(t, ok)
	assert.Equal(t, types.FamilyNDK, handler.family)
}

func TestClassifyPlatformToolsBeforePlatforms(t *testing.T) {
	handler, ok := classify("https://dl.google.com/android/repository/platform-tools_r33.0.3-linux.zip")
	require.True(t, ok)
	assert.Equal(t, types.FamilyPlatformTools, handler.family)
}

func TestClassifyTable(t *testing.T) {
	cases := map[string]types.Family{
		"build-tools_r30.0.3-linux.zip":          types.FamilyBuildTools,
		"cmake-3.22.1-linux.zip":                 types.FamilyCmake,
		"commandlinetools-linux-9477386_latest.zip": types.FamilyCmdlineTools,
		"cmdline-tools.zip":                      types.FamilyCmdlineTools,
		"emulator-linux_x64-9189900.zip":         types.FamilyEmulator,
		"android_m2repository_r47.zip":           types.FamilyM2Repository,
		"platform-33_r02.zip":                    types.FamilyPlatforms,
		"android-13_r01.zip":                     types.FamilyPlatforms,
		"skiaparser-7478287-linux.zip":           types.FamilySkiaparser,
		"sdk-tools-linux-4333796.zip":            types.FamilyTools,
		"tools_r25.2.5-linux.zip":                types.FamilyTools,
	}
	for name, family := range cases {
		handler, ok := classify("https://dl.google.com/android/repository/" + name)
		require.True(t, ok, name)
		assert.Equal(t, family, handler.family, name)
	}
}

// ---------------------------------------------------------------------------
// per-family normalization
// ---------------------------------------------------------------------------

func TestNormalizeBuildTools(t *testing.T) {
	result := normalizeBuildTools("", map[string]string{"pkg.revision": "30.0.3"})
	assert.Equal(t, []string{"build-tools;30.0.3"}, entryIDs(result))
}

func TestNormalizeBuildToolsSpacesBecomeDashes(t *testing.T) {
	result := normalizeBuildTools("", map[string]string{"pkg.revision": "24.0.0 rc1"})
	assert.Equal(t, []string{"build-tools;24.0.0-rc1"}, entryIDs(result))
}

func TestNormalizeBuildToolsMissingRevision(t *testing.T) {
	result := normalizeBuildTools("", map[string]string{})
	assert.Empty(t, result.entries)
}

func TestNormalizePkgPath(t *testing.T) {
	result := normalizePkgPath("", map[string]string{
		"pkg.path":     "cmake;3.22.1",
		"pkg.revision": "3.22.1",
	})
	assert.Equal(t, []string{"cmake;3.22.1"}, entryIDs(result))
}

func TestNormalizeEmulatorAddsRevisionSpelling(t *testing.T) {
	result := normalizeEmulator("", map[string]string{
		"pkg.path":     "emulator",
		"pkg.revision": "31.3.14",
	})
	assert.Equal(t, []string{"emulator", "emulator;31.3.14"}, entryIDs(result))
}

func TestNormalizeM2Repository(t *testing.T) {
	url := "https://dl.google.com/android/repository/android_m2repository_r047.zip"
	result := normalizeM2Repository(url, nil)
	assert.Equal(t, []string{
		"extras;android;m2repository",
		"extras;android;m2repository;047",
		"extras;android;m2repository;47",
	}, entryIDs(result))
}

func TestNormalizeM2RepositoryNoLeadingZeros(t *testing.T) {
	url := "https://dl.google.com/android/repository/android_m2repository_r47.zip"
	result := normalizeM2Repository(url, nil)
	assert.Equal(t, []string{
		"extras;android;m2repository",
		"extras;android;m2repository;47",
	}, entryIDs(result))
}

func TestNormalizeNDKWithProperties(t *testing.T) {
	url := "https://dl.google.com/android/repository/android-ndk-r25b-linux.zip"
	result := normalizeNDK(url, map[string]string{"pkg.revision": "25.1.8937393"})

	assert.ElementsMatch(t, []string{
		"ndk;25.1.8937393",
		"ndk-bundle;25.1.8937393",
		"ndk;r25b",
		"ndk-bundle;r25b",
	}, entryIDs(result))
	assert.Equal(t, "r25b", result.ndkRelease)
	assert.Equal(t, "25.1.8937393", result.ndkRevision)
}

func TestNormalizeNDKSynthesizesRevision(t *testing.T) {
	// Old ndk zips ship no source.properties; the revision comes from
	// the release tag, with the letter as an ordinal.
	url := "https://dl.google.com/android/repository/android-ndk-r25b-linux.zip"
	result := normalizeNDK(url, map[string]string{})

	require.Len(t, result.entries, 2)
	assert.Equal(t, []string{"ndk;r25b", "ndk-bundle;r25b"}, entryIDs(result))
	assert.Equal(t, []int{25}, result.entries[0].rev.Nums)
	assert.Equal(t, 1, result.entries[0].rev.Letter)
	assert.Empty(t, result.ndkRelease)
}

func TestNormalizeNDKDefaultRevision(t *testing.T) {
	url := "https://dl.google.com/android/repository/android-ndk-r10e-darwin-x86_64.zip"
	result := normalizeNDK(url, map[string]string{})

	require.Len(t, result.entries, 2)
	assert.Equal(t, "ndk;r10e", result.entries[0].id.String())
	assert.Equal(t, []int{1}, result.entries[0].rev.Nums)
}

func TestNormalizePlatforms(t *testing.T) {
	result := normalizePlatforms("", map[string]string{
		"androidversion.apilevel": "33",
		"platform.version":        "13",
		"pkg.revision":            "2",
	})
	require.Equal(t, []string{"platforms;android-33"}, entryIDs(result))
	assert.Equal(t, []int{13, 2}, result.entries[0].rev.Nums)
}

func TestNormalizePlatformsPreviewIneligible(t *testing.T) {
	// Codenamed previews have no numeric platform.version and must
	// never enter the index.
	result := normalizePlatforms("", map[string]string{
		"androidversion.apilevel": "34",
		"platform.version":        "UpsideDownCake",
		"pkg.revision":            "2",
	})
	assert.Empty(t, result.entries)
}

func TestNormalizeTools(t *testing.T) {
	result := normalizeTools("", map[string]string{"pkg.revision": "25.2.5"})
	assert.Equal(t, []string{"tools;25.2.5"}, entryIDs(result))
}
