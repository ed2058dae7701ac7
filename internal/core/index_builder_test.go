package core

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sdkmanager/internal/types"
)

const repoBase = "https://dl.google.com/android/repository/"

func buildIndex(t *testing.T, manifest types.Manifest) types.PackageIndex {
	t.Helper()
	return NewIndexBuilder().Build(context.Background(), manifest)
}

func TestBuildHighestRevisionWins(t *testing.T) {
	manifest := types.Manifest{
		repoBase + "build-tools_r30.0.2-linux.zip": {{"pkg.revision": "30.0.2"}},
		repoBase + "build-tools_r30.0.3-linux.zip": {{"pkg.revision": "30.0.3"}},
	}
	index := buildIndex(t, manifest)

	ref, ok := index.Lookup(types.ParseIdentifier("build-tools;30.0.3"))
	require.True(t, ok)
	assert.Equal(t, repoBase+"build-tools_r30.0.3-linux.zip", ref.URL)

	ref, ok = index.Lookup(types.ParseIdentifier("build-tools;30.0.2"))
	require.True(t, ok)
	assert.Equal(t, repoBase+"build-tools_r30.0.2-linux.zip", ref.URL)
}

func TestBuildSupersededEntryLoses(t *testing.T) {
	// Two archives claiming the same identifier: the higher revision
	// keeps the slot no matter which URL sorts first.
	manifest := types.Manifest{
		repoBase + "platform-33_r01.zip": {{
			"androidversion.apilevel": "33",
			"platform.version":        "13",
			"pkg.revision":            "1",
		}},
		repoBase + "platform-33_r02.zip": {{
			"androidversion.apilevel": "33",
			"platform.version":        "13",
			"pkg.revision":            "2",
		}},
	}
	index := buildIndex(t, manifest)

	ref, ok := index.Lookup(types.ParseIdentifier("platforms;android-33"))
	require.True(t, ok)
	assert.Equal(t, repoBase+"platform-33_r02.zip", ref.URL)
	assert.Equal(t, []int{13, 2}, ref.Revision.Nums)
}

func TestBuildDeterministic(t *testing.T) {
	manifest := types.Manifest{
		repoBase + "build-tools_r30.0.2-linux.zip": {{"pkg.revision": "30.0.2"}},
		repoBase + "platform-tools_r33.0.3-linux.zip": {{"pkg.revision": "33.0.3"}},
		repoBase + "android-ndk-r25b-linux.zip":    {{"pkg.revision": "25.1.8937393"}},
		repoBase + "commandlinetools-linux-9477386_latest.zip": {{
			"pkg.path":     "cmdline-tools;9.0",
			"pkg.revision": "9.0",
		}},
	}
	first := buildIndex(t, manifest)
	for i := 0; i < 10; i++ {
		if diff := cmp.Diff(first, buildIndex(t, manifest)); diff != "" {
			t.Fatalf("index not deterministic (-first +rebuilt):\n%s", diff)
		}
	}
}

func TestBuildSkipsNonZipAndUnknown(t *testing.T) {
	manifest := types.Manifest{
		repoBase + "platform-tools_r33.0.3-linux.tar.gz": {{"pkg.revision": "33.0.3"}},
		repoBase + "docs-24_r01.zip":                     {{"pkg.revision": "1"}},
		repoBase + "sources-33_r01.zip":                  {{"pkg.revision": "1"}},
	}
	index := buildIndex(t, manifest)
	// Only the synthetic aliases could exist, and with no concrete
	// entries there is nothing to alias.
	assert.Equal(t, 0, index.Len())
}

func TestBuildConsultsEveryPropertyBag(t *testing.T) {
	// A URL may publish a bare checksum record first with the package
	// metadata only in a later record.
	manifest := types.Manifest{
		repoBase + "build-tools_r30.0.3-linux.zip": {
			{},
			{"pkg.revision": "30.0.3"},
		},
	}
	index := buildIndex(t, manifest)

	ref, ok := index.Lookup(types.ParseIdentifier("build-tools;30.0.3"))
	require.True(t, ok)
	assert.Equal(t, repoBase+"build-tools_r30.0.3-linux.zip", ref.URL)
}

func TestBuildNDKUsesFirstRecordOnly(t *testing.T) {
	// NDK archives repeat identical metadata per ABI; only the first
	// record counts.
	manifest := types.Manifest{
		repoBase + "android-ndk-r25b-linux.zip": {
			{"pkg.revision": "25.1.8937393"},
			{"pkg.revision": "99.9.9"},
		},
	}
	index := buildIndex(t, manifest)

	ref, ok := index.Lookup(types.ParseIdentifier("ndk;r25b"))
	require.True(t, ok)
	assert.Equal(t, "25.1.8937393", ref.Revision.Dotted())

	_, ok = index.Lookup(types.ParseIdentifier("ndk;99.9.9"))
	assert.False(t, ok)
}

func TestBuildRecordsNDKReleases(t *testing.T) {
	manifest := types.Manifest{
		repoBase + "android-ndk-r25b-linux.zip": {{"pkg.revision": "25.1.8937393"}},
	}
	index := buildIndex(t, manifest)
	assert.Equal(t, "25.1.8937393", index.NDKReleases["r25b"])
}

// ---------------------------------------------------------------------------
// alias passes
// ---------------------------------------------------------------------------

func TestAliasCmdlineToolsLatest(t *testing.T) {
	manifest := types.Manifest{
		repoBase + "commandlinetools-linux-8092744_latest.zip": {{
			"pkg.path":     "cmdline-tools;8.0",
			"pkg.revision": "8.0",
		}},
		repoBase + "commandlinetools-linux-9477386_latest.zip": {{
			"pkg.path":     "cmdline-tools;9.0",
			"pkg.revision": "9.0",
		}},
	}
	index := buildIndex(t, manifest)

	latest, ok := index.Lookup(types.ParseIdentifier("cmdline-tools;latest"))
	require.True(t, ok)
	nine, ok := index.Lookup(types.ParseIdentifier("cmdline-tools;9.0"))
	require.True(t, ok)
	assert.Equal(t, nine, latest)
}

func TestAliasCmdlineToolsLatestIgnoresNonNumeric(t *testing.T) {
	manifest := types.Manifest{
		repoBase + "commandlinetools-linux-1234_latest.zip": {{
			"pkg.path":     "cmdline-tools;9.0-beta1",
			"pkg.revision": "9.0-beta1",
		}},
	}
	index := buildIndex(t, manifest)

	_, ok := index.Lookup(types.ParseIdentifier("cmdline-tools;latest"))
	assert.False(t, ok)
}

func TestAliasPlatformTools(t *testing.T) {
	manifest := types.Manifest{
		repoBase + "platform-tools_r33.0.3-linux.zip": {{"pkg.revision": "33.0.3"}},
		repoBase + "platform-tools_r34.0.0-linux.zip": {{"pkg.revision": "34.0.0"}},
	}
	index := buildIndex(t, manifest)

	bare, ok := index.Lookup(types.ParseIdentifier("platform-tools"))
	require.True(t, ok)
	assert.Equal(t, repoBase+"platform-tools_r34.0.0-linux.zip", bare.URL)
}

func TestAliasTieIsDeterministic(t *testing.T) {
	// Two spellings of the same revision ("34.0" and "34.0.0" compare
	// equal under zero-padding) behind different URLs: the alias must
	// settle on one of them regardless of map iteration order.
	manifest := types.Manifest{
		"https://mirror-a.example.org/platform-tools_r34.0-linux.zip":   {{"pkg.revision": "34.0"}},
		"https://mirror-b.example.org/platform-tools_r34.0.0-linux.zip": {{"pkg.revision": "34.0.0"}},
	}
	first := buildIndex(t, manifest)
	bare, ok := first.Lookup(types.ParseIdentifier("platform-tools"))
	require.True(t, ok)
	assert.Equal(t, "https://mirror-a.example.org/platform-tools_r34.0-linux.zip", bare.URL)

	for i := 0; i < 20; i++ {
		if diff := cmp.Diff(first, buildIndex(t, manifest)); diff != "" {
			t.Fatalf("alias flipped between rebuilds (-first +rebuilt):\n%s", diff)
		}
	}
}

func TestAliasCmdlineToolsLatestTieIsDeterministic(t *testing.T) {
	manifest := types.Manifest{
		"https://mirror-a.example.org/commandlinetools-linux-111_latest.zip": {{
			"pkg.path":     "cmdline-tools;9.0",
			"pkg.revision": "9.0",
		}},
		"https://mirror-b.example.org/commandlinetools-linux-222_latest.zip": {{
			"pkg.path":     "cmdline-tools;9.0.0",
			"pkg.revision": "9.0.0",
		}},
	}
	first := buildIndex(t, manifest)
	_, ok := first.Lookup(types.ParseIdentifier("cmdline-tools;latest"))
	require.True(t, ok)

	for i := 0; i < 20; i++ {
		if diff := cmp.Diff(first, buildIndex(t, manifest)); diff != "" {
			t.Fatalf("latest alias flipped between rebuilds (-first +rebuilt):\n%s", diff)
		}
	}
}

func TestAliasTools(t *testing.T) {
	manifest := types.Manifest{
		repoBase + "tools_r25.2.5-linux.zip":    {{"pkg.revision": "25.2.5"}},
		repoBase + "sdk-tools-linux-4333796.zip": {{"pkg.revision": "26.1.1"}},
	}
	index := buildIndex(t, manifest)

	bare, ok := index.Lookup(types.ParseIdentifier("tools"))
	require.True(t, ok)
	assert.Equal(t, repoBase+"sdk-tools-linux-4333796.zip", bare.URL)
}
