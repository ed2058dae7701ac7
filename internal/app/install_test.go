package app

import (
	"context"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sdkmanager/internal/core"
	"sdkmanager/internal/ports"
	"sdkmanager/internal/types"
)

const testRepo = "https://dl.google.com/android/repository/"

type stubManifest struct {
	manifest  types.Manifest
	checksums types.Checksums
	refreshed bool
}

func (s *stubManifest) Load(_ context.Context, refresh bool) (types.Manifest, types.Checksums, error) {
	s.refreshed = refresh
	return s.manifest, s.checksums, nil
}

type stubFetcher struct {
	fetched []string
	path    string
}

func (s *stubFetcher) EnsureArtifact(_ context.Context, url string, _ string) (string, error) {
	s.fetched = append(s.fetched, url)
	return s.path, nil
}

type stubInstaller struct {
	requests []ports.InstallRequest
	fail     map[string]error
}

func (s *stubInstaller) Install(_ context.Context, req ports.InstallRequest) (ports.InstallResult, error) {
	s.requests = append(s.requests, req)
	if err := s.fail[req.Identifier.String()]; err != nil {
		return ports.InstallResult{}, err
	}
	return ports.InstallResult{InstallDir: "/sdk/" + req.Identifier.Family()}, nil
}

func testService(manifest *stubManifest, fetcher *stubFetcher, installer *stubInstaller) Service {
	return Service{
		Manifest:     manifest,
		Fetcher:      fetcher,
		IndexBuilder: core.NewIndexBuilder(),
		NewInstaller: func(string) ports.ArchiveInstallerPort { return installer },
	}
}

func sampleManifest() *stubManifest {
	return &stubManifest{
		manifest: types.Manifest{
			testRepo + "build-tools_r30.0.3-linux.zip": {{"pkg.revision": "30.0.3"}},
			testRepo + "android-ndk-r25b-linux.zip":    {{"pkg.revision": "25.1.8937393"}},
			testRepo + "platform-tools_r34.0.0-linux.zip": {{"pkg.revision": "34.0.0"}},
		},
		checksums: types.Checksums{
			testRepo + "build-tools_r30.0.3-linux.zip": "abc123",
		},
	}
}

func TestInstallSinglePackage(t *testing.T) {
	fetcher := &stubFetcher{path: "/cache/archive.zip"}
	installer := &stubInstaller{}
	service := testService(sampleManifest(), fetcher, installer)

	result, err := service.Install(context.Background(), InstallRequest{
		Packages: []string{"build-tools;30.0.3"},
		Root:     "/sdk",
	})
	require.NoError(t, err)
	require.Len(t, result.Outcomes, 1)
	assert.Zero(t, result.Failed)
	assert.NoError(t, result.Outcomes[0].Err)

	require.Len(t, fetcher.fetched, 1)
	assert.Equal(t, testRepo+"build-tools_r30.0.3-linux.zip", fetcher.fetched[0])
	require.Len(t, installer.requests, 1)
	assert.Equal(t, "/cache/archive.zip", installer.requests[0].ArchivePath)
	assert.Empty(t, installer.requests[0].DirRevision)
}

func TestInstallNDKReleaseTagDirRevision(t *testing.T) {
	fetcher := &stubFetcher{path: "/cache/ndk.zip"}
	installer := &stubInstaller{}
	service := testService(sampleManifest(), fetcher, installer)

	_, err := service.Install(context.Background(), InstallRequest{
		Packages: []string{"ndk;r25b"},
		Root:     "/sdk",
	})
	require.NoError(t, err)
	require.Len(t, installer.requests, 1)
	assert.Equal(t, "25.1.8937393", installer.requests[0].DirRevision)
}

func TestInstallUnknownPackageSuggests(t *testing.T) {
	service := testService(sampleManifest(), &stubFetcher{}, &stubInstaller{})

	result, err := service.Install(context.Background(), InstallRequest{
		Packages: []string{"build-tols;30.0.3"},
		Root:     "/sdk",
	})
	require.NoError(t, err)
	require.Len(t, result.Outcomes, 1)
	assert.Equal(t, 1, result.Failed)

	outcome := result.Outcomes[0]
	require.Error(t, outcome.Err)
	assert.Contains(t, outcome.Err.Error(), `did you mean "build-tools;30.0.3"?`)
}

func TestInstallBatchFailureIsolation(t *testing.T) {
	fetcher := &stubFetcher{path: "/cache/archive.zip"}
	installer := &stubInstaller{fail: map[string]error{
		"build-tools;30.0.3": errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("bad archive"),
	}}
	service := testService(sampleManifest(), fetcher, installer)

	result, err := service.Install(context.Background(), InstallRequest{
		Packages: []string{"build-tools;30.0.3", "platform-tools"},
		Root:     "/sdk",
	})
	require.NoError(t, err)
	require.Len(t, result.Outcomes, 2)
	assert.Equal(t, 1, result.Failed)
	assert.Error(t, result.Outcomes[0].Err)
	assert.NoError(t, result.Outcomes[1].Err)
}

func TestInstallRequiresRoot(t *testing.T) {
	service := testService(sampleManifest(), &stubFetcher{}, &stubInstaller{})
	_, err := service.Install(context.Background(), InstallRequest{
		Packages: []string{"platform-tools"},
	})
	require.Error(t, err)
}

func TestInstallRequiresPackages(t *testing.T) {
	service := testService(sampleManifest(), &stubFetcher{}, &stubInstaller{})
	_, err := service.Install(context.Background(), InstallRequest{Root: "/sdk"})
	require.Error(t, err)
}

func TestInstallRefreshPropagates(t *testing.T) {
	manifest := sampleManifest()
	service := testService(manifest, &stubFetcher{path: "/cache/a.zip"}, &stubInstaller{})

	_, err := service.Install(context.Background(), InstallRequest{
		Packages: []string{"platform-tools"},
		Root:     "/sdk",
		Refresh:  true,
	})
	require.NoError(t, err)
	assert.True(t, manifest.refreshed)
}
