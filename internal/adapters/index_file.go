package adapters

import (
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"sdkmanager/internal/ports"
	"sdkmanager/internal/types"
)

// indexSnapshot is the on-disk form of a built package index.
type indexSnapshot struct {
	Packages    map[string]types.ArtifactRef `yaml:"packages"`
	NDKReleases map[string]string            `yaml:"ndk_releases,omitempty"`
}

// IndexFileAdapter persists a built index as YAML so tooling can
// inspect what a manifest resolved to without refetching it.
type IndexFileAdapter struct{}

var _ ports.IndexCachePort = IndexFileAdapter{}

func NewIndexFileAdapter() IndexFileAdapter {
	return IndexFileAdapter{}
}

func (IndexFileAdapter) Write(path string, index types.PackageIndex) error {
	snapshot := indexSnapshot{
		Packages:    index.Entries,
		NDKReleases: index.NDKReleases,
	}
	data, err := yaml.Marshal(snapshot)
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to encode index").
			WithCause(err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write index file").
			WithCause(err)
	}
	return nil
}

func (IndexFileAdapter) Read(path string) (types.PackageIndex, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.PackageIndex{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("index file not found").
			WithCause(err)
	}
	var snapshot indexSnapshot
	if err := yaml.Unmarshal(data, &snapshot); err != nil {
		return types.PackageIndex{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("invalid index file format").
			WithCause(err)
	}
	index := types.NewPackageIndex()
	for name, ref := range snapshot.Packages {
		index.Entries[name] = ref
	}
	for release, revision := range snapshot.NDKReleases {
		index.NDKReleases[release] = revision
	}
	return index, nil
}
