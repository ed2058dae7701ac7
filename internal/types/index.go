package types

import "sort"

// ArtifactRef points at the downloadable archive chosen for an
// identifier, together with the revision that won the selection.
type ArtifactRef struct {
	URL      string   `yaml:"url"`
	Revision Revision `yaml:"revision"`
}

// PackageIndex maps rendered identifiers to the artifact selected for
// them. It is rebuilt from scratch on every run; entries are only ever
// replaced through the builder's highest-revision-wins rule and the
// index is read-only afterwards.
type PackageIndex struct {
	// Entries is keyed by the ";"-joined identifier.
	Entries map[string]ArtifactRef

	// NDKReleases maps an ndk release tag ("r25b") to the dotted
	// revision ("25.1.8937393") used for its install directory.
	NDKReleases map[string]string
}

// NewPackageIndex returns an empty index.
func NewPackageIndex() PackageIndex {
	return PackageIndex{
		Entries:     map[string]ArtifactRef{},
		NDKReleases: map[string]string{},
	}
}

// Lookup returns the artifact for an identifier.
func (x PackageIndex) Lookup(id Identifier) (ArtifactRef, bool) {
	ref, ok := x.Entries[id.String()]
	return ref, ok
}

// Names returns every rendered identifier in the index, sorted.
func (x PackageIndex) Names() []string {
	names := make([]string, 0, len(x.Entries))
	for name := range x.Entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len reports the number of indexed identifiers.
func (x PackageIndex) Len() int {
	return len(x.Entries)
}
