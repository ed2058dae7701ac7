package core

import (
	"context"
	"sort"
	"strings"

	assert "github.com/ZanzyTHEbar/assert-lib"
	pep440 "github.com/aquasecurity/go-pep440-version"
	"github.com/rs/zerolog/log"

	"sdkmanager/internal/types"
)

// IndexBuilder folds a raw channel manifest into a PackageIndex. The
// fold is order-insensitive: entries are visited in sorted URL order
// and an identifier is only ever replaced by an equal or higher
// revision, so any permutation of the manifest produces the same
// index.
type IndexBuilder struct{}

func NewIndexBuilder() *IndexBuilder {
	return &IndexBuilder{}
}

// Build classifies every manifest entry, normalizes it through its
// family handler, and reduces the results under highest-revision-wins.
// Unclassifiable or incomplete entries are skipped, never fatal.
func (b *IndexBuilder) Build(ctx context.Context, manifest types.Manifest) types.PackageIndex {
	index := types.NewPackageIndex()
	revisions := make(map[string]types.Revision)

	urls := make([]string, 0, len(manifest))
	for url := range manifest {
		urls = append(urls, url)
	}
	sort.Strings(urls)

	for _, url := range urls {
		handler, ok := classify(url)
		if !ok {
			continue
		}
		bags := manifest[url]
		if len(bags) == 0 {
			continue
		}
		// The ndk family reads only the first record; its multi-ABI
		// records repeat identical package metadata. Other families
		// consult every record, since a URL's first record may be a
		// bare checksum with the properties in a later one.
		if handler.family == types.FamilyNDK {
			bags = bags[:1]
		}
		for _, props := range bags {
			result := handler.normalize(url, props)
			if result.ndkRelease != "" {
				index.NDKReleases[result.ndkRelease] = result.ndkRevision
			}
			for _, entry := range result.entries {
				b.reduce(ctx, index, revisions, entry, url)
			}
		}
	}

	b.aliasCmdlineToolsLatest(index, revisions)
	b.aliasHighest(index, revisions, types.MakeIdentifier("platform-tools"))
	b.aliasHighest(index, revisions, types.MakeIdentifier("tools"))

	log.Ctx(ctx).Debug().
		Int("packages", index.Len()).
		Int("ndk_releases", len(index.NDKReleases)).
		Msg("built package index")
	return index
}

// reduce applies highest-revision-wins for one normalized entry. Ties
// replace, so among equal revisions the last URL in sorted order is
// retained.
func (b *IndexBuilder) reduce(ctx context.Context, index types.PackageIndex, revisions map[string]types.Revision, entry indexEntry, url string) {
	assert.NotEmpty(ctx, entry.id.String(), "normalized entry must carry an identifier")

	key := entry.id.String()
	if current, seen := revisions[key]; seen && CompareRevisions(entry.rev, current) < 0 {
		return
	}
	revisions[key] = entry.rev
	index.Entries[key] = types.ArtifactRef{URL: url, Revision: entry.rev}
}

// aliasCmdlineToolsLatest points "cmdline-tools;latest" at the highest
// stable numbered release. Only plain dotted versions are candidates;
// previews and codenamed builds never become latest.
func (b *IndexBuilder) aliasCmdlineToolsLatest(index types.PackageIndex, revisions map[string]types.Revision) {
	var (
		bestKey string
		bestVer string
	)
	for key := range index.Entries {
		id := types.ParseIdentifier(key)
		if id.Family() != "cmdline-tools" || len(id) != 2 {
			continue
		}
		version := id.Version()
		if version == "latest" || !isPlainDotted(version) {
			continue
		}
		// Ties break on the identifier so map iteration order never
		// changes which entry wins.
		cmp := 1
		if bestKey != "" {
			cmp = compareDotted(version, bestVer)
		}
		if cmp > 0 || (cmp == 0 && key < bestKey) {
			bestKey, bestVer = key, version
		}
	}
	if bestKey == "" {
		return
	}
	latest := types.MakeIdentifier("cmdline-tools", "latest").String()
	index.Entries[latest] = index.Entries[bestKey]
	revisions[latest] = revisions[bestKey]
}

// aliasHighest points a bare family identifier at the highest revision
// among its versioned entries.
func (b *IndexBuilder) aliasHighest(index types.PackageIndex, revisions map[string]types.Revision, alias types.Identifier) {
	family := alias.Family()
	var (
		bestKey string
		bestRev types.Revision
	)
	for key := range index.Entries {
		id := types.ParseIdentifier(key)
		if id.Family() != family || len(id) < 2 {
			continue
		}
		cmp := 1
		if bestKey != "" {
			cmp = CompareRevisions(revisions[key], bestRev)
		}
		if cmp > 0 || (cmp == 0 && key < bestKey) {
			bestKey, bestRev = key, revisions[key]
		}
	}
	if bestKey == "" {
		return
	}
	index.Entries[alias.String()] = index.Entries[bestKey]
	revisions[alias.String()] = bestRev
}

func isPlainDotted(version string) bool {
	if version == "" {
		return false
	}
	for _, r := range version {
		if (r < '0' || r > '9') && r != '.' {
			return false
		}
	}
	return !strings.HasPrefix(version, ".") && !strings.HasSuffix(version, ".")
}

// compareDotted orders plain dotted version strings numerically per
// component, with missing components treated as zero.
func compareDotted(a, b string) int {
	left, errA := pep440.Parse(a)
	right, errB := pep440.Parse(b)
	if errA != nil || errB != nil {
		return strings.Compare(a, b)
	}
	return left.Compare(right)
}
