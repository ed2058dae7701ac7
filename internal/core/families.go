package core

import (
	"path"
	"regexp"
	"strings"

	"sdkmanager/internal/types"
)

// indexEntry is one normalized (identifier, revision) pair produced
// from a manifest entry.
type indexEntry struct {
	id  types.Identifier
	rev types.Revision
}

// normalized is the result of classifying and normalizing a single
// manifest entry. A manifest entry may emit several identifiers (alias
// spellings, legacy names); an entry missing required fields for its
// family emits none and is silently skipped.
type normalized struct {
	entries []indexEntry

	// ndkRelease/ndkRevision record a release-tag to dotted-revision
	// pairing used to compute ndk install directories.
	ndkRelease  string
	ndkRevision string
}

// familyHandler classifies a manifest URL by filename pattern and
// normalizes its property bag. Handlers form a closed set; dispatch by
// pattern precedes parsing so a malformed entry in one family cannot
// affect another.
type familyHandler struct {
	family    types.Family
	matches   func(url string, base string) bool
	normalize func(url string, props map[string]string) normalized
}

var (
	ndkReleasePattern     = regexp.MustCompile(`r[1-9][0-9]?[a-z]?(?:-(?:rc|beta)[0-9]+)?`)
	ndkLinuxPattern       = regexp.MustCompile(`android-ndk-r([0-9]+)([a-z])-linux`)
	m2RevisionPattern     = regexp.MustCompile(`android_m2repository_r([0-9]+)\.zip`)
	nonZeroLeadingPattern = regexp.MustCompile(`^[1-9]`)
)

// familyHandlers is evaluated in order; the first match wins. The ndk
// pattern tests the whole URL and must precede platforms, whose
// "android-" prefix would otherwise swallow "android-ndk-*" names.
var familyHandlers = []familyHandler{
	{
		family:    types.FamilyBuildTools,
		matches:   func(_, base string) bool { return strings.HasPrefix(base, "build-tools") },
		normalize: normalizeBuildTools,
	},
	{
		family:    types.FamilyCmake,
		matches:   func(_, base string) bool { return strings.HasPrefix(base, "cmake") },
		normalize: normalizePkgPath,
	},
	{
		family: types.FamilyCmdlineTools,
		matches: func(_, base string) bool {
			return strings.HasPrefix(base, "cmdline-tools") || strings.HasPrefix(base, "commandlinetools")
		},
		normalize: normalizePkgPath,
	},
	{
		family:    types.FamilyEmulator,
		matches:   func(_, base string) bool { return strings.HasPrefix(base, "emulator") },
		normalize: normalizeEmulator,
	},
	{
		family:    types.FamilyM2Repository,
		matches:   func(_, base string) bool { return strings.HasPrefix(base, "android_m2repository_r") },
		normalize: normalizeM2Repository,
	},
	{
		family:    types.FamilyNDK,
		matches:   func(url, _ string) bool { return strings.Contains(url, "ndk-") },
		normalize: normalizeNDK,
	},
	{
		family:    types.FamilyPlatformTools,
		matches:   func(_, base string) bool { return strings.HasPrefix(base, "platform-tools") },
		normalize: normalizePlatformTools,
	},
	{
		family: types.FamilyPlatforms,
		matches: func(_, base string) bool {
			return strings.HasPrefix(base, "android-") || strings.HasPrefix(base, "platform-")
		},
		normalize: normalizePlatforms,
	},
	{
		family:    types.FamilySkiaparser,
		matches:   func(_, base string) bool { return strings.HasPrefix(base, "skiaparser") },
		normalize: normalizePkgPath,
	},
	{
		family: types.FamilyTools,
		matches: func(_, base string) bool {
			return strings.HasPrefix(base, "tools") || strings.HasPrefix(base, "sdk-tools-")
		},
		normalize: normalizeTools,
	},
}

// classify returns the handler for an archive URL, or false when no
// family claims it. Only zip archives are considered.
func classify(url string) (familyHandler, bool) {
	if !strings.HasSuffix(url, ".zip") {
		return familyHandler{}, false
	}
	base := path.Base(url)
	for _, handler := range familyHandlers {
		if handler.matches(url, base) {
			return handler, true
		}
	}
	return familyHandler{}, false
}

func normalizeBuildTools(_ string, props map[string]string) normalized {
	raw, ok := props["pkg.revision"]
	if !ok {
		return normalized{}
	}
	rev, _ := ParseRevision(raw)
	versionSegment := strings.ReplaceAll(raw, " ", "-")
	return normalized{entries: []indexEntry{
		{id: types.MakeIdentifier("build-tools", versionSegment), rev: rev},
	}}
}

// normalizePkgPath covers the families whose identifier is the
// manifest's own hierarchical pkg.path split on ";": cmake,
// cmdline-tools, and skiaparser.
func normalizePkgPath(_ string, props map[string]string) normalized {
	pkgPath, ok := props["pkg.path"]
	if !ok {
		return normalized{}
	}
	rev, _ := ParseRevision(props["pkg.revision"])
	return normalized{entries: []indexEntry{
		{id: types.ParseIdentifier(pkgPath), rev: rev},
	}}
}

// normalizeEmulator indexes the pkg.path identifier and additionally a
// revision-qualified ("emulator", revision) spelling.
func normalizeEmulator(url string, props map[string]string) normalized {
	result := normalizePkgPath(url, props)
	if len(result.entries) == 0 {
		return result
	}
	if raw, ok := props["pkg.revision"]; ok {
		first := result.entries[0]
		result.entries = append(result.entries, indexEntry{
			id:  types.MakeIdentifier(first.id.Family(), raw),
			rev: first.rev,
		})
	}
	return result
}

// normalizeM2Repository extracts the revision from the filename, since
// source.properties does not reliably carry path or revision info for
// this family. It emits the family root plus revisioned spellings with
// and without leading zeros.
func normalizeM2Repository(url string, _ map[string]string) normalized {
	match := m2RevisionPattern.FindStringSubmatch(url)
	if match == nil {
		return normalized{}
	}
	revision := match[1]
	rev, _ := ParseRevision(revision)
	root := types.MakeIdentifier("extras", "android", "m2repository")
	entries := []indexEntry{
		{id: root, rev: rev},
		{id: append(append(types.Identifier{}, root...), revision), rev: rev},
	}
	if stripped := strings.TrimLeft(revision, "0"); stripped != revision && stripped != "" {
		entries = append(entries, indexEntry{
			id:  append(append(types.Identifier{}, root...), stripped),
			rev: rev,
		})
	}
	return normalized{entries: entries}
}

// normalizeNDK emits "ndk" and legacy "ndk-bundle" identifiers at the
// concrete revision and at the release tag found in the filename. NDKs
// published without source.properties get a revision synthesized from
// the "r<N><letter>" release tag.
func normalizeNDK(url string, props map[string]string) normalized {
	var result normalized
	raw, haveRevision := props["pkg.revision"]
	rev := LowestRevision()
	if haveRevision {
		rev, _ = ParseRevision(raw)
		for _, family := range []string{"ndk", "ndk-bundle"} {
			result.entries = append(result.entries, indexEntry{
				id:  types.MakeIdentifier(family, raw),
				rev: rev,
			})
		}
	}
	release := ndkReleasePattern.FindString(url)
	if release == "" {
		return result
	}
	if !haveRevision {
		rev = types.Revision{Nums: []int{1}, Letter: types.NoLetter}
		if match := ndkLinuxPattern.FindStringSubmatch(url); match != nil {
			parsed, err := ParseRevision(match[1])
			if err == nil {
				parsed.Letter = int(match[2][0] - 'a')
				rev = parsed
			}
		}
	} else {
		result.ndkRelease = release
		result.ndkRevision = rev.Dotted()
	}
	for _, family := range []string{"ndk", "ndk-bundle"} {
		result.entries = append(result.entries, indexEntry{
			id:  types.MakeIdentifier(family, release),
			rev: rev,
		})
	}
	return result
}

// normalizePlatforms keys platforms by API level. The revision is the
// concatenation of platform.version and pkg.revision so full releases
// sort correctly against preview builds; values not beginning with a
// non-zero digit are previews and ineligible to win.
func normalizePlatforms(_ string, props map[string]string) normalized {
	apiLevel, ok := props["androidversion.apilevel"]
	if !ok {
		return normalized{}
	}
	vstring := props["platform.version"] + "." + props["pkg.revision"]
	if !nonZeroLeadingPattern.MatchString(vstring) {
		return normalized{}
	}
	rev, err := ParseRevision(vstring)
	if err != nil {
		return normalized{}
	}
	return normalized{entries: []indexEntry{
		{id: types.MakeIdentifier("platforms", "android-"+apiLevel), rev: rev},
	}}
}

func normalizePlatformTools(_ string, props map[string]string) normalized {
	raw, ok := props["pkg.revision"]
	if !ok {
		return normalized{}
	}
	rev, _ := ParseRevision(raw)
	return normalized{entries: []indexEntry{
		{id: types.MakeIdentifier("platform-tools", raw), rev: rev},
	}}
}

func normalizeTools(_ string, props map[string]string) normalized {
	raw, ok := props["pkg.revision"]
	if !ok {
		return normalized{}
	}
	pkgPath := props["pkg.path"]
	if pkgPath == "" {
		pkgPath = "tools"
	}
	rev, _ := ParseRevision(raw)
	id := append(types.ParseIdentifier(pkgPath), raw)
	return normalized{entries: []indexEntry{{id: id, rev: rev}}}
}
