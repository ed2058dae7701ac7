package adapters

import (
	"encoding/json"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"sdkmanager/internal/types"
)

// ParseProperties parses java-properties style "key=value" text into a
// flat map. Keys are lowercased; comment lines and lines without a
// separator are skipped.
func ParseProperties(text string) map[string]string {
	props := map[string]string{}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, ";") {
			continue
		}
		key, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}
		key = strings.ToLower(strings.TrimSpace(key))
		if key == "" {
			continue
		}
		props[key] = strings.TrimSpace(value)
	}
	return props
}

// rawChecksumEntry is one artifact record in the transparency log:
// free-form string fields, of which only source.properties and sha256
// matter here.
type rawChecksumEntry map[string]string

// DecodeChecksums parses transparency-log JSON into the manifest and
// checksum table. Every URL keeps its full ordered list of property
// bags; the first sha256 seen for a URL wins.
func DecodeChecksums(data []byte) (types.Manifest, types.Checksums, error) {
	var raw map[string][]rawChecksumEntry
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("invalid checksums format").
			WithCause(err)
	}

	manifest := types.Manifest{}
	checksums := types.Checksums{}
	for url, entries := range raw {
		bags := make([]map[string]string, 0, len(entries))
		for _, entry := range entries {
			bag := map[string]string{}
			if sourceProps, ok := entry["source.properties"]; ok {
				bag = ParseProperties(sourceProps)
			}
			bags = append(bags, bag)
			if sum, ok := entry["sha256"]; ok && checksums[url] == "" {
				checksums[url] = sum
			}
		}
		manifest[url] = bags
	}
	return manifest, checksums, nil
}
