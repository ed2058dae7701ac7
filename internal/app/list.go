package app

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// List returns every available package plus the packages found
// installed under the SDK root. An unreadable or missing root just
// means nothing is installed.
func (s Service) List(ctx context.Context, req ListRequest) (ListResult, error) {
	index, _, err := s.buildIndex(ctx, req.Refresh)
	if err != nil {
		return ListResult{}, err
	}

	result := ListResult{Available: index.Names()}
	if root := strings.TrimSpace(req.Root); root != "" {
		result.Installed = findInstalled(root)
	}
	return result, nil
}

// findInstalled reports directories under root that carry a
// source.properties or package.xml marker, up to two levels deep.
func findInstalled(root string) []string {
	var installed []string
	seen := map[string]bool{}

	record := func(dir string) {
		rel, err := filepath.Rel(root, dir)
		if err != nil || seen[rel] {
			return
		}
		if fileMarker(dir) {
			seen[rel] = true
			installed = append(installed, filepath.ToSlash(rel))
		}
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil
	}
	for _, entry := range entries {
		if !entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		level1 := filepath.Join(root, entry.Name())
		record(level1)
		children, err := os.ReadDir(level1)
		if err != nil {
			continue
		}
		for _, child := range children {
			if child.IsDir() {
				record(filepath.Join(level1, child.Name()))
			}
		}
	}
	sort.Strings(installed)
	return installed
}

func fileMarker(dir string) bool {
	for _, marker := range []string{"source.properties", "package.xml"} {
		if info, err := os.Stat(filepath.Join(dir, marker)); err == nil && info.Mode().IsRegular() {
			return true
		}
	}
	return false
}
