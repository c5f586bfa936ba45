package fileset

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// FileSet is a deduplicated collection of file paths in sorted order.
// The sorted order is part of the contract: downstream checks report the
// "first" failing file, and a stable order keeps that reproducible across runs.
type FileSet []string

// Select returns all files under the search paths whose base name matches any
// of the glob patterns, excluding files under any of the excluded directory
// paths. A nonexistent search path contributes no matches and is not an error.
func Select(searchPaths, patterns, excludePaths []string) (FileSet, error) {
	seen := make(map[string]bool)
	var result FileSet

	for _, searchPath := range searchPaths {
		if _, err := os.Stat(searchPath); err != nil {
			continue
		}

		err := filepath.WalkDir(searchPath, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return nil // skip inaccessible entries
			}
			if d.IsDir() {
				return nil
			}

			matched, err := matchAny(patterns, d.Name())
			if err != nil {
				return err
			}
			if !matched {
				return nil
			}
			if excluded(filepath.Dir(path), excludePaths) {
				return nil
			}

			if !seen[path] {
				seen[path] = true
				result = append(result, path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walking %s: %w", searchPath, err)
		}
	}

	sort.Strings(result)
	return result, nil
}

// Intersect returns the members of fs that also appear in other,
// preserving fs's order.
func (f FileSet) Intersect(other []string) FileSet {
	in := make(map[string]bool, len(other))
	for _, p := range other {
		in[filepath.Clean(p)] = true
	}

	var result FileSet
	for _, p := range f {
		if in[filepath.Clean(p)] {
			result = append(result, p)
		}
	}
	return result
}

// matchAny reports whether name matches any of the glob patterns.
func matchAny(patterns []string, name string) (bool, error) {
	for _, pattern := range patterns {
		ok, err := filepath.Match(pattern, name)
		if err != nil {
			return false, fmt.Errorf("bad file pattern %q: %w", pattern, err)
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}

// excluded reports whether dir is equal to, or nested under, any excluded
// path. Matching is segment-wise: excluding "tests" does not exclude a
// sibling directory named "tests-extra".
func excluded(dir string, excludePaths []string) bool {
	dirParts := strings.Split(filepath.Clean(dir), string(filepath.Separator))
	for _, exclude := range excludePaths {
		if exclude == "" {
			continue
		}
		excludeParts := strings.Split(filepath.Clean(exclude), string(filepath.Separator))
		if isSegmentPrefix(excludeParts, dirParts) {
			return true
		}
	}
	return false
}

func isSegmentPrefix(prefix, parts []string) bool {
	if len(prefix) > len(parts) {
		return false
	}
	for i, seg := range prefix {
		if parts[i] != seg {
			return false
		}
	}
	return true
}
