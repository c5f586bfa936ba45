package manifest

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// CheckConsistency extracts one version per source and verifies all extracted
// values are exactly equal. Extraction failures abort immediately, naming the
// offending manifest; no partial comparison is attempted. On mismatch every
// source/value pair is reported to w. With strict set, each extracted value
// must additionally parse as a semantic version.
func CheckConsistency(w io.Writer, sources []Source, strict bool) (map[string]string, bool, error) {
	versions := make(map[string]string, len(sources))

	for _, src := range sources {
		data, err := os.ReadFile(src.Path)
		if err != nil {
			return nil, false, fmt.Errorf("reading %s %s: %w", src.Name, src.Path, err)
		}

		version, ok := src.Extract(string(data))
		if !ok {
			return nil, false, fmt.Errorf("could not find a project version in %s %s", src.Name, src.Path)
		}

		if strict {
			if _, err := semver.NewVersion(strings.TrimPrefix(version, "v")); err != nil {
				return nil, false, fmt.Errorf("%s %s declares %q, which is not a semantic version: %w", src.Name, src.Path, version, err)
			}
		}

		versions[src.Name] = version
	}

	if consistent(sources, versions) {
		return versions, true, nil
	}

	fmt.Fprintln(w, "Version mismatch:")
	for _, src := range sources {
		fmt.Fprintf(w, "  %s (%s) = %s\n", src.Name, src.Path, versions[src.Name])
	}
	return versions, false, nil
}

// consistent reports whether every extracted value equals the first one.
// Iteration follows the source table order, not map order.
func consistent(sources []Source, versions map[string]string) bool {
	if len(sources) == 0 {
		return true
	}
	first := versions[sources[0].Name]
	for _, src := range sources[1:] {
		if versions[src.Name] != first {
			return false
		}
	}
	return true
}
