package fileset

import (
	"os"
	"path/filepath"
	"sort"
	"testing"
)

// writeTree creates the given relative files (with trivial content) under root.
func writeTree(t *testing.T, root string, files ...string) {
	t.Helper()
	for _, f := range files {
		path := filepath.Join(root, f)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("mkdir for %s: %v", f, err)
		}
		if err := os.WriteFile(path, []byte("x\n"), 0644); err != nil {
			t.Fatalf("write %s: %v", f, err)
		}
	}
}

func rel(t *testing.T, root string, paths FileSet) []string {
	t.Helper()
	var out []string
	for _, p := range paths {
		r, err := filepath.Rel(root, p)
		if err != nil {
			t.Fatalf("rel %s: %v", p, err)
		}
		out = append(out, filepath.ToSlash(r))
	}
	return out
}

func TestSelectMatchesPatternsRecursively(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root,
		"include/ap/parser.hpp",
		"include/ap/detail/helpers.hpp",
		"src/main.cpp",
		"docs/readme.md",
	)

	got, err := Select(
		[]string{filepath.Join(root, "include"), filepath.Join(root, "src")},
		[]string{"*.hpp", "*.cpp"},
		nil,
	)
	if err != nil {
		t.Fatalf("Select: %v", err)
	}

	want := []string{
		"include/ap/detail/helpers.hpp",
		"include/ap/parser.hpp",
		"src/main.cpp",
	}
	gotRel := rel(t, root, got)
	if len(gotRel) != len(want) {
		t.Fatalf("Select returned %v, want %v", gotRel, want)
	}
	for i := range want {
		if gotRel[i] != want[i] {
			t.Errorf("result[%d] = %q, want %q", i, gotRel[i], want[i])
		}
	}
}

func TestSelectDeduplicatesOverlappingInputs(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, "include/parser.hpp")

	// The same search path twice and an overlapping pattern pair must not
	// produce duplicate entries.
	inc := filepath.Join(root, "include")
	got, err := Select([]string{inc, inc}, []string{"*.hpp", "parser.*"}, nil)
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if len(got) != 1 {
		t.Errorf("Select returned %d entries, want 1: %v", len(got), got)
	}
}

func TestSelectResultIsSorted(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, "src/z.cpp", "src/a.cpp", "src/m.cpp")

	got, err := Select([]string{filepath.Join(root, "src")}, []string{"*.cpp"}, nil)
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if !sort.StringsAreSorted(got) {
		t.Errorf("Select result not sorted: %v", got)
	}
}

func TestSelectNonexistentSearchPath(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, "include/a.hpp")

	got, err := Select(
		[]string{filepath.Join(root, "include"), filepath.Join(root, "no-such-dir")},
		[]string{"*.hpp"},
		nil,
	)
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if len(got) != 1 {
		t.Errorf("Select returned %d entries, want 1", len(got))
	}
}

func TestSelectExcludesSubtrees(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root,
		"tests/unit/a.cpp",
		"tests/external/vendored.cpp",
		"tests/external/deep/nested.cpp",
	)

	got, err := Select(
		[]string{filepath.Join(root, "tests")},
		[]string{"*.cpp"},
		[]string{filepath.Join(root, "tests", "external")},
	)
	if err != nil {
		t.Fatalf("Select: %v", err)
	}

	gotRel := rel(t, root, got)
	if len(gotRel) != 1 || gotRel[0] != "tests/unit/a.cpp" {
		t.Errorf("Select returned %v, want [tests/unit/a.cpp]", gotRel)
	}
}

func TestSelectExclusionIsSegmentWise(t *testing.T) {
	// Excluding "tests" must not drop files under a sibling "tests-extra".
	// This deliberately tightens the historical raw-prefix behavior.
	root := t.TempDir()
	writeTree(t, root,
		"tests/a.cpp",
		"tests-extra/b.cpp",
	)

	got, err := Select(
		[]string{root},
		[]string{"*.cpp"},
		[]string{filepath.Join(root, "tests")},
	)
	if err != nil {
		t.Fatalf("Select: %v", err)
	}

	gotRel := rel(t, root, got)
	if len(gotRel) != 1 || gotRel[0] != "tests-extra/b.cpp" {
		t.Errorf("Select returned %v, want [tests-extra/b.cpp]", gotRel)
	}
}

func TestSelectBadPattern(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, "a.cpp")

	if _, err := Select([]string{root}, []string{"["}, nil); err == nil {
		t.Error("Select with malformed pattern succeeded, want error")
	}
}

func TestIntersect(t *testing.T) {
	all := FileSet{"include/a.hpp", "include/b.hpp", "src/c.cpp"}

	tests := []struct {
		name     string
		changed  []string
		expected []string
	}{
		{"empty diff", nil, nil},
		{"partial overlap", []string{"include/b.hpp", "docs/readme.md"}, []string{"include/b.hpp"}},
		{"full overlap", []string{"src/c.cpp", "include/a.hpp", "include/b.hpp"}, []string{"include/a.hpp", "include/b.hpp", "src/c.cpp"}},
		{"cleans paths", []string{"./include/a.hpp"}, []string{"include/a.hpp"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := all.Intersect(tt.changed)
			if len(got) != len(tt.expected) {
				t.Fatalf("Intersect = %v, want %v", got, tt.expected)
			}
			for i := range tt.expected {
				if got[i] != tt.expected[i] {
					t.Errorf("result[%d] = %q, want %q", i, got[i], tt.expected[i])
				}
			}
		})
	}
}

func TestParseDiffOutput(t *testing.T) {
	out := "include/a.hpp\n\nsrc/c.cpp\n  \n"
	got := parseDiffOutput(out)
	if len(got) != 2 || got[0] != "include/a.hpp" || got[1] != "src/c.cpp" {
		t.Errorf("parseDiffOutput = %v, want [include/a.hpp src/c.cpp]", got)
	}
}
