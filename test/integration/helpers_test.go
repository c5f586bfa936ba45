//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

// projectEnv holds the paths of a synthetic project tree under test.
type projectEnv struct {
	Root string
}

// setupProject creates an isolated project directory with the standard layout
// the gates operate on (include/, tests/, manifests at the root).
func setupProject(t *testing.T) *projectEnv {
	t.Helper()
	return &projectEnv{Root: t.TempDir()}
}

// write creates a file at a path relative to the project root.
func (e *projectEnv) write(t *testing.T, rel, content string) string {
	t.Helper()
	path := filepath.Join(e.Root, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("mkdir for %s: %v", rel, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", rel, err)
	}
	return path
}

// writeManifests creates the three version manifests with the given versions.
func (e *projectEnv) writeManifests(t *testing.T, build, docs, pkg string) (string, string, string) {
	t.Helper()
	b := e.write(t, "CMakeLists.txt", "project(example VERSION "+build+" LANGUAGES CXX)\n")
	d := e.write(t, "Doxyfile", "PROJECT_NUMBER = "+docs+"\n")
	p := e.write(t, "conanfile.py", `version = "`+pkg+`"`+"\n")
	return b, d, p
}

// fakeFormatterExiting writes an executable script that exits with the given
// code and records the files it was invoked on.
func fakeFormatterExiting(t *testing.T, code int) (bin, invokedLog string) {
	t.Helper()
	dir := t.TempDir()
	bin = filepath.Join(dir, "fake-format")
	invokedLog = filepath.Join(dir, "invoked.log")

	var sb strings.Builder
	sb.WriteString("#!/bin/sh\n")
	sb.WriteString("echo \"$1\" >> \"" + invokedLog + "\"\n")
	if code != 0 {
		sb.WriteString("echo would-reformat >&2\n")
	}
	sb.WriteString("exit " + strconv.Itoa(code) + "\n")

	if err := os.WriteFile(bin, []byte(sb.String()), 0755); err != nil {
		t.Fatalf("writing fake formatter: %v", err)
	}
	return bin, invokedLog
}
