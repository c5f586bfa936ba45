package fileset

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// diffArgs lists files changed relative to the upstream tracking reference.
var diffArgs = []string{"git", "diff", "--name-only", "@{u}"}

// FilterModified narrows all to the files changed relative to the upstream
// tracking branch. A failing diff command is a structural error: the whole
// operation aborts with no partial result.
func FilterModified(ctx context.Context, all FileSet) (FileSet, error) {
	cmd := exec.CommandContext(ctx, diffArgs[0], diffArgs[1:]...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			return nil, fmt.Errorf("listing modified files: %w", err)
		}
		return nil, fmt.Errorf("listing modified files: %s: %w", msg, err)
	}

	return all.Intersect(parseDiffOutput(stdout.String())), nil
}

// parseDiffOutput splits diff output into one path per non-empty line.
func parseDiffOutput(out string) []string {
	var paths []string
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			paths = append(paths, line)
		}
	}
	return paths
}
