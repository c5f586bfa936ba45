package format

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/repogate-labs/repogate/internal/fileset"
	"github.com/repogate-labs/repogate/internal/gate"
)

// DefaultFormatter is the formatter binary used when none is configured.
const DefaultFormatter = "clang-format-18"

// Outcome captures one formatter invocation's result.
type Outcome struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Runner invokes the external formatter per file.
type Runner struct {
	// Formatter is the binary to invoke; DefaultFormatter if empty.
	Formatter string
	// Out receives progress and failure reports; defaults to os.Stdout.
	Out io.Writer
}

// Run invokes the formatter on every file. In check-only mode the formatter is
// asked for a dry run that fails if reformatting would change the file; in
// write mode it rewrites the file in place. Every file is attempted regardless
// of earlier failures, and the run's exit code is the last non-zero formatter
// exit observed. A formatter that cannot be started at all is a structural
// error aborting the run.
func (r *Runner) Run(ctx context.Context, files fileset.FileSet, checkOnly bool) (map[string]Outcome, int, error) {
	out := r.Out
	if out == nil {
		out = os.Stdout
	}
	formatter := r.Formatter
	if formatter == "" {
		formatter = DefaultFormatter
	}

	bin, err := exec.LookPath(formatter)
	if err != nil {
		return nil, 0, fmt.Errorf("formatter %q not found: %w", formatter, err)
	}

	if checkOnly {
		fmt.Fprintf(out, "Files to check: %d\n", len(files))
	} else {
		fmt.Fprintf(out, "Files to format: %d\n", len(files))
	}

	outcomes := make(map[string]Outcome, len(files))
	codes := make([]int, 0, len(files))

	for i, file := range files {
		fmt.Fprintf(out, "[%d/%d] %s\n", i+1, len(files), file)

		outcome, err := r.runOne(ctx, bin, file, checkOnly)
		if err != nil {
			return nil, 0, err
		}
		outcomes[file] = outcome
		codes = append(codes, outcome.ExitCode)

		if outcome.ExitCode != 0 {
			fmt.Fprintf(out, "[format error]\n[stdout]\n%s\n[stderr]\n%s\n", outcome.Stdout, outcome.Stderr)
		}
	}

	fmt.Fprintln(out, "Done!")
	return outcomes, gate.LastNonOK(codes), nil
}

// runOne executes a single formatter invocation. A non-zero formatter exit is
// a per-file outcome, not an error; only a failure to run the process at all
// is returned as an error.
func (r *Runner) runOne(ctx context.Context, bin, file string, checkOnly bool) (Outcome, error) {
	args := []string{file}
	if checkOnly {
		args = append(args, "--dry-run", "--Werror")
	} else {
		args = append(args, "-i")
	}

	cmd := exec.CommandContext(ctx, bin, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	outcome := Outcome{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			outcome.ExitCode = exitErr.ExitCode()
			return outcome, nil
		}
		return outcome, fmt.Errorf("running %s on %s: %w", bin, file, err)
	}

	return outcome, nil
}
