package license

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/repogate-labs/repogate/internal/fileset"
	"github.com/repogate-labs/repogate/internal/gate"
)

// Verdict classifies one file's license compliance.
type Verdict int

const (
	Compliant Verdict = iota
	TooShort          // file has fewer lines than the expected header
	Missing           // no expected line matches at its position
	Incomplete        // some but not all expected lines match
)

// Code returns the check's exit code for the verdict. The non-zero ordinals
// match the historical return codes of the gate (-1, -2, -3).
func (v Verdict) Code() int {
	switch v {
	case TooShort:
		return -1
	case Missing:
		return -2
	case Incomplete:
		return -3
	default:
		return 0
	}
}

func (v Verdict) String() string {
	switch v {
	case Compliant:
		return "compliant"
	case TooShort:
		return "too short"
	case Missing:
		return "missing license info"
	case Incomplete:
		return "incomplete license info"
	default:
		return fmt.Sprintf("verdict(%d)", int(v))
	}
}

// Check scans every file and reports each non-compliant one to w. It never
// stops early: all files are scanned even after a failure. The returned code
// is the first non-compliant verdict's code in scan order, or 0 if all files
// are compliant. An unreadable file is a structural error aborting the run.
func Check(w io.Writer, expected Header, files fileset.FileSet) (map[string]Verdict, int, error) {
	fmt.Fprintf(w, "Files to check: %d\n", len(files))

	verdicts := make(map[string]Verdict, len(files))
	codes := make([]int, 0, len(files))

	for i, file := range files {
		fmt.Fprintf(w, "[%d/%d] %s\n", i+1, len(files), file)

		verdict, err := checkFile(expected, file)
		if err != nil {
			return nil, 0, err
		}
		verdicts[file] = verdict
		codes = append(codes, verdict.Code())

		switch verdict {
		case TooShort:
			fmt.Fprintf(w, "[error] File `%s` too short\n", file)
		case Missing:
			fmt.Fprintf(w, "[error] Missing license info in file `%s`\n", file)
		case Incomplete:
			fmt.Fprintf(w, "[error] Incomplete license info in file `%s`\n", file)
		}
	}

	fmt.Fprintln(w, "Done!")
	return verdicts, gate.FirstNonOK(codes), nil
}

// checkFile reads one file and classifies its leading lines.
func checkFile(expected Header, path string) (Verdict, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Compliant, fmt.Errorf("reading %s: %w", path, err)
	}

	lines := splitLines(string(data))
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return Classify(expected, lines), nil
}

// Classify compares a file's stripped lines against the expected header.
// Trailing content beyond the header region never affects the verdict.
func Classify(expected Header, lines []string) Verdict {
	if len(lines) < len(expected) {
		return TooShort
	}

	matching := 0
	for i := range expected {
		if lines[i] == expected[i] {
			matching++
		}
	}

	switch matching {
	case len(expected):
		return Compliant
	case 0:
		return Missing
	default:
		return Incomplete
	}
}
