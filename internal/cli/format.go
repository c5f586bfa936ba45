package cli

import (
	"context"
	"io"

	"github.com/repogate-labs/repogate/internal/config"
	"github.com/repogate-labs/repogate/internal/fileset"
	"github.com/repogate-labs/repogate/internal/format"
	"github.com/repogate-labs/repogate/internal/gate"
	"github.com/spf13/cobra"
)

var (
	formatSearchPaths  []string
	formatPatterns     []string
	formatExcludePaths []string
	formatModifiedOnly bool
	formatCheckOnly    bool
	formatFormatter    string
)

func init() {
	f := formatCmd.Flags()
	f.StringArrayVarP(&formatSearchPaths, "search-paths", "p", nil, "Search directory paths (repeatable)")
	f.StringArrayVarP(&formatPatterns, "file-patterns", "f", nil, "File glob patterns to include (repeatable)")
	f.StringArrayVarP(&formatExcludePaths, "exclude-paths", "e", nil, "Directory paths to exclude (repeatable)")
	f.BoolVarP(&formatModifiedOnly, "modified-files", "m", false, "Only process files modified since the last pushed commit")
	f.BoolVarP(&formatCheckOnly, "check", "c", false, "Dry run: fail if reformatting would change a file, write nothing")
	f.StringVar(&formatFormatter, "formatter", "", "Formatter binary to invoke (default "+format.DefaultFormatter+")")
	rootCmd.AddCommand(formatCmd)
}

var formatCmd = &cobra.Command{
	Use:   "format",
	Short: "Format source files, or verify they are formatted",
	Long: `Invoke the external formatter on every selected file. By default files are
rewritten in place; with --check the formatter runs in dry-run mode and fails
on any file that would change. Every file is attempted regardless of earlier
failures; the exit code is the last non-zero formatter exit observed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		code, err := formatGate(cmd.Context(), cmd.OutOrStdout(),
			stringsSetting(cmd, "search-paths", formatSearchPaths, config.KeyFormatSearchPaths),
			stringsSetting(cmd, "file-patterns", formatPatterns, config.KeyFormatPatterns),
			stringsSetting(cmd, "exclude-paths", formatExcludePaths, config.KeyFormatExcludePaths),
			stringSetting(cmd, "formatter", formatFormatter, config.KeyFormatFormatter),
			formatModifiedOnly, formatCheckOnly,
		)
		if err != nil {
			return err
		}
		return gate.Exit(code)
	},
}

// formatGate selects the files, optionally narrows to modified ones, and runs
// the formatter over them.
func formatGate(ctx context.Context, w io.Writer, searchPaths, patterns, excludePaths []string, formatter string, modifiedOnly, checkOnly bool) (int, error) {
	files, err := fileset.Select(searchPaths, patterns, excludePaths)
	if err != nil {
		return 0, err
	}
	if modifiedOnly {
		files, err = fileset.FilterModified(ctx, files)
		if err != nil {
			return 0, err
		}
	}

	r := &format.Runner{Formatter: formatter, Out: w}
	_, code, err := r.Run(ctx, files, checkOnly)
	return code, err
}
