package cli

import (
	"io"

	"github.com/repogate-labs/repogate/internal/config"
	"github.com/repogate-labs/repogate/internal/fileset"
	"github.com/repogate-labs/repogate/internal/gate"
	"github.com/repogate-labs/repogate/internal/license"
	"github.com/spf13/cobra"
)

var (
	licenseSearchPaths  []string
	licensePatterns     []string
	licenseExcludePaths []string
	licenseTemplate     string
	licenseCommentPfx   string
	licenseBlockOpen    string
	licenseBlockClose   string
	licensePrefixLines  []string
	licenseSuffixLines  []string
)

func init() {
	f := licenseCmd.Flags()
	f.StringArrayVarP(&licenseSearchPaths, "search-paths", "p", nil, "Search directory paths (repeatable)")
	f.StringArrayVarP(&licensePatterns, "file-patterns", "f", nil, "File glob patterns to include (repeatable)")
	f.StringArrayVarP(&licenseExcludePaths, "exclude-paths", "e", nil, "Directory paths to exclude (repeatable)")
	f.StringVar(&licenseTemplate, "template", "", "License template file the expected header is derived from")
	f.StringVar(&licenseCommentPfx, "comment-prefix", "// ", "Line-comment prefix applied to each template line")
	f.StringVar(&licenseBlockOpen, "block-open", "", "Comment-block opening line wrapped around the template")
	f.StringVar(&licenseBlockClose, "block-close", "", "Comment-block closing line wrapped around the template")
	f.StringArrayVar(&licensePrefixLines, "prefix-line", nil, "Extra header line before the template (repeatable)")
	f.StringArrayVar(&licenseSuffixLines, "suffix-line", nil, "Extra header line after the template (repeatable)")
	rootCmd.AddCommand(licenseCmd)
}

var licenseCmd = &cobra.Command{
	Use:   "license",
	Short: "Check that every source file carries the expected license header",
	Long: `Scan the selected files and verify each one starts with the expected license
header. Every file is scanned and reported; the exit code identifies the first
non-compliant file in scan order (too short, missing, or incomplete header).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		expected, err := resolveHeader(cmd)
		if err != nil {
			return err
		}

		code, err := licenseGate(cmd.OutOrStdout(), expected,
			stringsSetting(cmd, "search-paths", licenseSearchPaths, config.KeyLicenseSearchPaths),
			stringsSetting(cmd, "file-patterns", licensePatterns, config.KeyLicensePatterns),
			stringsSetting(cmd, "exclude-paths", licenseExcludePaths, config.KeyLicenseExcludePaths),
		)
		if err != nil {
			return err
		}
		return gate.Exit(code)
	},
}

// resolveHeader builds the expected header from the template flag/config, or
// falls back to the builtin header.
func resolveHeader(cmd *cobra.Command) (license.Header, error) {
	template := stringSetting(cmd, "template", licenseTemplate, config.KeyLicenseTemplate)
	if template == "" {
		return license.Builtin(), nil
	}

	opts := license.TemplateOptions{
		PrefixLines: licensePrefixLines,
		SuffixLines: licenseSuffixLines,
	}
	if licenseBlockOpen != "" || licenseBlockClose != "" {
		opts.BlockOpen = licenseBlockOpen
		opts.BlockClose = licenseBlockClose
	} else {
		opts.CommentPrefix = licenseCommentPfx
	}
	return license.FromTemplate(template, opts)
}

// licenseGate selects the files and runs the license check.
func licenseGate(w io.Writer, expected license.Header, searchPaths, patterns, excludePaths []string) (int, error) {
	files, err := fileset.Select(searchPaths, patterns, excludePaths)
	if err != nil {
		return 0, err
	}
	_, code, err := license.Check(w, expected, files)
	return code, err
}
