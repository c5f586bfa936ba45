package cli

import (
	"fmt"

	"github.com/repogate-labs/repogate/internal/config"
	"github.com/repogate-labs/repogate/internal/gate"
	"github.com/repogate-labs/repogate/internal/license"
	"github.com/spf13/cobra"
)

var checkModifiedOnly bool

func init() {
	checkCmd.Flags().BoolVarP(&checkModifiedOnly, "modified-files", "m", false, "Only format-check files modified since the last pushed commit")
	rootCmd.AddCommand(checkCmd)
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Run the license, versions, and format gates in sequence",
	Long: `Run all compliance gates using the project configuration: the license header
check, the version consistency check, and the format check (dry run). Every
gate runs even if an earlier one fails; the exit code is the first failing
gate's code.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		var codes []int

		expected := license.Builtin()
		if template := config.GetString(config.KeyLicenseTemplate); template != "" {
			var err error
			expected, err = license.FromTemplate(template, license.TemplateOptions{CommentPrefix: "// "})
			if err != nil {
				return err
			}
		}

		fmt.Fprintln(out, "== license ==")
		code, err := licenseGate(out, expected,
			config.GetStrings(config.KeyLicenseSearchPaths),
			config.GetStrings(config.KeyLicensePatterns),
			config.GetStrings(config.KeyLicenseExcludePaths),
		)
		if err != nil {
			return err
		}
		codes = append(codes, code)

		fmt.Fprintln(out, "== versions ==")
		code, err = versionsGate(out,
			config.GetString(config.KeyVersionsBuild),
			config.GetString(config.KeyVersionsDocs),
			config.GetString(config.KeyVersionsPackage),
			false,
		)
		if err != nil {
			return err
		}
		codes = append(codes, code)

		fmt.Fprintln(out, "== format ==")
		code, err = formatGate(cmd.Context(), out,
			config.GetStrings(config.KeyFormatSearchPaths),
			config.GetStrings(config.KeyFormatPatterns),
			config.GetStrings(config.KeyFormatExcludePaths),
			config.GetString(config.KeyFormatFormatter),
			checkModifiedOnly, true,
		)
		if err != nil {
			return err
		}
		codes = append(codes, code)

		return gate.Exit(gate.FirstNonOK(codes))
	},
}
