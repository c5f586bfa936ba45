package cli

import (
	"github.com/repogate-labs/repogate/internal/docs"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(postprocessDocsCmd)
}

var postprocessDocsCmd = &cobra.Command{
	Use:   "postprocess-docs <directory>",
	Short: "Rewrite links and callouts in generated documentation HTML",
	Long: `Walk the generated documentation tree and rewrite Markdown cross-page links
to the page names the generator produced, restyling callout markers along the
way. Files are rewritten in place; unchanged files are left untouched.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return docs.Process(cmd.OutOrStdout(), args[0])
	},
}
