package cli

import (
	"fmt"

	"github.com/repogate-labs/repogate/internal/branding"
	"github.com/repogate-labs/repogate/internal/config"
	"github.com/spf13/cobra"
)

func init() {
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configValidateCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect the project configuration",
	Long:  `Read and validate the project configuration stored in ` + branding.ConfigFile() + `.`,
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print the effective value of a configuration key",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), config.GetString(args[0]))
		return nil
	},
}

var configValidateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Validate a configuration file against the schema",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := config.ValidateFile(args[0])
		if err != nil {
			return err
		}
		if result.Valid {
			fmt.Fprintf(cmd.OutOrStdout(), "%s is valid\n", args[0])
			return nil
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s has %d issue(s):\n", args[0], len(result.Issues))
		for _, issue := range result.Issues {
			fmt.Fprintf(cmd.OutOrStdout(), "  %s: %s\n", issue.Path, issue.Message)
		}
		return fmt.Errorf("config %s has %d validation issue(s)", args[0], len(result.Issues))
	},
}
