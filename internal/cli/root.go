package cli

import (
	"github.com/repogate-labs/repogate/internal/branding"
	"github.com/repogate-labs/repogate/internal/config"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string

	configPath string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` enforces project compliance invariants for CI pipelines:
license headers on every tracked file, agreeing version declarations across the
build, documentation, and package manifests, and canonical source formatting.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return config.Load(configPath)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Path to the project config file (default "+branding.ConfigFile()+" in the working directory)")
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}

// stringsSetting resolves a repeatable flag against its config key: an
// explicitly set flag wins, otherwise the configured (or default) value.
func stringsSetting(cmd *cobra.Command, flag string, flagValue []string, key string) []string {
	if cmd.Flags().Changed(flag) {
		return flagValue
	}
	return config.GetStrings(key)
}

// stringSetting resolves a single-valued flag against its config key.
func stringSetting(cmd *cobra.Command, flag, flagValue, key string) string {
	if cmd.Flags().Changed(flag) {
		return flagValue
	}
	return config.GetString(key)
}
