package cli

import (
	"fmt"
	"io"

	"github.com/repogate-labs/repogate/internal/config"
	"github.com/repogate-labs/repogate/internal/gate"
	"github.com/repogate-labs/repogate/internal/manifest"
	"github.com/spf13/cobra"
)

var (
	versionsBuild   string
	versionsDocs    string
	versionsPackage string
	versionsStrict  bool
)

func init() {
	f := versionsCmd.Flags()
	f.StringVar(&versionsBuild, "build", "", "Path to the build manifest")
	f.StringVar(&versionsDocs, "docs", "", "Path to the documentation manifest")
	f.StringVar(&versionsPackage, "package", "", "Path to the package manifest")
	f.BoolVar(&versionsStrict, "strict", false, "Require each declared version to be valid semver")
	rootCmd.AddCommand(versionsCmd)
}

var versionsCmd = &cobra.Command{
	Use:   "versions",
	Short: "Check that all declared project versions agree",
	Long: `Extract the declared project version from the build, documentation, and
package manifests and verify the values are identical. Comparison is exact
string equality. On success the agreed version is printed to stdout for shell
capture; on mismatch every source/value pair is reported.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		code, err := versionsGate(cmd.OutOrStdout(),
			stringSetting(cmd, "build", versionsBuild, config.KeyVersionsBuild),
			stringSetting(cmd, "docs", versionsDocs, config.KeyVersionsDocs),
			stringSetting(cmd, "package", versionsPackage, config.KeyVersionsPackage),
			versionsStrict,
		)
		if err != nil {
			return err
		}
		return gate.Exit(code)
	},
}

// versionsGate runs the consistency check and prints the agreed version on
// success.
func versionsGate(w io.Writer, buildPath, docsPath, packagePath string, strict bool) (int, error) {
	sources := manifest.Sources(buildPath, docsPath, packagePath)
	versions, ok, err := manifest.CheckConsistency(w, sources, strict)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 1, nil
	}

	fmt.Fprintln(w, versions[manifest.BuildManifest])
	return 0, nil
}
