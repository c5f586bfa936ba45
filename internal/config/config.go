package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/repogate-labs/repogate/internal/branding"
	"github.com/spf13/viper"
)

// Config keys. Defaults mirror the historical CI parameter sets.
const (
	KeyLicenseSearchPaths  = "license.search_paths"
	KeyLicensePatterns     = "license.file_patterns"
	KeyLicenseExcludePaths = "license.exclude_paths"
	KeyLicenseTemplate     = "license.template"

	KeyFormatSearchPaths  = "format.search_paths"
	KeyFormatPatterns     = "format.file_patterns"
	KeyFormatExcludePaths = "format.exclude_paths"
	KeyFormatFormatter    = "format.formatter"

	KeyVersionsBuild   = "versions.build"
	KeyVersionsDocs    = "versions.docs"
	KeyVersionsPackage = "versions.package"
)

var defaultPatterns = []string{"*.cpp", "*.hpp", "*.c", "*.h"}

func setDefaults() {
	viper.SetDefault(KeyLicenseSearchPaths, []string{"include"})
	viper.SetDefault(KeyLicensePatterns, defaultPatterns)
	viper.SetDefault(KeyLicenseExcludePaths, []string{})
	viper.SetDefault(KeyLicenseTemplate, "")

	viper.SetDefault(KeyFormatSearchPaths, []string{"include", "tests"})
	viper.SetDefault(KeyFormatPatterns, defaultPatterns)
	viper.SetDefault(KeyFormatExcludePaths, []string{"tests/external"})
	viper.SetDefault(KeyFormatFormatter, "clang-format-18")

	viper.SetDefault(KeyVersionsBuild, "CMakeLists.txt")
	viper.SetDefault(KeyVersionsDocs, "Doxyfile")
	viper.SetDefault(KeyVersionsPackage, "conanfile.py")
}

// Load initializes Viper from the project config file and environment.
// An empty path means the default file name in the working directory; a
// missing default file is not an error (builtin defaults apply). The file is
// schema-validated before Viper reads it, so a malformed config aborts the
// run instead of half-applying.
func Load(path string) error {
	viper.Reset()
	setDefaults()
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	required := path != ""
	if path == "" {
		path = branding.ConfigFile()
	}

	if _, err := os.Stat(path); err != nil {
		if required {
			return fmt.Errorf("config file %s: %w", path, err)
		}
		return nil
	}

	result, err := ValidateFile(path)
	if err != nil {
		return fmt.Errorf("validating config %s: %w", path, err)
	}
	if !result.Valid {
		var sb strings.Builder
		fmt.Fprintf(&sb, "config %s has %d issue(s):", path, len(result.Issues))
		for _, issue := range result.Issues {
			fmt.Fprintf(&sb, "\n  %s: %s", issue.Path, issue.Message)
		}
		return fmt.Errorf("%s", sb.String())
	}

	viper.SetConfigFile(path)
	viper.SetConfigType("yaml")
	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("reading config %s: %w", path, err)
	}
	return nil
}

// GetString returns a single-valued config entry.
func GetString(key string) string {
	return viper.GetString(key)
}

// GetStrings returns a list-valued config entry.
func GetStrings(key string) []string {
	return viper.GetStringSlice(key)
}
