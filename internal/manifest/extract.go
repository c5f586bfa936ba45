package manifest

import "regexp"

// Extractor pulls a version string out of one manifest's text.
// It returns the captured version and whether the pattern matched.
type Extractor func(text string) (string, bool)

// Canonical source names used in reports.
const (
	BuildManifest   = "build-manifest"
	DocManifest     = "doc-manifest"
	PackageManifest = "package-manifest"
)

var (
	// project(<name> ... VERSION 2.5.1 ...) in the build manifest.
	buildVersionRe = regexp.MustCompile(`(?i)project\s*\([^)]*VERSION\s+(\d+(?:\.\d+)+)`)
	// PROJECT_NUMBER = 2.5.1 (optionally quoted) in the documentation manifest.
	docVersionRe = regexp.MustCompile(`(?m)^\s*PROJECT_NUMBER\s*=\s*"?(\d+(?:\.\d+)+)"?`)
	// version = "2.5.1" in the package manifest.
	packageVersionRe = regexp.MustCompile(`(?m)^\s*version\s*=\s*"(\d+(?:\.\d+)+)"`)
)

// ExtractBuildVersion extracts the VERSION argument of the project declaration.
func ExtractBuildVersion(text string) (string, bool) {
	return firstGroup(buildVersionRe, text)
}

// ExtractDocVersion extracts the PROJECT_NUMBER value.
func ExtractDocVersion(text string) (string, bool) {
	return firstGroup(docVersionRe, text)
}

// ExtractPackageVersion extracts the quoted version assignment.
func ExtractPackageVersion(text string) (string, bool) {
	return firstGroup(packageVersionRe, text)
}

func firstGroup(re *regexp.Regexp, text string) (string, bool) {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// Source binds a named manifest to its file path and extraction rule.
type Source struct {
	Name    string
	Path    string
	Extract Extractor
}

// Sources builds the standard extraction table for the three project manifests.
func Sources(buildPath, docPath, packagePath string) []Source {
	return []Source{
		{Name: BuildManifest, Path: buildPath, Extract: ExtractBuildVersion},
		{Name: DocManifest, Path: docPath, Extract: ExtractDocVersion},
		{Name: PackageManifest, Path: packagePath, Extract: ExtractPackageVersion},
	}
}
