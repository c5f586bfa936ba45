// Package docs postprocesses Doxygen-generated HTML. Doxygen mangles Markdown
// page names into its own scheme and leaves GitHub-style callout markers as
// plain blockquote text; this package rewrites cross-page Markdown links to
// the mangled targets and restyles callout markers into labeled admonitions.
package docs
