package docs

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

var (
	mdHrefRe   = regexp.MustCompile(`href="([^"]+\.md(?:#[^"]*)?)"`)
	calloutRe  = regexp.MustCompile(`<p>\[!(NOTE|TIP|IMPORTANT|WARNING|CAUTION)\]`)
	calloutCSS = map[string]string{
		"NOTE":      "Note",
		"TIP":       "Tip",
		"IMPORTANT": "Important",
		"WARNING":   "Warning",
		"CAUTION":   "Caution",
	}
)

// EncodeMarkdownLink converts a Markdown file path into the page name Doxygen
// generates for it: the ".md" suffix is dropped, underscores are doubled,
// path separators become "_2", and the result gets an "md_" prefix and an
// ".html" suffix. A fragment anchor is preserved. Non-Markdown paths are
// returned unchanged.
func EncodeMarkdownLink(link string) string {
	path, anchor := link, ""
	if i := strings.Index(link, "#"); i >= 0 {
		path, anchor = link[:i], link[i:]
	}

	path = strings.TrimPrefix(path, "/")
	if !strings.HasSuffix(path, ".md") {
		return link
	}
	path = strings.TrimSuffix(path, ".md")

	parts := strings.Split(path, "/")
	for i, part := range parts {
		parts[i] = strings.ReplaceAll(part, "_", "__")
	}

	return "md_" + strings.Join(parts, "_2") + ".html" + anchor
}

// RewriteMarkdownRefs rewrites every href pointing at a Markdown file to the
// corresponding generated HTML page.
func RewriteMarkdownRefs(content string) string {
	return mdHrefRe.ReplaceAllStringFunc(content, func(match string) string {
		link := mdHrefRe.FindStringSubmatch(match)[1]
		return fmt.Sprintf("href=%q", EncodeMarkdownLink(link))
	})
}

// RewriteCallouts restyles GitHub-flavored callout markers ([!NOTE] etc.)
// that Doxygen passes through verbatim inside blockquotes.
func RewriteCallouts(content string) string {
	return calloutRe.ReplaceAllStringFunc(content, func(match string) string {
		kind := calloutRe.FindStringSubmatch(match)[1]
		label := calloutCSS[kind]
		class := "callout callout-" + strings.ToLower(kind)
		return fmt.Sprintf(`<p class=%q><strong>%s:</strong>`, class, label)
	})
}

// Process rewrites every .html file under root in place, reporting a summary
// to w. Files whose content is unaffected are not rewritten on disk.
func Process(w io.Writer, root string) error {
	if _, err := os.Stat(root); err != nil {
		return fmt.Errorf("documentation directory %s: %w", root, err)
	}

	processed, changed := 0, 0
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".html") {
			return nil
		}

		processed++
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}

		content := string(data)
		rewritten := RewriteCallouts(RewriteMarkdownRefs(content))
		if rewritten == content {
			return nil
		}

		if err := os.WriteFile(path, []byte(rewritten), 0644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		changed++
		return nil
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Processed %d HTML files (%d rewritten)\n", processed, changed)
	return nil
}
