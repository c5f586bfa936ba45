package license

import (
	"fmt"
	"os"
	"strings"
)

// Header is the ordered sequence of lines a compliant file must start with.
// Line order is significant: comparison is positional.
type Header []string

// builtinHeader is the expected header when no template is configured.
var builtinHeader = Header{
	"// Copyright (c) 2024-2026 RepoGate Authors",
	"// This file is part of the RepoGate project (https://github.com/repogate-labs/repogate).",
	"// Licensed under the MIT License. See the LICENSE file in the project root for full license information.",
}

// Builtin returns a copy of the builtin expected header.
func Builtin() Header {
	h := make(Header, len(builtinHeader))
	copy(h, builtinHeader)
	return h
}

// TemplateOptions controls how a license template file is wrapped into a
// comment header. Either CommentPrefix (line comments) or BlockOpen/BlockClose
// (a comment block around the template lines) should be set, not both.
type TemplateOptions struct {
	CommentPrefix string   // prepended to every template line, e.g. "// "
	BlockOpen     string   // opening delimiter line, e.g. "/*"
	BlockClose    string   // closing delimiter line, e.g. "*/"
	PrefixLines   []string // extra lines before the wrapped template
	SuffixLines   []string // extra lines after the wrapped template
}

// FromTemplate builds the expected header from the contents of a license
// template file. Each stored line is stripped of surrounding whitespace so it
// compares cleanly against stripped file lines.
func FromTemplate(path string, opts TemplateOptions) (Header, error) {
	if opts.CommentPrefix != "" && opts.BlockOpen != "" {
		return nil, fmt.Errorf("license template: comment prefix and block delimiters are mutually exclusive")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading license template %s: %w", path, err)
	}

	var header Header
	header = append(header, opts.PrefixLines...)
	if opts.BlockOpen != "" {
		header = append(header, opts.BlockOpen)
	}
	for _, line := range splitLines(string(data)) {
		header = append(header, opts.CommentPrefix+line)
	}
	if opts.BlockClose != "" {
		header = append(header, opts.BlockClose)
	}
	header = append(header, opts.SuffixLines...)

	for i, line := range header {
		header[i] = strings.TrimSpace(line)
	}
	if len(header) == 0 {
		return nil, fmt.Errorf("license template %s produced an empty header", path)
	}
	return header, nil
}

// splitLines splits text into lines, dropping a trailing empty line left by a
// final newline but keeping interior blank lines.
func splitLines(text string) []string {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
