package service

import (
	"regexp"
	"strings"
)

// No example repo in this corpus performs stylesheet minification (no
// tdewolff/minify or similar dependency appears anywhere in the pack), so
// --minify is implemented as a small regexp-based whitespace/comment
// stripper rather than reaching for a library that isn't grounded anywhere.
var (
	blockCommentPattern = regexp.MustCompile(`(?s)/\*.*?\*/`)
	leadingSpacePattern = regexp.MustCompile(`(?m)^[ \t]+`)
	blankLinePattern    = regexp.MustCompile(`\n{2,}`)
)

// MinifyText strips block comments, leading indentation, and blank lines
// from rendered stylesheet/report content. It is dialect-agnostic: every
// emit dialect's output is valid input, since none of them depend on
// indentation for meaning.
func MinifyText(content string) string {
	content = blockCommentPattern.ReplaceAllString(content, "")
	content = leadingSpacePattern.ReplaceAllString(content, "")
	content = blankLinePattern.ReplaceAllString(content, "\n")
	return strings.TrimSpace(content) + "\n"
}
