// Package sanitize strips active content from free-text user input.
// Review text is cleaned on write and HTML-encoded on read, so stored
// values are plain text and rendered values are inert.
package sanitize

import (
	"html"
	"regexp"
	"strings"
)

var (
	scriptBlockRe  = regexp.MustCompile(`(?is)<script[^>]*>.*?</script>`)
	htmlTagRe      = regexp.MustCompile(`(?s)<[^>]+>`)
	eventHandlerRe = regexp.MustCompile(`(?i)\bon\w+\s*=\s*("[^"]*"|'[^']*'|[^\s>]+)`)
	scriptURLRe    = regexp.MustCompile(`(?i)(javascript|vbscript|data)\s*:`)
)

// Clean removes script blocks, markup, inline event handlers and
// script-scheme URLs from s, in that order.
func Clean(s string) string {
	if s == "" {
		return s
	}
	s = scriptBlockRe.ReplaceAllString(s, "")
	s = eventHandlerRe.ReplaceAllString(s, "")
	s = htmlTagRe.ReplaceAllString(s, "")
	s = scriptURLRe.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

// Encode escapes s for safe embedding in HTML output.
func Encode(s string) string {
	return html.EscapeString(s)
}
