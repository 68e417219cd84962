package render

import (
	"html"
	"strings"
)

// Esc escapes text for placement inside HTML element content or quoted
// attribute values. Every user-supplied string passes through here (or
// SafeURL) before reaching a fragment: untrusted input must never alter
// document structure or execute script.
func Esc(s string) string {
	return html.EscapeString(s)
}

// SafeURL returns an escaped URL safe for href attributes. Schemes other
// than http, https and mailto are rejected; relative paths and fragment
// anchors pass through. Rejected values collapse to "#" so a hostile URL
// degrades to an inert link instead of breaking the document.
func SafeURL(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "#"
	}

	lower := strings.ToLower(trimmed)
	switch {
	case strings.HasPrefix(lower, "http://"),
		strings.HasPrefix(lower, "https://"),
		strings.HasPrefix(lower, "mailto:"):
		return Esc(trimmed)
	case strings.HasPrefix(trimmed, "/"),
		strings.HasPrefix(trimmed, "#"),
		strings.HasPrefix(trimmed, "./"):
		return Esc(trimmed)
	}

	// Anything with an explicit scheme we did not allow (javascript:,
	// data:, vbscript:, ...) is neutralised.
	if strings.Contains(trimmed, ":") {
		return "#"
	}

	return Esc(trimmed)
}
