package render

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// converter is shared and safe for concurrent use. Raw HTML embedded in
// Markdown is omitted by goldmark's default renderer, which keeps the
// escaping contract intact for rich-text fields.
var converter = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
)

// Markdown converts a Markdown string to an HTML fragment. Conversion is
// deterministic; on failure the escaped source text is returned so a bad
// field degrades instead of blanking the section.
func Markdown(src string) string {
	var buf bytes.Buffer
	if err := converter.Convert([]byte(src), &buf); err != nil {
		return "<p>" + Esc(src) + "</p>\n"
	}
	return buf.String()
}
