package assemble

import (
	"fmt"
	"strings"

	"github.com/foliokit/folio/internal/render"
)

// previewDocument wraps the rendered body in a self-contained HTML shell
// that inlines the stylesheet. The result is injected into a sandboxed
// rendering surface; it carries no script of its own.
func previewDocument(title, css, body string) string {
	styleTag := "<style>\n" + css + "</style>"
	return documentShell(title, styleTag, body)
}

// exportDocument wraps the same body for the export tree, linking the
// stylesheet instead of inlining it. Body and head are otherwise
// identical to the preview shell; any other divergence is a defect.
func exportDocument(title, body string) string {
	styleTag := fmt.Sprintf("<link rel=\"stylesheet\" href=\"%s\">", StylesheetPath)
	return documentShell(title, styleTag, body)
}

func documentShell(title, styleTag, body string) string {
	var b strings.Builder
	b.WriteString("<!doctype html>\n")
	b.WriteString("<html lang=\"en\">\n")
	b.WriteString("<head>\n")
	b.WriteString("<meta charset=\"utf-8\">\n")
	b.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">\n")
	fmt.Fprintf(&b, "<title>%s</title>\n", render.Esc(title))
	b.WriteString(styleTag)
	b.WriteString("\n</head>\n")
	b.WriteString("<body>\n")
	b.WriteString(body)
	b.WriteString("</body>\n")
	b.WriteString("</html>\n")
	return b.String()
}
