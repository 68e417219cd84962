package footer

import (
	"fmt"
	"strings"

	"github.com/foliokit/folio/internal/document"
	"github.com/foliokit/folio/internal/render"
	"github.com/foliokit/folio/internal/theme"
)

type footerRenderer struct{}

// New creates the footer renderer. The assembler feeds it a synthetic
// section built from the document's top-level footer.
func New() render.Renderer {
	return footerRenderer{}
}

func init() {
	if err := render.Register(New()); err != nil {
		panic(err)
	}
}

func (footerRenderer) Kind() document.Kind {
	return document.KindFooter
}

func (footerRenderer) Render(section document.Section, _ theme.Theme, device render.Device) (render.Fragment, error) {
	data := section.Footer
	if data == nil {
		data = &document.FooterSection{}
	}

	copyright := data.Copyright
	if copyright == "" {
		copyright = data.SiteName
	}

	var b strings.Builder
	fmt.Fprintf(&b, "<footer class=\"site-footer layout-%s\">\n", device)
	b.WriteString("  <div class=\"inner\">\n")
	fmt.Fprintf(&b, "    <p>%s</p>\n", render.Esc(copyright))
	b.WriteString("  </div>\n")
	b.WriteString("</footer>\n")

	return render.Fragment{
		Markup: b.String(),
		Styles: []string{"footer"},
	}, nil
}
