package about

import (
	"fmt"
	"strings"

	"github.com/foliokit/folio/internal/document"
	"github.com/foliokit/folio/internal/render"
	"github.com/foliokit/folio/internal/theme"
)

type aboutRenderer struct{}

// New creates the about section renderer.
func New() render.Renderer {
	return aboutRenderer{}
}

func init() {
	if err := render.Register(New()); err != nil {
		panic(err)
	}
}

func (aboutRenderer) Kind() document.Kind {
	return document.KindAbout
}

func (aboutRenderer) Render(section document.Section, _ theme.Theme, device render.Device) (render.Fragment, error) {
	data := section.About
	if data == nil {
		data = &document.AboutSection{}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "<section id=\"about\" class=\"section section-about layout-%s\">\n", device)
	b.WriteString("  <div class=\"inner\">\n")
	fmt.Fprintf(&b, "    <h2 class=\"section-title\">%s</h2>\n", render.Esc(data.Title))
	if data.Body != "" {
		b.WriteString("    <div class=\"prose\">\n")
		b.WriteString(render.Markdown(data.Body))
		b.WriteString("    </div>\n")
	} else {
		b.WriteString("    <p class=\"empty-state\">Nothing here yet.</p>\n")
	}
	b.WriteString("  </div>\n")
	b.WriteString("</section>\n")

	return render.Fragment{
		Markup: b.String(),
		Styles: []string{"section", "prose"},
	}, nil
}
