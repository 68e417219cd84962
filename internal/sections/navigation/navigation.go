package navigation

import (
	"fmt"
	"strings"

	"github.com/foliokit/folio/internal/document"
	"github.com/foliokit/folio/internal/render"
	"github.com/foliokit/folio/internal/theme"
)

type navRenderer struct{}

// New creates the navigation renderer. The assembler feeds it a synthetic
// section built from the document's top-level navigation.
func New() render.Renderer {
	return navRenderer{}
}

func init() {
	if err := render.Register(New()); err != nil {
		panic(err)
	}
}

func (navRenderer) Kind() document.Kind {
	return document.KindNavigation
}

func (navRenderer) Render(section document.Section, _ theme.Theme, device render.Device) (render.Fragment, error) {
	data := section.Navigation
	if data == nil {
		data = &document.NavigationSection{}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "<nav class=\"site-nav layout-%s\">\n", device)
	b.WriteString("  <div class=\"inner\">\n")
	fmt.Fprintf(&b, "    <span class=\"brand\">%s</span>\n", render.Esc(data.SiteName))
	if len(data.Items) > 0 {
		b.WriteString("    <ul class=\"nav-items\">\n")
		for _, item := range data.Items {
			fmt.Fprintf(&b, "      <li><a href=\"%s\">%s</a></li>\n", render.SafeURL(item.URL), render.Esc(item.Name))
		}
		b.WriteString("    </ul>\n")
	}
	b.WriteString("  </div>\n")
	b.WriteString("</nav>\n")

	return render.Fragment{
		Markup: b.String(),
		Styles: []string{"nav"},
	}, nil
}
