package hero

import (
	"fmt"
	"strings"

	"github.com/foliokit/folio/internal/document"
	"github.com/foliokit/folio/internal/render"
	"github.com/foliokit/folio/internal/theme"
)

type heroRenderer struct{}

// New creates the hero section renderer.
func New() render.Renderer {
	return heroRenderer{}
}

func init() {
	if err := render.Register(New()); err != nil {
		panic(err)
	}
}

func (heroRenderer) Kind() document.Kind {
	return document.KindHero
}

func (heroRenderer) Render(section document.Section, _ theme.Theme, device render.Device) (render.Fragment, error) {
	data := section.Hero
	if data == nil {
		data = &document.HeroSection{}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "<header id=\"hero\" class=\"section section-hero layout-%s\">\n", device)
	b.WriteString("  <div class=\"inner\">\n")
	fmt.Fprintf(&b, "    <h1 class=\"hero-headline\">%s</h1>\n", render.Esc(data.Headline))
	if data.Tagline != "" {
		fmt.Fprintf(&b, "    <p class=\"hero-tagline\">%s</p>\n", render.Esc(data.Tagline))
	}
	if data.CTALabel != "" {
		fmt.Fprintf(&b, "    <a class=\"cta\" href=\"%s\">%s</a>\n", render.SafeURL(data.CTAURL), render.Esc(data.CTALabel))
	}
	b.WriteString("  </div>\n")
	b.WriteString("</header>\n")

	return render.Fragment{
		Markup: b.String(),
		Styles: []string{"hero"},
	}, nil
}
