package contact

import (
	"fmt"
	"strings"

	"github.com/foliokit/folio/internal/document"
	"github.com/foliokit/folio/internal/render"
	"github.com/foliokit/folio/internal/theme"
)

type contactRenderer struct{}

// New creates the contact section renderer.
func New() render.Renderer {
	return contactRenderer{}
}

func init() {
	if err := render.Register(New()); err != nil {
		panic(err)
	}
}

func (contactRenderer) Kind() document.Kind {
	return document.KindContact
}

func (contactRenderer) Render(section document.Section, _ theme.Theme, device render.Device) (render.Fragment, error) {
	data := section.Contact
	if data == nil {
		data = &document.ContactSection{}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "<section id=\"contact\" class=\"section section-contact layout-%s\">\n", device)
	b.WriteString("  <div class=\"inner\">\n")
	fmt.Fprintf(&b, "    <h2 class=\"section-title\">%s</h2>\n", render.Esc(data.Title))

	hasContent := data.Email != "" || len(data.Socials) > 0
	if !hasContent {
		b.WriteString("    <p class=\"empty-state\">Nothing here yet.</p>\n")
	}

	if data.Email != "" {
		fmt.Fprintf(&b, "    <p class=\"contact-email\"><a href=\"%s\">%s</a></p>\n",
			render.SafeURL("mailto:"+data.Email), render.Esc(data.Email))
	}

	if len(data.Socials) > 0 {
		b.WriteString("    <ul class=\"social-list\">\n")
		for _, social := range data.Socials {
			fmt.Fprintf(&b, "      <li><a href=\"%s\">%s</a></li>\n", render.SafeURL(social.URL), render.Esc(social.Label))
		}
		b.WriteString("    </ul>\n")
	}

	b.WriteString("  </div>\n")
	b.WriteString("</section>\n")

	return render.Fragment{
		Markup: b.String(),
		Styles: []string{"section", "contact"},
	}, nil
}
