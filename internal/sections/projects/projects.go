package projects

import (
	"fmt"
	"strings"

	"github.com/foliokit/folio/internal/document"
	"github.com/foliokit/folio/internal/render"
	"github.com/foliokit/folio/internal/theme"
)

type projectsRenderer struct{}

// New creates the projects section renderer.
func New() render.Renderer {
	return projectsRenderer{}
}

func init() {
	if err := render.Register(New()); err != nil {
		panic(err)
	}
}

func (projectsRenderer) Kind() document.Kind {
	return document.KindProjects
}

// Render always emits the section header, even with zero projects: the
// user is mid-edit, so an empty list shows an empty state rather than a
// missing section.
func (projectsRenderer) Render(section document.Section, _ theme.Theme, device render.Device) (render.Fragment, error) {
	data := section.Projects
	if data == nil {
		data = &document.ProjectsSection{}
	}

	grid := "grid-wide"
	if device == render.DeviceNarrow {
		grid = "grid-narrow"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "<section id=\"projects\" class=\"section section-projects layout-%s\">\n", device)
	b.WriteString("  <div class=\"inner\">\n")
	fmt.Fprintf(&b, "    <h2 class=\"section-title\">%s</h2>\n", render.Esc(data.Title))

	if len(data.Items) == 0 {
		b.WriteString("    <p class=\"empty-state\">No projects yet.</p>\n")
	} else {
		fmt.Fprintf(&b, "    <div class=\"project-grid %s\">\n", grid)
		for _, item := range data.Items {
			writeProjectCard(&b, item)
		}
		b.WriteString("    </div>\n")
	}

	b.WriteString("  </div>\n")
	b.WriteString("</section>\n")

	return render.Fragment{
		Markup: b.String(),
		Styles: []string{"section", "projects", "prose"},
	}, nil
}

func writeProjectCard(b *strings.Builder, item document.Project) {
	b.WriteString("      <article class=\"project-card\">\n")
	fmt.Fprintf(b, "        <h3 class=\"project-title\">%s</h3>\n", render.Esc(item.Title))
	if item.Description != "" {
		b.WriteString("        <div class=\"prose\">\n")
		b.WriteString(render.Markdown(item.Description))
		b.WriteString("        </div>\n")
	}
	if len(item.Tags) > 0 {
		b.WriteString("        <ul class=\"tag-list\">\n")
		for _, tag := range item.Tags {
			fmt.Fprintf(b, "          <li class=\"tag\">%s</li>\n", render.Esc(tag))
		}
		b.WriteString("        </ul>\n")
	}
	if item.PreviewURL != "" {
		fmt.Fprintf(b, "        <a class=\"project-link\" href=\"%s\">View project</a>\n", render.SafeURL(item.PreviewURL))
	}
	b.WriteString("      </article>\n")
}
