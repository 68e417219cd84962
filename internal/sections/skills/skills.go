package skills

import (
	"fmt"
	"strings"

	"github.com/foliokit/folio/internal/document"
	"github.com/foliokit/folio/internal/render"
	"github.com/foliokit/folio/internal/theme"
)

const maxLevel = 5

type skillsRenderer struct{}

// New creates the skills section renderer.
func New() render.Renderer {
	return skillsRenderer{}
}

func init() {
	if err := render.Register(New()); err != nil {
		panic(err)
	}
}

func (skillsRenderer) Kind() document.Kind {
	return document.KindSkills
}

func (skillsRenderer) Render(section document.Section, _ theme.Theme, device render.Device) (render.Fragment, error) {
	data := section.Skills
	if data == nil {
		data = &document.SkillsSection{}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "<section id=\"skills\" class=\"section section-skills layout-%s\">\n", device)
	b.WriteString("  <div class=\"inner\">\n")
	fmt.Fprintf(&b, "    <h2 class=\"section-title\">%s</h2>\n", render.Esc(data.Title))

	if len(data.Items) == 0 {
		b.WriteString("    <p class=\"empty-state\">Nothing here yet.</p>\n")
	} else {
		b.WriteString("    <ul class=\"skill-list\">\n")
		for _, skill := range data.Items {
			b.WriteString("      <li class=\"skill\">\n")
			fmt.Fprintf(&b, "        <span class=\"skill-name\">%s</span>\n", render.Esc(skill.Name))
			if skill.Level > 0 {
				fmt.Fprintf(&b, "        <span class=\"skill-level\" aria-label=\"%d of %d\">%s</span>\n",
					clampLevel(skill.Level), maxLevel, levelDots(skill.Level))
			}
			b.WriteString("      </li>\n")
		}
		b.WriteString("    </ul>\n")
	}

	b.WriteString("  </div>\n")
	b.WriteString("</section>\n")

	return render.Fragment{
		Markup: b.String(),
		Styles: []string{"section", "skills"},
	}, nil
}

func clampLevel(level int) int {
	if level < 0 {
		return 0
	}
	if level > maxLevel {
		return maxLevel
	}
	return level
}

func levelDots(level int) string {
	filled := clampLevel(level)
	return strings.Repeat("●", filled) + strings.Repeat("○", maxLevel-filled)
}
