package document

import (
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Warning records a recovered per-field problem. Normalisation never
// fails: a degraded document beats no document.
type Warning struct {
	Field   string
	Message string
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %s", w.Field, w.Message)
}

var titleCaser = cases.Title(language.English)

// Normalize returns a copy of the document with missing or malformed
// fields replaced by defaults, plus the list of substitutions made.
// Renderers only ever see normalised documents.
func Normalize(doc Document) (Document, []Warning) {
	out := doc.Clone()
	var warnings []Warning

	warn := func(field, message string) {
		warnings = append(warnings, Warning{Field: field, Message: message})
	}

	if out.Settings.Name == "" {
		out.Settings.Name = "Untitled Portfolio"
		warn("settings.name", "empty, using default")
	}

	for i := range out.Navigation.Items {
		item := &out.Navigation.Items[i]
		if item.URL == "" {
			item.URL = "#"
			warn(fmt.Sprintf("navigation.items[%d].url", i), "empty, using \"#\"")
		}
		if item.Name == "" {
			item.Name = item.URL
			warn(fmt.Sprintf("navigation.items[%d].name", i), "empty, using url")
		}
	}

	for i := range out.Sections {
		sec := &out.Sections[i]
		field := fmt.Sprintf("sections[%d]", i)

		switch sec.Kind {
		case KindHero:
			if sec.Hero == nil {
				sec.Hero = &HeroSection{}
				warn(field, "missing hero payload, using empty")
			}
			if sec.Hero.Headline == "" {
				sec.Hero.Headline = out.Settings.Name
				warn(field+".headline", "empty, using portfolio name")
			}
		case KindAbout:
			if sec.About == nil {
				sec.About = &AboutSection{}
				warn(field, "missing about payload, using empty")
			}
			if sec.About.Title == "" {
				sec.About.Title = kindTitle(sec.Kind)
			}
		case KindProjects:
			if sec.Projects == nil {
				sec.Projects = &ProjectsSection{}
				warn(field, "missing projects payload, using empty")
			}
			if sec.Projects.Title == "" {
				sec.Projects.Title = kindTitle(sec.Kind)
			}
			if sec.Projects.Items == nil {
				sec.Projects.Items = []Project{}
			}
			for j := range sec.Projects.Items {
				p := &sec.Projects.Items[j]
				if p.Title == "" {
					p.Title = "Untitled Project"
					warn(fmt.Sprintf("%s.items[%d].title", field, j), "empty, using default")
				}
				if p.Tags == nil {
					p.Tags = []string{}
				}
			}
		case KindSkills:
			if sec.Skills == nil {
				sec.Skills = &SkillsSection{}
				warn(field, "missing skills payload, using empty")
			}
			if sec.Skills.Title == "" {
				sec.Skills.Title = kindTitle(sec.Kind)
			}
			for j := range sec.Skills.Items {
				s := &sec.Skills.Items[j]
				if s.Level < 0 {
					s.Level = 0
					warn(fmt.Sprintf("%s.items[%d].level", field, j), "below 0, clamped")
				}
				if s.Level > 5 {
					s.Level = 5
					warn(fmt.Sprintf("%s.items[%d].level", field, j), "above 5, clamped")
				}
			}
		case KindContact:
			if sec.Contact == nil {
				sec.Contact = &ContactSection{}
				warn(field, "missing contact payload, using empty")
			}
			if sec.Contact.Title == "" {
				sec.Contact.Title = kindTitle(sec.Kind)
			}
		}
	}

	if out.Footer.Enabled && out.Footer.Copyright == "" {
		out.Footer.Copyright = "© " + out.Settings.Name
		warn("footer.copyright", "empty, derived from portfolio name")
	}

	return out, warnings
}

// kindTitle derives a display title from a section kind.
func kindTitle(kind Kind) string {
	return titleCaser.String(string(kind))
}
