package document

import (
	"encoding/json"
)

// Kind identifies a section variant. The set of kinds is closed; editors
// never invent new kinds at runtime.
type Kind string

const (
	KindNavigation Kind = "navigation"
	KindHero       Kind = "hero"
	KindAbout      Kind = "about"
	KindProjects   Kind = "projects"
	KindSkills     Kind = "skills"
	KindContact    Kind = "contact"
	KindFooter     Kind = "footer"
)

// ContentKinds lists the kinds that may appear in Document.Sections.
// Navigation and footer live on the document root and are dispatched as
// synthetic sections by the assembler.
var ContentKinds = []Kind{KindHero, KindAbout, KindProjects, KindSkills, KindContact}

// Document is the canonical, JSON-serialisable representation of a
// portfolio. Values are immutable by convention: every mutation helper
// returns a fresh copy (see mutate.go).
type Document struct {
	Settings   Settings   `json:"settings"`
	Navigation Navigation `json:"navigation"`
	Sections   []Section  `json:"sections" validate:"dive"`
	Footer     Footer     `json:"footer"`
}

// Settings holds document-wide options.
type Settings struct {
	Name  string `json:"name" validate:"max=120"`
	Theme string `json:"theme"`
}

// Navigation holds the ordered site navigation items.
type Navigation struct {
	Items []NavItem `json:"items" validate:"dive"`
}

// NavItem is a single navigation entry.
type NavItem struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Footer holds the site footer settings.
type Footer struct {
	Enabled   bool   `json:"enabled"`
	Copyright string `json:"copyright"`
}

// Section is a tagged variant: Kind selects which payload pointer is set.
// Sections with a kind this build does not know keep their raw payload so
// a later save does not drop them.
type Section struct {
	Kind    Kind `json:"kind"`
	Enabled bool `json:"enabled"`

	Hero       *HeroSection
	About      *AboutSection
	Projects   *ProjectsSection
	Skills     *SkillsSection
	Contact    *ContactSection
	Navigation *NavigationSection
	Footer     *FooterSection

	raw json.RawMessage
}

// Known reports whether the section kind is one this build understands.
func (s Section) Known() bool {
	return s.raw == nil
}

// HeroSection is the landing banner.
type HeroSection struct {
	Headline string `json:"headline"`
	Tagline  string `json:"tagline"`
	CTALabel string `json:"ctaLabel"`
	CTAURL   string `json:"ctaUrl"`
}

// AboutSection carries a Markdown body.
type AboutSection struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// ProjectsSection lists portfolio projects in display order.
type ProjectsSection struct {
	Title string    `json:"title"`
	Items []Project `json:"items" validate:"dive"`
}

// Project is a single portfolio entry. Tags are free-form labels in
// display order.
type Project struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	PreviewURL  string   `json:"previewUrl"`
}

// SkillsSection lists skills with an optional proficiency level.
type SkillsSection struct {
	Title string  `json:"title"`
	Items []Skill `json:"items" validate:"dive"`
}

// Skill is a single skill entry. Level runs 0 (unset) to 5.
type Skill struct {
	Name  string `json:"name"`
	Level int    `json:"level" validate:"min=0,max=5"`
}

// ContactSection holds contact details and social links.
type ContactSection struct {
	Title   string       `json:"title"`
	Email   string       `json:"email"`
	Socials []SocialLink `json:"socials" validate:"dive"`
}

// SocialLink is a labelled external profile link.
type SocialLink struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// NavigationSection is the synthetic payload the assembler builds from
// Document.Navigation so the navigation renderer shares the section
// renderer contract.
type NavigationSection struct {
	SiteName string    `json:"siteName"`
	Items    []NavItem `json:"items"`
}

// FooterSection is the synthetic payload built from Document.Footer.
type FooterSection struct {
	SiteName  string `json:"siteName"`
	Copyright string `json:"copyright"`
}

// Clone returns a deep copy of the document. Mutation helpers always
// operate on a clone so shared snapshots stay untouched.
func (d Document) Clone() Document {
	out := d

	out.Navigation.Items = append([]NavItem(nil), d.Navigation.Items...)

	out.Sections = make([]Section, len(d.Sections))
	for i, sec := range d.Sections {
		out.Sections[i] = sec.clone()
	}

	return out
}

func (s Section) clone() Section {
	out := s

	if s.Hero != nil {
		hero := *s.Hero
		out.Hero = &hero
	}
	if s.About != nil {
		about := *s.About
		out.About = &about
	}
	if s.Projects != nil {
		projects := *s.Projects
		projects.Items = make([]Project, len(s.Projects.Items))
		for i, p := range s.Projects.Items {
			projects.Items[i] = p
			projects.Items[i].Tags = append([]string(nil), p.Tags...)
		}
		out.Projects = &projects
	}
	if s.Skills != nil {
		skills := *s.Skills
		skills.Items = append([]Skill(nil), s.Skills.Items...)
		out.Skills = &skills
	}
	if s.Contact != nil {
		contact := *s.Contact
		contact.Socials = append([]SocialLink(nil), s.Contact.Socials...)
		out.Contact = &contact
	}
	if s.Navigation != nil {
		nav := *s.Navigation
		nav.Items = append([]NavItem(nil), s.Navigation.Items...)
		out.Navigation = &nav
	}
	if s.Footer != nil {
		footer := *s.Footer
		out.Footer = &footer
	}
	if s.raw != nil {
		out.raw = append(json.RawMessage(nil), s.raw...)
	}

	return out
}

// SectionIndex returns the position of the section with the given kind,
// or -1 when the document has no such section.
func (d Document) SectionIndex(kind Kind) int {
	for i, sec := range d.Sections {
		if sec.Kind == kind {
			return i
		}
	}
	return -1
}
