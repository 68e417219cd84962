package document

import (
	"bytes"
	"encoding/json"
	"os"

	folioerrors "github.com/foliokit/folio/pkg/errors"
)

// UnmarshalJSON customises section decoding to populate the kind-specific
// payload without tag conflicts. Unknown kinds keep their raw payload.
func (s *Section) UnmarshalJSON(data []byte) error {
	type baseSection struct {
		Kind    Kind  `json:"kind"`
		Enabled *bool `json:"enabled"`
	}

	var base baseSection
	if err := json.Unmarshal(data, &base); err != nil {
		return err
	}

	s.Kind = base.Kind
	if base.Enabled != nil {
		s.Enabled = *base.Enabled
	} else {
		s.Enabled = true
	}

	s.Hero = nil
	s.About = nil
	s.Projects = nil
	s.Skills = nil
	s.Contact = nil
	s.Navigation = nil
	s.Footer = nil
	s.raw = nil

	switch base.Kind {
	case KindHero:
		var hero HeroSection
		if err := json.Unmarshal(data, &hero); err != nil {
			return err
		}
		s.Hero = &hero
	case KindAbout:
		var about AboutSection
		if err := json.Unmarshal(data, &about); err != nil {
			return err
		}
		s.About = &about
	case KindProjects:
		var projects ProjectsSection
		if err := json.Unmarshal(data, &projects); err != nil {
			return err
		}
		s.Projects = &projects
	case KindSkills:
		var skills SkillsSection
		if err := json.Unmarshal(data, &skills); err != nil {
			return err
		}
		s.Skills = &skills
	case KindContact:
		var contact ContactSection
		if err := json.Unmarshal(data, &contact); err != nil {
			return err
		}
		s.Contact = &contact
	case KindNavigation:
		var nav NavigationSection
		if err := json.Unmarshal(data, &nav); err != nil {
			return err
		}
		s.Navigation = &nav
	case KindFooter:
		var footer FooterSection
		if err := json.Unmarshal(data, &footer); err != nil {
			return err
		}
		s.Footer = &footer
	default:
		s.raw = append(json.RawMessage(nil), data...)
	}

	return nil
}

// MarshalJSON re-assembles the envelope around the active payload. Unknown
// sections are re-emitted verbatim so saving never drops them.
func (s Section) MarshalJSON() ([]byte, error) {
	if s.raw != nil {
		return s.raw, nil
	}

	type envelope struct {
		Kind    Kind `json:"kind"`
		Enabled bool `json:"enabled"`
	}
	env := envelope{Kind: s.Kind, Enabled: s.Enabled}

	switch s.Kind {
	case KindHero:
		return json.Marshal(struct {
			envelope
			*HeroSection
		}{env, s.Hero})
	case KindAbout:
		return json.Marshal(struct {
			envelope
			*AboutSection
		}{env, s.About})
	case KindProjects:
		return json.Marshal(struct {
			envelope
			*ProjectsSection
		}{env, s.Projects})
	case KindSkills:
		return json.Marshal(struct {
			envelope
			*SkillsSection
		}{env, s.Skills})
	case KindContact:
		return json.Marshal(struct {
			envelope
			*ContactSection
		}{env, s.Contact})
	case KindNavigation:
		return json.Marshal(struct {
			envelope
			*NavigationSection
		}{env, s.Navigation})
	case KindFooter:
		return json.Marshal(struct {
			envelope
			*FooterSection
		}{env, s.Footer})
	}

	return json.Marshal(env)
}

// Parse decodes a portfolio document from JSON.
func Parse(data []byte) (*Document, error) {
	var doc Document
	decoder := json.NewDecoder(bytes.NewReader(data))
	if err := decoder.Decode(&doc); err != nil {
		return nil, folioerrors.NewParseError("", err)
	}
	return &doc, nil
}

// ParseFile decodes a portfolio document from a JSON file on disk.
func ParseFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, folioerrors.NewParseError(path, err)
	}

	doc, err := Parse(data)
	if err != nil {
		return nil, folioerrors.NewParseError(path, err)
	}
	return doc, nil
}

// MarshalPretty serialises the document as indented JSON for the raw
// document download. This is the document model itself, not a rendering
// output.
func MarshalPretty(doc Document) ([]byte, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
