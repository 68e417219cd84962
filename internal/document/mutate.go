package document

import (
	"fmt"

	folioerrors "github.com/foliokit/folio/pkg/errors"
)

// Mutation helpers implement the copy-on-write discipline: every edit
// produces a new document value and the input is never modified. Index
// arguments must address an existing element; list indices stay
// contiguous after every operation.

// WithName returns a copy with the portfolio name replaced.
func (d Document) WithName(name string) Document {
	out := d.Clone()
	out.Settings.Name = name
	return out
}

// WithTheme returns a copy with the theme id replaced. The id is not
// checked here; the theme registry falls back to the default for ids it
// does not know.
func (d Document) WithTheme(id string) Document {
	out := d.Clone()
	out.Settings.Theme = id
	return out
}

// WithFooter returns a copy with the footer replaced.
func (d Document) WithFooter(footer Footer) Document {
	out := d.Clone()
	out.Footer = footer
	return out
}

// WithSectionEnabled returns a copy with the named section toggled.
func (d Document) WithSectionEnabled(kind Kind, enabled bool) (Document, error) {
	idx := d.SectionIndex(kind)
	if idx < 0 {
		return Document{}, folioerrors.NewValidationError("sections", fmt.Sprintf("no section with kind %q", kind), nil)
	}

	out := d.Clone()
	out.Sections[idx].Enabled = enabled
	return out, nil
}

// WithNavItemAdded returns a copy with the item appended to the navigation.
func (d Document) WithNavItemAdded(item NavItem) Document {
	out := d.Clone()
	out.Navigation.Items = append(out.Navigation.Items, item)
	return out
}

// WithNavItemRemoved returns a copy with the item at index i removed.
func (d Document) WithNavItemRemoved(i int) (Document, error) {
	if i < 0 || i >= len(d.Navigation.Items) {
		return Document{}, navIndexError(i, len(d.Navigation.Items))
	}

	out := d.Clone()
	out.Navigation.Items = append(out.Navigation.Items[:i], out.Navigation.Items[i+1:]...)
	return out, nil
}

// WithNavItemUpdated returns a copy with the item at index i replaced.
func (d Document) WithNavItemUpdated(i int, item NavItem) (Document, error) {
	if i < 0 || i >= len(d.Navigation.Items) {
		return Document{}, navIndexError(i, len(d.Navigation.Items))
	}

	out := d.Clone()
	out.Navigation.Items[i] = item
	return out, nil
}

// WithProjectAdded returns a copy with the project appended.
func (d Document) WithProjectAdded(p Project) (Document, error) {
	out := d.Clone()
	projects, err := out.projectsSection()
	if err != nil {
		return Document{}, err
	}

	projects.Items = append(projects.Items, p)
	return out, nil
}

// WithProjectRemoved returns a copy with the project at index i removed.
func (d Document) WithProjectRemoved(i int) (Document, error) {
	out := d.Clone()
	projects, err := out.projectsSection()
	if err != nil {
		return Document{}, err
	}
	if i < 0 || i >= len(projects.Items) {
		return Document{}, projectIndexError(i, len(projects.Items))
	}

	projects.Items = append(projects.Items[:i], projects.Items[i+1:]...)
	return out, nil
}

// WithProjectUpdated returns a copy with the project at index i replaced.
func (d Document) WithProjectUpdated(i int, p Project) (Document, error) {
	out := d.Clone()
	projects, err := out.projectsSection()
	if err != nil {
		return Document{}, err
	}
	if i < 0 || i >= len(projects.Items) {
		return Document{}, projectIndexError(i, len(projects.Items))
	}

	projects.Items[i] = p
	return out, nil
}

// WithProjectTagAdded returns a copy with the tag appended to project i.
func (d Document) WithProjectTagAdded(i int, tag string) (Document, error) {
	out := d.Clone()
	projects, err := out.projectsSection()
	if err != nil {
		return Document{}, err
	}
	if i < 0 || i >= len(projects.Items) {
		return Document{}, projectIndexError(i, len(projects.Items))
	}

	projects.Items[i].Tags = append(projects.Items[i].Tags, tag)
	return out, nil
}

// WithProjectTagRemoved returns a copy with tag j removed from project i.
func (d Document) WithProjectTagRemoved(i, j int) (Document, error) {
	out := d.Clone()
	projects, err := out.projectsSection()
	if err != nil {
		return Document{}, err
	}
	if i < 0 || i >= len(projects.Items) {
		return Document{}, projectIndexError(i, len(projects.Items))
	}

	tags := projects.Items[i].Tags
	if j < 0 || j >= len(tags) {
		return Document{}, folioerrors.NewValidationError(
			fmt.Sprintf("projects.items[%d].tags", i),
			fmt.Sprintf("index %d out of range (length %d)", j, len(tags)), nil)
	}

	projects.Items[i].Tags = append(tags[:j], tags[j+1:]...)
	return out, nil
}

// projectsSection returns a pointer into the receiver's projects payload.
// Callers must operate on a clone.
func (d *Document) projectsSection() (*ProjectsSection, error) {
	idx := d.SectionIndex(KindProjects)
	if idx < 0 || d.Sections[idx].Projects == nil {
		return nil, folioerrors.NewValidationError("sections", "document has no projects section", nil)
	}
	return d.Sections[idx].Projects, nil
}

func navIndexError(i, length int) error {
	return folioerrors.NewValidationError("navigation.items",
		fmt.Sprintf("index %d out of range (length %d)", i, length), nil)
}

func projectIndexError(i, length int) error {
	return folioerrors.NewValidationError("projects.items",
		fmt.Sprintf("index %d out of range (length %d)", i, length), nil)
}
