package assemble

import (
	"fmt"
	"strings"

	"github.com/foliokit/folio/internal/document"
	"github.com/foliokit/folio/internal/export"
	"github.com/foliokit/folio/internal/logger"
	"github.com/foliokit/folio/internal/render"
	"github.com/foliokit/folio/internal/theme"
)

// Assembler orchestrates section renderers into either a single preview
// HTML document or an export source tree. Both paths share the same
// fragments: what you see in the preview is exactly what gets exported.
type Assembler struct {
	log *logger.Logger
}

// New creates an Assembler.
func New(log *logger.Logger) *Assembler {
	return &Assembler{log: log.WithComponent("assembler")}
}

// Preview is the result of assembling a document for the live preview.
type Preview struct {
	HTML     string
	Warnings []document.Warning
}

// AssemblePreview renders the document into one self-contained HTML
// string. Deterministic: identical (document, device) inputs yield
// byte-identical output.
func (a *Assembler) AssemblePreview(doc document.Document, device render.Device) (Preview, error) {
	body, css, title, warnings := a.assemble(doc, device)
	return Preview{
		HTML:     previewDocument(title, css, body),
		Warnings: warnings,
	}, nil
}

// AssembleExport renders the document into a static site source tree.
// The tree reproduces the wide-device preview exactly; the stylesheet
// moves to its own file but the body markup is shared.
func (a *Assembler) AssembleExport(doc document.Document) (*export.Tree, []document.Warning, error) {
	body, css, title, warnings := a.assemble(doc, render.DeviceWide)

	tree := export.NewTree()
	if err := tree.Add(export.IndexPath, []byte(exportDocument(title, body))); err != nil {
		return nil, nil, err
	}
	if err := tree.Add(StylesheetPath, []byte(css)); err != nil {
		return nil, nil, err
	}

	return tree, warnings, nil
}

// assemble runs the shared pipeline: normalise, resolve theme, dispatch
// renderers over the canonical section order, collect fragments and
// style dependencies.
func (a *Assembler) assemble(doc document.Document, device render.Device) (body, css, title string, warnings []document.Warning) {
	normalized, warnings := document.Normalize(doc)

	th, known := theme.Resolve(normalized.Settings.Theme)
	if !known {
		warnings = append(warnings, document.Warning{
			Field:   "settings.theme",
			Message: fmt.Sprintf("unknown theme %q, falling back to %q", normalized.Settings.Theme, th.ID),
		})
		a.log.WithFields(map[string]any{"theme": normalized.Settings.Theme, "fallback": th.ID}).
			Warn("unknown theme, using default")
	}

	var markup strings.Builder
	var deps []string

	for _, sec := range canonicalOrder(normalized) {
		if !sec.Enabled {
			continue
		}

		renderer, err := render.Get(sec.Kind)
		if err != nil {
			warnings = append(warnings, document.Warning{
				Field:   "sections",
				Message: fmt.Sprintf("unknown section kind %q, skipped", sec.Kind),
			})
			a.log.WithFields(map[string]any{"kind": string(sec.Kind)}).Warn("no renderer for section kind, skipping")
			continue
		}

		fragment, err := renderer.Render(sec, th, device)
		if err != nil {
			// Partial rendering beats a blank preview: drop the section
			// and keep going.
			warnings = append(warnings, document.Warning{
				Field:   "sections",
				Message: fmt.Sprintf("section %q failed to render, skipped", sec.Kind),
			})
			a.log.Error(err, "section renderer failed, skipping")
			continue
		}

		markup.WriteString(fragment.Markup)
		deps = append(deps, fragment.Styles...)
	}

	return markup.String(), Stylesheet(th, deps), normalized.Settings.Name, warnings
}

// canonicalOrder fixes the output order: navigation, hero, the remaining
// content sections in document order, footer. Navigation and footer are
// lifted from the document root into synthetic sections so they share
// the renderer contract.
func canonicalOrder(doc document.Document) []document.Section {
	ordered := make([]document.Section, 0, len(doc.Sections)+2)

	ordered = append(ordered, document.Section{
		Kind:    document.KindNavigation,
		Enabled: true,
		Navigation: &document.NavigationSection{
			SiteName: doc.Settings.Name,
			Items:    doc.Navigation.Items,
		},
	})

	if idx := doc.SectionIndex(document.KindHero); idx >= 0 {
		ordered = append(ordered, doc.Sections[idx])
	}
	for _, sec := range doc.Sections {
		if sec.Kind == document.KindHero {
			continue
		}
		ordered = append(ordered, sec)
	}

	ordered = append(ordered, document.Section{
		Kind:    document.KindFooter,
		Enabled: doc.Footer.Enabled,
		Footer: &document.FooterSection{
			SiteName:  doc.Settings.Name,
			Copyright: doc.Footer.Copyright,
		},
	})

	return ordered
}
