package assemble

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/foliokit/folio/internal/document"
	"github.com/foliokit/folio/internal/export"
	"github.com/foliokit/folio/internal/logger"
	"github.com/foliokit/folio/internal/render"
	"github.com/foliokit/folio/internal/theme"

	_ "github.com/foliokit/folio/internal/sections/about"
	_ "github.com/foliokit/folio/internal/sections/contact"
	_ "github.com/foliokit/folio/internal/sections/footer"
	_ "github.com/foliokit/folio/internal/sections/hero"
	_ "github.com/foliokit/folio/internal/sections/navigation"
	_ "github.com/foliokit/folio/internal/sections/projects"
	_ "github.com/foliokit/folio/internal/sections/skills"
)

func newAssembler(t *testing.T) *Assembler {
	t.Helper()
	log, err := logger.New(logger.Options{Level: "error"})
	require.NoError(t, err)
	return New(log)
}

func TestAssemblePreviewIsDeterministic(t *testing.T) {
	t.Parallel()

	a := newAssembler(t)
	doc := document.Sample()

	first, err := a.AssemblePreview(doc, render.DeviceWide)
	require.NoError(t, err)
	second, err := a.AssemblePreview(doc, render.DeviceWide)
	require.NoError(t, err)

	require.Equal(t, first.HTML, second.HTML)
}

func TestAssemblePreviewCanonicalOrder(t *testing.T) {
	t.Parallel()

	a := newAssembler(t)
	preview, err := a.AssemblePreview(document.Sample(), render.DeviceWide)
	require.NoError(t, err)

	markers := []string{
		`<nav class="site-nav`,
		`id="hero"`,
		`id="about"`,
		`id="projects"`,
		`id="skills"`,
		`id="contact"`,
		`<footer class="site-footer`,
	}

	last := -1
	for _, marker := range markers {
		idx := strings.Index(preview.HTML, marker)
		require.Greater(t, idx, last, "marker %q out of order", marker)
		last = idx
	}
}

func TestHeroRendersFirstEvenWhenListedLater(t *testing.T) {
	t.Parallel()

	doc := document.Sample()
	idx := doc.SectionIndex(document.KindHero)
	hero := doc.Sections[idx]
	doc.Sections = append(doc.Sections[:idx], doc.Sections[idx+1:]...)
	doc.Sections = append(doc.Sections, hero)

	a := newAssembler(t)
	preview, err := a.AssemblePreview(doc, render.DeviceWide)
	require.NoError(t, err)

	require.Less(t, strings.Index(preview.HTML, `id="hero"`), strings.Index(preview.HTML, `id="about"`))
}

func TestDisabledSectionIsOmittedEverywhere(t *testing.T) {
	t.Parallel()

	doc, err := document.Sample().WithSectionEnabled(document.KindSkills, false)
	require.NoError(t, err)

	a := newAssembler(t)

	preview, err := a.AssemblePreview(doc, render.DeviceWide)
	require.NoError(t, err)
	require.NotContains(t, preview.HTML, `id="skills"`)

	tree, _, err := a.AssembleExport(doc)
	require.NoError(t, err)
	index, ok := tree.Lookup(export.IndexPath)
	require.True(t, ok)
	require.NotContains(t, string(index), `id="skills"`)
}

func TestToggleRestoresExactRendering(t *testing.T) {
	t.Parallel()

	a := newAssembler(t)
	original := document.Sample()

	before, err := a.AssemblePreview(original, render.DeviceWide)
	require.NoError(t, err)

	disabled, err := original.WithSectionEnabled(document.KindProjects, false)
	require.NoError(t, err)
	reenabled, err := disabled.WithSectionEnabled(document.KindProjects, true)
	require.NoError(t, err)

	after, err := a.AssemblePreview(reenabled, render.DeviceWide)
	require.NoError(t, err)
	require.Equal(t, before.HTML, after.HTML)
}

func TestUnknownThemeFallsBackWithWarning(t *testing.T) {
	t.Parallel()

	a := newAssembler(t)
	doc := document.Sample().WithTheme("nonexistent-theme-id")

	preview, err := a.AssemblePreview(doc, render.DeviceWide)
	require.NoError(t, err)
	require.Contains(t, preview.HTML, theme.Default().Tokens.Accent)

	found := false
	for _, w := range preview.Warnings {
		if w.Field == "settings.theme" {
			found = true
			require.Contains(t, w.Message, "nonexistent-theme-id")
		}
	}
	require.True(t, found, "expected a settings.theme warning")
}

func TestUnknownSectionKindIsSkippedWithWarning(t *testing.T) {
	t.Parallel()

	raw := `{
  "settings": {"name": "Jo", "theme": "slate"},
  "sections": [
    {"kind": "hero", "enabled": true, "headline": "Jo"},
    {"kind": "guestbook", "enabled": true, "entries": 3},
    {"kind": "projects", "enabled": true, "title": "Work", "items": []}
  ],
  "footer": {"enabled": false}
}`
	doc, err := document.Parse([]byte(raw))
	require.NoError(t, err)

	a := newAssembler(t)
	preview, err := a.AssemblePreview(*doc, render.DeviceWide)
	require.NoError(t, err)

	require.Contains(t, preview.HTML, `id="hero"`)
	require.Contains(t, preview.HTML, `id="projects"`)
	require.NotContains(t, preview.HTML, "guestbook")

	found := false
	for _, w := range preview.Warnings {
		if strings.Contains(w.Message, "guestbook") {
			found = true
		}
	}
	require.True(t, found, "expected a skipped-section warning")
}

func TestEmptyProjectsStillRendersHeader(t *testing.T) {
	t.Parallel()

	doc := document.Sample()
	idx := doc.SectionIndex(document.KindProjects)
	doc.Sections[idx].Projects.Items = []document.Project{}

	a := newAssembler(t)
	preview, err := a.AssemblePreview(doc, render.DeviceWide)
	require.NoError(t, err)

	require.Contains(t, preview.HTML, `id="projects"`)
	require.Contains(t, preview.HTML, "No projects yet.")
}

func TestScriptInTitleNeverExecutes(t *testing.T) {
	t.Parallel()

	doc, err := document.Sample().WithProjectAdded(document.Project{
		Title: "<script>alert('pwned')</script>",
	})
	require.NoError(t, err)

	a := newAssembler(t)
	preview, err := a.AssemblePreview(doc, render.DeviceWide)
	require.NoError(t, err)

	require.NotContains(t, preview.HTML, "<script>")
	require.Contains(t, preview.HTML, "&lt;script&gt;alert(&#39;pwned&#39;)&lt;/script&gt;")
}

func TestExportMatchesPreviewBody(t *testing.T) {
	t.Parallel()

	a := newAssembler(t)
	doc := document.Sample()

	preview, err := a.AssemblePreview(doc, render.DeviceWide)
	require.NoError(t, err)

	tree, _, err := a.AssembleExport(doc)
	require.NoError(t, err)
	require.Equal(t, 2, tree.Len())

	index, ok := tree.Lookup(export.IndexPath)
	require.True(t, ok)
	css, ok := tree.Lookup(StylesheetPath)
	require.True(t, ok)

	require.Equal(t, extractBody(t, preview.HTML), extractBody(t, string(index)))
	require.Contains(t, preview.HTML, string(css))
	require.Contains(t, string(index), `<link rel="stylesheet" href="styles.css">`)
}

func TestExportCarriesNoScript(t *testing.T) {
	t.Parallel()

	a := newAssembler(t)
	tree, _, err := a.AssembleExport(document.Sample())
	require.NoError(t, err)

	index, ok := tree.Lookup(export.IndexPath)
	require.True(t, ok)
	require.NotContains(t, string(index), "<script")
}

func extractBody(t *testing.T, html string) string {
	t.Helper()
	start := strings.Index(html, "<body>")
	end := strings.Index(html, "</body>")
	require.Greater(t, start, -1)
	require.Greater(t, end, start)
	return html[start:end]
}
