package projects

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/foliokit/folio/internal/document"
	"github.com/foliokit/folio/internal/render"
	"github.com/foliokit/folio/internal/theme"
)

func projectsSection(data *document.ProjectsSection) document.Section {
	return document.Section{Kind: document.KindProjects, Enabled: true, Projects: data}
}

func TestRender(t *testing.T) {
	t.Parallel()

	fragment, err := New().Render(projectsSection(&document.ProjectsSection{
		Title: "Work",
		Items: []document.Project{
			{
				Title:       "driftwatch",
				Description: "Watches for *drift*.",
				Tags:        []string{"go", "cli"},
				PreviewURL:  "https://example.com/driftwatch",
			},
		},
	}), theme.Default(), render.DeviceWide)

	require.NoError(t, err)
	require.Contains(t, fragment.Markup, `<h2 class="section-title">Work</h2>`)
	require.Contains(t, fragment.Markup, `<h3 class="project-title">driftwatch</h3>`)
	require.Contains(t, fragment.Markup, "<em>drift</em>")
	require.Contains(t, fragment.Markup, `<li class="tag">go</li>`)
	require.Contains(t, fragment.Markup, `href="https://example.com/driftwatch"`)
	require.Contains(t, fragment.Markup, "grid-wide")
	require.Equal(t, []string{"section", "projects", "prose"}, fragment.Styles)
}

func TestRenderEmptyItemsShowsEmptyState(t *testing.T) {
	t.Parallel()

	fragment, err := New().Render(projectsSection(&document.ProjectsSection{
		Title: "Projects",
		Items: []document.Project{},
	}), theme.Default(), render.DeviceWide)

	require.NoError(t, err)
	require.Contains(t, fragment.Markup, `<h2 class="section-title">Projects</h2>`)
	require.Contains(t, fragment.Markup, `<p class="empty-state">No projects yet.</p>`)
	require.NotContains(t, fragment.Markup, "project-grid")
}

func TestRenderNarrowUsesSingleColumnGrid(t *testing.T) {
	t.Parallel()

	data := &document.ProjectsSection{Title: "Work", Items: []document.Project{{Title: "x"}}}

	narrow, err := New().Render(projectsSection(data), theme.Default(), render.DeviceNarrow)
	require.NoError(t, err)
	require.Contains(t, narrow.Markup, "grid-narrow")

	wide, err := New().Render(projectsSection(data), theme.Default(), render.DeviceWide)
	require.NoError(t, err)
	require.Contains(t, wide.Markup, "grid-wide")
	require.NotEqual(t, narrow.Markup, wide.Markup)
}

func TestRenderEscapesProjectFields(t *testing.T) {
	t.Parallel()

	fragment, err := New().Render(projectsSection(&document.ProjectsSection{
		Title: "Work",
		Items: []document.Project{
			{
				Title:      `<script>alert("xss")</script>`,
				Tags:       []string{"<b>bold</b>"},
				PreviewURL: "javascript:alert(1)",
			},
		},
	}), theme.Default(), render.DeviceWide)

	require.NoError(t, err)
	require.NotContains(t, fragment.Markup, "<script>")
	require.Contains(t, fragment.Markup, "&lt;script&gt;")
	require.Contains(t, fragment.Markup, "&lt;b&gt;bold&lt;/b&gt;")
	require.Contains(t, fragment.Markup, `href="#"`)
}

func TestRenderIsDeterministic(t *testing.T) {
	t.Parallel()

	section := projectsSection(&document.ProjectsSection{
		Title: "Work",
		Items: []document.Project{{Title: "a", Tags: []string{"x", "y"}}},
	})

	first, err := New().Render(section, theme.Default(), render.DeviceWide)
	require.NoError(t, err)
	second, err := New().Render(section, theme.Default(), render.DeviceWide)
	require.NoError(t, err)

	require.Equal(t, first, second)
}
