package about

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/foliokit/folio/internal/document"
	"github.com/foliokit/folio/internal/render"
	"github.com/foliokit/folio/internal/theme"
)

func aboutSection(data *document.AboutSection) document.Section {
	return document.Section{Kind: document.KindAbout, Enabled: true, About: data}
}

func TestRenderConvertsMarkdown(t *testing.T) {
	t.Parallel()

	fragment, err := New().Render(aboutSection(&document.AboutSection{
		Title: "About",
		Body:  "I like **bold** statements.",
	}), theme.Default(), render.DeviceWide)

	require.NoError(t, err)
	require.Contains(t, fragment.Markup, `<h2 class="section-title">About</h2>`)
	require.Contains(t, fragment.Markup, "<strong>bold</strong>")
	require.Equal(t, []string{"section", "prose"}, fragment.Styles)
}

func TestRenderEmptyBodyShowsEmptyState(t *testing.T) {
	t.Parallel()

	fragment, err := New().Render(aboutSection(&document.AboutSection{Title: "About"}), theme.Default(), render.DeviceWide)

	require.NoError(t, err)
	require.Contains(t, fragment.Markup, "empty-state")
	require.NotContains(t, fragment.Markup, "prose\">")
}

func TestRenderOmitsRawHTMLInBody(t *testing.T) {
	t.Parallel()

	fragment, err := New().Render(aboutSection(&document.AboutSection{
		Title: "About",
		Body:  "hello <script>alert(1)</script>",
	}), theme.Default(), render.DeviceWide)

	require.NoError(t, err)
	require.NotContains(t, fragment.Markup, "<script>")
}
