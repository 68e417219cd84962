package footer

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/foliokit/folio/internal/document"
	"github.com/foliokit/folio/internal/render"
	"github.com/foliokit/folio/internal/theme"
)

func TestRender(t *testing.T) {
	t.Parallel()

	section := document.Section{
		Kind:    document.KindFooter,
		Enabled: true,
		Footer:  &document.FooterSection{SiteName: "Jo", Copyright: "© 2025 Jo Doe"},
	}

	fragment, err := New().Render(section, theme.Default(), render.DeviceWide)
	require.NoError(t, err)
	require.Contains(t, fragment.Markup, "<p>© 2025 Jo Doe</p>")
	require.Equal(t, []string{"footer"}, fragment.Styles)
}

func TestRenderFallsBackToSiteName(t *testing.T) {
	t.Parallel()

	section := document.Section{
		Kind:    document.KindFooter,
		Enabled: true,
		Footer:  &document.FooterSection{SiteName: "Jo"},
	}

	fragment, err := New().Render(section, theme.Default(), render.DeviceWide)
	require.NoError(t, err)
	require.Contains(t, fragment.Markup, "<p>Jo</p>")
}

func TestRenderEscapesCopyright(t *testing.T) {
	t.Parallel()

	section := document.Section{
		Kind:    document.KindFooter,
		Enabled: true,
		Footer:  &document.FooterSection{Copyright: "<b>bold</b>"},
	}

	fragment, err := New().Render(section, theme.Default(), render.DeviceWide)
	require.NoError(t, err)
	require.NotContains(t, fragment.Markup, "<b>")
	require.Contains(t, fragment.Markup, "&lt;b&gt;bold&lt;/b&gt;")
}
