package hero

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/foliokit/folio/internal/document"
	"github.com/foliokit/folio/internal/render"
	"github.com/foliokit/folio/internal/theme"
)

func heroSection(data *document.HeroSection) document.Section {
	return document.Section{Kind: document.KindHero, Enabled: true, Hero: data}
}

func TestRender(t *testing.T) {
	t.Parallel()

	fragment, err := New().Render(heroSection(&document.HeroSection{
		Headline: "Jo Doe",
		Tagline:  "Builder of things",
		CTALabel: "See work",
		CTAURL:   "#projects",
	}), theme.Default(), render.DeviceWide)

	require.NoError(t, err)
	require.Contains(t, fragment.Markup, `<h1 class="hero-headline">Jo Doe</h1>`)
	require.Contains(t, fragment.Markup, `<p class="hero-tagline">Builder of things</p>`)
	require.Contains(t, fragment.Markup, `<a class="cta" href="#projects">See work</a>`)
	require.Contains(t, fragment.Markup, "layout-wide")
	require.Equal(t, []string{"hero"}, fragment.Styles)
}

func TestRenderEscapesUserText(t *testing.T) {
	t.Parallel()

	fragment, err := New().Render(heroSection(&document.HeroSection{
		Headline: "<script>alert(1)</script>",
		CTALabel: "go",
		CTAURL:   "javascript:alert(1)",
	}), theme.Default(), render.DeviceWide)

	require.NoError(t, err)
	require.NotContains(t, fragment.Markup, "<script>")
	require.Contains(t, fragment.Markup, "&lt;script&gt;alert(1)&lt;/script&gt;")
	require.Contains(t, fragment.Markup, `href="#"`)
}

func TestRenderOmitsEmptyOptionalFields(t *testing.T) {
	t.Parallel()

	fragment, err := New().Render(heroSection(&document.HeroSection{Headline: "Jo"}), theme.Default(), render.DeviceNarrow)

	require.NoError(t, err)
	require.NotContains(t, fragment.Markup, "hero-tagline")
	require.NotContains(t, fragment.Markup, "cta")
	require.Contains(t, fragment.Markup, "layout-narrow")
}

func TestRenderIsDeterministic(t *testing.T) {
	t.Parallel()

	section := heroSection(&document.HeroSection{Headline: "Jo", Tagline: "x"})

	first, err := New().Render(section, theme.Default(), render.DeviceWide)
	require.NoError(t, err)
	second, err := New().Render(section, theme.Default(), render.DeviceWide)
	require.NoError(t, err)

	require.Equal(t, first, second)
}

func TestRenderNilPayload(t *testing.T) {
	t.Parallel()

	fragment, err := New().Render(document.Section{Kind: document.KindHero, Enabled: true}, theme.Default(), render.DeviceWide)
	require.NoError(t, err)
	require.Contains(t, fragment.Markup, "section-hero")
}
