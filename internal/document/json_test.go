package document

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	folioerrors "github.com/foliokit/folio/pkg/errors"
)

func TestParse(t *testing.T) {
	t.Parallel()

	validJSON := `{
  "settings": {"name": "Jo", "theme": "slate"},
  "navigation": {"items": [{"name": "Work", "url": "#projects"}]},
  "sections": [
    {"kind": "hero", "enabled": true, "headline": "Jo", "tagline": "Maker"},
    {"kind": "projects", "title": "Work", "items": [
      {"title": "One", "description": "First", "tags": ["go"], "previewUrl": "https://example.com"}
    ]}
  ],
  "footer": {"enabled": true, "copyright": "© Jo"}
}`

	cases := []struct {
		name     string
		contents string
		assert   func(t *testing.T, doc *Document, err error)
	}{
		{
			name:     "valid document is parsed",
			contents: validJSON,
			assert: func(t *testing.T, doc *Document, err error) {
				require.NoError(t, err)
				require.NotNil(t, doc)
				require.Equal(t, "Jo", doc.Settings.Name)
				require.Len(t, doc.Sections, 2)
				require.Equal(t, KindHero, doc.Sections[0].Kind)
				require.NotNil(t, doc.Sections[0].Hero)
				require.Equal(t, "Maker", doc.Sections[0].Hero.Tagline)
				require.NotNil(t, doc.Sections[1].Projects)
				require.Equal(t, []string{"go"}, doc.Sections[1].Projects.Items[0].Tags)
			},
		},
		{
			name:     "enabled defaults to true when omitted",
			contents: `{"settings": {"name": "Jo"}, "sections": [{"kind": "about", "title": "About", "body": "hi"}]}`,
			assert: func(t *testing.T, doc *Document, err error) {
				require.NoError(t, err)
				require.True(t, doc.Sections[0].Enabled)
			},
		},
		{
			name:     "unknown section kind keeps raw payload",
			contents: `{"settings": {"name": "Jo"}, "sections": [{"kind": "guestbook", "enabled": true, "entries": 3}]}`,
			assert: func(t *testing.T, doc *Document, err error) {
				require.NoError(t, err)
				require.Len(t, doc.Sections, 1)
				require.Equal(t, Kind("guestbook"), doc.Sections[0].Kind)
				require.False(t, doc.Sections[0].Known())
			},
		},
		{
			name:     "malformed json returns parse error",
			contents: `{"settings": [1, 2]}`,
			assert: func(t *testing.T, doc *Document, err error) {
				require.Error(t, err)
				var parseErr *folioerrors.ParseError
				require.ErrorAs(t, err, &parseErr)
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			doc, err := Parse([]byte(tc.contents))
			tc.assert(t, doc, err)
		})
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	t.Parallel()

	original := Sample()

	data, err := MarshalPretty(original)
	require.NoError(t, err)

	parsed, err := Parse(data)
	require.NoError(t, err)
	require.Equal(t, original, *parsed)
}

func TestMarshalPreservesUnknownSections(t *testing.T) {
	t.Parallel()

	contents := `{"settings": {"name": "Jo"}, "sections": [{"kind": "guestbook", "enabled": true, "entries": 3}]}`
	doc, err := Parse([]byte(contents))
	require.NoError(t, err)

	data, err := MarshalPretty(*doc)
	require.NoError(t, err)

	var generic map[string]any
	require.NoError(t, json.Unmarshal(data, &generic))
	sections := generic["sections"].([]any)
	require.Len(t, sections, 1)
	section := sections[0].(map[string]any)
	require.Equal(t, "guestbook", section["kind"])
	require.Equal(t, float64(3), section["entries"])
}

func TestMarshalPrettyIsDeterministic(t *testing.T) {
	t.Parallel()

	doc := Sample()

	first, err := MarshalPretty(doc)
	require.NoError(t, err)
	second, err := MarshalPretty(doc)
	require.NoError(t, err)

	require.Equal(t, first, second)
}

func TestParseFileMissing(t *testing.T) {
	t.Parallel()

	_, err := ParseFile("testdata/does-not-exist.json")
	require.Error(t, err)
	var parseErr *folioerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Contains(t, parseErr.Path, "does-not-exist.json")
}
