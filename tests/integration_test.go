package tests

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	git "github.com/go-git/go-git/v5"
	"github.com/stretchr/testify/require"

	"github.com/foliokit/folio/internal/assemble"
	"github.com/foliokit/folio/internal/document"
	"github.com/foliokit/folio/internal/export"
	"github.com/foliokit/folio/internal/logger"
	"github.com/foliokit/folio/internal/publish"
	"github.com/foliokit/folio/internal/render"
	"github.com/foliokit/folio/internal/session"

	_ "github.com/foliokit/folio/internal/sections/about"
	_ "github.com/foliokit/folio/internal/sections/contact"
	_ "github.com/foliokit/folio/internal/sections/footer"
	_ "github.com/foliokit/folio/internal/sections/hero"
	_ "github.com/foliokit/folio/internal/sections/navigation"
	_ "github.com/foliokit/folio/internal/sections/projects"
	_ "github.com/foliokit/folio/internal/sections/skills"
)

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New(logger.Options{Level: "error"})
	require.NoError(t, err)
	return log
}

func loadFixture(t *testing.T) document.Document {
	t.Helper()
	doc, err := document.ParseFile(filepath.Join("testdata", "portfolio.json"))
	require.NoError(t, err)
	require.NoError(t, document.Validate(doc))
	return *doc
}

// TestIntegrationEditRenderExport walks the whole pipeline: load a
// document from disk, edit it through a session, render the preview,
// write the export tree, and check the two outputs stay equivalent.
func TestIntegrationEditRenderExport(t *testing.T) {
	log := testLogger(t)
	asm := assemble.New(log)

	sess := session.New(loadFixture(t), log)

	updated, err := sess.Apply(func(doc document.Document) (document.Document, error) {
		doc = doc.WithTheme("forest")
		return doc.WithProjectAdded(document.Project{
			Title:       "Signal Atlas",
			Description: "Maps *radio* coverage.",
			Tags:        []string{"go", "sdr"},
		})
	})
	require.NoError(t, err)

	preview, err := asm.AssemblePreview(updated, render.DeviceWide)
	require.NoError(t, err)
	require.Empty(t, preview.Warnings)
	require.Contains(t, preview.HTML, "Signal Atlas")
	require.Contains(t, preview.HTML, "<em>radio</em>")

	outDir := filepath.Join(t.TempDir(), "dist")
	var tree *export.Tree
	require.NoError(t, sess.Export(func(doc document.Document) error {
		var warnings []document.Warning
		var exportErr error
		tree, warnings, exportErr = asm.AssembleExport(doc)
		if exportErr != nil {
			return exportErr
		}
		require.Empty(t, warnings)
		return tree.WriteDir(outDir)
	}))

	index, err := os.ReadFile(filepath.Join(outDir, "index.html"))
	require.NoError(t, err)

	previewBody := between(t, preview.HTML, "<body>", "</body>")
	exportBody := between(t, string(index), "<body>", "</body>")
	require.Equal(t, previewBody, exportBody)

	css, err := os.ReadFile(filepath.Join(outDir, "styles.css"))
	require.NoError(t, err)
	require.Contains(t, preview.HTML, string(css))
}

// TestIntegrationRoundTripSurvivesUnknownKind checks that a document
// carrying a section kind this build does not know about still loads,
// renders with a warning, and saves back without losing the section.
func TestIntegrationRoundTripSurvivesUnknownKind(t *testing.T) {
	raw := `{
  "settings": {"name": "Kit Marsh", "theme": "paper"},
  "navigation": {"items": [{"name": "Top", "url": "#top"}]},
  "sections": [
    {"kind": "hero", "enabled": true, "headline": "Kit Marsh"},
    {"kind": "testimonials", "enabled": true, "quotes": ["great work"]},
    {"kind": "contact", "enabled": true, "email": "kit@example.com"}
  ],
  "footer": {"enabled": true, "copyright": ""}
}`
	doc, err := document.Parse([]byte(raw))
	require.NoError(t, err)

	log := testLogger(t)
	preview, err := assemble.New(log).AssemblePreview(*doc, render.DeviceWide)
	require.NoError(t, err)
	require.Contains(t, preview.HTML, "kit@example.com")

	warned := false
	for _, w := range preview.Warnings {
		if strings.Contains(w.Message, "testimonials") {
			warned = true
		}
	}
	require.True(t, warned)

	saved, err := document.MarshalPretty(*doc)
	require.NoError(t, err)
	require.Contains(t, string(saved), `"testimonials"`)
	require.Contains(t, string(saved), `"quotes"`)
}

// TestIntegrationPublishFlow exports the fixture and publishes it into
// a local repository twice, asserting the second attempt is a no-op.
func TestIntegrationPublishFlow(t *testing.T) {
	log := testLogger(t)
	asm := assemble.New(log)

	tree, _, err := asm.AssembleExport(loadFixture(t))
	require.NoError(t, err)

	repoDir := filepath.Join(t.TempDir(), "site")
	pub := publish.New(log)

	first, err := pub.Publish(context.Background(), tree, publish.Options{RepoPath: repoDir, Branch: "gh-pages"})
	require.NoError(t, err)
	require.True(t, first.Committed)

	second, err := pub.Publish(context.Background(), tree, publish.Options{RepoPath: repoDir, Branch: "gh-pages"})
	require.NoError(t, err)
	require.False(t, second.Committed)

	repo, err := git.PlainOpen(repoDir)
	require.NoError(t, err)
	head, err := repo.Head()
	require.NoError(t, err)
	require.Equal(t, "gh-pages", head.Name().Short())
	require.Equal(t, first.CommitHash, head.Hash().String())
}

func between(t *testing.T, s, start, end string) string {
	t.Helper()
	i := strings.Index(s, start)
	j := strings.Index(s, end)
	require.Greater(t, i, -1)
	require.Greater(t, j, i)
	return s[i:j]
}
