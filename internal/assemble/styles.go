package assemble

import (
	"fmt"
	"strings"

	"github.com/foliokit/folio/internal/theme"
)

// StylesheetPath is where the export tree stores the generated CSS.
const StylesheetPath = "styles.css"

// blockOrder fixes the emission order of style blocks so the stylesheet
// is deterministic regardless of the order fragments report their
// dependencies.
var blockOrder = []string{"nav", "hero", "section", "prose", "projects", "skills", "contact", "footer"}

var blocks = map[string]string{
	"nav": `.site-nav{background:var(--surface);padding:16px 0}
.site-nav .inner{display:flex;align-items:center;justify-content:space-between;flex-wrap:wrap;gap:8px}
.site-nav .brand{font-family:var(--heading-font);font-weight:bold}
.site-nav .nav-items{list-style:none;display:flex;gap:20px;padding:0}
.site-nav .nav-items a{text-decoration:none}
.site-nav.layout-narrow .inner{flex-direction:column;align-items:flex-start}
.site-nav.layout-narrow .nav-items{flex-direction:column;gap:8px}
`,
	"hero": `.section-hero{padding:96px 0 64px}
.section-hero.layout-narrow{padding:56px 0 40px}
.hero-headline{font-size:2.5rem}
.layout-narrow .hero-headline{font-size:1.8rem}
.hero-tagline{color:var(--muted);font-size:1.2rem;margin-top:8px}
.cta{display:inline-block;margin-top:24px;padding:10px 20px;background:var(--accent);color:var(--accent-text);border-radius:var(--radius);text-decoration:none}
`,
	"section": `.section{padding:48px 0}
.section-title{font-size:1.6rem;margin-bottom:16px}
`,
	"prose": `.prose p{margin:0 0 12px}
.prose ul,.prose ol{margin:0 0 12px;padding-left:24px}
.prose h1,.prose h2,.prose h3{margin:16px 0 8px}
.prose code{background:var(--surface);padding:1px 5px;border-radius:var(--radius)}
`,
	"projects": `.project-grid{display:grid;gap:20px}
.project-grid.grid-wide{grid-template-columns:repeat(2,1fr)}
.project-grid.grid-narrow{grid-template-columns:1fr}
.project-card{background:var(--surface);padding:20px;border-radius:var(--radius)}
.project-title{margin-bottom:8px}
.tag-list{list-style:none;display:flex;flex-wrap:wrap;gap:6px;padding:0;margin:8px 0}
.tag{background:var(--background);color:var(--muted);padding:2px 10px;border-radius:var(--radius);font-size:0.85rem}
.project-link{display:inline-block;margin-top:8px}
`,
	"skills": `.skill-list{list-style:none;padding:0;display:grid;gap:8px}
.skill{display:flex;justify-content:space-between;background:var(--surface);padding:8px 16px;border-radius:var(--radius)}
.skill-level{color:var(--accent);letter-spacing:2px}
`,
	"contact": `.contact-email{font-size:1.1rem}
.social-list{list-style:none;padding:0;display:flex;gap:16px;flex-wrap:wrap}
`,
	"footer": `.site-footer{background:var(--surface);color:var(--muted);padding:24px 0;margin-top:48px;font-size:0.9rem}
`,
}

// Stylesheet builds the site CSS: theme tokens as custom properties, the
// base rules every page needs, then the blocks the rendered fragments
// depend on, deduplicated and emitted in fixed order.
func Stylesheet(th theme.Theme, deps []string) string {
	var b strings.Builder

	tokens := th.Tokens
	fmt.Fprintf(&b, `:root{--background:%s;--surface:%s;--text:%s;--muted:%s;--accent:%s;--accent-text:%s;--heading-font:%s;--body-font:%s;--max-width:%s;--radius:%s}
`,
		tokens.Background, tokens.Surface, tokens.Text, tokens.Muted, tokens.Accent,
		tokens.AccentText, tokens.HeadingFont, tokens.BodyFont, tokens.MaxWidth, tokens.Radius)

	b.WriteString(`*{box-sizing:border-box;margin:0}
body{background:var(--background);color:var(--text);font-family:var(--body-font);line-height:1.6}
.inner{max-width:var(--max-width);margin:0 auto;padding:0 24px}
h1,h2,h3{font-family:var(--heading-font)}
a{color:var(--accent)}
.empty-state{color:var(--muted);font-style:italic}
`)

	wanted := make(map[string]bool, len(deps))
	for _, dep := range deps {
		wanted[dep] = true
	}

	for _, name := range blockOrder {
		if wanted[name] {
			b.WriteString(blocks[name])
		}
	}

	return b.String()
}
