package theme

// DefaultID is the theme used when a stored id cannot be resolved, for
// example after a theme is retired.
const DefaultID = "slate"

var catalog = map[string]Theme{
	"slate": {
		ID:    "slate",
		Label: "Slate",
		Tokens: Tokens{
			Background:  "#0f172a",
			Surface:     "#1e293b",
			Text:        "#e2e8f0",
			Muted:       "#94a3b8",
			Accent:      "#38bdf8",
			AccentText:  "#0f172a",
			HeadingFont: "Georgia, 'Times New Roman', serif",
			BodyFont:    "-apple-system, 'Segoe UI', Helvetica, Arial, sans-serif",
			MaxWidth:    "960px",
			Radius:      "8px",
		},
	},
	"paper": {
		ID:    "paper",
		Label: "Paper",
		Tokens: Tokens{
			Background:  "#faf7f2",
			Surface:     "#ffffff",
			Text:        "#27241d",
			Muted:       "#78716c",
			Accent:      "#b45309",
			AccentText:  "#faf7f2",
			HeadingFont: "Georgia, 'Times New Roman', serif",
			BodyFont:    "-apple-system, 'Segoe UI', Helvetica, Arial, sans-serif",
			MaxWidth:    "880px",
			Radius:      "4px",
		},
	},
	"aurora": {
		ID:    "aurora",
		Label: "Aurora",
		Tokens: Tokens{
			Background:  "#10002b",
			Surface:     "#240046",
			Text:        "#f3e8ff",
			Muted:       "#c0a3e5",
			Accent:      "#72efdd",
			AccentText:  "#10002b",
			HeadingFont: "'Trebuchet MS', Verdana, sans-serif",
			BodyFont:    "'Trebuchet MS', Verdana, sans-serif",
			MaxWidth:    "1024px",
			Radius:      "16px",
		},
	},
	"forest": {
		ID:    "forest",
		Label: "Forest",
		Tokens: Tokens{
			Background:  "#f1f5ee",
			Surface:     "#ffffff",
			Text:        "#1c2a22",
			Muted:       "#5c6f64",
			Accent:      "#2f6b4f",
			AccentText:  "#f1f5ee",
			HeadingFont: "Georgia, 'Times New Roman', serif",
			BodyFont:    "Verdana, Geneva, sans-serif",
			MaxWidth:    "920px",
			Radius:      "6px",
		},
	},
	"mono": {
		ID:    "mono",
		Label: "Mono",
		Tokens: Tokens{
			Background:  "#ffffff",
			Surface:     "#f4f4f5",
			Text:        "#18181b",
			Muted:       "#71717a",
			Accent:      "#18181b",
			AccentText:  "#ffffff",
			HeadingFont: "'Courier New', Courier, monospace",
			BodyFont:    "'Courier New', Courier, monospace",
			MaxWidth:    "760px",
			Radius:      "0",
		},
	},
}

// order fixes the catalog presentation order for selection UIs.
var order = []string{"slate", "paper", "aurora", "forest", "mono"}

// Resolve returns the theme for the given id. Resolution is total: an
// unknown id yields the default theme and ok == false so callers can
// surface a warning.
func Resolve(id string) (Theme, bool) {
	if th, ok := catalog[id]; ok {
		return th, true
	}
	return catalog[DefaultID], false
}

// Default returns the fallback theme.
func Default() Theme {
	return catalog[DefaultID]
}

// List returns the catalog as ordered options for selection UIs.
func List() []Option {
	options := make([]Option, 0, len(order))
	for _, id := range order {
		th := catalog[id]
		options = append(options, Option{ID: th.ID, Label: th.Label, Swatch: th.Tokens.Accent})
	}
	return options
}
