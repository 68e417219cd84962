package theme

// Tokens maps semantic style names to concrete CSS values. Renderers and
// the assembler consume tokens; they never hard-code colors or fonts.
type Tokens struct {
	Background  string
	Surface     string
	Text        string
	Muted       string
	Accent      string
	AccentText  string
	HeadingFont string
	BodyFont    string
	MaxWidth    string
	Radius      string
}

// Theme is an immutable value object: a named token set. Themes are
// read-only process-wide data and are never mutated at runtime.
type Theme struct {
	ID     string
	Label  string
	Tokens Tokens
}

// Option describes a theme for selection UIs.
type Option struct {
	ID     string `json:"id"`
	Label  string `json:"label"`
	Swatch string `json:"swatch"`
}
