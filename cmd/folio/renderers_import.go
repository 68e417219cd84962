package main

// Blank imports ensure section renderer init() registration runs for
// the CLI binary.
import (
	_ "github.com/foliokit/folio/internal/sections/about"
	_ "github.com/foliokit/folio/internal/sections/contact"
	_ "github.com/foliokit/folio/internal/sections/footer"
	_ "github.com/foliokit/folio/internal/sections/hero"
	_ "github.com/foliokit/folio/internal/sections/navigation"
	_ "github.com/foliokit/folio/internal/sections/projects"
	_ "github.com/foliokit/folio/internal/sections/skills"
)
