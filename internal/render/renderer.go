package render

import (
	"fmt"

	"github.com/foliokit/folio/internal/document"
	"github.com/foliokit/folio/internal/theme"
)

// Device selects the layout mode a fragment is rendered for. The same
// section data must render coherently in both modes.
type Device string

const (
	DeviceNarrow Device = "narrow"
	DeviceWide   Device = "wide"
)

// ParseDevice converts a user-supplied device name.
func ParseDevice(s string) (Device, error) {
	switch Device(s) {
	case DeviceNarrow:
		return DeviceNarrow, nil
	case DeviceWide:
		return DeviceWide, nil
	}
	return "", fmt.Errorf("unknown device %q (want %q or %q)", s, DeviceNarrow, DeviceWide)
}

// Fragment is a renderer's output: a markup fragment plus the names of
// the stylesheet blocks it relies on, so the assembler can dedupe global
// styles.
type Fragment struct {
	Markup string
	Styles []string
}

// Renderer turns one section's data into a markup fragment.
//
// Implementations must be pure and deterministic: the same
// (section, theme, device) triple always yields byte-identical output.
// Preview and export share fragments, so any nondeterminism would make
// the two diverge. A renderer only ever sees its own section; disabled
// sections are filtered out by the assembler before dispatch.
type Renderer interface {
	// Kind returns the section kind this renderer handles.
	Kind() document.Kind

	// Render produces the fragment for the given section data. An empty
	// items list renders the section shell with an empty state rather
	// than omitting the container.
	Render(section document.Section, th theme.Theme, device Device) (Fragment, error)
}
