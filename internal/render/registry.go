package render

import (
	"fmt"
	"sort"
	"sync"

	"github.com/foliokit/folio/internal/document"
	folioerrors "github.com/foliokit/folio/pkg/errors"
)

var (
	registryMu sync.RWMutex
	registry   = make(map[document.Kind]Renderer)
)

// Register adds a renderer for its section kind. Renderers register
// themselves from init(); the CLI pulls them in with blank imports.
func Register(r Renderer) error {
	if r == nil {
		return folioerrors.NewRendererError("", fmt.Errorf("renderer is nil"))
	}

	kind := r.Kind()

	registryMu.Lock()
	defer registryMu.Unlock()

	if _, exists := registry[kind]; exists {
		return folioerrors.NewRendererError(string(kind), fmt.Errorf("renderer already registered"))
	}

	registry[kind] = r
	return nil
}

// Get retrieves the renderer for a section kind.
func Get(kind document.Kind) (Renderer, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	r, ok := registry[kind]
	if !ok {
		return nil, folioerrors.NewRendererError(string(kind), fmt.Errorf("no renderer registered"))
	}

	return r, nil
}

// Kinds returns the registered section kinds in sorted order.
func Kinds() []document.Kind {
	registryMu.RLock()
	defer registryMu.RUnlock()

	kinds := make([]document.Kind, 0, len(registry))
	for kind := range registry {
		kinds = append(kinds, kind)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

// Reset clears renderer registrations (for tests).
func Reset() {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry = make(map[document.Kind]Renderer)
}
