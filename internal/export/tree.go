package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	folioerrors "github.com/foliokit/folio/pkg/errors"
)

// IndexPath is the conventional root entry file of an exported site.
const IndexPath = "index.html"

// File is one entry of the deployable static site root.
type File struct {
	Path    string
	Content []byte
}

// Tree is an ordered list of files representing a static site source
// tree. Order is the order files were added; publishers and packagers
// consume exactly this list and know nothing about archives or hosting.
type Tree struct {
	files []File
	index map[string]int
}

// NewTree creates an empty export tree.
func NewTree() *Tree {
	return &Tree{index: make(map[string]int)}
}

// Add appends a file. Paths are slash-separated and relative to the site
// root; duplicates and paths escaping the root are rejected.
func (t *Tree) Add(path string, content []byte) error {
	if path == "" {
		return folioerrors.NewExportError(path, fmt.Errorf("path is empty"))
	}
	if strings.HasPrefix(path, "/") {
		return folioerrors.NewExportError(path, fmt.Errorf("path must be relative"))
	}
	for _, part := range strings.Split(path, "/") {
		if part == ".." {
			return folioerrors.NewExportError(path, fmt.Errorf("path escapes site root"))
		}
	}
	if _, exists := t.index[path]; exists {
		return folioerrors.NewExportError(path, fmt.Errorf("duplicate path"))
	}

	t.index[path] = len(t.files)
	t.files = append(t.files, File{Path: path, Content: content})
	return nil
}

// Files returns the entries in insertion order.
func (t *Tree) Files() []File {
	return t.files
}

// Len returns the number of entries.
func (t *Tree) Len() int {
	return len(t.files)
}

// Lookup returns the content stored under path.
func (t *Tree) Lookup(path string) ([]byte, bool) {
	i, ok := t.index[path]
	if !ok {
		return nil, false
	}
	return t.files[i].Content, true
}

// WriteDir materialises the tree under dir, creating directories as
// needed. A failed write aborts; the caller retries into a fresh dir.
func (t *Tree) WriteDir(dir string) error {
	for _, f := range t.files {
		target := filepath.Join(dir, filepath.FromSlash(f.Path))
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return folioerrors.NewExportError(f.Path, err)
		}
		if err := os.WriteFile(target, f.Content, 0o644); err != nil {
			return folioerrors.NewExportError(f.Path, err)
		}
	}
	return nil
}
