// Package session owns the lifetime of a portfolio document being
// edited: copy-on-write mutations, a single undo snapshot, and the
// editing/previewing/exporting state machine. Nothing here persists;
// the document is discarded or exported when the session ends.
package session

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/foliokit/folio/internal/document"
	"github.com/foliokit/folio/internal/logger"
)

// State is the session's position in its lifecycle. Previewing and
// Exporting always return to Editing.
type State string

const (
	StateEditing    State = "editing"
	StatePreviewing State = "previewing"
	StateExporting  State = "exporting"
)

// Mutation derives a new document value from the current one. It
// receives a clone, so implementations are free to modify their
// argument; returning an error leaves the session untouched.
type Mutation func(document.Document) (document.Document, error)

// Session holds the current document and one previous snapshot.
// All methods are safe for concurrent use.
type Session struct {
	id  string
	log *logger.Logger

	mu       sync.Mutex
	state    State
	current  document.Document
	previous *document.Document
}

// New starts a session around doc.
func New(doc document.Document, log *logger.Logger) *Session {
	return &Session{
		id:      uuid.NewString(),
		log:     log.WithComponent("session"),
		state:   StateEditing,
		current: doc.Clone(),
	}
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// State reports the current lifecycle state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Document returns a clone of the current document. Callers can modify
// the result freely without affecting the session.
func (s *Session) Document() document.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current.Clone()
}

// CanRestore reports whether an undo snapshot is available.
func (s *Session) CanRestore() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.previous != nil
}

// Apply runs mutate against the current document and, on success,
// installs the result as the new current document, keeping the old one
// as the undo snapshot. On error the session is left exactly as it was.
func (s *Session) Apply(mutate Mutation) (document.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := mutate(s.current.Clone())
	if err != nil {
		return document.Document{}, err
	}

	prev := s.current
	s.previous = &prev
	s.current = next
	return next.Clone(), nil
}

// Replace swaps in a whole new document, keeping the old one as the
// undo snapshot.
func (s *Session) Replace(doc document.Document) document.Document {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.current
	s.previous = &prev
	s.current = doc.Clone()
	return s.current.Clone()
}

// Restore reverts to the previous snapshot. Only one level of undo is
// kept, so a second Restore without an intervening change fails.
func (s *Session) Restore() (document.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.previous == nil {
		return document.Document{}, fmt.Errorf("no snapshot to restore")
	}

	s.current = *s.previous
	s.previous = nil
	return s.current.Clone(), nil
}

// Export runs fn against a snapshot of the current document while the
// session is in the exporting state. The document is never mutated by
// an export, so a failed export is safely retryable.
func (s *Session) Export(fn func(document.Document) error) error {
	s.mu.Lock()
	if s.state == StateExporting {
		s.mu.Unlock()
		return fmt.Errorf("export already in progress")
	}
	s.state = StateExporting
	snapshot := s.current.Clone()
	s.mu.Unlock()

	err := fn(snapshot)

	s.mu.Lock()
	s.state = StateEditing
	s.mu.Unlock()

	if err != nil {
		s.log.Error(err, "export failed, document unchanged")
		return err
	}
	return nil
}

func (s *Session) setState(state State) {
	s.mu.Lock()
	s.state = state
	s.mu.Unlock()
}
