package session

import (
	"context"
	"time"

	"github.com/foliokit/folio/internal/assemble"
	"github.com/foliokit/folio/internal/document"
	"github.com/foliokit/folio/internal/logger"
	"github.com/foliokit/folio/internal/render"
)

// DefaultDebounce is how long the preview loop waits after the last
// change before re-rendering.
const DefaultDebounce = 250 * time.Millisecond

// PreviewLoop regenerates the live preview after document changes.
// Submissions land in a queue of size one: a change that arrives while
// an older one is still waiting replaces it, so the latest document
// state always wins and renders are never stacked up.
type PreviewLoop struct {
	session   *Session
	assembler *assemble.Assembler
	device    render.Device
	debounce  time.Duration
	deliver   func(assemble.Preview)
	log       *logger.Logger

	in chan document.Document
}

// NewPreviewLoop wires a loop to a session. deliver receives each
// finished preview; it is called from the loop goroutine.
func NewPreviewLoop(sess *Session, asm *assemble.Assembler, device render.Device, debounce time.Duration, deliver func(assemble.Preview), log *logger.Logger) *PreviewLoop {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &PreviewLoop{
		session:   sess,
		assembler: asm,
		device:    device,
		debounce:  debounce,
		deliver:   deliver,
		log:       log.WithComponent("preview-loop"),
		in:        make(chan document.Document, 1),
	}
}

// Submit queues doc for rendering, displacing any submission that has
// not started yet. Never blocks.
func (l *PreviewLoop) Submit(doc document.Document) {
	for {
		select {
		case l.in <- doc:
			return
		default:
		}
		select {
		case <-l.in:
		default:
		}
	}
}

// Run processes submissions until ctx is cancelled. Each burst of
// submissions is debounced into a single render of the newest document.
func (l *PreviewLoop) Run(ctx context.Context) {
	var timer *time.Timer
	var fire <-chan time.Time
	var pending document.Document
	havePending := false

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return

		case doc := <-l.in:
			pending = doc
			havePending = true
			if timer == nil {
				timer = time.NewTimer(l.debounce)
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(l.debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			if !havePending {
				continue
			}
			havePending = false
			l.render(pending)
		}
	}
}

func (l *PreviewLoop) render(doc document.Document) {
	l.session.setState(StatePreviewing)
	preview, err := l.assembler.AssemblePreview(doc, l.device)
	l.session.setState(StateEditing)

	if err != nil {
		l.log.Error(err, "preview render failed")
		return
	}
	if l.deliver != nil {
		l.deliver(preview)
	}
}
