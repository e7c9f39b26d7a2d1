package editor

import (
	"context"
	"encoding/base64"
	"fmt"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/moboufenzi-dev/rapport-stage-generator/internal/preview"
	"github.com/moboufenzi-dev/rapport-stage-generator/internal/report"
	"github.com/moboufenzi-dev/rapport-stage-generator/internal/storage"
)

// Options tunes a session's behavior.
type Options struct {
	MaxChapterLevel int           // outline depth, 2 or 3
	SaveDelay       time.Duration // persistence debounce window
	PreviewDelay    time.Duration // preview recompute debounce window
}

// DefaultOptions mirror the form's historical timings.
func DefaultOptions() Options {
	return Options{
		MaxChapterLevel: report.DefaultMaxChapterLevel,
		SaveDelay:       500 * time.Millisecond,
		PreviewDelay:    300 * time.Millisecond,
	}
}

// Session owns the live ReportDocument and is the only legal way to change
// it. Mutations run one at a time under the session lock; each one schedules
// both a persistence write and a preview recompute on independent debounce
// channels before returning. Continuous edits coalesce, discrete edits flush
// immediately.
type Session struct {
	mu  sync.Mutex
	doc *report.ReportDocument

	store    *storage.Store
	hub      *Hub
	maxLevel int

	saveDeb   *Debouncer
	renderDeb *Debouncer
}

// NewSession wraps the given document. The document is cloned so the caller's
// copy stays inert.
func NewSession(doc *report.ReportDocument, store *storage.Store, hub *Hub, opts Options) *Session {
	if doc == nil {
		doc = report.DefaultDocument()
	}
	if opts.MaxChapterLevel <= 0 {
		opts.MaxChapterLevel = report.DefaultMaxChapterLevel
	}
	if opts.SaveDelay <= 0 {
		opts.SaveDelay = DefaultOptions().SaveDelay
	}
	if opts.PreviewDelay <= 0 {
		opts.PreviewDelay = DefaultOptions().PreviewDelay
	}

	s := &Session{
		doc:      doc.Clone(),
		store:    store,
		hub:      hub,
		maxLevel: opts.MaxChapterLevel,
	}
	s.doc.Normalize()
	s.saveDeb = NewDebouncer(opts.SaveDelay, s.persist)
	s.renderDeb = NewDebouncer(opts.PreviewDelay, s.broadcastPreview)
	return s
}

// Close cancels any pending debounced work.
func (s *Session) Close() {
	s.saveDeb.Stop()
	s.renderDeb.Stop()
}

// Snapshot returns a deep copy of the current document.
func (s *Session) Snapshot() *report.ReportDocument {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.Clone()
}

// Preview renders the current document synchronously.
func (s *Session) Preview() string {
	return preview.Render(s.Snapshot())
}

// mutate applies fn under the lock. When fn changed something, both the
// persistence write and the preview recompute are scheduled: flushed for
// discrete edits, debounced for continuous ones. The two channels are
// independent and neither assumes the other ran first.
func (s *Session) mutate(discrete bool, fn func(*report.ReportDocument) bool) bool {
	s.mu.Lock()
	changed := fn(s.doc)
	s.mu.Unlock()

	if !changed {
		return false
	}
	if discrete {
		s.saveDeb.Flush()
		s.renderDeb.Flush()
	} else {
		s.saveDeb.Trigger()
		s.renderDeb.Trigger()
	}
	return true
}

func (s *Session) persist() {
	if s.store == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.store.Save(ctx, s.Snapshot()); err != nil {
		log.Printf("editor: saving snapshot: %v", err)
		return
	}
	if s.hub != nil {
		s.hub.Broadcast(Event{Type: "saved"})
	}
}

func (s *Session) broadcastPreview() {
	if s.hub == nil {
		return
	}
	s.hub.Broadcast(Event{Type: "preview", HTML: s.Preview()})
}

// AddChapter appends a new top-level chapter.
func (s *Session) AddChapter() bool {
	return s.mutate(true, func(d *report.ReportDocument) bool {
		return d.AddChapter() != nil
	})
}

// AddSubChapter appends a child under parentID, bounded by the configured
// outline depth. A miss or depth overflow is a no-op.
func (s *Session) AddSubChapter(parentID int64) bool {
	return s.mutate(true, func(d *report.ReportDocument) bool {
		return d.AddSubChapter(parentID, s.maxLevel) != nil
	})
}

// RenameChapter retitles the node with the given id.
func (s *Session) RenameChapter(id int64, title string) bool {
	return s.mutate(true, func(d *report.ReportDocument) bool {
		return d.RenameNode(id, title)
	})
}

// DeleteChapter removes a node and its whole subtree.
func (s *Session) DeleteChapter(id int64) bool {
	return s.mutate(true, func(d *report.ReportDocument) bool {
		return d.DeleteNode(id)
	})
}

// MoveChapter swaps a top-level chapter with its neighbor.
func (s *Session) MoveChapter(index, direction int) bool {
	return s.mutate(true, func(d *report.ReportDocument) bool {
		return d.MoveSibling(index, direction)
	})
}

// AddGlossaryEntry, AddFigure and AddScheduleTask validate and append list
// items; deletes are positional. All are discrete edits.

func (s *Session) AddGlossaryEntry(term, definition string) bool {
	return s.mutate(true, func(d *report.ReportDocument) bool {
		return d.AddGlossaryEntry(term, definition)
	})
}

func (s *Session) DeleteGlossaryEntry(index int) bool {
	return s.mutate(true, func(d *report.ReportDocument) bool {
		return d.DeleteGlossaryEntry(index)
	})
}

func (s *Session) AddFigure(name, page string) bool {
	return s.mutate(true, func(d *report.ReportDocument) bool {
		return d.AddFigure(name, page)
	})
}

func (s *Session) DeleteFigure(index int) bool {
	return s.mutate(true, func(d *report.ReportDocument) bool {
		return d.DeleteFigure(index)
	})
}

func (s *Session) AddScheduleTask(label, start, end string) bool {
	return s.mutate(true, func(d *report.ReportDocument) bool {
		return d.AddScheduleTask(label, start, end)
	})
}

func (s *Session) DeleteScheduleTask(index int) bool {
	return s.mutate(true, func(d *report.ReportDocument) bool {
		return d.DeleteScheduleTask(index)
	})
}

// ApplyPatch copies the non-nil patch fields onto the document. commit marks
// a discrete edit (field blur/change); otherwise the downstream work is
// debounced for continuous typing.
func (s *Session) ApplyPatch(p *report.FieldPatch, commit bool) bool {
	return s.mutate(commit, func(d *report.ReportDocument) bool {
		return p.Apply(d)
	})
}

// UploadImage decodes raw uploaded bytes into a data URI and stores it under
// the given slot. A payload that is not an image is rejected and the prior
// value stays untouched. The session lock serializes competing uploads, so
// the last completed upload wins atomically.
func (s *Session) UploadImage(key report.ImageKey, data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("empty upload")
	}
	contentType := http.DetectContentType(data)
	if !strings.HasPrefix(contentType, "image/") {
		return fmt.Errorf("unsupported content type %s", contentType)
	}

	dataURI := "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data)
	if !s.mutate(true, func(d *report.ReportDocument) bool {
		return d.SetImage(key, dataURI)
	}) {
		return fmt.Errorf("unknown image slot %q", key)
	}
	return nil
}

// Replace swaps in a whole document (revision restore) and flushes
// persistence and preview immediately.
func (s *Session) Replace(doc *report.ReportDocument) {
	s.mutate(true, func(d *report.ReportDocument) bool {
		*d = *doc.Clone()
		d.Normalize()
		return true
	})
}
