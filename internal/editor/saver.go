package editor

import (
	"sync"
	"time"
)

// DefaultDebounce matches the editor's autosave window: a save fires after
// roughly a second of inactivity.
const DefaultDebounce = time.Second

// PersistFunc writes a normalized document as the tenant's draft config.
type PersistFunc func(doc Document) error

// Saver coalesces draft saves for one tenant. Every edit marks the document
// dirty and arms a debounce timer; Flush saves immediately, superseding any
// pending timer. At most one persist call is in flight at a time and
// overlapping triggers collapse to the latest document state. A failed
// persist leaves the document dirty so the caller can retry.
type Saver struct {
	persist  PersistFunc
	debounce time.Duration
	onError  func(error)

	mu       sync.Mutex // guards the fields below
	doc      Document
	dirty    bool
	gen      uint64 // bumped on every Update
	savedGen uint64 // last generation successfully persisted
	timer    *time.Timer

	saveMu sync.Mutex // serializes persist calls
}

func NewSaver(debounce time.Duration, persist PersistFunc, onError func(error)) *Saver {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	if onError == nil {
		onError = func(error) {}
	}
	return &Saver{persist: persist, debounce: debounce, onError: onError}
}

// Update replaces the in-memory document, marks it dirty and (re)arms the
// autosave timer.
func (s *Saver) Update(doc Document) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc = doc
	s.dirty = true
	s.gen++
	if s.timer == nil {
		s.timer = time.AfterFunc(s.debounce, func() {
			if err := s.Flush(); err != nil {
				s.onError(err)
			}
		})
		return
	}
	s.timer.Reset(s.debounce)
}

// Dirty reports whether there are unsaved edits.
func (s *Saver) Dirty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dirty
}

// Document returns a copy of the current in-memory document.
func (s *Saver) Document() Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.Clone()
}

// Flush cancels any pending autosave and persists the current document
// synchronously. If a newer state was already persisted by a concurrent
// flush the write is skipped rather than re-queued.
func (s *Saver) Flush() error {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
	}
	if !s.dirty {
		s.mu.Unlock()
		return nil
	}
	want := s.gen
	s.mu.Unlock()

	s.saveMu.Lock()
	defer s.saveMu.Unlock()

	s.mu.Lock()
	if s.savedGen >= want {
		// coalesced away by a save that ran while we waited
		s.mu.Unlock()
		return nil
	}
	gen := s.gen
	doc := s.doc.Clone()
	s.mu.Unlock()

	doc.Normalize()
	if err := s.persist(doc); err != nil {
		return err
	}

	s.mu.Lock()
	s.savedGen = gen
	if s.gen == gen {
		s.dirty = false
	}
	s.mu.Unlock()
	return nil
}

// Close cancels any pending autosave without persisting.
func (s *Saver) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
	}
}
