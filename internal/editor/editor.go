// Package editor implements the section editor contract shared by every
// wizard step: a local draft seeded from the shared context, unconditional
// mirroring of edits back into the context for the live preview, and a
// normalize-then-save path that submits partial updates to the remote store.
package editor

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"sync"

	"resume-builder/internal/model"
)

// Status is the per-editor state machine: Clean -> Dirty on any edit,
// Dirty -> Saving on save, Saving -> Clean on success, Saving -> Dirty on
// failure so the user can retry without re-editing.
type Status int

const (
	Clean Status = iota
	Dirty
	Saving
)

var (
	// ErrSaveInFlight rejects a save fired while another save of the same
	// section has not resolved. The UI disables the control; this guard
	// backs it up.
	ErrSaveInFlight = errors.New("save already in progress")

	// ErrMinEntries rejects removing the last entry of a section with a
	// minimum-one-entry rule.
	ErrMinEntries = errors.New("section requires at least one entry")

	// ErrValidation marks client-side rejections; no remote call was made.
	ErrValidation = errors.New("validation failed")
)

// Persister submits one normalized partial update for the open record.
type Persister func(ctx context.Context, patch model.Patch) error

// ValueConfig wires a single-value section editor.
type ValueConfig[T any] struct {
	Name     string
	Clone    func(T) T // optional; defaults to a value copy
	Mirror   func(T)   // writes the draft into the shared context
	Patch    func(T) model.Patch
	Validate func(T) error // optional; blocks the remote call on error
	Persist  Persister
	Notify   Notifier
	// EnableNext tells the wizard whether forward navigation is allowed.
	EnableNext func(bool)
}

// ValueEditor owns the local draft for a single-value section (summary,
// personal details, one named section).
type ValueEditor[T any] struct {
	mu     sync.Mutex
	status Status
	draft  T
	loaded bool
	cfg    ValueConfig[T]
}

func NewValueEditor[T any](cfg ValueConfig[T]) *ValueEditor[T] {
	if cfg.Clone == nil {
		cfg.Clone = func(v T) T { return v }
	}
	if cfg.Notify == nil {
		cfg.Notify = LogNotifier{}
	}
	return &ValueEditor[T]{cfg: cfg}
}

// Load seeds the draft from the shared context slice on first mount. When
// the value was absent, fallback supplies the empty default shape.
func (e *ValueEditor[T]) Load(value T, present bool, fallback func() T) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if present {
		e.draft = e.cfg.Clone(value)
	} else if fallback != nil {
		e.draft = fallback()
	}
	e.loaded = true
	e.status = Clean
}

// Resync adopts an external context change wholesale when it differs from
// the current draft. No merge is attempted: the incoming value wins.
func (e *ValueEditor[T]) Resync(value T) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if reflect.DeepEqual(value, e.draft) {
		return
	}
	e.draft = e.cfg.Clone(value)
	e.status = Clean
}

// Edit mutates the draft and mirrors the whole value into the shared
// context so the preview reflects it without waiting for a save. Mirroring
// is unconditional; it is not gated on validity.
func (e *ValueEditor[T]) Edit(fn func(*T)) {
	e.mu.Lock()
	fn(&e.draft)
	e.status = Dirty
	snap := e.cfg.Clone(e.draft)
	e.mu.Unlock()

	if e.cfg.EnableNext != nil {
		e.cfg.EnableNext(false)
	}
	if e.cfg.Mirror != nil {
		e.cfg.Mirror(snap)
	}
}

// Value returns a copy of the current draft.
func (e *ValueEditor[T]) Value() T {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.cfg.Clone(e.draft)
}

func (e *ValueEditor[T]) Status() Status {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.status
}

// Save normalizes the draft and submits it as a partial update. On failure
// the draft is left untouched and navigation is not advanced.
func (e *ValueEditor[T]) Save(ctx context.Context) error {
	e.mu.Lock()
	if e.status == Saving {
		e.mu.Unlock()
		return ErrSaveInFlight
	}
	if e.cfg.Validate != nil {
		if err := e.cfg.Validate(e.draft); err != nil {
			e.mu.Unlock()
			e.cfg.Notify.Error(fmt.Sprintf("%s: %v", e.cfg.Name, err))
			return fmt.Errorf("%w: %v", ErrValidation, err)
		}
	}
	snap := e.cfg.Clone(e.draft)
	e.status = Saving
	e.mu.Unlock()

	err := e.cfg.Persist(ctx, e.cfg.Patch(snap))

	e.mu.Lock()
	if err != nil {
		e.status = Dirty
		e.mu.Unlock()
		e.cfg.Notify.Error(fmt.Sprintf("failed to save %s: %v", e.cfg.Name, err))
		return err
	}
	// an edit that landed while the save was in flight keeps the section
	// dirty; only the snapshot that went out is known to be persisted
	saved := reflect.DeepEqual(e.draft, snap)
	if saved {
		e.status = Clean
	} else {
		e.status = Dirty
	}
	e.mu.Unlock()

	if saved && e.cfg.EnableNext != nil {
		e.cfg.EnableNext(true)
	}
	e.cfg.Notify.Success(e.cfg.Name + " saved")
	return nil
}

// ListConfig wires a list section editor.
type ListConfig[E any] struct {
	Name       string
	NewEntry   func() E // default field values for an appended entry
	MinEntries int
	Mirror     func([]E)
	Patch      func([]E) model.Patch
	Validate   func([]E) error
	Persist    Persister
	Notify     Notifier
	EnableNext func(bool)
}

// ListEditor owns the local draft for an entry-list section (experience,
// education, skills, projects, item sections). It is a ValueEditor over the
// slice plus positional entry operations.
type ListEditor[E any] struct {
	inner *ValueEditor[[]E]
	cfg   ListConfig[E]
}

func NewListEditor[E any](cfg ListConfig[E]) *ListEditor[E] {
	inner := NewValueEditor(ValueConfig[[]E]{
		Name:       cfg.Name,
		Clone:      func(l []E) []E { return append([]E(nil), l...) },
		Mirror:     cfg.Mirror,
		Patch:      cfg.Patch,
		Validate:   cfg.Validate,
		Persist:    cfg.Persist,
		Notify:     cfg.Notify,
		EnableNext: cfg.EnableNext,
	})
	return &ListEditor[E]{inner: inner, cfg: cfg}
}

// Load seeds the draft; an absent or empty slice becomes a single blank
// entry so required sections always show an editable row.
func (l *ListEditor[E]) Load(list []E) {
	l.inner.Load(list, len(list) > 0, func() []E {
		if l.cfg.NewEntry == nil {
			return []E{}
		}
		return []E{l.cfg.NewEntry()}
	})
}

func (l *ListEditor[E]) Resync(list []E) { l.inner.Resync(list) }

func (l *ListEditor[E]) Entries() []E { return l.inner.Value() }

func (l *ListEditor[E]) Len() int { return len(l.inner.Value()) }

func (l *ListEditor[E]) Status() Status { return l.inner.Status() }

// Edit updates one field of one entry by position.
func (l *ListEditor[E]) Edit(i int, fn func(*E)) error {
	var outOfRange bool
	l.inner.Edit(func(list *[]E) {
		if i < 0 || i >= len(*list) {
			outOfRange = true
			return
		}
		fn(&(*list)[i])
	})
	if outOfRange {
		return fmt.Errorf("entry %d out of range", i)
	}
	return nil
}

// Add appends a blank entry with the section's default field values.
func (l *ListEditor[E]) Add() {
	l.inner.Edit(func(list *[]E) {
		*list = append(*list, l.cfg.NewEntry())
	})
}

// Remove drops one entry by position. Sections with a minimum-one-entry
// rule refuse to drop the last remaining entry.
func (l *ListEditor[E]) Remove(i int) error {
	cur := l.inner.Value()
	if i < 0 || i >= len(cur) {
		return fmt.Errorf("entry %d out of range", i)
	}
	if len(cur) <= l.cfg.MinEntries {
		return ErrMinEntries
	}
	l.inner.Edit(func(list *[]E) {
		*list = append((*list)[:i], (*list)[i+1:]...)
	})
	return nil
}

// RemoveLast drops the final entry, matching the "- Remove" control.
func (l *ListEditor[E]) RemoveLast() error {
	n := l.Len()
	if n == 0 {
		return ErrMinEntries
	}
	return l.Remove(n - 1)
}

func (l *ListEditor[E]) Save(ctx context.Context) error { return l.inner.Save(ctx) }
