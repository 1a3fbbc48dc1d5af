package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"resume-builder/internal/editor"
	"resume-builder/internal/model"
	"resume-builder/internal/store"

	"github.com/google/uuid"
)

// StoreClient is the consumed capability set of the remote resume store.
type StoreClient interface {
	Create(ctx context.Context, ownerEmail, userName, title, correlationID string) (*store.Record, error)
	ListByOwner(ctx context.Context, ownerEmail string) ([]store.Record, error)
	GetByID(ctx context.Context, id string) (*store.Record, error)
	UpdateByID(ctx context.Context, id string, patch model.Patch) (*store.Record, error)
	DeleteByID(ctx context.Context, id string) error
}

const maxTitleLen = 50

// Dashboard drives the resume list: enumerate by owner, create, delete. It
// keeps the last fetched list so a delete can remove the record from view
// before the remote call resolves.
type Dashboard struct {
	store  StoreClient
	notify editor.Notifier

	mu     sync.Mutex
	cached []store.Record
}

func NewDashboard(store StoreClient, notify editor.Notifier) *Dashboard {
	if notify == nil {
		notify = editor.LogNotifier{}
	}
	return &Dashboard{store: store, notify: notify}
}

// Cached returns a copy of the last fetched, unfiltered list.
func (d *Dashboard) Cached() []store.Record {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]store.Record(nil), d.cached...)
}

func (d *Dashboard) setCached(records []store.Record) {
	d.mu.Lock()
	d.cached = append([]store.Record(nil), records...)
	d.mu.Unlock()
}

func (d *Dashboard) dropCached(id string) {
	d.mu.Lock()
	kept := d.cached[:0]
	for _, r := range d.cached {
		if r.DocumentID != id {
			kept = append(kept, r)
		}
	}
	d.cached = kept
	d.mu.Unlock()
}

// List fetches every resume owned by ownerEmail and applies the title
// filter client-side: case-insensitive substring match, never server-side.
func (d *Dashboard) List(ctx context.Context, ownerEmail, titleFilter string) ([]store.Record, error) {
	records, err := d.store.ListByOwner(ctx, ownerEmail)
	if err != nil {
		return nil, err
	}
	d.setCached(records)
	if titleFilter == "" {
		return records, nil
	}
	needle := strings.ToLower(titleFilter)
	out := make([]store.Record, 0, len(records))
	for _, r := range records {
		if strings.Contains(strings.ToLower(r.Title), needle) {
			out = append(out, r)
		}
	}
	return out, nil
}

// Create validates the title, generates the correlation id and persists a
// new record. It returns the store-assigned document id to navigate to; a
// response without one is a failure even on a 2xx status.
func (d *Dashboard) Create(ctx context.Context, ownerEmail, userName, title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		d.notify.Error("please enter a resume title")
		return "", fmt.Errorf("%w: title is required", editor.ErrValidation)
	}
	if len(title) > maxTitleLen {
		d.notify.Error(fmt.Sprintf("title must be %d characters or less", maxTitleLen))
		return "", fmt.Errorf("%w: title too long", editor.ErrValidation)
	}

	rec, err := d.store.Create(ctx, ownerEmail, userName, title, uuid.NewString())
	if err != nil {
		d.notify.Error(fmt.Sprintf("failed to create resume: %v", err))
		return "", err
	}
	d.notify.Success("resume created")
	return rec.DocumentID, nil
}

// Delete removes the record optimistically: it leaves the cached list at
// once and is restored when the remote delete fails. The list is refreshed
// from the store regardless of the outcome, so a failed delete makes the
// record reappear instead of leaving the list stale.
func (d *Dashboard) Delete(ctx context.Context, ownerEmail, id string) ([]store.Record, error) {
	prev := d.Cached()
	err := editor.PerformOptimistic(ctx,
		func() { d.dropCached(id) },
		func(c context.Context) error { return d.store.DeleteByID(c, id) },
		func() { d.setCached(prev) },
	)
	if err != nil {
		d.notify.Error(fmt.Sprintf("failed to delete resume: %v", err))
	} else {
		d.notify.Success("resume deleted")
	}
	return d.List(ctx, ownerEmail, "")
}
