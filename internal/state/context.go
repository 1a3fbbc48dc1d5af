// Package state holds the shared resume context: the single in-memory
// source of truth the preview reads while the wizard edits it. Each section
// editor writes only through the setter for its own slice.
package state

import (
	"sync"

	"resume-builder/internal/model"
)

// Context is the session-scoped projection of the currently open resume.
// It is never persisted itself; persistence happens through explicit saves
// against the remote store. Mutation normally happens on the wizard's
// single logical thread, but save callbacks may complete asynchronously,
// so access is guarded by a mutex.
type Context struct {
	mu       sync.Mutex
	resume   model.Resume
	watchers map[int]func(model.Resume)
	nextID   int
}

func NewContext(r model.Resume) *Context {
	r.EnsureDefaults()
	return &Context{resume: r.Clone(), watchers: map[int]func(model.Resume){}}
}

// Snapshot returns a deep copy of the current resume.
func (c *Context) Snapshot() model.Resume {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.resume.Clone()
}

// Update applies fn to the current value. Updates are applied to the latest
// value even when several are queued, so functional updates never operate
// on a stale resume.
func (c *Context) Update(fn func(*model.Resume)) {
	c.mu.Lock()
	fn(&c.resume)
	c.resume.EnsureDefaults()
	snap := c.resume.Clone()
	watchers := make([]func(model.Resume), 0, len(c.watchers))
	for _, w := range c.watchers {
		watchers = append(watchers, w)
	}
	c.mu.Unlock()

	for _, w := range watchers {
		w(snap)
	}
}

// Replace swaps in a whole new resume value, e.g. after reloading the
// record from the store.
func (c *Context) Replace(r model.Resume) {
	c.Update(func(cur *model.Resume) { *cur = r.Clone() })
}

// Watch registers a callback invoked with a snapshot after every update.
// The preview renderer observes the context through this. The returned
// function cancels the registration.
func (c *Context) Watch(fn func(model.Resume)) func() {
	c.mu.Lock()
	id := c.nextID
	c.nextID++
	c.watchers[id] = fn
	c.mu.Unlock()
	return func() {
		c.mu.Lock()
		delete(c.watchers, id)
		c.mu.Unlock()
	}
}

// Typed per-slice setters. Sections own exactly one of these; going through
// them instead of Update keeps slice ownership a checked contract.

func (c *Context) SetTitle(title string) {
	c.Update(func(r *model.Resume) { r.Title = title })
}

func (c *Context) SetThemeColor(color string) {
	c.Update(func(r *model.Resume) { r.ThemeColor = color })
}

func (c *Context) SetPersonal(p model.PersonalDetail) {
	c.Update(func(r *model.Resume) { r.PersonalDetail = p })
}

func (c *Context) SetSummary(summary string) {
	c.Update(func(r *model.Resume) { r.Summary = summary })
}

func (c *Context) SetExperience(list []model.Experience) {
	cp := append([]model.Experience(nil), list...)
	c.Update(func(r *model.Resume) { r.Experience = cp })
}

func (c *Context) SetEducation(list []model.Education) {
	cp := append([]model.Education(nil), list...)
	c.Update(func(r *model.Resume) { r.Education = cp })
}

func (c *Context) SetSkills(list []model.Skill) {
	cp := append([]model.Skill(nil), list...)
	c.Update(func(r *model.Resume) { r.Skills = cp })
}

func (c *Context) SetProjects(list []model.Project) {
	cp := append([]model.Project(nil), list...)
	c.Update(func(r *model.Resume) { r.Projects = cp })
}

// SetSection replaces the section with the same kind and title, or appends
// it to the active list when absent. Standard kinds match on kind alone so
// a retitled highlights section does not duplicate.
func (c *Context) SetSection(s model.Section) {
	c.Update(func(r *model.Resume) {
		for i := range r.Sections {
			if r.Sections[i].Kind != s.Kind {
				continue
			}
			if s.Kind == model.SectionCustom && r.Sections[i].Title != s.Title {
				continue
			}
			r.Sections[i] = s
			return
		}
		r.Sections = append(r.Sections, s)
	})
}

// RemoveSection drops a section from the active list.
func (c *Context) RemoveSection(kind model.SectionKind, title string) {
	c.Update(func(r *model.Resume) {
		out := r.Sections[:0]
		for _, s := range r.Sections {
			if s.Kind == kind && (kind != model.SectionCustom || s.Title == title) {
				continue
			}
			out = append(out, s)
		}
		r.Sections = out
	})
}
