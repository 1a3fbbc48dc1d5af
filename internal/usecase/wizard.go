package usecase

import (
	"context"
	"fmt"
	"sync"

	"resume-builder/internal/editor"
	"resume-builder/internal/model"
	"resume-builder/internal/state"
)

// Step enumerates the wizard's sequential sections.
type Step int

const (
	StepPersonal Step = iota
	StepSummary
	StepExperience
	StepEducation
	StepSkills
	StepProjects
	StepSections
	stepCount
)

func (s Step) String() string {
	switch s {
	case StepPersonal:
		return "personal"
	case StepSummary:
		return "summary"
	case StepExperience:
		return "experience"
	case StepEducation:
		return "education"
	case StepSkills:
		return "skills"
	case StepProjects:
		return "projects"
	case StepSections:
		return "sections"
	}
	return "unknown"
}

// ErrStepLocked reports forward navigation attempted before the current
// section's save succeeded.
var ErrStepLocked = fmt.Errorf("current step has unsaved required fields")

// Wizard opens one resume record for editing: it owns the shared context,
// one editor per section, and the forward-navigation gate each editor
// toggles through its EnableNext callback.
type Wizard struct {
	mu          sync.Mutex
	step        Step
	nextAllowed map[Step]bool

	recordID string
	resume   *state.Context
	persist  editor.Persister
	notify   editor.Notifier

	ai           AIClient
	summaryGen   editor.SuggestControl
	highlightGen editor.SuggestControl
	projectGen   editor.SuggestControl

	Personal   *editor.ValueEditor[model.PersonalDetail]
	Summary    *editor.ValueEditor[string]
	Theme      *editor.ValueEditor[string]
	Experience *editor.ListEditor[model.Experience]
	Education  *editor.ListEditor[model.Education]
	Skills     *editor.ListEditor[model.Skill]
	Projects   *editor.ListEditor[model.Project]
}

// OpenWizard loads the record and builds the editors against a fresh
// shared context. The context lives until the wizard is discarded; it is
// never persisted itself. aiClient may be nil; generate actions then fail
// with ErrAIUnavailable.
func OpenWizard(ctx context.Context, client StoreClient, aiClient AIClient, id string, notify editor.Notifier) (*Wizard, error) {
	rec, err := client.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("opening resume %s: %w", id, err)
	}
	if notify == nil {
		notify = editor.LogNotifier{}
	}

	w := &Wizard{
		step:        StepPersonal,
		nextAllowed: map[Step]bool{},
		recordID:    id,
		resume:      state.NewContext(rec.Resume),
		notify:      notify,
		ai:          aiClient,
	}
	w.persist = func(c context.Context, p model.Patch) error {
		_, err := client.UpdateByID(c, id, p)
		return err
	}

	w.Personal = editor.NewPersonalEditor(w.deps(StepPersonal))
	w.Summary = editor.NewSummaryEditor(w.deps(StepSummary))
	w.Experience = editor.NewExperienceEditor(w.deps(StepExperience))
	w.Education = editor.NewEducationEditor(w.deps(StepEducation))
	w.Skills = editor.NewSkillsEditor(w.deps(StepSkills))
	w.Projects = editor.NewProjectsEditor(w.deps(StepProjects))
	w.Theme = editor.NewThemeColorEditor(editor.Deps{
		Context: w.resume,
		Persist: w.persist,
		Notify:  w.notify,
	})
	return w, nil
}

// PickThemeColor mirrors the color into the preview and saves it
// immediately, the way the color picker commits on click.
func (w *Wizard) PickThemeColor(ctx context.Context, color string) error {
	w.Theme.Edit(func(c *string) { *c = color })
	return w.Theme.Save(ctx)
}

func (w *Wizard) deps(step Step) editor.Deps {
	return editor.Deps{
		Context: w.resume,
		Persist: w.persist,
		Notify:  w.notify,
		EnableNext: func(ok bool) {
			w.mu.Lock()
			w.nextAllowed[step] = ok
			w.mu.Unlock()
		},
	}
}

// OpenSection builds an editor for an optional named section on demand.
// Optional sections never gate navigation.
func (w *Wizard) OpenSection(kind model.SectionKind, title string) *editor.SectionEditor {
	seed := model.Section{Kind: kind, Title: title}
	switch kind {
	case model.SectionHighlights:
		seed.Body = model.SectionBody{Kind: model.BodyItems, Items: []model.SectionItem{}}
	case model.SectionAchievements, model.SectionDeclaration:
		seed.Body = model.SectionBody{Kind: model.BodyRich}
	default:
		seed.Body = model.SectionBody{Kind: model.BodyItems, Items: []model.SectionItem{{}}}
	}
	d := editor.Deps{Context: w.resume, Persist: w.persist, Notify: w.notify}
	return editor.NewSectionEditor(d, seed)
}

func (w *Wizard) RecordID() string { return w.recordID }

// Resume exposes the shared context for the preview renderer.
func (w *Wizard) Resume() *state.Context { return w.resume }

func (w *Wizard) Step() Step {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.step
}

// CanAdvance reports whether the current step's editor has allowed forward
// navigation (required fields valid and save succeeded).
func (w *Wizard) CanAdvance() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.step == StepSections {
		return true
	}
	return w.nextAllowed[w.step]
}

func (w *Wizard) Next() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.step != StepSections && !w.nextAllowed[w.step] {
		return ErrStepLocked
	}
	if w.step < stepCount-1 {
		w.step++
	}
	return nil
}

// Prev never gates; going back is always allowed.
func (w *Wizard) Prev() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.step > 0 {
		w.step--
	}
}
