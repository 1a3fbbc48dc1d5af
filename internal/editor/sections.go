package editor

import (
	"fmt"
	"regexp"
	"strings"

	"resume-builder/internal/model"
	"resume-builder/internal/state"
)

// Deps carries what every concrete section editor needs: the shared context
// it mirrors into, the persist function bound to the open record, and the
// wizard's navigation callback.
type Deps struct {
	Context    *state.Context
	Persist    Persister
	Notify     Notifier
	EnableNext func(bool)
}

func requireField(value, label string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%s is required", label)
	}
	return nil
}

// NewPersonalEditor edits the personal detail slice. First name, last name
// and job title are required before a save goes out.
func NewPersonalEditor(d Deps) *ValueEditor[model.PersonalDetail] {
	e := NewValueEditor(ValueConfig[model.PersonalDetail]{
		Name:   "personal details",
		Mirror: d.Context.SetPersonal,
		Patch: func(p model.PersonalDetail) model.Patch {
			return model.PersonalPatch(p)
		},
		Validate: func(p model.PersonalDetail) error {
			if err := requireField(p.FirstName, "first name"); err != nil {
				return err
			}
			if err := requireField(p.LastName, "last name"); err != nil {
				return err
			}
			return requireField(p.JobTitle, "job title")
		},
		Persist:    d.Persist,
		Notify:     d.Notify,
		EnableNext: d.EnableNext,
	})
	snap := d.Context.Snapshot()
	e.Load(snap.PersonalDetail, true, nil)
	return e
}

func NewSummaryEditor(d Deps) *ValueEditor[string] {
	e := NewValueEditor(ValueConfig[string]{
		Name:   "summary",
		Mirror: d.Context.SetSummary,
		Patch:  func(s string) model.Patch { return model.SummaryPatch(s) },
		Validate: func(s string) error {
			return requireField(s, "summary")
		},
		Persist:    d.Persist,
		Notify:     d.Notify,
		EnableNext: d.EnableNext,
	})
	snap := d.Context.Snapshot()
	e.Load(snap.Summary, snap.Summary != "", nil)
	return e
}

var themeColorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{3,8}$`)

// NewThemeColorEditor edits the accent color. Picking a color mirrors into
// the preview immediately; it never gates navigation.
func NewThemeColorEditor(d Deps) *ValueEditor[string] {
	e := NewValueEditor(ValueConfig[string]{
		Name:   "theme color",
		Mirror: d.Context.SetThemeColor,
		Patch:  func(c string) model.Patch { return model.ThemeColorPatch(c) },
		Validate: func(c string) error {
			if !themeColorPattern.MatchString(c) {
				return fmt.Errorf("%q is not a hex color", c)
			}
			return nil
		},
		Persist: d.Persist,
		Notify:  d.Notify,
	})
	snap := d.Context.Snapshot()
	e.Load(snap.ThemeColor, snap.ThemeColor != "", nil)
	return e
}

func NewExperienceEditor(d Deps) *ListEditor[model.Experience] {
	e := NewListEditor(ListConfig[model.Experience]{
		Name:       "experience",
		NewEntry:   func() model.Experience { return model.Experience{} },
		MinEntries: 1,
		Mirror:     d.Context.SetExperience,
		Patch: func(list []model.Experience) model.Patch {
			return model.ExperiencePatch(list)
		},
		Persist:    d.Persist,
		Notify:     d.Notify,
		EnableNext: d.EnableNext,
	})
	e.Load(d.Context.Snapshot().Experience)
	return e
}

func NewEducationEditor(d Deps) *ListEditor[model.Education] {
	e := NewListEditor(ListConfig[model.Education]{
		Name:       "education",
		NewEntry:   func() model.Education { return model.Education{} },
		MinEntries: 1,
		Mirror:     d.Context.SetEducation,
		Patch: func(list []model.Education) model.Patch {
			return model.EducationPatch(list)
		},
		Persist:    d.Persist,
		Notify:     d.Notify,
		EnableNext: d.EnableNext,
	})
	e.Load(d.Context.Snapshot().Education)
	return e
}

func NewSkillsEditor(d Deps) *ListEditor[model.Skill] {
	e := NewListEditor(ListConfig[model.Skill]{
		Name:       "skills",
		NewEntry:   func() model.Skill { return model.Skill{Rating: 0} },
		MinEntries: 1,
		Mirror:     d.Context.SetSkills,
		Patch: func(list []model.Skill) model.Patch {
			return model.SkillsPatch(list)
		},
		Persist:    d.Persist,
		Notify:     d.Notify,
		EnableNext: d.EnableNext,
	})
	e.Load(d.Context.Snapshot().Skills)
	return e
}

func NewProjectsEditor(d Deps) *ListEditor[model.Project] {
	e := NewListEditor(ListConfig[model.Project]{
		Name:       "projects",
		NewEntry:   func() model.Project { return model.Project{} },
		MinEntries: 1,
		Mirror:     d.Context.SetProjects,
		Patch: func(list []model.Project) model.Patch {
			return model.ProjectsPatch(list)
		},
		Persist:    d.Persist,
		Notify:     d.Notify,
		EnableNext: d.EnableNext,
	})
	e.Load(d.Context.Snapshot().Projects)
	return e
}

func replaceSection(list []model.Section, s model.Section) []model.Section {
	out := append([]model.Section(nil), list...)
	for i := range out {
		if out[i].Kind != s.Kind {
			continue
		}
		if s.Kind == model.SectionCustom && out[i].Title != s.Title {
			continue
		}
		out[i] = s
		return out
	}
	return append(out, s)
}

// SectionEditor edits one optional named section. The persisted patch
// always carries the full ordered section list with this section replaced,
// since the store treats the list as a single field.
type SectionEditor struct {
	*ValueEditor[model.Section]
}

// NewSectionEditor edits a named section (highlights, achievements,
// declaration, or a custom section addressed by title). When the section is
// not yet active, seed supplies its initial shape.
func NewSectionEditor(d Deps, seed model.Section) *SectionEditor {
	e := NewValueEditor(ValueConfig[model.Section]{
		Name: string(seed.Kind) + " section",
		Clone: func(s model.Section) model.Section {
			cp := s
			cp.Body.Items = append([]model.SectionItem(nil), s.Body.Items...)
			return cp
		},
		Mirror: d.Context.SetSection,
		Patch: func(s model.Section) model.Patch {
			snap := d.Context.Snapshot()
			return model.SectionsPatch(replaceSection(snap.Sections, s))
		},
		Persist:    d.Persist,
		Notify:     d.Notify,
		EnableNext: d.EnableNext,
	})

	snap := d.Context.Snapshot()
	var current *model.Section
	for i := range snap.Sections {
		sec := snap.Sections[i]
		if sec.Kind == seed.Kind && (seed.Kind != model.SectionCustom || sec.Title == seed.Title) {
			current = &sec
			break
		}
	}
	if current != nil {
		e.Load(*current, true, nil)
	} else {
		e.Load(seed, true, nil)
	}
	return &SectionEditor{ValueEditor: e}
}

func (s *SectionEditor) SetTitle(title string) {
	s.Edit(func(sec *model.Section) { sec.Title = title })
}

func (s *SectionEditor) SetText(text string) {
	s.Edit(func(sec *model.Section) { sec.Body.Text = text })
}

func (s *SectionEditor) AddItem() {
	s.Edit(func(sec *model.Section) {
		sec.Body.Items = append(sec.Body.Items, model.SectionItem{})
	})
}

func (s *SectionEditor) EditItem(i int, fn func(*model.SectionItem)) error {
	var outOfRange bool
	s.Edit(func(sec *model.Section) {
		if i < 0 || i >= len(sec.Body.Items) {
			outOfRange = true
			return
		}
		fn(&sec.Body.Items[i])
	})
	if outOfRange {
		return fmt.Errorf("item %d out of range", i)
	}
	return nil
}

// RemoveItem refuses to drop the last remaining item so an item section
// always shows an editable row.
func (s *SectionEditor) RemoveItem(i int) error {
	cur := s.Value()
	if i < 0 || i >= len(cur.Body.Items) {
		return fmt.Errorf("item %d out of range", i)
	}
	if len(cur.Body.Items) <= 1 {
		return ErrMinEntries
	}
	s.Edit(func(sec *model.Section) {
		sec.Body.Items = append(sec.Body.Items[:i], sec.Body.Items[i+1:]...)
	})
	return nil
}
