package usecase

import (
	"context"
	"testing"

	"resume-builder/internal/model"

	"github.com/stretchr/testify/require"
)

func openTestWizard(t *testing.T) (*Wizard, *fakeStore) {
	t.Helper()
	f := withTitles("My Resume")
	w, err := OpenWizard(context.Background(), f, nil, "doc-My Resume", &captureNotifier{})
	require.NoError(t, err)
	return w, f
}

func TestOpenWizardUnknownRecord(t *testing.T) {
	f := &fakeStore{}
	_, err := OpenWizard(context.Background(), f, nil, "missing", &captureNotifier{})
	require.Error(t, err)
}

func TestPickThemeColorMirrorsAndSaves(t *testing.T) {
	w, f := openTestWizard(t)

	require.NoError(t, w.PickThemeColor(context.Background(), "#ff8800"))
	require.Equal(t, "#ff8800", w.Resume().Snapshot().ThemeColor)
	require.Len(t, f.patches, 1)
	require.Equal(t, "#ff8800", f.patches[0]["themeColor"])
}

func TestPickThemeColorRejectsNonHexValues(t *testing.T) {
	w, f := openTestWizard(t)

	err := w.PickThemeColor(context.Background(), "tomato")
	require.Error(t, err)
	require.Empty(t, f.patches, "invalid color never reaches the store")
}

func TestNextGatedOnSavedStep(t *testing.T) {
	w, _ := openTestWizard(t)

	require.Equal(t, StepPersonal, w.Step())
	require.False(t, w.CanAdvance())
	require.ErrorIs(t, w.Next(), ErrStepLocked)

	w.Personal.Edit(func(p *model.PersonalDetail) {
		p.FirstName = "Ada"
		p.LastName = "Lovelace"
		p.JobTitle = "Engineer"
	})
	require.False(t, w.CanAdvance(), "editing alone does not unlock")

	require.NoError(t, w.Personal.Save(context.Background()))
	require.True(t, w.CanAdvance())
	require.NoError(t, w.Next())
	require.Equal(t, StepSummary, w.Step())
}

func TestEditAfterSaveRelocksStep(t *testing.T) {
	w, _ := openTestWizard(t)

	w.Personal.Edit(func(p *model.PersonalDetail) {
		p.FirstName = "Ada"
		p.LastName = "Lovelace"
		p.JobTitle = "Engineer"
	})
	require.NoError(t, w.Personal.Save(context.Background()))
	require.True(t, w.CanAdvance())

	w.Personal.Edit(func(p *model.PersonalDetail) { p.JobTitle = "Staff Engineer" })
	require.False(t, w.CanAdvance())
}

func TestPrevNeverGates(t *testing.T) {
	w, _ := openTestWizard(t)

	w.Prev()
	require.Equal(t, StepPersonal, w.Step(), "cannot go before the first step")

	w.Personal.Edit(func(p *model.PersonalDetail) {
		p.FirstName = "Ada"
		p.LastName = "Lovelace"
		p.JobTitle = "Engineer"
	})
	require.NoError(t, w.Personal.Save(context.Background()))
	require.NoError(t, w.Next())

	w.Prev()
	require.Equal(t, StepPersonal, w.Step())
}

func TestSectionsStepNeverGates(t *testing.T) {
	w, _ := openTestWizard(t)

	// walk forward by saving each gated step
	w.Personal.Edit(func(p *model.PersonalDetail) {
		p.FirstName = "Ada"
		p.LastName = "Lovelace"
		p.JobTitle = "Engineer"
	})
	require.NoError(t, w.Personal.Save(context.Background()))
	require.NoError(t, w.Next())

	w.Summary.Edit(func(s *string) { *s = "A summary." })
	require.NoError(t, w.Summary.Save(context.Background()))
	require.NoError(t, w.Next())

	require.NoError(t, w.Experience.Edit(0, func(x *model.Experience) { x.Title = "Engineer" }))
	require.NoError(t, w.Experience.Save(context.Background()))
	require.NoError(t, w.Next())

	require.NoError(t, w.Education.Edit(0, func(e *model.Education) { e.UniversityName = "MIT" }))
	require.NoError(t, w.Education.Save(context.Background()))
	require.NoError(t, w.Next())

	require.NoError(t, w.Skills.Edit(0, func(s *model.Skill) { s.Name = "Go" }))
	require.NoError(t, w.Skills.Save(context.Background()))
	require.NoError(t, w.Next())

	require.NoError(t, w.Projects.Edit(0, func(p *model.Project) { p.Name = "Builder" }))
	require.NoError(t, w.Projects.Save(context.Background()))
	require.NoError(t, w.Next())

	require.Equal(t, StepSections, w.Step())
	require.True(t, w.CanAdvance())
	require.NoError(t, w.Next(), "final step never locks")
	require.Equal(t, StepSections, w.Step(), "and never advances past itself")
}

func TestEditorsShareOneContext(t *testing.T) {
	w, _ := openTestWizard(t)

	w.Summary.Edit(func(s *string) { *s = "Shared summary" })
	require.NoError(t, w.Skills.Edit(0, func(s *model.Skill) { s.Name = "Go" }))

	snap := w.Resume().Snapshot()
	require.Equal(t, "Shared summary", snap.Summary)
	require.Equal(t, "Go", snap.Skills[0].Name)
}

func TestOpenSectionSeedShapes(t *testing.T) {
	w, _ := openTestWizard(t)

	h := w.OpenSection(model.SectionHighlights, "Highlights")
	require.Equal(t, model.BodyItems, h.Value().Body.Kind)

	d := w.OpenSection(model.SectionDeclaration, "Declaration")
	require.Equal(t, model.BodyRich, d.Value().Body.Kind)

	c := w.OpenSection(model.SectionCustom, "Talks")
	require.Equal(t, model.BodyItems, c.Value().Body.Kind)
	require.Len(t, c.Value().Body.Items, 1, "custom sections start with one editable item")
}

func TestOpenSectionLoadsExistingSection(t *testing.T) {
	w, _ := openTestWizard(t)

	first := w.OpenSection(model.SectionHighlights, "Highlights")
	first.AddItem()
	require.NoError(t, first.EditItem(0, func(it *model.SectionItem) { it.Title = "Shipped v2" }))

	reopened := w.OpenSection(model.SectionHighlights, "Highlights")
	require.Len(t, reopened.Value().Body.Items, 1)
	require.Equal(t, "Shipped v2", reopened.Value().Body.Items[0].Title)
}
