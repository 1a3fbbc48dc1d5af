package state

import (
	"testing"

	"resume-builder/internal/model"

	"github.com/stretchr/testify/require"
)

func TestFunctionalUpdateSeesLatestValue(t *testing.T) {
	ctx := NewContext(model.Resume{})

	ctx.Update(func(r *model.Resume) { r.Summary = "first" })
	ctx.Update(func(r *model.Resume) { r.Summary = r.Summary + ", second" })

	require.Equal(t, "first, second", ctx.Snapshot().Summary)
}

func TestSettersDoNotAliasCallerSlices(t *testing.T) {
	ctx := NewContext(model.Resume{})

	skills := []model.Skill{{Name: "Go", Rating: 5}}
	ctx.SetSkills(skills)
	skills[0].Name = "mutated"

	require.Equal(t, "Go", ctx.Snapshot().Skills[0].Name)
}

func TestSnapshotIsACopy(t *testing.T) {
	ctx := NewContext(model.Resume{Education: []model.Education{{UniversityName: "X"}}})

	snap := ctx.Snapshot()
	snap.Education[0].UniversityName = "mutated"

	require.Equal(t, "X", ctx.Snapshot().Education[0].UniversityName)
}

func TestWatcherObservesEveryUpdate(t *testing.T) {
	ctx := NewContext(model.Resume{})

	var seen []string
	cancel := ctx.Watch(func(r model.Resume) { seen = append(seen, r.Summary) })

	ctx.SetSummary("a")
	ctx.SetSummary("ab")
	cancel()
	ctx.SetSummary("abc")

	require.Equal(t, []string{"a", "ab"}, seen)
}

func TestSetSectionReplacesMatchingKind(t *testing.T) {
	ctx := NewContext(model.Resume{})

	ctx.SetSection(model.Section{Kind: model.SectionHighlights, Title: "Highlights"})
	ctx.SetSection(model.Section{Kind: model.SectionHighlights, Title: "Career Highlights"})

	snap := ctx.Snapshot()
	require.Len(t, snap.Sections, 1)
	require.Equal(t, "Career Highlights", snap.Sections[0].Title)
}

func TestSetSectionCustomMatchesByTitle(t *testing.T) {
	ctx := NewContext(model.Resume{})

	ctx.SetSection(model.Section{Kind: model.SectionCustom, Title: "Talks"})
	ctx.SetSection(model.Section{Kind: model.SectionCustom, Title: "Volunteering"})
	ctx.SetSection(model.Section{Kind: model.SectionCustom, Title: "Talks", Body: model.SectionBody{
		Kind: model.BodyItems, Items: []model.SectionItem{{Title: "GopherCon"}},
	}})

	snap := ctx.Snapshot()
	require.Len(t, snap.Sections, 2)
	require.Equal(t, "Talks", snap.Sections[0].Title)
	require.Len(t, snap.Sections[0].Body.Items, 1)
}

func TestRemoveSection(t *testing.T) {
	ctx := NewContext(model.Resume{})
	ctx.SetSection(model.Section{Kind: model.SectionHighlights, Title: "Highlights"})
	ctx.SetSection(model.Section{Kind: model.SectionCustom, Title: "Talks"})

	ctx.RemoveSection(model.SectionHighlights, "")

	snap := ctx.Snapshot()
	require.Len(t, snap.Sections, 1)
	require.Equal(t, model.SectionCustom, snap.Sections[0].Kind)
}
