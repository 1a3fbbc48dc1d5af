package preview

import (
	"testing"

	"resume-builder/internal/model"

	"github.com/stretchr/testify/require"
)

func TestBuildOmitsUnlabeledEntries(t *testing.T) {
	r := model.Resume{
		Experience: []model.Experience{
			{Title: "Engineer", CompanyName: "Acme"},
			{Title: "  ", CompanyName: "ghost row"},
		},
		Education: []model.Education{
			{UniversityName: "MIT"},
			{Degree: "BSc"},
			{Description: "neither university nor degree"},
		},
		Projects: []model.Project{
			{Name: "Builder"},
			{Description: "unnamed, omitted"},
		},
	}

	doc := Build(r)
	require.Len(t, doc.Experience, 1)
	require.Len(t, doc.Education, 2)
	require.Len(t, doc.Projects, 1)
}

func TestBuildGroupsSkillsByCategoryFirstSeen(t *testing.T) {
	r := model.Resume{Skills: []model.Skill{
		{Name: "Go", Category: "Backend"},
		{Name: "React", Category: "Frontend"},
		{Name: "Postgres", Category: "Backend"},
		{Name: "", Category: "Backend"}, // blank name, omitted
		{Name: "Docker"},                // no category -> default group
	}}

	doc := Build(r)
	require.Len(t, doc.SkillGroups, 3)
	require.Equal(t, "Backend", doc.SkillGroups[0].Category)
	require.Len(t, doc.SkillGroups[0].Skills, 2)
	require.Equal(t, "Frontend", doc.SkillGroups[1].Category)
	require.Equal(t, "Technical", doc.SkillGroups[2].Category)
	require.Equal(t, "Docker", doc.SkillGroups[2].Skills[0].Name)
}

func TestBuildDefaultsThemeColorAndJoinsName(t *testing.T) {
	r := model.Resume{}
	r.FirstName = "Ada"
	r.LastName = "Lovelace"
	r.LinkedinURL = "https://linkedin.com/in/ada"

	doc := Build(r)
	require.Equal(t, "Ada Lovelace", doc.FullName)
	require.Equal(t, "#6b7280", doc.ThemeColor)
	require.Equal(t, []string{"https://linkedin.com/in/ada"}, doc.Links)
}

func TestPeriod(t *testing.T) {
	require.Equal(t, "", Period("", "", false))
	require.Equal(t, "2021 - Present", Period("2021", "", false))
	require.Equal(t, "2021 - Present", Period("2021", "2023", true))
	require.Equal(t, "2021 - 2023", Period("2021", "2023", false))
}

func TestRenderHTMLContainsDocumentContent(t *testing.T) {
	r := model.Resume{
		Summary: "Builds reliable services.",
		Skills:  []model.Skill{{Name: "Go", Rating: 5, Category: "Backend"}},
		Experience: []model.Experience{{
			Title: "Engineer", CompanyName: "Acme",
			StartDate: "2021", CurrentlyWorking: true,
		}},
	}
	r.FirstName = "Ada"
	r.LastName = "Lovelace"
	r.ThemeColor = "#112233"

	html, err := RenderHTML(Build(r))
	require.NoError(t, err)
	require.Contains(t, html, "Ada Lovelace")
	require.Contains(t, html, "Builds reliable services.")
	require.Contains(t, html, "Acme")
	require.Contains(t, html, "2021 - Present")
	require.Contains(t, html, "#112233")
}
