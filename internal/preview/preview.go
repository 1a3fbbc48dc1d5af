// Package preview projects the shared resume context into a display
// document. It is a pure read path: it never writes back into the context.
package preview

import (
	"strings"

	"resume-builder/internal/model"
)

const defaultSkillCategory = "Technical"

type SkillGroup struct {
	Category string
	Skills   []model.Skill
}

// Document is the renderable projection of a resume snapshot. Entries whose
// primary label field is blank are not real yet and are omitted, even when
// they exist in storage.
type Document struct {
	FullName    string
	JobTitle    string
	Address     string
	Phone       string
	Email       string
	Links       []string
	ThemeColor  string
	Summary     string
	Experience  []model.Experience
	Education   []model.Education
	SkillGroups []SkillGroup
	Projects    []model.Project
	Sections    []model.Section
}

// Build filters and groups a snapshot for display.
func Build(r model.Resume) Document {
	doc := Document{
		FullName:   strings.TrimSpace(r.FirstName + " " + r.LastName),
		JobTitle:   r.JobTitle,
		Address:    r.Address,
		Phone:      r.Phone,
		Email:      r.Email,
		ThemeColor: r.ThemeColor,
		Summary:    r.Summary,
		Sections:   r.Sections,
	}
	if doc.ThemeColor == "" {
		doc.ThemeColor = "#6b7280"
	}
	for _, u := range []string{r.LinkedinURL, r.GithubURL, r.PortfolioURL} {
		if u != "" {
			doc.Links = append(doc.Links, u)
		}
	}

	for _, e := range r.Experience {
		if strings.TrimSpace(e.Title) == "" {
			continue
		}
		doc.Experience = append(doc.Experience, e)
	}
	for _, e := range r.Education {
		if strings.TrimSpace(e.UniversityName) == "" && strings.TrimSpace(e.Degree) == "" {
			continue
		}
		doc.Education = append(doc.Education, e)
	}
	for _, p := range r.Projects {
		if strings.TrimSpace(p.Name) == "" {
			continue
		}
		doc.Projects = append(doc.Projects, p)
	}

	// Skills group by category in first-seen order; blank names are omitted.
	index := map[string]int{}
	for _, s := range r.Skills {
		if strings.TrimSpace(s.Name) == "" {
			continue
		}
		cat := s.Category
		if cat == "" {
			cat = defaultSkillCategory
		}
		i, ok := index[cat]
		if !ok {
			i = len(doc.SkillGroups)
			index[cat] = i
			doc.SkillGroups = append(doc.SkillGroups, SkillGroup{Category: cat})
		}
		doc.SkillGroups[i].Skills = append(doc.SkillGroups[i].Skills, s)
	}
	return doc
}

// Period formats a date range for display; an ongoing range shows Present.
func Period(start, end string, ongoing bool) string {
	if start == "" && end == "" && !ongoing {
		return ""
	}
	if ongoing || end == "" {
		return start + " - Present"
	}
	return start + " - " + end
}
