package model

import "strings"

// Patch is a partial update of top-level resume fields. Only the keys
// present are touched by the store; list values replace the stored list
// wholesale. Blank optional values are sent as explicit JSON nulls rather
// than omitted, and entry ids never appear in a patch.
type Patch map[string]interface{}

// nullable maps a blank string to an explicit null.
func nullable(s string) interface{} {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return s
}

func PersonalPatch(p PersonalDetail) Patch {
	return Patch{
		"firstName":    p.FirstName,
		"lastName":     p.LastName,
		"jobTitle":     p.JobTitle,
		"address":      p.Address,
		"phone":        p.Phone,
		"email":        p.Email,
		"linkedinUrl":  nullable(p.LinkedinURL),
		"githubUrl":    nullable(p.GithubURL),
		"portfolioUrl": nullable(p.PortfolioURL),
	}
}

func SummaryPatch(summary string) Patch {
	return Patch{"summary": summary}
}

func ThemeColorPatch(color string) Patch {
	return Patch{"themeColor": color}
}

// ExperiencePatch drops entries without a title, strips entry ids and forces
// the end date to null while the position is marked as current.
func ExperiencePatch(list []Experience) Patch {
	out := make([]map[string]interface{}, 0, len(list))
	for _, e := range list {
		if strings.TrimSpace(e.Title) == "" {
			continue
		}
		end := nullable(e.EndDate)
		if e.CurrentlyWorking {
			end = nil
		}
		out = append(out, map[string]interface{}{
			"title":            e.Title,
			"companyName":      nullable(e.CompanyName),
			"city":             nullable(e.City),
			"state":            nullable(e.State),
			"startDate":        nullable(e.StartDate),
			"endDate":          end,
			"currentlyWorking": e.CurrentlyWorking,
			"workSummary":      nullable(e.WorkSummary),
		})
	}
	return Patch{"experience": out}
}

// EducationPatch nulls blank fields and drops only entries whose every
// value is null.
func EducationPatch(list []Education) Patch {
	out := make([]map[string]interface{}, 0, len(list))
	for _, e := range list {
		entry := map[string]interface{}{
			"universityName": nullable(e.UniversityName),
			"degree":         nullable(e.Degree),
			"major":          nullable(e.Major),
			"startDate":      nullable(e.StartDate),
			"endDate":        nullable(e.EndDate),
			"description":    nullable(e.Description),
		}
		empty := true
		for _, v := range entry {
			if v != nil {
				empty = false
				break
			}
		}
		if empty {
			continue
		}
		out = append(out, entry)
	}
	return Patch{"education": out}
}

// SkillsPatch keeps entries as-is apart from id stripping; a skill with a
// blank name is persisted but ignored by the preview.
func SkillsPatch(list []Skill) Patch {
	out := make([]map[string]interface{}, 0, len(list))
	for _, s := range list {
		out = append(out, map[string]interface{}{
			"name":     s.Name,
			"rating":   s.Rating,
			"category": nullable(s.Category),
		})
	}
	return Patch{"skills": out}
}

func ProjectsPatch(list []Project) Patch {
	out := make([]map[string]interface{}, 0, len(list))
	for _, p := range list {
		end := nullable(p.EndDate)
		if p.IsPresent {
			end = nil
		}
		entry := map[string]interface{}{
			"name":        nullable(p.Name),
			"description": nullable(p.Description),
			"startDate":   nullable(p.StartDate),
			"endDate":     end,
			"isPresent":   p.IsPresent,
		}
		if entry["name"] == nil && entry["description"] == nil &&
			entry["startDate"] == nil && entry["endDate"] == nil {
			continue
		}
		out = append(out, entry)
	}
	return Patch{"projects": out}
}

// SectionsPatch replaces the full ordered list of active sections.
func SectionsPatch(list []Section) Patch {
	out := make([]map[string]interface{}, 0, len(list))
	for _, s := range list {
		body := map[string]interface{}{"kind": string(s.Body.Kind)}
		switch s.Body.Kind {
		case BodyItems:
			items := make([]map[string]interface{}, 0, len(s.Body.Items))
			for _, it := range s.Body.Items {
				items = append(items, map[string]interface{}{
					"title":       it.Title,
					"description": nullable(it.Description),
				})
			}
			body["items"] = items
		default:
			body["text"] = s.Body.Text
		}
		out = append(out, map[string]interface{}{
			"kind":  string(s.Kind),
			"title": s.Title,
			"body":  body,
		})
	}
	return Patch{"sections": out}
}
