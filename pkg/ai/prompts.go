package ai

import "fmt"

// Prompt builders. Each is deterministic in its inputs so a section always
// sends the same prompt for the same draft state, and each pins the exact
// JSON shape the decoders in parse.go expect.

// SummaryPrompt asks for three summary variations for the given job title,
// one per experience level, with the focus the user picked (Professional,
// Technical, Leadership).
func SummaryPrompt(focus, jobTitle string) string {
	if jobTitle == "" {
		jobTitle = "Professional"
	}
	return fmt.Sprintf(`Generate three ATS-optimized %s summary variations for a %s with quantifiable achievements.

1. Entry-Level (0-2 years): core skills and training achievements, 2-3 measurable outcomes.
2. Mid-Career (3-7 years): project impacts, 3-4 quantifiable results.
3. Senior-Level (8+ years): leadership impact and organizational KPIs, 4-5 strategic metrics.

Each summary must include concrete metrics (%% improvements, $ savings, time reductions) and 5-7 %s-specific keywords.

Return ONLY valid JSON in exactly this format, with no commentary, markdown, or code fences:
{
  "summaries": [
    {
      "experience_level": "Entry-Level|Mid-Career|Senior",
      "summary": "Achievement-focused text with [X%%] and [$Y] metrics",
      "keywords": ["list", "of", "5-7", "industry", "terms"]
    }
  ]
}`, focus, jobTitle, jobTitle)
}

// HighlightsPrompt asks for career highlight bullet lists grounded in the
// current summary text.
func HighlightsPrompt(focus, jobTitle, summary string) string {
	if jobTitle == "" {
		jobTitle = "Professional"
	}
	if summary == "" {
		summary = "No summary provided"
	}
	return fmt.Sprintf(`Generate three ATS-optimized career highlight variations for a %s, focused on %s aspects, based on this summary:

%s

Each variation has 3-5 bullet points; every bullet contains at least one metric (%% improvement, $ amount, time reduction) and starts with an action verb (Led, Spearheaded, Optimized).

Return ONLY a valid JSON array in exactly this format, with no commentary, markdown, or code fences:
[
  {
    "experience_level": "Entry-Level|Mid-Career|Senior",
    "highlights": ["Increased X by Y%% through Z", "Saved $A by implementing B"],
    "keywords": ["list", "of", "5-7", "industry", "terms"]
  }
]`, jobTitle, focus, summary)
}

// ProjectPrompt asks for three description variations for a named project.
func ProjectPrompt(projectName string) string {
	return fmt.Sprintf(`Generate three resume project description variations for a project named %q, one per experience level. Each description is 2-3 sentences, highlights measurable impact, and names the key technologies.

Return ONLY valid JSON in exactly this format, with no commentary, markdown, or code fences:
{
  "descriptions": [
    {
      "experience_level": "Entry-Level|Mid-Career|Senior",
      "description": "Impact-focused text with concrete metrics",
      "keywords": ["list", "of", "5-7", "industry", "terms"]
    }
  ]
}`, projectName)
}
