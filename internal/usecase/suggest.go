package usecase

import (
	"context"
	"errors"
	"fmt"

	"resume-builder/internal/editor"
	"resume-builder/internal/model"
	"resume-builder/pkg/ai"
)

// AIClient is the consumed surface of the ai-service chat endpoint.
type AIClient interface {
	SendPrompt(ctx context.Context, prompt string) (string, error)
}

// ErrAIUnavailable reports a generate action fired without a configured
// ai client.
var ErrAIUnavailable = errors.New("ai service is not configured")

// SuggestSummaries asks the ai-service for summary variations built from
// the current personal-detail draft. One generation per section runs at a
// time; a second click while one is in flight is rejected. An unparsable
// response fails whole and nothing is applied.
func (w *Wizard) SuggestSummaries(ctx context.Context, focus string) ([]ai.SummarySuggestion, error) {
	if w.ai == nil {
		return nil, ErrAIUnavailable
	}
	var out []ai.SummarySuggestion
	err := w.summaryGen.Run(func() error {
		raw, err := w.ai.SendPrompt(ctx, ai.SummaryPrompt(focus, w.Personal.Value().JobTitle))
		if err != nil {
			return fmt.Errorf("generating summaries: %w", err)
		}
		out, err = ai.DecodeSummaries(raw)
		return err
	})
	if err != nil {
		w.notify.Error(fmt.Sprintf("summary suggestions: %v", err))
		return nil, err
	}
	return out, nil
}

// ApplySummary overwrites the summary draft with the chosen suggestion
// through the normal edit path: the preview updates at once and the section
// is dirty until saved.
func (w *Wizard) ApplySummary(s ai.SummarySuggestion) {
	w.Summary.Edit(func(cur *string) { *cur = s.Summary })
}

// SuggestHighlights generates career highlight bullet lists grounded in the
// current summary draft.
func (w *Wizard) SuggestHighlights(ctx context.Context, focus string) ([]ai.HighlightSuggestion, error) {
	if w.ai == nil {
		return nil, ErrAIUnavailable
	}
	var out []ai.HighlightSuggestion
	err := w.highlightGen.Run(func() error {
		prompt := ai.HighlightsPrompt(focus, w.Personal.Value().JobTitle, w.Summary.Value())
		raw, err := w.ai.SendPrompt(ctx, prompt)
		if err != nil {
			return fmt.Errorf("generating highlights: %w", err)
		}
		out, err = ai.DecodeHighlights(raw)
		return err
	})
	if err != nil {
		w.notify.Error(fmt.Sprintf("highlight suggestions: %v", err))
		return nil, err
	}
	return out, nil
}

// ApplyHighlights replaces the section's item list with the chosen
// suggestion, one item per bullet.
func (w *Wizard) ApplyHighlights(ed *editor.SectionEditor, s ai.HighlightSuggestion) {
	ed.Edit(func(sec *model.Section) {
		items := make([]model.SectionItem, 0, len(s.Highlights))
		for _, h := range s.Highlights {
			items = append(items, model.SectionItem{Title: h})
		}
		sec.Body.Items = items
	})
}

// SuggestProjectDescriptions generates description variations for the
// project at position i, named after its current draft name.
func (w *Wizard) SuggestProjectDescriptions(ctx context.Context, i int) ([]ai.ProjectSuggestion, error) {
	if w.ai == nil {
		return nil, ErrAIUnavailable
	}
	entries := w.Projects.Entries()
	if i < 0 || i >= len(entries) {
		return nil, fmt.Errorf("project %d out of range", i)
	}
	var out []ai.ProjectSuggestion
	err := w.projectGen.Run(func() error {
		raw, err := w.ai.SendPrompt(ctx, ai.ProjectPrompt(entries[i].Name))
		if err != nil {
			return fmt.Errorf("generating project descriptions: %w", err)
		}
		out, err = ai.DecodeProjectDescriptions(raw)
		return err
	})
	if err != nil {
		w.notify.Error(fmt.Sprintf("project suggestions: %v", err))
		return nil, err
	}
	return out, nil
}

// ApplyProjectDescription overwrites one project's description draft.
func (w *Wizard) ApplyProjectDescription(i int, s ai.ProjectSuggestion) error {
	return w.Projects.Edit(i, func(p *model.Project) { p.Description = s.Description })
}
