package ai

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Suggestion payload shapes the ai-service is asked to produce. Each
// generate button expects one of these lists; an unparsable response is
// discarded whole, never partially applied.

type SummarySuggestion struct {
	ExperienceLevel string   `json:"experience_level"`
	Summary         string   `json:"summary"`
	Keywords        []string `json:"keywords"`
}

type HighlightSuggestion struct {
	ExperienceLevel string   `json:"experience_level"`
	Highlights      []string `json:"highlights"`
	Keywords        []string `json:"keywords"`
}

type ProjectSuggestion struct {
	ExperienceLevel string   `json:"experience_level"`
	Description     string   `json:"description"`
	Keywords        []string `json:"keywords"`
}

// extractFragment locates an embedded JSON object or array inside
// surrounding prose (markdown fences, commentary) by taking the substring
// between the first opening and last matching closing bracket.
func extractFragment(s string) (string, bool) {
	obj := strings.IndexByte(s, '{')
	arr := strings.IndexByte(s, '[')

	// whichever bracket opens first is the outermost value
	start, closer := obj, byte('}')
	if obj < 0 || (arr >= 0 && arr < obj) {
		start, closer = arr, ']'
	}
	end := strings.LastIndexByte(s, closer)
	if start >= 0 && end > start {
		return s[start : end+1], true
	}
	return "", false
}

// decode attempts a direct unmarshal and falls back to decoding an embedded
// fragment. Both failing fails the whole response.
func decode(raw string, v interface{}) error {
	if err := json.Unmarshal([]byte(raw), v); err == nil {
		return nil
	}
	if frag, ok := extractFragment(raw); ok {
		if err := json.Unmarshal([]byte(frag), v); err == nil {
			return nil
		}
	}
	return fmt.Errorf("ai-service returned non-json content")
}

// DecodeSummaries accepts either {"summaries": [...]} or a bare list.
func DecodeSummaries(raw string) ([]SummarySuggestion, error) {
	var envelope struct {
		Summaries []SummarySuggestion `json:"summaries"`
	}
	if err := decode(raw, &envelope); err == nil && len(envelope.Summaries) > 0 {
		return envelope.Summaries, nil
	}
	var list []SummarySuggestion
	if err := decode(raw, &list); err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, fmt.Errorf("ai-service returned no summaries")
	}
	return list, nil
}

// DecodeHighlights accepts a bare list or a single suggestion object.
func DecodeHighlights(raw string) ([]HighlightSuggestion, error) {
	var list []HighlightSuggestion
	if err := decode(raw, &list); err == nil && len(list) > 0 {
		return list, nil
	}
	var one HighlightSuggestion
	if err := decode(raw, &one); err != nil {
		return nil, err
	}
	if len(one.Highlights) == 0 {
		return nil, fmt.Errorf("ai-service returned no highlights")
	}
	return []HighlightSuggestion{one}, nil
}

// DecodeProjectDescriptions accepts {"descriptions": [...]} or a bare list.
func DecodeProjectDescriptions(raw string) ([]ProjectSuggestion, error) {
	var envelope struct {
		Descriptions []ProjectSuggestion `json:"descriptions"`
	}
	if err := decode(raw, &envelope); err == nil && len(envelope.Descriptions) > 0 {
		return envelope.Descriptions, nil
	}
	var list []ProjectSuggestion
	if err := decode(raw, &list); err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, fmt.Errorf("ai-service returned no descriptions")
	}
	return list, nil
}
