package ai

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeSummariesDirectEnvelope(t *testing.T) {
	raw := `{"summaries":[
		{"experience_level":"Senior","summary":"Seasoned Go engineer.","keywords":["go","grpc"]},
		{"experience_level":"Mid","summary":"Backend developer.","keywords":["go"]}
	]}`

	got, err := DecodeSummaries(raw)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "Senior", got[0].ExperienceLevel)
	require.Equal(t, []string{"go", "grpc"}, got[0].Keywords)
}

func TestDecodeSummariesBareArray(t *testing.T) {
	raw := `[{"experience_level":"Junior","summary":"Eager learner.","keywords":[]}]`

	got, err := DecodeSummaries(raw)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "Eager learner.", got[0].Summary)
}

func TestDecodeSummariesFencedMarkdown(t *testing.T) {
	raw := "Sure! Here are some options:\n```json\n" +
		`[{"experience_level":"Senior","summary":"Go platform engineer.","keywords":["kubernetes"]},
		  {"experience_level":"Mid","summary":"Service developer.","keywords":[]}]` +
		"\n```\nLet me know if you want more."

	got, err := DecodeSummaries(raw)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "Go platform engineer.", got[0].Summary)
}

func TestDecodeSummariesObjectInProse(t *testing.T) {
	raw := `Of course. {"summaries":[{"experience_level":"Senior","summary":"Works.","keywords":[]}]} Hope that helps!`

	got, err := DecodeSummaries(raw)
	require.NoError(t, err)
	require.Len(t, got, 1)
}

func TestDecodeSummariesGarbageFailsWhole(t *testing.T) {
	_, err := DecodeSummaries("I'm sorry, I can't produce JSON right now.")
	require.Error(t, err)
}

func TestDecodeHighlightsSingleObject(t *testing.T) {
	raw := `{"experience_level":"Senior","highlights":["Led a team of five","Cut latency 40%"],"keywords":["leadership"]}`

	got, err := DecodeHighlights(raw)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, []string{"Led a team of five", "Cut latency 40%"}, got[0].Highlights)
}

func TestDecodeHighlightsList(t *testing.T) {
	raw := `[{"experience_level":"Senior","highlights":["A"],"keywords":[]},
	         {"experience_level":"Mid","highlights":["B"],"keywords":[]}]`

	got, err := DecodeHighlights(raw)
	require.NoError(t, err)
	require.Len(t, got, 2)
}

func TestDecodeHighlightsEmptyIsError(t *testing.T) {
	_, err := DecodeHighlights(`{"experience_level":"Senior","highlights":[],"keywords":[]}`)
	require.Error(t, err)
}

func TestDecodeProjectDescriptionsEnvelope(t *testing.T) {
	raw := `{"descriptions":[{"experience_level":"Senior","description":"Built a resume builder.","keywords":["go"]}]}`

	got, err := DecodeProjectDescriptions(raw)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "Built a resume builder.", got[0].Description)
}

func TestDecodeProjectDescriptionsFencedList(t *testing.T) {
	raw := "```\n" + `[{"experience_level":"Mid","description":"CLI tooling.","keywords":[]}]` + "\n```"

	got, err := DecodeProjectDescriptions(raw)
	require.NoError(t, err)
	require.Len(t, got, 1)
}

func TestExtractFragmentPrefersOutermostBracket(t *testing.T) {
	frag, ok := extractFragment("noise [1, {\"a\": 2}] trailing")
	require.True(t, ok)
	require.Equal(t, `[1, {"a": 2}]`, frag)

	frag, ok = extractFragment(`text {"a": [1, 2]} more`)
	require.True(t, ok)
	require.Equal(t, `{"a": [1, 2]}`, frag)

	_, ok = extractFragment("no json here")
	require.False(t, ok)
}
