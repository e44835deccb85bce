package trace

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/pergola/pkg/domain"
)

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		name string
		want Format
	}{
		{"run.json", FormatJSON},
		{"steps.NDJSON", FormatNDJSON},
		{"steps.jsonl", FormatNDJSON},
		{"run.yaml", FormatYAML},
		{"run.yml", FormatYAML},
		{"no-extension", FormatJSON},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DetectFormat(tt.name), "file %s", tt.name)
	}
}

func TestReadResultPreservesKeyOrder(t *testing.T) {
	// Key order is the whole point: "generate" must come out first even
	// though "b_search" sorts before it.
	input := `{
		"generate": {"question": "Q", "generation": "A", "retry_count": 1},
		"b_search": {"question": "Q2"}
	}`

	results, err := ReadResult(strings.NewReader(input), FormatJSON)
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, "generate", results[0].Node)
	assert.Equal(t, "b_search", results[1].Node)
	assert.Equal(t, "Q", results[0].Record.QuestionText())
	assert.Equal(t, "A", results[0].Record.GenerationText())

	n, ok := results[0].Record.Retries()
	require.True(t, ok)
	assert.Equal(t, 1, n)
}

func TestReadResultExplicitPairs(t *testing.T) {
	input := `[
		{"node": "generate", "record": {"question": "Q", "retry_count": 3}},
		{"node": "grade", "record": {}}
	]`

	results, err := ReadResult(strings.NewReader(input), FormatJSON)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "generate", results[0].Node)
	assert.Equal(t, "3", results[0].Record.RetryText())
	assert.Equal(t, domain.ValueMissing, results[1].Record.QuestionText())
}

func TestReadTransitionsSingleKeyForm(t *testing.T) {
	input := `[
		{"retrieve": {"documents": ["d1"]}},
		{"grade_documents": {"documents": ["d1"], "relevant": true}},
		{"generate": {"generation": "answer"}}
	]`

	steps, err := ReadTransitions(strings.NewReader(input), FormatJSON)
	require.NoError(t, err)
	require.Len(t, steps, 3)

	assert.Equal(t, "retrieve", steps[0].Node)
	assert.Equal(t, "grade_documents", steps[1].Node)
	assert.Equal(t, "generate", steps[2].Node)
	assert.Equal(t, "answer", steps[2].State["generation"])
}

func TestReadTransitionsExplicitForm(t *testing.T) {
	input := `[{"node": "retrieve", "state": {"documents": []}}]`

	steps, err := ReadTransitions(strings.NewReader(input), FormatJSON)
	require.NoError(t, err)
	require.Len(t, steps, 1)
	assert.Equal(t, "retrieve", steps[0].Node)
	assert.NotNil(t, steps[0].State)
}

func TestReadTransitionsEmptyMapping(t *testing.T) {
	// An empty mapping has no first key. The reader passes it through
	// unlabeled; rejecting it is the renderer's call.
	steps, err := ReadTransitions(strings.NewReader(`[{}]`), FormatJSON)
	require.NoError(t, err)
	require.Len(t, steps, 1)
	assert.Empty(t, steps[0].Node)
}

func TestReadDocuments(t *testing.T) {
	t.Run("Array", func(t *testing.T) {
		input := `[
			{"page_content": "first", "metadata": {"source": "a.md"}},
			{"page_content": "second"}
		]`
		docs, err := ReadDocuments(strings.NewReader(input), FormatJSON)
		require.NoError(t, err)
		require.Len(t, docs, 2)
		assert.Equal(t, "a.md", docs[0].Source())
		assert.Equal(t, domain.SourceUnknown, docs[1].Source())
	})

	t.Run("Single Object", func(t *testing.T) {
		input := `{"page_content": "only one", "metadata": {"source": "x.md"}}`
		docs, err := ReadDocuments(strings.NewReader(input), FormatJSON)
		require.NoError(t, err)
		require.Len(t, docs, 1)
		assert.Equal(t, "only one", docs[0].PageContent)
	})
}

func TestReadRunJSON(t *testing.T) {
	input := `{
		"question": "What is planning?",
		"documents": [{"page_content": "Planning is...", "metadata": {"source": "p.md"}}],
		"steps": [{"retrieve": {"documents": ["d1"]}}, {"generate": {}}],
		"results": {"generate": {"question": "What is planning?", "generation": "A", "retry_count": 0}}
	}`

	run, err := ReadRun(strings.NewReader(input), FormatJSON)
	require.NoError(t, err)

	require.Len(t, run.Documents, 1)
	require.Len(t, run.Transitions, 2)
	require.Len(t, run.Results, 1)
	assert.Equal(t, "retrieve", run.Transitions[0].Node)
	assert.Equal(t, "generate", run.Results[0].Node)
}

func TestSectionReadersAcceptRunArtifacts(t *testing.T) {
	input := `{
		"documents": [{"page_content": "doc"}],
		"steps": [{"retrieve": {}}],
		"results": {"generate": {"generation": "A"}}
	}`

	docs, err := ReadDocuments(strings.NewReader(input), FormatJSON)
	require.NoError(t, err)
	assert.Len(t, docs, 1)

	steps, err := ReadTransitions(strings.NewReader(input), FormatJSON)
	require.NoError(t, err)
	assert.Len(t, steps, 1)

	results, err := ReadResult(strings.NewReader(input), FormatJSON)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "A", results[0].Record.GenerationText())
}

func TestReadRunRejectsNDJSON(t *testing.T) {
	_, err := ReadRun(strings.NewReader(`{"retrieve": {}}`), FormatNDJSON)
	require.Error(t, err)
}

func TestNDJSONStreams(t *testing.T) {
	t.Run("Transitions", func(t *testing.T) {
		input := `{"retrieve": {"documents": []}}

{"node": "grade_documents", "state": {"relevant": true}}
{"generate": {}}
`
		steps, err := ReadTransitions(strings.NewReader(input), FormatNDJSON)
		require.NoError(t, err)
		require.Len(t, steps, 3, "blank lines are skipped")
		assert.Equal(t, []string{"retrieve", "grade_documents", "generate"},
			[]string{steps[0].Node, steps[1].Node, steps[2].Node})
	})

	t.Run("Documents", func(t *testing.T) {
		input := `{"page_content": "a", "metadata": {"source": "a.md"}}
{"page_content": "b"}`
		docs, err := ReadDocuments(strings.NewReader(input), FormatNDJSON)
		require.NoError(t, err)
		require.Len(t, docs, 2)
	})

	t.Run("Malformed Line Reports Position", func(t *testing.T) {
		input := `{"retrieve": {}}
not-json`
		_, err := ReadTransitions(strings.NewReader(input), FormatNDJSON)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "line 2")
	})
}

func TestYAMLPreservesKeyOrder(t *testing.T) {
	input := `
generate:
  question: Q
  generation: A
  retry_count: 2
b_search:
  question: Q2
`
	results, err := ReadResult(strings.NewReader(input), FormatYAML)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "generate", results[0].Node)
	assert.Equal(t, "2", results[0].Record.RetryText())
}

func TestReadRunYAML(t *testing.T) {
	input := `
documents:
  - page_content: Planning is decomposition.
    metadata:
      source: planning.md
steps:
  - retrieve:
      documents: [d1]
  - generate: {}
results:
  generate:
    question: How do agents plan?
    generation: They decompose goals.
    retry_count: 0
`
	run, err := ReadRun(strings.NewReader(input), FormatYAML)
	require.NoError(t, err)

	require.Len(t, run.Documents, 1)
	assert.Equal(t, "planning.md", run.Documents[0].Source())
	require.Len(t, run.Transitions, 2)
	assert.Equal(t, "retrieve", run.Transitions[0].Node)
	require.Len(t, run.Results, 1)
	assert.Equal(t, "They decompose goals.", run.Results[0].Record.GenerationText())
}

func TestParseTransition(t *testing.T) {
	tr, err := ParseTransition([]byte(`{"web_search": {"attempt": 2}}`))
	require.NoError(t, err)
	assert.Equal(t, "web_search", tr.Node)
	assert.EqualValues(t, float64(2), tr.State["attempt"])

	_, err = ParseTransition([]byte(`[1, 2]`))
	require.Error(t, err, "non-object lines are rejected")
}

func TestDecodeRecordWeakTyping(t *testing.T) {
	tests := []struct {
		name string
		raw  map[string]any
		want string
	}{
		{"Integer", map[string]any{"retry_count": 3}, "3"},
		{"Float From JSON", map[string]any{"retry_count": float64(2)}, "2"},
		{"String Counter", map[string]any{"retry_count": "4"}, "4"},
		{"Absent", map[string]any{}, domain.ValueMissing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, err := DecodeRecord(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, rec.RetryText())
		})
	}
}

func TestDecodeRecordIgnoresExtraKeys(t *testing.T) {
	rec, err := DecodeRecord(map[string]any{
		"question":   "Q",
		"documents":  []any{"d1", "d2"},
		"web_search": "yes",
	})
	require.NoError(t, err)
	assert.Equal(t, "Q", rec.QuestionText())
	assert.Nil(t, rec.Generation)
}
