package syllabus

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nsharma/studyblocks/internal/llm"
)

func TestExtract(t *testing.T) {
	payload := `{
		"assignments": [
			{"title": "Essay 1", "due_date": "2025-03-01", "due_time": "23:59", "weight": 15, "difficulty": 6}
		],
		"tests": [
			{"title": "Final Exam", "date": "2025-04-20", "time": "09:00", "weight": 40}
		],
		"schedule": [
			{"name": "PHIL 105", "days": ["Monday", "Thursday"], "time": "13:00–14:30", "location": "Room 12"}
		]
	}`
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(payload)})
	ex := NewExtractor(mock, DefaultConfig())

	doc, err := ex.Extract(context.Background(), "PHIL 105 syllabus text")
	require.NoError(t, err)

	require.Len(t, doc.Assignments, 1)
	assert.Equal(t, "Essay 1", doc.Assignments[0].Title)
	assert.Equal(t, 6, doc.Assignments[0].Difficulty)

	require.Len(t, doc.Tests, 1)
	assert.Equal(t, float64(40), doc.Tests[0].Weight)

	require.Len(t, doc.Schedule, 1)
	assert.Equal(t, "PHIL 105", doc.Schedule[0].Name)

	require.Len(t, mock.Calls, 1)
	req := mock.Calls[0]
	assert.Equal(t, extractSystemPrompt, req.System)
	assert.Same(t, DocumentSchema, req.Schema)
	assert.Contains(t, req.Prompt, "PHIL 105 syllabus text")
	assert.Equal(t, 4096, req.MaxTokens)
}

func TestExtract_ProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrUnavailable{}})
	ex := NewExtractor(mock, DefaultConfig())

	doc, err := ex.Extract(context.Background(), "text")
	assert.Nil(t, doc)
	assert.ErrorContains(t, err, "syllabus extraction failed")
}

func TestExtract_MalformedContent(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`not json`)})
	ex := NewExtractor(mock, DefaultConfig())

	doc, err := ex.Extract(context.Background(), "text")
	assert.Nil(t, doc)
	assert.ErrorContains(t, err, "parse extraction response")
}

func TestAssess(t *testing.T) {
	payload := `{"title": "Problem Set 3", "due_date": "2025-03-14", "due_time": "N/A", "difficulty": 8}`
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(payload)})
	ex := NewExtractor(mock, DefaultConfig())

	a, err := ex.Assess(context.Background(), "problem set handout")
	require.NoError(t, err)

	assert.Equal(t, "Problem Set 3", a.Title)
	assert.Equal(t, "2025-03-14", a.DueDate)
	assert.Equal(t, 8, a.Difficulty)

	require.Len(t, mock.Calls, 1)
	req := mock.Calls[0]
	assert.Equal(t, assessSystemPrompt, req.System)
	assert.Same(t, AssessmentSchema, req.Schema)
	assert.Contains(t, req.Prompt, "problem set handout")
}
