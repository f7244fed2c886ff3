package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nsharma/studyblocks/internal/allocate"
	"github.com/nsharma/studyblocks/internal/llm"
	"github.com/nsharma/studyblocks/internal/syllabus"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func testBlocks() []allocate.Block {
	return []allocate.Block{
		{
			Title:  "Work on Essay",
			Start:  time.Date(2025, 2, 15, 9, 0, 0, 0, time.UTC),
			Kind:   syllabus.KindAssignment,
			Course: "ENGL 110",
		},
		{
			Title: "Study for Midterm",
			Start: time.Date(2025, 2, 16, 0, 0, 0, 0, time.UTC),
			Kind:  syllabus.KindTest,
		},
	}
}

func TestSaveRunAndReadBack(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	id, err := s.SaveRun(ctx, "syllabus.pdf", 2, testBlocks())
	require.NoError(t, err)
	require.NotEmpty(t, id)

	runs, err := s.ListRuns(ctx, 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, id, runs[0].ID)
	assert.Equal(t, "syllabus.pdf", runs[0].Source)
	assert.Equal(t, 2, runs[0].ItemCount)
	assert.Equal(t, 2, runs[0].BlockCount)

	blocks, err := s.BlocksForRun(ctx, id)
	require.NoError(t, err)
	require.Len(t, blocks, 2)

	// Insertion order is preserved.
	assert.Equal(t, "Work on Essay", blocks[0].Title)
	assert.Equal(t, "2025-02-15", blocks[0].Date)
	assert.Equal(t, "09:00", blocks[0].Time)
	assert.Equal(t, "assignment", blocks[0].Type)
	assert.Equal(t, "ENGL 110", blocks[0].Course)

	assert.Equal(t, "Study for Midterm", blocks[1].Title)
	assert.Equal(t, "00:00", blocks[1].Time)
	assert.Equal(t, "test", blocks[1].Type)
	assert.Empty(t, blocks[1].Course)
}

func TestLatestRun(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	run, err := s.LatestRun(ctx)
	require.NoError(t, err)
	assert.Nil(t, run, "empty store has no latest run")

	_, err = s.SaveRun(ctx, "first.pdf", 1, nil)
	require.NoError(t, err)
	time.Sleep(2 * time.Millisecond)
	second, err := s.SaveRun(ctx, "second.pdf", 1, nil)
	require.NoError(t, err)

	run, err = s.LatestRun(ctx)
	require.NoError(t, err)
	require.NotNil(t, run)
	assert.Equal(t, second, run.ID)
}

func TestBlocksForRun_UnknownRun(t *testing.T) {
	s := testStore(t)

	blocks, err := s.BlocksForRun(context.Background(), "no-such-run")
	require.NoError(t, err)
	assert.Empty(t, blocks)
}

func TestAppendAndListLLMRequests(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	err := s.AppendLLMRequest(ctx, llm.RequestRecord{
		Provider:     "openai",
		Model:        "gpt-4o-mini",
		Purpose:      "syllabus-extract",
		InputTokens:  1200,
		OutputTokens: 300,
		LatencyMs:    840,
		Success:      true,
		RequestBody:  "system + prompt",
		ResponseBody: `{"assignments":[]}`,
	})
	require.NoError(t, err)

	err = s.AppendLLMRequest(ctx, llm.RequestRecord{
		Provider:     "openai",
		Model:        "gpt-4o-mini",
		Purpose:      "assignment-assess",
		Success:      false,
		ErrorMessage: "rate limited",
	})
	require.NoError(t, err)

	recs, err := s.ListLLMRequests(ctx, 10)
	require.NoError(t, err)
	require.Len(t, recs, 2)

	// Newest first.
	assert.Equal(t, "assignment-assess", recs[0].Purpose)
	assert.False(t, recs[0].Success)
	assert.Equal(t, "rate limited", recs[0].ErrorMessage)

	assert.Equal(t, "syllabus-extract", recs[1].Purpose)
	assert.True(t, recs[1].Success)
	assert.Equal(t, 1200, recs[1].InputTokens)

	got, err := s.GetLLMRequest(ctx, recs[1].ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, `{"assignments":[]}`, got.ResponseBody)

	missing, err := s.GetLLMRequest(ctx, 9999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}
