package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "lexio.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestEventRepo_AppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.EventRepo()

	err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider:     "mock",
		Model:        "mock",
		Purpose:      "chunk-plan",
		InputTokens:  120,
		OutputTokens: 80,
		LatencyMs:    42,
		Success:      true,
		RequestBody:  "[user]\nhello",
		ResponseBody: `{"ok":true}`,
	})
	require.NoError(t, err)

	err = repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider:     "mock",
		Model:        "mock",
		Purpose:      "grading",
		Success:      false,
		ErrorMessage: "llm upstream_failure",
	})
	require.NoError(t, err)

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	require.NoError(t, err)
	require.Len(t, events, 2)
	// Newest first.
	require.Equal(t, "grading", events[0].Purpose)
	require.False(t, events[0].Success)
	require.Equal(t, "chunk-plan", events[1].Purpose)
	require.Equal(t, 120, events[1].InputTokens)

	filtered, err := repo.QueryLLMEvents(ctx, QueryOpts{Purpose: "grading"})
	require.NoError(t, err)
	require.Len(t, filtered, 1)
}

func TestEventRepo_GetLLMEvent(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.EventRepo()

	require.NoError(t, repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "mock", Model: "mock", Purpose: "question-gen", Success: true,
	}))

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	require.NoError(t, err)
	require.Len(t, events, 1)

	e, err := repo.GetLLMEvent(ctx, events[0].ID)
	require.NoError(t, err)
	require.NotNil(t, e)
	require.Equal(t, "question-gen", e.Purpose)

	missing, err := repo.GetLLMEvent(ctx, 9999)
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestEventRepo_UsageAggregation(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.EventRepo()

	for range 3 {
		require.NoError(t, repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider: "openai", Model: "gpt-4o-mini", Purpose: "question-gen",
			InputTokens: 100, OutputTokens: 50, LatencyMs: 10, Success: true,
		}))
	}

	byPurpose, err := repo.UsageByPurpose(ctx)
	require.NoError(t, err)
	require.Len(t, byPurpose, 1)
	require.Equal(t, 3, byPurpose[0].Calls)
	require.Equal(t, 300, byPurpose[0].InputTokens)

	byModel, err := repo.UsageByModel(ctx)
	require.NoError(t, err)
	require.Len(t, byModel, 1)
	require.Equal(t, "gpt-4o-mini", byModel[0].Model)
	require.Equal(t, 150, byModel[0].OutputTokens)
}

func TestAttemptRepo_SaveIsIdempotent(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.AttemptRepo()

	a := &Attempt{
		AttemptID:  "at-1",
		PassageID:  "sample",
		SetID:      "set-1",
		StartedAt:  time.Now().UTC().Truncate(time.Second),
		GradedAt:   time.Now().UTC().Truncate(time.Second),
		ReportJSON: `{"summary":{"correct":1,"total":5,"percent":20}}`,
	}
	require.NoError(t, repo.Save(ctx, a))

	a.ReportJSON = `{"summary":{"correct":4,"total":5,"percent":80}}`
	require.NoError(t, repo.Save(ctx, a))

	attempts, err := repo.ListByPassage(ctx, "sample", 0)
	require.NoError(t, err)
	require.Len(t, attempts, 1)
	require.Contains(t, attempts[0].ReportJSON, `"percent":80`)
}
