// Package exercise orchestrates the exercise lifecycle: chunking a
// passage, generating question sets, and grading submissions. It owns
// the caching and request-coalescing policy; the validators stay pure.
package exercise

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/abhisek/lexio/internal/cache"
	"github.com/abhisek/lexio/internal/chunkplan"
	"github.com/abhisek/lexio/internal/grading"
	"github.com/abhisek/lexio/internal/llm"
	"github.com/abhisek/lexio/internal/questiongen"
)

// DefaultChunkTTL bounds how long a chunk plan is reused for identical
// passage text.
const DefaultChunkTTL = 30 * time.Minute

// Service runs exercises end to end against one LLM provider.
type Service struct {
	chunker   *chunkplan.Generator
	questions *questiongen.Generator
	scorer    *grading.Scorer

	chunkCache *cache.Cache[*chunkplan.ChunkedPassage]
	chunkGroup singleflight.Group
}

// NewService creates a Service on top of the given provider with default
// generator configs and a chunk-plan cache of DefaultChunkTTL.
func NewService(provider llm.Provider) *Service {
	return &Service{
		chunker:    chunkplan.NewGenerator(provider, chunkplan.DefaultConfig()),
		questions:  questiongen.NewGenerator(provider, questiongen.DefaultConfig()),
		scorer:     grading.NewScorer(provider, grading.DefaultScorerConfig()),
		chunkCache: cache.New[*chunkplan.ChunkedPassage](DefaultChunkTTL),
	}
}

// ChunkPassage returns the validated thematic chunk plan for the passage
// text. Identical text within the cache TTL reuses the stored plan, and
// concurrent calls for the same text are coalesced into one LLM request.
func (s *Service) ChunkPassage(ctx context.Context, text string) (*chunkplan.ChunkedPassage, error) {
	key := cache.Key(text)

	if plan, ok := s.chunkCache.Get(key); ok {
		return plan, nil
	}

	v, err, _ := s.chunkGroup.Do(key, func() (any, error) {
		if plan, ok := s.chunkCache.Get(key); ok {
			return plan, nil
		}
		plan, err := s.chunker.Generate(ctx, text)
		if err != nil {
			return nil, err
		}
		s.chunkCache.Set(key, plan)
		return plan, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*chunkplan.ChunkedPassage), nil
}

// ClearChunkCache drops all cached chunk plans.
func (s *Service) ClearChunkCache() {
	s.chunkCache.Clear()
}

// GenerateQuestions produces a fresh immutable question set over the
// paragraphs. Regeneration never mutates an earlier set: pass the old
// set's prompts in opts.AvoidPrompts to steer away from repeats.
func (s *Service) GenerateQuestions(ctx context.Context, passageID string, paragraphs []string, opts questiongen.GenerateOpts) (*questiongen.QuestionSet, error) {
	if len(paragraphs) == 0 {
		return nil, fmt.Errorf("cannot generate questions for an empty passage")
	}
	return s.questions.Generate(ctx, passageID, paragraphs, opts)
}

// Grade scores a submission: multiple-choice deterministically, short
// answers through the LLM scorer, assembled into one report. A scorer
// verdict missing for an individual question leaves that item in its
// placeholder state; a failed scorer call fails the whole grading call.
func (s *Service) Grade(ctx context.Context, set *questiongen.QuestionSet, answers map[string]grading.Answer, paragraphs []string) (*grading.Report, error) {
	items := grading.BuildScoreItems(set, answers, paragraphs)

	scores, err := s.scorer.Score(ctx, items)
	if err != nil {
		return nil, fmt.Errorf("grade set %s: %w", set.SetID, err)
	}

	return grading.AssembleReport(set, answers, scores), nil
}
