package questiongen

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/lexio/internal/llm"
)

// Generator produces validated question sets using an LLM provider.
type Generator struct {
	provider llm.Provider
	config   Config
}

// NewGenerator creates a Generator with the given provider and config.
func NewGenerator(provider llm.Provider, cfg Config) *Generator {
	return &Generator{provider: provider, config: cfg}
}

// GenerateOpts carries per-call knobs. Zero counts fall back to the
// Generator's config; an empty Nonce gets a random one.
type GenerateOpts struct {
	CountMin     int
	CountMax     int
	AvoidPrompts []string
	Nonce        string
}

// setOutput is the raw LLM response before per-question validation.
type setOutput struct {
	Questions []Candidate `json:"questions"`
}

// Generate asks the LLM for a batch of questions over the passage
// paragraphs, validates each candidate's shape and evidence, and
// returns the assembled set. The first invalid candidate aborts the
// whole batch.
func (g *Generator) Generate(ctx context.Context, passageID string, paragraphs []string, opts GenerateOpts) (*QuestionSet, error) {
	ctx = llm.WithPurpose(ctx, "question-gen")

	if opts.CountMin == 0 {
		opts.CountMin = g.config.CountMin
	}
	if opts.CountMax == 0 {
		opts.CountMax = g.config.CountMax
	}
	if opts.Nonce == "" {
		opts.Nonce = uuid.NewString()
	}

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(paragraphs, opts, g.config)},
		},
		Schema:      QuestionSetSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("question generation failed: %w", err)
	}

	var raw setOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("parse question response: %w", err)
	}

	if len(raw.Questions) == 0 {
		return nil, fmt.Errorf("question response contains no questions")
	}

	questions, err := ValidateBatch(raw.Questions, len(paragraphs))
	if err != nil {
		return nil, err
	}

	return &QuestionSet{
		SetID:     uuid.NewString(),
		PassageID: passageID,
		CreatedAt: time.Now().UTC(),
		Questions: questions,
	}, nil
}
