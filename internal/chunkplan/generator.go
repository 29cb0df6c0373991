package chunkplan

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abhisek/lexio/internal/llm"
)

// Generator produces thematic chunk plans using an LLM provider.
// The provider's candidate plan is never used directly: it always passes
// through partition validation first.
type Generator struct {
	provider llm.Provider
	config   Config
}

// NewGenerator creates a Generator with the given provider and config.
func NewGenerator(provider llm.Provider, cfg Config) *Generator {
	return &Generator{provider: provider, config: cfg}
}

// planOutput is the raw LLM response before validation.
type planOutput struct {
	Paragraphs []ParagraphIdea `json:"paragraphs"`
	Sections   []Section       `json:"sections"`
}

// Generate asks the LLM to split passageText into labeled paragraphs and
// thematic sections, then validates and normalizes the section plan.
func (g *Generator) Generate(ctx context.Context, passageText string) (*ChunkedPassage, error) {
	ctx = llm.WithPurpose(ctx, "chunk-plan")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: passageText},
		},
		Schema:      PlanSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("chunk plan generation failed: %w", err)
	}

	var raw planOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("parse chunk plan response: %w", err)
	}

	if len(raw.Paragraphs) < 2 {
		return nil, fmt.Errorf("chunk plan has %d paragraphs, want at least 2", len(raw.Paragraphs))
	}

	paragraphs := make([]ParagraphIdea, len(raw.Paragraphs))
	for i, p := range raw.Paragraphs {
		paragraphs[i] = ParagraphIdea{
			Text: strings.TrimSpace(p.Text),
			Idea: strings.TrimSpace(p.Idea),
		}
	}

	sections, err := ValidateSized(raw.Sections, len(paragraphs),
		g.config.MinParasPerSection, g.config.MaxParasPerSection)
	if err != nil {
		return nil, err
	}

	return &ChunkedPassage{
		Paragraphs: paragraphs,
		Sections:   sections,
	}, nil
}
