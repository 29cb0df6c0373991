package grading

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abhisek/lexio/internal/llm"
	"github.com/abhisek/lexio/internal/questiongen"
)

// ScoreItem is one short-answer question prepared for the scorer:
// the learner's text plus everything the model needs to judge it.
type ScoreItem struct {
	QuestionID   string
	Prompt       string
	UserAnswer   string
	ModelAnswer  string
	Rubric       []string
	EvidenceText string
}

// Scorer grades short answers through an LLM provider.
type Scorer struct {
	provider llm.Provider
	config   ScorerConfig
}

// ScorerConfig holds scoring tunables.
type ScorerConfig struct {
	MaxTokens   int
	Temperature float64
}

func DefaultScorerConfig() ScorerConfig {
	return ScorerConfig{
		MaxTokens:   4096,
		Temperature: 0.2,
	}
}

// NewScorer creates a Scorer with the given provider and config.
func NewScorer(provider llm.Provider, cfg ScorerConfig) *Scorer {
	return &Scorer{provider: provider, config: cfg}
}

// BuildScoreItems pairs each short-answer question in the set with the
// learner's answer and the evidence paragraph text. Questions without a
// textual answer still get an item: an empty answer is scorable.
func BuildScoreItems(set *questiongen.QuestionSet, answers map[string]Answer, paragraphs []string) []ScoreItem {
	items := make([]ScoreItem, 0, len(set.Questions))
	for i := range set.Questions {
		q := &set.Questions[i]
		if q.Short == nil {
			continue
		}
		items = append(items, ScoreItem{
			QuestionID:   q.ID,
			Prompt:       q.Prompt,
			UserAnswer:   answers[q.ID].Text,
			ModelAnswer:  q.Short.ModelAnswer,
			Rubric:       q.Short.Rubric,
			EvidenceText: evidenceText(q.EvidenceParagraphs, paragraphs),
		})
	}
	return items
}

// evidenceText joins the cited paragraphs into one evidence block.
// Indices outside the paragraph list are skipped.
func evidenceText(indices []int, paragraphs []string) string {
	parts := make([]string, 0, len(indices))
	for _, idx := range indices {
		if idx < 0 || idx >= len(paragraphs) {
			continue
		}
		parts = append(parts, paragraphs[idx])
	}
	return strings.Join(parts, "\n\n")
}

const scorerSystemPrompt = `You grade short answers to reading comprehension questions.

For each item, compare the learner's answer against the model answer and
rubric, using only the provided evidence text. Award:
- isCorrect true and score01 close to 1.0 when the answer satisfies the rubric,
- partial score01 for partially correct answers (isCorrect true only at 0.7 or above),
- score01 0.0 and isCorrect false for wrong or empty answers.

Feedback is 1-2 sentences, addressed to the learner, specific to their answer.
Return a result for EVERY item, keyed by its questionId. Return ONLY JSON matching the schema.`

// ScoreSchema is the structured-output contract for the scorer.
var ScoreSchema = &llm.Schema{
	Name:        "short-answer-scores",
	Description: "Per-question verdicts for short answer grading",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"scores": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"questionId": map[string]any{"type": "string"},
						"isCorrect":  map[string]any{"type": "boolean"},
						"score01": map[string]any{
							"type":    "number",
							"minimum": 0,
							"maximum": 1,
						},
						"feedback": map[string]any{"type": "string"},
					},
					"required":             []string{"questionId", "isCorrect", "score01", "feedback"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []string{"scores"},
		"additionalProperties": false,
	},
}

type scoreOutput struct {
	Scores []ShortScore `json:"scores"`
}

// Score sends the items to the LLM and returns verdicts keyed by
// question ID. The model may omit items; callers tolerate absent keys.
// Verdicts for IDs not in items are dropped.
func (s *Scorer) Score(ctx context.Context, items []ScoreItem) (map[string]ShortScore, error) {
	if len(items) == 0 {
		return map[string]ShortScore{}, nil
	}

	ctx = llm.WithPurpose(ctx, "grading")

	req := llm.Request{
		System: scorerSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildScorerMessage(items)},
		},
		Schema:      ScoreSchema,
		MaxTokens:   s.config.MaxTokens,
		Temperature: s.config.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("short answer scoring failed: %w", err)
	}

	var raw scoreOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("parse score response: %w", err)
	}

	known := make(map[string]bool, len(items))
	for _, item := range items {
		known[item.QuestionID] = true
	}

	scores := make(map[string]ShortScore, len(raw.Scores))
	for _, sc := range raw.Scores {
		if !known[sc.QuestionID] {
			continue
		}
		if sc.Score01 < 0 {
			sc.Score01 = 0
		}
		if sc.Score01 > 1 {
			sc.Score01 = 1
		}
		scores[sc.QuestionID] = sc
	}
	return scores, nil
}

func buildScorerMessage(items []ScoreItem) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Grade these %d short answers.\n", len(items))
	for _, item := range items {
		fmt.Fprintf(&b, "\n--- questionId: %s ---\n", item.QuestionID)
		fmt.Fprintf(&b, "Question: %s\n", item.Prompt)
		fmt.Fprintf(&b, "Evidence:\n%s\n", item.EvidenceText)
		fmt.Fprintf(&b, "Model answer: %s\n", item.ModelAnswer)
		b.WriteString("Rubric:\n")
		for _, r := range item.Rubric {
			fmt.Fprintf(&b, "- %s\n", r)
		}
		answer := item.UserAnswer
		if strings.TrimSpace(answer) == "" {
			answer = "(no answer given)"
		}
		fmt.Fprintf(&b, "Learner's answer: %s\n", answer)
	}
	return b.String()
}
