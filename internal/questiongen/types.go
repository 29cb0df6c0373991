// Package questiongen generates comprehension question sets and enforces
// the cross-field contract on the flat, nullable records the LLM returns.
package questiongen

import "time"

// Format indicates how the learner answers a question.
type Format string

const (
	// FormatMCQ means the learner picks one of 4 options.
	FormatMCQ Format = "mcq"

	// FormatShort means the learner writes a free-text answer.
	FormatShort Format = "short"
)

// QuestionType classifies what a question probes.
type QuestionType string

const (
	TypeInference          QuestionType = "inference"
	TypeMainIdea           QuestionType = "main_idea"
	TypeDetailWithEvidence QuestionType = "detail_with_evidence"
	TypeVocabInContext     QuestionType = "vocab_in_context"
	TypeSequence           QuestionType = "sequence"
	TypeWhyHow             QuestionType = "why/how"
)

// MaxEvidenceParagraphs caps how many paragraphs a single question may
// cite as evidence.
const MaxEvidenceParagraphs = 4

// MCQVariant holds the fields only multiple-choice questions have.
type MCQVariant struct {
	// Options contains exactly 4 answer options.
	Options []string `json:"options"`

	// CorrectOption is the 0-based index of the correct option.
	CorrectOption int `json:"correctOptionIndex"`
}

// ShortVariant holds the fields only short-answer questions have.
type ShortVariant struct {
	// ModelAnswer is the reference answer the scorer grades against.
	ModelAnswer string `json:"modelAnswer"`

	// Rubric contains 2-5 marking criteria.
	Rubric []string `json:"rubric"`
}

// Question is a validated comprehension question. Exactly one of MCQ and
// Short is non-nil, matching Format; the flat candidate shape the LLM
// produced never leaves this package.
type Question struct {
	// ID is assigned sequentially within a set: "q1", "q2", ...
	ID string `json:"id"`

	Type       QuestionType `json:"type"`
	Difficulty int          `json:"difficulty"` // 1-3
	Prompt     string       `json:"prompt"`

	// Explanation justifies the answer using the evidence. Shown after
	// grading.
	Explanation string `json:"explanation"`

	// EvidenceParagraphs holds the deduplicated, in-bounds paragraph
	// indices the answer is grounded in, sorted ascending. Never empty,
	// at most MaxEvidenceParagraphs entries.
	EvidenceParagraphs []int `json:"evidenceParagraphs"`

	Format Format        `json:"format"`
	MCQ    *MCQVariant   `json:"mcq,omitempty"`
	Short  *ShortVariant `json:"short,omitempty"`
}

// CorrectAnswerText returns the display form of the correct answer:
// the correct option for MCQ, the model answer for short.
func (q *Question) CorrectAnswerText() string {
	switch {
	case q.MCQ != nil:
		return q.MCQ.Options[q.MCQ.CorrectOption]
	case q.Short != nil:
		return q.Short.ModelAnswer
	}
	return ""
}

// QuestionSet is an immutable snapshot of generated questions.
// Regeneration produces a new set with a fresh SetID, never a mutation.
type QuestionSet struct {
	SetID     string     `json:"setId"`
	PassageID string     `json:"passageId"`
	CreatedAt time.Time  `json:"createdAt"`
	Questions []Question `json:"questions"`
}

// Prompts returns the prompt text of every question in the set, used as
// the anti-repeat list when generating a follow-up set.
func (s *QuestionSet) Prompts() []string {
	out := make([]string, len(s.Questions))
	for i, q := range s.Questions {
		out[i] = q.Prompt
	}
	return out
}
