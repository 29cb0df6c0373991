package questiongen

import (
	"fmt"
	"sort"
	"strings"
)

// ShapeErrorKind is a machine-checkable classification of a question
// contract violation.
type ShapeErrorKind string

const (
	// KindNoValidEvidence means every evidence index was out of bounds
	// or the list was empty after normalization.
	KindNoValidEvidence ShapeErrorKind = "no_valid_evidence"

	// KindMissingRequiredField means a field the declared format requires
	// is absent or empty.
	KindMissingRequiredField ShapeErrorKind = "missing_required_field"

	// KindUnexpectedField means a field belonging to the other format is
	// present.
	KindUnexpectedField ShapeErrorKind = "unexpected_field"

	// KindCardinalityViolation means a present field has the wrong count
	// or an out-of-range value.
	KindCardinalityViolation ShapeErrorKind = "cardinality_violation"
)

// ShapeError reports why a candidate question was rejected. Ordinal is
// the question's 0-based position in the candidate batch.
type ShapeError struct {
	Ordinal int
	Kind    ShapeErrorKind
	Message string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("question %d (%s): %s", e.Ordinal+1, e.Kind, e.Message)
}

// Candidate is the flat record the LLM produces: every field of both
// formats is present, with null standing in for "not applicable".
// ValidateQuestion converts it to a tagged Question; the flat shape must
// not escape past that boundary.
type Candidate struct {
	Format             string   `json:"format"`
	Type               string   `json:"type"`
	Difficulty         int      `json:"difficulty"`
	Prompt             string   `json:"prompt"`
	Explanation        string   `json:"explanation"`
	EvidenceParagraphs []int    `json:"evidenceParagraphs"`
	Options            []string `json:"options"`
	CorrectOptionIndex *int     `json:"correctOptionIndex"`
	ModelAnswer        *string  `json:"modelAnswer"`
	Rubric             []string `json:"rubric"`
}

// ValidateQuestion enforces the cross-field conditional contract on a
// flat candidate and converts it to a tagged Question. Structural checks
// (types, enums, top-level cardinality) have already happened against the
// JSON schema; this function covers only what a structural schema cannot
// express. ordinal is the candidate's 0-based position in its batch and
// determines the assigned ID.
func ValidateQuestion(c Candidate, paraCount, ordinal int) (*Question, error) {
	evidence := normalizeEvidence(c.EvidenceParagraphs, paraCount)
	if len(evidence) == 0 {
		return nil, &ShapeError{
			Ordinal: ordinal,
			Kind:    KindNoValidEvidence,
			Message: fmt.Sprintf("no evidence paragraph within [0,%d)", paraCount),
		}
	}

	q := &Question{
		ID:                 fmt.Sprintf("q%d", ordinal+1),
		Type:               QuestionType(c.Type),
		Difficulty:         c.Difficulty,
		Prompt:             strings.TrimSpace(c.Prompt),
		Explanation:        strings.TrimSpace(c.Explanation),
		EvidenceParagraphs: evidence,
		Format:             Format(c.Format),
	}

	if c.Difficulty < 1 || c.Difficulty > 3 {
		return nil, &ShapeError{
			Ordinal: ordinal,
			Kind:    KindCardinalityViolation,
			Message: fmt.Sprintf("difficulty %d outside [1,3]", c.Difficulty),
		}
	}

	switch q.Format {
	case FormatMCQ:
		mcq, err := mcqVariant(c, ordinal)
		if err != nil {
			return nil, err
		}
		q.MCQ = mcq
	case FormatShort:
		short, err := shortVariant(c, ordinal)
		if err != nil {
			return nil, err
		}
		q.Short = short
	default:
		return nil, &ShapeError{
			Ordinal: ordinal,
			Kind:    KindMissingRequiredField,
			Message: fmt.Sprintf("unknown format %q", c.Format),
		}
	}

	return q, nil
}

// normalizeEvidence deduplicates preserving first-seen order, drops
// out-of-bounds indices, caps the count, then sorts ascending for
// display.
func normalizeEvidence(evidence []int, paraCount int) []int {
	seen := make(map[int]bool, len(evidence))
	out := make([]int, 0, MaxEvidenceParagraphs)
	for _, idx := range evidence {
		if idx < 0 || idx >= paraCount || seen[idx] {
			continue
		}
		seen[idx] = true
		out = append(out, idx)
		if len(out) == MaxEvidenceParagraphs {
			break
		}
	}
	sort.Ints(out)
	return out
}

func mcqVariant(c Candidate, ordinal int) (*MCQVariant, error) {
	if c.ModelAnswer != nil {
		return nil, &ShapeError{
			Ordinal: ordinal,
			Kind:    KindUnexpectedField,
			Message: "mcq question must not carry modelAnswer",
		}
	}
	if c.Rubric != nil {
		return nil, &ShapeError{
			Ordinal: ordinal,
			Kind:    KindUnexpectedField,
			Message: "mcq question must not carry rubric",
		}
	}
	if c.Options == nil {
		return nil, &ShapeError{
			Ordinal: ordinal,
			Kind:    KindMissingRequiredField,
			Message: "mcq question requires options",
		}
	}
	if c.CorrectOptionIndex == nil {
		return nil, &ShapeError{
			Ordinal: ordinal,
			Kind:    KindMissingRequiredField,
			Message: "mcq question requires correctOptionIndex",
		}
	}
	if len(c.Options) != 4 {
		return nil, &ShapeError{
			Ordinal: ordinal,
			Kind:    KindCardinalityViolation,
			Message: fmt.Sprintf("mcq question requires exactly 4 options, got %d", len(c.Options)),
		}
	}

	options := make([]string, 4)
	for i, opt := range c.Options {
		opt = strings.TrimSpace(opt)
		if opt == "" {
			return nil, &ShapeError{
				Ordinal: ordinal,
				Kind:    KindCardinalityViolation,
				Message: fmt.Sprintf("mcq option %d is empty", i),
			}
		}
		options[i] = opt
	}

	correct := *c.CorrectOptionIndex
	if correct < 0 || correct > 3 {
		return nil, &ShapeError{
			Ordinal: ordinal,
			Kind:    KindCardinalityViolation,
			Message: fmt.Sprintf("correctOptionIndex %d outside [0,3]", correct),
		}
	}

	return &MCQVariant{Options: options, CorrectOption: correct}, nil
}

func shortVariant(c Candidate, ordinal int) (*ShortVariant, error) {
	if c.Options != nil {
		return nil, &ShapeError{
			Ordinal: ordinal,
			Kind:    KindUnexpectedField,
			Message: "short question must not carry options",
		}
	}
	if c.CorrectOptionIndex != nil {
		return nil, &ShapeError{
			Ordinal: ordinal,
			Kind:    KindUnexpectedField,
			Message: "short question must not carry correctOptionIndex",
		}
	}
	if c.ModelAnswer == nil || strings.TrimSpace(*c.ModelAnswer) == "" {
		return nil, &ShapeError{
			Ordinal: ordinal,
			Kind:    KindMissingRequiredField,
			Message: "short question requires a non-empty modelAnswer",
		}
	}
	if c.Rubric == nil {
		return nil, &ShapeError{
			Ordinal: ordinal,
			Kind:    KindMissingRequiredField,
			Message: "short question requires a rubric",
		}
	}
	if len(c.Rubric) < 2 {
		return nil, &ShapeError{
			Ordinal: ordinal,
			Kind:    KindCardinalityViolation,
			Message: fmt.Sprintf("rubric requires at least 2 items, got %d", len(c.Rubric)),
		}
	}

	// Silently truncate beyond 5 items.
	rubricIn := c.Rubric
	if len(rubricIn) > 5 {
		rubricIn = rubricIn[:5]
	}

	rubric := make([]string, len(rubricIn))
	for i, item := range rubricIn {
		item = strings.TrimSpace(item)
		if item == "" {
			return nil, &ShapeError{
				Ordinal: ordinal,
				Kind:    KindCardinalityViolation,
				Message: fmt.Sprintf("rubric item %d is empty", i),
			}
		}
		rubric[i] = item
	}

	return &ShortVariant{
		ModelAnswer: strings.TrimSpace(*c.ModelAnswer),
		Rubric:      rubric,
	}, nil
}

// ValidateBatch validates candidates in order, failing the whole batch on
// the first rejected question.
func ValidateBatch(candidates []Candidate, paraCount int) ([]Question, error) {
	questions := make([]Question, 0, len(candidates))
	for i, c := range candidates {
		q, err := ValidateQuestion(c, paraCount, i)
		if err != nil {
			return nil, err
		}
		questions = append(questions, *q)
	}
	return questions, nil
}
