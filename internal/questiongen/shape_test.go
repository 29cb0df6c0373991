package questiongen

import (
	"errors"
	"reflect"
	"testing"
)

func intPtr(v int) *int       { return &v }
func strPtr(s string) *string { return &s }

func validMCQ() Candidate {
	return Candidate{
		Format:             "mcq",
		Type:               "detail_with_evidence",
		Difficulty:         2,
		Prompt:             "What did the crew find?",
		Explanation:        "Paragraph 1 states it directly.",
		EvidenceParagraphs: []int{1},
		Options:            []string{"A map", "A wreck", "A cave", "A signal"},
		CorrectOptionIndex: intPtr(1),
	}
}

func validShort() Candidate {
	return Candidate{
		Format:             "short",
		Type:               "why/how",
		Difficulty:         3,
		Prompt:             "Why did the expedition turn back?",
		Explanation:        "Paragraphs 2 and 3 describe the storm.",
		EvidenceParagraphs: []int{2, 3},
		ModelAnswer:        strPtr("The storm made the pass impassable."),
		Rubric:             []string{"Mentions the storm", "Links it to the pass"},
	}
}

func shapeErr(t *testing.T, err error) *ShapeError {
	t.Helper()
	var se *ShapeError
	if !errors.As(err, &se) {
		t.Fatalf("expected ShapeError, got %v", err)
	}
	return se
}

func TestValidateQuestion_MCQ(t *testing.T) {
	q, err := ValidateQuestion(validMCQ(), 5, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.ID != "q1" {
		t.Errorf("ID = %q, want q1", q.ID)
	}
	if q.Format != FormatMCQ || q.MCQ == nil || q.Short != nil {
		t.Errorf("expected mcq variant only, got MCQ=%v Short=%v", q.MCQ, q.Short)
	}
	if q.MCQ.CorrectOption != 1 {
		t.Errorf("CorrectOption = %d, want 1", q.MCQ.CorrectOption)
	}
	if got := q.CorrectAnswerText(); got != "A wreck" {
		t.Errorf("CorrectAnswerText = %q, want %q", got, "A wreck")
	}
}

func TestValidateQuestion_Short(t *testing.T) {
	q, err := ValidateQuestion(validShort(), 5, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.ID != "q3" {
		t.Errorf("ID = %q, want q3", q.ID)
	}
	if q.Format != FormatShort || q.Short == nil || q.MCQ != nil {
		t.Errorf("expected short variant only, got MCQ=%v Short=%v", q.MCQ, q.Short)
	}
	if len(q.Short.Rubric) != 2 {
		t.Errorf("rubric length = %d, want 2", len(q.Short.Rubric))
	}
}

func TestValidateQuestion_EvidenceNormalization(t *testing.T) {
	c := validMCQ()
	// Duplicate, out-of-bounds, and excess entries against a 5-paragraph
	// passage: dedupe first, drop invalid, cap at 4, sort ascending.
	c.EvidenceParagraphs = []int{3, 3, 7, -1, 0, 4, 1, 2}
	q, err := ValidateQuestion(c, 5, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []int{0, 1, 3, 4}
	if !reflect.DeepEqual(q.EvidenceParagraphs, want) {
		t.Errorf("EvidenceParagraphs = %v, want %v", q.EvidenceParagraphs, want)
	}
}

func TestValidateQuestion_NoValidEvidence(t *testing.T) {
	cases := []struct {
		name     string
		evidence []int
	}{
		{"empty", nil},
		{"all out of bounds", []int{5, 9, -2}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := validMCQ()
			c.EvidenceParagraphs = tc.evidence
			_, err := ValidateQuestion(c, 5, 3)
			se := shapeErr(t, err)
			if se.Kind != KindNoValidEvidence {
				t.Errorf("Kind = %q, want %q", se.Kind, KindNoValidEvidence)
			}
			if se.Ordinal != 3 {
				t.Errorf("Ordinal = %d, want 3", se.Ordinal)
			}
		})
	}
}

func TestValidateQuestion_DifficultyRange(t *testing.T) {
	for _, d := range []int{0, 4, -1} {
		c := validShort()
		c.Difficulty = d
		_, err := ValidateQuestion(c, 5, 0)
		se := shapeErr(t, err)
		if se.Kind != KindCardinalityViolation {
			t.Errorf("difficulty %d: Kind = %q, want %q", d, se.Kind, KindCardinalityViolation)
		}
	}
}

func TestValidateQuestion_MCQRejections(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Candidate)
		kind   ShapeErrorKind
	}{
		{"carries modelAnswer", func(c *Candidate) { c.ModelAnswer = strPtr("stray") }, KindUnexpectedField},
		{"carries rubric", func(c *Candidate) { c.Rubric = []string{"a", "b"} }, KindUnexpectedField},
		{"missing options", func(c *Candidate) { c.Options = nil }, KindMissingRequiredField},
		{"missing correct index", func(c *Candidate) { c.CorrectOptionIndex = nil }, KindMissingRequiredField},
		{"three options", func(c *Candidate) { c.Options = c.Options[:3] }, KindCardinalityViolation},
		{"blank option", func(c *Candidate) { c.Options[2] = "  " }, KindCardinalityViolation},
		{"correct index too high", func(c *Candidate) { c.CorrectOptionIndex = intPtr(4) }, KindCardinalityViolation},
		{"correct index negative", func(c *Candidate) { c.CorrectOptionIndex = intPtr(-1) }, KindCardinalityViolation},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := validMCQ()
			tc.mutate(&c)
			_, err := ValidateQuestion(c, 5, 0)
			se := shapeErr(t, err)
			if se.Kind != tc.kind {
				t.Errorf("Kind = %q, want %q", se.Kind, tc.kind)
			}
		})
	}
}

func TestValidateQuestion_ShortRejections(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Candidate)
		kind   ShapeErrorKind
	}{
		{"carries options", func(c *Candidate) { c.Options = []string{"a", "b", "c", "d"} }, KindUnexpectedField},
		{"carries correct index", func(c *Candidate) { c.CorrectOptionIndex = intPtr(0) }, KindUnexpectedField},
		{"missing model answer", func(c *Candidate) { c.ModelAnswer = nil }, KindMissingRequiredField},
		{"blank model answer", func(c *Candidate) { c.ModelAnswer = strPtr("   ") }, KindMissingRequiredField},
		{"missing rubric", func(c *Candidate) { c.Rubric = nil }, KindMissingRequiredField},
		{"single rubric item", func(c *Candidate) { c.Rubric = []string{"only one"} }, KindCardinalityViolation},
		{"blank rubric item", func(c *Candidate) { c.Rubric = []string{"ok", " "} }, KindCardinalityViolation},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := validShort()
			tc.mutate(&c)
			_, err := ValidateQuestion(c, 5, 0)
			se := shapeErr(t, err)
			if se.Kind != tc.kind {
				t.Errorf("Kind = %q, want %q", se.Kind, tc.kind)
			}
		})
	}
}

func TestValidateQuestion_RubricTruncation(t *testing.T) {
	c := validShort()
	c.Rubric = []string{"one", "two", "three", "four", "five", "six", "seven"}
	q, err := ValidateQuestion(c, 5, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"one", "two", "three", "four", "five"}
	if !reflect.DeepEqual(q.Short.Rubric, want) {
		t.Errorf("Rubric = %v, want %v", q.Short.Rubric, want)
	}
}

func TestValidateQuestion_UnknownFormat(t *testing.T) {
	c := validMCQ()
	c.Format = "essay"
	_, err := ValidateQuestion(c, 5, 0)
	se := shapeErr(t, err)
	if se.Kind != KindMissingRequiredField {
		t.Errorf("Kind = %q, want %q", se.Kind, KindMissingRequiredField)
	}
}

func TestValidateBatch_FirstErrorAborts(t *testing.T) {
	bad := validMCQ()
	bad.Options = bad.Options[:2]
	candidates := []Candidate{validMCQ(), bad, validShort()}

	_, err := ValidateBatch(candidates, 5)
	se := shapeErr(t, err)
	if se.Ordinal != 1 {
		t.Errorf("Ordinal = %d, want 1", se.Ordinal)
	}
	if se.Kind != KindCardinalityViolation {
		t.Errorf("Kind = %q, want %q", se.Kind, KindCardinalityViolation)
	}
}

func TestValidateBatch_AssignsSequentialIDs(t *testing.T) {
	questions, err := ValidateBatch([]Candidate{validMCQ(), validShort(), validMCQ()}, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, q := range questions {
		want := "q" + string(rune('1'+i))
		if q.ID != want {
			t.Errorf("questions[%d].ID = %q, want %q", i, q.ID, want)
		}
	}
}
