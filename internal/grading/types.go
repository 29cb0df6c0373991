// Package grading scores submitted answers: multiple-choice
// deterministically, short answers through an LLM scorer, and assembles
// both into a single report.
package grading

// Answer is a learner's response to one question. Exactly one side is
// meaningful, matching the question's format: SelectedOption for
// multiple-choice (nil means unanswered), Text for short answers (may be
// empty).
type Answer struct {
	SelectedOption *int   `json:"selectedOption,omitempty"`
	Text           string `json:"text,omitempty"`
}

// ShortScore is the scorer's verdict for one short-answer question.
type ShortScore struct {
	QuestionID string  `json:"questionId"`
	IsCorrect  bool    `json:"isCorrect"`
	Score01    float64 `json:"score01"`
	Feedback   string  `json:"feedback"`
}

// GradeItem is the per-question row of a report. It is always present
// for every question in the set: a short answer the scorer returned no
// verdict for keeps its placeholder state instead of failing the report.
type GradeItem struct {
	QuestionID         string  `json:"questionId"`
	IsCorrect          bool    `json:"isCorrect"`
	Score01            float64 `json:"score01"`
	Feedback           string  `json:"feedback"`
	CorrectAnswer      string  `json:"correctAnswer"`
	ModelAnswer        string  `json:"modelAnswer,omitempty"`
	EvidenceParagraphs []int   `json:"evidenceParagraphs"`
	Explanation        string  `json:"explanation"`
}

// Summary aggregates a report.
type Summary struct {
	Correct int `json:"correct"`
	Total   int `json:"total"`
	Percent int `json:"percent"`
}

// Report is the full grading result for one question set. It is derived,
// never persisted incrementally: grading again recomputes it from
// scratch.
type Report struct {
	SetID   string      `json:"setId"`
	Summary Summary     `json:"summary"`
	Results []GradeItem `json:"results"`
}
