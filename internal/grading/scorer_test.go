package grading

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/abhisek/lexio/internal/llm"
)

var scorerParagraphs = []string{
	"The river froze early that year.",
	"Supplies ran low by the third week.",
	"The relief party arrived with sleds.",
}

func TestBuildScoreItems(t *testing.T) {
	set := testSet(mcqQ("q1", 0), shortQ("q2"))
	answers := map[string]Answer{
		"q1": {SelectedOption: intPtr(0)},
		"q2": {Text: "because supplies ran low"},
	}

	items := BuildScoreItems(set, answers, scorerParagraphs)
	if len(items) != 1 {
		t.Fatalf("got %d items, want 1 (mcq excluded)", len(items))
	}

	item := items[0]
	if item.QuestionID != "q2" {
		t.Errorf("QuestionID = %q, want q2", item.QuestionID)
	}
	if item.UserAnswer != "because supplies ran low" {
		t.Errorf("UserAnswer = %q", item.UserAnswer)
	}
	// shortQ cites paragraphs 1 and 2.
	if !strings.Contains(item.EvidenceText, "Supplies ran low") ||
		!strings.Contains(item.EvidenceText, "relief party") {
		t.Errorf("EvidenceText = %q, want both cited paragraphs", item.EvidenceText)
	}
}

func TestBuildScoreItems_UnansweredShortIncluded(t *testing.T) {
	set := testSet(shortQ("q1"))
	items := BuildScoreItems(set, nil, scorerParagraphs)
	if len(items) != 1 {
		t.Fatalf("got %d items, want 1", len(items))
	}
	if items[0].UserAnswer != "" {
		t.Errorf("UserAnswer = %q, want empty", items[0].UserAnswer)
	}
}

func TestScore(t *testing.T) {
	raw, _ := json.Marshal(map[string]any{
		"scores": []map[string]any{
			{"questionId": "q1", "isCorrect": true, "score01": 0.85, "feedback": "Covers the rubric."},
			{"questionId": "q9", "isCorrect": true, "score01": 1.0, "feedback": "Hallucinated ID."},
		},
	})
	mock := llm.NewMockProvider(llm.MockResponse{Content: raw})
	s := NewScorer(mock, DefaultScorerConfig())

	items := []ScoreItem{{
		QuestionID:   "q1",
		Prompt:       "Why did they wait?",
		UserAnswer:   "the river froze",
		ModelAnswer:  "The early freeze blocked the river route.",
		Rubric:       []string{"Mentions the freeze", "Connects it to travel"},
		EvidenceText: scorerParagraphs[0],
	}}

	scores, err := s.Score(context.Background(), items)
	if err != nil {
		t.Fatalf("Score failed: %v", err)
	}

	got, ok := scores["q1"]
	if !ok {
		t.Fatal("missing verdict for q1")
	}
	if !got.IsCorrect || got.Score01 != 0.85 {
		t.Errorf("q1 = %+v", got)
	}

	// Verdicts for IDs not in the request are dropped.
	if _, ok := scores["q9"]; ok {
		t.Error("verdict for unknown question ID kept")
	}

	user := mock.Calls[0].Messages[0].Content
	if !strings.Contains(user, "questionId: q1") || !strings.Contains(user, "Mentions the freeze") {
		t.Errorf("scorer message missing item details:\n%s", user)
	}
}

func TestScore_ClampsScoreRange(t *testing.T) {
	raw, _ := json.Marshal(map[string]any{
		"scores": []map[string]any{
			{"questionId": "q1", "isCorrect": true, "score01": 1.4, "feedback": "over"},
			{"questionId": "q2", "isCorrect": false, "score01": -0.2, "feedback": "under"},
		},
	})
	mock := llm.NewMockProvider(llm.MockResponse{Content: raw})
	s := NewScorer(mock, DefaultScorerConfig())

	items := []ScoreItem{{QuestionID: "q1"}, {QuestionID: "q2"}}
	scores, err := s.Score(context.Background(), items)
	if err != nil {
		t.Fatalf("Score failed: %v", err)
	}
	if scores["q1"].Score01 != 1 {
		t.Errorf("q1 Score01 = %v, want clamped to 1", scores["q1"].Score01)
	}
	if scores["q2"].Score01 != 0 {
		t.Errorf("q2 Score01 = %v, want clamped to 0", scores["q2"].Score01)
	}
}

func TestScore_NoItems(t *testing.T) {
	mock := llm.NewMockProvider()
	s := NewScorer(mock, DefaultScorerConfig())

	scores, err := s.Score(context.Background(), nil)
	if err != nil {
		t.Fatalf("Score failed: %v", err)
	}
	if len(scores) != 0 {
		t.Errorf("got %d scores, want 0", len(scores))
	}
	if mock.CallCount() != 0 {
		t.Errorf("provider called %d times, want 0", mock.CallCount())
	}
}
