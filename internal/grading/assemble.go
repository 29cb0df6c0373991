package grading

import (
	"math"

	"github.com/abhisek/lexio/internal/questiongen"
)

const feedbackNotGraded = "Not graded yet."

// AssembleReport merges deterministic multiple-choice scoring with the
// scorer's short-answer verdicts into one report. It is a pure function
// of its inputs: grading the same set and answers twice yields the same
// report. A short-answer question missing from shortScores keeps its
// placeholder state rather than failing the batch.
func AssembleReport(set *questiongen.QuestionSet, answers map[string]Answer, shortScores map[string]ShortScore) *Report {
	results := make([]GradeItem, 0, len(set.Questions))
	correct := 0

	for i := range set.Questions {
		q := &set.Questions[i]
		item := GradeItem{
			QuestionID:         q.ID,
			Feedback:           feedbackNotGraded,
			CorrectAnswer:      q.CorrectAnswerText(),
			EvidenceParagraphs: q.EvidenceParagraphs,
			Explanation:        q.Explanation,
		}
		if q.Short != nil {
			item.ModelAnswer = q.Short.ModelAnswer
		}

		switch {
		case q.MCQ != nil:
			gradeMCQ(&item, q.MCQ, answers[q.ID])
		case q.Short != nil:
			if score, ok := shortScores[q.ID]; ok {
				item.IsCorrect = score.IsCorrect
				item.Score01 = score.Score01
				item.Feedback = score.Feedback
			}
		}

		if item.IsCorrect {
			correct++
		}
		results = append(results, item)
	}

	return &Report{
		SetID: set.SetID,
		Summary: Summary{
			Correct: correct,
			Total:   len(results),
			Percent: percent(correct, len(results)),
		},
		Results: results,
	}
}

// gradeMCQ scores a multiple-choice answer by exact index match. The
// scorer is never involved; a nil selection is always incorrect.
func gradeMCQ(item *GradeItem, mcq *questiongen.MCQVariant, ans Answer) {
	if ans.SelectedOption == nil {
		item.Feedback = "No answer selected."
		return
	}
	if *ans.SelectedOption == mcq.CorrectOption {
		item.IsCorrect = true
		item.Score01 = 1
		item.Feedback = "Correct."
		return
	}
	item.Feedback = "Incorrect."
}

func percent(correct, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(correct) / float64(total)))
}
