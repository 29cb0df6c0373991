package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/abhisek/lexio/internal/chunkplan"
	"github.com/abhisek/lexio/internal/grading"
	"github.com/abhisek/lexio/internal/passage"
	"github.com/abhisek/lexio/internal/questiongen"
	"github.com/abhisek/lexio/internal/store"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var gradeCmd = &cobra.Command{
	Use:   "grade <set.json> <answers.json>",
	Short: "Grade answers against a question set",
	Long: `Grade answers against a question set.

The answers file maps question IDs to answers:
  {"q1": {"selectedOption": 2}, "q2": {"text": "free-text answer"}}`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		passagePath, _ := cmd.Flags().GetString("passage")
		withSections, _ := cmd.Flags().GetBool("sections")
		asJSON, _ := cmd.Flags().GetBool("json")

		set, err := loadQuestionSet(args[0])
		if err != nil {
			return fmt.Errorf("load question set: %w", err)
		}

		answersData, err := os.ReadFile(args[1])
		if err != nil {
			return fmt.Errorf("read answers file: %w", err)
		}
		var answers map[string]grading.Answer
		if err := json.Unmarshal(answersData, &answers); err != nil {
			return fmt.Errorf("parse answers file: %w", err)
		}

		p, err := passage.Load(passagePath)
		if err != nil {
			return err
		}
		paras := passage.SplitParagraphs(p.Text)

		svc, st, err := openService(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		started := time.Now().UTC()
		report, err := svc.Grade(cmd.Context(), set, answers, paras)
		if err != nil {
			return err
		}

		// Section labels for each item's evidence, when asked for.
		var sections []chunkplan.Section
		if withSections {
			plan, err := svc.ChunkPassage(cmd.Context(), p.Text)
			if err != nil {
				fmt.Fprintln(os.Stderr, "section labels unavailable:", err)
			} else {
				sections = plan.Sections
			}
		}

		if err := saveAttempt(cmd.Context(), st, set, report, started); err != nil {
			fmt.Fprintln(os.Stderr, "attempt not saved:", err)
		}

		if asJSON {
			out, err := json.MarshalIndent(report, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			return nil
		}

		printReport(report, sections)
		return nil
	},
}

func saveAttempt(ctx context.Context, st *store.Store, set *questiongen.QuestionSet, report *grading.Report, started time.Time) error {
	reportJSON, err := json.Marshal(report)
	if err != nil {
		return err
	}
	return st.AttemptRepo().Save(ctx, &store.Attempt{
		AttemptID:  uuid.NewString(),
		PassageID:  set.PassageID,
		SetID:      set.SetID,
		StartedAt:  started,
		GradedAt:   time.Now().UTC(),
		ReportJSON: string(reportJSON),
	})
}

func printReport(report *grading.Report, sections []chunkplan.Section) {
	for _, item := range report.Results {
		mark := "✗"
		if item.IsCorrect {
			mark = "✓"
		}
		fmt.Printf("%s %s  (score %.2f)\n", mark, item.QuestionID, item.Score01)
		fmt.Printf("  %s\n", item.Feedback)
		fmt.Printf("  Answer: %s\n", item.CorrectAnswer)
		if labels := chunkplan.ResolveSections(item.EvidenceParagraphs, sections); len(labels) > 0 {
			fmt.Printf("  Evidence: %s (paragraphs %s)\n",
				strings.Join(labels, ", "), joinInts(item.EvidenceParagraphs))
		} else {
			fmt.Printf("  Evidence: paragraphs %s\n", joinInts(item.EvidenceParagraphs))
		}
		fmt.Println()
	}

	fmt.Println(strings.Repeat("─", 60))
	fmt.Printf("Set %s: %d/%d correct (%d%%)\n",
		report.SetID, report.Summary.Correct, report.Summary.Total, report.Summary.Percent)
}

func joinInts(vals []int) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = fmt.Sprintf("%d", v)
	}
	return strings.Join(parts, ", ")
}

func init() {
	gradeCmd.Flags().StringP("passage", "p", "", "Path to the passage JSON file (required)")
	gradeCmd.Flags().Bool("sections", false, "Resolve evidence paragraphs to thematic section labels")
	gradeCmd.Flags().Bool("json", false, "Print the report as JSON")
	_ = gradeCmd.MarkFlagRequired("passage")
}
