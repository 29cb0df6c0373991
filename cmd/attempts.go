package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abhisek/lexio/internal/grading"
	"github.com/abhisek/lexio/internal/store"
	"github.com/spf13/cobra"
)

var attemptsCmd = &cobra.Command{
	Use:   "attempts <passage-id>",
	Short: "List graded attempts for a passage",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		attempts, err := s.AttemptRepo().ListByPassage(context.Background(), args[0], limit)
		if err != nil {
			return fmt.Errorf("list attempts: %w", err)
		}

		if len(attempts) == 0 {
			fmt.Println("No attempts found.")
			return nil
		}

		fmt.Printf("%-36s  %-19s  %-36s  %s\n", "Attempt", "Graded", "Set", "Score")
		fmt.Println(strings.Repeat("─", 110))

		for _, a := range attempts {
			score := "?"
			var report grading.Report
			if err := json.Unmarshal([]byte(a.ReportJSON), &report); err == nil {
				score = fmt.Sprintf("%d/%d (%d%%)",
					report.Summary.Correct, report.Summary.Total, report.Summary.Percent)
			}
			fmt.Printf("%-36s  %-19s  %-36s  %s\n",
				a.AttemptID,
				a.GradedAt.Local().Format("2006-01-02 15:04:05"),
				a.SetID,
				score,
			)
		}
		return nil
	},
}

func init() {
	attemptsCmd.Flags().IntP("limit", "n", 20, "Number of attempts to show")
}
