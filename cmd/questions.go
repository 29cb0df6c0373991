package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/abhisek/lexio/internal/passage"
	"github.com/abhisek/lexio/internal/questiongen"
	"github.com/spf13/cobra"
)

var questionsCmd = &cobra.Command{
	Use:   "questions <passage.json>",
	Short: "Generate a question set for a passage",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, _ := cmd.Flags().GetString("out")
		avoidPath, _ := cmd.Flags().GetString("avoid")

		p, err := passage.Load(args[0])
		if err != nil {
			return err
		}
		paras := passage.SplitParagraphs(p.Text)

		var opts questiongen.GenerateOpts
		if avoidPath != "" {
			prev, err := loadQuestionSet(avoidPath)
			if err != nil {
				return fmt.Errorf("load previous set: %w", err)
			}
			opts.AvoidPrompts = prev.Prompts()
		}

		svc, st, err := openService(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		set, err := svc.GenerateQuestions(cmd.Context(), p.ID, paras, opts)
		if err != nil {
			return fmt.Errorf("generate questions for %s: %w", p.ID, err)
		}

		data, err := json.MarshalIndent(set, "", "  ")
		if err != nil {
			return err
		}

		if out != "" {
			if err := os.WriteFile(out, data, 0o644); err != nil {
				return fmt.Errorf("write question set: %w", err)
			}
			fmt.Printf("Wrote %d questions to %s (set %s)\n", len(set.Questions), out, set.SetID)
			return nil
		}

		fmt.Println(string(data))
		return nil
	},
}

func loadQuestionSet(path string) (*questiongen.QuestionSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var set questiongen.QuestionSet
	if err := json.Unmarshal(data, &set); err != nil {
		return nil, err
	}
	return &set, nil
}

func init() {
	questionsCmd.Flags().StringP("out", "o", "", "Write the question set to a file instead of stdout")
	questionsCmd.Flags().String("avoid", "", "Path to a previous question set whose prompts should not be repeated")
}
