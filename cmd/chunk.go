package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abhisek/lexio/internal/passage"
	"github.com/spf13/cobra"
)

var chunkCmd = &cobra.Command{
	Use:   "chunk <passage.json>",
	Short: "Split a passage into labeled thematic sections",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fixed, _ := cmd.Flags().GetInt("fixed")
		asJSON, _ := cmd.Flags().GetBool("json")

		p, err := passage.Load(args[0])
		if err != nil {
			return err
		}

		// Non-AI fallback: fixed-size chunks, no LLM involved.
		if fixed > 0 {
			return printChunks(passage.FixedChunks(p.Text, fixed), asJSON)
		}

		svc, st, err := openService(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		plan, err := svc.ChunkPassage(cmd.Context(), p.Text)
		if err != nil {
			return fmt.Errorf("chunk passage %s: %w", p.ID, err)
		}

		paras := make([]string, len(plan.Paragraphs))
		for i, pi := range plan.Paragraphs {
			paras[i] = pi.Text
		}
		return printChunks(passage.FromPlan(paras, plan.Sections), asJSON)
	},
}

func printChunks(chunks []passage.TextChunk, asJSON bool) error {
	if asJSON {
		out, err := json.MarshalIndent(chunks, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}

	for _, c := range chunks {
		fmt.Printf("%s  %s\n", c.ID, c.Label)
		fmt.Println(strings.Repeat("─", 60))
		fmt.Println(c.Text)
		fmt.Println()
	}
	return nil
}

func init() {
	chunkCmd.Flags().Int("fixed", 0, "Use fixed-size chunks of N paragraphs instead of thematic sections")
	chunkCmd.Flags().Bool("json", false, "Print chunks as JSON")
}
