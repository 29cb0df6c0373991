package cmd

import (
	"fmt"

	"github.com/abhisek/lexio/internal/exercise"
	"github.com/abhisek/lexio/internal/llm"
	"github.com/abhisek/lexio/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "lexio",
	Short: "AI reading comprehension exercises",
	Long:  "Lexio — builds reading comprehension exercises from passages: thematic chunking, question sets, and graded feedback.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides LEXIO_DB env var)")

	rootCmd.AddCommand(chunkCmd)
	rootCmd.AddCommand(questionsCmd)
	rootCmd.AddCommand(gradeCmd)
	rootCmd.AddCommand(attemptsCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then LEXIO_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openService opens the store and builds an exercise service on the
// configured LLM provider. The caller closes the returned store.
func openService(cmd *cobra.Command) (*exercise.Service, *store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve database path: %w", err)
	}

	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}

	provider, err := llm.NewProviderFromEnv(cmd.Context(), st.EventRepo())
	if err != nil {
		st.Close()
		return nil, nil, fmt.Errorf("configure LLM provider: %w", err)
	}

	return exercise.NewService(provider), st, nil
}
