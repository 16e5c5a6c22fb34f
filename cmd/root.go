package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Bradley1112/nurture-sub001/internal/app"
	"github.com/Bradley1112/nurture-sub001/internal/quizbank"
	"github.com/Bradley1112/nurture-sub001/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "nurture",
	Short: "Diagnostic quizzes that find your level",
	Long:  "Nurture — terminal app that quizzes you on a topic, evaluates your answers, and tracks your expertise level per topic.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides NURTURE_DB env var)")

	rootCmd.AddCommand(quizCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// runApp opens the store, loads the question bank, and starts the TUI.
func runApp(cmd *cobra.Command) error {
	bank, err := quizbank.Load()
	if err != nil {
		return fmt.Errorf("load question bank: %w", err)
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve database path: %w", err)
	}

	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer func() { _ = st.Close() }()

	return app.Run(app.Options{
		Bank: bank,
		Repo: st.EvaluationRepo(),
	})
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then NURTURE_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
