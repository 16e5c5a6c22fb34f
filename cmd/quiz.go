package cmd

import (
	"github.com/spf13/cobra"
)

// quizCmd is an alias for the bare root command, so "nurture quiz" reads
// naturally in shell history and docs.
var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Take a diagnostic quiz (same as running nurture with no arguments)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}
