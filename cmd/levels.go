package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Bradley1112/nurture-sub001/internal/evaluation"
	"github.com/Bradley1112/nurture-sub001/internal/store"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Print your latest level for each topic",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return err
		}

		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer func() { _ = st.Close() }()

		levels, err := st.EvaluationRepo().TopicLevels(cmd.Context())
		if err != nil {
			return fmt.Errorf("load levels: %w", err)
		}

		if len(levels) == 0 {
			fmt.Println("No evaluations yet. Run `nurture` and take a quiz.")
			return nil
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "TOPIC\tLEVEL\tACCURACY\tUPDATED")
		for _, tl := range levels {
			fmt.Fprintf(w, "%s\t%s\t%.1f%%\t%s\n",
				tl.Topic,
				evaluation.ParseLevel(tl.Level).Title(),
				tl.Accuracy,
				tl.UpdatedAt.Local().Format("2006-01-02"),
			)
		}
		return w.Flush()
	},
}
