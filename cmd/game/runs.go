package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"go-forager/internal/storage"
)

var flagRunsLimit int

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Show recent runs",
	Long: `Display the most recent runs stored in the history database.

Examples:
  forager runs
  forager runs --limit 25`,
	Args: cobra.NoArgs,
	RunE: runRuns,
}

func init() {
	runsCmd.Flags().IntVar(&flagRunsLimit, "limit", 10, "Number of runs to show")
}

func runRuns(cmd *cobra.Command, args []string) error {
	tuning, err := loadTuning()
	if err != nil {
		return err
	}

	store, err := storage.Open(tuning.Storage.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	runs, err := store.RecentRuns(flagRunsLimit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ENDED\tLEVEL\tXP\tBLOCKS\tDURATION\tSEED")
	for _, r := range runs {
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%s\t%d\n",
			r.EndedAt.Format("2006-01-02 15:04"), r.Level, r.XP, r.BlocksMined, r.Duration.Round(time.Second), r.Seed)
	}
	return w.Flush()
}
