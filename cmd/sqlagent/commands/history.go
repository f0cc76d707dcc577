// ABOUTME: CLI command to list recent query history
// ABOUTME: Tabwriter listing of natural queries and their generated SQL
package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var historyLimit int

// NewHistoryCmd creates the history command
func NewHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recent query history",
		Long: `List the most recent natural-query/SQL pairs recorded by the agent.

Examples:
  sqlagent history
  sqlagent history --limit 20`,
		RunE: runHistory,
	}

	cmd.Flags().IntVar(&historyLimit, "limit", 10, "Maximum records to show")

	return cmd
}

func runHistory(cmd *cobra.Command, _ []string) error {
	if err := validatePositiveInt(historyLimit, "limit"); err != nil {
		return err
	}

	store, log, err := buildStorage()
	if err != nil {
		return err
	}
	defer func() {
		_ = store.Close()
		_ = log.Sync()
	}()

	records, err := store.RecentQueries(historyLimit)
	if err != nil {
		return fmt.Errorf("reading history: %w", err)
	}

	if len(records) == 0 {
		if !quiet {
			fmt.Fprintln(cmd.OutOrStdout(), "No history recorded yet.")
		}
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "WHEN\tQUERY\tSQL\n")
	fmt.Fprintf(w, "----\t-----\t---\n")
	for _, rec := range records {
		fmt.Fprintf(w, "%s\t%s\t%s\n",
			rec.CreatedAt.Format("2006-01-02 15:04"),
			truncate(rec.NaturalQuery, 40),
			truncate(rec.GeneratedSQL, 60))
	}
	return w.Flush()
}
