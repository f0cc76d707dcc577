// ABOUTME: CLI command to run one natural-language query through the pipeline
// ABOUTME: Prints the final display string, whatever shape it takes
package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewQueryCmd creates the query command
func NewQueryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "query <text>",
		Short: "Run a natural-language query",
		Long: `Run one natural-language request through the full pipeline and print
the result.

Examples:
  sqlagent query "show me all products with price less than 100"
  sqlagent query "what is the average stock of products?"
  sqlagent query "give me the price of the most expensive product"`,
		Args: cobra.ExactArgs(1),
		RunE: runQuery,
	}
}

func runQuery(cmd *cobra.Command, args []string) error {
	a, _, cleanup, err := buildAgent()
	if err != nil {
		return err
	}
	defer cleanup()

	result := a.Run(cmd.Context(), args[0])
	fmt.Fprintln(cmd.OutOrStdout(), result)
	return nil
}
