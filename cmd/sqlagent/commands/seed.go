// ABOUTME: CLI command to seed the product catalog
// ABOUTME: Inserts the demo dataset when the table is empty
package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewSeedCmd creates the seed command
func NewSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Seed the product catalog with demo data",
		Long:  `Insert the sample product catalog if the products table is empty.`,
		RunE:  runSeed,
	}
}

func runSeed(cmd *cobra.Command, _ []string) error {
	store, log, err := buildStorage()
	if err != nil {
		return err
	}
	defer func() {
		_ = store.Close()
		_ = log.Sync()
	}()

	inserted, err := store.SeedProducts()
	if err != nil {
		return fmt.Errorf("seeding products: %w", err)
	}

	if !quiet {
		if inserted == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "Products table already has data, nothing to do.")
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "Inserted %d products.\n", inserted)
		}
	}
	return nil
}
