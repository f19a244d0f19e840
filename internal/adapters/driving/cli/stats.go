package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show document counts by type",
	Args:  cobra.NoArgs,
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, _ []string) error {
	counts, err := libraryService.Stats(context.Background())
	if err != nil {
		return fmt.Errorf("loading stats: %w", err)
	}

	if len(counts) == 0 {
		cmd.Println("No documents.")
		return nil
	}

	total := 0
	for _, tc := range counts {
		cmd.Printf("%-20s %d\n", tc.Label, tc.Count)
		total += tc.Count
	}
	cmd.Printf("%-20s %d\n", "Total", total)
	return nil
}
