package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export [document id]",
	Short: "Regenerate Word and Excel artifacts for a document",
	Args:  cobra.ExactArgs(1),
	RunE:  runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	wordPath, excelPath, err := ingestService.ExportDocument(context.Background(), args[0])
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	cmd.Printf("Word:  %s\n", wordPath)
	cmd.Printf("Excel: %s\n", excelPath)
	return nil
}
