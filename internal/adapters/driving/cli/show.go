package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show [document id]",
	Short: "Show one document with its images",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	detail, err := libraryService.GetDetail(context.Background(), args[0])
	if err != nil {
		return fmt.Errorf("loading document: %w", err)
	}

	doc := detail.Document
	cmd.Printf("%s\n", doc.DisplayTitle())
	cmd.Printf("  ID:      %s\n", doc.ID)
	cmd.Printf("  Type:    %s\n", doc.Type)
	cmd.Printf("  Created: %s\n", doc.CreatedAt)
	if doc.WordPath != "" {
		cmd.Printf("  Word:    %s\n", doc.WordPath)
	}
	if doc.ExcelPath != "" {
		cmd.Printf("  Excel:   %s\n", doc.ExcelPath)
	}

	cmd.Printf("  Images (%d):\n", len(detail.Images))
	for _, img := range detail.Images {
		cmd.Printf("    %s  %s\n", img.Filename, img.StoredPath)
	}

	if doc.OCRText != "" {
		cmd.Println()
		cmd.Println(doc.OCRText)
	}
	return nil
}
