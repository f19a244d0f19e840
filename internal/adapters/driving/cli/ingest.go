package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Quan631/PBL-6/internal/core/ports/driving"
)

var (
	ingestTitle   string
	ingestNoOCR   bool
	ingestEnhance bool
)

var ingestCmd = &cobra.Command{
	Use:   "ingest [image files...]",
	Short: "Ingest scanned images as a new document",
	Long: `Saves the given images as one document, runs OCR over each of them,
classifies the combined text and exports Word and Excel artifacts.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runIngest,
}

func init() {
	ingestCmd.Flags().StringVarP(&ingestTitle, "title", "t", "", "document title")
	ingestCmd.Flags().BoolVar(&ingestNoOCR, "no-ocr", false, "save images without running OCR")
	ingestCmd.Flags().BoolVar(&ingestEnhance, "enhance", true, "preprocess images before OCR")
	rootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, args []string) error {
	enhance := appConfig.OCR.Enhance
	if cmd.Flags().Changed("enhance") {
		enhance = ingestEnhance
	}

	req := driving.CreateDocumentRequest{
		Title:   ingestTitle,
		Enhance: enhance,
		RunOCR:  !ingestNoOCR,
	}

	var closers []*os.File
	defer func() {
		for _, f := range closers {
			f.Close()
		}
	}()
	for _, path := range args {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("opening %s: %w", path, err)
		}
		closers = append(closers, f)
		req.Files = append(req.Files, driving.Upload{Name: filepath.Base(path), Data: f})
	}

	result, err := ingestService.CreateDocument(context.Background(), req)
	if err != nil {
		return fmt.Errorf("ingest failed: %w", err)
	}

	doc := result.Document
	cmd.Printf("Created %s (%s)\n", doc.ID, doc.Type)
	cmd.Printf("  Title:  %s\n", doc.DisplayTitle())
	cmd.Printf("  Images: %d\n", len(result.Images))
	if doc.WordPath != "" {
		cmd.Printf("  Word:   %s\n", doc.WordPath)
	}
	if doc.ExcelPath != "" {
		cmd.Printf("  Excel:  %s\n", doc.ExcelPath)
	}
	for _, w := range result.Warnings {
		cmd.Printf("  Warning: %s\n", w)
	}
	return nil
}
