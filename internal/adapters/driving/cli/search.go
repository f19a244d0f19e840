package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	searchType   string
	searchLimit  int
	searchImages bool
	searchJSON   bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search documents or images",
	Long: `Searches document text, titles and IDs. Uses the full-text index when
available and falls back to a substring scan otherwise.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringVar(&searchType, "type", "", "filter by document type")
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 50, "maximum number of results")
	searchCmd.Flags().BoolVar(&searchImages, "images", false, "search image filenames and text instead")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	query := args[0]

	if !cmd.Flags().Changed("limit") && appConfig.Limits.SearchResults > 0 {
		searchLimit = appConfig.Limits.SearchResults
	}

	if searchImages {
		return runImageSearch(ctx, cmd, query)
	}

	filter, err := parseTypeFlag(searchType)
	if err != nil {
		return err
	}

	result, err := searchService.SearchDocuments(ctx, query, filter, searchLimit)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if searchJSON {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		cmd.Println(string(data))
		return nil
	}

	if result.Degraded {
		cmd.Println("Note: full-text index unavailable, results from substring scan.")
	}
	if len(result.Documents) == 0 {
		cmd.Println("No matches.")
		return nil
	}
	for _, doc := range result.Documents {
		printDocumentLine(cmd, doc)
	}
	return nil
}

func runImageSearch(ctx context.Context, cmd *cobra.Command, query string) error {
	result, err := searchService.SearchImages(ctx, query, searchLimit)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if searchJSON {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		cmd.Println(string(data))
		return nil
	}

	if len(result.Images) == 0 {
		cmd.Println("No matches.")
		return nil
	}
	for _, img := range result.Images {
		cmd.Printf("%s  %s  %s\n", img.DocumentID, img.Filename, snippet(img.OCRText, 60))
	}
	return nil
}

// snippet shortens text to a single line of at most max runes.
func snippet(text string, max int) string {
	runes := []rune(text)
	for i, r := range runes {
		if r == '\n' {
			runes = runes[:i]
			break
		}
	}
	if len(runes) > max {
		runes = append(runes[:max-3], '.', '.', '.')
	}
	return string(runes)
}
