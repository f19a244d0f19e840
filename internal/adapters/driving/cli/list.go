package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Quan631/PBL-6/internal/core/domain"
)

var (
	listType   string
	listLimit  int
	listOffset int
	listJSON   bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List documents, newest first",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringVar(&listType, "type", "", "filter by document type")
	listCmd.Flags().IntVarP(&listLimit, "limit", "n", 50, "maximum number of documents")
	listCmd.Flags().IntVar(&listOffset, "offset", 0, "number of documents to skip")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(listCmd)
}

// parseTypeFlag maps the --type flag to a filter. Empty means all.
func parseTypeFlag(value string) (domain.TypeFilter, error) {
	if value == "" {
		return domain.AllTypes(), nil
	}
	t, err := domain.ParseDocType(value)
	if err != nil {
		return domain.TypeFilter{}, err
	}
	return domain.FilterType(t), nil
}

func runList(cmd *cobra.Command, _ []string) error {
	filter, err := parseTypeFlag(listType)
	if err != nil {
		return err
	}

	limit := listLimit
	if !cmd.Flags().Changed("limit") && appConfig.Limits.ListPageSize > 0 {
		limit = appConfig.Limits.ListPageSize
	}

	docs, err := libraryService.ListDocuments(context.Background(), filter, limit, listOffset)
	if err != nil {
		return fmt.Errorf("listing documents: %w", err)
	}

	if listJSON {
		data, err := json.MarshalIndent(docs, "", "  ")
		if err != nil {
			return err
		}
		cmd.Println(string(data))
		return nil
	}

	if len(docs) == 0 {
		cmd.Println("No documents.")
		return nil
	}
	for _, doc := range docs {
		printDocumentLine(cmd, doc)
	}
	return nil
}

func printDocumentLine(cmd *cobra.Command, doc domain.Document) {
	cmd.Printf("%s  %-19s  %-19s  %s\n", doc.ID, doc.CreatedAt, doc.Type, doc.DisplayTitle())
}
