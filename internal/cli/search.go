package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/vsx-labs/vsx/internal/registry"
)

var (
	searchCategory    string
	searchSize        int
	searchOffset      int
	searchSortOrder   string
	searchSortBy      string
	searchAllVersions bool
	searchJSON        bool
	searchYAML        bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the registry for extensions",
	Long: `Search the configured extension registry.

The query matches extension names, descriptions, and tags server-side.
Pagination is controlled with --size and --offset; no pages are fetched
beyond the one requested.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringVar(&searchCategory, "category", "", "Filter by category (e.g., 'Programming Languages')")
	searchCmd.Flags().IntVar(&searchSize, "size", 0, "Number of results to return")
	searchCmd.Flags().IntVar(&searchOffset, "offset", 0, "Result offset for pagination")
	searchCmd.Flags().StringVar(&searchSortOrder, "sort-order", "", "Sort order: asc or desc")
	searchCmd.Flags().StringVar(&searchSortBy, "sort-by", "", "Sort field: relevance, timestamp, averageRating, downloadCount")
	searchCmd.Flags().BoolVar(&searchAllVersions, "all-versions", false, "Include all versions of each extension")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "Output in JSON format")
	searchCmd.Flags().BoolVar(&searchYAML, "yaml", false, "Output in YAML format")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := ""
	if len(args) > 0 {
		query = args[0]
	}

	params := &registry.SearchParams{
		Query:              query,
		Category:           searchCategory,
		Size:               searchSize,
		Offset:             searchOffset,
		SortOrder:          searchSortOrder,
		SortBy:             searchSortBy,
		IncludeAllVersions: searchAllVersions,
	}

	client := newClient()
	result, err := client.Search(cmd.Context(), params)
	if err != nil {
		return fmt.Errorf("searching registry: %w", err)
	}

	if searchJSON {
		return printJSON(os.Stdout, result)
	}
	if searchYAML {
		return printYAML(os.Stdout, result)
	}

	if len(result.Extensions) == 0 {
		msg := "No extensions found"
		if query != "" {
			msg += fmt.Sprintf(" matching %q", query)
		}
		fmt.Println(msg)
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "EXTENSION\tVERSION\tDOWNLOADS\tDESCRIPTION")
	for _, e := range result.Extensions {
		fmt.Fprintf(w, "%s.%s\t%s\t%d\t%s\n", e.Namespace, e.Name, e.Version, e.DownloadCount, truncate(e.Description, 60))
	}
	w.Flush()

	fmt.Printf("\nShowing %d of %d results\n", len(result.Extensions), result.TotalSize)
	return nil
}

// truncate shortens s to max runes, appending an ellipsis when cut.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
