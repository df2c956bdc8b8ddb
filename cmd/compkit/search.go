package main

import (
	"fmt"
	"strings"

	"compkit/internal/catalog"

	"github.com/spf13/cobra"
)

var (
	searchCategory string
	searchLimit    int
	searchPlain    bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query...]",
	Short: "Search the component catalog",
	Long: `Rank catalog components against a query. Without a query, every component
is listed in catalog order.

Examples:
  compkit search date picker
  compkit search --category ai
  compkit search modal --limit 3`,
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().StringVar(&searchCategory, "category", "", "Only show this category")
	searchCmd.Flags().IntVar(&searchLimit, "limit", 0, "Maximum number of results (0 for all)")
	searchCmd.Flags().BoolVar(&searchPlain, "plain", false, "Plain text output without styling")
}

func runSearch(cmd *cobra.Command, args []string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}
	if searchLimit < 0 {
		return fmt.Errorf("--limit must be >= 0")
	}

	var category catalog.Category
	if searchCategory != "" {
		c, ok := catalog.ParseCategory(searchCategory)
		if !ok {
			return fmt.Errorf("unknown category %q", searchCategory)
		}
		category = c
	}

	query := strings.Join(args, " ")
	var results []catalog.ScoredComponent
	if strings.TrimSpace(query) == "" {
		for _, r := range a.catalog.List(category, searchLimit) {
			results = append(results, catalog.ScoredComponent{Component: r})
		}
	} else {
		results = a.catalog.Search(query, catalog.SearchOptions{Category: category, Limit: searchLimit})
	}

	printMarkdown(cmd, a, newRenderer(searchPlain), searchMarkdown(query, results))
	return nil
}

func searchMarkdown(query string, results []catalog.ScoredComponent) string {
	if len(results) == 0 {
		return fmt.Sprintf("No components matched %q.", query)
	}

	var b strings.Builder
	if query != "" {
		fmt.Fprintf(&b, "# %d results for %q\n\n", len(results), query)
	} else {
		fmt.Fprintf(&b, "# %d components\n\n", len(results))
	}
	for _, sc := range results {
		r := sc.Component
		fmt.Fprintf(&b, "- **%s** (`%s`, %s)", r.DisplayName, r.Key, r.Category)
		if sc.Score > 0 {
			fmt.Fprintf(&b, " score %d", sc.Score)
		}
		fmt.Fprintf(&b, "\n  %s\n  `%s`\n", r.Description, r.Install())
	}
	return b.String()
}
