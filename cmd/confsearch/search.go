// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/confsearch/internal/registry"
	"github.com/pdiddy/confsearch/internal/search"
)

var searchCmd = &cobra.Command{
	Use:   "search [keyword]",
	Short: "Search conference papers on DBLP",
	Long: `Search queries DBLP for papers matching a keyword, author, year range,
and conference subset, and prints the normalized results. Year bounds and
explicit conference lists are enforced locally after results return.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	reg, err := registry.Load()
	if err != nil {
		return err
	}

	tierFlag, _ := cmd.Flags().GetString("tier")
	tier, err := registry.ParseTier(tierFlag)
	if err != nil {
		return err
	}

	req := search.Request{Tier: tier}
	if len(args) > 0 {
		req.Keyword = args[0]
	}
	req.Author, _ = cmd.Flags().GetString("author")
	req.YearFrom, _ = cmd.Flags().GetInt("from")
	req.YearTo, _ = cmd.Flags().GetInt("to")
	req.Limit, _ = cmd.Flags().GetInt("limit")

	if confs, _ := cmd.Flags().GetString("conferences"); confs != "" {
		for _, key := range strings.Split(confs, ",") {
			if key = strings.TrimSpace(key); key != "" {
				req.Conferences = append(req.Conferences, key)
			}
		}
	}

	if req.Keyword == "" && req.Author == "" && len(req.Conferences) == 0 {
		return fmt.Errorf("query is empty: provide a keyword, --author, or --conferences")
	}

	searcher := search.New(reg, searchConfig())
	papers, err := searcher.Search(cmd.Context(), req)
	if err != nil {
		return err
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		return search.FormatJSON(papers, os.Stdout)
	}
	search.FormatTable(papers, os.Stdout)
	return nil
}

func init() {
	searchCmd.Flags().String("author", "", "filter by author name")
	searchCmd.Flags().Int("from", 0, "publication year range start (inclusive)")
	searchCmd.Flags().Int("to", 0, "publication year range end (inclusive)")
	searchCmd.Flags().String("conferences", "", "conference keys to search (comma-separated)")
	searchCmd.Flags().String("tier", "all", "conference tier: top, second, or all")
	searchCmd.Flags().Int("limit", 0, "maximum number of results (default 50, max 100)")
	searchCmd.Flags().Bool("json", false, "output results as JSON")

	rootCmd.AddCommand(searchCmd)
}
