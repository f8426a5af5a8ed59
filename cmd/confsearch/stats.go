// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/confsearch/internal/registry"
	"github.com/pdiddy/confsearch/internal/search"
)

var statsCmd = &cobra.Command{
	Use:   "stats [keyword]",
	Short: "Count matching papers by year and by conference",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	reg, err := registry.Load()
	if err != nil {
		return err
	}

	tierFlag, _ := cmd.Flags().GetString("tier")
	tier, err := registry.ParseTier(tierFlag)
	if err != nil {
		return err
	}

	req := search.Request{Tier: tier, Limit: search.MaxLimit}
	if len(args) > 0 {
		req.Keyword = args[0]
	}

	searcher := search.New(reg, searchConfig())
	papers, err := searcher.Search(cmd.Context(), req)
	if err != nil {
		return err
	}

	fmt.Print(search.FormatStats(search.Aggregate(papers)))
	return nil
}

func init() {
	statsCmd.Flags().String("tier", "all", "conference tier: top, second, or all")

	rootCmd.AddCommand(statsCmd)
}
