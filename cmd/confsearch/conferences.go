// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/confsearch/internal/registry"
	"github.com/pdiddy/confsearch/internal/search"
)

var conferencesCmd = &cobra.Command{
	Use:   "conferences",
	Short: "List the registered conferences per tier",
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := registry.Load()
		if err != nil {
			return err
		}
		fmt.Print(search.FormatConferences(reg, time.Now()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(conferencesCmd)
}
