// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/pdiddy/confsearch/internal/mcpserver"
	"github.com/pdiddy/confsearch/internal/registry"
	"github.com/pdiddy/confsearch/internal/search"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the search tools over the Model Context Protocol",
	Long: `Serve exposes search_papers, get_conference_papers, list_conferences,
and get_stats as MCP tools on stdio. Logs go to stderr; stdout carries the
protocol.`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	reg, err := registry.Load()
	if err != nil {
		return err
	}

	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	searcher := search.New(reg, searchConfig())
	srv := mcpserver.New(reg, searcher, logger)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info().Str("version", version).Msg("serving MCP tools on stdio")
	return srv.Run(ctx, version)
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
