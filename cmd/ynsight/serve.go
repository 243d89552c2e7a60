package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ynsight/ynsight/internal/config"
	"github.com/ynsight/ynsight/internal/mcp"
	"github.com/ynsight/ynsight/internal/tools"
	"github.com/ynsight/ynsight/internal/ynab"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve MCP tools over stdio",
		Long: `Serve speaks the Model Context Protocol on stdin/stdout.

Protocol frames own stdout, so all logging goes to stderr.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			client, err := ynab.NewClient(cfg.Token, ynab.Options{
				BaseURL:  cfg.BaseURL,
				CacheTTL: cfg.CacheTTL,
			})
			if err != nil {
				return err
			}
			dispatcher := tools.NewDispatcher(client, cfg.BudgetID)
			server := mcp.NewServer(dispatcher, "ynsight", version)

			slog.Info("Starting MCP server",
				"default_budget", cfg.BudgetID,
				"cache_ttl", cfg.CacheTTL.String())

			if err := server.Serve(cmd.Context(), os.Stdin, os.Stdout); err != nil {
				return fmt.Errorf("server stopped: %w", err)
			}
			return nil
		},
	}
}
