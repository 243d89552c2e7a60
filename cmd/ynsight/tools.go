package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ynsight/ynsight/internal/tools"
)

func toolsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tools",
		Short: "List the tools the server exposes",
		RunE: func(_ *cobra.Command, _ []string) error {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(tools.Definitions()); err != nil {
				return fmt.Errorf("failed to encode tool definitions: %w", err)
			}
			return nil
		},
	}
}
