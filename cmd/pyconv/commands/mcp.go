package commands

import (
	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/pyconv/internal/batch"
	"github.com/Sumatoshi-tech/pyconv/internal/mcp"
	"github.com/Sumatoshi-tech/pyconv/internal/observability"
)

// NewMCPCommand creates the MCP server command.
func NewMCPCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Start MCP server for AI agent integration",
		Long: `Start a Model Context Protocol (MCP) server on stdio transport.

The MCP server exposes tree conversion as tools that AI agents can discover
and invoke:
  - pyconv_convert: Convert a Python 2.7 tree document to Python 3.5
  - pyconv_dump: Render a tree document as an outline
  - pyconv_diff: Diff the legacy and converted outlines`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cobraCmd *cobra.Command, _ []string) error {
			env, err := newEnv(cobraCmd, observability.ModeMCP)
			if err != nil {
				return err
			}
			defer env.Close()

			cfg := env.Config

			srv := mcp.NewServer(mcp.ServerDeps{
				Logger:     env.Logger,
				Metrics:    env.RED,
				Conversion: env.Conversion,
				Tracer:     env.Providers.Tracer,
				Cache:      env.Cache,
				Defaults: batch.Options{
					MaxFileSize:    cfg.MaxFileSizeBytes(),
					ValidateSchema: cfg.Input.ValidateSchema,
					Convert:        cfg.ConvertOptions(),
					Encode:         cfg.EncodeOptions(),
				},
			})

			return srv.Run(commandContext(cobraCmd))
		},
	}

	cmd.Flags().Bool("debug", false, "Enable debug logging to stderr")

	return cmd
}
