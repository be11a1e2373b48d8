package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/pyconv/pkg/version"
)

// NewRootCommand creates the pyconv command tree.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "pyconv",
		Short: "pyconv - Python 2.7 to Python 3.5 syntax tree converter",
		Long: `pyconv converts Python 2.7 syntax trees (typed_ast ast27 documents) into
Python 3.5 syntax trees (ast35 documents).

Commands:
  convert   Convert tree documents
  dump      Print a tree as an outline
  diff      Show what conversion changes
  validate  Check documents against the legacy tree schema
  mcp       Serve the converter to AI agents over MCP`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().String("config", "", "config file (default: .pyconv.yaml in ., ./config or $HOME)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "suppress output")

	rootCmd.AddCommand(NewConvertCommand())
	rootCmd.AddCommand(NewDumpCommand())
	rootCmd.AddCommand(NewDiffCommand())
	rootCmd.AddCommand(NewValidateCommand())
	rootCmd.AddCommand(NewMCPCommand())
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}
