package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/pyconv/internal/report"
	"github.com/Sumatoshi-tech/pyconv/pkg/ast27"
	"github.com/Sumatoshi-tech/pyconv/pkg/convert"
	"github.com/Sumatoshi-tech/pyconv/pkg/treecodec"
	"github.com/Sumatoshi-tech/pyconv/pkg/treedump"
)

// NewDumpCommand creates the dump command.
func NewDumpCommand() *cobra.Command {
	var (
		converted bool
		positions bool
		indent    string
	)

	cmd := &cobra.Command{
		Use:   "dump <file|->",
		Short: "Print a syntax tree document as an indented outline",
		Long: `Print a legacy syntax tree document as an indented outline, one node per
line. With --converted the tree is converted first and the Python 3.5 tree is
printed. Synthesized nodes without a source position show "@?".`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithEnv(cmd, "dump", func(_ context.Context, env *Env) error {
				mod, err := loadLegacy(cmd, args, env)
				if err != nil {
					return err
				}

				var tree any = mod

				if converted {
					tree, err = convert.NewConverter(env.Config.ConvertOptions()).Convert(mod)
					if err != nil {
						return err
					}
				}

				text, err := treedump.Dump(tree, treedump.Options{Positions: positions, Indent: indent})
				if err != nil {
					return err
				}

				_, err = io.WriteString(cmd.OutOrStdout(), text)
				if err != nil {
					return fmt.Errorf("write dump: %w", err)
				}

				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&converted, "converted", false, "Dump the converted Python 3.5 tree")
	cmd.Flags().BoolVarP(&positions, "positions", "p", false, "Show line:column positions")
	cmd.Flags().StringVar(&indent, "indent", treedump.DefaultIndent, "Indentation per tree level")

	return cmd
}

// NewDiffCommand creates the diff command.
func NewDiffCommand() *cobra.Command {
	var positions bool

	cmd := &cobra.Command{
		Use:   "diff <file|->",
		Short: "Show what conversion changes in a syntax tree document",
		Long: `Convert a legacy syntax tree document and print a line diff of the legacy
and converted outlines. Removed lines start with "-", added lines with "+".`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithEnv(cmd, "diff", func(_ context.Context, env *Env) error {
				mod, err := loadLegacy(cmd, args, env)
				if err != nil {
					return err
				}

				out, err := convert.NewConverter(env.Config.ConvertOptions()).Convert(mod)
				if err != nil {
					return err
				}

				delta, err := treedump.Diff(mod, out, treedump.Options{Positions: positions})
				if err != nil {
					return err
				}

				return report.WriteDiff(cmd.OutOrStdout(), delta, report.Options{Color: useColor(cmd)})
			})
		},
	}

	cmd.Flags().BoolVarP(&positions, "positions", "p", false, "Compare positions as well")
	cmd.Flags().Bool("no-color", false, "Disable colored output")

	return cmd
}

// loadLegacy reads and decodes the single document named by args.
func loadLegacy(cmd *cobra.Command, args []string, env *Env) (ast27.Mod, error) {
	name := stdinName
	if len(args) > 0 {
		name = args[0]
	}

	rc, err := openInput(cmd, name)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	data, err := treecodec.ReadDocument(rc, env.Config.MaxFileSizeBytes())
	if err != nil {
		return nil, err
	}

	return treecodec.DecodeLegacy(data)
}
