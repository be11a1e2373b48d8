package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/pyconv/internal/report"
	"github.com/Sumatoshi-tech/pyconv/pkg/treecodec"
)

// ErrValidationFailed is returned when a document does not match the schema.
var ErrValidationFailed = errors.New("validation failed")

// NewValidateCommand creates the validate command.
func NewValidateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate [file...]",
		Short: "Validate syntax tree documents against the legacy tree schema",
		Long: `Validate legacy syntax tree documents against the embedded JSON schema.

Examples:
  pyconv validate module.json
  pyconv validate - < module.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{stdinName}
			}

			return runWithEnv(cmd, "validate", func(_ context.Context, env *Env) error {
				invalid := 0

				for _, name := range args {
					ok, err := validateOne(cmd, env, name)
					if err != nil {
						return fmt.Errorf("%s: %w", name, err)
					}

					if !ok {
						invalid++
					}
				}

				if invalid > 0 {
					return fmt.Errorf("%w: %d of %d documents", ErrValidationFailed, invalid, len(args))
				}

				return nil
			})
		},
	}

	cmd.Flags().Bool("no-color", false, "Disable colored output")

	return cmd
}

func validateOne(cmd *cobra.Command, env *Env, name string) (bool, error) {
	rc, err := openInput(cmd, name)
	if err != nil {
		return false, err
	}
	defer rc.Close()

	data, err := treecodec.ReadDocument(rc, env.Config.MaxFileSizeBytes())
	if err != nil {
		return false, err
	}

	violations, err := treecodec.ValidateLegacy(data)
	if err != nil {
		return false, err
	}

	lines := make([]string, 0, len(violations))
	for _, v := range violations {
		lines = append(lines, v.String())
	}

	return report.WriteViolations(cmd.OutOrStdout(), name, lines, report.Options{Color: useColor(cmd)})
}
