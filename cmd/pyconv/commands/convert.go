package commands

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/pyconv/internal/batch"
	"github.com/Sumatoshi-tech/pyconv/internal/report"
	"github.com/Sumatoshi-tech/pyconv/pkg/treecodec"
)

var (
	// ErrOutputDirRequired is returned when several inputs would share stdout.
	ErrOutputDirRequired = errors.New("converting several inputs requires --output-dir")
	// ErrConversionFailed is returned when at least one input did not convert.
	ErrConversionFailed = errors.New("conversion failed")
)

// ConvertCommand holds the flags of "pyconv convert".
type ConvertCommand struct {
	format    string
	indent    int
	compress  bool
	outputDir string
	workers   int
	failFast  bool
	merge     bool
	validate  bool
	summary   bool
	rules     bool
}

// NewConvertCommand creates the convert command.
func NewConvertCommand() *cobra.Command {
	cc := &ConvertCommand{}

	cmd := &cobra.Command{
		Use:   "convert [file...]",
		Short: "Convert Python 2.7 syntax tree documents to Python 3.5",
		Long: `Convert legacy (ast27) syntax tree documents to modern (ast35) documents.

Inputs are JSON or YAML tree documents, optionally LZ4-compressed. With no
arguments, or "-", the document is read from stdin. A single input is written
to stdout unless --output-dir is set; several inputs require --output-dir.

Examples:
  pyconv convert module.json
  pyconv convert --format yaml - < module.json
  pyconv convert -o out/ --workers 8 trees/*.json`,
		RunE: cc.run,
	}

	cmd.Flags().StringVarP(&cc.format, "format", "f", "", "Output format: json, json-compact, yaml (default from config)")
	cmd.Flags().IntVar(&cc.indent, "indent", 0, "JSON indent width (default from config)")
	cmd.Flags().BoolVar(&cc.compress, "compress", false, "Write LZ4-compressed documents")
	cmd.Flags().StringVarP(&cc.outputDir, "output-dir", "o", "", "Directory receiving one converted document per input")
	cmd.Flags().IntVarP(&cc.workers, "workers", "w", 0, "Documents converted concurrently (0 = CPU count)")
	cmd.Flags().BoolVar(&cc.failFast, "fail-fast", false, "Stop at the first failed document")
	cmd.Flags().BoolVar(&cc.merge, "merge-nested-with", false, "Fold directly nested with-statements into one")
	cmd.Flags().BoolVar(&cc.validate, "validate", false, "Validate inputs against the legacy tree schema")
	cmd.Flags().BoolVar(&cc.summary, "summary", false, "Print a per-file summary table to stderr")
	cmd.Flags().BoolVar(&cc.rules, "rules", false, "Include rule application counts in the summary")
	cmd.Flags().Bool("no-color", false, "Disable colored output")

	return cmd
}

func (cc *ConvertCommand) run(cmd *cobra.Command, args []string) error {
	return runWithEnv(cmd, "convert", func(ctx context.Context, env *Env) error {
		opts, err := cc.options(cmd, env)
		if err != nil {
			return err
		}

		if len(args) == 0 {
			args = []string{stdinName}
		}

		if len(args) > 1 && opts.OutputDir == "" {
			return ErrOutputDirRequired
		}

		inputs := make([]batch.Input, 0, len(args))
		for _, name := range args {
			inputs = append(inputs, batch.Input{
				Name: name,
				Open: func() (io.ReadCloser, error) { return openInput(cmd, name) },
			})
		}

		runner := batch.NewRunner(opts, batch.Deps{
			Logger:  env.Logger,
			Tracer:  env.Providers.Tracer,
			Metrics: env.Conversion,
			Cache:   env.Cache,
		})

		results, runErr := runner.Run(ctx, inputs)

		if opts.OutputDir == "" && len(results) == 1 && results[0].Err == nil {
			_, err = cmd.OutOrStdout().Write(results[0].Output)
			if err != nil {
				return fmt.Errorf("write output: %w", err)
			}
		}

		if (cc.summary || cc.rules || len(results) > 1) && !env.quiet {
			err = report.WriteSummary(cmd.ErrOrStderr(), results, report.Options{
				Color:  useColor(cmd),
				Rules:  cc.rules,
				Errors: true,
			})
			if err != nil {
				return err
			}
		}

		if runErr != nil {
			return runErr
		}

		sum := batch.Summarize(results)
		if sum.Failed > 0 {
			if sum.Files == 1 {
				return fmt.Errorf("%s: %w", results[0].Name, results[0].Err)
			}

			return fmt.Errorf("%w: %d of %d documents", ErrConversionFailed, sum.Failed, sum.Files)
		}

		return nil
	})
}

// options merges explicitly set flags over the configuration.
func (cc *ConvertCommand) options(cmd *cobra.Command, env *Env) (batch.Options, error) {
	cfg := env.Config
	flags := cmd.Flags()

	encode := cfg.EncodeOptions()

	if flags.Changed("format") {
		format, err := treecodec.ParseFormat(cc.format)
		if err != nil {
			return batch.Options{}, err
		}

		encode.Format = format
	}

	if flags.Changed("indent") {
		encode.Indent = cc.indent
	}

	if flags.Changed("compress") {
		encode.Compress = cc.compress
	}

	opts := batch.Options{
		Workers:        cfg.Convert.Workers,
		FailFast:       cfg.Convert.FailFast,
		MaxFileSize:    cfg.MaxFileSizeBytes(),
		ValidateSchema: cfg.Input.ValidateSchema,
		Convert:        cfg.ConvertOptions(),
		Encode:         encode,
		OutputDir:      cfg.Output.Directory,
	}

	if flags.Changed("output-dir") {
		opts.OutputDir = cc.outputDir
	}

	if flags.Changed("workers") {
		opts.Workers = cc.workers
	}

	if flags.Changed("fail-fast") {
		opts.FailFast = cc.failFast
	}

	if flags.Changed("merge-nested-with") {
		opts.Convert.MergeNestedWith = cc.merge
	}

	if flags.Changed("validate") {
		opts.ValidateSchema = cc.validate
	}

	return opts, nil
}
