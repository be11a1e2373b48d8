// Package commands implements CLI command handlers for pyconv.
package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/Sumatoshi-tech/pyconv/internal/config"
	"github.com/Sumatoshi-tech/pyconv/internal/observability"
	"github.com/Sumatoshi-tech/pyconv/pkg/cache"
	"github.com/Sumatoshi-tech/pyconv/pkg/version"
)

const (
	stdinName     = "-"
	cliSpanPrefix = "cli."
)

// Env is the runtime shared by a command: configuration, telemetry and the
// result cache.
type Env struct {
	Config     *config.Config
	Providers  observability.Providers
	Logger     *slog.Logger
	RED        *observability.REDMetrics
	Conversion *observability.ConversionMetrics
	Cache      *cache.ResultCache

	quiet bool
	diag  *observability.DiagnosticsServer
}

// newEnv loads configuration and starts telemetry for one command run.
// Global flags are read leniently so commands also work outside the root.
// --debug, where a command defines it, also forces full trace sampling.
func newEnv(cmd *cobra.Command, mode observability.AppMode) (*Env, error) {
	configPath, _ := cmd.Flags().GetString("config")
	verbose, _ := cmd.Flags().GetBool("verbose")
	quiet, _ := cmd.Flags().GetBool("quiet")
	debug, _ := cmd.Flags().GetBool("debug")

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}

	obsCfg := cfg.ObservabilityConfig(mode, version.Version)

	switch {
	case debug:
		obsCfg.LogLevel = slog.LevelDebug
		obsCfg.DebugTrace = true
	case verbose:
		obsCfg.LogLevel = slog.LevelDebug
	case quiet:
		obsCfg.LogLevel = slog.LevelError
	}

	if mode == observability.ModeMCP {
		obsCfg.LogJSON = true
	}

	prov, err := observability.InitWithWriter(obsCfg, cmd.ErrOrStderr())
	if err != nil {
		return nil, fmt.Errorf("init observability: %w", err)
	}

	env := &Env{Config: cfg, Providers: prov, Logger: prov.Logger, quiet: quiet}

	err = env.initMetrics()
	if err != nil {
		return nil, errors.Join(err, prov.Shutdown(context.Background()))
	}

	if cfg.Cache.Enabled {
		env.Cache = cache.New(cfg.CacheSizeBytes())
	}

	if addr := cfg.Observability.DiagnosticsAddr; addr != "" {
		env.diag, err = observability.NewDiagnosticsServer(addr, prov)
		if err != nil {
			return nil, errors.Join(err, prov.Shutdown(context.Background()))
		}

		env.Logger.Info("diagnostics server listening", "addr", env.diag.Addr())
	}

	return env, nil
}

func (e *Env) initMetrics() error {
	var err error

	e.RED, err = observability.NewREDMetrics(e.Providers.Meter)
	if err != nil {
		return err
	}

	e.Conversion, err = observability.NewConversionMetrics(e.Providers.Meter)
	if err != nil {
		return err
	}

	_, err = observability.NewRuntimeMetrics(e.Providers.Meter)

	return err
}

// Close stops the diagnostics server and flushes telemetry.
func (e *Env) Close() {
	ctx := context.Background()

	if e.diag != nil {
		err := e.diag.Close(ctx)
		if err != nil {
			e.Logger.Warn("diagnostics shutdown failed", "error", err)
		}
	}

	err := e.Providers.Shutdown(ctx)
	if err != nil {
		e.Logger.Warn("observability shutdown failed", "error", err)
	}
}

// track runs fn inside a cli.<op> span and records it as a RED request.
func (e *Env) track(ctx context.Context, op string, fn func(context.Context) error) error {
	ctx, span := e.Providers.Tracer.Start(ctx, cliSpanPrefix+op)
	defer span.End()

	done := e.RED.TrackInflight(ctx, cliSpanPrefix+op)
	defer done()

	start := time.Now()
	err := fn(ctx)

	status := observability.StatusOK
	if err != nil {
		status = observability.StatusError

		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		span.SetAttributes(attribute.Bool("error", true))
	}

	e.RED.RecordRequest(ctx, cliSpanPrefix+op, status, time.Since(start))

	return err
}

// runWithEnv is the RunE body shared by commands that need an Env.
func runWithEnv(cmd *cobra.Command, op string, fn func(context.Context, *Env) error) error {
	env, err := newEnv(cmd, observability.ModeCLI)
	if err != nil {
		return err
	}
	defer env.Close()

	return env.track(commandContext(cmd), op, func(ctx context.Context) error {
		return fn(ctx, env)
	})
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}

	return context.Background()
}

// openInput opens a path, or stdin for "-".
func openInput(cmd *cobra.Command, name string) (io.ReadCloser, error) {
	if name == stdinName {
		return io.NopCloser(cmd.InOrStdin()), nil
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}

	return f, nil
}

// useColor resolves --no-color against terminal detection.
func useColor(cmd *cobra.Command) bool {
	noColor, _ := cmd.Flags().GetBool("no-color")
	if noColor {
		return false
	}

	return !color.NoColor && cmd.OutOrStdout() == io.Writer(os.Stdout)
}
