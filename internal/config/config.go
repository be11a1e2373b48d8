// Package config loads pyconv settings from defaults, an optional YAML file
// and PYCONV_* environment variables.
package config

import (
	"errors"
	"fmt"
	"math"

	"github.com/dustin/go-humanize"

	"github.com/Sumatoshi-tech/pyconv/internal/observability"
	"github.com/Sumatoshi-tech/pyconv/pkg/convert"
	"github.com/Sumatoshi-tech/pyconv/pkg/treecodec"
)

// Config is the top-level configuration. Field tags use mapstructure for
// viper unmarshalling.
type Config struct {
	Convert       ConvertConfig       `mapstructure:"convert"`
	Input         InputConfig         `mapstructure:"input"`
	Output        OutputConfig        `mapstructure:"output"`
	Cache         CacheConfig         `mapstructure:"cache"`
	Logging       LoggingConfig       `mapstructure:"logging"`
	Observability ObservabilityConfig `mapstructure:"observability"`
}

// ConvertConfig controls the rewrite and the batch runner.
type ConvertConfig struct {
	MergeNestedWith bool `mapstructure:"merge_nested_with"`
	// Workers is the number of documents converted at once; zero means one
	// per CPU.
	Workers  int  `mapstructure:"workers"`
	FailFast bool `mapstructure:"fail_fast"`
}

// InputConfig controls how documents are read.
type InputConfig struct {
	ValidateSchema bool `mapstructure:"validate_schema"`
	// MaxFileSize is a humanized byte size ("16MB"); empty or "0" disables
	// the limit.
	MaxFileSize string `mapstructure:"max_file_size"`
}

// OutputConfig controls how converted trees are written.
type OutputConfig struct {
	Format   string `mapstructure:"format"`
	Indent   int    `mapstructure:"indent"`
	Compress bool   `mapstructure:"compress"`
	// Directory receives one output file per input; empty writes to stdout.
	Directory string `mapstructure:"directory"`
}

// CacheConfig controls the in-process result cache.
type CacheConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	MaxSize string `mapstructure:"max_size"`
}

// LoggingConfig controls the structured logger.
type LoggingConfig struct {
	Level string `mapstructure:"level"`
	JSON  bool   `mapstructure:"json"`
}

// ObservabilityConfig controls telemetry export.
type ObservabilityConfig struct {
	OTLPEndpoint    string  `mapstructure:"otlp_endpoint"`
	OTLPInsecure    bool    `mapstructure:"otlp_insecure"`
	OTLPHeaders     string  `mapstructure:"otlp_headers"`
	SampleRatio     float64 `mapstructure:"sample_ratio"`
	TraceVerbose    bool    `mapstructure:"trace_verbose"`
	DiagnosticsAddr string  `mapstructure:"diagnostics_addr"`
	Environment     string  `mapstructure:"environment"`
}

// Sentinel errors for configuration validation.
var (
	ErrInvalidWorkers     = errors.New("convert.workers must be non-negative")
	ErrInvalidFormat      = errors.New("output.format must be json, json-compact or yaml")
	ErrInvalidIndent      = errors.New("output.indent must be between 0 and 8")
	ErrInvalidSize        = errors.New("size must be a byte size such as 16MB")
	ErrInvalidLogLevel    = errors.New("logging.level must be debug, info, warn or error")
	ErrInvalidSampleRatio = errors.New("observability.sample_ratio must be between 0 and 1")
)

const maxIndent = 8

// Validate checks the configuration and returns the first problem found.
func (c *Config) Validate() error {
	if c.Convert.Workers < 0 {
		return ErrInvalidWorkers
	}

	if c.Output.Format != "" {
		if _, err := treecodec.ParseFormat(c.Output.Format); err != nil {
			return fmt.Errorf("%w: %q", ErrInvalidFormat, c.Output.Format)
		}
	}

	if c.Output.Indent < 0 || c.Output.Indent > maxIndent {
		return ErrInvalidIndent
	}

	if _, err := parseSize("input.max_file_size", c.Input.MaxFileSize); err != nil {
		return err
	}

	if _, err := parseSize("cache.max_size", c.Cache.MaxSize); err != nil {
		return err
	}

	if c.Logging.Level != "" {
		if _, err := observability.ParseLevel(c.Logging.Level); err != nil {
			return fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.Logging.Level)
		}
	}

	if c.Observability.SampleRatio < 0 || c.Observability.SampleRatio > 1 {
		return ErrInvalidSampleRatio
	}

	return nil
}

// ConvertOptions returns the rewrite options.
func (c *Config) ConvertOptions() convert.Options {
	return convert.Options{MergeNestedWith: c.Convert.MergeNestedWith}
}

// EncodeOptions returns the output encoding options. Call Validate first.
func (c *Config) EncodeOptions() treecodec.EncodeOptions {
	format, err := treecodec.ParseFormat(c.Output.Format)
	if err != nil {
		format = treecodec.FormatJSON
	}

	return treecodec.EncodeOptions{Format: format, Indent: c.Output.Indent, Compress: c.Output.Compress}
}

// MaxFileSizeBytes returns the input size limit; zero means unlimited.
func (c *Config) MaxFileSizeBytes() int64 {
	n, _ := parseSize("input.max_file_size", c.Input.MaxFileSize)

	return n
}

// CacheSizeBytes returns the cache budget; zero selects the cache default.
func (c *Config) CacheSizeBytes() int64 {
	n, _ := parseSize("cache.max_size", c.Cache.MaxSize)

	return n
}

// ObservabilityConfig builds the telemetry setup for a run in mode.
func (c *Config) ObservabilityConfig(mode observability.AppMode, version string) observability.Config {
	cfg := observability.DefaultConfig()

	cfg.Mode = mode
	cfg.ServiceVersion = version
	cfg.Environment = c.Observability.Environment
	cfg.OTLPEndpoint = c.Observability.OTLPEndpoint
	cfg.OTLPInsecure = c.Observability.OTLPInsecure
	cfg.OTLPHeaders = observability.ParseOTLPHeaders(c.Observability.OTLPHeaders)
	cfg.SampleRatio = c.Observability.SampleRatio
	cfg.TraceVerbose = c.Observability.TraceVerbose
	cfg.Prometheus = c.Observability.DiagnosticsAddr != ""
	cfg.LogJSON = c.Logging.JSON

	if level, err := observability.ParseLevel(c.Logging.Level); err == nil {
		cfg.LogLevel = level
	}

	return cfg
}

func parseSize(key, s string) (int64, error) {
	if s == "" {
		return 0, nil
	}

	n, err := humanize.ParseBytes(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalidSize, key, s)
	}

	if n > math.MaxInt64 {
		return math.MaxInt64, nil
	}

	return int64(n), nil
}
