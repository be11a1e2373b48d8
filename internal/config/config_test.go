package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/pyconv/internal/config"
	"github.com/Sumatoshi-tech/pyconv/internal/observability"
	"github.com/Sumatoshi-tech/pyconv/pkg/treecodec"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "pyconv.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoadConfig_File(t *testing.T) {
	path := writeConfig(t, `
convert:
  merge_nested_with: true
  workers: 3
  fail_fast: true
input:
  validate_schema: true
  max_file_size: 2MB
output:
  format: yaml
  compress: true
cache:
  enabled: false
logging:
  level: debug
  json: true
observability:
  otlp_endpoint: collector:4317
  otlp_headers: "api-key=x"
  sample_ratio: 0.25
  diagnostics_addr: ":9090"
`)

	cfg, err := config.LoadConfig(path)
	require.NoError(t, err)

	assert.True(t, cfg.ConvertOptions().MergeNestedWith)
	assert.Equal(t, 3, cfg.Convert.Workers)
	assert.True(t, cfg.Convert.FailFast)
	assert.True(t, cfg.Input.ValidateSchema)
	assert.Equal(t, int64(2_000_000), cfg.MaxFileSizeBytes())
	assert.False(t, cfg.Cache.Enabled)
	assert.Equal(t, int64(64_000_000), cfg.CacheSizeBytes())

	enc := cfg.EncodeOptions()
	assert.Equal(t, treecodec.FormatYAML, enc.Format)
	assert.Equal(t, config.DefaultIndent, enc.Indent)
	assert.True(t, enc.Compress)

	obs := cfg.ObservabilityConfig(observability.ModeMCP, "1.2.3")
	assert.Equal(t, observability.ModeMCP, obs.Mode)
	assert.Equal(t, "1.2.3", obs.ServiceVersion)
	assert.Equal(t, "pyconv", obs.ServiceName)
	assert.Equal(t, "collector:4317", obs.OTLPEndpoint)
	assert.Equal(t, map[string]string{"api-key": "x"}, obs.OTLPHeaders)
	assert.InDelta(t, 0.25, obs.SampleRatio, 1e-9)
	assert.True(t, obs.Prometheus)
	assert.True(t, obs.LogJSON)
	assert.Equal(t, slog.LevelDebug, obs.LogLevel)
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "output:\n  format: yaml\n")

	t.Setenv("PYCONV_OUTPUT_FORMAT", "json-compact")
	t.Setenv("PYCONV_CONVERT_WORKERS", "7")

	cfg, err := config.LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, treecodec.FormatJSONCompact, cfg.EncodeOptions().Format)
	assert.Equal(t, 7, cfg.Convert.Workers)
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := config.LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, config.Default(), cfg)
	assert.Equal(t, treecodec.FormatJSON, cfg.EncodeOptions().Format)
	assert.Equal(t, int64(64_000_000), cfg.MaxFileSizeBytes())
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := config.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	_, err = config.LoadConfig(writeConfig(t, "output: [broken"))
	require.Error(t, err)

	_, err = config.LoadConfig(writeConfig(t, "output:\n  format: xml\n"))
	require.ErrorIs(t, err, config.ErrInvalidFormat)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*config.Config)
		want   error
	}{
		{"defaults", func(*config.Config) {}, nil},
		{"zero", func(c *config.Config) { *c = config.Config{} }, nil},
		{"workers", func(c *config.Config) { c.Convert.Workers = -1 }, config.ErrInvalidWorkers},
		{"format", func(c *config.Config) { c.Output.Format = "toml" }, config.ErrInvalidFormat},
		{"indent", func(c *config.Config) { c.Output.Indent = 9 }, config.ErrInvalidIndent},
		{"file size", func(c *config.Config) { c.Input.MaxFileSize = "lots" }, config.ErrInvalidSize},
		{"cache size", func(c *config.Config) { c.Cache.MaxSize = "-1" }, config.ErrInvalidSize},
		{"log level", func(c *config.Config) { c.Logging.Level = "chatty" }, config.ErrInvalidLogLevel},
		{"ratio", func(c *config.Config) { c.Observability.SampleRatio = 1.5 }, config.ErrInvalidSampleRatio},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := config.Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.want == nil {
				require.NoError(t, err)

				return
			}

			require.ErrorIs(t, err, tt.want)
		})
	}
}
