package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	configName      = ".pyconv"
	configType      = "yaml"
	envPrefix       = "PYCONV"
	envKeySeparator = "_"
)

// Defaults.
const (
	DefaultFormat       = "json"
	DefaultIndent       = 2
	DefaultMaxFileSize  = "64MB"
	DefaultCacheEnabled = true
	DefaultCacheSize    = "64MB"
	DefaultLogLevel     = "info"
)

// LoadConfig reads defaults, then the config file, then PYCONV_* variables
// (PYCONV_OUTPUT_FORMAT overrides output.format). An explicit configPath must
// exist; otherwise .pyconv.yaml is looked up in ".", "./config" and $HOME
// and may be absent.
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	applyDefaults(v)

	v.SetConfigType(configType)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", envKeySeparator))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName(configName)
		v.AddConfigPath(".")
		v.AddConfigPath(filepath.Join(".", "config"))

		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	err := v.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config

	err = v.Unmarshal(&cfg)
	if err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	err = cfg.Validate()
	if err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

// Default returns the configuration used when nothing is configured.
func Default() *Config {
	return &Config{
		Input:   InputConfig{ValidateSchema: false, MaxFileSize: DefaultMaxFileSize},
		Output:  OutputConfig{Format: DefaultFormat, Indent: DefaultIndent},
		Cache:   CacheConfig{Enabled: DefaultCacheEnabled, MaxSize: DefaultCacheSize},
		Logging: LoggingConfig{Level: DefaultLogLevel},
	}
}

// applyDefaults registers every key so AutomaticEnv can override it.
func applyDefaults(v *viper.Viper) {
	def := Default()

	v.SetDefault("convert.merge_nested_with", def.Convert.MergeNestedWith)
	v.SetDefault("convert.workers", def.Convert.Workers)
	v.SetDefault("convert.fail_fast", def.Convert.FailFast)

	v.SetDefault("input.validate_schema", def.Input.ValidateSchema)
	v.SetDefault("input.max_file_size", def.Input.MaxFileSize)

	v.SetDefault("output.format", def.Output.Format)
	v.SetDefault("output.indent", def.Output.Indent)
	v.SetDefault("output.compress", def.Output.Compress)
	v.SetDefault("output.directory", def.Output.Directory)

	v.SetDefault("cache.enabled", def.Cache.Enabled)
	v.SetDefault("cache.max_size", def.Cache.MaxSize)

	v.SetDefault("logging.level", def.Logging.Level)
	v.SetDefault("logging.json", def.Logging.JSON)

	v.SetDefault("observability.otlp_endpoint", "")
	v.SetDefault("observability.otlp_insecure", false)
	v.SetDefault("observability.otlp_headers", "")
	v.SetDefault("observability.sample_ratio", 0.0)
	v.SetDefault("observability.trace_verbose", false)
	v.SetDefault("observability.diagnostics_addr", "")
	v.SetDefault("observability.environment", "")
}
