// Package observability wires OpenTelemetry tracing, metrics and structured
// logging for every pyconv entry point (CLI runs and the MCP server).
package observability

import "log/slog"

// AppMode identifies how the binary was launched.
type AppMode string

const (
	// ModeCLI is a one-shot command run.
	ModeCLI AppMode = "cli"
	// ModeMCP is the MCP stdio server.
	ModeMCP AppMode = "mcp"
)

const (
	defaultServiceName        = "pyconv"
	defaultShutdownTimeoutSec = 5
)

// Config holds all observability settings.
type Config struct {
	ServiceName    string
	ServiceVersion string
	Environment    string
	Mode           AppMode

	// OTLPEndpoint is the OTLP gRPC collector address (e.g. "localhost:4317").
	// Empty disables export.
	OTLPEndpoint string
	OTLPHeaders  map[string]string
	OTLPInsecure bool

	// Prometheus adds a pull reader whose scrape handler is returned in
	// Providers.MetricsHandler.
	Prometheus bool

	// DebugTrace forces 100% sampling.
	DebugTrace bool
	// SampleRatio is the root sampling ratio; zero samples everything.
	SampleRatio float64
	// TraceVerbose keeps per-file spans, which are suppressed by default.
	TraceVerbose bool

	LogLevel slog.Level
	LogJSON  bool

	ShutdownTimeoutSec int
}

// DefaultConfig returns the zero-config setup: no export, info logs as text.
func DefaultConfig() Config {
	return Config{
		ServiceName:        defaultServiceName,
		Mode:               ModeCLI,
		LogLevel:           slog.LevelInfo,
		ShutdownTimeoutSec: defaultShutdownTimeoutSec,
	}
}
