// Package batch converts many legacy tree documents concurrently.
package batch

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
	"golang.org/x/sync/errgroup"

	"github.com/Sumatoshi-tech/pyconv/internal/observability"
	"github.com/Sumatoshi-tech/pyconv/pkg/cache"
	"github.com/Sumatoshi-tech/pyconv/pkg/convert"
	"github.com/Sumatoshi-tech/pyconv/pkg/treecodec"
)

const (
	spanBatch = "pyconv.batch"

	attrFile    = "pyconv.file"
	attrFiles   = "pyconv.files"
	attrNodes   = "pyconv.nodes"
	attrCached  = "pyconv.cached"
	attrWorkers = "pyconv.workers"
	attrClass   = "error.class"

	outputDirPerm  = 0o755
	outputFilePerm = 0o644
)

var (
	// ErrSchema reports a document rejected by schema validation.
	ErrSchema = errors.New("document does not match the legacy tree schema")
	// ErrOutputCollision reports two inputs that would write the same output file.
	ErrOutputCollision = errors.New("inputs share an output file")
)

// Input is one document to convert.
type Input struct {
	// Name identifies the document in results and logs; for files it is the path.
	Name string
	Open func() (io.ReadCloser, error)
}

// FileInput reads the document at path.
func FileInput(path string) Input {
	return Input{
		Name: path,
		Open: func() (io.ReadCloser, error) { return os.Open(path) },
	}
}

// BytesInput serves an in-memory document.
func BytesInput(name string, data []byte) Input {
	return Input{
		Name: name,
		Open: func() (io.ReadCloser, error) { return io.NopCloser(bytes.NewReader(data)), nil },
	}
}

// Options configure a Runner.
type Options struct {
	// Workers bounds concurrent conversions; zero means GOMAXPROCS.
	Workers int
	// FailFast cancels outstanding work after the first failure.
	FailFast bool
	// MaxFileSize limits decompressed input size; zero disables the limit.
	MaxFileSize    int64
	ValidateSchema bool
	Convert        convert.Options
	Encode         treecodec.EncodeOptions
	// OutputDir, when set, receives one converted document per input.
	OutputDir string
}

// Deps holds optional collaborators. Nil fields disable the concern.
type Deps struct {
	Logger  *slog.Logger
	Tracer  trace.Tracer
	Metrics *observability.ConversionMetrics
	Cache   *cache.ResultCache
}

// Result is the outcome of one document.
type Result struct {
	Name        string
	InputBytes  int
	OutputBytes int
	// Output is the encoded modern document; nil on failure.
	Output []byte
	// OutputPath is set when the document was written to OutputDir.
	OutputPath string
	Nodes      int
	Stats      convert.Stats
	Violations []treecodec.Violation
	Cached     bool
	Duration   time.Duration
	Err        error
}

// OK reports whether the document converted.
func (r Result) OK() bool {
	return r.Err == nil
}

// Runner converts documents with a shared converter, cache and telemetry.
type Runner struct {
	opts    Options
	conv    *convert.Converter
	variant string
	logger  *slog.Logger
	tracer  trace.Tracer
	metrics *observability.ConversionMetrics
	cache   *cache.ResultCache
}

// NewRunner creates a Runner.
func NewRunner(opts Options, deps Deps) *Runner {
	if opts.Workers <= 0 {
		opts.Workers = runtime.GOMAXPROCS(0)
	}

	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	tracer := deps.Tracer
	if tracer == nil {
		tracer = noop.NewTracerProvider().Tracer(observability.TracerName)
	}

	return &Runner{
		opts:    opts,
		conv:    convert.NewConverter(opts.Convert),
		variant: cacheVariant(opts),
		logger:  logger,
		tracer:  tracer,
		metrics: deps.Metrics,
		cache:   deps.Cache,
	}
}

// cacheVariant names every option that changes the output bytes for the same
// input.
func cacheVariant(opts Options) string {
	return fmt.Sprintf("format=%s indent=%d compress=%t merge=%t schema=%t",
		opts.Encode.Format, opts.Encode.Indent, opts.Encode.Compress,
		opts.Convert.MergeNestedWith, opts.ValidateSchema)
}

// Run converts inputs and returns one Result per input in input order.
// Without FailFast every document is attempted and the returned error is
// nil unless ctx is canceled; per-document failures live in the results.
// With FailFast the first failure cancels the remaining documents and is
// returned.
func (r *Runner) Run(ctx context.Context, inputs []Input) ([]Result, error) {
	results := make([]Result, len(inputs))
	if len(inputs) == 0 {
		return results, nil
	}

	err := r.checkOutputNames(inputs)
	if err != nil {
		return nil, err
	}

	workers := min(r.opts.Workers, len(inputs))

	ctx, span := r.tracer.Start(ctx, spanBatch, trace.WithAttributes(
		attribute.Int(attrFiles, len(inputs)),
		attribute.Int(attrWorkers, workers),
	))
	defer span.End()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, in := range inputs {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				results[i] = Result{Name: in.Name, Err: gctx.Err()}

				return gctx.Err()
			default:
			}

			results[i] = r.convertInput(gctx, in)

			if r.opts.FailFast && results[i].Err != nil {
				return fmt.Errorf("%s: %w", in.Name, results[i].Err)
			}

			return nil
		})
	}

	err = g.Wait()
	if err == nil {
		err = ctx.Err()
	}

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "batch failed")

		return results, err
	}

	return results, nil
}

// checkOutputNames refuses a batch in which two inputs map to the same file
// in OutputDir.
func (r *Runner) checkOutputNames(inputs []Input) error {
	if r.opts.OutputDir == "" {
		return nil
	}

	seen := make(map[string]string, len(inputs))

	for _, in := range inputs {
		out := OutputName(in.Name, r.opts.Encode)

		if prev, ok := seen[out]; ok {
			return fmt.Errorf("%w: %s and %s both write %s", ErrOutputCollision, prev, in.Name, out)
		}

		seen[out] = in.Name
	}

	return nil
}

// ConvertBytes converts one in-memory document.
func (r *Runner) ConvertBytes(ctx context.Context, name string, data []byte) Result {
	return r.convertInput(ctx, BytesInput(name, data))
}

func (r *Runner) convertInput(ctx context.Context, in Input) Result {
	ctx, span := r.tracer.Start(ctx, observability.SpanBatchFile,
		trace.WithAttributes(attribute.String(attrFile, in.Name)))
	defer span.End()

	start := time.Now()
	res := r.process(ctx, in)
	res.Duration = time.Since(start)

	if res.Err == nil && r.opts.OutputDir != "" {
		res.OutputPath, res.Err = r.writeOutput(in.Name, res.Output)
	}

	fs := observability.FileStats{
		Nodes:       res.Nodes,
		Rules:       res.Stats.Rules,
		InputBytes:  res.InputBytes,
		OutputBytes: res.OutputBytes,
		Seconds:     res.Duration.Seconds(),
		Cached:      res.Cached,
	}

	span.SetAttributes(attribute.Int(attrNodes, res.Nodes), attribute.Bool(attrCached, res.Cached))

	if res.Err != nil {
		fs.FailureClass = convert.Class(res.Err)

		span.RecordError(res.Err)
		span.SetStatus(codes.Error, "conversion failed")
		span.SetAttributes(attribute.String(attrClass, fs.FailureClass))

		r.logger.WarnContext(ctx, "conversion failed", "file", in.Name, "class", fs.FailureClass, "error", res.Err)
	} else {
		r.logger.DebugContext(ctx, "converted", "file", in.Name, "nodes", res.Nodes,
			"rules", res.Stats.RuleApplications(), "cached", res.Cached, "duration", res.Duration)
	}

	r.metrics.RecordFile(ctx, fs)

	return res
}

func (r *Runner) process(ctx context.Context, in Input) Result {
	res := Result{Name: in.Name}

	data, err := r.read(in)
	if err != nil {
		res.Err = err

		return res
	}

	res.InputBytes = len(data)

	var key cache.Key
	if r.cache != nil {
		key = cache.NewKey(data, r.variant)

		entry := r.cache.Get(key)
		r.metrics.RecordCache(ctx, entry != nil)

		if entry != nil {
			res.Output = entry.Output
			res.OutputBytes = len(entry.Output)
			res.Nodes = entry.Nodes
			res.Cached = true

			return res
		}
	}

	if r.opts.ValidateSchema {
		res.Violations, err = treecodec.ValidateLegacy(data)
		if err != nil {
			res.Err = err

			return res
		}

		if len(res.Violations) > 0 {
			res.Err = fmt.Errorf("%w: %d violation(s), first: %s", ErrSchema, len(res.Violations), res.Violations[0])

			return res
		}
	}

	mod, err := treecodec.DecodeLegacy(data)
	if err != nil {
		res.Err = err

		return res
	}

	out, stats, err := r.conv.ConvertWithStats(mod)
	res.Stats = stats

	if err != nil {
		res.Err = err

		return res
	}

	encoded, err := treecodec.Marshal(out, r.opts.Encode)
	if err != nil {
		res.Err = err

		return res
	}

	res.Output = encoded
	res.OutputBytes = len(encoded)
	res.Nodes = stats.Nodes

	if r.cache != nil {
		r.cache.Put(key, &cache.Entry{Output: encoded, Nodes: stats.Nodes})
	}

	return res
}

func (r *Runner) read(in Input) ([]byte, error) {
	if in.Open == nil {
		return nil, fmt.Errorf("%s: no reader", in.Name)
	}

	rc, err := in.Open()
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	defer rc.Close()

	return treecodec.ReadDocument(rc, r.opts.MaxFileSize)
}

func (r *Runner) writeOutput(name string, data []byte) (string, error) {
	err := os.MkdirAll(r.opts.OutputDir, outputDirPerm)
	if err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}

	path := filepath.Join(r.opts.OutputDir, OutputName(name, r.opts.Encode))

	err = os.WriteFile(path, data, outputFilePerm)
	if err != nil {
		return "", fmt.Errorf("write output: %w", err)
	}

	return path, nil
}

// OutputName derives the output file name for an input: the base name with
// its tree extensions replaced by ".py3" plus the format's extension.
func OutputName(name string, opts treecodec.EncodeOptions) string {
	base := filepath.Base(name)

	for _, ext := range []string{".lz4", ".json", ".yaml", ".yml"} {
		base = strings.TrimSuffix(base, ext)
	}

	if base == "" || base == "." || base == "-" || base == string(filepath.Separator) {
		base = "stdin"
	}

	ext := ".json"
	if opts.Format == treecodec.FormatYAML {
		ext = ".yaml"
	}

	if opts.Compress {
		ext += ".lz4"
	}

	return base + ".py3" + ext
}

// Summary aggregates a batch.
type Summary struct {
	Files       int
	Failed      int
	Cached      int
	Nodes       int
	InputBytes  int64
	OutputBytes int64
	Stats       convert.Stats
	Duration    time.Duration
}

// Summarize totals results.
func Summarize(results []Result) Summary {
	var s Summary

	for _, res := range results {
		s.Files++
		s.Duration += res.Duration
		s.InputBytes += int64(res.InputBytes)

		if res.Err != nil {
			s.Failed++

			continue
		}

		if res.Cached {
			s.Cached++
		}

		s.Nodes += res.Nodes
		s.OutputBytes += int64(res.OutputBytes)
		s.Stats.Merge(res.Stats)
	}

	return s
}
