package batch_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/Sumatoshi-tech/pyconv/internal/batch"
	"github.com/Sumatoshi-tech/pyconv/internal/observability"
	"github.com/Sumatoshi-tech/pyconv/pkg/ast35"
	"github.com/Sumatoshi-tech/pyconv/pkg/cache"
	"github.com/Sumatoshi-tech/pyconv/pkg/convert"
	"github.com/Sumatoshi-tech/pyconv/pkg/treecodec"
)

const printDoc = `{"_type": "Module", "body": [
  {"_type": "Print", "dest": null, "values": [
    {"_type": "Name", "id": "x", "ctx": "Load", "lineno": 1, "col_offset": 6}
  ], "nl": true, "lineno": 1, "col_offset": 0}
], "type_ignores": []}`

const suiteDoc = `{"_type": "Suite", "body": []}`

const missingValueDoc = `{"_type": "Module", "body": [
  {"_type": "Expr", "lineno": 1, "col_offset": 0}
], "type_ignores": []}`

const badSchemaDoc = `{"_type": "Module", "body": [
  {"_type": "Nonlocal", "names": ["x"], "lineno": 1, "col_offset": 0}
], "type_ignores": []}`

func compactRunner(opts batch.Options, deps batch.Deps) *batch.Runner {
	opts.Encode = treecodec.EncodeOptions{Format: treecodec.FormatJSONCompact}

	return batch.NewRunner(opts, deps)
}

func TestRun_PreservesOrder(t *testing.T) {
	t.Parallel()

	inputs := make([]batch.Input, 0, 20)
	for i := range 20 {
		inputs = append(inputs, batch.BytesInput(fmt.Sprintf("doc%02d", i), []byte(printDoc)))
	}

	results, err := compactRunner(batch.Options{Workers: 4}, batch.Deps{}).Run(context.Background(), inputs)
	require.NoError(t, err)
	require.Len(t, results, len(inputs))

	for i, res := range results {
		assert.Equal(t, inputs[i].Name, res.Name)
		require.NoError(t, res.Err)
		assert.True(t, res.OK())
		assert.Positive(t, res.Nodes)
		assert.Equal(t, 1, res.Stats.Rules["Print"])
		assert.Equal(t, len(res.Output), res.OutputBytes)
		assert.Equal(t, len(printDoc), res.InputBytes)

		mod, decErr := treecodec.DecodeModern(res.Output)
		require.NoError(t, decErr)

		module, ok := mod.(*ast35.Module)
		require.True(t, ok)
		require.Len(t, module.Body, 1)
		assert.IsType(t, &ast35.ExprStmt{}, module.Body[0])
	}
}

func TestRun_Empty(t *testing.T) {
	t.Parallel()

	results, err := batch.NewRunner(batch.Options{}, batch.Deps{}).Run(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestRun_CollectsFailures(t *testing.T) {
	t.Parallel()

	inputs := []batch.Input{
		batch.BytesInput("ok", []byte(printDoc)),
		batch.BytesInput("suite", []byte(suiteDoc)),
		batch.BytesInput("missing", []byte(missingValueDoc)),
		batch.BytesInput("garbage", []byte("{")),
	}

	results, err := compactRunner(batch.Options{Workers: 2}, batch.Deps{}).Run(context.Background(), inputs)
	require.NoError(t, err)
	require.Len(t, results, 4)

	require.NoError(t, results[0].Err)

	require.ErrorIs(t, results[1].Err, convert.ErrUnsupportedConstruct)
	assert.Equal(t, "unsupported", convert.Class(results[1].Err))

	require.ErrorIs(t, results[2].Err, convert.ErrMalformedTree)
	assert.Equal(t, "malformed", convert.Class(results[2].Err))

	require.ErrorIs(t, results[3].Err, treecodec.ErrInvalidDocument)
	assert.Equal(t, "other", convert.Class(results[3].Err))

	for _, res := range results[1:] {
		assert.Nil(t, res.Output)
	}

	sum := batch.Summarize(results)
	assert.Equal(t, 4, sum.Files)
	assert.Equal(t, 3, sum.Failed)
	assert.Equal(t, results[0].Nodes, sum.Nodes)
	assert.Equal(t, 1, sum.Stats.Rules["Print"])
}

func TestRun_FailFast(t *testing.T) {
	t.Parallel()

	inputs := []batch.Input{batch.BytesInput("suite", []byte(suiteDoc))}
	for i := range 10 {
		inputs = append(inputs, batch.BytesInput(fmt.Sprintf("doc%d", i), []byte(printDoc)))
	}

	results, err := compactRunner(batch.Options{Workers: 1, FailFast: true}, batch.Deps{}).
		Run(context.Background(), inputs)
	require.ErrorIs(t, err, convert.ErrUnsupportedConstruct)
	assert.Contains(t, err.Error(), "suite")
	require.Len(t, results, len(inputs))

	require.ErrorIs(t, results[0].Err, convert.ErrUnsupportedConstruct)

	for _, res := range results[1:] {
		require.ErrorIs(t, res.Err, context.Canceled)
	}
}

func TestRun_Canceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := compactRunner(batch.Options{}, batch.Deps{}).
		Run(ctx, []batch.Input{batch.BytesInput("a", []byte(printDoc))})
	require.ErrorIs(t, err, context.Canceled)
	require.Len(t, results, 1)
	require.ErrorIs(t, results[0].Err, context.Canceled)
}

func TestRun_Cache(t *testing.T) {
	t.Parallel()

	rc := cache.New(0)
	runner := compactRunner(batch.Options{Workers: 1}, batch.Deps{Cache: rc})

	first := runner.ConvertBytes(context.Background(), "a", []byte(printDoc))
	require.NoError(t, first.Err)
	assert.False(t, first.Cached)

	second := runner.ConvertBytes(context.Background(), "b", []byte(printDoc))
	require.NoError(t, second.Err)
	assert.True(t, second.Cached)
	assert.Equal(t, first.Output, second.Output)
	assert.Equal(t, first.Nodes, second.Nodes)

	stats := rc.Stats()
	assert.Equal(t, int64(1), stats.Hits)
	assert.Equal(t, int64(1), stats.Misses)

	// A different output format must not reuse the compact result.
	yamlRunner := batch.NewRunner(batch.Options{Encode: treecodec.EncodeOptions{Format: treecodec.FormatYAML}},
		batch.Deps{Cache: rc})

	third := yamlRunner.ConvertBytes(context.Background(), "c", []byte(printDoc))
	require.NoError(t, third.Err)
	assert.False(t, third.Cached)
	assert.NotEqual(t, first.Output, third.Output)
}

func TestRun_ValidateSchema(t *testing.T) {
	t.Parallel()

	runner := compactRunner(batch.Options{ValidateSchema: true}, batch.Deps{})

	res := runner.ConvertBytes(context.Background(), "bad", []byte(badSchemaDoc))
	require.ErrorIs(t, res.Err, batch.ErrSchema)
	assert.NotEmpty(t, res.Violations)

	res = runner.ConvertBytes(context.Background(), "good", []byte(printDoc))
	require.NoError(t, res.Err)
	assert.Empty(t, res.Violations)
}

func TestRun_CompressedInputAndLimit(t *testing.T) {
	t.Parallel()

	packed, err := treecodec.Compress([]byte(printDoc))
	require.NoError(t, err)

	res := compactRunner(batch.Options{}, batch.Deps{}).ConvertBytes(context.Background(), "packed", packed)
	require.NoError(t, res.Err)
	assert.Equal(t, len(printDoc), res.InputBytes)

	res = compactRunner(batch.Options{MaxFileSize: 16}, batch.Deps{}).ConvertBytes(context.Background(), "big", packed)
	require.ErrorIs(t, res.Err, treecodec.ErrTooLarge)
}

func TestRun_FilesAndOutputDir(t *testing.T) {
	t.Parallel()

	in := t.TempDir()
	out := filepath.Join(t.TempDir(), "converted")

	path := filepath.Join(in, "module.json")
	require.NoError(t, os.WriteFile(path, []byte(printDoc), 0o600))

	runner := batch.NewRunner(batch.Options{
		OutputDir: out,
		Encode:    treecodec.EncodeOptions{Format: treecodec.FormatYAML},
	}, batch.Deps{})

	results, err := runner.Run(context.Background(), []batch.Input{
		batch.FileInput(path),
		batch.FileInput(filepath.Join(in, "absent.json")),
	})
	require.NoError(t, err)

	require.NoError(t, results[0].Err)
	assert.Equal(t, filepath.Join(out, "module.py3.yaml"), results[0].OutputPath)

	written, err := os.ReadFile(results[0].OutputPath)
	require.NoError(t, err)
	assert.Equal(t, results[0].Output, written)
	assert.True(t, strings.HasPrefix(string(written), "_type: Module"))

	require.ErrorIs(t, results[1].Err, os.ErrNotExist)
}

func TestRun_OutputCollision(t *testing.T) {
	t.Parallel()

	in := t.TempDir()
	out := filepath.Join(t.TempDir(), "converted")

	for _, dir := range []string{"a", "b"} {
		require.NoError(t, os.MkdirAll(filepath.Join(in, dir), 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(in, dir, "mod.json"), []byte(printDoc), 0o600))
	}

	runner := batch.NewRunner(batch.Options{OutputDir: out}, batch.Deps{})

	results, err := runner.Run(context.Background(), []batch.Input{
		batch.FileInput(filepath.Join(in, "a", "mod.json")),
		batch.FileInput(filepath.Join(in, "b", "mod.json")),
	})
	require.ErrorIs(t, err, batch.ErrOutputCollision)
	assert.Contains(t, err.Error(), "mod.py3.json")
	assert.Nil(t, results)

	_, statErr := os.Stat(out)
	require.ErrorIs(t, statErr, os.ErrNotExist)

	// Different tree extensions collapse to the same output name too.
	_, err = runner.Run(context.Background(), []batch.Input{
		batch.BytesInput("mod.json", []byte(printDoc)),
		batch.BytesInput("mod.yaml", []byte(printDoc)),
	})
	require.ErrorIs(t, err, batch.ErrOutputCollision)

	// Without an output directory nothing is written, so names may repeat.
	results, err = batch.NewRunner(batch.Options{}, batch.Deps{}).Run(context.Background(), []batch.Input{
		batch.BytesInput("mod.json", []byte(printDoc)),
		batch.BytesInput("mod.json", []byte(printDoc)),
	})
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.True(t, results[0].OK())
	assert.True(t, results[1].OK())
}

func TestRun_OpenErrors(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")

	runner := batch.NewRunner(batch.Options{}, batch.Deps{})

	results, err := runner.Run(context.Background(), []batch.Input{
		{Name: "nil"},
		{Name: "err", Open: func() (io.ReadCloser, error) { return nil, boom }},
	})
	require.NoError(t, err)
	require.Error(t, results[0].Err)
	require.ErrorIs(t, results[1].Err, boom)
}

func TestRun_Spans(t *testing.T) {
	t.Parallel()

	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))

	runner := compactRunner(batch.Options{}, batch.Deps{Tracer: tp.Tracer("test")})

	_, err := runner.Run(context.Background(), []batch.Input{
		batch.BytesInput("ok", []byte(printDoc)),
		batch.BytesInput("suite", []byte(suiteDoc)),
	})
	require.NoError(t, err)

	names := map[string]int{}
	for _, s := range rec.Ended() {
		names[s.Name()]++
	}

	assert.Equal(t, 1, names["pyconv.batch"])
	assert.Equal(t, 2, names[observability.SpanBatchFile])
}

func TestOutputName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		opts treecodec.EncodeOptions
		want string
	}{
		{"a/b/mod.json", treecodec.EncodeOptions{}, "mod.py3.json"},
		{"mod.json.lz4", treecodec.EncodeOptions{Compress: true}, "mod.py3.json.lz4"},
		{"mod.yml", treecodec.EncodeOptions{Format: treecodec.FormatYAML}, "mod.py3.yaml"},
		{"-", treecodec.EncodeOptions{}, "stdin.py3.json"},
		{"tree", treecodec.EncodeOptions{Format: treecodec.FormatJSONCompact}, "tree.py3.json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, batch.OutputName(tt.name, tt.opts))
		})
	}
}
