package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/Sumatoshi-tech/pyconv/internal/batch"
	"github.com/Sumatoshi-tech/pyconv/pkg/ast27"
	"github.com/Sumatoshi-tech/pyconv/pkg/convert"
	"github.com/Sumatoshi-tech/pyconv/pkg/treecodec"
)

// Tool name constants.
const (
	ToolNameConvert = "pyconv_convert"
	ToolNameDump    = "pyconv_dump"
	ToolNameDiff    = "pyconv_diff"
)

// MaxDocumentBytes bounds inline documents when no limit is configured (4 MB).
const MaxDocumentBytes = 4 << 20

// Sentinel errors for tool input validation.
var (
	// ErrEmptyDocument indicates the document parameter is empty.
	ErrEmptyDocument = errors.New("document parameter is required and must not be empty")
	// ErrDocumentTooLarge indicates the document exceeds the size limit.
	ErrDocumentTooLarge = errors.New("document exceeds maximum size")
)

// Input types (auto-generate JSON schemas via struct tags).

// ConvertInput is the input schema for the pyconv_convert tool.
type ConvertInput struct {
	Document        string `json:"document"                    jsonschema:"legacy syntax tree as JSON or YAML"`
	Format          string `json:"format,omitempty"            jsonschema:"output format: json, json-compact or yaml (default json)"`
	MergeNestedWith bool   `json:"merge_nested_with,omitempty" jsonschema:"fold directly nested with-statements into one"`
	Validate        bool   `json:"validate,omitempty"          jsonschema:"check the document against the legacy tree schema first"`
}

// DumpInput is the input schema for the pyconv_dump tool.
type DumpInput struct {
	Document  string `json:"document"            jsonschema:"legacy syntax tree as JSON or YAML"`
	Converted bool   `json:"converted,omitempty" jsonschema:"dump the converted Python 3.5 tree instead of the input"`
	Positions bool   `json:"positions,omitempty" jsonschema:"append line:column positions to each node"`
}

// DiffInput is the input schema for the pyconv_diff tool.
type DiffInput struct {
	Document  string `json:"document"            jsonschema:"legacy syntax tree as JSON or YAML"`
	Positions bool   `json:"positions,omitempty" jsonschema:"include positions in the compared outlines"`
}

// ToolOutput is a generic wrapper for tool results.
type ToolOutput struct {
	Data any `json:"data"`
}

// ConvertOutput is the structured result of pyconv_convert.
type ConvertOutput struct {
	Document         string         `json:"document"`
	Nodes            int            `json:"nodes"`
	RuleApplications int            `json:"rule_applications"`
	Rules            map[string]int `json:"rules,omitempty"`
	Cached           bool           `json:"cached"`
}

// DiffOutput is the structured result of pyconv_diff.
type DiffOutput struct {
	Diff    string `json:"diff"`
	Added   int    `json:"added"`
	Removed int    `json:"removed"`
}

// toolSet holds what the tool handlers share.
type toolSet struct {
	deps  ServerDeps
	limit int64
}

func newToolSet(deps ServerDeps) *toolSet {
	limit := deps.Defaults.MaxFileSize
	if limit <= 0 {
		limit = MaxDocumentBytes
	}

	return &toolSet{deps: deps, limit: limit}
}

// runner builds a batch runner for one call from the server defaults.
func (ts *toolSet) runner(opts batch.Options) *batch.Runner {
	return batch.NewRunner(opts, batch.Deps{
		Logger:  ts.deps.Logger,
		Tracer:  ts.deps.Tracer,
		Metrics: ts.deps.Conversion,
		Cache:   ts.deps.Cache,
	})
}

// validateDocument checks common document input constraints.
func (ts *toolSet) validateDocument(doc string) error {
	if doc == "" {
		return ErrEmptyDocument
	}

	if int64(len(doc)) > ts.limit {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrDocumentTooLarge, len(doc), ts.limit)
	}

	return nil
}

// decode validates and decodes an inline legacy document.
func (ts *toolSet) decode(doc string) (ast27.Mod, error) {
	err := ts.validateDocument(doc)
	if err != nil {
		return nil, err
	}

	data, err := treecodec.ReadDocument(strings.NewReader(doc), ts.limit)
	if err != nil {
		return nil, err
	}

	return treecodec.DecodeLegacy(data)
}

// conversionError prefixes conversion failures with their class so agents
// can tell bad input from unsupported constructs.
func conversionError(err error) error {
	if convert.IsMalformed(err) || convert.IsUnsupported(err) {
		return fmt.Errorf("%s: %w", convert.Class(err), err)
	}

	return err
}

// Result helpers.

// errorResult builds a CallToolResult with isError set.
func errorResult(err error) (*mcpsdk.CallToolResult, ToolOutput, error) {
	return &mcpsdk.CallToolResult{
		Content: []mcpsdk.Content{
			&mcpsdk.TextContent{Text: err.Error()},
		},
		IsError: true,
	}, ToolOutput{}, nil
}

// jsonResult builds a CallToolResult with JSON-encoded content.
func jsonResult(value any) (*mcpsdk.CallToolResult, ToolOutput, error) {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return errorResult(fmt.Errorf("encode result: %w", err))
	}

	return &mcpsdk.CallToolResult{
		Content: []mcpsdk.Content{
			&mcpsdk.TextContent{Text: string(data)},
		},
	}, ToolOutput{Data: value}, nil
}

// textResult builds a CallToolResult with plain text content.
func textResult(text string, value any) (*mcpsdk.CallToolResult, ToolOutput, error) {
	return &mcpsdk.CallToolResult{
		Content: []mcpsdk.Content{
			&mcpsdk.TextContent{Text: text},
		},
	}, ToolOutput{Data: value}, nil
}

// handleConvert processes pyconv_convert tool calls.
func (ts *toolSet) handleConvert(
	ctx context.Context,
	_ *mcpsdk.CallToolRequest,
	input ConvertInput,
) (*mcpsdk.CallToolResult, ToolOutput, error) {
	err := ts.validateDocument(input.Document)
	if err != nil {
		return errorResult(err)
	}

	format, err := treecodec.ParseFormat(input.Format)
	if err != nil {
		return errorResult(err)
	}

	opts := ts.deps.Defaults
	opts.MaxFileSize = ts.limit
	opts.OutputDir = ""
	opts.ValidateSchema = opts.ValidateSchema || input.Validate
	opts.Convert.MergeNestedWith = opts.Convert.MergeNestedWith || input.MergeNestedWith
	opts.Encode = treecodec.EncodeOptions{Format: format, Indent: opts.Encode.Indent}

	res := ts.runner(opts).ConvertBytes(ctx, "mcp", []byte(input.Document))
	if res.Err != nil {
		return errorResult(conversionError(res.Err))
	}

	return textResult(string(res.Output), ConvertOutput{
		Document:         string(res.Output),
		Nodes:            res.Nodes,
		RuleApplications: res.Stats.RuleApplications(),
		Rules:            res.Stats.Rules,
		Cached:           res.Cached,
	})
}
