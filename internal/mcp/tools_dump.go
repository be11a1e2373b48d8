package mcp

import (
	"context"
	"fmt"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/Sumatoshi-tech/pyconv/pkg/convert"
	"github.com/Sumatoshi-tech/pyconv/pkg/treedump"
)

// handleDump processes pyconv_dump tool calls.
func (ts *toolSet) handleDump(
	_ context.Context,
	_ *mcpsdk.CallToolRequest,
	input DumpInput,
) (*mcpsdk.CallToolResult, ToolOutput, error) {
	mod, err := ts.decode(input.Document)
	if err != nil {
		return errorResult(err)
	}

	var tree any = mod

	if input.Converted {
		tree, err = convert.NewConverter(ts.deps.Defaults.Convert).Convert(mod)
		if err != nil {
			return errorResult(conversionError(err))
		}
	}

	text, err := treedump.Dump(tree, treedump.Options{Positions: input.Positions})
	if err != nil {
		return errorResult(fmt.Errorf("dump tree: %w", err))
	}

	return textResult(text, text)
}

// handleDiff processes pyconv_diff tool calls.
func (ts *toolSet) handleDiff(
	_ context.Context,
	_ *mcpsdk.CallToolRequest,
	input DiffInput,
) (*mcpsdk.CallToolResult, ToolOutput, error) {
	mod, err := ts.decode(input.Document)
	if err != nil {
		return errorResult(err)
	}

	out, err := convert.NewConverter(ts.deps.Defaults.Convert).Convert(mod)
	if err != nil {
		return errorResult(conversionError(err))
	}

	delta, err := treedump.Diff(mod, out, treedump.Options{Positions: input.Positions})
	if err != nil {
		return errorResult(fmt.Errorf("diff trees: %w", err))
	}

	return jsonResult(DiffOutput{Diff: delta.String(), Added: delta.Added, Removed: delta.Removed})
}
