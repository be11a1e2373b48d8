// Package treecodec reads and writes syntax trees of both families as JSON or
// YAML documents.
//
// A node is an object whose "_type" member names its kind, followed by its
// fields under their grammar names and, for positioned nodes, "lineno" and
// "col_offset". Enum scalars are written by name, numbers as JSON numbers
// when they are plain numeric literals and as strings otherwise, and byte
// strings as {"bytes": "<base64>"}. Documents may be LZ4-framed.
package treecodec

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Sumatoshi-tech/pyconv/internal/suggest"
)

// Format is a document encoding.
type Format string

// Supported formats.
const (
	FormatJSON        Format = "json"
	FormatJSONCompact Format = "json-compact"
	FormatYAML        Format = "yaml"
)

// DefaultIndent is the JSON indent width used when none is configured.
const DefaultIndent = 2

// Sentinel errors.
var (
	ErrUnknownFormat   = errors.New("unknown document format")
	ErrInvalidDocument = errors.New("invalid tree document")
	ErrUnknownKind     = errors.New("unknown node kind")
	ErrWrongCategory   = errors.New("node kind not allowed here")
	ErrNotANode        = errors.New("value is not a syntax tree node")
	ErrTooLarge        = errors.New("document exceeds size limit")
	ErrMissingField    = errors.New("missing required field")
	ErrNestedFrame     = errors.New("lz4 frame nested inside lz4 frame")
)

// Formats lists the supported format names.
func Formats() []Format {
	return []Format{FormatJSON, FormatJSONCompact, FormatYAML}
}

func formatNames() []string {
	names := make([]string, 0, len(Formats()))
	for _, f := range Formats() {
		names = append(names, string(f))
	}

	return names
}

// ParseFormat resolves a format name. "yml" is accepted for YAML.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", string(FormatJSON):
		return FormatJSON, nil
	case string(FormatJSONCompact):
		return FormatJSONCompact, nil
	case string(FormatYAML), "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q%s", ErrUnknownFormat, name, suggest.Hint(name, formatNames()))
	}
}

// EncodeOptions control how a tree is written.
type EncodeOptions struct {
	Format Format
	// Indent is the JSON indent width; zero means DefaultIndent.
	Indent int
	// Compress wraps the document in an LZ4 frame.
	Compress bool
}
