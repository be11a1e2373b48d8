package treecodec

import (
	"embed"
	"fmt"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

//go:generate go run ../../tools/schemagen -o schema

// LegacySchemaFile is the name of the embedded legacy document schema.
const LegacySchemaFile = "schema/legacy-tree.schema.json"

// SchemaFS holds the JSON schemas of tree documents.
//
//go:embed schema/legacy-tree.schema.json
var SchemaFS embed.FS

//nolint:gochecknoglobals // Compiled once on first use.
var legacySchema = sync.OnceValues(func() (*gojsonschema.Schema, error) {
	data, err := SchemaFS.ReadFile(LegacySchemaFile)
	if err != nil {
		return nil, fmt.Errorf("read embedded schema: %w", err)
	}

	schema, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return nil, fmt.Errorf("compile embedded schema: %w", err)
	}

	return schema, nil
})

// Violation is one schema violation.
type Violation struct {
	Field       string
	Description string
}

// String renders "field: description".
func (v Violation) String() string {
	return v.Field + ": " + v.Description
}

// ValidateLegacy checks a legacy document (JSON or YAML, optionally
// LZ4-framed) against the embedded schema. An error is returned only when the
// document cannot be parsed at all; schema violations are listed instead.
func ValidateLegacy(data []byte) ([]Violation, error) {
	doc, err := parseDocument(data)
	if err != nil {
		return nil, err
	}

	schema, err := legacySchema()
	if err != nil {
		return nil, err
	}

	result, err := schema.Validate(gojsonschema.NewGoLoader(doc))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}

	if result.Valid() {
		return nil, nil
	}

	violations := make([]Violation, 0, len(result.Errors()))
	for _, re := range result.Errors() {
		violations = append(violations, Violation{Field: re.Field(), Description: re.Description()})
	}

	return violations, nil
}
