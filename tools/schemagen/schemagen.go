// Package main generates the JSON schema of legacy tree documents from the
// ast27 kind table.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Sumatoshi-tech/pyconv/pkg/ast27"
)

// schemaFile is the file written into the output directory.
const schemaFile = "legacy-tree.schema.json"

// Schema represents a JSON Schema.
type Schema struct {
	Schema               string             `json:"$schema,omitempty"`
	ID                   string             `json:"$id,omitempty"`
	Title                string             `json:"title,omitempty"`
	Description          string             `json:"description,omitempty"`
	Type                 any                `json:"type,omitempty"`
	Ref                  string             `json:"$ref,omitempty"`
	Required             []string           `json:"required,omitempty"`
	Enum                 []string           `json:"enum,omitempty"`
	Properties           map[string]*Schema `json:"properties,omitempty"`
	Items                *Schema            `json:"items,omitempty"`
	AllOf                []*Schema          `json:"allOf,omitempty"`
	AnyOf                []*Schema          `json:"anyOf,omitempty"`
	OneOf                []*Schema          `json:"oneOf,omitempty"`
	AdditionalProperties any                `json:"additionalProperties,omitempty"`
	Definitions          map[string]*Schema `json:"definitions,omitempty"`
}

func main() {
	outputDir := flag.String("o", "pkg/treecodec/schema", "Output directory for the schema")
	flag.Parse()

	if err := os.MkdirAll(*outputDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output directory: %v\n", err)
		os.Exit(1)
	}

	path := filepath.Join(*outputDir, schemaFile)

	if err := writeSchema(path, generateLegacySchema()); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing schema: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Generated %s\n", path)
}

func ref(name string) *Schema {
	return &Schema{Ref: "#/definitions/" + name}
}

// kindNames splits the legacy kinds into every kind and the root kinds.
func kindNames() (all, roots []string) {
	for _, k := range ast27.Kinds() {
		all = append(all, k.String())

		if _, ok := ast27.New(k).(ast27.Mod); ok {
			roots = append(roots, k.String())
		}
	}

	return all, roots
}

func generateLegacySchema() *Schema {
	all, roots := kindNames()

	ctx := make([]string, 0, len(ast27.ExprContexts()))
	for _, c := range ast27.ExprContexts() {
		ctx = append(ctx, c.String())
	}

	node := &Schema{
		Type:     "object",
		Required: []string{"_type"},
		Properties: map[string]*Schema{
			"_type":      {Enum: all},
			"lineno":     {Type: "integer"},
			"col_offset": {Type: "integer"},
			"ctx":        {Enum: ctx},
			"nl":         {Type: "boolean"},
			"n":          {Type: []string{"number", "string"}},
			"s":          {OneOf: []*Schema{{Type: "string"}, ref("bytes")}},
		},
		AdditionalProperties: ref("value"),
	}

	bytesDef := &Schema{
		Type:                 "object",
		Required:             []string{"bytes"},
		Properties:           map[string]*Schema{"bytes": {Type: "string"}},
		AdditionalProperties: false,
	}

	value := &Schema{
		AnyOf: []*Schema{
			{Type: "null"},
			{Type: "string"},
			{Type: "number"},
			{Type: "boolean"},
			ref("node"),
			{Type: "array", Items: ref("value")},
		},
	}

	return &Schema{
		Schema:      "http://json-schema.org/draft-07/schema#",
		ID:          "https://github.com/Sumatoshi-tech/pyconv/schema/" + schemaFile,
		Title:       "Legacy syntax tree document",
		Description: "A Python 2.7 syntax tree serialized by node kind, as consumed by pyconv.",
		AllOf: []*Schema{
			ref("node"),
			{Properties: map[string]*Schema{"_type": {Enum: roots}}},
		},
		Definitions: map[string]*Schema{
			"node":  node,
			"bytes": bytesDef,
			"value": value,
		},
	}
}

func writeSchema(path string, schema *Schema) error {
	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}

	return os.WriteFile(path, append(data, '\n'), 0o644)
}
