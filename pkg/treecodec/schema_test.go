package treecodec_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/pyconv/pkg/ast27"
	"github.com/Sumatoshi-tech/pyconv/pkg/treecodec"
)

func TestValidateLegacy(t *testing.T) {
	t.Parallel()

	violations, err := treecodec.ValidateLegacy([]byte(sampleLegacy))
	require.NoError(t, err)
	assert.Empty(t, violations)

	violations, err = treecodec.ValidateLegacy([]byte(`{"_type": "Module", "body": [{"_type": "Nonlocal"}]}`))
	require.NoError(t, err)
	assert.NotEmpty(t, violations)

	violations, err = treecodec.ValidateLegacy([]byte(`{"_type": "Pass", "lineno": 1, "col_offset": 0}`))
	require.NoError(t, err)
	assert.NotEmpty(t, violations)

	violations, err = treecodec.ValidateLegacy([]byte("_type: Module\nbody: []\ntype_ignores: []\n"))
	require.NoError(t, err)
	assert.Empty(t, violations)

	_, err = treecodec.ValidateLegacy([]byte("{"))
	require.ErrorIs(t, err, treecodec.ErrInvalidDocument)
}

func TestSchemaListsEveryLegacyKind(t *testing.T) {
	t.Parallel()

	data, err := treecodec.SchemaFS.ReadFile(treecodec.LegacySchemaFile)
	require.NoError(t, err)

	var schema struct {
		Definitions struct {
			Node struct {
				Properties struct {
					Type struct {
						Enum []string `json:"enum"`
					} `json:"_type"`
				} `json:"properties"`
			} `json:"node"`
		} `json:"definitions"`
	}

	require.NoError(t, json.Unmarshal(data, &schema))

	names := make([]string, 0, len(ast27.Kinds()))
	for _, k := range ast27.Kinds() {
		names = append(names, k.String())
	}

	assert.ElementsMatch(t, names, schema.Definitions.Node.Properties.Type.Enum)
}
