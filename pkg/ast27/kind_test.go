package ast27_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/pyconv/pkg/ast27"
)

func TestKinds_NewRoundTrip(t *testing.T) {
	t.Parallel()

	kinds := ast27.Kinds()
	require.NotEmpty(t, kinds)

	for _, kind := range kinds {
		node := ast27.New(kind)
		require.NotNil(t, node, kind.String())
		assert.Equal(t, kind, node.Kind())

		parsed, ok := ast27.ParseKind(kind.String())
		require.True(t, ok, kind.String())
		assert.Equal(t, kind, parsed)
	}
}

func TestKind_Invalid(t *testing.T) {
	t.Parallel()

	assert.False(t, ast27.KindInvalid.Valid())
	assert.False(t, ast27.Kind(250).Valid())
	assert.Nil(t, ast27.New(ast27.KindInvalid))
	assert.Equal(t, "Kind(invalid)", ast27.Kind(250).String())

	_, ok := ast27.ParseKind("Try")
	assert.False(t, ok, "Try is a modern-only kind")
}

func TestKind_AuxiliaryNamesAreLowerCase(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "arguments", ast27.KindArguments.String())
	assert.Equal(t, "keyword", ast27.KindKeyword.String())
	assert.Equal(t, "Expr", ast27.KindExpr.String())
	assert.Equal(t, ast27.KindExpr, (&ast27.ExprStmt{}).Kind())
}

func TestPositioned(t *testing.T) {
	t.Parallel()

	var node ast27.Node = &ast27.Name{Position: ast27.At(3, 4), ID: "x", Ctx: ast27.CtxLoad}

	positioned, ok := node.(ast27.Positioned)
	require.True(t, ok)
	assert.Equal(t, 3, positioned.Pos().Lineno)
	assert.Equal(t, 4, positioned.Pos().ColOffset)

	_, ok = ast27.Node(&ast27.Keyword{}).(ast27.Positioned)
	assert.False(t, ok)
}

func TestEnums_Text(t *testing.T) {
	t.Parallel()

	text, err := ast27.OpFloorDiv.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "FloorDiv", string(text))

	var ctx ast27.ExprContext
	require.NoError(t, ctx.UnmarshalText([]byte("Param")))
	assert.Equal(t, ast27.CtxParam, ctx)

	var op ast27.CmpOperator
	require.Error(t, op.UnmarshalText([]byte("MatMult")))

	_, err = ast27.ExprContext(0).MarshalText()
	require.Error(t, err)
	assert.False(t, ast27.ExprContext(0).Valid())
}

func TestNumber_JSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want ast27.Number
		out  string
	}{
		{"integer", `42`, "42", `42`},
		{"float", `1.5e3`, "1.5e3", `1.5e3`},
		{"long", `"10L"`, "10L", `"10L"`},
		{"hex", `"0x1f"`, "0x1f", `"0x1f"`},
		{"complex", `"2j"`, "2j", `"2j"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var n ast27.Number
			require.NoError(t, json.Unmarshal([]byte(tt.in), &n))
			assert.Equal(t, tt.want, n)

			out, err := json.Marshal(n)
			require.NoError(t, err)
			assert.Equal(t, tt.out, string(out))
		})
	}
}

func TestNumber_RejectsOtherJSON(t *testing.T) {
	t.Parallel()

	var n ast27.Number
	require.Error(t, json.Unmarshal([]byte(`{"n": 1}`), &n))
	require.Error(t, json.Unmarshal([]byte(`true`), &n))
}
