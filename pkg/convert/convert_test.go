package convert_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/pyconv/pkg/ast27"
	"github.com/Sumatoshi-tech/pyconv/pkg/ast35"
	"github.com/Sumatoshi-tech/pyconv/pkg/convert"
)

func name27(id string, line, col int) *ast27.Name {
	return &ast27.Name{Position: ast27.At(line, col), ID: id, Ctx: ast27.CtxLoad}
}

func name35(id string, line, col int) *ast35.Name {
	return &ast35.Name{Position: ast35.At(line, col), ID: id, Ctx: ast35.CtxLoad}
}

func strPtr(s string) *string { return &s }

func TestConvert_GenericIsomorphism(t *testing.T) {
	t.Parallel()

	in := &ast27.Module{Body: []ast27.Stmt{
		&ast27.Assign{
			Position: ast27.At(1, 0),
			Targets:  []ast27.Expr{&ast27.Name{Position: ast27.At(1, 0), ID: "x", Ctx: ast27.CtxStore}},
			Value: &ast27.BinOp{
				Position: ast27.At(1, 4),
				Left:     &ast27.Num{Position: ast27.At(1, 4), N: "1"},
				Op:       ast27.OpAdd,
				Right:    name27("y", 1, 8),
			},
			TypeComment: strPtr("int"),
		},
		&ast27.If{
			Position: ast27.At(2, 0),
			Test: &ast27.Compare{
				Position:    ast27.At(2, 3),
				Left:        name27("x", 2, 3),
				Ops:         []ast27.CmpOperator{ast27.CmpLt, ast27.CmpNotIn},
				Comparators: []ast27.Expr{name27("y", 2, 7), name27("z", 2, 16)},
			},
			Body: []ast27.Stmt{&ast27.Pass{Position: ast27.At(3, 4)}},
		},
		&ast27.Global{Position: ast27.At(4, 0), Names: []string{"a", "b"}},
	}}

	want := &ast35.Module{
		Body: []ast35.Stmt{
			&ast35.Assign{
				Position: ast35.At(1, 0),
				Targets:  []ast35.Expr{&ast35.Name{Position: ast35.At(1, 0), ID: "x", Ctx: ast35.CtxStore}},
				Value: &ast35.BinOp{
					Position: ast35.At(1, 4),
					Left:     &ast35.Num{Position: ast35.At(1, 4), N: "1"},
					Op:       ast35.OpAdd,
					Right:    name35("y", 1, 8),
				},
				TypeComment: strPtr("int"),
			},
			&ast35.If{
				Position: ast35.At(2, 0),
				Test: &ast35.Compare{
					Position:    ast35.At(2, 3),
					Left:        name35("x", 2, 3),
					Ops:         []ast35.CmpOperator{ast35.CmpLt, ast35.CmpNotIn},
					Comparators: []ast35.Expr{name35("y", 2, 7), name35("z", 2, 16)},
				},
				Body:   []ast35.Stmt{&ast35.Pass{Position: ast35.At(3, 4)}},
				Orelse: []ast35.Stmt{},
			},
			&ast35.Global{Position: ast35.At(4, 0), Names: []string{"a", "b"}},
		},
		TypeIgnores: []*ast35.TypeIgnore{},
	}

	out, err := convert.Convert(in)
	require.NoError(t, err)
	assert.Equal(t, want, out)
}

func TestConvert_OperatorsMapByName(t *testing.T) {
	t.Parallel()

	// MatMult exists only in the modern enum, so the numeric values diverge
	// after Mult.
	tests := []struct {
		in   ast27.Operator
		want ast35.Operator
	}{
		{ast27.OpMult, ast35.OpMult},
		{ast27.OpDiv, ast35.OpDiv},
		{ast27.OpFloorDiv, ast35.OpFloorDiv},
	}

	for _, tt := range tests {
		t.Run(tt.in.String(), func(t *testing.T) {
			t.Parallel()

			out, err := convert.ConvertNode(&ast27.AugAssign{
				Position: ast27.At(1, 0),
				Target:   &ast27.Name{Position: ast27.At(1, 0), ID: "x", Ctx: ast27.CtxStore},
				Op:       tt.in,
				Value:    &ast27.Num{Position: ast27.At(1, 5), N: "2"},
			})
			require.NoError(t, err)

			aug, ok := out.(*ast35.AugAssign)
			require.True(t, ok)
			assert.Equal(t, tt.want, aug.Op)
		})
	}
}

func TestConvert_NoneStaysName(t *testing.T) {
	t.Parallel()

	out, err := convert.ConvertNode(&ast27.UnaryOp{
		Position: ast27.At(1, 0),
		Op:       ast27.UnaryUSub,
		Operand:  &ast27.Num{Position: ast27.At(1, 1), N: "1"},
	})
	require.NoError(t, err)
	assert.IsType(t, &ast35.UnaryOp{}, out)

	out, err = convert.ConvertNode(name27("None", 1, 0))
	require.NoError(t, err)
	assert.Equal(t, name35("None", 1, 0), out)
}

func TestConvert_NilRoot(t *testing.T) {
	t.Parallel()

	out, err := convert.Convert(nil)
	require.ErrorIs(t, err, convert.ErrMalformedTree)
	assert.Nil(t, out)

	var mod *ast27.Module

	out, err = convert.Convert(mod)
	require.ErrorIs(t, err, convert.ErrMalformedTree)
	assert.Nil(t, out)
}

type foreignNode struct {
	kind ast27.Kind
}

func (f foreignNode) Kind() ast27.Kind { return f.kind }

func TestConvert_ForeignKinds(t *testing.T) {
	t.Parallel()

	_, err := convert.ConvertNode(foreignNode{kind: ast27.Kind(250)})
	require.ErrorIs(t, err, convert.ErrMalformedTree)

	// A valid kind tag on the wrong Go type is rejected by the rule as well.
	_, err = convert.ConvertNode(foreignNode{kind: ast27.KindName})
	require.ErrorIs(t, err, convert.ErrMalformedTree)

	_, err = convert.ConvertNode(foreignNode{kind: ast27.KindPrint})
	require.ErrorIs(t, err, convert.ErrMalformedTree)
}

func TestConvert_MissingRequiredChild(t *testing.T) {
	t.Parallel()

	in := &ast27.Module{Body: []ast27.Stmt{
		&ast27.Assign{
			Position: ast27.At(7, 2),
			Targets:  []ast27.Expr{name27("x", 7, 2)},
		},
	}}

	out, err := convert.Convert(in)
	require.ErrorIs(t, err, convert.ErrMalformedTree)
	assert.Nil(t, out)

	var ce *convert.ConversionError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, ast27.KindAssign, ce.Kind)
	assert.Equal(t, "value", ce.Field)
	require.NotNil(t, ce.Position)
	assert.Equal(t, 7, ce.Position.Lineno)
	assert.Contains(t, err.Error(), "Assign.value at 7:2")
}

func TestConvert_InvalidEnum(t *testing.T) {
	t.Parallel()

	_, err := convert.ConvertNode(&ast27.Name{Position: ast27.At(1, 0), ID: "x"})
	require.ErrorIs(t, err, convert.ErrMalformedTree)

	var ce *convert.ConversionError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "ctx", ce.Field)
}

func TestConvert_ArityMismatch(t *testing.T) {
	t.Parallel()

	_, err := convert.ConvertNode(&ast27.Dict{
		Position: ast27.At(1, 0),
		Keys:     []ast27.Expr{name27("k", 1, 1)},
	})
	require.ErrorIs(t, err, convert.ErrMalformedTree)

	_, err = convert.ConvertNode(&ast27.Compare{
		Position: ast27.At(1, 0),
		Left:     name27("a", 1, 0),
		Ops:      []ast27.CmpOperator{ast27.CmpEq},
	})
	require.ErrorIs(t, err, convert.ErrMalformedTree)
}

func TestConvertWithStats(t *testing.T) {
	t.Parallel()

	in := &ast27.Module{Body: []ast27.Stmt{
		&ast27.Print{Position: ast27.At(1, 0), Values: []ast27.Expr{name27("a", 1, 6)}, Nl: true},
		&ast27.ExprStmt{Position: ast27.At(2, 0), Value: &ast27.Repr{Position: ast27.At(2, 0), Value: name27("b", 2, 1)}},
	}}

	out, stats, err := convert.NewConverter(convert.Options{}).ConvertWithStats(in)
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.Equal(t, 1, stats.Rules["Print"])
	assert.Equal(t, 1, stats.Rules["Repr"])
	assert.Equal(t, 2, stats.RuleApplications())
	assert.Equal(t, 1, stats.Generic["Module"])
	assert.Equal(t, 2, stats.Generic["Name"])
	assert.Equal(t, 1, stats.Generic["Expr"])
	assert.Equal(t, 6, stats.Nodes)

	var total convert.Stats
	total.Merge(stats)
	total.Merge(stats)
	assert.Equal(t, 12, total.Nodes)
	assert.Equal(t, 4, total.Generic["Name"])
}

func TestConvertWithStats_RaiseTupleInstance(t *testing.T) {
	t.Parallel()

	in := &ast27.Module{Body: []ast27.Stmt{
		&ast27.Raise{
			Position: ast27.At(1, 0),
			Type:     name27("T", 1, 6),
			Inst: &ast27.Tuple{
				Position: ast27.At(1, 9),
				Elts:     []ast27.Expr{name27("a", 1, 10), name27("b", 1, 12)},
				Ctx:      ast27.CtxLoad,
			},
		},
	}}

	out, stats, err := convert.NewConverter(convert.Options{}).ConvertWithStats(in)
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.Equal(t, 1, stats.Rules["Raise"])
	assert.NotContains(t, stats.Generic, "Tuple")
	assert.Equal(t, 3, stats.Generic["Name"])
	assert.Equal(t, 5, stats.Nodes)
}

func TestConverter_RuleKinds(t *testing.T) {
	t.Parallel()

	kinds := convert.NewConverter(convert.Options{}).RuleKinds()

	names := make([]string, 0, len(kinds))
	for _, k := range kinds {
		names = append(names, k.String())
	}

	assert.ElementsMatch(t, []string{
		"Suite", "FunctionDef", "ClassDef", "TryExcept", "TryFinally", "ExceptHandler", "Print",
		"Raise", "Exec", "Repr", "With", "Call", "Ellipsis", "arguments", "Str",
	}, names)
}

func TestConvert_ConcurrentUse(t *testing.T) {
	t.Parallel()

	c := convert.NewConverter(convert.Options{MergeNestedWith: true})

	var wg sync.WaitGroup

	errs := make([]error, 16)

	for i := range errs {
		wg.Add(1)

		go func() {
			defer wg.Done()

			_, errs[i] = c.Convert(&ast27.Module{Body: []ast27.Stmt{
				&ast27.Print{Position: ast27.At(1, 0), Values: []ast27.Expr{name27("a", 1, 6)}},
			}})
		}()
	}

	wg.Wait()

	require.NoError(t, errors.Join(errs...))
}

func TestClass(t *testing.T) {
	t.Parallel()

	_, err := convert.ConvertNode(&ast27.Suite{})
	assert.Equal(t, "unsupported", convert.Class(err))
	assert.True(t, convert.IsUnsupported(err))

	_, err = convert.Convert(nil)
	assert.Equal(t, "malformed", convert.Class(err))
	assert.True(t, convert.IsMalformed(err))

	assert.Equal(t, "other", convert.Class(errors.New("boom")))
}
