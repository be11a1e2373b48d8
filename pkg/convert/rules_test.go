package convert_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/pyconv/pkg/ast27"
	"github.com/Sumatoshi-tech/pyconv/pkg/ast35"
	"github.com/Sumatoshi-tech/pyconv/pkg/convert"
)

func synthName35(id string) *ast35.Name {
	return &ast35.Name{Position: ast35.UnknownPosition, ID: id, Ctx: ast35.CtxLoad}
}

func passAt(line int) *ast27.Pass { return &ast27.Pass{Position: ast27.At(line, 4)} }

func pass35At(line int) *ast35.Pass { return &ast35.Pass{Position: ast35.At(line, 4)} }

func TestRule_FunctionDef(t *testing.T) {
	t.Parallel()

	in := &ast27.FunctionDef{
		Position: ast27.At(1, 0),
		Name:     "f",
		Args: &ast27.Arguments{
			Args:     []ast27.Expr{&ast27.Name{Position: ast27.At(1, 6), ID: "a", Ctx: ast27.CtxParam}},
			Defaults: []ast27.Expr{},
		},
		Body:          []ast27.Stmt{passAt(2)},
		DecoratorList: []ast27.Expr{name27("deco", 0, 1)},
		TypeComment:   strPtr("(int) -> None"),
	}

	out, err := convert.ConvertNode(in)
	require.NoError(t, err)

	want := &ast35.FunctionDef{
		Position: ast35.At(1, 0),
		Name:     "f",
		Args: &ast35.Arguments{
			Args:       []*ast35.Arg{{Position: ast35.At(1, 6), Arg: "a"}},
			Kwonlyargs: []*ast35.Arg{},
			KwDefaults: []ast35.Expr{},
			Defaults:   []ast35.Expr{},
		},
		Body:          []ast35.Stmt{pass35At(2)},
		DecoratorList: []ast35.Expr{name35("deco", 0, 1)},
		TypeComment:   strPtr("(int) -> None"),
	}
	assert.Equal(t, want, out)
	assert.Nil(t, out.(*ast35.FunctionDef).Returns)
}

func TestRule_ClassDef(t *testing.T) {
	t.Parallel()

	out, err := convert.ConvertNode(&ast27.ClassDef{
		Position: ast27.At(1, 0),
		Name:     "C",
		Bases:    []ast27.Expr{name27("object", 1, 8)},
		Body:     []ast27.Stmt{passAt(2)},
	})
	require.NoError(t, err)

	cls, ok := out.(*ast35.ClassDef)
	require.True(t, ok)
	assert.NotNil(t, cls.Keywords)
	assert.Empty(t, cls.Keywords)
	assert.Equal(t, []ast35.Expr{name35("object", 1, 8)}, cls.Bases)
	assert.Equal(t, ast35.At(1, 0), cls.Position)
}

func tryExcept27(line int) *ast27.TryExcept {
	return &ast27.TryExcept{
		Position: ast27.At(line, 0),
		Body:     []ast27.Stmt{passAt(line + 1)},
		Handlers: []*ast27.ExceptHandler{{
			Position: ast27.At(line+2, 0),
			Type:     name27("ValueError", line+2, 7),
			Name:     &ast27.Name{Position: ast27.At(line+2, 19), ID: "e", Ctx: ast27.CtxStore},
			Body:     []ast27.Stmt{passAt(line + 3)},
		}},
		Orelse: []ast27.Stmt{passAt(line + 5)},
	}
}

func handler35(line int) *ast35.ExceptHandler {
	return &ast35.ExceptHandler{
		Position: ast35.At(line+2, 0),
		Type:     name35("ValueError", line+2, 7),
		Name:     strPtr("e"),
		Body:     []ast35.Stmt{pass35At(line + 3)},
	}
}

func TestRule_TryExcept(t *testing.T) {
	t.Parallel()

	out, err := convert.ConvertNode(tryExcept27(1))
	require.NoError(t, err)

	want := &ast35.Try{
		Position:  ast35.At(1, 0),
		Body:      []ast35.Stmt{pass35At(2)},
		Handlers:  []*ast35.ExceptHandler{handler35(1)},
		Orelse:    []ast35.Stmt{pass35At(6)},
		Finalbody: []ast35.Stmt{},
	}
	assert.Equal(t, want, out)
}

func TestRule_TryFinallyCollapses(t *testing.T) {
	t.Parallel()

	in := &ast27.TryFinally{
		Position:  ast27.At(1, 0),
		Body:      []ast27.Stmt{tryExcept27(1)},
		Finalbody: []ast27.Stmt{passAt(8)},
	}

	out, err := convert.ConvertNode(in)
	require.NoError(t, err)

	want := &ast35.Try{
		Position:  ast35.At(1, 0),
		Body:      []ast35.Stmt{pass35At(2)},
		Handlers:  []*ast35.ExceptHandler{handler35(1)},
		Orelse:    []ast35.Stmt{pass35At(6)},
		Finalbody: []ast35.Stmt{pass35At(8)},
	}
	assert.Equal(t, want, out)
}

func TestRule_TryFinallyPlain(t *testing.T) {
	t.Parallel()

	in := &ast27.TryFinally{
		Position:  ast27.At(1, 0),
		Body:      []ast27.Stmt{passAt(2), tryExcept27(3)},
		Finalbody: []ast27.Stmt{passAt(10)},
	}

	out, err := convert.ConvertNode(in)
	require.NoError(t, err)

	try, ok := out.(*ast35.Try)
	require.True(t, ok)
	assert.Empty(t, try.Handlers)
	assert.NotNil(t, try.Handlers)
	assert.Empty(t, try.Orelse)
	assert.Equal(t, []ast35.Stmt{pass35At(10)}, try.Finalbody)
	require.Len(t, try.Body, 2)
	assert.IsType(t, &ast35.Try{}, try.Body[1])
}

func TestRule_TryFinallyNeverStacks(t *testing.T) {
	t.Parallel()

	for _, body := range [][]ast27.Stmt{
		{tryExcept27(2)},
		{passAt(2)},
	} {
		out, err := convert.ConvertNode(&ast27.TryFinally{
			Position:  ast27.At(1, 0),
			Body:      body,
			Finalbody: []ast27.Stmt{passAt(9)},
		})
		require.NoError(t, err)

		try, ok := out.(*ast35.Try)
		require.True(t, ok)
		require.Len(t, try.Body, 1)
		assert.IsType(t, &ast35.Pass{}, try.Body[0])
	}
}

func TestRule_ExceptHandler(t *testing.T) {
	t.Parallel()

	out, err := convert.ConvertNode(&ast27.ExceptHandler{
		Position: ast27.At(3, 0),
		Body:     []ast27.Stmt{passAt(4)},
	})
	require.NoError(t, err)
	assert.Equal(t, &ast35.ExceptHandler{Position: ast35.At(3, 0), Body: []ast35.Stmt{pass35At(4)}}, out)

	tests := []struct {
		name   string
		target ast27.Expr
	}{
		{"tuple", &ast27.Tuple{
			Position: ast27.At(3, 17),
			Elts:     []ast27.Expr{name27("a", 3, 17), name27("b", 3, 20)},
			Ctx:      ast27.CtxStore,
		}},
		{"attribute", &ast27.Attribute{Position: ast27.At(3, 17), Value: name27("self", 3, 17), Attr: "err", Ctx: ast27.CtxStore}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mod := &ast27.Module{Body: []ast27.Stmt{&ast27.TryExcept{
				Position: ast27.At(1, 0),
				Body:     []ast27.Stmt{passAt(2)},
				Handlers: []*ast27.ExceptHandler{{
					Position: ast27.At(3, 0),
					Type:     name27("E", 3, 7),
					Name:     tt.target,
					Body:     []ast27.Stmt{passAt(4)},
				}},
			}}}

			out, err := convert.Convert(mod)
			require.ErrorIs(t, err, convert.ErrUnsupportedConstruct)
			assert.Nil(t, out)

			var ce *convert.ConversionError
			require.ErrorAs(t, err, &ce)
			assert.Equal(t, ast27.KindExceptHandler, ce.Kind)
			assert.Equal(t, "name", ce.Field)
		})
	}
}

func TestRule_PrintWithDestAndNoNewline(t *testing.T) {
	t.Parallel()

	out, err := convert.ConvertNode(&ast27.Print{
		Position: ast27.At(3, 0),
		Dest:     name27("f", 3, 8),
		Values:   []ast27.Expr{name27("a", 3, 11), name27("b", 3, 14)},
		Nl:       false,
	})
	require.NoError(t, err)

	want := &ast35.ExprStmt{
		Position: ast35.At(3, 0),
		Value: &ast35.Call{
			Position: ast35.UnknownPosition,
			Func:     synthName35("print"),
			Args:     []ast35.Expr{name35("a", 3, 11), name35("b", 3, 14)},
			Keywords: []*ast35.Keyword{
				{Arg: strPtr("file"), Value: name35("f", 3, 8)},
				{Arg: strPtr("end"), Value: &ast35.Str{Position: ast35.UnknownPosition, S: " "}},
			},
		},
	}
	assert.Equal(t, want, out)
}

func TestRule_PrintPlain(t *testing.T) {
	t.Parallel()

	out, err := convert.ConvertNode(&ast27.Print{Position: ast27.At(1, 0), Nl: true})
	require.NoError(t, err)

	want := &ast35.ExprStmt{
		Position: ast35.At(1, 0),
		Value: &ast35.Call{
			Position: ast35.UnknownPosition,
			Func:     synthName35("print"),
			Args:     []ast35.Expr{},
			Keywords: []*ast35.Keyword{},
		},
	}
	assert.Equal(t, want, out)
}

func TestRule_Raise(t *testing.T) {
	t.Parallel()

	typ := name27("T", 1, 6)
	tb := name27("tb", 1, 15)
	pair := &ast27.Tuple{
		Position: ast27.At(1, 9),
		Elts:     []ast27.Expr{name27("a", 1, 10), name27("b", 1, 12)},
		Ctx:      ast27.CtxLoad,
	}

	tests := []struct {
		name string
		in   *ast27.Raise
		want ast35.Expr
	}{
		{
			name: "bare",
			in:   &ast27.Raise{Position: ast27.At(1, 0)},
			want: nil,
		},
		{
			name: "type only",
			in:   &ast27.Raise{Position: ast27.At(1, 0), Type: typ},
			want: name35("T", 1, 6),
		},
		{
			name: "single instance",
			in:   &ast27.Raise{Position: ast27.At(1, 0), Type: typ, Inst: name27("msg", 1, 9)},
			want: &ast35.Call{
				Position: ast35.UnknownPosition,
				Func:     name35("T", 1, 6),
				Args:     []ast35.Expr{name35("msg", 1, 9)},
				Keywords: []*ast35.Keyword{},
			},
		},
		{
			name: "tuple instance with traceback",
			in:   &ast27.Raise{Position: ast27.At(1, 0), Type: typ, Inst: pair, Tback: tb},
			want: &ast35.Call{
				Position: ast35.UnknownPosition,
				Func: &ast35.Attribute{
					Position: ast35.UnknownPosition,
					Value: &ast35.Call{
						Position: ast35.UnknownPosition,
						Func:     name35("T", 1, 6),
						Args:     []ast35.Expr{name35("a", 1, 10), name35("b", 1, 12)},
						Keywords: []*ast35.Keyword{},
					},
					Attr: "with_traceback",
					Ctx:  ast35.CtxLoad,
				},
				Args:     []ast35.Expr{name35("tb", 1, 15)},
				Keywords: []*ast35.Keyword{},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			out, err := convert.ConvertNode(tt.in)
			require.NoError(t, err)

			raise, ok := out.(*ast35.Raise)
			require.True(t, ok)
			assert.Equal(t, ast35.At(1, 0), raise.Position)
			assert.Equal(t, tt.want, raise.Exc)
			assert.Nil(t, raise.Cause)
		})
	}
}

func TestRule_RaiseMalformed(t *testing.T) {
	t.Parallel()

	_, err := convert.ConvertNode(&ast27.Raise{Position: ast27.At(1, 0), Inst: name27("x", 1, 6)})
	require.ErrorIs(t, err, convert.ErrMalformedTree)

	_, err = convert.ConvertNode(&ast27.Raise{Position: ast27.At(1, 0), Type: name27("E", 1, 6), Tback: name27("tb", 1, 9)})
	require.ErrorIs(t, err, convert.ErrMalformedTree)
}

func TestRule_Exec(t *testing.T) {
	t.Parallel()

	code := &ast27.Str{Position: ast27.At(1, 5), S: ast27.Text("x = 1")}

	tests := []struct {
		name     string
		in       *ast27.Exec
		wantArgs int
	}{
		{"body only", &ast27.Exec{Position: ast27.At(1, 0), Body: code}, 1},
		{"globals", &ast27.Exec{Position: ast27.At(1, 0), Body: code, Globals: name27("g", 1, 16)}, 2},
		{"globals and locals", &ast27.Exec{
			Position: ast27.At(1, 0), Body: code, Globals: name27("g", 1, 16), Locals: name27("l", 1, 19),
		}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			out, err := convert.ConvertNode(tt.in)
			require.NoError(t, err)

			stmt, ok := out.(*ast35.ExprStmt)
			require.True(t, ok)
			assert.Equal(t, ast35.At(1, 0), stmt.Position)

			call, ok := stmt.Value.(*ast35.Call)
			require.True(t, ok)
			assert.Equal(t, synthName35("exec"), call.Func)
			require.Len(t, call.Args, tt.wantArgs)
			assert.Equal(t, &ast35.Str{Position: ast35.At(1, 5), S: "x = 1"}, call.Args[0])

			for _, arg := range call.Args {
				assert.NotNil(t, arg)
			}
		})
	}

	_, err := convert.ConvertNode(&ast27.Exec{Position: ast27.At(1, 0), Body: code, Locals: name27("l", 1, 19)})
	require.ErrorIs(t, err, convert.ErrMalformedTree)
}

func TestRule_Repr(t *testing.T) {
	t.Parallel()

	out, err := convert.ConvertNode(&ast27.Repr{Position: ast27.At(2, 4), Value: name27("x", 2, 5)})
	require.NoError(t, err)

	want := &ast35.Call{
		Position: ast35.At(2, 4),
		Func:     synthName35("repr"),
		Args:     []ast35.Expr{name35("x", 2, 5)},
		Keywords: []*ast35.Keyword{},
	}
	assert.Equal(t, want, out)
}

func nestedWith27() *ast27.With {
	return &ast27.With{
		Position:     ast27.At(1, 0),
		ContextExpr:  name27("a", 1, 5),
		OptionalVars: &ast27.Name{Position: ast27.At(1, 10), ID: "x", Ctx: ast27.CtxStore},
		Body: []ast27.Stmt{&ast27.With{
			Position:    ast27.At(1, 13),
			ContextExpr: name27("b", 1, 13),
			Body:        []ast27.Stmt{passAt(2)},
		}},
		TypeComment: strPtr("int"),
	}
}

func TestRule_WithSingleItem(t *testing.T) {
	t.Parallel()

	out, err := convert.ConvertNode(nestedWith27())
	require.NoError(t, err)

	want := &ast35.With{
		Position: ast35.At(1, 0),
		Items: []*ast35.WithItem{{
			ContextExpr:  name35("a", 1, 5),
			OptionalVars: &ast35.Name{Position: ast35.At(1, 10), ID: "x", Ctx: ast35.CtxStore},
		}},
		Body: []ast35.Stmt{&ast35.With{
			Position: ast35.At(1, 13),
			Items:    []*ast35.WithItem{{ContextExpr: name35("b", 1, 13)}},
			Body:     []ast35.Stmt{pass35At(2)},
		}},
		TypeComment: strPtr("int"),
	}
	assert.Equal(t, want, out)
}

func TestRule_WithMergeNested(t *testing.T) {
	t.Parallel()

	c := convert.NewConverter(convert.Options{MergeNestedWith: true})

	out, err := c.ConvertNode(nestedWith27())
	require.NoError(t, err)

	want := &ast35.With{
		Position: ast35.At(1, 0),
		Items: []*ast35.WithItem{
			{
				ContextExpr:  name35("a", 1, 5),
				OptionalVars: &ast35.Name{Position: ast35.At(1, 10), ID: "x", Ctx: ast35.CtxStore},
			},
			{ContextExpr: name35("b", 1, 13)},
		},
		Body:        []ast35.Stmt{pass35At(2)},
		TypeComment: strPtr("int"),
	}
	assert.Equal(t, want, out)

	// An inner with-statement that carries its own type comment is kept apart.
	in := nestedWith27()
	in.Body[0].(*ast27.With).TypeComment = strPtr("str")

	out, err = c.ConvertNode(in)
	require.NoError(t, err)

	with, ok := out.(*ast35.With)
	require.True(t, ok)
	assert.Len(t, with.Items, 1)
	assert.IsType(t, &ast35.With{}, with.Body[0])
}

func TestRule_Call(t *testing.T) {
	t.Parallel()

	out, err := convert.ConvertNode(&ast27.Call{
		Position: ast27.At(2, 0),
		Func:     name27("f", 2, 0),
		Args:     []ast27.Expr{name27("x", 2, 2)},
		Keywords: []*ast27.Keyword{{Arg: "k", Value: name27("v", 2, 7)}},
		Starargs: name27("y", 2, 11),
		Kwargs:   name27("z", 2, 16),
	})
	require.NoError(t, err)

	want := &ast35.Call{
		Position: ast35.At(2, 0),
		Func:     name35("f", 2, 0),
		Args: []ast35.Expr{
			name35("x", 2, 2),
			&ast35.Starred{Position: ast35.At(2, 11), Value: name35("y", 2, 11), Ctx: ast35.CtxLoad},
		},
		Keywords: []*ast35.Keyword{
			{Arg: strPtr("k"), Value: name35("v", 2, 7)},
			{Arg: nil, Value: name35("z", 2, 16)},
		},
	}
	assert.Equal(t, want, out)
}

func TestRule_CallPlain(t *testing.T) {
	t.Parallel()

	out, err := convert.ConvertNode(&ast27.Call{Position: ast27.At(1, 0), Func: name27("f", 1, 0)})
	require.NoError(t, err)
	assert.Equal(t, &ast35.Call{
		Position: ast35.At(1, 0),
		Func:     name35("f", 1, 0),
		Args:     []ast35.Expr{},
		Keywords: []*ast35.Keyword{},
	}, out)
}

func TestRule_Ellipsis(t *testing.T) {
	t.Parallel()

	out, err := convert.ConvertNode(&ast27.Subscript{
		Position: ast27.At(1, 0),
		Value:    name27("a", 1, 0),
		Slice:    &ast27.Ellipsis{},
		Ctx:      ast27.CtxLoad,
	})
	require.NoError(t, err)

	want := &ast35.Subscript{
		Position: ast35.At(1, 0),
		Value:    name35("a", 1, 0),
		Slice:    &ast35.Index{Value: &ast35.Ellipsis{Position: ast35.UnknownPosition}},
		Ctx:      ast35.CtxLoad,
	}
	assert.Equal(t, want, out)

	out, err = convert.ConvertNode(&ast27.ExtSlice{Dims: []ast27.Slicer{
		&ast27.Slice{},
		&ast27.Ellipsis{},
	}})
	require.NoError(t, err)

	ext, ok := out.(*ast35.ExtSlice)
	require.True(t, ok)
	require.Len(t, ext.Dims, 2)
	assert.Equal(t, &ast35.Slice{}, ext.Dims[0])
	assert.IsType(t, &ast35.Index{}, ext.Dims[1])
}

func TestRule_Arguments(t *testing.T) {
	t.Parallel()

	out, err := convert.ConvertNode(&ast27.Arguments{
		Args: []ast27.Expr{
			&ast27.Name{Position: ast27.At(1, 6), ID: "a", Ctx: ast27.CtxParam},
			&ast27.Name{Position: ast27.At(1, 9), ID: "b", Ctx: ast27.CtxParam},
		},
		Vararg:       strPtr("rest"),
		Kwarg:        strPtr("opts"),
		Defaults:     []ast27.Expr{&ast27.Num{Position: ast27.At(1, 11), N: "1"}},
		TypeComments: []*string{strPtr("int"), nil, strPtr("str"), strPtr("dict")},
	})
	require.NoError(t, err)

	want := &ast35.Arguments{
		Args: []*ast35.Arg{
			{Position: ast35.At(1, 6), Arg: "a", TypeComment: strPtr("int")},
			{Position: ast35.At(1, 9), Arg: "b"},
		},
		Vararg:     &ast35.Arg{Position: ast35.UnknownPosition, Arg: "rest", TypeComment: strPtr("str")},
		Kwonlyargs: []*ast35.Arg{},
		KwDefaults: []ast35.Expr{},
		Kwarg:      &ast35.Arg{Position: ast35.UnknownPosition, Arg: "opts", TypeComment: strPtr("dict")},
		Defaults:   []ast35.Expr{&ast35.Num{Position: ast35.At(1, 11), N: "1"}},
	}
	assert.Equal(t, want, out)
}

func TestRule_ArgumentsRejectsTupleParameter(t *testing.T) {
	t.Parallel()

	mod := &ast27.Module{Body: []ast27.Stmt{&ast27.FunctionDef{
		Position: ast27.At(1, 0),
		Name:     "f",
		Args: &ast27.Arguments{Args: []ast27.Expr{
			&ast27.Name{Position: ast27.At(1, 6), ID: "a", Ctx: ast27.CtxParam},
			&ast27.Tuple{
				Position: ast27.At(1, 10),
				Elts: []ast27.Expr{
					&ast27.Name{Position: ast27.At(1, 10), ID: "b", Ctx: ast27.CtxStore},
					&ast27.Name{Position: ast27.At(1, 13), ID: "c", Ctx: ast27.CtxStore},
				},
				Ctx: ast27.CtxStore,
			},
		}},
		Body: []ast27.Stmt{passAt(2)},
	}}}

	out, err := convert.Convert(mod)
	require.ErrorIs(t, err, convert.ErrUnsupportedConstruct)
	require.NotErrorIs(t, err, convert.ErrMalformedTree)
	assert.Nil(t, out)

	var ce *convert.ConversionError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, ast27.KindArguments, ce.Kind)
}

func TestRule_LambdaUsesArguments(t *testing.T) {
	t.Parallel()

	out, err := convert.ConvertNode(&ast27.Lambda{
		Position: ast27.At(1, 0),
		Args:     &ast27.Arguments{Vararg: strPtr("a")},
		Body:     name27("a", 1, 11),
	})
	require.NoError(t, err)

	lambda, ok := out.(*ast35.Lambda)
	require.True(t, ok)
	require.NotNil(t, lambda.Args.Vararg)
	assert.Equal(t, "a", lambda.Args.Vararg.Arg)
	assert.Empty(t, lambda.Args.Args)
}

func TestRule_StrDiscrimination(t *testing.T) {
	t.Parallel()

	out, err := convert.ConvertNode(&ast27.Str{Position: ast27.At(1, 0), S: ast27.ByteString("\x00ab")})
	require.NoError(t, err)
	assert.Equal(t, &ast35.Bytes{Position: ast35.At(1, 0), S: []byte("\x00ab")}, out)

	out, err = convert.ConvertNode(&ast27.Str{Position: ast27.At(1, 0), S: ast27.Text("héllo")})
	require.NoError(t, err)
	assert.Equal(t, &ast35.Str{Position: ast35.At(1, 0), S: "héllo"}, out)

	_, err = convert.ConvertNode(&ast27.Str{Position: ast27.At(1, 0)})
	require.ErrorIs(t, err, convert.ErrMalformedTree)
}

func TestRule_SuiteUnsupported(t *testing.T) {
	t.Parallel()

	out, err := convert.Convert(&ast27.Suite{Body: []ast27.Stmt{passAt(1)}})
	require.ErrorIs(t, err, convert.ErrUnsupportedConstruct)
	assert.Nil(t, out)
}

func TestConvert_OutputDoesNotAliasInput(t *testing.T) {
	t.Parallel()

	comment := "int"
	in := &ast27.Assign{
		Position:    ast27.At(1, 0),
		Targets:     []ast27.Expr{&ast27.Name{Position: ast27.At(1, 0), ID: "x", Ctx: ast27.CtxStore}},
		Value:       &ast27.Str{Position: ast27.At(1, 4), S: ast27.ByteString("ab")},
		TypeComment: &comment,
	}

	out, err := convert.ConvertNode(in)
	require.NoError(t, err)

	assign, ok := out.(*ast35.Assign)
	require.True(t, ok)

	comment = "changed"
	in.Value.(*ast27.Str).S.(ast27.ByteString)[0] = 'z'

	assert.Equal(t, "int", *assign.TypeComment)
	assert.Equal(t, []byte("ab"), assign.Value.(*ast35.Bytes).S)
}
