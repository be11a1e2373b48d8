package convert

import (
	"github.com/Sumatoshi-tech/pyconv/pkg/ast27"
	"github.com/Sumatoshi-tech/pyconv/pkg/ast35"
)

const noCounterpart = "kind has no same-named modern counterpart"

// generic builds the same-named modern node: child fields are dispatched,
// scalar fields copied, enum scalars mapped.
//
//nolint:gocyclo,cyclop,funlen,maintidx // One case per grammar production.
func (w *walker) generic(n ast27.Node) (ast35.Node, error) {
	var err error

	switch n := n.(type) {
	case *ast27.Module:
		out := &ast35.Module{}
		if out.Body, err = w.stmts(n.Body, "body"); err != nil {
			return nil, err
		}

		out.TypeIgnores, err = transformAll[*ast35.TypeIgnore](w, n.TypeIgnores, "type_ignores")

		return out, err

	case *ast27.Interactive:
		out := &ast35.Interactive{}
		out.Body, err = w.stmts(n.Body, "body")

		return out, err

	case *ast27.Expression:
		out := &ast35.Expression{}
		out.Body, err = w.expr(n.Body, "body")

		return out, err

	case *ast27.FunctionType:
		out := &ast35.FunctionType{}
		if out.Argtypes, err = w.exprs(n.Argtypes, "argtypes"); err != nil {
			return nil, err
		}

		out.Returns, err = w.expr(n.Returns, "returns")

		return out, err

	case *ast27.TypeIgnore:
		return &ast35.TypeIgnore{Lineno: n.Lineno}, nil

	case *ast27.FunctionDef:
		out := &ast35.FunctionDef{Name: n.Name, TypeComment: clonePtr(n.TypeComment)}
		if out.Args, err = w.arguments(n.Args, "args"); err != nil {
			return nil, err
		}

		if out.Body, err = w.stmts(n.Body, "body"); err != nil {
			return nil, err
		}

		out.DecoratorList, err = w.exprs(n.DecoratorList, "decorator_list")

		return out, err

	case *ast27.ClassDef:
		out := &ast35.ClassDef{Name: n.Name}
		if out.Bases, err = w.exprs(n.Bases, "bases"); err != nil {
			return nil, err
		}

		if out.Body, err = w.stmts(n.Body, "body"); err != nil {
			return nil, err
		}

		out.DecoratorList, err = w.exprs(n.DecoratorList, "decorator_list")

		return out, err

	case *ast27.Return:
		out := &ast35.Return{}
		out.Value, err = w.optExpr(n.Value, "value")

		return out, err

	case *ast27.Delete:
		out := &ast35.Delete{}
		out.Targets, err = w.exprs(n.Targets, "targets")

		return out, err

	case *ast27.Assign:
		out := &ast35.Assign{TypeComment: clonePtr(n.TypeComment)}
		if out.Targets, err = w.exprs(n.Targets, "targets"); err != nil {
			return nil, err
		}

		out.Value, err = w.expr(n.Value, "value")

		return out, err

	case *ast27.AugAssign:
		out := &ast35.AugAssign{}
		if out.Target, err = w.expr(n.Target, "target"); err != nil {
			return nil, err
		}

		if out.Op, err = mapEnum(w, operators, n.Op, "op"); err != nil {
			return nil, err
		}

		out.Value, err = w.expr(n.Value, "value")

		return out, err

	case *ast27.For:
		out := &ast35.For{TypeComment: clonePtr(n.TypeComment)}
		if out.Target, err = w.expr(n.Target, "target"); err != nil {
			return nil, err
		}

		if out.Iter, err = w.expr(n.Iter, "iter"); err != nil {
			return nil, err
		}

		if out.Body, err = w.stmts(n.Body, "body"); err != nil {
			return nil, err
		}

		out.Orelse, err = w.stmts(n.Orelse, "orelse")

		return out, err

	case *ast27.While:
		out := &ast35.While{}
		if out.Test, err = w.expr(n.Test, "test"); err != nil {
			return nil, err
		}

		if out.Body, err = w.stmts(n.Body, "body"); err != nil {
			return nil, err
		}

		out.Orelse, err = w.stmts(n.Orelse, "orelse")

		return out, err

	case *ast27.If:
		out := &ast35.If{}
		if out.Test, err = w.expr(n.Test, "test"); err != nil {
			return nil, err
		}

		if out.Body, err = w.stmts(n.Body, "body"); err != nil {
			return nil, err
		}

		out.Orelse, err = w.stmts(n.Orelse, "orelse")

		return out, err

	case *ast27.Assert:
		out := &ast35.Assert{}
		if out.Test, err = w.expr(n.Test, "test"); err != nil {
			return nil, err
		}

		out.Msg, err = w.optExpr(n.Msg, "msg")

		return out, err

	case *ast27.Import:
		out := &ast35.Import{}
		out.Names, err = transformAll[*ast35.Alias](w, n.Names, "names")

		return out, err

	case *ast27.ImportFrom:
		out := &ast35.ImportFrom{Module: clonePtr(n.Module), Level: clonePtr(n.Level)}
		out.Names, err = transformAll[*ast35.Alias](w, n.Names, "names")

		return out, err

	case *ast27.Global:
		return &ast35.Global{Names: cloneStrings(n.Names)}, nil

	case *ast27.ExprStmt:
		out := &ast35.ExprStmt{}
		out.Value, err = w.expr(n.Value, "value")

		return out, err

	case *ast27.Pass:
		return &ast35.Pass{}, nil

	case *ast27.Break:
		return &ast35.Break{}, nil

	case *ast27.Continue:
		return &ast35.Continue{}, nil

	case *ast27.BoolOp:
		out := &ast35.BoolOp{}
		if out.Op, err = mapEnum(w, boolOperators, n.Op, "op"); err != nil {
			return nil, err
		}

		out.Values, err = w.exprs(n.Values, "values")

		return out, err

	case *ast27.BinOp:
		out := &ast35.BinOp{}
		if out.Left, err = w.expr(n.Left, "left"); err != nil {
			return nil, err
		}

		if out.Op, err = mapEnum(w, operators, n.Op, "op"); err != nil {
			return nil, err
		}

		out.Right, err = w.expr(n.Right, "right")

		return out, err

	case *ast27.UnaryOp:
		out := &ast35.UnaryOp{}
		if out.Op, err = mapEnum(w, unaryOperators, n.Op, "op"); err != nil {
			return nil, err
		}

		out.Operand, err = w.expr(n.Operand, "operand")

		return out, err

	case *ast27.Lambda:
		out := &ast35.Lambda{}
		if out.Args, err = w.arguments(n.Args, "args"); err != nil {
			return nil, err
		}

		out.Body, err = w.expr(n.Body, "body")

		return out, err

	case *ast27.IfExp:
		out := &ast35.IfExp{}
		if out.Test, err = w.expr(n.Test, "test"); err != nil {
			return nil, err
		}

		if out.Body, err = w.expr(n.Body, "body"); err != nil {
			return nil, err
		}

		out.Orelse, err = w.expr(n.Orelse, "orelse")

		return out, err

	case *ast27.Dict:
		if len(n.Keys) != len(n.Values) {
			return nil, malformed(n, "values", "%d keys but %d values", len(n.Keys), len(n.Values))
		}

		out := &ast35.Dict{}
		if out.Keys, err = w.exprs(n.Keys, "keys"); err != nil {
			return nil, err
		}

		out.Values, err = w.exprs(n.Values, "values")

		return out, err

	case *ast27.Set:
		out := &ast35.Set{}
		out.Elts, err = w.exprs(n.Elts, "elts")

		return out, err

	case *ast27.ListComp:
		out := &ast35.ListComp{}
		if out.Elt, err = w.expr(n.Elt, "elt"); err != nil {
			return nil, err
		}

		out.Generators, err = transformAll[*ast35.Comprehension](w, n.Generators, "generators")

		return out, err

	case *ast27.SetComp:
		out := &ast35.SetComp{}
		if out.Elt, err = w.expr(n.Elt, "elt"); err != nil {
			return nil, err
		}

		out.Generators, err = transformAll[*ast35.Comprehension](w, n.Generators, "generators")

		return out, err

	case *ast27.DictComp:
		out := &ast35.DictComp{}
		if out.Key, err = w.expr(n.Key, "key"); err != nil {
			return nil, err
		}

		if out.Value, err = w.expr(n.Value, "value"); err != nil {
			return nil, err
		}

		out.Generators, err = transformAll[*ast35.Comprehension](w, n.Generators, "generators")

		return out, err

	case *ast27.GeneratorExp:
		out := &ast35.GeneratorExp{}
		if out.Elt, err = w.expr(n.Elt, "elt"); err != nil {
			return nil, err
		}

		out.Generators, err = transformAll[*ast35.Comprehension](w, n.Generators, "generators")

		return out, err

	case *ast27.Yield:
		out := &ast35.Yield{}
		out.Value, err = w.optExpr(n.Value, "value")

		return out, err

	case *ast27.Compare:
		if len(n.Ops) != len(n.Comparators) {
			return nil, malformed(n, "comparators", "%d operators but %d comparators", len(n.Ops), len(n.Comparators))
		}

		out := &ast35.Compare{Ops: make([]ast35.CmpOperator, len(n.Ops))}
		if out.Left, err = w.expr(n.Left, "left"); err != nil {
			return nil, err
		}

		for i, op := range n.Ops {
			if out.Ops[i], err = mapEnum(w, cmpOperators, op, "ops"); err != nil {
				return nil, err
			}
		}

		out.Comparators, err = w.exprs(n.Comparators, "comparators")

		return out, err

	case *ast27.Num:
		return &ast35.Num{N: ast35.Number(n.N)}, nil

	case *ast27.Attribute:
		out := &ast35.Attribute{Attr: n.Attr}
		if out.Value, err = w.expr(n.Value, "value"); err != nil {
			return nil, err
		}

		out.Ctx, err = mapEnum(w, exprContexts, n.Ctx, "ctx")

		return out, err

	case *ast27.Subscript:
		out := &ast35.Subscript{}
		if out.Value, err = w.expr(n.Value, "value"); err != nil {
			return nil, err
		}

		if out.Slice, err = transformAs[ast35.Slicer](w, n.Slice, "slice"); err != nil {
			return nil, err
		}

		out.Ctx, err = mapEnum(w, exprContexts, n.Ctx, "ctx")

		return out, err

	case *ast27.Name:
		out := &ast35.Name{ID: n.ID}
		out.Ctx, err = mapEnum(w, exprContexts, n.Ctx, "ctx")

		return out, err

	case *ast27.List:
		out := &ast35.List{}
		if out.Elts, err = w.exprs(n.Elts, "elts"); err != nil {
			return nil, err
		}

		out.Ctx, err = mapEnum(w, exprContexts, n.Ctx, "ctx")

		return out, err

	case *ast27.Tuple:
		out := &ast35.Tuple{}
		if out.Elts, err = w.exprs(n.Elts, "elts"); err != nil {
			return nil, err
		}

		out.Ctx, err = mapEnum(w, exprContexts, n.Ctx, "ctx")

		return out, err

	case *ast27.Slice:
		out := &ast35.Slice{}
		if out.Lower, err = w.optExpr(n.Lower, "lower"); err != nil {
			return nil, err
		}

		if out.Upper, err = w.optExpr(n.Upper, "upper"); err != nil {
			return nil, err
		}

		out.Step, err = w.optExpr(n.Step, "step")

		return out, err

	case *ast27.ExtSlice:
		out := &ast35.ExtSlice{}
		out.Dims, err = transformAll[ast35.Slicer](w, n.Dims, "dims")

		return out, err

	case *ast27.Index:
		out := &ast35.Index{}
		out.Value, err = w.expr(n.Value, "value")

		return out, err

	case *ast27.Keyword:
		if n.Arg == "" {
			return nil, malformed(n, "arg", "keyword argument without a name")
		}

		arg := n.Arg
		out := &ast35.Keyword{Arg: &arg}
		out.Value, err = w.expr(n.Value, "value")

		return out, err

	case *ast27.Alias:
		return &ast35.Alias{Name: n.Name, Asname: clonePtr(n.Asname)}, nil

	case *ast27.Comprehension:
		out := &ast35.Comprehension{}
		if out.Target, err = w.expr(n.Target, "target"); err != nil {
			return nil, err
		}

		if out.Iter, err = w.expr(n.Iter, "iter"); err != nil {
			return nil, err
		}

		out.Ifs, err = w.exprs(n.Ifs, "ifs")

		return out, err

	default:
		return nil, &ConversionError{Err: ErrMalformedTree, Kind: safeKind(n), Detail: noCounterpart}
	}
}
