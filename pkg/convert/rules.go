package convert

import (
	"github.com/Sumatoshi-tech/pyconv/pkg/ast27"
	"github.com/Sumatoshi-tech/pyconv/pkg/ast35"
)

// Builtin and method names introduced by rewrites.
const (
	builtinPrint      = "print"
	builtinExec       = "exec"
	builtinRepr       = "repr"
	keywordFile       = "file"
	keywordEnd        = "end"
	withTracebackAttr = "with_traceback"
)

func registerRules(c *Converter) {
	c.register(ast27.KindSuite, ruleFor((*walker).suite))
	c.register(ast27.KindFunctionDef, ruleFor((*walker).functionDef))
	c.register(ast27.KindClassDef, ruleFor((*walker).classDef))
	c.register(ast27.KindTryExcept, ruleFor((*walker).tryExcept))
	c.register(ast27.KindTryFinally, ruleFor((*walker).tryFinally))
	c.register(ast27.KindExceptHandler, ruleFor((*walker).exceptHandler))
	c.register(ast27.KindPrint, ruleFor((*walker).print))
	c.register(ast27.KindRaise, ruleFor((*walker).raise))
	c.register(ast27.KindExec, ruleFor((*walker).exec))
	c.register(ast27.KindRepr, ruleFor((*walker).repr))
	c.register(ast27.KindWith, ruleFor((*walker).with))
	c.register(ast27.KindCall, ruleFor((*walker).call))
	c.register(ast27.KindEllipsis, ruleFor((*walker).ellipsis))
	c.register(ast27.KindArguments, ruleFor((*walker).params))
	c.register(ast27.KindStr, ruleFor((*walker).str))
}

// ruleFor adapts a rule over one concrete legacy type to a ruleFunc.
func ruleFor[N ast27.Node, M ast35.Node](fn func(*walker, N) (M, error)) ruleFunc {
	return func(w *walker, n ast27.Node) (ast35.Node, error) {
		typed, ok := n.(N)
		if !ok {
			return nil, malformed(n, "", "node %T does not match its kind", n)
		}

		out, err := fn(w, typed)
		if err != nil {
			return nil, err
		}

		return out, nil
	}
}

// synthName builds a load of a builtin name that has no source counterpart.
func synthName(id string) *ast35.Name {
	return &ast35.Name{Position: ast35.UnknownPosition, ID: id, Ctx: ast35.CtxLoad}
}

// synthCall builds a call that has no source counterpart.
func synthCall(fn ast35.Expr, args []ast35.Expr, keywords []*ast35.Keyword) *ast35.Call {
	if args == nil {
		args = []ast35.Expr{}
	}

	if keywords == nil {
		keywords = []*ast35.Keyword{}
	}

	return &ast35.Call{Position: ast35.UnknownPosition, Func: fn, Args: args, Keywords: keywords}
}

func (w *walker) suite(n *ast27.Suite) (ast35.Mod, error) {
	return nil, unsupported(n, "", "Suite roots have no modern counterpart")
}

func (w *walker) functionDef(n *ast27.FunctionDef) (*ast35.FunctionDef, error) {
	out, err := w.generic(n)
	if err != nil {
		return nil, err
	}

	def, ok := out.(*ast35.FunctionDef)
	if !ok {
		return nil, malformed(n, "", "generic rule produced %s", out.Kind())
	}

	def.Returns = nil

	return def, nil
}

func (w *walker) classDef(n *ast27.ClassDef) (*ast35.ClassDef, error) {
	out, err := w.generic(n)
	if err != nil {
		return nil, err
	}

	def, ok := out.(*ast35.ClassDef)
	if !ok {
		return nil, malformed(n, "", "generic rule produced %s", out.Kind())
	}

	def.Keywords = []*ast35.Keyword{}

	return def, nil
}

func (w *walker) tryExcept(n *ast27.TryExcept) (*ast35.Try, error) {
	body, err := w.stmts(n.Body, "body")
	if err != nil {
		return nil, err
	}

	handlers, err := transformAll[*ast35.ExceptHandler](w, n.Handlers, "handlers")
	if err != nil {
		return nil, err
	}

	orelse, err := w.stmts(n.Orelse, "orelse")
	if err != nil {
		return nil, err
	}

	return &ast35.Try{Body: body, Handlers: handlers, Orelse: orelse, Finalbody: []ast35.Stmt{}}, nil
}

// tryFinally collapses "try/except/finally", which the legacy tree spells as a
// TryFinally around a single TryExcept, into one Try.
func (w *walker) tryFinally(n *ast27.TryFinally) (*ast35.Try, error) {
	if len(n.Body) == 1 {
		if inner, ok := n.Body[0].(*ast27.TryExcept); ok && inner != nil {
			try, err := transformAs[*ast35.Try](w, inner, "body[0]")
			if err != nil {
				return nil, err
			}

			if try.Finalbody, err = w.stmts(n.Finalbody, "finalbody"); err != nil {
				return nil, err
			}

			return try, nil
		}
	}

	body, err := w.stmts(n.Body, "body")
	if err != nil {
		return nil, err
	}

	finalbody, err := w.stmts(n.Finalbody, "finalbody")
	if err != nil {
		return nil, err
	}

	return &ast35.Try{
		Body:      body,
		Handlers:  []*ast35.ExceptHandler{},
		Orelse:    []ast35.Stmt{},
		Finalbody: finalbody,
	}, nil
}

func (w *walker) exceptHandler(n *ast27.ExceptHandler) (*ast35.ExceptHandler, error) {
	var name *string

	if !isNil(n.Name) {
		target, ok := n.Name.(*ast27.Name)
		if !ok {
			return nil, unsupported(n, "name", "handler binds %s, only a plain name is allowed", n.Name.Kind())
		}

		id := target.ID
		name = &id
	}

	typ, err := w.optExpr(n.Type, "type")
	if err != nil {
		return nil, err
	}

	body, err := w.stmts(n.Body, "body")
	if err != nil {
		return nil, err
	}

	return &ast35.ExceptHandler{Type: typ, Name: name, Body: body}, nil
}

// print lowers the print statement to print(values..., file=dest, end=" ").
func (w *walker) print(n *ast27.Print) (*ast35.ExprStmt, error) {
	values, err := w.exprs(n.Values, "values")
	if err != nil {
		return nil, err
	}

	keywords := []*ast35.Keyword{}

	if !isNil(n.Dest) {
		dest, err := w.expr(n.Dest, "dest")
		if err != nil {
			return nil, err
		}

		arg := keywordFile
		keywords = append(keywords, &ast35.Keyword{Arg: &arg, Value: dest})
	}

	if !n.Nl {
		arg := keywordEnd
		keywords = append(keywords, &ast35.Keyword{
			Arg:   &arg,
			Value: &ast35.Str{Position: ast35.UnknownPosition, S: " "},
		})
	}

	return &ast35.ExprStmt{Value: synthCall(synthName(builtinPrint), values, keywords)}, nil
}

// raise composes "raise T, inst, tb" into "raise T(inst).with_traceback(tb)".
// A tuple instance is spread into positional arguments.
func (w *walker) raise(n *ast27.Raise) (*ast35.Raise, error) {
	if isNil(n.Type) {
		if !isNil(n.Inst) || !isNil(n.Tback) {
			return nil, malformed(n, "type", "instance or traceback given without an exception type")
		}

		return &ast35.Raise{}, nil
	}

	exc, err := w.expr(n.Type, "type")
	if err != nil {
		return nil, err
	}

	if !isNil(n.Tback) && isNil(n.Inst) {
		return nil, malformed(n, "inst", "traceback given without an instance")
	}

	if !isNil(n.Inst) {
		var args []ast35.Expr

		if tuple, ok := n.Inst.(*ast27.Tuple); ok {
			elts, err := w.exprs(tuple.Elts, "inst")
			if err != nil {
				return nil, err
			}

			args = elts
		} else {
			inst, err := w.expr(n.Inst, "inst")
			if err != nil {
				return nil, err
			}

			args = []ast35.Expr{inst}
		}

		exc = synthCall(exc, args, nil)
	}

	if !isNil(n.Tback) {
		tback, err := w.expr(n.Tback, "tback")
		if err != nil {
			return nil, err
		}

		method := &ast35.Attribute{
			Position: ast35.UnknownPosition,
			Value:    exc,
			Attr:     withTracebackAttr,
			Ctx:      ast35.CtxLoad,
		}
		exc = synthCall(method, []ast35.Expr{tback}, nil)
	}

	return &ast35.Raise{Exc: exc}, nil
}

// exec lowers "exec body in globals, locals" to exec(body, globals, locals).
// Absent trailing operands are omitted.
func (w *walker) exec(n *ast27.Exec) (*ast35.ExprStmt, error) {
	if isNil(n.Globals) && !isNil(n.Locals) {
		return nil, malformed(n, "globals", "locals given without globals")
	}

	body, err := w.expr(n.Body, "body")
	if err != nil {
		return nil, err
	}

	args := []ast35.Expr{body}

	for _, operand := range []struct {
		expr  ast27.Expr
		field string
	}{{n.Globals, "globals"}, {n.Locals, "locals"}} {
		if isNil(operand.expr) {
			break
		}

		arg, err := w.expr(operand.expr, operand.field)
		if err != nil {
			return nil, err
		}

		args = append(args, arg)
	}

	return &ast35.ExprStmt{Value: synthCall(synthName(builtinExec), args, nil)}, nil
}

func (w *walker) repr(n *ast27.Repr) (*ast35.Call, error) {
	value, err := w.expr(n.Value, "value")
	if err != nil {
		return nil, err
	}

	return synthCall(synthName(builtinRepr), []ast35.Expr{value}, nil), nil
}

// with builds a single-item With. With MergeNestedWith set, a body that is
// exactly one type-comment-free with-statement is folded into this one.
func (w *walker) with(n *ast27.With) (*ast35.With, error) {
	ctx, err := w.expr(n.ContextExpr, "context_expr")
	if err != nil {
		return nil, err
	}

	vars, err := w.optExpr(n.OptionalVars, "optional_vars")
	if err != nil {
		return nil, err
	}

	item := &ast35.WithItem{ContextExpr: ctx, OptionalVars: vars}
	out := &ast35.With{Items: []*ast35.WithItem{item}, TypeComment: clonePtr(n.TypeComment)}

	if w.conv.opts.MergeNestedWith && len(n.Body) == 1 {
		if inner, ok := n.Body[0].(*ast27.With); ok && inner != nil && inner.TypeComment == nil {
			nested, err := transformAs[*ast35.With](w, inner, "body[0]")
			if err != nil {
				return nil, err
			}

			out.Items = append(out.Items, nested.Items...)
			out.Body = nested.Body

			return out, nil
		}
	}

	if out.Body, err = w.stmts(n.Body, "body"); err != nil {
		return nil, err
	}

	return out, nil
}

// call folds the separate *args and **kwargs operands into the argument and
// keyword lists as a trailing Starred and a trailing unnamed keyword.
func (w *walker) call(n *ast27.Call) (*ast35.Call, error) {
	fn, err := w.expr(n.Func, "func")
	if err != nil {
		return nil, err
	}

	args, err := w.exprs(n.Args, "args")
	if err != nil {
		return nil, err
	}

	if !isNil(n.Starargs) {
		value, err := w.expr(n.Starargs, "starargs")
		if err != nil {
			return nil, err
		}

		starred := &ast35.Starred{Position: ast35.UnknownPosition, Value: value, Ctx: ast35.CtxLoad}
		if p, ok := n.Starargs.(ast27.Positioned); ok {
			starred.Position = ast35.At(p.Pos().Lineno, p.Pos().ColOffset)
		}

		args = append(args, starred)
	}

	keywords, err := transformAll[*ast35.Keyword](w, n.Keywords, "keywords")
	if err != nil {
		return nil, err
	}

	if !isNil(n.Kwargs) {
		value, err := w.expr(n.Kwargs, "kwargs")
		if err != nil {
			return nil, err
		}

		keywords = append(keywords, &ast35.Keyword{Value: value})
	}

	return &ast35.Call{Func: fn, Args: args, Keywords: keywords}, nil
}

// ellipsis wraps the slice-only legacy ellipsis into Index(Ellipsis).
func (w *walker) ellipsis(*ast27.Ellipsis) (*ast35.Index, error) {
	return &ast35.Index{Value: &ast35.Ellipsis{Position: ast35.UnknownPosition}}, nil
}

// params converts a legacy parameter list. Nested tuple parameters have
// no modern form and are rejected.
func (w *walker) params(n *ast27.Arguments) (*ast35.Arguments, error) {
	comments := n.TypeComments
	comment := func() *string {
		if len(comments) == 0 {
			return nil
		}

		c := comments[0]
		comments = comments[1:]

		return clonePtr(c)
	}

	args := make([]*ast35.Arg, 0, len(n.Args))

	for i, param := range n.Args {
		name, ok := param.(*ast27.Name)
		if !ok || name == nil {
			if isNil(param) {
				return nil, missing(n, "args")
			}

			return nil, unsupported(n, "args", "parameter %d is a %s, only plain names are allowed", i, param.Kind())
		}

		args = append(args, &ast35.Arg{
			Position:    ast35.At(name.Lineno, name.ColOffset),
			Arg:         name.ID,
			TypeComment: comment(),
		})
	}

	out := &ast35.Arguments{
		Args:       args,
		Kwonlyargs: []*ast35.Arg{},
		KwDefaults: []ast35.Expr{},
	}

	if n.Vararg != nil {
		out.Vararg = &ast35.Arg{Position: ast35.UnknownPosition, Arg: *n.Vararg, TypeComment: comment()}
	}

	if n.Kwarg != nil {
		out.Kwarg = &ast35.Arg{Position: ast35.UnknownPosition, Arg: *n.Kwarg, TypeComment: comment()}
	}

	var err error
	if out.Defaults, err = w.exprs(n.Defaults, "defaults"); err != nil {
		return nil, err
	}

	return out, nil
}

// str splits the legacy string literal by content: byte content becomes Bytes.
func (w *walker) str(n *ast27.Str) (ast35.Expr, error) {
	switch s := n.S.(type) {
	case ast27.ByteString:
		b := make([]byte, len(s))
		copy(b, s)

		return &ast35.Bytes{S: b}, nil
	case ast27.Text:
		return &ast35.Str{S: string(s)}, nil
	default:
		return nil, missing(n, "s")
	}
}
