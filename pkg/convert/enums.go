package convert

import (
	"github.com/Sumatoshi-tech/pyconv/pkg/ast27"
	"github.com/Sumatoshi-tech/pyconv/pkg/ast35"
)

//nolint:gochecknoglobals // Immutable mapping tables.
var (
	exprContexts = map[ast27.ExprContext]ast35.ExprContext{
		ast27.CtxLoad:     ast35.CtxLoad,
		ast27.CtxStore:    ast35.CtxStore,
		ast27.CtxDel:      ast35.CtxDel,
		ast27.CtxAugLoad:  ast35.CtxAugLoad,
		ast27.CtxAugStore: ast35.CtxAugStore,
		ast27.CtxParam:    ast35.CtxParam,
	}

	boolOperators = map[ast27.BoolOperator]ast35.BoolOperator{
		ast27.BoolAnd: ast35.BoolAnd,
		ast27.BoolOr:  ast35.BoolOr,
	}

	operators = map[ast27.Operator]ast35.Operator{
		ast27.OpAdd:      ast35.OpAdd,
		ast27.OpSub:      ast35.OpSub,
		ast27.OpMult:     ast35.OpMult,
		ast27.OpDiv:      ast35.OpDiv,
		ast27.OpMod:      ast35.OpMod,
		ast27.OpPow:      ast35.OpPow,
		ast27.OpLShift:   ast35.OpLShift,
		ast27.OpRShift:   ast35.OpRShift,
		ast27.OpBitOr:    ast35.OpBitOr,
		ast27.OpBitXor:   ast35.OpBitXor,
		ast27.OpBitAnd:   ast35.OpBitAnd,
		ast27.OpFloorDiv: ast35.OpFloorDiv,
	}

	unaryOperators = map[ast27.UnaryOperator]ast35.UnaryOperator{
		ast27.UnaryInvert: ast35.UnaryInvert,
		ast27.UnaryNot:    ast35.UnaryNot,
		ast27.UnaryUAdd:   ast35.UnaryUAdd,
		ast27.UnaryUSub:   ast35.UnaryUSub,
	}

	cmpOperators = map[ast27.CmpOperator]ast35.CmpOperator{
		ast27.CmpEq:    ast35.CmpEq,
		ast27.CmpNotEq: ast35.CmpNotEq,
		ast27.CmpLt:    ast35.CmpLt,
		ast27.CmpLtE:   ast35.CmpLtE,
		ast27.CmpGt:    ast35.CmpGt,
		ast27.CmpGtE:   ast35.CmpGtE,
		ast27.CmpIs:    ast35.CmpIs,
		ast27.CmpIsNot: ast35.CmpIsNot,
		ast27.CmpIn:    ast35.CmpIn,
		ast27.CmpNotIn: ast35.CmpNotIn,
	}
)

// mapEnum translates an enum scalar through table. Values outside the legacy
// grammar, including the zero value, are malformed.
func mapEnum[K ~uint8, V any](w *walker, table map[K]V, v K, field string) (V, error) {
	out, ok := table[v]
	if !ok {
		var zero V

		return zero, malformed(w.parent, field, "invalid value %d", uint8(v))
	}

	return out, nil
}
