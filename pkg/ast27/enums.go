package ast27

import "github.com/Sumatoshi-tech/pyconv/internal/enumtext"

// ExprContext says how an expression is used.
type ExprContext uint8

// Expression contexts.
const (
	CtxLoad ExprContext = iota + 1
	CtxStore
	CtxDel
	CtxAugLoad
	CtxAugStore
	CtxParam
)

// BoolOperator is "and" or "or".
type BoolOperator uint8

// Boolean operators.
const (
	BoolAnd BoolOperator = iota + 1
	BoolOr
)

// Operator is a binary arithmetic or bitwise operator.
type Operator uint8

// Binary operators.
const (
	OpAdd Operator = iota + 1
	OpSub
	OpMult
	OpDiv
	OpMod
	OpPow
	OpLShift
	OpRShift
	OpBitOr
	OpBitXor
	OpBitAnd
	OpFloorDiv
)

// UnaryOperator is a unary operator.
type UnaryOperator uint8

// Unary operators.
const (
	UnaryInvert UnaryOperator = iota + 1
	UnaryNot
	UnaryUAdd
	UnaryUSub
)

// CmpOperator is a comparison operator.
type CmpOperator uint8

// Comparison operators.
const (
	CmpEq CmpOperator = iota + 1
	CmpNotEq
	CmpLt
	CmpLtE
	CmpGt
	CmpGtE
	CmpIs
	CmpIsNot
	CmpIn
	CmpNotIn
)

//nolint:gochecknoglobals // Immutable name tables.
var (
	exprContextNames = enumtext.New("expr_context", "", "Load", "Store", "Del", "AugLoad", "AugStore", "Param")
	boolOpNames      = enumtext.New("boolop", "", "And", "Or")
	operatorNames    = enumtext.New("operator", "",
		"Add", "Sub", "Mult", "Div", "Mod", "Pow", "LShift", "RShift", "BitOr", "BitXor", "BitAnd", "FloorDiv")
	unaryOpNames = enumtext.New("unaryop", "", "Invert", "Not", "UAdd", "USub")
	cmpOpNames   = enumtext.New("cmpop", "", "Eq", "NotEq", "Lt", "LtE", "Gt", "GtE", "Is", "IsNot", "In", "NotIn")
)

// String returns the grammar name of the ExprContext.
func (c ExprContext) String() string { return exprContextNames.Name(int(c)) }

// Valid reports whether c is a grammar context.
func (c ExprContext) Valid() bool { return exprContextNames.Valid(int(c)) }

// MarshalText encodes the grammar name.
func (c ExprContext) MarshalText() ([]byte, error) { return exprContextNames.Marshal(int(c)) }

// UnmarshalText decodes a grammar name.
func (c *ExprContext) UnmarshalText(text []byte) error {
	v, err := exprContextNames.Parse(text)
	*c = ExprContext(v)

	return err
}

// String returns the grammar name of the BoolOperator.
func (o BoolOperator) String() string { return boolOpNames.Name(int(o)) }

// Valid reports whether o is a grammar operator.
func (o BoolOperator) Valid() bool { return boolOpNames.Valid(int(o)) }

// MarshalText encodes the grammar name.
func (o BoolOperator) MarshalText() ([]byte, error) { return boolOpNames.Marshal(int(o)) }

// UnmarshalText decodes a grammar name.
func (o *BoolOperator) UnmarshalText(text []byte) error {
	v, err := boolOpNames.Parse(text)
	*o = BoolOperator(v)

	return err
}

// String returns the grammar name of the Operator.
func (o Operator) String() string { return operatorNames.Name(int(o)) }

// Valid reports whether o is a grammar operator.
func (o Operator) Valid() bool { return operatorNames.Valid(int(o)) }

// MarshalText encodes the grammar name.
func (o Operator) MarshalText() ([]byte, error) { return operatorNames.Marshal(int(o)) }

// UnmarshalText decodes a grammar name.
func (o *Operator) UnmarshalText(text []byte) error {
	v, err := operatorNames.Parse(text)
	*o = Operator(v)

	return err
}

// String returns the grammar name of the UnaryOperator.
func (o UnaryOperator) String() string { return unaryOpNames.Name(int(o)) }

// Valid reports whether o is a grammar operator.
func (o UnaryOperator) Valid() bool { return unaryOpNames.Valid(int(o)) }

// MarshalText encodes the grammar name.
func (o UnaryOperator) MarshalText() ([]byte, error) { return unaryOpNames.Marshal(int(o)) }

// UnmarshalText decodes a grammar name.
func (o *UnaryOperator) UnmarshalText(text []byte) error {
	v, err := unaryOpNames.Parse(text)
	*o = UnaryOperator(v)

	return err
}

// String returns the grammar name of the CmpOperator.
func (o CmpOperator) String() string { return cmpOpNames.Name(int(o)) }

// Valid reports whether o is a grammar operator.
func (o CmpOperator) Valid() bool { return cmpOpNames.Valid(int(o)) }

// MarshalText encodes the grammar name.
func (o CmpOperator) MarshalText() ([]byte, error) { return cmpOpNames.Marshal(int(o)) }

// UnmarshalText decodes a grammar name.
func (o *CmpOperator) UnmarshalText(text []byte) error {
	v, err := cmpOpNames.Parse(text)
	*o = CmpOperator(v)

	return err
}

// ExprContexts returns every valid expression context.
func ExprContexts() []ExprContext {
	out := make([]ExprContext, 0, exprContextNames.Len())
	for c := CtxLoad; c.Valid(); c++ {
		out = append(out, c)
	}

	return out
}
