package ast35

import (
	"github.com/Sumatoshi-tech/pyconv/internal/enumtext"
	"github.com/Sumatoshi-tech/pyconv/internal/literal"
)

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

// Operator is a binary operator.
type Operator uint8

// Binary operators.
const (
	OpAdd Operator = iota + 1
	OpSub
	OpMult
	OpMatMult
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

// Singleton is the value of a NameConstant.
type Singleton uint8

// Singletons.
const (
	SingletonNone Singleton = iota + 1
	SingletonTrue
	SingletonFalse
)

//nolint:gochecknoglobals // Immutable name tables.
var (
	exprContextNames = enumtext.New("expr_context", "", "Load", "Store", "Del", "AugLoad", "AugStore", "Param")
	boolOpNames      = enumtext.New("boolop", "", "And", "Or")
	operatorNames    = enumtext.New("operator", "",
		"Add", "Sub", "Mult", "MatMult", "Div", "Mod", "Pow", "LShift", "RShift", "BitOr", "BitXor", "BitAnd", "FloorDiv")
	unaryOpNames   = enumtext.New("unaryop", "", "Invert", "Not", "UAdd", "USub")
	cmpOpNames     = enumtext.New("cmpop", "", "Eq", "NotEq", "Lt", "LtE", "Gt", "GtE", "Is", "IsNot", "In", "NotIn")
	singletonNames = enumtext.New("singleton", "", "None", "True", "False")
)

// String returns the grammar name of the ExprContext.
func (c ExprContext) String() string { return exprContextNames.Name(int(c)) }

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

// MarshalText encodes the grammar name.
func (o CmpOperator) MarshalText() ([]byte, error) { return cmpOpNames.Marshal(int(o)) }

// UnmarshalText decodes a grammar name.
func (o *CmpOperator) UnmarshalText(text []byte) error {
	v, err := cmpOpNames.Parse(text)
	*o = CmpOperator(v)

	return err
}

// String returns the grammar name of the Singleton.
func (s Singleton) String() string { return singletonNames.Name(int(s)) }

// MarshalText encodes the singleton name.
func (s Singleton) MarshalText() ([]byte, error) { return singletonNames.Marshal(int(s)) }

// UnmarshalText decodes a singleton name.
func (s *Singleton) UnmarshalText(text []byte) error {
	v, err := singletonNames.Parse(text)
	*s = Singleton(v)

	return err
}

// Number is a numeric literal in its textual form.
type Number string

// MarshalJSON emits the literal as a bare JSON number when it is one.
func (n Number) MarshalJSON() ([]byte, error) {
	return literal.MarshalNumber(string(n))
}

// UnmarshalJSON accepts a JSON number or a JSON string.
func (n *Number) UnmarshalJSON(data []byte) error {
	text, err := literal.UnmarshalNumber(data)
	if err != nil {
		return err
	}

	*n = Number(text)

	return nil
}
