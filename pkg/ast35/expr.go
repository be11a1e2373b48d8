package ast35

// BoolOp is a chain of "and" or "or" operands.
type BoolOp struct {
	Position

	Op     BoolOperator `json:"op"`
	Values []Expr       `json:"values"`
}

// BinOp is a binary operation.
type BinOp struct {
	Position

	Left  Expr     `json:"left"`
	Op    Operator `json:"op"`
	Right Expr     `json:"right"`
}

// UnaryOp is a unary operation.
type UnaryOp struct {
	Position

	Op      UnaryOperator `json:"op"`
	Operand Expr          `json:"operand"`
}

// Lambda is a lambda expression.
type Lambda struct {
	Position

	Args *Arguments `json:"args"`
	Body Expr       `json:"body"`
}

// IfExp is a conditional expression.
type IfExp struct {
	Position

	Test   Expr `json:"test"`
	Body   Expr `json:"body"`
	Orelse Expr `json:"orelse"`
}

// Dict is a dict display.
type Dict struct {
	Position

	Keys   []Expr `json:"keys"`
	Values []Expr `json:"values"`
}

// Set is a set display.
type Set struct {
	Position

	Elts []Expr `json:"elts"`
}

// ListComp is a list comprehension.
type ListComp struct {
	Position

	Elt        Expr             `json:"elt"`
	Generators []*Comprehension `json:"generators"`
}

// SetComp is a set comprehension.
type SetComp struct {
	Position

	Elt        Expr             `json:"elt"`
	Generators []*Comprehension `json:"generators"`
}

// DictComp is a dict comprehension.
type DictComp struct {
	Position

	Key        Expr             `json:"key"`
	Value      Expr             `json:"value"`
	Generators []*Comprehension `json:"generators"`
}

// GeneratorExp is a generator expression.
type GeneratorExp struct {
	Position

	Elt        Expr             `json:"elt"`
	Generators []*Comprehension `json:"generators"`
}

// Await is an await expression.
type Await struct {
	Position

	Value Expr `json:"value"`
}

// Yield is a yield expression.
type Yield struct {
	Position

	Value Expr `json:"value"`
}

// YieldFrom is a "yield from" expression.
type YieldFrom struct {
	Position

	Value Expr `json:"value"`
}

// Compare is a chained comparison.
type Compare struct {
	Position

	Left        Expr          `json:"left"`
	Ops         []CmpOperator `json:"ops"`
	Comparators []Expr        `json:"comparators"`
}

// Call is a call expression. Spread arguments are Starred entries of Args;
// "**" expansions are Keywords with a nil Arg.
type Call struct {
	Position

	Func     Expr       `json:"func"`
	Args     []Expr     `json:"args"`
	Keywords []*Keyword `json:"keywords"`
}

// Num is a numeric literal in its textual form.
type Num struct {
	Position

	N Number `json:"n"`
}

// Str is a text string literal.
type Str struct {
	Position

	S string `json:"s"`
}

// Bytes is a byte string literal.
type Bytes struct {
	Position

	S []byte `json:"s"`
}

// NameConstant is None, True or False.
type NameConstant struct {
	Position

	Value Singleton `json:"value"`
}

// Ellipsis is the "..." literal.
type Ellipsis struct {
	Position
}

// Attribute is an attribute reference.
type Attribute struct {
	Position

	Value Expr        `json:"value"`
	Attr  string      `json:"attr"`
	Ctx   ExprContext `json:"ctx"`
}

// Subscript is a subscription or slicing.
type Subscript struct {
	Position

	Value Expr        `json:"value"`
	Slice Slicer      `json:"slice"`
	Ctx   ExprContext `json:"ctx"`
}

// Starred is a "*expr" spread or target.
type Starred struct {
	Position

	Value Expr        `json:"value"`
	Ctx   ExprContext `json:"ctx"`
}

// Name is an identifier reference.
type Name struct {
	Position

	ID  string      `json:"id"`
	Ctx ExprContext `json:"ctx"`
}

// List is a list display or target.
type List struct {
	Position

	Elts []Expr      `json:"elts"`
	Ctx  ExprContext `json:"ctx"`
}

// Tuple is a tuple display or target.
type Tuple struct {
	Position

	Elts []Expr      `json:"elts"`
	Ctx  ExprContext `json:"ctx"`
}

// Slice is a "lower:upper:step" slice.
type Slice struct {
	Lower Expr `json:"lower"`
	Upper Expr `json:"upper"`
	Step  Expr `json:"step"`
}

// ExtSlice is a multi-dimensional slice.
type ExtSlice struct {
	Dims []Slicer `json:"dims"`
}

// Index is a plain subscript index.
type Index struct {
	Value Expr `json:"value"`
}

func (*BoolOp) Kind() Kind       { return KindBoolOp }
func (*BinOp) Kind() Kind        { return KindBinOp }
func (*UnaryOp) Kind() Kind      { return KindUnaryOp }
func (*Lambda) Kind() Kind       { return KindLambda }
func (*IfExp) Kind() Kind        { return KindIfExp }
func (*Dict) Kind() Kind         { return KindDict }
func (*Set) Kind() Kind          { return KindSet }
func (*ListComp) Kind() Kind     { return KindListComp }
func (*SetComp) Kind() Kind      { return KindSetComp }
func (*DictComp) Kind() Kind     { return KindDictComp }
func (*GeneratorExp) Kind() Kind { return KindGeneratorExp }
func (*Await) Kind() Kind        { return KindAwait }
func (*Yield) Kind() Kind        { return KindYield }
func (*YieldFrom) Kind() Kind    { return KindYieldFrom }
func (*Compare) Kind() Kind      { return KindCompare }
func (*Call) Kind() Kind         { return KindCall }
func (*Num) Kind() Kind          { return KindNum }
func (*Str) Kind() Kind          { return KindStr }
func (*Bytes) Kind() Kind        { return KindBytes }
func (*NameConstant) Kind() Kind { return KindNameConstant }
func (*Ellipsis) Kind() Kind     { return KindEllipsis }
func (*Attribute) Kind() Kind    { return KindAttribute }
func (*Subscript) Kind() Kind    { return KindSubscript }
func (*Starred) Kind() Kind      { return KindStarred }
func (*Name) Kind() Kind         { return KindName }
func (*List) Kind() Kind         { return KindList }
func (*Tuple) Kind() Kind        { return KindTuple }
func (*Slice) Kind() Kind        { return KindSlice }
func (*ExtSlice) Kind() Kind     { return KindExtSlice }
func (*Index) Kind() Kind        { return KindIndex }

func (*BoolOp) exprNode()       {}
func (*BinOp) exprNode()        {}
func (*UnaryOp) exprNode()      {}
func (*Lambda) exprNode()       {}
func (*IfExp) exprNode()        {}
func (*Dict) exprNode()         {}
func (*Set) exprNode()          {}
func (*ListComp) exprNode()     {}
func (*SetComp) exprNode()      {}
func (*DictComp) exprNode()     {}
func (*GeneratorExp) exprNode() {}
func (*Await) exprNode()        {}
func (*Yield) exprNode()        {}
func (*YieldFrom) exprNode()    {}
func (*Compare) exprNode()      {}
func (*Call) exprNode()         {}
func (*Num) exprNode()          {}
func (*Str) exprNode()          {}
func (*Bytes) exprNode()        {}
func (*NameConstant) exprNode() {}
func (*Ellipsis) exprNode()     {}
func (*Attribute) exprNode()    {}
func (*Subscript) exprNode()    {}
func (*Starred) exprNode()      {}
func (*Name) exprNode()         {}
func (*List) exprNode()         {}
func (*Tuple) exprNode()        {}

func (*Slice) sliceNode()    {}
func (*ExtSlice) sliceNode() {}
func (*Index) sliceNode()    {}
