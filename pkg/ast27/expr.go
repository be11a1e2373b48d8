package ast27

// BoolOp is a chain of "and" or "or" operands.
type BoolOp struct {
	Position

	Op     BoolOperator `json:"op"`
	Values []Expr       `json:"values"`
}

// BinOp is a binary arithmetic or bitwise operation.
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

// Yield is a yield expression.
type Yield struct {
	Position

	Value Expr `json:"value"`
}

// Compare is a chained comparison; len(Ops) == len(Comparators).
type Compare struct {
	Position

	Left        Expr          `json:"left"`
	Ops         []CmpOperator `json:"ops"`
	Comparators []Expr        `json:"comparators"`
}

// Call is a call expression. Starargs and Kwargs are the "*args" and
// "**kwargs" operands, kept apart from the ordinary argument lists.
type Call struct {
	Position

	Func     Expr       `json:"func"`
	Args     []Expr     `json:"args"`
	Keywords []*Keyword `json:"keywords"`
	Starargs Expr       `json:"starargs"`
	Kwargs   Expr       `json:"kwargs"`
}

// Repr is the backtick repr expression.
type Repr struct {
	Position

	Value Expr `json:"value"`
}

// Num is a numeric literal.
type Num struct {
	Position

	N Number `json:"n"`
}

// Str is a string literal. S holds either text or byte content.
type Str struct {
	Position

	S StrValue `json:"s"`
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

// Name is an identifier reference.
type Name struct {
	Position

	ID  string      `json:"id"`
	Ctx ExprContext `json:"ctx"`
}

// List is a list display or list target.
type List struct {
	Position

	Elts []Expr      `json:"elts"`
	Ctx  ExprContext `json:"ctx"`
}

// Tuple is a tuple display or tuple target.
type Tuple struct {
	Position

	Elts []Expr      `json:"elts"`
	Ctx  ExprContext `json:"ctx"`
}

// Ellipsis is the "..." slice; the legacy grammar allows it only inside a
// subscript.
type Ellipsis struct{}

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
func (*Yield) Kind() Kind        { return KindYield }
func (*Compare) Kind() Kind      { return KindCompare }
func (*Call) Kind() Kind         { return KindCall }
func (*Repr) Kind() Kind         { return KindRepr }
func (*Num) Kind() Kind          { return KindNum }
func (*Str) Kind() Kind          { return KindStr }
func (*Attribute) Kind() Kind    { return KindAttribute }
func (*Subscript) Kind() Kind    { return KindSubscript }
func (*Name) Kind() Kind         { return KindName }
func (*List) Kind() Kind         { return KindList }
func (*Tuple) Kind() Kind        { return KindTuple }
func (*Ellipsis) Kind() Kind     { return KindEllipsis }
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
func (*Yield) exprNode()        {}
func (*Compare) exprNode()      {}
func (*Call) exprNode()         {}
func (*Repr) exprNode()         {}
func (*Num) exprNode()          {}
func (*Str) exprNode()          {}
func (*Attribute) exprNode()    {}
func (*Subscript) exprNode()    {}
func (*Name) exprNode()         {}
func (*List) exprNode()         {}
func (*Tuple) exprNode()        {}

func (*Ellipsis) sliceNode() {}
func (*Slice) sliceNode()    {}
func (*ExtSlice) sliceNode() {}
func (*Index) sliceNode()    {}
