// Package ast27 defines the legacy (Python 2.7, with type comments) syntax
// tree consumed by the converter.
//
// The family is closed: every grammar production has exactly one node struct
// and one Kind. Operators and expression contexts are enum scalars rather
// than nodes.
package ast27

// Kind identifies the grammar production a node represents.
type Kind uint8

// Node kinds, grouped by grammar category.
const (
	KindInvalid Kind = iota

	// mod.
	KindModule
	KindInteractive
	KindExpression
	KindFunctionType
	KindSuite

	// stmt.
	KindFunctionDef
	KindClassDef
	KindReturn
	KindDelete
	KindAssign
	KindAugAssign
	KindPrint
	KindFor
	KindWhile
	KindIf
	KindWith
	KindRaise
	KindTryExcept
	KindTryFinally
	KindAssert
	KindImport
	KindImportFrom
	KindExec
	KindGlobal
	KindExpr
	KindPass
	KindBreak
	KindContinue

	// expr.
	KindBoolOp
	KindBinOp
	KindUnaryOp
	KindLambda
	KindIfExp
	KindDict
	KindSet
	KindListComp
	KindSetComp
	KindDictComp
	KindGeneratorExp
	KindYield
	KindCompare
	KindCall
	KindRepr
	KindNum
	KindStr
	KindAttribute
	KindSubscript
	KindName
	KindList
	KindTuple

	// slice.
	KindEllipsis
	KindSlice
	KindExtSlice
	KindIndex

	// Auxiliary productions.
	KindExceptHandler
	KindArguments
	KindKeyword
	KindAlias
	KindComprehension
	KindTypeIgnore

	kindCount
)

// kindNames holds the grammar name of every kind. Names match the node class
// names of the legacy grammar, including the lower-case auxiliary ones.
var kindNames = [kindCount]string{
	KindInvalid:       "",
	KindModule:        "Module",
	KindInteractive:   "Interactive",
	KindExpression:    "Expression",
	KindFunctionType:  "FunctionType",
	KindSuite:         "Suite",
	KindFunctionDef:   "FunctionDef",
	KindClassDef:      "ClassDef",
	KindReturn:        "Return",
	KindDelete:        "Delete",
	KindAssign:        "Assign",
	KindAugAssign:     "AugAssign",
	KindPrint:         "Print",
	KindFor:           "For",
	KindWhile:         "While",
	KindIf:            "If",
	KindWith:          "With",
	KindRaise:         "Raise",
	KindTryExcept:     "TryExcept",
	KindTryFinally:    "TryFinally",
	KindAssert:        "Assert",
	KindImport:        "Import",
	KindImportFrom:    "ImportFrom",
	KindExec:          "Exec",
	KindGlobal:        "Global",
	KindExpr:          "Expr",
	KindPass:          "Pass",
	KindBreak:         "Break",
	KindContinue:      "Continue",
	KindBoolOp:        "BoolOp",
	KindBinOp:         "BinOp",
	KindUnaryOp:       "UnaryOp",
	KindLambda:        "Lambda",
	KindIfExp:         "IfExp",
	KindDict:          "Dict",
	KindSet:           "Set",
	KindListComp:      "ListComp",
	KindSetComp:       "SetComp",
	KindDictComp:      "DictComp",
	KindGeneratorExp:  "GeneratorExp",
	KindYield:         "Yield",
	KindCompare:       "Compare",
	KindCall:          "Call",
	KindRepr:          "Repr",
	KindNum:           "Num",
	KindStr:           "Str",
	KindAttribute:     "Attribute",
	KindSubscript:     "Subscript",
	KindName:          "Name",
	KindList:          "List",
	KindTuple:         "Tuple",
	KindEllipsis:      "Ellipsis",
	KindSlice:         "Slice",
	KindExtSlice:      "ExtSlice",
	KindIndex:         "Index",
	KindExceptHandler: "ExceptHandler",
	KindArguments:     "arguments",
	KindKeyword:       "keyword",
	KindAlias:         "alias",
	KindComprehension: "comprehension",
	KindTypeIgnore:    "TypeIgnore",
}

//nolint:gochecknoglobals // Lookup table built once from kindNames.
var kindByName = func() map[string]Kind {
	m := make(map[string]Kind, kindCount)
	for k := KindInvalid + 1; k < kindCount; k++ {
		m[kindNames[k]] = k
	}

	return m
}()

// String returns the grammar name of the kind.
func (k Kind) String() string {
	if !k.Valid() {
		return "Kind(invalid)"
	}

	return kindNames[k]
}

// Valid reports whether k is a kind the legacy grammar can construct.
func (k Kind) Valid() bool {
	return k > KindInvalid && k < kindCount
}

// ParseKind resolves a grammar name to its Kind.
func ParseKind(name string) (Kind, bool) {
	k, ok := kindByName[name]

	return k, ok
}

// Kinds returns every valid kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, 0, kindCount-1)
	for k := KindInvalid + 1; k < kindCount; k++ {
		out = append(out, k)
	}

	return out
}

// New allocates an empty node of the given kind. It returns nil for kinds
// outside the grammar.
func New(kind Kind) Node {
	if !kind.Valid() {
		return nil
	}

	return constructors[kind]()
}

//nolint:gochecknoglobals // Kind-indexed constructor table.
var constructors = [kindCount]func() Node{
	KindInvalid:       func() Node { return nil },
	KindModule:        func() Node { return &Module{} },
	KindInteractive:   func() Node { return &Interactive{} },
	KindExpression:    func() Node { return &Expression{} },
	KindFunctionType:  func() Node { return &FunctionType{} },
	KindSuite:         func() Node { return &Suite{} },
	KindFunctionDef:   func() Node { return &FunctionDef{} },
	KindClassDef:      func() Node { return &ClassDef{} },
	KindReturn:        func() Node { return &Return{} },
	KindDelete:        func() Node { return &Delete{} },
	KindAssign:        func() Node { return &Assign{} },
	KindAugAssign:     func() Node { return &AugAssign{} },
	KindPrint:         func() Node { return &Print{} },
	KindFor:           func() Node { return &For{} },
	KindWhile:         func() Node { return &While{} },
	KindIf:            func() Node { return &If{} },
	KindWith:          func() Node { return &With{} },
	KindRaise:         func() Node { return &Raise{} },
	KindTryExcept:     func() Node { return &TryExcept{} },
	KindTryFinally:    func() Node { return &TryFinally{} },
	KindAssert:        func() Node { return &Assert{} },
	KindImport:        func() Node { return &Import{} },
	KindImportFrom:    func() Node { return &ImportFrom{} },
	KindExec:          func() Node { return &Exec{} },
	KindGlobal:        func() Node { return &Global{} },
	KindExpr:          func() Node { return &ExprStmt{} },
	KindPass:          func() Node { return &Pass{} },
	KindBreak:         func() Node { return &Break{} },
	KindContinue:      func() Node { return &Continue{} },
	KindBoolOp:        func() Node { return &BoolOp{} },
	KindBinOp:         func() Node { return &BinOp{} },
	KindUnaryOp:       func() Node { return &UnaryOp{} },
	KindLambda:        func() Node { return &Lambda{} },
	KindIfExp:         func() Node { return &IfExp{} },
	KindDict:          func() Node { return &Dict{} },
	KindSet:           func() Node { return &Set{} },
	KindListComp:      func() Node { return &ListComp{} },
	KindSetComp:       func() Node { return &SetComp{} },
	KindDictComp:      func() Node { return &DictComp{} },
	KindGeneratorExp:  func() Node { return &GeneratorExp{} },
	KindYield:         func() Node { return &Yield{} },
	KindCompare:       func() Node { return &Compare{} },
	KindCall:          func() Node { return &Call{} },
	KindRepr:          func() Node { return &Repr{} },
	KindNum:           func() Node { return &Num{} },
	KindStr:           func() Node { return &Str{} },
	KindAttribute:     func() Node { return &Attribute{} },
	KindSubscript:     func() Node { return &Subscript{} },
	KindName:          func() Node { return &Name{} },
	KindList:          func() Node { return &List{} },
	KindTuple:         func() Node { return &Tuple{} },
	KindEllipsis:      func() Node { return &Ellipsis{} },
	KindSlice:         func() Node { return &Slice{} },
	KindExtSlice:      func() Node { return &ExtSlice{} },
	KindIndex:         func() Node { return &Index{} },
	KindExceptHandler: func() Node { return &ExceptHandler{} },
	KindArguments:     func() Node { return &Arguments{} },
	KindKeyword:       func() Node { return &Keyword{} },
	KindAlias:         func() Node { return &Alias{} },
	KindComprehension: func() Node { return &Comprehension{} },
	KindTypeIgnore:    func() Node { return &TypeIgnore{} },
}
