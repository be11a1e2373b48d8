// Package ast35 defines the modern (Python 3.5, with type comments) syntax
// tree produced by the converter.
package ast35

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

	// stmt.
	KindFunctionDef
	KindAsyncFunctionDef
	KindClassDef
	KindReturn
	KindDelete
	KindAssign
	KindAugAssign
	KindFor
	KindAsyncFor
	KindWhile
	KindIf
	KindWith
	KindAsyncWith
	KindRaise
	KindTry
	KindAssert
	KindImport
	KindImportFrom
	KindGlobal
	KindNonlocal
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
	KindAwait
	KindYield
	KindYieldFrom
	KindCompare
	KindCall
	KindNum
	KindStr
	KindBytes
	KindNameConstant
	KindEllipsis
	KindAttribute
	KindSubscript
	KindStarred
	KindName
	KindList
	KindTuple

	// slice.
	KindSlice
	KindExtSlice
	KindIndex

	// Auxiliary productions.
	KindExceptHandler
	KindArguments
	KindArg
	KindKeyword
	KindAlias
	KindWithItem
	KindComprehension
	KindTypeIgnore

	kindCount
)

var kindNames = [kindCount]string{
	KindInvalid:          "",
	KindModule:           "Module",
	KindInteractive:      "Interactive",
	KindExpression:       "Expression",
	KindFunctionType:     "FunctionType",
	KindFunctionDef:      "FunctionDef",
	KindAsyncFunctionDef: "AsyncFunctionDef",
	KindClassDef:         "ClassDef",
	KindReturn:           "Return",
	KindDelete:           "Delete",
	KindAssign:           "Assign",
	KindAugAssign:        "AugAssign",
	KindFor:              "For",
	KindAsyncFor:         "AsyncFor",
	KindWhile:            "While",
	KindIf:               "If",
	KindWith:             "With",
	KindAsyncWith:        "AsyncWith",
	KindRaise:            "Raise",
	KindTry:              "Try",
	KindAssert:           "Assert",
	KindImport:           "Import",
	KindImportFrom:       "ImportFrom",
	KindGlobal:           "Global",
	KindNonlocal:         "Nonlocal",
	KindExpr:             "Expr",
	KindPass:             "Pass",
	KindBreak:            "Break",
	KindContinue:         "Continue",
	KindBoolOp:           "BoolOp",
	KindBinOp:            "BinOp",
	KindUnaryOp:          "UnaryOp",
	KindLambda:           "Lambda",
	KindIfExp:            "IfExp",
	KindDict:             "Dict",
	KindSet:              "Set",
	KindListComp:         "ListComp",
	KindSetComp:          "SetComp",
	KindDictComp:         "DictComp",
	KindGeneratorExp:     "GeneratorExp",
	KindAwait:            "Await",
	KindYield:            "Yield",
	KindYieldFrom:        "YieldFrom",
	KindCompare:          "Compare",
	KindCall:             "Call",
	KindNum:              "Num",
	KindStr:              "Str",
	KindBytes:            "Bytes",
	KindNameConstant:     "NameConstant",
	KindEllipsis:         "Ellipsis",
	KindAttribute:        "Attribute",
	KindSubscript:        "Subscript",
	KindStarred:          "Starred",
	KindName:             "Name",
	KindList:             "List",
	KindTuple:            "Tuple",
	KindSlice:            "Slice",
	KindExtSlice:         "ExtSlice",
	KindIndex:            "Index",
	KindExceptHandler:    "ExceptHandler",
	KindArguments:        "arguments",
	KindArg:              "arg",
	KindKeyword:          "keyword",
	KindAlias:            "alias",
	KindWithItem:         "withitem",
	KindComprehension:    "comprehension",
	KindTypeIgnore:       "TypeIgnore",
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

// Valid reports whether k is a kind of the modern grammar.
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

// New allocates an empty node of the given kind, or nil for invalid kinds.
func New(kind Kind) Node {
	if !kind.Valid() {
		return nil
	}

	return constructors[kind]()
}

//nolint:gochecknoglobals // Kind-indexed constructor table.
var constructors = [kindCount]func() Node{
	KindInvalid:          func() Node { return nil },
	KindModule:           func() Node { return &Module{} },
	KindInteractive:      func() Node { return &Interactive{} },
	KindExpression:       func() Node { return &Expression{} },
	KindFunctionType:     func() Node { return &FunctionType{} },
	KindFunctionDef:      func() Node { return &FunctionDef{} },
	KindAsyncFunctionDef: func() Node { return &AsyncFunctionDef{} },
	KindClassDef:         func() Node { return &ClassDef{} },
	KindReturn:           func() Node { return &Return{} },
	KindDelete:           func() Node { return &Delete{} },
	KindAssign:           func() Node { return &Assign{} },
	KindAugAssign:        func() Node { return &AugAssign{} },
	KindFor:              func() Node { return &For{} },
	KindAsyncFor:         func() Node { return &AsyncFor{} },
	KindWhile:            func() Node { return &While{} },
	KindIf:               func() Node { return &If{} },
	KindWith:             func() Node { return &With{} },
	KindAsyncWith:        func() Node { return &AsyncWith{} },
	KindRaise:            func() Node { return &Raise{} },
	KindTry:              func() Node { return &Try{} },
	KindAssert:           func() Node { return &Assert{} },
	KindImport:           func() Node { return &Import{} },
	KindImportFrom:       func() Node { return &ImportFrom{} },
	KindGlobal:           func() Node { return &Global{} },
	KindNonlocal:         func() Node { return &Nonlocal{} },
	KindExpr:             func() Node { return &ExprStmt{} },
	KindPass:             func() Node { return &Pass{} },
	KindBreak:            func() Node { return &Break{} },
	KindContinue:         func() Node { return &Continue{} },
	KindBoolOp:           func() Node { return &BoolOp{} },
	KindBinOp:            func() Node { return &BinOp{} },
	KindUnaryOp:          func() Node { return &UnaryOp{} },
	KindLambda:           func() Node { return &Lambda{} },
	KindIfExp:            func() Node { return &IfExp{} },
	KindDict:             func() Node { return &Dict{} },
	KindSet:              func() Node { return &Set{} },
	KindListComp:         func() Node { return &ListComp{} },
	KindSetComp:          func() Node { return &SetComp{} },
	KindDictComp:         func() Node { return &DictComp{} },
	KindGeneratorExp:     func() Node { return &GeneratorExp{} },
	KindAwait:            func() Node { return &Await{} },
	KindYield:            func() Node { return &Yield{} },
	KindYieldFrom:        func() Node { return &YieldFrom{} },
	KindCompare:          func() Node { return &Compare{} },
	KindCall:             func() Node { return &Call{} },
	KindNum:              func() Node { return &Num{} },
	KindStr:              func() Node { return &Str{} },
	KindBytes:            func() Node { return &Bytes{} },
	KindNameConstant:     func() Node { return &NameConstant{} },
	KindEllipsis:         func() Node { return &Ellipsis{} },
	KindAttribute:        func() Node { return &Attribute{} },
	KindSubscript:        func() Node { return &Subscript{} },
	KindStarred:          func() Node { return &Starred{} },
	KindName:             func() Node { return &Name{} },
	KindList:             func() Node { return &List{} },
	KindTuple:            func() Node { return &Tuple{} },
	KindSlice:            func() Node { return &Slice{} },
	KindExtSlice:         func() Node { return &ExtSlice{} },
	KindIndex:            func() Node { return &Index{} },
	KindExceptHandler:    func() Node { return &ExceptHandler{} },
	KindArguments:        func() Node { return &Arguments{} },
	KindArg:              func() Node { return &Arg{} },
	KindKeyword:          func() Node { return &Keyword{} },
	KindAlias:            func() Node { return &Alias{} },
	KindWithItem:         func() Node { return &WithItem{} },
	KindComprehension:    func() Node { return &Comprehension{} },
	KindTypeIgnore:       func() Node { return &TypeIgnore{} },
}
