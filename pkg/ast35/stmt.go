package ast35

// Module is the root of a source file.
type Module struct {
	Body        []Stmt        `json:"body"`
	TypeIgnores []*TypeIgnore `json:"type_ignores"`
}

// Interactive is the root of an interactive-mode input.
type Interactive struct {
	Body []Stmt `json:"body"`
}

// Expression is the root of an eval-mode input.
type Expression struct {
	Body Expr `json:"body"`
}

// FunctionType is the root of a function signature type comment.
type FunctionType struct {
	Argtypes []Expr `json:"argtypes"`
	Returns  Expr   `json:"returns"`
}

// TypeIgnore marks a "# type: ignore" comment line.
type TypeIgnore struct {
	Lineno int `json:"lineno"`
}

// FunctionDef is a def statement.
type FunctionDef struct {
	Position

	Name          string     `json:"name"`
	Args          *Arguments `json:"args"`
	Body          []Stmt     `json:"body"`
	DecoratorList []Expr     `json:"decorator_list"`
	Returns       Expr       `json:"returns"`
	TypeComment   *string    `json:"type_comment"`
}

// AsyncFunctionDef is an async def statement.
type AsyncFunctionDef struct {
	Position

	Name          string     `json:"name"`
	Args          *Arguments `json:"args"`
	Body          []Stmt     `json:"body"`
	DecoratorList []Expr     `json:"decorator_list"`
	Returns       Expr       `json:"returns"`
	TypeComment   *string    `json:"type_comment"`
}

// ClassDef is a class statement.
type ClassDef struct {
	Position

	Name          string     `json:"name"`
	Bases         []Expr     `json:"bases"`
	Keywords      []*Keyword `json:"keywords"`
	Body          []Stmt     `json:"body"`
	DecoratorList []Expr     `json:"decorator_list"`
}

// Return is a return statement.
type Return struct {
	Position

	Value Expr `json:"value"`
}

// Delete is a del statement.
type Delete struct {
	Position

	Targets []Expr `json:"targets"`
}

// Assign is an assignment statement.
type Assign struct {
	Position

	Targets     []Expr  `json:"targets"`
	Value       Expr    `json:"value"`
	TypeComment *string `json:"type_comment"`
}

// AugAssign is an augmented assignment.
type AugAssign struct {
	Position

	Target Expr     `json:"target"`
	Op     Operator `json:"op"`
	Value  Expr     `json:"value"`
}

// For is a for loop.
type For struct {
	Position

	Target      Expr    `json:"target"`
	Iter        Expr    `json:"iter"`
	Body        []Stmt  `json:"body"`
	Orelse      []Stmt  `json:"orelse"`
	TypeComment *string `json:"type_comment"`
}

// AsyncFor is an async for loop.
type AsyncFor struct {
	Position

	Target      Expr    `json:"target"`
	Iter        Expr    `json:"iter"`
	Body        []Stmt  `json:"body"`
	Orelse      []Stmt  `json:"orelse"`
	TypeComment *string `json:"type_comment"`
}

// While is a while loop.
type While struct {
	Position

	Test   Expr   `json:"test"`
	Body   []Stmt `json:"body"`
	Orelse []Stmt `json:"orelse"`
}

// If is an if statement.
type If struct {
	Position

	Test   Expr   `json:"test"`
	Body   []Stmt `json:"body"`
	Orelse []Stmt `json:"orelse"`
}

// With is a with statement over one or more context managers.
type With struct {
	Position

	Items       []*WithItem `json:"items"`
	Body        []Stmt      `json:"body"`
	TypeComment *string     `json:"type_comment"`
}

// AsyncWith is an async with statement.
type AsyncWith struct {
	Position

	Items       []*WithItem `json:"items"`
	Body        []Stmt      `json:"body"`
	TypeComment *string     `json:"type_comment"`
}

// Raise raises Exc, optionally chained from Cause. Both nil is a bare
// re-raise.
type Raise struct {
	Position

	Exc   Expr `json:"exc"`
	Cause Expr `json:"cause"`
}

// Try is the unified try statement.
type Try struct {
	Position

	Body      []Stmt           `json:"body"`
	Handlers  []*ExceptHandler `json:"handlers"`
	Orelse    []Stmt           `json:"orelse"`
	Finalbody []Stmt           `json:"finalbody"`
}

// Assert is an assert statement.
type Assert struct {
	Position

	Test Expr `json:"test"`
	Msg  Expr `json:"msg"`
}

// Import is an import statement.
type Import struct {
	Position

	Names []*Alias `json:"names"`
}

// ImportFrom is a from-import statement.
type ImportFrom struct {
	Position

	Module *string  `json:"module"`
	Names  []*Alias `json:"names"`
	Level  *int     `json:"level"`
}

// Global is a global declaration.
type Global struct {
	Position

	Names []string `json:"names"`
}

// Nonlocal is a nonlocal declaration.
type Nonlocal struct {
	Position

	Names []string `json:"names"`
}

// ExprStmt is an expression statement (grammar name "Expr").
type ExprStmt struct {
	Position

	Value Expr `json:"value"`
}

// Pass is a pass statement.
type Pass struct {
	Position
}

// Break is a break statement.
type Break struct {
	Position
}

// Continue is a continue statement.
type Continue struct {
	Position
}

// ExceptHandler is one except clause; Name is the bound identifier.
type ExceptHandler struct {
	Position

	Type Expr    `json:"type"`
	Name *string `json:"name"`
	Body []Stmt  `json:"body"`
}

// Arguments is a parameter list.
type Arguments struct {
	Args       []*Arg `json:"args"`
	Vararg     *Arg   `json:"vararg"`
	Kwonlyargs []*Arg `json:"kwonlyargs"`
	KwDefaults []Expr `json:"kw_defaults"`
	Kwarg      *Arg   `json:"kwarg"`
	Defaults   []Expr `json:"defaults"`
}

// Arg is a single parameter.
type Arg struct {
	Position

	Arg         string  `json:"arg"`
	Annotation  Expr    `json:"annotation"`
	TypeComment *string `json:"type_comment"`
}

// Keyword is a keyword argument; a nil Arg is a "**expr" expansion.
type Keyword struct {
	Arg   *string `json:"arg"`
	Value Expr    `json:"value"`
}

// Alias is one imported name.
type Alias struct {
	Name   string  `json:"name"`
	Asname *string `json:"asname"`
}

// WithItem is one context manager of a with statement.
type WithItem struct {
	ContextExpr  Expr `json:"context_expr"`
	OptionalVars Expr `json:"optional_vars"`
}

// Comprehension is one for-clause of a comprehension.
type Comprehension struct {
	Target Expr   `json:"target"`
	Iter   Expr   `json:"iter"`
	Ifs    []Expr `json:"ifs"`
}

func (*Module) Kind() Kind           { return KindModule }
func (*Interactive) Kind() Kind      { return KindInteractive }
func (*Expression) Kind() Kind       { return KindExpression }
func (*FunctionType) Kind() Kind     { return KindFunctionType }
func (*TypeIgnore) Kind() Kind       { return KindTypeIgnore }
func (*FunctionDef) Kind() Kind      { return KindFunctionDef }
func (*AsyncFunctionDef) Kind() Kind { return KindAsyncFunctionDef }
func (*ClassDef) Kind() Kind         { return KindClassDef }
func (*Return) Kind() Kind           { return KindReturn }
func (*Delete) Kind() Kind           { return KindDelete }
func (*Assign) Kind() Kind           { return KindAssign }
func (*AugAssign) Kind() Kind        { return KindAugAssign }
func (*For) Kind() Kind              { return KindFor }
func (*AsyncFor) Kind() Kind         { return KindAsyncFor }
func (*While) Kind() Kind            { return KindWhile }
func (*If) Kind() Kind               { return KindIf }
func (*With) Kind() Kind             { return KindWith }
func (*AsyncWith) Kind() Kind        { return KindAsyncWith }
func (*Raise) Kind() Kind            { return KindRaise }
func (*Try) Kind() Kind              { return KindTry }
func (*Assert) Kind() Kind           { return KindAssert }
func (*Import) Kind() Kind           { return KindImport }
func (*ImportFrom) Kind() Kind       { return KindImportFrom }
func (*Global) Kind() Kind           { return KindGlobal }
func (*Nonlocal) Kind() Kind         { return KindNonlocal }
func (*ExprStmt) Kind() Kind         { return KindExpr }
func (*Pass) Kind() Kind             { return KindPass }
func (*Break) Kind() Kind            { return KindBreak }
func (*Continue) Kind() Kind         { return KindContinue }
func (*ExceptHandler) Kind() Kind    { return KindExceptHandler }
func (*Arguments) Kind() Kind        { return KindArguments }
func (*Arg) Kind() Kind              { return KindArg }
func (*Keyword) Kind() Kind          { return KindKeyword }
func (*Alias) Kind() Kind            { return KindAlias }
func (*WithItem) Kind() Kind         { return KindWithItem }
func (*Comprehension) Kind() Kind    { return KindComprehension }

func (*Module) modNode()       {}
func (*Interactive) modNode()  {}
func (*Expression) modNode()   {}
func (*FunctionType) modNode() {}

func (*FunctionDef) stmtNode()      {}
func (*AsyncFunctionDef) stmtNode() {}
func (*ClassDef) stmtNode()         {}
func (*Return) stmtNode()           {}
func (*Delete) stmtNode()           {}
func (*Assign) stmtNode()           {}
func (*AugAssign) stmtNode()        {}
func (*For) stmtNode()              {}
func (*AsyncFor) stmtNode()         {}
func (*While) stmtNode()            {}
func (*If) stmtNode()               {}
func (*With) stmtNode()             {}
func (*AsyncWith) stmtNode()        {}
func (*Raise) stmtNode()            {}
func (*Try) stmtNode()              {}
func (*Assert) stmtNode()           {}
func (*Import) stmtNode()           {}
func (*ImportFrom) stmtNode()       {}
func (*Global) stmtNode()           {}
func (*Nonlocal) stmtNode()         {}
func (*ExprStmt) stmtNode()         {}
func (*Pass) stmtNode()             {}
func (*Break) stmtNode()            {}
func (*Continue) stmtNode()         {}
