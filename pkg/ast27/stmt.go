package ast27

// Module is the root of a parsed source file.
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

// FunctionType is the root of a parsed function signature type comment.
type FunctionType struct {
	Argtypes []Expr `json:"argtypes"`
	Returns  Expr   `json:"returns"`
}

// Suite is the legacy-only root used by the old parser module.
type Suite struct {
	Body []Stmt `json:"body"`
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
	TypeComment   *string    `json:"type_comment"`
}

// ClassDef is a class statement.
type ClassDef struct {
	Position

	Name          string `json:"name"`
	Bases         []Expr `json:"bases"`
	Body          []Stmt `json:"body"`
	DecoratorList []Expr `json:"decorator_list"`
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

// AugAssign is an augmented assignment such as "x += 1".
type AugAssign struct {
	Position

	Target Expr     `json:"target"`
	Op     Operator `json:"op"`
	Value  Expr     `json:"value"`
}

// Print is the print statement. Dest is the ">>stream" operand; Nl is false
// when the statement ends with a trailing comma.
type Print struct {
	Position

	Dest   Expr   `json:"dest"`
	Values []Expr `json:"values"`
	Nl     bool   `json:"nl"`
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

// While is a while loop.
type While struct {
	Position

	Test   Expr   `json:"test"`
	Body   []Stmt `json:"body"`
	Orelse []Stmt `json:"orelse"`
}

// If is an if statement; elif chains nest in Orelse.
type If struct {
	Position

	Test   Expr   `json:"test"`
	Body   []Stmt `json:"body"`
	Orelse []Stmt `json:"orelse"`
}

// With is a single-manager with statement. "with a, b:" is represented as
// nested With nodes.
type With struct {
	Position

	ContextExpr  Expr    `json:"context_expr"`
	OptionalVars Expr    `json:"optional_vars"`
	Body         []Stmt  `json:"body"`
	TypeComment  *string `json:"type_comment"`
}

// Raise is the three-part raise statement: "raise type, inst, tback".
type Raise struct {
	Position

	Type  Expr `json:"type"`
	Inst  Expr `json:"inst"`
	Tback Expr `json:"tback"`
}

// TryExcept is a try statement with except clauses and no finally clause.
type TryExcept struct {
	Position

	Body     []Stmt           `json:"body"`
	Handlers []*ExceptHandler `json:"handlers"`
	Orelse   []Stmt           `json:"orelse"`
}

// TryFinally is a try statement with a finally clause. A try with both
// except and finally clauses is a TryFinally whose body is one TryExcept.
type TryFinally struct {
	Position

	Body      []Stmt `json:"body"`
	Finalbody []Stmt `json:"finalbody"`
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

// Exec is the exec statement: "exec body in globals, locals".
type Exec struct {
	Position

	Body    Expr `json:"body"`
	Globals Expr `json:"globals"`
	Locals  Expr `json:"locals"`
}

// Global is a global declaration.
type Global struct {
	Position

	Names []string `json:"names"`
}

// ExprStmt is an expression used as a statement (grammar name "Expr").
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

// ExceptHandler is one except clause. Name is the binding target, which the
// legacy grammar allows to be any assignable expression.
type ExceptHandler struct {
	Position

	Type Expr   `json:"type"`
	Name Expr   `json:"name"`
	Body []Stmt `json:"body"`
}

// Arguments is a parameter list. Args may contain Tuple targets for nested
// parameter unpacking. TypeComments holds per-parameter type comments in the
// order args, vararg, kwarg.
type Arguments struct {
	Args         []Expr    `json:"args"`
	Vararg       *string   `json:"vararg"`
	Kwarg        *string   `json:"kwarg"`
	Defaults     []Expr    `json:"defaults"`
	TypeComments []*string `json:"type_comments"`
}

// Keyword is a keyword argument in a call.
type Keyword struct {
	Arg   string `json:"arg"`
	Value Expr   `json:"value"`
}

// Alias is one imported name.
type Alias struct {
	Name   string  `json:"name"`
	Asname *string `json:"asname"`
}

// Comprehension is one for-clause of a comprehension.
type Comprehension struct {
	Target Expr   `json:"target"`
	Iter   Expr   `json:"iter"`
	Ifs    []Expr `json:"ifs"`
}

func (*Module) Kind() Kind        { return KindModule }
func (*Interactive) Kind() Kind   { return KindInteractive }
func (*Expression) Kind() Kind    { return KindExpression }
func (*FunctionType) Kind() Kind  { return KindFunctionType }
func (*Suite) Kind() Kind         { return KindSuite }
func (*TypeIgnore) Kind() Kind    { return KindTypeIgnore }
func (*FunctionDef) Kind() Kind   { return KindFunctionDef }
func (*ClassDef) Kind() Kind      { return KindClassDef }
func (*Return) Kind() Kind        { return KindReturn }
func (*Delete) Kind() Kind        { return KindDelete }
func (*Assign) Kind() Kind        { return KindAssign }
func (*AugAssign) Kind() Kind     { return KindAugAssign }
func (*Print) Kind() Kind         { return KindPrint }
func (*For) Kind() Kind           { return KindFor }
func (*While) Kind() Kind         { return KindWhile }
func (*If) Kind() Kind            { return KindIf }
func (*With) Kind() Kind          { return KindWith }
func (*Raise) Kind() Kind         { return KindRaise }
func (*TryExcept) Kind() Kind     { return KindTryExcept }
func (*TryFinally) Kind() Kind    { return KindTryFinally }
func (*Assert) Kind() Kind        { return KindAssert }
func (*Import) Kind() Kind        { return KindImport }
func (*ImportFrom) Kind() Kind    { return KindImportFrom }
func (*Exec) Kind() Kind          { return KindExec }
func (*Global) Kind() Kind        { return KindGlobal }
func (*ExprStmt) Kind() Kind      { return KindExpr }
func (*Pass) Kind() Kind          { return KindPass }
func (*Break) Kind() Kind         { return KindBreak }
func (*Continue) Kind() Kind      { return KindContinue }
func (*ExceptHandler) Kind() Kind { return KindExceptHandler }
func (*Arguments) Kind() Kind     { return KindArguments }
func (*Keyword) Kind() Kind       { return KindKeyword }
func (*Alias) Kind() Kind         { return KindAlias }
func (*Comprehension) Kind() Kind { return KindComprehension }

func (*Module) modNode()       {}
func (*Interactive) modNode()  {}
func (*Expression) modNode()   {}
func (*FunctionType) modNode() {}
func (*Suite) modNode()        {}

func (*FunctionDef) stmtNode() {}
func (*ClassDef) stmtNode()    {}
func (*Return) stmtNode()      {}
func (*Delete) stmtNode()      {}
func (*Assign) stmtNode()      {}
func (*AugAssign) stmtNode()   {}
func (*Print) stmtNode()       {}
func (*For) stmtNode()         {}
func (*While) stmtNode()       {}
func (*If) stmtNode()          {}
func (*With) stmtNode()        {}
func (*Raise) stmtNode()       {}
func (*TryExcept) stmtNode()   {}
func (*TryFinally) stmtNode()  {}
func (*Assert) stmtNode()      {}
func (*Import) stmtNode()      {}
func (*ImportFrom) stmtNode()  {}
func (*Exec) stmtNode()        {}
func (*Global) stmtNode()      {}
func (*ExprStmt) stmtNode()    {}
func (*Pass) stmtNode()        {}
func (*Break) stmtNode()       {}
func (*Continue) stmtNode()    {}
