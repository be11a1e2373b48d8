package ast27

// Node is implemented by every legacy tree node.
type Node interface {
	Kind() Kind
}

// Mod is a tree root.
type Mod interface {
	Node
	modNode()
}

// Stmt is a statement node.
type Stmt interface {
	Node
	stmtNode()
}

// Expr is an expression node.
type Expr interface {
	Node
	exprNode()
}

// Slicer is the slice operand of a Subscript.
type Slicer interface {
	Node
	sliceNode()
}

// Position is the source location of a statement, expression, exception
// handler or argument. Lineno is 1-based; ColOffset is a 0-based byte column.
type Position struct {
	Lineno    int `json:"lineno"`
	ColOffset int `json:"col_offset"`
}

// Pos returns the position embedded in a node.
func (p *Position) Pos() *Position { return p }

// Positioned is implemented by nodes that carry source positions.
type Positioned interface {
	Node
	Pos() *Position
}

// At builds a Position.
func At(lineno, colOffset int) Position {
	return Position{Lineno: lineno, ColOffset: colOffset}
}
