package ast35

// Node is implemented by every modern tree node.
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
// handler or arg.
type Position struct {
	Lineno    int `json:"lineno"`
	ColOffset int `json:"col_offset"`
}

// UnknownPosition marks nodes that have no source origin of their own.
//
//nolint:gochecknoglobals // Sentinel value.
var UnknownPosition = Position{Lineno: -1, ColOffset: -1}

// Pos returns the position embedded in a node.
func (p *Position) Pos() *Position { return p }

// Known reports whether p is a real source position.
func (p Position) Known() bool {
	return p != UnknownPosition
}

// Positioned is implemented by nodes that carry source positions.
type Positioned interface {
	Node
	Pos() *Position
}

// At builds a Position.
func At(lineno, colOffset int) Position {
	return Position{Lineno: lineno, ColOffset: colOffset}
}
