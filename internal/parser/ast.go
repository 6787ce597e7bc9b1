package parser

import "github.com/smartcalc/calcd/internal/lexer"

// Node is a node of the parsed expression tree.
type Node interface {
	// Pos returns the 0-based offset of the node in the normalized expression.
	Pos() int
}

// NumberNode is a numeric literal.
type NumberNode struct {
	Value    float64
	Position int
}

// ConstNode is a reference to a named constant (pi, e).
type ConstNode struct {
	Name     string
	Position int
}

// UnaryNode is a prefix '+' or '-'.
type UnaryNode struct {
	Op       lexer.TokenType
	Operand  Node
	Position int
}

// BinaryNode is an infix operator application. Implicit multiplication
// (juxtaposition like "2(3+4)") parses into a BinaryNode with Op MULT.
type BinaryNode struct {
	Op       lexer.TokenType
	Left     Node
	Right    Node
	Position int
}

// PostfixNode is a factorial '!' or percent '%' applied to its operand.
type PostfixNode struct {
	Op       lexer.TokenType
	Operand  Node
	Position int
}

// CallNode is a function application.
type CallNode struct {
	Name     string
	Args     []Node
	Position int
}

func (n *NumberNode) Pos() int  { return n.Position }
func (n *ConstNode) Pos() int   { return n.Position }
func (n *UnaryNode) Pos() int   { return n.Position }
func (n *BinaryNode) Pos() int  { return n.Position }
func (n *PostfixNode) Pos() int { return n.Position }
func (n *CallNode) Pos() int    { return n.Position }
