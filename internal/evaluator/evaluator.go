package evaluator

import (
	"math"

	"github.com/smartcalc/calcd/internal/lexer"
	"github.com/smartcalc/calcd/internal/parser"
	"github.com/smartcalc/calcd/internal/types"
)

// Eval computes the value of a parsed expression tree. It is a pure
// function: no state survives a call, and two evaluations of the same tree
// return the same result.
//
// Every arithmetic fault surfaces as a typed error: division and modulo by
// zero, domain violations, and any intermediate NaN or infinity. A finite
// float64 is the only successful outcome.
func Eval(node parser.Node) (float64, *types.Error) {
	v, err := eval(node)
	if err != nil {
		return 0, err
	}
	if err := checkFinite(v, node.Pos()); err != nil {
		return 0, err
	}
	return v, nil
}

func eval(node parser.Node) (float64, *types.Error) {
	switch n := node.(type) {
	case *parser.NumberNode:
		return n.Value, nil

	case *parser.ConstNode:
		v, ok := constants[n.Name]
		if !ok {
			return 0, types.NewErrorAt(types.InvalidCharacter, n.Position, "unknown constant %q", n.Name)
		}
		return v, nil

	case *parser.UnaryNode:
		v, err := eval(n.Operand)
		if err != nil {
			return 0, err
		}
		if n.Op == lexer.MINUS {
			return -v, nil
		}
		return v, nil

	case *parser.BinaryNode:
		return evalBinary(n)

	case *parser.PostfixNode:
		return evalPostfix(n)

	case *parser.CallNode:
		return evalCall(n)
	}
	return 0, types.NewError(types.SyntaxError, "malformed expression tree")
}

func evalBinary(n *parser.BinaryNode) (float64, *types.Error) {
	left, err := eval(n.Left)
	if err != nil {
		return 0, err
	}
	right, err := eval(n.Right)
	if err != nil {
		return 0, err
	}

	var v float64
	switch n.Op {
	case lexer.PLUS:
		v = left + right
	case lexer.MINUS:
		v = left - right
	case lexer.MULT:
		v = left * right
	case lexer.DIV:
		if right == 0 {
			return 0, types.NewErrorAt(types.DivisionByZero, n.Position, "division by zero")
		}
		v = left / right
	case lexer.MOD:
		if right == 0 {
			return 0, types.NewErrorAt(types.DivisionByZero, n.Position, "modulo by zero")
		}
		v = math.Mod(left, right)
	case lexer.POW:
		v = math.Pow(left, right)
	default:
		return 0, types.NewErrorAt(types.SyntaxError, n.Position, "unexpected operator %v", n.Op)
	}

	if err := checkFinite(v, n.Position); err != nil {
		return 0, err
	}
	return v, nil
}

func evalPostfix(n *parser.PostfixNode) (float64, *types.Error) {
	v, err := eval(n.Operand)
	if err != nil {
		return 0, err
	}
	switch n.Op {
	case lexer.BANG:
		return factorial(v, n.Position)
	case lexer.PERCENT:
		return v / 100, nil
	}
	return 0, types.NewErrorAt(types.SyntaxError, n.Position, "unexpected operator %v", n.Op)
}

func evalCall(n *parser.CallNode) (float64, *types.Error) {
	fn, ok := builtins[n.Name]
	if !ok {
		return 0, types.NewErrorAt(types.InvalidCharacter, n.Position, "unknown function %q", n.Name)
	}
	if len(n.Args) != fn.arity {
		return 0, types.NewErrorAt(types.SyntaxError, n.Position,
			"%s expects %d argument(s), got %d", n.Name, fn.arity, len(n.Args))
	}

	args := make([]float64, len(n.Args))
	for i, argNode := range n.Args {
		v, err := eval(argNode)
		if err != nil {
			return 0, err
		}
		args[i] = v
	}

	v, err := fn.call(args)
	if err != nil {
		if err.Pos < 0 {
			err.Pos = n.Position
		}
		return 0, err
	}
	if err := checkFinite(v, n.Position); err != nil {
		return 0, err
	}
	return v, nil
}

// checkFinite rejects NaN and infinities so they never leak to callers as
// silent numeric results.
func checkFinite(v float64, pos int) *types.Error {
	if math.IsNaN(v) {
		return types.NewErrorAt(types.InvalidResult, pos, "expression has no real result")
	}
	if math.IsInf(v, 0) {
		return types.NewErrorAt(types.Overflow, pos, "result too large")
	}
	return nil
}
