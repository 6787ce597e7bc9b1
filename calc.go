// Package calc evaluates arithmetic and scientific expressions from
// untrusted input. Expressions run through a dedicated pipeline —
// normalize, validate against an allowlist, parse by recursive descent,
// walk the tree — so nothing outside the fixed grammar and the function
// catalog can ever execute.
package calc

import (
	"github.com/smartcalc/calcd/internal/checker"
	"github.com/smartcalc/calcd/internal/evaluator"
	"github.com/smartcalc/calcd/internal/lexer"
	"github.com/smartcalc/calcd/internal/parser"
	"github.com/smartcalc/calcd/internal/types"
)

// Error is the typed failure every stage returns.
type Error = types.Error

// ErrorKind classifies an Error.
type ErrorKind = types.ErrorKind

// Function describes a catalog entry.
type Function = types.Function

// Error kinds, re-exported for callers of the facade.
const (
	EmptyExpression       = types.EmptyExpression
	InvalidCharacter      = types.InvalidCharacter
	UnbalancedParentheses = types.UnbalancedParentheses
	TooLong               = types.TooLong
	SyntaxError           = types.SyntaxError
	DivisionByZero        = types.DivisionByZero
	DomainError           = types.DomainError
	Overflow              = types.Overflow
	InvalidResult         = types.InvalidResult
)

// Version is the release version reported by the CLI and the API.
const Version = "0.1.0"

// DefaultMaxLength is the expression length limit used by New(0).
const DefaultMaxLength = checker.DefaultMaxLength

// Calculator is the evaluation engine. It is stateless between calls and
// safe for concurrent use.
type Calculator struct {
	checker *checker.Checker
}

// New returns a Calculator. maxLength <= 0 selects DefaultMaxLength.
func New(maxLength int) *Calculator {
	return &Calculator{
		checker: checker.New(maxLength, evaluator.Names()),
	}
}

// Evaluate normalizes, validates, parses and evaluates raw. On failure the
// returned error is always a *Error carrying its ErrorKind.
func (c *Calculator) Evaluate(raw string) (float64, error) {
	expr := lexer.Normalize(raw)
	if err := c.checker.Check(expr); err != nil {
		return 0, err
	}

	tokens := lexer.New(expr).Tokenize()
	node, err := parser.New(tokens, evaluator.IsFunction).Parse()
	if err != nil {
		return 0, err
	}

	v, err := evaluator.Eval(node)
	if err != nil {
		return 0, err
	}
	return v, nil
}

// Validate runs only the normalize and validate stages.
func (c *Calculator) Validate(raw string) error {
	if err := c.checker.Check(lexer.Normalize(raw)); err != nil {
		return err
	}
	return nil
}

// Suggest returns catalog identifiers starting with prefix.
func (c *Calculator) Suggest(prefix string) []string {
	return c.checker.Suggest(prefix)
}

// Normalize rewrites raw user input into canonical expression form.
func Normalize(raw string) string {
	return lexer.Normalize(raw)
}

// Catalog returns the ordered, read-only function catalog.
func Catalog() []Function {
	return evaluator.Catalog()
}

var defaultCalculator = New(0)

// Evaluate evaluates raw with the default length limit.
func Evaluate(raw string) (float64, error) {
	return defaultCalculator.Evaluate(raw)
}
