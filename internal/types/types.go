package types

import "fmt"

// ErrorKind classifies why an expression was rejected.
type ErrorKind int

const (
	EmptyExpression ErrorKind = iota
	InvalidCharacter
	UnbalancedParentheses
	TooLong
	SyntaxError
	DivisionByZero
	DomainError
	Overflow
	InvalidResult
)

var kindNames = map[ErrorKind]string{
	EmptyExpression:       "empty_expression",
	InvalidCharacter:      "invalid_character",
	UnbalancedParentheses: "unbalanced_parentheses",
	TooLong:               "too_long",
	SyntaxError:           "syntax_error",
	DivisionByZero:        "division_by_zero",
	DomainError:           "domain_error",
	Overflow:              "overflow",
	InvalidResult:         "invalid_result",
}

func (k ErrorKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Error is the typed failure returned by every stage of the pipeline.
// Pos is a 0-based offset into the normalized expression, or -1 when the
// error is not tied to a position (empty input, length limit).
type Error struct {
	Kind ErrorKind
	Msg  string
	Pos  int
}

func (e *Error) Error() string {
	return e.Msg
}

// NewError creates a position-less Error.
func NewError(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...), Pos: -1}
}

// NewErrorAt creates an Error pointing at an offset in the expression.
func NewErrorAt(kind ErrorKind, pos int, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...), Pos: pos}
}

// Function describes one entry of the function catalog.
type Function struct {
	Name        string
	Arity       int // 0 for constants
	Category    string
	Description string
}
