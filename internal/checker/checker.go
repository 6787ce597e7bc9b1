package checker

import (
	"github.com/smartcalc/calcd/internal/trie"
	"github.com/smartcalc/calcd/internal/types"
)

// DefaultMaxLength bounds the accepted expression size. Parse recursion
// depth is bounded by expression length, so this also caps evaluation cost.
const DefaultMaxLength = 200

// Checker validates a normalized expression before it reaches the parser.
// This is the security boundary: everything outside the fixed character set
// and the identifier allowlist is rejected here, so the evaluator never
// resolves a name it does not know.
type Checker struct {
	maxLength int
	idents    *trie.Trie
}

// New returns a Checker accepting the given identifiers. maxLength <= 0
// falls back to DefaultMaxLength.
func New(maxLength int, identifiers []string) *Checker {
	if maxLength <= 0 {
		maxLength = DefaultMaxLength
	}
	idents := trie.New()
	for _, name := range identifiers {
		idents.Insert(name)
	}
	return &Checker{maxLength: maxLength, idents: idents}
}

// Check validates expr and returns nil when it may be evaluated.
// expr must already be normalized (no whitespace, lowercase).
func (c *Checker) Check(expr string) *types.Error {
	if expr == "" {
		return types.NewError(types.EmptyExpression, "empty expression")
	}
	if len(expr) > c.maxLength {
		return types.NewError(types.TooLong, "expression exceeds %d characters", c.maxLength)
	}
	if err := c.checkCharacters(expr); err != nil {
		return err
	}
	if err := c.checkIdentifiers(expr); err != nil {
		return err
	}
	return c.checkParentheses(expr)
}

// checkCharacters scans for bytes outside the fixed allowed set.
func (c *Checker) checkCharacters(expr string) *types.Error {
	for i := 0; i < len(expr); i++ {
		if !allowedByte(expr[i]) {
			return types.NewErrorAt(types.InvalidCharacter, i, "invalid character %q", expr[i])
		}
	}
	return nil
}

// checkIdentifiers extracts identifier words (a letter followed by letters
// or digits) and looks each one up in the allowlist.
func (c *Checker) checkIdentifiers(expr string) *types.Error {
	for i := 0; i < len(expr); {
		if !isLetter(expr[i]) {
			i++
			continue
		}
		start := i
		for i < len(expr) && (isLetter(expr[i]) || isDigit(expr[i])) {
			i++
		}
		word := expr[start:i]
		if !c.idents.Contains(word) {
			return types.NewErrorAt(types.InvalidCharacter, start, "unknown function or constant %q", word)
		}
	}
	return nil
}

// checkParentheses verifies nesting closes, and never goes negative.
func (c *Checker) checkParentheses(expr string) *types.Error {
	depth := 0
	for i := 0; i < len(expr); i++ {
		switch expr[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth < 0 {
				return types.NewErrorAt(types.UnbalancedParentheses, i, "unexpected closing parenthesis")
			}
		}
	}
	if depth != 0 {
		return types.NewError(types.UnbalancedParentheses, "unbalanced parentheses")
	}
	return nil
}

// Suggest returns allowlisted identifiers starting with prefix, for
// "did you mean" hints in the CLI. Empty prefix returns nothing.
func (c *Checker) Suggest(prefix string) []string {
	if prefix == "" {
		return nil
	}
	return c.idents.WithPrefix(prefix)
}

func allowedByte(b byte) bool {
	if isDigit(b) || isLetter(b) {
		return true
	}
	switch b {
	case '.', '+', '-', '*', '/', '%', '^', '!', '(', ')', ',':
		return true
	}
	return false
}

func isLetter(b byte) bool { return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' }
func isDigit(b byte) bool  { return b >= '0' && b <= '9' }
