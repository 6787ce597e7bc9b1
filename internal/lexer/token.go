package lexer

// TokenType represents the kind of token.
type TokenType int

const (
	// Special
	EOF TokenType = iota
	ILLEGAL

	// Literals & identifiers
	NUMBER
	IDENT

	// Operators
	PLUS
	MINUS
	MULT
	DIV
	MOD     // binary '%'
	POW     // '^'
	BANG    // postfix '!'
	PERCENT // postfix '%'

	// Punctuation
	LPAREN
	RPAREN
	COMMA
)

var tokenNames = map[TokenType]string{
	EOF:     "EOF",
	ILLEGAL: "ILLEGAL",
	NUMBER:  "NUMBER",
	IDENT:   "IDENT",
	PLUS:    "+",
	MINUS:   "-",
	MULT:    "*",
	DIV:     "/",
	MOD:     "%",
	POW:     "^",
	BANG:    "!",
	PERCENT: "%(percent)",
	LPAREN:  "(",
	RPAREN:  ")",
	COMMA:   ",",
}

func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return "UNKNOWN"
}

// Token is a lexical token with its position in the normalized expression.
type Token struct {
	Type     TokenType
	Lexeme   string
	Value    float64 // parsed value for NUMBER tokens
	Position int     // 0-based offset into the normalized expression
}
