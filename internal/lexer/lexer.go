package lexer

import "strconv"

// Lexer scans a normalized expression and produces tokens.
type Lexer struct {
	input    string // the entire normalized expression
	position int    // current reading position in input
	tokens   []Token
}

// New returns a new Lexer over the given normalized expression.
func New(input string) *Lexer {
	return &Lexer{
		input:    input,
		position: 0,
		tokens:   make([]Token, 0, len(input)/2+1),
	}
}

// Tokenize processes the entire input and produces the list of tokens,
// always terminated by an EOF token. The lexer is total: bytes it does not
// recognize become ILLEGAL tokens rather than errors.
func (l *Lexer) Tokenize() []Token {
	for l.position < len(l.input) {
		currentPos := l.position
		switch c := l.input[l.position]; {
		case c == '+':
			l.addToken(PLUS, "+", currentPos)
			l.position++
		case c == '-':
			l.addToken(MINUS, "-", currentPos)
			l.position++
		case c == '*':
			l.addToken(MULT, "*", currentPos)
			l.position++
		case c == '/':
			l.addToken(DIV, "/", currentPos)
			l.position++
		case c == '^':
			l.addToken(POW, "^", currentPos)
			l.position++
		case c == '!':
			l.addToken(BANG, "!", currentPos)
			l.position++
		case c == '%':
			l.lexPercent(currentPos)
			l.position++
		case c == '(':
			l.addToken(LPAREN, "(", currentPos)
			l.position++
		case c == ')':
			l.addToken(RPAREN, ")", currentPos)
			l.position++
		case c == ',':
			l.addToken(COMMA, ",", currentPos)
			l.position++
		case isDigit(c) || c == '.':
			l.lexNumber(currentPos)
		case isLetter(c):
			l.lexIdentifier(currentPos)
		default:
			l.addToken(ILLEGAL, string(c), currentPos)
			l.position++
		}
	}

	l.addToken(EOF, "", l.position)
	return l.tokens
}

// lexPercent decides between the two meanings of '%'. Followed by the start
// of an operand (digit, letter, '(' or '.') it is the binary modulo
// operator; followed by anything else, including end of input, it is the
// postfix percent (divide the preceding operand by 100).
func (l *Lexer) lexPercent(startPos int) {
	if l.position+1 < len(l.input) {
		next := l.input[l.position+1]
		if isDigit(next) || isLetter(next) || next == '(' || next == '.' {
			l.addToken(MOD, "%", startPos)
			return
		}
	}
	l.addToken(PERCENT, "%", startPos)
}

// lexNumber scans a decimal literal. A second '.' ends the literal, so a
// malformed literal like "2..5" or "2.3.4" lexes as two adjacent number
// tokens, which the parser rejects as a syntax error.
func (l *Lexer) lexNumber(startPos int) {
	seenDot := false
	for l.position < len(l.input) {
		c := l.input[l.position]
		if isDigit(c) {
			l.position++
			continue
		}
		if c == '.' && !seenDot {
			seenDot = true
			l.position++
			continue
		}
		break
	}

	lexeme := l.input[startPos:l.position]
	value, err := strconv.ParseFloat(lexeme, 64)
	if err != nil {
		// A bare "." reaches here.
		l.tokens = append(l.tokens, Token{Type: ILLEGAL, Lexeme: lexeme, Position: startPos})
		return
	}
	l.tokens = append(l.tokens, Token{Type: NUMBER, Lexeme: lexeme, Value: value, Position: startPos})
}

// lexIdentifier scans a function or constant name. Identifiers start with a
// letter and may contain digits, so "log2" is a single token while "2pi"
// splits into a number and an identifier.
func (l *Lexer) lexIdentifier(startPos int) {
	for l.position < len(l.input) {
		c := l.input[l.position]
		if !isLetter(c) && !isDigit(c) {
			break
		}
		l.position++
	}
	l.addToken(IDENT, l.input[startPos:l.position], startPos)
}

func (l *Lexer) addToken(typ TokenType, lexeme string, pos int) {
	l.tokens = append(l.tokens, Token{Type: typ, Lexeme: lexeme, Position: pos})
}

func isDigit(c byte) bool  { return c >= '0' && c <= '9' }
func isLetter(c byte) bool { return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' }
