package parser

import (
	"github.com/smartcalc/calcd/internal/lexer"
	"github.com/smartcalc/calcd/internal/types"
)

// Parser builds an expression tree from a token stream with one token of
// lookahead. The grammar, loosest binding first:
//
//	expr    := term  (('+'|'-') term)*
//	term    := unary (('*'|'/'|'%') unary | juxtaposed)*
//	unary   := ('-'|'+') unary | power
//	power   := postfix ('^' unary)?          right-associative
//	postfix := primary ('!' | '%')*
//	primary := NUMBER | IDENT | IDENT '(' expr (',' expr)* ')' | '(' expr ')'
//
// Juxtaposition (a number, identifier or '(' directly after an operand)
// multiplies at term precedence, so "2(3+4)" and "(2)(3)" behave like the
// explicit product. isFunc tells constants apart from function names:
// "pi(2)" multiplies while "sin(2)" calls.
type Parser struct {
	tokens   []lexer.Token
	position int
	isFunc   func(name string) bool
}

// New returns a Parser over tokens. isFunc may be nil, in which case every
// identifier followed by '(' is treated as a call.
func New(tokens []lexer.Token, isFunc func(name string) bool) *Parser {
	if isFunc == nil {
		isFunc = func(string) bool { return true }
	}
	return &Parser{tokens: tokens, isFunc: isFunc}
}

// Parse consumes the whole token stream and returns the root node.
func (p *Parser) Parse() (Node, *types.Error) {
	node, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	switch tok := p.peek(); tok.Type {
	case lexer.EOF:
		return node, nil
	case lexer.ILLEGAL:
		return nil, illegalToken(tok)
	default:
		return nil, types.NewErrorAt(types.SyntaxError, tok.Position, "unexpected %q", tok.Lexeme)
	}
}

// illegalToken classifies an ILLEGAL token. A bare "." is the one ILLEGAL
// token made of allowed characters: a malformed number, not a disallowed
// byte.
func illegalToken(tok lexer.Token) *types.Error {
	if tok.Lexeme == "." {
		return types.NewErrorAt(types.SyntaxError, tok.Position, "malformed number")
	}
	return types.NewErrorAt(types.InvalidCharacter, tok.Position, "invalid character %q", tok.Lexeme)
}

func (p *Parser) parseExpr() (Node, *types.Error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for {
		tok := p.peek()
		if tok.Type != lexer.PLUS && tok.Type != lexer.MINUS {
			return left, nil
		}
		p.next()
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = &BinaryNode{Op: tok.Type, Left: left, Right: right, Position: tok.Position}
	}
}

func (p *Parser) parseTerm() (Node, *types.Error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		tok := p.peek()
		switch tok.Type {
		case lexer.MULT, lexer.DIV, lexer.MOD:
			p.next()
			right, err := p.parseUnary()
			if err != nil {
				return nil, err
			}
			left = &BinaryNode{Op: tok.Type, Left: left, Right: right, Position: tok.Position}
		case lexer.NUMBER, lexer.IDENT, lexer.LPAREN:
			// Adjacent operand: implicit multiplication. Two adjacent
			// number tokens can only come from a malformed literal like
			// "2..5"; real juxtaposition has an identifier or parenthesis
			// on at least one side.
			if tok.Type == lexer.NUMBER && p.prev().Type == lexer.NUMBER {
				return nil, types.NewErrorAt(types.SyntaxError, tok.Position, "malformed number")
			}
			right, err := p.parsePower()
			if err != nil {
				return nil, err
			}
			left = &BinaryNode{Op: lexer.MULT, Left: left, Right: right, Position: tok.Position}
		default:
			return left, nil
		}
	}
}

func (p *Parser) parseUnary() (Node, *types.Error) {
	tok := p.peek()
	if tok.Type == lexer.MINUS || tok.Type == lexer.PLUS {
		p.next()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		// A sign directly on a factorial negates the operand, not the
		// result: "-1!" is (-1)! and fails the domain check. Exponents
		// keep the usual reading, "-2^2" stays -(2^2).
		if post, ok := operand.(*PostfixNode); ok && post.Op == lexer.BANG {
			post.Operand = &UnaryNode{Op: tok.Type, Operand: post.Operand, Position: tok.Position}
			return post, nil
		}
		return &UnaryNode{Op: tok.Type, Operand: operand, Position: tok.Position}, nil
	}
	return p.parsePower()
}

func (p *Parser) parsePower() (Node, *types.Error) {
	left, err := p.parsePostfix()
	if err != nil {
		return nil, err
	}
	tok := p.peek()
	if tok.Type != lexer.POW {
		return left, nil
	}
	p.next()
	// Right operand parses at unary level: right-associative, and "2^-3"
	// works without parentheses.
	right, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	return &BinaryNode{Op: lexer.POW, Left: left, Right: right, Position: tok.Position}, nil
}

func (p *Parser) parsePostfix() (Node, *types.Error) {
	node, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for {
		tok := p.peek()
		if tok.Type != lexer.BANG && tok.Type != lexer.PERCENT {
			return node, nil
		}
		p.next()
		node = &PostfixNode{Op: tok.Type, Operand: node, Position: tok.Position}
	}
}

func (p *Parser) parsePrimary() (Node, *types.Error) {
	tok := p.peek()
	switch tok.Type {
	case lexer.NUMBER:
		p.next()
		return &NumberNode{Value: tok.Value, Position: tok.Position}, nil

	case lexer.IDENT:
		p.next()
		if p.isFunc(tok.Lexeme) {
			return p.parseCall(tok)
		}
		return &ConstNode{Name: tok.Lexeme, Position: tok.Position}, nil

	case lexer.LPAREN:
		p.next()
		node, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if closing := p.peek(); closing.Type != lexer.RPAREN {
			return nil, types.NewErrorAt(types.UnbalancedParentheses, closing.Position, "expected closing parenthesis")
		}
		p.next()
		return node, nil

	case lexer.EOF:
		return nil, types.NewErrorAt(types.SyntaxError, tok.Position, "unexpected end of expression")

	case lexer.ILLEGAL:
		return nil, illegalToken(tok)

	default:
		return nil, types.NewErrorAt(types.SyntaxError, tok.Position, "unexpected %q", tok.Lexeme)
	}
}

// parseCall parses the argument list of a function. name has already been
// consumed.
func (p *Parser) parseCall(name lexer.Token) (Node, *types.Error) {
	if tok := p.peek(); tok.Type != lexer.LPAREN {
		return nil, types.NewErrorAt(types.SyntaxError, tok.Position, "%s requires parenthesized arguments", name.Lexeme)
	}
	p.next()

	var args []Node
	for {
		arg, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)

		tok := p.peek()
		if tok.Type == lexer.COMMA {
			p.next()
			continue
		}
		if tok.Type != lexer.RPAREN {
			return nil, types.NewErrorAt(types.UnbalancedParentheses, tok.Position, "expected closing parenthesis")
		}
		p.next()
		return &CallNode{Name: name.Lexeme, Args: args, Position: name.Position}, nil
	}
}

// prev returns the most recently consumed token.
func (p *Parser) prev() lexer.Token {
	if p.position == 0 {
		return lexer.Token{Type: lexer.EOF}
	}
	return p.tokens[p.position-1]
}

func (p *Parser) peek() lexer.Token {
	if p.position >= len(p.tokens) {
		return lexer.Token{Type: lexer.EOF}
	}
	return p.tokens[p.position]
}

func (p *Parser) next() lexer.Token {
	tok := p.peek()
	p.position++
	return tok
}
