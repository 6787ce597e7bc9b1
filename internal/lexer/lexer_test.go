package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"display multiply", "2×3", "2*3"},
		{"display divide", "8÷2", "8/2"},
		{"pi symbol", "2π", "2pi"},
		{"python exponent", "2**3", "2^3"},
		{"unicode minus", "5−3", "5-3"},
		{"whitespace removed", " 1 +\t2 ", "1+2"},
		{"lowercased", "SIN(PI)", "sin(pi)"},
		{"unmapped symbol passes through", "2$3", "2$3"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}

func TestTokenize(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		input string
		want  []Token
	}{
		{
			name:  "simple addition",
			input: "1+2",
			want: []Token{
				{Type: NUMBER, Lexeme: "1", Value: 1, Position: 0},
				{Type: PLUS, Lexeme: "+", Position: 1},
				{Type: NUMBER, Lexeme: "2", Value: 2, Position: 2},
				{Type: EOF, Position: 3},
			},
		},
		{
			name:  "decimal and exponent",
			input: "2.5^2",
			want: []Token{
				{Type: NUMBER, Lexeme: "2.5", Value: 2.5, Position: 0},
				{Type: POW, Lexeme: "^", Position: 3},
				{Type: NUMBER, Lexeme: "2", Value: 2, Position: 4},
				{Type: EOF, Position: 5},
			},
		},
		{
			name:  "function call",
			input: "sin(pi)",
			want: []Token{
				{Type: IDENT, Lexeme: "sin", Position: 0},
				{Type: LPAREN, Lexeme: "(", Position: 3},
				{Type: IDENT, Lexeme: "pi", Position: 4},
				{Type: RPAREN, Lexeme: ")", Position: 6},
				{Type: EOF, Position: 7},
			},
		},
		{
			name:  "identifier with digits",
			input: "log2(8)",
			want: []Token{
				{Type: IDENT, Lexeme: "log2", Position: 0},
				{Type: LPAREN, Lexeme: "(", Position: 4},
				{Type: NUMBER, Lexeme: "8", Value: 8, Position: 5},
				{Type: RPAREN, Lexeme: ")", Position: 6},
				{Type: EOF, Position: 7},
			},
		},
		{
			name:  "number then constant",
			input: "2pi",
			want: []Token{
				{Type: NUMBER, Lexeme: "2", Value: 2, Position: 0},
				{Type: IDENT, Lexeme: "pi", Position: 1},
				{Type: EOF, Position: 3},
			},
		},
		{
			name:  "factorial",
			input: "5!",
			want: []Token{
				{Type: NUMBER, Lexeme: "5", Value: 5, Position: 0},
				{Type: BANG, Lexeme: "!", Position: 1},
				{Type: EOF, Position: 2},
			},
		},
		{
			name:  "illegal byte",
			input: "1$2",
			want: []Token{
				{Type: NUMBER, Lexeme: "1", Value: 1, Position: 0},
				{Type: ILLEGAL, Lexeme: "$", Position: 1},
				{Type: NUMBER, Lexeme: "2", Value: 2, Position: 2},
				{Type: EOF, Position: 3},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := New(tt.input).Tokenize()
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTokenizePercentPolicy(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		input string
		// token type expected for the '%' byte
		want TokenType
	}{
		{"trailing percent", "50%", PERCENT},
		{"percent before operator", "50%+1", PERCENT},
		{"percent before closing paren", "(50%)", PERCENT},
		{"modulo before digit", "10%3", MOD},
		{"modulo before paren", "10%(1+2)", MOD},
		{"modulo before identifier", "10%pi", MOD},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := New(tt.input).Tokenize()
			var got TokenType = EOF
			for _, tok := range tokens {
				if tok.Lexeme == "%" {
					got = tok.Type
					break
				}
			}
			assert.Equal(t, tt.want, got, "percent token type for %q", tt.input)
		})
	}
}
