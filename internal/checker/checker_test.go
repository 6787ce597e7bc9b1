package checker

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartcalc/calcd/internal/types"
)

var testIdents = []string{"sin", "cos", "tan", "sqrt", "log", "log2", "ln", "pi", "e"}

func TestCheck(t *testing.T) {
	t.Parallel()
	c := New(0, testIdents)

	tests := []struct {
		name     string
		expr     string
		wantKind types.ErrorKind
		wantOK   bool
	}{
		{name: "plain arithmetic", expr: "2+2*3", wantOK: true},
		{name: "function call", expr: "sin(pi/2)", wantOK: true},
		{name: "identifier with digits", expr: "log2(8)", wantOK: true},
		{name: "postfix operators", expr: "5!+50%", wantOK: true},
		{name: "empty", expr: "", wantKind: types.EmptyExpression},
		{name: "invalid byte", expr: "2+$", wantKind: types.InvalidCharacter},
		{name: "underscore rejected", expr: "__class__", wantKind: types.InvalidCharacter},
		{name: "unknown identifier", expr: "import(1)", wantKind: types.InvalidCharacter},
		{name: "unclosed paren", expr: "2+(3*4", wantKind: types.UnbalancedParentheses},
		{name: "early close", expr: "2)+(3", wantKind: types.UnbalancedParentheses},
		{name: "too long", expr: strings.Repeat("1+", 150) + "1", wantKind: types.TooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := c.Check(tt.expr)
			if tt.wantOK {
				assert.Nil(t, err)
				return
			}
			require.NotNil(t, err)
			assert.Equal(t, tt.wantKind, err.Kind)
		})
	}
}

func TestCheckMaxLengthOverride(t *testing.T) {
	t.Parallel()
	c := New(5, testIdents)

	assert.Nil(t, c.Check("1+2+3"[:5]))
	err := c.Check("1+2+3+4")
	require.NotNil(t, err)
	assert.Equal(t, types.TooLong, err.Kind)
}

func TestSuggest(t *testing.T) {
	t.Parallel()
	c := New(0, testIdents)

	assert.Equal(t, []string{"log", "log2"}, c.Suggest("lo"))
	assert.Empty(t, c.Suggest("zz"))
	assert.Empty(t, c.Suggest(""))
}
