package cmd

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	calc "github.com/smartcalc/calcd"
)

func TestEvalCmdArgs(t *testing.T) {
	assert.Error(t, evalCmd.Args(evalCmd, nil))
	assert.NoError(t, evalCmd.Args(evalCmd, []string{"1+1"}))
	assert.NoError(t, evalCmd.Args(evalCmd, []string{"1", "+", "1"}))
}

func TestSuggestionsFor(t *testing.T) {
	engine := calc.New(0)

	err := engine.Validate("sqr(2)")
	require.Error(t, err)
	var cerr *calc.Error
	require.True(t, errors.As(err, &cerr))

	assert.Contains(t, suggestionsFor(engine, "sqr(2)", cerr), "sqrt")
	assert.Empty(t, suggestionsFor(engine, "sqr(2)", &calc.Error{Kind: calc.SyntaxError}))
}
