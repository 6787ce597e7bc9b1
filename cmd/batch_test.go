package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBatchCmdArgs(t *testing.T) {
	assert.Error(t, batchCmd.Args(batchCmd, nil))
	assert.Error(t, batchCmd.Args(batchCmd, []string{"a.txt", "b.txt"}))
	assert.NoError(t, batchCmd.Args(batchCmd, []string{"a.txt"}))
}

func TestReadExpressions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "expressions.txt")
	content := "2+2\n\n# a comment\n  sqrt(16)  \n1/0\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	expressions, err := readExpressions(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"2+2", "sqrt(16)", "1/0"}, expressions)
}

func TestEvaluateAll(t *testing.T) {
	results := evaluateAll([]string{"2+2", "sqrt(16)", "1/0", "sqrt(-1)"})
	require.Len(t, results, 4)

	assert.Equal(t, 4.0, results[0].Result)
	assert.Equal(t, 4.0, results[1].Result)
	assert.Equal(t, "division_by_zero", results[2].Kind)
	assert.Equal(t, "domain_error", results[3].Kind)

	// Input order survives the worker pool.
	assert.Equal(t, "2+2", results[0].Expression)
	assert.Equal(t, "sqrt(-1)", results[3].Expression)
}

func TestPrintBatchResultsJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.json")
	results := []batchResult{
		{Expression: "5!", Result: 120},
		{Expression: "1/0", Err: "division by zero", Kind: "division_by_zero"},
	}

	require.NoError(t, printBatchResults(results, true, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded []batchResult
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, results, decoded)
}
