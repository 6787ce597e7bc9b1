package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	calc "github.com/smartcalc/calcd"
	"github.com/smartcalc/calcd/formatter"
)

var evalMaxLength int

var evalCmd = &cobra.Command{
	Use:   "eval [expression...]",
	Short: "Evaluate an expression and print the result",
	Long: `Evaluates a single expression. Multiple arguments are joined with spaces,
so quoting the whole expression is optional.
Example) calcd eval "sin(pi/2) + 2^10"`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		raw := strings.Join(args, " ")
		engine := calc.New(evalMaxLength)

		result, err := engine.Evaluate(raw)
		if err != nil {
			printEvalError(engine, raw, err)
			os.Exit(1)
		}
		fmt.Println(formatter.FormatResult(calc.Normalize(raw), result))
	},
}

func init() {
	evalCmd.Flags().IntVar(&evalMaxLength, "max-length", 0, "Maximum expression length (0 = default)")
}

// printEvalError renders a typed evaluation error with a caret snippet and,
// for unknown identifiers, a "did you mean" hint.
func printEvalError(engine *calc.Calculator, raw string, err error) {
	var cerr *calc.Error
	if !errors.As(err, &cerr) {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return
	}

	expr := calc.Normalize(raw)
	fmt.Fprint(os.Stderr, formatter.FormatError(expr, cerr, suggestionsFor(engine, expr, cerr)))
}

// suggestionsFor proposes catalog names close to an unknown identifier by
// walking back through its prefixes until something in the catalog matches.
func suggestionsFor(engine *calc.Calculator, expr string, cerr *calc.Error) []string {
	if cerr.Kind != calc.InvalidCharacter || cerr.Pos < 0 || cerr.Pos >= len(expr) {
		return nil
	}

	end := cerr.Pos
	for end < len(expr) && isWordByte(expr[end]) {
		end++
	}
	word := expr[cerr.Pos:end]

	for len(word) > 0 {
		if matches := engine.Suggest(word); len(matches) > 0 {
			return matches
		}
		word = word[:len(word)-1]
	}
	return nil
}

func isWordByte(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= '0' && b <= '9'
}
