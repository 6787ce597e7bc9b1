package formatter

import (
	"math"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/smartcalc/calcd/internal/types"
)

var (
	errorStyle      = color.New(color.FgRed, color.Bold)
	kindStyle       = color.New(color.FgYellow, color.Bold)
	resultStyle     = color.New(color.FgGreen, color.Bold)
	exprStyle       = color.New(color.FgCyan)
	suggestionStyle = color.New(color.FgGreen)
)

// roundingThreshold clamps float noise around zero (sin(pi) and friends).
const roundingThreshold = 1e-10

// Shape cleans a raw evaluation result for presentation: values within
// roundingThreshold of zero collapse to 0, and moderate magnitudes are
// rounded to 10 decimal places to hide accumulated float error. Very large
// values pass through untouched.
func Shape(v float64) float64 {
	if math.Abs(v) < roundingThreshold {
		return 0
	}
	if math.Abs(v) < 1e10 {
		return math.Round(v*1e10) / 1e10
	}
	return v
}

// FormatNumber renders a shaped result the way a calculator display would:
// plain decimal notation for everyday magnitudes, scientific notation for
// the extremes, and no trailing ".0" on whole numbers.
func FormatNumber(v float64) string {
	v = Shape(v)
	abs := math.Abs(v)
	if v != 0 && (abs >= 1e10 || abs < 1e-4) {
		return strconv.FormatFloat(v, 'e', -1, 64)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatResult renders a successful evaluation for the terminal.
func FormatResult(expr string, v float64) string {
	var b strings.Builder
	b.WriteString(exprStyle.Sprint(expr))
	b.WriteString(" = ")
	b.WriteString(resultStyle.Sprint(FormatNumber(v)))
	return b.String()
}

// FormatError renders a failed evaluation with a caret snippet pointing at
// the offending offset of the normalized expression:
//
//	error: invalid_character
//	  |
//	  | 2+$3
//	  |   ^ invalid character '$'
//
// Errors without a position render as a single line. suggestions, when
// non-empty, add a "did you mean" hint.
func FormatError(expr string, err *types.Error, suggestions []string) string {
	var b strings.Builder
	b.WriteString(errorStyle.Sprint("error: "))
	b.WriteString(kindStyle.Sprint(err.Kind.String()))
	b.WriteString("\n")

	if err.Pos >= 0 && err.Pos <= len(expr) {
		b.WriteString("  |\n  | ")
		b.WriteString(expr)
		b.WriteString("\n  | ")
		b.WriteString(strings.Repeat(" ", err.Pos))
		b.WriteString("^ ")
		b.WriteString(err.Msg)
		b.WriteString("\n")
	} else {
		b.WriteString("  | ")
		b.WriteString(err.Msg)
		b.WriteString("\n")
	}

	if len(suggestions) > 0 {
		b.WriteString(suggestionStyle.Sprintf("did you mean: %s?", strings.Join(suggestions, ", ")))
		b.WriteString("\n")
	}
	return b.String()
}
