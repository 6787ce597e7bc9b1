package evaluator

import (
	"math"

	"github.com/smartcalc/calcd/internal/types"
)

// maxFactorial is the largest n with n! representable as a float64.
const maxFactorial = 170

// builtin is a callable entry of the catalog.
type builtin struct {
	arity int
	call  func(args []float64) (float64, *types.Error)
}

func unary(f func(float64) float64) builtin {
	return builtin{arity: 1, call: func(args []float64) (float64, *types.Error) {
		return f(args[0]), nil
	}}
}

// constants are resolved by name during evaluation. Read-only.
var constants = map[string]float64{
	"pi": math.Pi,
	"e":  math.E,
}

// builtins maps function names to their implementation. Built once at
// package init, read-only afterwards; this is the entire set of callables
// an expression can reach.
var builtins = map[string]builtin{
	"abs":   unary(math.Abs),
	"round": unary(math.Round),

	"sin":  unary(math.Sin),
	"cos":  unary(math.Cos),
	"tan":  unary(math.Tan),
	"asin": domainUnary(math.Asin, func(x float64) bool { return x >= -1 && x <= 1 }, "asin argument must be in [-1, 1]"),
	"acos": domainUnary(math.Acos, func(x float64) bool { return x >= -1 && x <= 1 }, "acos argument must be in [-1, 1]"),
	"atan": unary(math.Atan),

	"sinh": unary(math.Sinh),
	"cosh": unary(math.Cosh),
	"tanh": unary(math.Tanh),

	"exp":  unary(math.Exp),
	"log":  domainUnary(math.Log10, positive, "log argument must be positive"),
	"ln":   domainUnary(math.Log, positive, "ln argument must be positive"),
	"log2": domainUnary(math.Log2, positive, "log2 argument must be positive"),

	"sqrt": domainUnary(math.Sqrt, func(x float64) bool { return x >= 0 }, "sqrt argument must be non-negative"),
	"cbrt": unary(math.Cbrt),
	"pow": {arity: 2, call: func(args []float64) (float64, *types.Error) {
		return math.Pow(args[0], args[1]), nil
	}},

	"factorial": {arity: 1, call: func(args []float64) (float64, *types.Error) {
		return factorial(args[0], -1)
	}},

	"ceil":  unary(math.Ceil),
	"floor": unary(math.Floor),
	"trunc": unary(math.Trunc),

	"degrees": unary(func(x float64) float64 { return x * 180 / math.Pi }),
	"radians": unary(func(x float64) float64 { return x * math.Pi / 180 }),

	"mod": {arity: 2, call: func(args []float64) (float64, *types.Error) {
		if args[1] == 0 {
			return 0, types.NewError(types.DivisionByZero, "modulo by zero")
		}
		return math.Mod(args[0], args[1]), nil
	}},
	"percent": unary(func(x float64) float64 { return x / 100 }),
}

func positive(x float64) bool { return x > 0 }

func domainUnary(f func(float64) float64, ok func(float64) bool, msg string) builtin {
	return builtin{arity: 1, call: func(args []float64) (float64, *types.Error) {
		if !ok(args[0]) {
			return 0, types.NewError(types.DomainError, msg)
		}
		return f(args[0]), nil
	}}
}

// factorial computes n! for non-negative integer n up to maxFactorial.
// pos is the expression offset for error reporting, or -1.
func factorial(n float64, pos int) (float64, *types.Error) {
	if n < 0 || n != math.Trunc(n) {
		return 0, types.NewErrorAt(types.DomainError, pos, "factorial requires a non-negative integer")
	}
	if n > maxFactorial {
		return 0, types.NewErrorAt(types.Overflow, pos, "factorial of %g overflows", n)
	}
	result := 1.0
	for i := 2.0; i <= n; i++ {
		result *= i
	}
	return result, nil
}

// catalog is the ordered, process-wide function catalog served by the API
// and the CLI. Grouping and descriptions follow the public documentation.
var catalog = []types.Function{
	{Name: "abs", Arity: 1, Category: "basic", Description: "absolute value"},
	{Name: "round", Arity: 1, Category: "rounding", Description: "round to the nearest integer"},
	{Name: "ceil", Arity: 1, Category: "rounding", Description: "round up"},
	{Name: "floor", Arity: 1, Category: "rounding", Description: "round down"},
	{Name: "trunc", Arity: 1, Category: "rounding", Description: "drop the fractional part"},
	{Name: "sin", Arity: 1, Category: "trigonometric", Description: "sine (radians)"},
	{Name: "cos", Arity: 1, Category: "trigonometric", Description: "cosine (radians)"},
	{Name: "tan", Arity: 1, Category: "trigonometric", Description: "tangent (radians)"},
	{Name: "asin", Arity: 1, Category: "trigonometric", Description: "inverse sine"},
	{Name: "acos", Arity: 1, Category: "trigonometric", Description: "inverse cosine"},
	{Name: "atan", Arity: 1, Category: "trigonometric", Description: "inverse tangent"},
	{Name: "sinh", Arity: 1, Category: "hyperbolic", Description: "hyperbolic sine"},
	{Name: "cosh", Arity: 1, Category: "hyperbolic", Description: "hyperbolic cosine"},
	{Name: "tanh", Arity: 1, Category: "hyperbolic", Description: "hyperbolic tangent"},
	{Name: "exp", Arity: 1, Category: "logarithmic", Description: "e raised to the argument"},
	{Name: "log", Arity: 1, Category: "logarithmic", Description: "base-10 logarithm"},
	{Name: "ln", Arity: 1, Category: "logarithmic", Description: "natural logarithm"},
	{Name: "log2", Arity: 1, Category: "logarithmic", Description: "base-2 logarithm"},
	{Name: "sqrt", Arity: 1, Category: "roots_powers", Description: "square root"},
	{Name: "cbrt", Arity: 1, Category: "roots_powers", Description: "cube root"},
	{Name: "pow", Arity: 2, Category: "roots_powers", Description: "pow(x, y) = x^y"},
	{Name: "factorial", Arity: 1, Category: "special", Description: "factorial of a non-negative integer"},
	{Name: "mod", Arity: 2, Category: "special", Description: "mod(a, b) = remainder of a/b"},
	{Name: "percent", Arity: 1, Category: "conversion", Description: "percent(x) = x/100"},
	{Name: "degrees", Arity: 1, Category: "conversion", Description: "radians to degrees"},
	{Name: "radians", Arity: 1, Category: "conversion", Description: "degrees to radians"},
	{Name: "pi", Arity: 0, Category: "constants", Description: "circle constant π"},
	{Name: "e", Arity: 0, Category: "constants", Description: "Euler's number"},
}

// Catalog returns the ordered function catalog. The returned slice is a
// copy; the catalog itself never changes after startup.
func Catalog() []types.Function {
	out := make([]types.Function, len(catalog))
	copy(out, catalog)
	return out
}

// Names returns every identifier an expression may reference: function
// names and constants. This seeds the validator's allowlist.
func Names() []string {
	names := make([]string, 0, len(catalog))
	for _, f := range catalog {
		names = append(names, f.Name)
	}
	return names
}

// IsFunction reports whether name is a callable (as opposed to a constant).
func IsFunction(name string) bool {
	_, ok := builtins[name]
	return ok
}
