package formatter

import (
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"github.com/smartcalc/calcd/internal/types"
)

func init() {
	// Keep expected strings free of ANSI escapes.
	color.NoColor = true
}

func TestShape(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"zero", 0, 0},
		{"float noise collapses", 1.2e-16, 0},
		{"negative noise collapses", -3e-11, 0},
		{"rounded to ten decimals", 0.30000000000000004, 0.3},
		{"ordinary value untouched", 3.5, 3.5},
		{"huge value untouched", 7.25e306, 7.25e306},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Shape(tt.in))
		})
	}
}

func TestFormatNumber(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		in   float64
		want string
	}{
		{"whole number has no decimal point", 120, "120"},
		{"plain decimal", 0.5, "0.5"},
		{"large goes scientific", 2.5e12, "2.5e+12"},
		{"tiny goes scientific", 2.5e-5, "2.5e-05"},
		{"noise collapses to zero", 4e-12, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatNumber(tt.in))
		})
	}
}

func TestFormatResult(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "5! = 120", FormatResult("5!", 120))
}

func TestFormatError(t *testing.T) {
	t.Parallel()

	t.Run("with position caret", func(t *testing.T) {
		err := types.NewErrorAt(types.InvalidCharacter, 2, "invalid character '$'")
		got := FormatError("2+$3", err, nil)
		expected := "error: invalid_character\n" +
			"  |\n" +
			"  | 2+$3\n" +
			"  |   ^ invalid character '$'\n"
		assert.Equal(t, expected, got)
	})

	t.Run("without position", func(t *testing.T) {
		err := types.NewError(types.EmptyExpression, "empty expression")
		got := FormatError("", err, nil)
		assert.Equal(t, "error: empty_expression\n  | empty expression\n", got)
	})

	t.Run("with suggestions", func(t *testing.T) {
		err := types.NewErrorAt(types.InvalidCharacter, 0, `unknown function or constant "sq"`)
		got := FormatError("sq(2)", err, []string{"sqrt"})
		assert.Contains(t, got, "did you mean: sqrt?")
	})
}
