package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	calc "github.com/smartcalc/calcd"
)

var (
	categoryStyle = color.New(color.FgYellow, color.Bold)
	nameStyle     = color.New(color.FgCyan, color.Bold)
)

var functionsCmd = &cobra.Command{
	Use:   "functions",
	Short: "List the functions and constants available in expressions",
	Run: func(cmd *cobra.Command, args []string) {
		printCatalog()
	},
}

func printCatalog() {
	lastCategory := ""
	for _, f := range calc.Catalog() {
		if f.Category != lastCategory {
			categoryStyle.Printf("%s\n", f.Category)
			lastCategory = f.Category
		}
		signature := f.Name
		switch f.Arity {
		case 0:
			// constants have no call syntax
		case 1:
			signature += "(x)"
		case 2:
			signature += "(x, y)"
		}
		fmt.Printf("  %s %s\n", nameStyle.Sprintf("%-14s", signature), f.Description)
	}
}
