package cmd

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"runtime"
	"strings"
	"sync"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	calc "github.com/smartcalc/calcd"
	"github.com/smartcalc/calcd/formatter"
)

var (
	batchJSONOutput bool
	batchOutPath    string
)

var batchCmd = &cobra.Command{
	Use:   "batch [file]",
	Short: "Evaluate a file of expressions, one per line",
	Long: `Evaluates every non-empty line of the given file. Lines starting with '#'
are skipped. Results keep the input order.
Example) calcd batch expressions.txt --json -o results.json`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		expressions, err := readExpressions(args[0])
		if err != nil {
			logger.Fatal("Failed to read input file", zap.Error(err))
		}

		results := evaluateAll(expressions)
		if err := printBatchResults(results, batchJSONOutput, batchOutPath); err != nil {
			logger.Fatal("Failed to write results", zap.Error(err))
		}

		for _, r := range results {
			if r.Err != "" {
				os.Exit(1)
			}
		}
	},
}

func init() {
	batchCmd.Flags().BoolVar(&batchJSONOutput, "json", false, "Output results in JSON format")
	batchCmd.Flags().StringVarP(&batchOutPath, "output", "o", "", "Output path (stdout when empty)")
}

type batchResult struct {
	Expression string  `json:"expression"`
	Result     float64 `json:"result,omitempty"`
	Err        string  `json:"error,omitempty"`
	Kind       string  `json:"kind,omitempty"`
}

func readExpressions(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var expressions []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		expressions = append(expressions, line)
	}
	return expressions, scanner.Err()
}

// evaluateAll runs the expressions on a bounded worker pool. Evaluation is
// pure, so one shared engine serves all workers.
func evaluateAll(expressions []string) []batchResult {
	engine := calc.New(0)
	results := make([]batchResult, len(expressions))

	bar := progressbar.NewOptions(len(expressions),
		progressbar.OptionSetDescription("evaluating"),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
	)

	maxWorkers := runtime.NumCPU()
	sem := make(chan struct{}, maxWorkers)
	var wg sync.WaitGroup

	for i, expr := range expressions {
		wg.Add(1)
		sem <- struct{}{}
		go func(idx int, raw string) {
			defer wg.Done()
			defer func() { <-sem }()

			r := batchResult{Expression: raw}
			value, err := engine.Evaluate(raw)
			if err != nil {
				r.Err = err.Error()
				if cerr, ok := err.(*calc.Error); ok {
					r.Kind = cerr.Kind.String()
				}
			} else {
				r.Result = formatter.Shape(value)
			}
			results[idx] = r
			_ = bar.Add(1)
		}(i, expr)
	}

	wg.Wait()
	fmt.Println()
	return results
}

func printBatchResults(results []batchResult, asJSON bool, outPath string) error {
	out := os.Stdout
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	for _, r := range results {
		if r.Err != "" {
			fmt.Fprintf(out, "%s : error: %s\n", r.Expression, r.Err)
			continue
		}
		fmt.Fprintf(out, "%s = %s\n", r.Expression, formatter.FormatNumber(r.Result))
	}
	return nil
}
