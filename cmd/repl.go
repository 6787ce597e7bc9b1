package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	calc "github.com/smartcalc/calcd"
	"github.com/smartcalc/calcd/formatter"
)

const (
	replPrompt      = "calc> "
	replHistoryFile = ".calcd_history"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive calculator session",
	Long: `Starts a line-edited calculator loop with history and tab completion
over the function catalog. Ctrl+D or :quit exits.`,
	Run: func(cmd *cobra.Command, args []string) {
		runRepl()
	},
}

func historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return replHistoryFile
	}
	return filepath.Join(home, replHistoryFile)
}

func runRepl() {
	line := liner.NewLiner()
	defer line.Close()

	line.SetCtrlCAborts(true)
	line.SetCompleter(func(prefix string) []string {
		last := prefix
		if idx := strings.LastIndexAny(prefix, "+-*/%^!(), "); idx >= 0 {
			last = prefix[idx+1:]
		}
		var completions []string
		for _, f := range calc.Catalog() {
			if strings.HasPrefix(f.Name, strings.ToLower(last)) {
				completions = append(completions, prefix[:len(prefix)-len(last)]+f.Name)
			}
		}
		return completions
	})

	if f, err := os.Open(historyPath()); err == nil {
		_, _ = line.ReadHistory(f)
		f.Close()
	}

	fmt.Printf("calcd %s interactive calculator\nCtrl+D or :quit exits, :functions lists the catalog.\n", calc.Version)

	engine := calc.New(0)
	for {
		input, err := line.Prompt(replPrompt)
		if errors.Is(err, io.EOF) {
			fmt.Println()
			break
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "error reading input: %v\n", err)
			break
		}

		input = strings.TrimSpace(input)
		switch input {
		case "":
			continue
		case ":quit", ":q":
			saveHistory(line)
			return
		case ":functions":
			printCatalog()
			continue
		case ":help":
			fmt.Println("REPL commands:\n  :quit       exit\n  :functions  list available functions")
			continue
		}

		line.AppendHistory(input)
		result, err := engine.Evaluate(input)
		if err != nil {
			printEvalError(engine, input, err)
			continue
		}
		fmt.Println(formatter.FormatResult(calc.Normalize(input), result))
	}

	saveHistory(line)
}

func saveHistory(line *liner.State) {
	f, err := os.Create(historyPath())
	if err != nil {
		return
	}
	defer f.Close()
	_, _ = line.WriteHistory(f)
}
