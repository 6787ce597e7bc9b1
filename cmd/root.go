package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	calc "github.com/smartcalc/calcd"
)

var (
	cfgFile string

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:     "calcd",
	Short:   "calcd - safe arithmetic and scientific expression evaluation",
	Version: calc.Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		logger, err = zap.NewProduction()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		// evaluate bare arguments like the eval subcommand
		if len(args) == 0 {
			_ = cmd.Help()
			return
		}
		evalCmd.Run(evalCmd, args)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Path to a yaml configuration file")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(evalCmd)
	rootCmd.AddCommand(replCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(functionsCmd)
}
