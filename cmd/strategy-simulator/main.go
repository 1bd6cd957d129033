package main

import (
	"context"
	"fmt"
	"os"

	"github.com/lsdca/strategy-simulator/internal/calculation"
	"github.com/lsdca/strategy-simulator/internal/config"
	"github.com/lsdca/strategy-simulator/internal/output"
	"github.com/spf13/cobra"
)

var (
	inputFile  string
	formatName string
	debugMode  bool
)

var rootCmd = &cobra.Command{
	Use:   "strategy-simulator",
	Short: "Compare lump-sum borrow-and-invest strategies against their DCA equivalents",
	Long: `strategy-simulator runs deterministic long-horizon simulations of
multi-cycle investment strategies: borrow a lump sum and invest it while
repaying the loan, versus dollar-cost-averaging the same monthly outlay.`,
}

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Simulate the configured scenarios and render a comparison report",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger(debugMode)

		parser := config.NewInputParser()
		cfg, err := parser.LoadFromFile(inputFile)
		if err != nil {
			return err
		}

		engine := calculation.NewSimulationEngine()
		engine.Debug = debugMode
		engine.SetLogger(logger)

		results, err := engine.RunComparison(context.Background(), cfg)
		if err != nil {
			return err
		}

		name := output.NormalizeFormatName(formatName)
		if name == "all" {
			return output.GenerateReport(results, name)
		}

		f := output.GetFormatterByName(name)
		if f == nil {
			return output.GenerateReport(results, formatName) // yields the descriptive error
		}
		if f.Name() == "console" {
			data, err := f.Format(results)
			if err != nil {
				return err
			}
			_, err = os.Stdout.Write(data)
			return err
		}

		filename, err := output.WriteFormatted(f, results, output.ExtensionFor(f.Name()))
		if err != nil {
			return err
		}
		logger.Infof("report written to %s", filename)
		return nil
	},
}

var exampleCmd = &cobra.Command{
	Use:   "example",
	Short: "Write an example comparison configuration file",
	RunE: func(cmd *cobra.Command, args []string) error {
		parser := config.NewInputParser()
		cfg := parser.CreateExampleConfiguration()
		if err := output.SaveConfiguration(cfg, inputFile); err != nil {
			return err
		}
		fmt.Printf("example configuration written to %s\n", inputFile)
		return nil
	},
}

func init() {
	compareCmd.Flags().StringVarP(&inputFile, "input", "i", "config.yaml", "input configuration file (YAML)")
	compareCmd.Flags().StringVarP(&formatName, "format", "f", "console", "output format: console, csv, detailed-csv, json, html, pdf, all")
	compareCmd.Flags().BoolVar(&debugMode, "debug", false, "enable debug logging")

	exampleCmd.Flags().StringVarP(&inputFile, "output", "o", "example_config.yaml", "where to write the example configuration")

	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(exampleCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
